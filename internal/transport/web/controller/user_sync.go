package controller

import (
	"encoding/json"
	"net/http"

	"github.com/George-20m/Sip-Match2/internal/command"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

type UserSync struct {
	SyncCmd command.Command[command.SyncUserRequest, command.SyncUserResponse]
}

type UserSyncRequestBody struct {
	Email       string  `json:"email"`
	UserName    string  `json:"user_name"`
	AuthMethod  string  `json:"auth_method"`
	HasPassword bool    `json:"has_password"`
	Image       *string `json:"image"`
}

func (c UserSync) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body UserSyncRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := r.Context()
	resp, err := c.SyncCmd.Execute(ctx, command.SyncUserRequest{
		ExternalID:  domain.UserIDFromContext(ctx),
		Email:       body.Email,
		UserName:    body.UserName,
		AuthMethod:  body.AuthMethod,
		HasPassword: body.HasPassword,
		Image:       body.Image,
	})
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to sync user profile", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, resp)
}
