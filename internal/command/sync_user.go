package command

import (
	"context"
	"fmt"
	"time"

	"github.com/George-20m/Sip-Match2/internal/datasources"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

const (
	// A newly created account can take a moment to propagate at the
	// identity provider; the sync waits this long before giving up.
	defaultSyncAttempts = 5
	defaultSyncInterval = 500 * time.Millisecond
)

// SyncUserRequest carries the profile to mirror into the users collection.
type SyncUserRequest struct {
	ExternalID  string
	Email       string
	UserName    string
	AuthMethod  string
	HasPassword bool
	Image       *string
}

// SyncUserResponse reports whether the mirror happened.
type SyncUserResponse struct {
	Synced bool        `json:"synced"`
	User   domain.User `json:"user,omitempty"`
}

// SyncUser mirrors the identity provider's profile into the users
// collection. The wait for provider propagation is best-effort convergence,
// not a consistency guarantee: on exhaustion the sync is skipped silently
// and callers must tolerate the mirror simply not happening.
type SyncUser struct {
	Identities datasources.IdentityChecker
	Users      datasources.UserUpserter

	attempts int
	interval time.Duration
}

// NewSyncUser creates a properly initialized SyncUser command.
func NewSyncUser(identities datasources.IdentityChecker, users datasources.UserUpserter) *SyncUser {
	return &SyncUser{
		Identities: identities,
		Users:      users,
		attempts:   defaultSyncAttempts,
		interval:   defaultSyncInterval,
	}
}

func (c *SyncUser) Execute(ctx context.Context, req SyncUserRequest) (SyncUserResponse, error) {
	logger := domain.LoggerFromContext(ctx)

	available, err := domain.Retry(ctx, c.attempts, c.interval,
		func(ctx context.Context) (bool, error) {
			return c.Identities.IdentityExists(ctx, req.ExternalID)
		})
	if err != nil {
		logger.WarnContext(ctx, "identity availability check failed, skipping profile sync",
			"external_id", req.ExternalID, "error", err)
		return SyncUserResponse{Synced: false}, nil
	}
	if !available {
		logger.WarnContext(ctx, "identity not available after retries, skipping profile sync",
			"external_id", req.ExternalID)
		return SyncUserResponse{Synced: false}, nil
	}

	user, err := c.Users.UpsertUser(ctx, domain.User{
		ExternalID:  req.ExternalID,
		Email:       req.Email,
		UserName:    req.UserName,
		AuthMethod:  req.AuthMethod,
		HasPassword: req.HasPassword,
		Image:       req.Image,
	})
	if err != nil {
		return SyncUserResponse{}, fmt.Errorf("upserting user profile: %w", err)
	}

	return SyncUserResponse{Synced: true, User: user}, nil
}
