package datasources

import (
	"context"

	"github.com/George-20m/Sip-Match2/internal/domain"
)

// UserStore combines all user profile interfaces.
type UserStore interface {
	UserUpserter
	UserByExternalIDGetter
	UserByEmailGetter
	UserProfileUpdater
	UserDeleter
}

// UserUpserter creates the user row keyed by the identity provider's subject,
// or refreshes its mirrored fields when it already exists.
type UserUpserter interface {
	UpsertUser(ctx context.Context, user domain.User) (domain.User, error)
}

type UserByExternalIDGetter interface {
	GetUserByExternalID(ctx context.Context, externalID string) (domain.User, error)
}

type UserByEmailGetter interface {
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

// UserProfileUpdater applies a partial profile change. It returns
// domain.ErrNotFound when the user does not exist.
type UserProfileUpdater interface {
	UpdateUserProfile(ctx context.Context, externalID string, update domain.ProfileUpdate) error
}

type UserDeleter interface {
	DeleteUser(ctx context.Context, externalID string) error
}
