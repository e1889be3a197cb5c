package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"

	"github.com/George-20m/Sip-Match2/internal/domain"
)

const userColumns = "id, external_id, user_name, email, image, auth_method, " +
	"has_password, created_at, updated_at"

func (r *Repository) UpsertUser(ctx context.Context, user domain.User) (domain.User, error) {
	existing, err := r.GetUserByExternalID(ctx, user.ExternalID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, err
	}

	now := time.Now()

	if errors.Is(err, domain.ErrNotFound) {
		user.ID = uuid.NewString()
		user.CreatedAt = now
		user.UpdatedAt = now

		ib := sqlbuilder.InsertInto("users")
		ib.Cols("id", "external_id", "user_name", "email", "image",
			"auth_method", "has_password", "created_at", "updated_at")
		ib.Values(user.ID, user.ExternalID, user.UserName, user.Email, user.Image,
			user.AuthMethod, user.HasPassword, user.CreatedAt, user.UpdatedAt)

		query, args := ib.Build()
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return domain.User{}, fmt.Errorf("inserting user: %w", err)
		}
		return user, nil
	}

	// Refresh mirrored fields; the provider may have changed them.
	ub := sqlbuilder.Update("users")
	ub.Set(
		ub.Assign("user_name", user.UserName),
		ub.Assign("email", user.Email),
		ub.Assign("image", user.Image),
		ub.Assign("auth_method", user.AuthMethod),
		ub.Assign("has_password", user.HasPassword),
		ub.Assign("updated_at", now),
	)
	ub.Where(ub.Equal("external_id", user.ExternalID))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.User{}, fmt.Errorf("updating user: %w", err)
	}

	existing.UserName = user.UserName
	existing.Email = user.Email
	existing.Image = user.Image
	existing.AuthMethod = user.AuthMethod
	existing.HasPassword = user.HasPassword
	existing.UpdatedAt = now
	return existing, nil
}

func (r *Repository) GetUserByExternalID(ctx context.Context, externalID string) (domain.User, error) {
	return r.getUserBy(ctx, "external_id", externalID)
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getUserBy(ctx, "email", email)
}

func (r *Repository) getUserBy(ctx context.Context, column, value string) (domain.User, error) {
	sb := sqlbuilder.Select(userColumns)
	sb.From("users")
	sb.Where(sb.Equal(column, value))

	query, args := sb.Build()
	row := r.db.QueryRowContext(ctx, query, args...)

	var (
		user  domain.User
		image sql.NullString
	)
	err := row.Scan(
		&user.ID,
		&user.ExternalID,
		&user.UserName,
		&user.Email,
		&image,
		&user.AuthMethod,
		&user.HasPassword,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("scanning user: %w", err)
	}

	if image.Valid {
		user.Image = &image.String
	}
	return user, nil
}

func (r *Repository) UpdateUserProfile(
	ctx context.Context,
	externalID string,
	update domain.ProfileUpdate,
) error {
	if _, err := r.GetUserByExternalID(ctx, externalID); err != nil {
		return err
	}

	ub := sqlbuilder.Update("users")
	assignments := []string{ub.Assign("updated_at", time.Now())}

	if update.UserName != nil {
		assignments = append(assignments, ub.Assign("user_name", *update.UserName))
	}
	if update.ImageSet {
		assignments = append(assignments, ub.Assign("image", update.Image))
	}

	ub.Set(assignments...)
	ub.Where(ub.Equal("external_id", externalID))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating user profile: %w", err)
	}
	return nil
}

func (r *Repository) DeleteUser(ctx context.Context, externalID string) error {
	if _, err := r.GetUserByExternalID(ctx, externalID); err != nil {
		return err
	}

	db := sqlbuilder.DeleteFrom("users")
	db.Where(db.Equal("external_id", externalID))

	query, args := db.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return nil
}
