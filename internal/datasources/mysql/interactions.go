package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"

	"github.com/George-20m/Sip-Match2/internal/domain"
)

const interactionColumns = "id, user_id, drink_id, mood, temperature, " +
	"weather_condition, time_of_day, interaction_type, rating, timestamp"

func (r *Repository) CreateInteraction(
	ctx context.Context,
	rec domain.InteractionRecord,
) (string, error) {
	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}

	var rating interface{}
	if rec.Rating != nil {
		rating = *rec.Rating
	}

	ib := sqlbuilder.InsertInto("recommendations")
	ib.Cols("id", "user_id", "drink_id", "mood", "temperature",
		"weather_condition", "time_of_day", "interaction_type", "rating", "timestamp")
	ib.Values(id, rec.UserID, rec.DrinkID, rec.Context.Mood, rec.Context.Temperature,
		rec.Context.WeatherCondition, rec.Context.TimeOfDay, string(rec.Type), rating, rec.Timestamp)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return "", fmt.Errorf("inserting interaction record: %w", err)
	}

	return id, nil
}

func (r *Repository) DeleteInteraction(ctx context.Context, id string) error {
	db := sqlbuilder.DeleteFrom("recommendations")
	db.Where(db.Equal("id", id))

	query, args := db.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting interaction record: %w", err)
	}
	return nil
}

func (r *Repository) ListUserInteractions(
	ctx context.Context,
	userID string,
) ([]domain.InteractionRecord, error) {
	sb := sqlbuilder.Select(interactionColumns)
	sb.From("recommendations")
	sb.Where(sb.Equal("user_id", userID))
	sb.OrderBy("timestamp DESC")

	query, args := sb.Build()
	return r.queryInteractions(ctx, query, args)
}

func (r *Repository) FindFavorite(
	ctx context.Context,
	userID, drinkID string,
) (*domain.InteractionRecord, error) {
	sb := sqlbuilder.Select(interactionColumns)
	sb.From("recommendations")
	sb.Where(
		sb.Equal("user_id", userID),
		sb.Equal("drink_id", drinkID),
		sb.Equal("interaction_type", string(domain.InteractionFavorited)),
	)
	sb.Limit(1)

	query, args := sb.Build()
	records, err := r.queryInteractions(ctx, query, args)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

func (r *Repository) ListFavorites(
	ctx context.Context,
	userID string,
) ([]domain.InteractionRecord, error) {
	sb := sqlbuilder.Select(interactionColumns)
	sb.From("recommendations")
	sb.Where(
		sb.Equal("user_id", userID),
		sb.Equal("interaction_type", string(domain.InteractionFavorited)),
	)
	sb.OrderBy("timestamp DESC")

	query, args := sb.Build()
	return r.queryInteractions(ctx, query, args)
}

func (r *Repository) UpdateRating(ctx context.Context, id string, rating int) error {
	ub := sqlbuilder.Update("recommendations")
	ub.Set(ub.Assign("rating", rating))
	ub.Where(ub.Equal("id", id))

	query, args := ub.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating interaction rating: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rating update result: %w", err)
	}
	if affected == 0 {
		// Either the record is missing or the rating is unchanged; only the
		// former is an error.
		if exists, err := r.interactionExists(ctx, id); err != nil {
			return err
		} else if !exists {
			return domain.ErrNotFound
		}
	}

	return nil
}

func (r *Repository) interactionExists(ctx context.Context, id string) (bool, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("recommendations")
	sb.Where(sb.Equal("id", id))

	query, args := sb.Build()
	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("checking interaction record existence: %w", err)
	}
	return count > 0, nil
}

func (r *Repository) queryInteractions(
	ctx context.Context,
	query string,
	args []interface{},
) ([]domain.InteractionRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running interactions query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := []domain.InteractionRecord{}
	for rows.Next() {
		var (
			rec             domain.InteractionRecord
			interactionType string
			rating          sql.NullInt64
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.DrinkID,
			&rec.Context.Mood,
			&rec.Context.Temperature,
			&rec.Context.WeatherCondition,
			&rec.Context.TimeOfDay,
			&interactionType,
			&rating,
			&rec.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scanning interaction records: %w", err)
		}

		rec.Type = domain.InteractionType(interactionType)
		if rating.Valid {
			value := int(rating.Int64)
			rec.Rating = &value
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return records, nil
}
