package itineraries

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wanderday/go-hangout-itinerary/internal/types"
)

// DB is the subset of pgxpool.Pool the repository needs. pgxmock satisfies
// it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ Repository = (*PostgresRepository)(nil)

// Repository defines the persistence contract for saved itineraries.
// List and Delete are scoped strictly to the owning user.
type Repository interface {
	Save(ctx context.Context, userID string, itinerary types.ItineraryResponse) (uuid.UUID, error)
	List(ctx context.Context, userID string) ([]types.SavedItinerary, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type PostgresRepository struct {
	logger *slog.Logger
	db     DB
}

func NewPostgresRepository(db DB, logger *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		logger: logger,
		db:     db,
	}
}

// Save appends a new itinerary row for the user.
func (r *PostgresRepository) Save(ctx context.Context, userID string, itinerary types.ItineraryResponse) (uuid.UUID, error) {
	activities, err := json.Marshal(itinerary.Activities)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to encode activities: %w", err)
	}
	recommendations, err := json.Marshal(itinerary.Recommendations)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to encode recommendations: %w", err)
	}

	id := uuid.New()
	_, err = r.db.Exec(ctx,
		`INSERT INTO itineraries (id, user_id, title, description, location, activities, recommendations)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, userID, itinerary.Title, itinerary.Description, itinerary.Location, activities, recommendations)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save itinerary: %w", err)
	}
	return id, nil
}

// List returns the user's saved itineraries, newest first.
func (r *PostgresRepository) List(ctx context.Context, userID string) ([]types.SavedItinerary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, title, description, location, activities, recommendations, created_at
         FROM itineraries WHERE user_id = $1 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list itineraries: %w", err)
	}
	defer rows.Close()

	saved := []types.SavedItinerary{}
	for rows.Next() {
		var item types.SavedItinerary
		var activities, recommendations []byte
		err := rows.Scan(&item.ID, &item.UserID, &item.Title, &item.Description, &item.Location,
			&activities, &recommendations, &item.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan itinerary row: %w", err)
		}
		if err := json.Unmarshal(activities, &item.Activities); err != nil {
			return nil, fmt.Errorf("failed to decode activities: %w", err)
		}
		if err := json.Unmarshal(recommendations, &item.Recommendations); err != nil {
			return nil, fmt.Errorf("failed to decode recommendations: %w", err)
		}
		saved = append(saved, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading itinerary rows: %w", err)
	}
	return saved, nil
}

// Delete removes the row only if the caller owns it. A foreign or missing id
// affects zero rows and is not an error.
func (r *PostgresRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		"DELETE FROM itineraries WHERE id = $1 AND user_id = $2",
		id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete itinerary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		r.logger.DebugContext(ctx, "Delete matched no rows",
			slog.String("itinerary_id", id.String()), slog.String("user_id", userID))
	}
	return nil
}
