package itineraries

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderday/go-hangout-itinerary/internal/types"
)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *PostgresRepository) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)
	return mockPool, NewPostgresRepository(mockPool, slog.Default())
}

func sampleItinerary() types.ItineraryResponse {
	return types.ItineraryResponse{
		Title:       "Half day Adventure in Noida",
		Description: "Food and exploring.",
		Location:    "Noida",
		Activities: []types.ItineraryActivity{
			{ID: "act1", Title: "Breakfast at the Sector 18 Market", TimeOfDay: types.TimeOfDayMorning},
		},
		Recommendations: []types.Recommendation{
			{ID: "rec1", Title: "Street Food Crawl in Atta Market"},
		},
	}
}

func TestRepositorySave(t *testing.T) {
	mockPool, repo := newMockRepo(t)

	mockPool.ExpectExec("INSERT INTO itineraries").
		WithArgs(pgxmock.AnyArg(), "user-123", "Half day Adventure in Noida", "Food and exploring.", "Noida",
			pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	id, err := repo.Save(context.Background(), "user-123", sampleItinerary())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestRepositorySaveExecError(t *testing.T) {
	mockPool, repo := newMockRepo(t)

	mockPool.ExpectExec("INSERT INTO itineraries").
		WithArgs(pgxmock.AnyArg(), "user-123", "Half day Adventure in Noida", "Food and exploring.", "Noida",
			pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.Save(context.Background(), "user-123", sampleItinerary())
	assert.Error(t, err)
}

func TestRepositoryList(t *testing.T) {
	mockPool, repo := newMockRepo(t)

	itinID := uuid.New()
	createdAt := time.Now().Add(-time.Hour)
	rows := pgxmock.NewRows([]string{"id", "user_id", "title", "description", "location", "activities", "recommendations", "created_at"}).
		AddRow(itinID, "user-123", "Half day Adventure in Noida", "Food and exploring.", "Noida",
			[]byte(`[{"id":"act1","time":"","title":"Breakfast","description":"","location":"","price":"","rating":"","image":"","timeOfDay":"morning","type":"cafe"}]`),
			[]byte(`[{"id":"rec1","title":"Street Food Crawl","description":"","rating":"","image":"","duration":""}]`),
			createdAt)

	mockPool.ExpectQuery("SELECT id, user_id, title, description, location, activities, recommendations, created_at").
		WithArgs("user-123").
		WillReturnRows(rows)

	saved, err := repo.List(context.Background(), "user-123")
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, itinID, saved[0].ID)
	assert.Equal(t, "user-123", saved[0].UserID)
	require.Len(t, saved[0].Activities, 1)
	assert.Equal(t, "Breakfast", saved[0].Activities[0].Title)
	require.Len(t, saved[0].Recommendations, 1)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestRepositoryListEmpty(t *testing.T) {
	mockPool, repo := newMockRepo(t)

	mockPool.ExpectQuery("SELECT id, user_id, title, description, location, activities, recommendations, created_at").
		WithArgs("user-456").
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "title", "description", "location", "activities", "recommendations", "created_at"}))

	saved, err := repo.List(context.Background(), "user-456")
	require.NoError(t, err)
	assert.Empty(t, saved)
	assert.NotNil(t, saved)
}

func TestRepositoryDelete(t *testing.T) {
	mockPool, repo := newMockRepo(t)
	itinID := uuid.New()

	mockPool.ExpectExec("DELETE FROM itineraries").
		WithArgs(itinID, "user-123").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), "user-123", itinID)
	assert.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestRepositoryDeleteForeignRowIsNoop(t *testing.T) {
	mockPool, repo := newMockRepo(t)
	itinID := uuid.New()

	// Another user's id matches zero rows. That is silence, not an error.
	mockPool.ExpectExec("DELETE FROM itineraries").
		WithArgs(itinID, "user-456").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "user-456", itinID)
	assert.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}
