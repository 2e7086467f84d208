package listing_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	listingrepo "github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/listing"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/textsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var listingColumns = []string{"id", "agent_id", "name", "description", "location", "price", "bedrooms", "bathrooms", "lounges", "is_new", "is_furnished", "search_vector", "created_at", "likes"}

func TestSQL_FindByLexemes(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := listingrepo.NewListingRepository(sqlx.NewDb(db, "mysql"))

	mock.ExpectQuery(regexp.QuoteMeta("WHERE JSON_CONTAINS_PATH(l.search_vector, 'all', ?, ?) ORDER BY l.id")).
		WithArgs(`$."two"`, `$."bedroom"`).
		WillReturnRows(sqlmock.NewRows(listingColumns).
			AddRow(1, 9, "Two Bedroom Flat", "Bright", "Lekki", 500000, 2, 2, 1, true, false, `{"two":{"a":1},"bedroom":{"a":1}}`, time.Now(), 4))

	got, err := repo.FindByLexemes(context.Background(), []string{"two", "bedroom"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(4), got[0].Likes)
	assert.Equal(t, textsearch.Position{A: 1}, got[0].SearchVector["bedroom"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_FindByLexemes_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := listingrepo.NewListingRepository(sqlx.NewDb(db, "mysql"))

	got, err := repo.FindByLexemes(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
