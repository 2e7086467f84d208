package review_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/model"
	reviewrepo "github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/review"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/sqlerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (reviewrepo.ReviewRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return reviewrepo.NewReviewRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestSQL_Create(t *testing.T) {
	insert := regexp.QuoteMeta("INSERT INTO review (listing_id, account_id, message, created_at)")

	t.Run("success", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectExec(insert).WithArgs(uint64(3), uint64(7), "Lovely place").
			WillReturnResult(sqlmock.NewResult(12, 1))

		id, err := repo.Create(context.Background(), &model.ReviewEntity{ListingID: 3, AccountID: 7, Message: "Lovely place"})

		require.NoError(t, err)
		assert.Equal(t, uint64(12), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("listing gone", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectExec(insert).WithArgs(uint64(3), uint64(7), "Lovely place").
			WillReturnError(&mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"})

		_, err := repo.Create(context.Background(), &model.ReviewEntity{ListingID: 3, AccountID: 7, Message: "Lovely place"})

		assert.True(t, errors.Is(err, sqlerr.ErrForeignKey))
	})
}

func TestSQL_ListByListingIDs(t *testing.T) {
	t.Run("no ids skips the query", func(t *testing.T) {
		repo, mock := newRepo(t)

		reviews, err := repo.ListByListingIDs(context.Background(), nil)

		require.NoError(t, err)
		assert.NotNil(t, reviews)
		assert.Empty(t, reviews)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("joins the author", func(t *testing.T) {
		repo, mock := newRepo(t)
		now := time.Now().UTC()
		rows := sqlmock.NewRows([]string{"id", "listing_id", "account_id", "message", "created_at", "first_name", "last_name", "email"}).
			AddRow(1, 3, 7, "Lovely place", now, "Ada", "Lovelace", "ada@example.com").
			AddRow(2, 4, 8, "Too small", now, "Alan", "Turing", "alan@example.com")
		mock.ExpectQuery(regexp.QuoteMeta("FROM review r")).WithArgs(uint64(3), uint64(4)).WillReturnRows(rows)

		reviews, err := repo.ListByListingIDs(context.Background(), []uint64{3, 4})

		require.NoError(t, err)
		require.Len(t, reviews, 2)
		assert.Equal(t, "Ada", reviews[0].FirstName)
		assert.Equal(t, uint64(4), reviews[1].ListingID)
		assert.Equal(t, "Too small", reviews[1].Message)
	})
}
