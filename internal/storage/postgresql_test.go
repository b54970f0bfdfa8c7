package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pustakdhaan/internal/domain"
	"pustakdhaan/internal/models"
	"pustakdhaan/internal/pkg/logger"
)

const unreachableDatabaseURI = "host=127.0.0.1 port=1 user=pustak dbname=pustak sslmode=disable connect_timeout=1"

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{
			name: "duplicate email",
			err:  &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"},
			kind: domain.ErrInvalidOperation,
		},
		{
			name: "missing reference",
			err:  fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}),
			kind: domain.ErrNotFound,
		},
		{
			name: "negative counter",
			err:  &pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: "donation_drives_books_4_6_check"},
			kind: domain.ErrInvalidState,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.ErrorIs(t, translateError(test.err), test.kind)
		})
	}
}

func TestTranslateError_PassesThroughOtherErrors(t *testing.T) {
	connErr := errors.New("connection reset")
	assert.Equal(t, connErr, translateError(connErr))

	syntaxErr := &pgconn.PgError{Code: pgerrcode.SyntaxError}
	assert.Equal(t, error(syntaxErr), translateError(syntaxErr))
}

func TestTranslateError_DuplicateEmailMessage(t *testing.T) {
	err := translateError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"})
	assert.EqualError(t, err, "user with provided email already exists")
}

func TestCategoryCounts_RoundTrip(t *testing.T) {
	counts := countsFromModel(models.CategoryCounts{models.AgeFourToSix: 5, models.AgeEightToTen: 2})
	assert.Equal(t, categoryCounts{0, 5, 0, 2}, counts)
	assert.Equal(t, []any{0, 5, 0, 2}, counts.args())

	model := counts.model()
	assert.Len(t, model, len(models.AgeCategories))
	assert.Equal(t, 7, model.Total())
	assert.Equal(t, 0, model[models.AgeTwoToFour])
}

func TestLikeReplacer(t *testing.T) {
	assert.Equal(t, `100\% \_real\\`, likeReplacer.Replace(`100% _real\`))
	assert.Equal(t, "harry potter", likeReplacer.Replace("harry potter"))
}

func TestNewPostgreSQL_UnreachableDatabase(t *testing.T) {
	postgresql, err := NewPostgreSQL(unreachableDatabaseURI, logger.NewNop())
	require.Error(t, err)
	require.NotNil(t, postgresql)
	assert.Nil(t, postgresql.db, "pool must be closed when the ping fails")
	assert.NotPanics(t, postgresql.Close)
}
