package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/phrazzld/roster-api/internal/domain"
	"github.com/phrazzld/roster-api/internal/platform/postgres"
	"github.com/phrazzld/roster-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPostgresUserStore_CreateHashesPassword(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	s := postgres.NewPostgresUserStore(db, bcrypt.MinCost, nil)

	user, err := domain.NewUser("registrar", "", "password123")
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, "registrar", nil, sqlmock.AnyArg(), user.CreatedAt, user.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Create(context.Background(), user))
	assert.Empty(t, user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("password123")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserStore_CreateDuplicate(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	s := postgres.NewPostgresUserStore(db, bcrypt.MinCost, nil)

	user, err := domain.NewUser("registrar", "reg@college.edu", "password123")
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO users").WillReturnError(newPgError("23505", "users_username_key"))
	assert.ErrorIs(t, s.Create(context.Background(), user), store.ErrUsernameExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserStore_Get(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	s := postgres.NewPostgresUserStore(db, 0, nil)

	id := uuid.New()
	now := time.Now().UTC()
	cols := []string{"id", "username", "email", "hashed_password", "created_at", "updated_at"}
	mock.ExpectQuery("WHERE username").WithArgs("registrar").WillReturnRows(
		sqlmock.NewRows(cols).AddRow(id.String(), "registrar", nil, "$2a$04$hash", now, now))
	mock.ExpectQuery("WHERE id").WithArgs(id).WillReturnError(sql.ErrNoRows)

	ctx := context.Background()
	user, err := s.GetByUsername(ctx, "registrar")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Empty(t, user.Email)

	_, err = s.GetByID(ctx, id)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
