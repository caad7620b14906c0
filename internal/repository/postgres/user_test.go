package postgres

import (
	"context"
	"database/sql"
	"testing"

	"gearshare-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserRepoMock(t *testing.T) (sqlmock.Sqlmock, *userRepository) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return mock, &userRepository{db: db}
}

func TestUserCreate(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("Olga", "olga@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	u := &domain.User{Name: "Olga", Email: "olga@example.com"}
	err := repo.Create(context.Background(), u)

	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
}

func TestUserGetByIDNotFound(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	mock.ExpectQuery("SELECT id, name, email FROM users").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 404)

	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Equal(t, "User with id 404 not exist", err.Error())
}

func TestUserList(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	rows := sqlmock.NewRows([]string{"id", "name", "email"}).
		AddRow(1, "Olga", "olga@example.com").
		AddRow(2, "Boris", "boris@example.com")
	mock.ExpectQuery("SELECT id, name, email FROM users ORDER BY id").WillReturnRows(rows)

	users, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Olga", users[0].Name)
	assert.Equal(t, "Boris", users[1].Name)
}

func TestUserDelete(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
