package repository

import (
	apperrors "GenoFlow_Gateway/internal/api-gateway/errors"
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestUserRepoWithMockDB(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open gorm db: %v", err)
	}

	repo := NewUserRepository(gormDB)
	return repo, mock
}

func TestUserRepository_GetUserByUsername(t *testing.T) {
	userID := "user-123"
	username := "alice"
	dbErr := errors.New("db error")
	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedRoles []string
		expectedError error
	}{
		{
			name: "Success, User found with roles",
			mockSetup: func(mock sqlmock.Sqlmock) {
				userRows := sqlmock.NewRows([]string{"id", "username", "password", "is_active"}).AddRow(userID, username, "$2a$10$hash", true)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1 ORDER BY "users"."id" LIMIT $2`)).
					WithArgs(username, 1).WillReturnRows(userRows)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "user_roles" WHERE "user_roles"."user_id" = $1`)).
					WithArgs(userID).
					WillReturnRows(sqlmock.NewRows([]string{"user_id", "role_id"}).AddRow(userID, "role-1").AddRow(userID, "role-2"))
				roleRows := sqlmock.NewRows([]string{"id", "name"}).AddRow("role-1", "analyst").AddRow("role-2", "researcher")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "roles" WHERE "roles"."id" IN ($1,$2)`)).
					WithArgs("role-1", "role-2").WillReturnRows(roleRows)
			},
			expectedRoles: []string{"analyst", "researcher"},
		},
		{
			name: "Error, User not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1 ORDER BY "users"."id" LIMIT $2`)).
					WithArgs(username, 1).WillReturnError(gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
		{
			name: "Error, Database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1 ORDER BY "users"."id" LIMIT $2`)).
					WithArgs(username, 1).WillReturnError(dbErr)
			},
			expectedError: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepoWithMockDB(t)
			tt.mockSetup(mock)

			user, err := repo.GetUserByUsername(context.Background(), username)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, userID, user.ID)
				assert.True(t, user.IsActive)
				assert.ElementsMatch(t, tt.expectedRoles, user.RoleNames())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetUserByID(t *testing.T) {
	userID := "user-123"
	roleID := "role-456"
	dbErr := errors.New("db error")
	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success, User found with roles",
			mockSetup: func(mock sqlmock.Sqlmock) {
				userRows := sqlmock.NewRows([]string{"id", "username"}).AddRow(userID, "bob")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE id = $1 ORDER BY "users"."id" LIMIT $2`)).
					WithArgs(userID, 1).WillReturnRows(userRows)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "user_roles" WHERE "user_roles"."user_id" = $1`)).
					WithArgs(userID).
					WillReturnRows(sqlmock.NewRows([]string{"user_id", "role_id"}).AddRow(userID, roleID))
				roleRows := sqlmock.NewRows([]string{"id", "name"}).AddRow(roleID, "admin")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "roles" WHERE "roles"."id" = $1`)).
					WithArgs(roleID).WillReturnRows(roleRows)
			},
		},
		{
			name: "Error, User not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE id = $1 ORDER BY "users"."id" LIMIT $2`)).
					WithArgs(userID, 1).WillReturnError(gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
		{
			name: "Error, Database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE id = $1 ORDER BY "users"."id" LIMIT $2`)).
					WithArgs(userID, 1).WillReturnError(dbErr)
			},
			expectedError: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepoWithMockDB(t)
			tt.mockSetup(mock)

			user, err := repo.GetUserByID(context.Background(), userID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, []string{"admin"}, user.RoleNames())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
