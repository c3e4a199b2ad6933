package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"quizforge/internal/domain"
	"quizforge/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

// setupUserTestDB creates a new sqlx.DB instance and sqlmock for user repository testing.
func setupUserTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func userColumns() []string {
	return []string{"id", "name", "email", "hashed_password", "role", "student_number", "created_at", "updated_at", "deleted_at"}
}

func TestToDomainUser(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	modelUser := &models.User{
		ID:             "01HUSER000000000000000000A",
		Name:           "Morgan",
		Email:          "morgan@example.com",
		HashedPassword: "hash",
		Role:           "student",
		StudentNumber:  sql.NullString{String: "S-1024", Valid: true},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	domainUser := toDomainUser(modelUser)
	assert.NotNil(t, domainUser)
	assert.Equal(t, modelUser.ID, domainUser.ID)
	assert.Equal(t, domain.RoleStudent, domainUser.Role)
	assert.Equal(t, "S-1024", domainUser.StudentNumber)

	modelUser.StudentNumber.Valid = false
	domainUser = toDomainUser(modelUser)
	assert.Equal(t, "", domainUser.StudentNumber)
}

func TestCreateUser(t *testing.T) {
	db, mock := setupUserTestDB(t)
	defer db.Close()
	repo := NewSQLXUserRepository(db)

	user := domain.NewUser("Morgan", "morgan@example.com", "hash", domain.RoleTeacher)
	user.ID = "01HUSER000000000000000000A"

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateUser(context.Background(), user)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail_Found(t *testing.T) {
	db, mock := setupUserTestDB(t)
	defer db.Close()
	repo := NewSQLXUserRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(userColumns()).
		AddRow("01HUSER000000000000000000A", "Morgan", "morgan@example.com", "hash", "teacher", nil, now, now, nil)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM users WHERE email = $1 AND deleted_at IS NULL`)).
		WithArgs("morgan@example.com").
		WillReturnRows(rows)

	user, err := repo.GetUserByEmail(context.Background(), "morgan@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, domain.RoleTeacher, user.Role)
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	db, mock := setupUserTestDB(t)
	defer db.Close()
	repo := NewSQLXUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM users WHERE email = $1 AND deleted_at IS NULL`)).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestGetUserByID_NotFound(t *testing.T) {
	db, mock := setupUserTestDB(t)
	defer db.Close()
	repo := NewSQLXUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM users WHERE id = $1 AND deleted_at IS NULL`)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetUserByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, user)
}
