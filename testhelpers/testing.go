package testhelpers

import (
	"context"
	"os"
	"testing"

	"jobsapi/internal/models"
	"jobsapi/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// TestDB holds the database connection for testing
type TestDB struct {
	Pool    *pgxpool.Pool
	Cleanup func()
}

// SetupTestDB connects to TEST_DATABASE_URL, migrates it and empties the
// tables. The test is skipped when the variable is unset or -short is given.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, connString, zerolog.Nop())
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := database.Migrate(ctx, pool, zerolog.Nop()); err != nil {
		pool.Close()
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	truncate := func() {
		if _, err := pool.Exec(ctx, `TRUNCATE jobs, users`); err != nil {
			t.Errorf("Failed to truncate test tables: %v", err)
		}
	}
	truncate()

	return &TestDB{
		Pool: pool,
		Cleanup: func() {
			truncate()
			pool.Close()
		},
	}
}

// SetupTestUser inserts a user with a bcrypt hash of password.
func SetupTestUser(t *testing.T, db *TestDB, name, email, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	query := `
		INSERT INTO users (id, name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`
	err = db.Pool.QueryRow(context.Background(), query, user.ID, user.Name, user.Email, user.PasswordHash).
		Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
