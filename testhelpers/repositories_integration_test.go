package testhelpers

import (
	"context"
	"testing"

	"jobsapi/internal/models"
	"jobsapi/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepositories(t *testing.T) {
	testDB := SetupTestDB(t)
	defer testDB.Cleanup()

	ctx := context.Background()
	users := repositories.NewUserRepo(testDB.Pool)
	jobs := repositories.NewJobRepository(testDB.Pool)

	alice := SetupTestUser(t, testDB, "Alice", "alice@example.com", "secret1")
	bob := SetupTestUser(t, testDB, "Bob", "bob@example.com", "secret2")

	t.Run("DuplicateEmail", func(t *testing.T) {
		err := users.Create(ctx, &models.User{
			ID:           uuid.New(),
			Name:         "Alice Again",
			Email:        "alice@example.com",
			PasswordHash: "x",
		})
		assert.ErrorIs(t, err, repositories.ErrDuplicateEmail)
	})

	t.Run("GetByEmail", func(t *testing.T) {
		found, err := users.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, found.ID)

		_, err = users.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("OwnershipScoping", func(t *testing.T) {
		job := &models.Job{
			ID:        uuid.New(),
			Company:   "Acme",
			Position:  "Engineer",
			Status:    models.JobStatusPending,
			CreatedBy: alice.ID,
		}
		require.NoError(t, jobs.Create(ctx, job))

		_, err := jobs.GetByID(ctx, bob.ID, job.ID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)

		_, err = jobs.Update(ctx, bob.ID, job.ID, models.JobPatch{Company: StringPtr("Evil")})
		assert.ErrorIs(t, err, repositories.ErrNotFound)

		assert.ErrorIs(t, jobs.Delete(ctx, bob.ID, job.ID), repositories.ErrNotFound)

		bobJobs, err := jobs.List(ctx, bob.ID)
		require.NoError(t, err)
		assert.Empty(t, bobJobs)

		updated, err := jobs.Update(ctx, alice.ID, job.ID, models.JobPatch{Position: StringPtr("Lead")})
		require.NoError(t, err)
		assert.Equal(t, "Acme", updated.Company)
		assert.Equal(t, "Lead", updated.Position)

		require.NoError(t, jobs.Delete(ctx, alice.ID, job.ID))
		assert.ErrorIs(t, jobs.Delete(ctx, alice.ID, job.ID), repositories.ErrNotFound)
	})
}
