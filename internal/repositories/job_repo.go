package repositories

import (
	"context"
	"errors"
	"fmt"

	"jobsapi/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// JobRepository is the job store. Every method except Create takes the owner
// and filters on created_by, so a job owned by someone else looks exactly
// like a missing one.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Job, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]*models.Job, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, patch models.JobPatch) (*models.Job, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type jobRepo struct {
	db Database
}

func NewJobRepository(db Database) JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *models.Job) error {
	query := `
		INSERT INTO jobs (id, company, position, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, job.ID, job.Company, job.Position, string(job.Status), job.CreatedBy).
		Scan(&job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Job, error) {
	query := `
		SELECT id, company, position, status, created_by, created_at, updated_at
		FROM jobs
		WHERE created_by = $1 AND id = $2
	`
	job, err := scanJob(r.db.QueryRow(ctx, query, ownerID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

func (r *jobRepo) List(ctx context.Context, ownerID uuid.UUID) ([]*models.Job, error) {
	query := `
		SELECT id, company, position, status, created_by, created_at, updated_at
		FROM jobs
		WHERE created_by = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []*models.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// Update applies the non-nil fields of patch in a single statement and
// returns the stored row.
func (r *jobRepo) Update(ctx context.Context, ownerID, id uuid.UUID, patch models.JobPatch) (*models.Job, error) {
	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}

	query := `
		UPDATE jobs
		SET company = COALESCE($3, company),
			position = COALESCE($4, position),
			status = COALESCE($5, status),
			updated_at = NOW()
		WHERE created_by = $1 AND id = $2
		RETURNING id, company, position, status, created_by, created_at, updated_at
	`
	job, err := scanJob(r.db.QueryRow(ctx, query, ownerID, id, patch.Company, patch.Position, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

func (r *jobRepo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query := `DELETE FROM jobs WHERE created_by = $1 AND id = $2`
	tag, err := r.db.Exec(ctx, query, ownerID, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanJob(row pgx.Row) (*models.Job, error) {
	job := &models.Job{}
	var status string
	if err := row.Scan(&job.ID, &job.Company, &job.Position, &status, &job.CreatedBy, &job.CreatedAt, &job.UpdatedAt); err != nil {
		return nil, err
	}
	job.Status = models.JobStatus(status)
	return job, nil
}
