package services

import (
	"context"
	"errors"

	"jobsapi/internal/models"
	"jobsapi/internal/repositories"

	"github.com/google/uuid"
)

// JobService is CRUD over the job store, always on behalf of ownerID.
type JobService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]*models.Job, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*models.Job, error)
	Create(ctx context.Context, ownerID uuid.UUID, in JobInput) (*models.Job, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, in JobUpdateInput) (*models.Job, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type jobService struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &jobService{
		jobRepo: jobRepo,
	}
}

func (s *jobService) List(ctx context.Context, ownerID uuid.UUID) ([]*models.Job, error) {
	return s.jobRepo.List(ctx, ownerID)
}

func (s *jobService) Get(ctx context.Context, ownerID, id uuid.UUID) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, mapNotFound(err, id)
	}
	return job, nil
}

// Create always records ownerID as the creator.
func (s *jobService) Create(ctx context.Context, ownerID uuid.UUID, in JobInput) (*models.Job, error) {
	if err := ValidateJob(in); err != nil {
		return nil, err
	}

	status := models.JobStatus(in.Status)
	if status == "" {
		status = models.JobStatusPending
	}

	job := &models.Job{
		ID:        uuid.New(),
		Company:   in.Company,
		Position:  in.Position,
		Status:    status,
		CreatedBy: ownerID,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) Update(ctx context.Context, ownerID, id uuid.UUID, in JobUpdateInput) (*models.Job, error) {
	if err := ValidateJobUpdate(in); err != nil {
		return nil, err
	}

	patch := models.JobPatch{
		Company:  in.Company,
		Position: in.Position,
	}
	if in.Status != nil {
		status := models.JobStatus(*in.Status)
		patch.Status = &status
	}

	job, err := s.jobRepo.Update(ctx, ownerID, id, patch)
	if err != nil {
		return nil, mapNotFound(err, id)
	}
	return job, nil
}

func (s *jobService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return mapNotFound(s.jobRepo.Delete(ctx, ownerID, id), id)
}

func mapNotFound(err error, id uuid.UUID) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return jobNotFound(id)
	}
	return err
}
