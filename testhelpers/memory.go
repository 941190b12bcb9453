package testhelpers

import (
	"context"
	"sync"
	"time"

	"jobsapi/internal/models"
	"jobsapi/internal/repositories"

	"github.com/google/uuid"
)

// MemoryUserRepository is an in-process UserRepository with the same unique
// email rule as the users table.
type MemoryUserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{byEmail: make(map[string]*models.User)}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return repositories.ErrDuplicateEmail
	}
	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now

	stored := *user
	r.byEmail[user.Email] = &stored
	return nil
}

func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	found := *user
	return &found, nil
}

// MemoryJobRepository is an in-process JobRepository. Jobs are kept in
// insertion order, which is also creation order.
type MemoryJobRepository struct {
	mu   sync.RWMutex
	jobs []*models.Job
}

func NewMemoryJobRepository() *MemoryJobRepository {
	return &MemoryJobRepository{}
}

func (r *MemoryJobRepository) Create(_ context.Context, job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	job.CreatedAt, job.UpdatedAt = now, now

	stored := *job
	r.jobs = append(r.jobs, &stored)
	return nil
}

func (r *MemoryJobRepository) GetByID(_ context.Context, ownerID, id uuid.UUID) (*models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(ownerID, id)
	if i < 0 {
		return nil, repositories.ErrNotFound
	}
	found := *r.jobs[i]
	return &found, nil
}

func (r *MemoryJobRepository) List(_ context.Context, ownerID uuid.UUID) ([]*models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	jobs := make([]*models.Job, 0)
	for _, job := range r.jobs {
		if job.CreatedBy == ownerID {
			found := *job
			jobs = append(jobs, &found)
		}
	}
	return jobs, nil
}

func (r *MemoryJobRepository) Update(_ context.Context, ownerID, id uuid.UUID, patch models.JobPatch) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(ownerID, id)
	if i < 0 {
		return nil, repositories.ErrNotFound
	}

	job := r.jobs[i]
	if patch.Company != nil {
		job.Company = *patch.Company
	}
	if patch.Position != nil {
		job.Position = *patch.Position
	}
	if patch.Status != nil {
		job.Status = *patch.Status
	}
	job.UpdatedAt = time.Now().UTC()

	updated := *job
	return &updated, nil
}

func (r *MemoryJobRepository) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(ownerID, id)
	if i < 0 {
		return repositories.ErrNotFound
	}
	r.jobs = append(r.jobs[:i], r.jobs[i+1:]...)
	return nil
}

// Len reports how many jobs are stored across all owners.
func (r *MemoryJobRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.jobs)
}

func (r *MemoryJobRepository) indexOf(ownerID, id uuid.UUID) int {
	for i, job := range r.jobs {
		if job.ID == id && job.CreatedBy == ownerID {
			return i
		}
	}
	return -1
}

var (
	_ repositories.UserRepository = (*MemoryUserRepository)(nil)
	_ repositories.JobRepository  = (*MemoryJobRepository)(nil)
)
