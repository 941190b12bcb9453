package models

import (
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusInterview JobStatus = "interview"
	JobStatusDeclined  JobStatus = "declined"
	JobStatusPending   JobStatus = "pending"
)

// Job is a job application owned by exactly one user.
type Job struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Company   string    `json:"company" db:"company"`
	Position  string    `json:"position" db:"position"`
	Status    JobStatus `json:"status" db:"status"`
	CreatedBy uuid.UUID `json:"createdBy" db:"created_by"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// JobPatch carries the fields of a partial update; nil means "leave as is".
type JobPatch struct {
	Company  *string
	Position *string
	Status   *JobStatus
}
