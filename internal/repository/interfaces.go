package repository

import (
	"context"
	"errors"
	"time"

	"github.com/planpilothq/planpilot/internal/domain"
)

var (
	// ErrNotFound is returned when no plan exists for the given id.
	ErrNotFound = errors.New("plan not found")
	// ErrVersionConflict is returned when a Put carries a version lower
	// than the stored one.
	ErrVersionConflict = errors.New("plan version conflict")
)

// PlanSummary is the denormalized listing row. It is scanned from summary
// columns so listing never decodes full plan documents.
type PlanSummary struct {
	ID          string
	Title       string
	Status      domain.EventStatus
	Version     int
	LastUpdated time.Time
}

type PlanRepo interface {
	// Get returns the stored plan, or ErrNotFound if absent. A stored
	// document that no longer decodes is reported as ErrNotFound too.
	Get(ctx context.Context, id string) (*domain.EventPlan, error)
	// Put stores the plan, creating or replacing it. A replace with a
	// version lower than the stored one fails with ErrVersionConflict.
	Put(ctx context.Context, p *domain.EventPlan) error
	Delete(ctx context.Context, id string) error
	ListSummaries(ctx context.Context) ([]PlanSummary, error)
}
