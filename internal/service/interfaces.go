package service

import (
	"context"

	"github.com/planpilothq/planpilot/internal/budget"
	"github.com/planpilothq/planpilot/internal/domain"
	"github.com/planpilothq/planpilot/internal/repository"
)

type PlanService interface {
	Create(ctx context.Context, p *domain.EventPlan) (*domain.EventPlan, error)
	Get(ctx context.Context, id string) (*domain.EventPlan, error)
	List(ctx context.Context) ([]repository.PlanSummary, error)
	Rename(ctx context.Context, id, title string) (*domain.EventPlan, error)
	Delete(ctx context.Context, id string) error

	SetBudgetTarget(ctx context.Context, id string, amount float64) (*domain.EventPlan, error)
	AddNote(ctx context.Context, id, content string, author domain.NoteAuthor) (*domain.EventPlan, error)

	AddAttendee(ctx context.Context, id, name, email, role string) (*domain.EventPlan, error)
	RemoveAttendee(ctx context.Context, id, attendeeID string) (*domain.EventPlan, error)
	SetRSVP(ctx context.Context, id, attendeeID string, status domain.RSVPStatus) (*domain.EventPlan, error)

	SelectCandidate(ctx context.Context, id, moduleKey string, candidateIdx int) (*domain.EventPlan, error)
	ResetModule(ctx context.Context, id, moduleKey string) (*domain.EventPlan, error)
}

// ChatResult is the outcome of one conversational exchange.
type ChatResult struct {
	Plan *domain.EventPlan
	// Reply is the text shown to the user, including any appended budget
	// summary. On assistant failure it carries the fallback message.
	Reply    string
	Estimate *budget.Estimate
	// Fallback marks a reply produced without the assistant. The plan's
	// content is unchanged apart from the transcript.
	Fallback bool
}

type ChatService interface {
	Send(ctx context.Context, planID, message string) (*ChatResult, error)
}

// EmailDraft is a ready-to-copy email derived from plan state.
type EmailDraft struct {
	Subject    string
	Body       string
	Recipients []string
}

type EmailService interface {
	DraftInvite(ctx context.Context, planID string) (*EmailDraft, error)
	DraftStatusUpdate(ctx context.Context, planID string) (*EmailDraft, error)
}
