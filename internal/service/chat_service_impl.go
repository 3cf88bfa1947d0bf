package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/planpilothq/planpilot/internal/assistant"
	"github.com/planpilothq/planpilot/internal/budget"
	"github.com/planpilothq/planpilot/internal/domain"
	"github.com/planpilothq/planpilot/internal/reconcile"
	"github.com/planpilothq/planpilot/internal/repository"
)

// FallbackReply is shown when the assistant cannot be reached or returns
// garbage. The plan's content is never changed on that path.
const FallbackReply = "I couldn't reach the planning assistant just now. " +
	"Your plan is unchanged; please try again in a moment."

type chatService struct {
	plans     repository.PlanRepo
	client    assistant.Client
	estimates assistant.EstimateClient
	inflight  *requestTracker
	logw      io.Writer
}

// NewChatService wires the conversational path. estimates may be nil, in
// which case budget estimates are derived locally from the plan's decision
// modules. logw receives non-fatal persistence and estimate failures.
func NewChatService(plans repository.PlanRepo, client assistant.Client, estimates assistant.EstimateClient, logw io.Writer) ChatService {
	return &chatService{
		plans:     plans,
		client:    client,
		estimates: estimates,
		inflight:  newRequestTracker(),
		logw:      logw,
	}
}

func (s *chatService) Send(ctx context.Context, planID, message string) (*ChatResult, error) {
	plan, err := s.plans.Get(ctx, planID)
	if err != nil {
		return nil, err
	}

	gen := s.inflight.begin(planID)

	withUser := reconcile.Apply(plan, func(p *domain.EventPlan) {
		p.AIContext.Messages = append(p.AIContext.Messages, domain.ConversationTurn{
			Role:      domain.RoleUser,
			Content:   message,
			Timestamp: time.Now().UTC(),
		})
		p.AIContext.LastUserRequest = message
	})
	// Transcript writes are best-effort; losing one never blocks the chat.
	if err := s.plans.Put(ctx, withUser); err != nil {
		s.logf("persisting user turn for plan %s: %v", planID, err)
	}

	resp, err := s.client.SendPlanMessage(ctx, message, withUser)
	if err != nil {
		s.logf("assistant call for plan %s: %v", planID, err)
		if !s.inflight.isCurrent(planID, gen) {
			return nil, ErrSuperseded
		}
		next := reconcile.Apply(withUser, func(p *domain.EventPlan) {
			p.AIContext.Messages = append(p.AIContext.Messages, domain.ConversationTurn{
				Role:      domain.RoleAssistant,
				Content:   FallbackReply,
				Timestamp: time.Now().UTC(),
			})
		})
		if perr := s.plans.Put(ctx, next); perr != nil {
			s.logf("persisting fallback turn for plan %s: %v", planID, perr)
		}
		return &ChatResult{Plan: next, Reply: FallbackReply, Fallback: true}, nil
	}

	if !s.inflight.isCurrent(planID, gen) {
		return nil, ErrSuperseded
	}

	proposed := domain.Normalize(resp.UpdatedPlan)

	var est *budget.Estimate
	if proposed.HasBudgetSignal() {
		est = s.resolveEstimate(ctx, message, proposed)
	}

	next := reconcile.Reconcile(withUser, proposed, est)

	reply := resp.UserReply
	if budget.IsBudgetQuery(message) {
		reply = reply + "\n\n" + budgetSummary(next)
	}
	next.AIContext.Messages = append(next.AIContext.Messages, domain.ConversationTurn{
		Role:      domain.RoleAssistant,
		Content:   reply,
		Timestamp: time.Now().UTC(),
	})

	if err := s.plans.Put(ctx, next); err != nil {
		s.logf("persisting plan %s: %v", planID, err)
	}

	return &ChatResult{Plan: next, Reply: reply, Estimate: est}, nil
}

// resolveEstimate prefers the external estimate service when configured
// and quietly falls back to the local derivation when it fails.
func (s *chatService) resolveEstimate(ctx context.Context, message string, plan *domain.EventPlan) *budget.Estimate {
	if s.estimates != nil {
		est, err := s.estimates.FetchEstimate(ctx, message, plan)
		if err == nil {
			return est
		}
		s.logf("budget estimate service: %v", err)
	}
	local := budget.EstimateFromModules(plan)
	return &local
}

func (s *chatService) logf(format string, args ...any) {
	if s.logw == nil {
		return
	}
	fmt.Fprintf(s.logw, format+"\n", args...)
}

// budgetSummary renders a short plain-text budget recap appended to
// budget-related replies.
func budgetSummary(plan *domain.EventPlan) string {
	calc := budget.Calculate(plan)

	if calc.Status == domain.BudgetNone {
		return fmt.Sprintf("Budget so far: %s %.2f committed. No target set yet.",
			calc.Currency, calc.TotalCost)
	}

	line := fmt.Sprintf("Budget: %s %.2f of %s %.2f target (%s %.2f remaining)",
		calc.Currency, calc.TotalCost, calc.Currency, calc.TargetAmount,
		calc.Currency, calc.RemainingBudget)
	if calc.Status == domain.BudgetOver {
		line = fmt.Sprintf("Budget: %s %.2f, over the %s %.2f target by %s %.2f",
			calc.Currency, calc.TotalCost, calc.Currency, calc.TargetAmount,
			calc.Currency, -calc.RemainingBudget)
	}
	if calc.GuestCount > 0 {
		line += fmt.Sprintf(". Per person: %s %.2f", calc.Currency, calc.PerPersonCost)
	}
	return line + "."
}
