package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/harborline/freightdesk-backend/internal/domain"
	"github.com/harborline/freightdesk-backend/internal/register"
	"github.com/harborline/freightdesk-backend/internal/workflow"
)

// SaveStepResult is the outcome of a step save: the updated booking plus the
// derived progress signals, so a client can refresh its dashboard without a
// second round trip.
type SaveStepResult struct {
	Booking        *domain.Booking
	Stage          domain.StageLabel
	CategoryCounts map[workflow.Category]int
}

// SaveStep replaces the saved data of one step wholesale and refreshes the
// booking's timestamps. There is no field-level merge: the submitted map
// becomes the step's entire data. Unknown step ids are rejected.
func (s *Service) SaveStep(ctx context.Context, id uuid.UUID, stepID string, data map[string]string) (*SaveStepResult, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "must not be empty")
	}
	step, ok := domain.StepByID(stepID)
	if !ok {
		return nil, domain.NewValidationError("stepId", fmt.Sprintf("unknown step id %q", stepID))
	}
	if data == nil {
		data = map[string]string{}
	}

	actor := s.operator(ctx)

	b, err := s.bookings.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	entry := domain.StepEntry{
		StepID: step.ID,
		Title:  step.Title,
		Tag:    step.Tag,
		Data:   make(map[string]string, len(data)),
	}
	for k, v := range data {
		entry.Data[k] = v
	}

	if b.StepData == nil {
		b.StepData = map[string]domain.StepEntry{}
	}
	b.StepData[step.ID] = entry
	b.ActiveStepID = step.ID
	b.CurrentUser = actor
	b.UpdatedAt = time.Now()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if b, err = s.bookings.Update(txCtx, b); err != nil {
			return fmt.Errorf("update booking: %w", err)
		}
		if err := s.events.Log(txCtx, domain.BookingEvent{
			BookingID: b.ID,
			Action:    domain.EventStepSaved,
			Actor:     actor,
			Details: map[string]any{
				"stepId": step.ID,
				"title":  step.Title,
				"fields": len(entry.Data),
			},
		}); err != nil {
			return fmt.Errorf("log event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	done := b.CompletedSteps()
	result := &SaveStepResult{
		Booking:        b,
		Stage:          workflow.EffectiveStage(register.BookingStatus(b.StepData), done),
		CategoryCounts: workflow.CategoryCounts(done),
	}

	s.log.InfoContext(ctx, "step saved",
		slog.String("booking_id", b.ID.String()),
		slog.String("step_id", step.ID),
		slog.String("stage", result.Stage.String()),
	)

	return result, nil
}
