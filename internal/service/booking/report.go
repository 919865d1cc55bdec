package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/harborline/freightdesk-backend/internal/domain"
	"github.com/harborline/freightdesk-backend/internal/register"
	"github.com/harborline/freightdesk-backend/internal/workflow"
)

// RegisterReport aggregates a booking's register for the dashboard: KPI
// counters, group-by projections, and per-category completion of the live
// step data.
type RegisterReport struct {
	KPIs           register.KPISet           `json:"kpis"`
	ByCarrier      map[string]int            `json:"byCarrier"`
	ByClient       map[string]int            `json:"byClient"`
	ByRoute        map[string]int            `json:"byRoute"`
	CategoryCounts map[workflow.Category]int `json:"categoryCounts"`
	Stage          domain.StageLabel         `json:"stage"`
}

// Report computes the register report. Pure projections over current state;
// nothing is stored.
func (s *Service) Report(ctx context.Context, id uuid.UUID) (*RegisterReport, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "must not be empty")
	}
	b, err := s.bookings.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	done := b.CompletedSteps()
	return &RegisterReport{
		KPIs:           register.KPIs(b.RegisterEntries),
		ByCarrier:      register.CountByCarrier(b.RegisterEntries),
		ByClient:       register.CountByClient(b.RegisterEntries),
		ByRoute:        register.CountByRoute(b.RegisterEntries),
		CategoryCounts: workflow.CategoryCounts(done),
		Stage:          workflow.EffectiveStage(register.BookingStatus(b.StepData), done),
	}, nil
}
