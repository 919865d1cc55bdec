// Package register builds and maintains the denormalized shipment register:
// point-in-time rows snapshotted from live step data, filtering over the row
// collection, reporting projections, and the flat export model. It depends on
// the workflow engine for status derivation and holds no state of its own.
package register

import (
	"fmt"
	"time"

	"github.com/harborline/freightdesk-backend/internal/domain"
	"github.com/harborline/freightdesk-backend/internal/workflow"
)

// lastUpdatedDisplay is the layout of the human-readable row timestamp.
const lastUpdatedDisplay = "02 Jan 2006 15:04"

// Snapshot builds a register row from the current step data. Absent steps
// and blank fields degrade to display sentinels; this never fails. The row's
// FullData is a deep copy, so later step saves cannot mutate the snapshot.
func Snapshot(stepData map[string]domain.StepEntry, currentUser string, now time.Time) domain.RegisterRow {
	pol := resolve(stepData, srcPOL)
	pod := resolve(stepData, srcPOD)

	route := domain.NoRoute
	if pol != "" && pod != "" {
		route = fmt.Sprintf("%s → %s", pol, pod)
	}

	done := make(map[string]bool, len(stepData))
	for id := range stepData {
		done[id] = true
	}

	return domain.RegisterRow{
		FileReference:  orSentinel(resolve(stepData, srcFileReference), domain.NoFileRef),
		ClientName:     orSentinel(resolve(stepData, srcClientName), domain.NoClient),
		Carrier:        orSentinel(resolve(stepData, srcCarrier), domain.NoCarrier),
		POL:            orSentinel(pol, domain.NoPOL),
		POD:            orSentinel(pod, domain.NoPOD),
		Route:          route,
		BookingNumber:  orSentinel(resolve(stepData, srcBookingNumber), domain.Blank),
		VesselName:     orSentinel(resolve(stepData, srcVesselName), domain.Blank),
		Voyage:         orSentinel(resolve(stepData, srcVoyage), domain.Blank),
		CYCutOff:       orSentinel(resolve(stepData, srcCYCutOff), domain.Blank),
		DocCutOff:      orSentinel(resolve(stepData, srcDocCutOff), domain.Blank),
		SICutOff:       orSentinel(resolve(stepData, srcSICutOff), domain.Blank),
		OverallStatus:  workflow.EffectiveStage(resolve(stepData, srcBookingStatus), done),
		StepsDone:      len(stepData),
		LastUpdated:    fmt.Sprintf("%s (%s)", now.Format(lastUpdatedDisplay), currentUser),
		LastUpdatedRaw: now,
		CreatedAt:      now,
		CreatedBy:      currentUser,
		UpdatedBy:      currentUser,
		FullData:       domain.CopyStepData(stepData),
	}
}

// Upsert merges row into rows keyed by FileReference: an existing row with
// the same file reference is replaced at its position, otherwise the row is
// appended. A replaced row keeps its original CreatedAt/CreatedBy so the
// register preserves who opened the file and when across re-snapshots.
// The input slice is not mutated.
func Upsert(rows []domain.RegisterRow, row domain.RegisterRow) []domain.RegisterRow {
	out := make([]domain.RegisterRow, len(rows))
	copy(out, rows)

	for i, existing := range out {
		if existing.FileReference == row.FileReference {
			row.CreatedAt = existing.CreatedAt
			row.CreatedBy = existing.CreatedBy
			out[i] = row
			return out
		}
	}
	return append(out, row)
}
