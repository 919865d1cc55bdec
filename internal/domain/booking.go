package domain

import (
	"time"

	"github.com/google/uuid"
)

// Display sentinels substituted when a source field is blank. These exact
// strings are part of the register contract: reporting excludes the carrier
// and client sentinels from unique counts, and exports render them as-is.
const (
	NoFileRef = "(NO FILE REF)"
	NoClient  = "(NO CLIENT)"
	NoCarrier = "(NO CARRIER/AGENT)"
	NoPOL     = "(NO POL)"
	NoPOD     = "(NO POD)"
	NoRoute   = "(NO POL/POD)"
	Blank     = "—"
)

// StepEntry is the saved form data for one step of one booking. A save
// replaces Data wholesale; there is no field-level merge.
type StepEntry struct {
	StepID string            `json:"stepId"`
	Title  string            `json:"title"`
	Tag    StepTag           `json:"tag"`
	Data   map[string]string `json:"data"`
}

// Booking is the aggregate root for one freight file. It exclusively owns
// its step entries and register rows; persistence is whole-aggregate
// read/replace.
type Booking struct {
	ID              uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CurrentUser     string
	ActiveStepID    string
	StepData        map[string]StepEntry
	RegisterEntries []RegisterRow
	Filters         RegisterFilter
}

// Field returns the named field of the given step, or "" when the step or
// field is absent. Missing data never errors; it degrades to blank.
func (b *Booking) Field(stepID, name string) string {
	entry, ok := b.StepData[stepID]
	if !ok {
		return ""
	}
	return entry.Data[name]
}

// CompletedSteps returns the set of step ids that have a saved entry.
func (b *Booking) CompletedSteps() map[string]bool {
	done := make(map[string]bool, len(b.StepData))
	for id := range b.StepData {
		done[id] = true
	}
	return done
}

// BookingSummary is the list-view projection of a booking.
type BookingSummary struct {
	ID            uuid.UUID
	CurrentUser   string
	StepsDone     int
	RegisterCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RegisterRow is a point-in-time snapshot of a booking's step data, keyed by
// FileReference. Within one booking's register there is at most one row per
// distinct file reference; re-snapshotting replaces the row in place.
type RegisterRow struct {
	FileReference  string               `json:"fileReference"`
	ClientName     string               `json:"clientName"`
	Carrier        string               `json:"carrier"`
	POL            string               `json:"pol"`
	POD            string               `json:"pod"`
	Route          string               `json:"route"`
	BookingNumber  string               `json:"bookingNumber"`
	VesselName     string               `json:"vesselName"`
	Voyage         string               `json:"voyage"`
	CYCutOff       string               `json:"cyCutOff"`
	DocCutOff      string               `json:"docCutOff"`
	SICutOff       string               `json:"siCutOff"`
	OverallStatus  StageLabel           `json:"overallStatus"`
	StepsDone      int                  `json:"stepsDone"`
	LastUpdated    string               `json:"lastUpdated"`
	LastUpdatedRaw time.Time            `json:"lastUpdatedRaw"`
	CreatedAt      time.Time            `json:"createdAt"`
	CreatedBy      string               `json:"createdBy"`
	UpdatedBy      string               `json:"updatedBy"`
	FullData       map[string]StepEntry `json:"fullData"`
}

// RegisterFilter is the criteria set for register filtering. Zero values
// impose no constraint; all set criteria are ANDed.
type RegisterFilter struct {
	Search  string     `json:"search,omitempty"`
	Status  string     `json:"status,omitempty"`
	Carrier string     `json:"carrier,omitempty"`
	From    *time.Time `json:"from,omitempty"`
	To      *time.Time `json:"to,omitempty"`
}

// IsZero reports whether no criterion is set.
func (f RegisterFilter) IsZero() bool {
	return f.Search == "" && f.Status == "" && f.Carrier == "" && f.From == nil && f.To == nil
}

// EventAction classifies booking event log records.
type EventAction string

const (
	EventStepSaved        EventAction = "STEP_SAVED"
	EventRegisterSnapshot EventAction = "REGISTER_SNAPSHOT"
	EventFiltersUpdated   EventAction = "FILTERS_UPDATED"
	EventBookingDeleted   EventAction = "BOOKING_DELETED"
)

func (a EventAction) String() string { return string(a) }

func (a EventAction) IsValid() bool {
	switch a {
	case EventStepSaved, EventRegisterSnapshot, EventFiltersUpdated, EventBookingDeleted:
		return true
	}
	return false
}

// BookingEvent is one append-only record of the booking change log.
type BookingEvent struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	Action    EventAction
	Actor     string
	Details   map[string]any
	CreatedAt time.Time
}

// CopyStepData returns a deep copy of a step-data map. Register snapshots
// hold copies so later step saves cannot mutate history.
func CopyStepData(src map[string]StepEntry) map[string]StepEntry {
	if src == nil {
		return map[string]StepEntry{}
	}
	dst := make(map[string]StepEntry, len(src))
	for id, entry := range src {
		data := make(map[string]string, len(entry.Data))
		for k, v := range entry.Data {
			data[k] = v
		}
		dst[id] = StepEntry{StepID: entry.StepID, Title: entry.Title, Tag: entry.Tag, Data: data}
	}
	return dst
}
