package domain

// StageLabel is the derived lifecycle stage of a freight file.
// The set below plus the fixed cancellation override is the complete, closed
// status vocabulary; filters and UIs must compare against these exact strings.
type StageLabel string

const (
	StageNotStarted         StageLabel = "NOT STARTED"
	StageInProgress         StageLabel = "IN PROGRESS"
	StageBookedWithCarrier  StageLabel = "BOOKED WITH CARRIER"
	StageBookedWithClient   StageLabel = "BOOKED WITH CLIENT"
	StageDocsInProgress     StageLabel = "DOCS / B/L IN PROGRESS"
	StageInvoicing          StageLabel = "INVOICING"
	StagePaymentsInProgress StageLabel = "PAYMENTS IN PROGRESS"
	StageCompleted          StageLabel = "COMPLETED"
	StageCancelled          StageLabel = "CANCELLED"
)

func (s StageLabel) String() string { return string(s) }

func (s StageLabel) IsValid() bool {
	switch s {
	case StageNotStarted, StageInProgress, StageBookedWithCarrier,
		StageBookedWithClient, StageDocsInProgress, StageInvoicing,
		StagePaymentsInProgress, StageCompleted, StageCancelled:
		return true
	}
	return false
}

// Stages returns the full status vocabulary in lifecycle order.
func Stages() []StageLabel {
	return []StageLabel{
		StageNotStarted,
		StageInProgress,
		StageBookedWithCarrier,
		StageBookedWithClient,
		StageDocsInProgress,
		StageInvoicing,
		StagePaymentsInProgress,
		StageCompleted,
		StageCancelled,
	}
}
