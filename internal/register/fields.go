package register

import "github.com/harborline/freightdesk-backend/internal/domain"

// source names one (step id, field name) lookup of a fallback chain.
type source struct {
	stepID string
	field  string
}

// chain is an ordered list of lookups for one logical register field,
// evaluated first-non-blank-wins: earlier-listed steps take precedence even
// when later ones are also populated.
type chain []source

// Every fallback chain lives in this file on purpose. The register reads the
// same logical field out of different steps depending on which is populated,
// which couples this package to the step schema in internal/domain; when the
// schema changes, this table is the single place to update.
var (
	srcFileReference = chain{{"1", "fileReference"}}
	srcClientName    = chain{{"1", "clientName"}}
	srcCarrier       = chain{{"1", "bkMessrsAgent"}, {"2", "carrierName"}, {"3", "carrierName"}}
	srcPOL           = chain{{"1", "portOfLoad"}, {"2", "portOfLoad"}}
	srcPOD           = chain{{"1", "portOfDischarge"}, {"2", "portOfDischarge"}}
	srcBookingNumber = chain{{"3", "bookingNumber"}, {"4", "bookingNumber"}}
	srcVesselName    = chain{{"3", "vesselName"}, {"4", "vesselName"}}
	srcVoyage        = chain{{"3", "voyage"}, {"4", "voyage"}}
	srcCYCutOff      = chain{{"3", "cyCutOff"}, {"4", "cyCutOff"}}
	srcDocCutOff     = chain{{"3", "docCutOff"}, {"4", "docCutOff"}}
	srcSICutOff      = chain{{"3", "siCutOff"}, {"4", "siCutOff"}}
	srcBookingStatus = chain{{"4", "bookingStatus"}, {"3", "bookingStatus"}}

	// Export-only chains, resolved from a row's FullData snapshot.
	srcCargoDescription = chain{{"1", "cargoDescription"}}
	srcContainerType    = chain{{"1", "containerType"}}
	srcShipperName      = chain{{"5", "shipperName"}}
	srcConsigneeName    = chain{{"5", "consigneeName"}}
	srcBLNumber         = chain{{"10", "blNumber"}, {"7", "blNumber"}}
	srcInvoiceNumber    = chain{{"11", "invoiceNumber"}, {"12", "invoiceNumber"}}
	srcInvoiceDate      = chain{{"11", "invoiceDate"}, {"12", "invoiceDate"}}
	srcInvoiceAmount    = chain{{"11", "amount"}, {"12", "amount"}}
	srcInvoiceCurrency  = chain{{"11", "currency"}, {"12", "currency"}}
	srcPaymentRef       = chain{{"13", "paymentReference"}, {"14", "paymentReference"}}
	srcPaymentDate      = chain{{"13", "paymentDate"}, {"14", "paymentDate"}}
)

// BookingStatus resolves the operator-entered free-text booking status for
// the cancellation override, preferring the client confirmation step over the
// carrier booking step.
func BookingStatus(stepData map[string]domain.StepEntry) string {
	return resolve(stepData, srcBookingStatus)
}

// resolve walks a fallback chain over step data and returns the first
// non-blank value, or "" when every lookup misses. Missing steps behave as
// empty objects; this never errors.
func resolve(stepData map[string]domain.StepEntry, c chain) string {
	for _, s := range c {
		entry, ok := stepData[s.stepID]
		if !ok {
			continue
		}
		if v := entry.Data[s.field]; v != "" {
			return v
		}
	}
	return ""
}

// orSentinel substitutes the sentinel when the resolved value is blank.
func orSentinel(v, sentinel string) string {
	if v == "" {
		return sentinel
	}
	return v
}
