package register

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/harborline/freightdesk-backend/internal/domain"
)

// ExportRow is the flat field set handed to the spreadsheet boundary. Every
// field is always present; blanks carry sentinels, never empty strings for
// the identity fields. Wider than RegisterRow: the extra fields are read back
// out of the row's FullData snapshot with the same fallback-chain discipline
// as the snapshot itself.
type ExportRow struct {
	FileReference    string `json:"fileReference"`
	ClientName       string `json:"clientName"`
	Carrier          string `json:"carrier"`
	POL              string `json:"pol"`
	POD              string `json:"pod"`
	Route            string `json:"route"`
	BookingNumber    string `json:"bookingNumber"`
	VesselName       string `json:"vesselName"`
	Voyage           string `json:"voyage"`
	CYCutOff         string `json:"cyCutOff"`
	DocCutOff        string `json:"docCutOff"`
	SICutOff         string `json:"siCutOff"`
	CargoDescription string `json:"cargoDescription"`
	ContainerType    string `json:"containerType"`
	Shipper          string `json:"shipper"`
	Consignee        string `json:"consignee"`
	BLNumber         string `json:"blNumber"`
	InvoiceNumber    string `json:"invoiceNumber"`
	InvoiceDate      string `json:"invoiceDate"`
	InvoiceAmount    string `json:"invoiceAmount"`
	InvoiceCurrency  string `json:"invoiceCurrency"`
	PaymentReference string `json:"paymentReference"`
	PaymentDate      string `json:"paymentDate"`
	OverallStatus    string `json:"overallStatus"`
	StepsDone        string `json:"stepsDone"`
	LastUpdated      string `json:"lastUpdated"`
	CreatedBy        string `json:"createdBy"`
	UpdatedBy        string `json:"updatedBy"`
}

// ExportModel flattens a register row for export. A pure read transform with
// the same never-fails, sentinel-on-missing policy as Snapshot.
func ExportModel(row domain.RegisterRow) ExportRow {
	full := row.FullData
	return ExportRow{
		FileReference:    row.FileReference,
		ClientName:       row.ClientName,
		Carrier:          row.Carrier,
		POL:              row.POL,
		POD:              row.POD,
		Route:            row.Route,
		BookingNumber:    row.BookingNumber,
		VesselName:       row.VesselName,
		Voyage:           row.Voyage,
		CYCutOff:         row.CYCutOff,
		DocCutOff:        row.DocCutOff,
		SICutOff:         row.SICutOff,
		CargoDescription: orSentinel(resolve(full, srcCargoDescription), domain.Blank),
		ContainerType:    orSentinel(resolve(full, srcContainerType), domain.Blank),
		Shipper:          orSentinel(resolve(full, srcShipperName), domain.Blank),
		Consignee:        orSentinel(resolve(full, srcConsigneeName), domain.Blank),
		BLNumber:         orSentinel(resolve(full, srcBLNumber), domain.Blank),
		InvoiceNumber:    orSentinel(resolve(full, srcInvoiceNumber), domain.Blank),
		InvoiceDate:      orSentinel(resolve(full, srcInvoiceDate), domain.Blank),
		InvoiceAmount:    orSentinel(resolve(full, srcInvoiceAmount), domain.Blank),
		InvoiceCurrency:  orSentinel(resolve(full, srcInvoiceCurrency), domain.Blank),
		PaymentReference: orSentinel(resolve(full, srcPaymentRef), domain.Blank),
		PaymentDate:      orSentinel(resolve(full, srcPaymentDate), domain.Blank),
		OverallStatus:    string(row.OverallStatus),
		StepsDone:        fmt.Sprintf("%d", row.StepsDone),
		LastUpdated:      row.LastUpdated,
		CreatedBy:        row.CreatedBy,
		UpdatedBy:        row.UpdatedBy,
	}
}

// csvHeader is the column order of the CSV export.
var csvHeader = []string{
	"File Reference", "Client", "Carrier/Agent", "POL", "POD", "Route",
	"Booking No", "Vessel", "Voyage", "CY Cut-Off", "Doc Cut-Off", "SI Cut-Off",
	"Cargo Description", "Container Type", "Shipper", "Consignee", "B/L No",
	"Invoice No", "Invoice Date", "Invoice Amount", "Currency",
	"Payment Ref", "Payment Date", "Status", "Steps Done", "Last Updated",
	"Created By", "Updated By",
}

func (e ExportRow) record() []string {
	return []string{
		e.FileReference, e.ClientName, e.Carrier, e.POL, e.POD, e.Route,
		e.BookingNumber, e.VesselName, e.Voyage, e.CYCutOff, e.DocCutOff, e.SICutOff,
		e.CargoDescription, e.ContainerType, e.Shipper, e.Consignee, e.BLNumber,
		e.InvoiceNumber, e.InvoiceDate, e.InvoiceAmount, e.InvoiceCurrency,
		e.PaymentReference, e.PaymentDate, e.OverallStatus, e.StepsDone, e.LastUpdated,
		e.CreatedBy, e.UpdatedBy,
	}
}

// WriteCSV renders rows as CSV: a header line followed by one record per row.
func WriteCSV(w io.Writer, rows []domain.RegisterRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(ExportModel(row).record()); err != nil {
			return fmt.Errorf("write csv row %s: %w", row.FileReference, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
