package domain

// StepTag is the category label shown on a wizard step.
type StepTag string

const (
	TagClient  StepTag = "CLIENT"
	TagCarrier StepTag = "CARRIER"
	TagDocs    StepTag = "DOCUMENTATION"
	TagFinance StepTag = "FINANCE"
)

// StepField describes a single form field of a step.
type StepField struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// Step is one stage of the freight file lifecycle. Steps are immutable
// configuration: the schema below is fixed and not persisted per booking.
type Step struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Tag    StepTag     `json:"tag"`
	Fields []StepField `json:"fields"`
}

// steps is the fixed ordered schema of the 16-step freight file lifecycle.
// Step ids are stable string identifiers; the workflow engine and the
// register field chains key off these exact ids.
var steps = []Step{
	{
		ID: "1", Title: "Booking Request", Tag: TagClient,
		Fields: []StepField{
			{Name: "fileReference", Label: "File Reference", Type: "text"},
			{Name: "clientName", Label: "Client Name", Type: "text"},
			{Name: "bkMessrsAgent", Label: "Messrs / Agent", Type: "text"},
			{Name: "portOfLoad", Label: "Port of Load", Type: "text"},
			{Name: "portOfDischarge", Label: "Port of Discharge", Type: "text"},
			{Name: "cargoDescription", Label: "Cargo Description", Type: "textarea"},
			{Name: "containerType", Label: "Container Type", Type: "text"},
			{Name: "quantity", Label: "Quantity", Type: "number"},
		},
	},
	{
		ID: "2", Title: "Carrier Quotation", Tag: TagCarrier,
		Fields: []StepField{
			{Name: "carrierName", Label: "Carrier Name", Type: "text"},
			{Name: "portOfLoad", Label: "Port of Load", Type: "text"},
			{Name: "portOfDischarge", Label: "Port of Discharge", Type: "text"},
			{Name: "quotedRate", Label: "Quoted Rate", Type: "number"},
			{Name: "currency", Label: "Currency", Type: "text"},
			{Name: "validUntil", Label: "Valid Until", Type: "date"},
		},
	},
	{
		ID: "3", Title: "Booking with Carrier", Tag: TagCarrier,
		Fields: []StepField{
			{Name: "carrierName", Label: "Carrier Name", Type: "text"},
			{Name: "bookingNumber", Label: "Booking Number", Type: "text"},
			{Name: "vesselName", Label: "Vessel Name", Type: "text"},
			{Name: "voyage", Label: "Voyage", Type: "text"},
			{Name: "cyCutOff", Label: "CY Cut-Off", Type: "datetime"},
			{Name: "docCutOff", Label: "Doc Cut-Off", Type: "datetime"},
			{Name: "siCutOff", Label: "SI Cut-Off", Type: "datetime"},
			{Name: "bookingStatus", Label: "Booking Status", Type: "text"},
		},
	},
	{
		ID: "4", Title: "Booking Confirmation to Client", Tag: TagClient,
		Fields: []StepField{
			{Name: "bookingNumber", Label: "Booking Number", Type: "text"},
			{Name: "vesselName", Label: "Vessel Name", Type: "text"},
			{Name: "voyage", Label: "Voyage", Type: "text"},
			{Name: "cyCutOff", Label: "CY Cut-Off", Type: "datetime"},
			{Name: "docCutOff", Label: "Doc Cut-Off", Type: "datetime"},
			{Name: "siCutOff", Label: "SI Cut-Off", Type: "datetime"},
			{Name: "bookingStatus", Label: "Booking Status", Type: "text"},
			{Name: "confirmedAt", Label: "Confirmed At", Type: "date"},
		},
	},
	{
		ID: "5", Title: "Shipping Instructions from Client", Tag: TagDocs,
		Fields: []StepField{
			{Name: "shipperName", Label: "Shipper", Type: "text"},
			{Name: "consigneeName", Label: "Consignee", Type: "text"},
			{Name: "notifyParty", Label: "Notify Party", Type: "text"},
			{Name: "marksAndNumbers", Label: "Marks & Numbers", Type: "textarea"},
			{Name: "receivedAt", Label: "Received At", Type: "date"},
		},
	},
	{
		ID: "6", Title: "SI Submitted to Carrier", Tag: TagDocs,
		Fields: []StepField{
			{Name: "submittedAt", Label: "Submitted At", Type: "date"},
			{Name: "siReference", Label: "SI Reference", Type: "text"},
		},
	},
	{
		ID: "7", Title: "Draft B/L from Carrier", Tag: TagDocs,
		Fields: []StepField{
			{Name: "blNumber", Label: "B/L Number", Type: "text"},
			{Name: "receivedAt", Label: "Received At", Type: "date"},
		},
	},
	{
		ID: "8", Title: "Draft B/L to Client", Tag: TagDocs,
		Fields: []StepField{
			{Name: "sentAt", Label: "Sent At", Type: "date"},
			{Name: "remarks", Label: "Remarks", Type: "textarea"},
		},
	},
	{
		ID: "9", Title: "B/L Approved by Client", Tag: TagDocs,
		Fields: []StepField{
			{Name: "approvedAt", Label: "Approved At", Type: "date"},
			{Name: "approvedBy", Label: "Approved By", Type: "text"},
		},
	},
	{
		ID: "10", Title: "Final B/L Issued", Tag: TagDocs,
		Fields: []StepField{
			{Name: "blNumber", Label: "B/L Number", Type: "text"},
			{Name: "issuedAt", Label: "Issued At", Type: "date"},
			{Name: "blType", Label: "B/L Type", Type: "text"},
		},
	},
	{
		ID: "11", Title: "Invoice from Carrier", Tag: TagFinance,
		Fields: []StepField{
			{Name: "invoiceNumber", Label: "Invoice Number", Type: "text"},
			{Name: "invoiceDate", Label: "Invoice Date", Type: "date"},
			{Name: "amount", Label: "Amount", Type: "number"},
			{Name: "currency", Label: "Currency", Type: "text"},
		},
	},
	{
		ID: "12", Title: "Invoice to Client", Tag: TagFinance,
		Fields: []StepField{
			{Name: "invoiceNumber", Label: "Invoice Number", Type: "text"},
			{Name: "invoiceDate", Label: "Invoice Date", Type: "date"},
			{Name: "amount", Label: "Amount", Type: "number"},
			{Name: "currency", Label: "Currency", Type: "text"},
		},
	},
	{
		ID: "13", Title: "Payment from Client", Tag: TagFinance,
		Fields: []StepField{
			{Name: "paymentReference", Label: "Payment Reference", Type: "text"},
			{Name: "paymentDate", Label: "Payment Date", Type: "date"},
			{Name: "amount", Label: "Amount", Type: "number"},
		},
	},
	{
		ID: "14", Title: "Payment to Carrier", Tag: TagFinance,
		Fields: []StepField{
			{Name: "paymentReference", Label: "Payment Reference", Type: "text"},
			{Name: "paymentDate", Label: "Payment Date", Type: "date"},
			{Name: "amount", Label: "Amount", Type: "number"},
		},
	},
	{
		ID: "15", Title: "Carrier File Closed", Tag: TagCarrier,
		Fields: []StepField{
			{Name: "closedAt", Label: "Closed At", Type: "date"},
			{Name: "remarks", Label: "Remarks", Type: "textarea"},
		},
	},
	{
		ID: "16", Title: "Client File Closed", Tag: TagClient,
		Fields: []StepField{
			{Name: "closedAt", Label: "Closed At", Type: "date"},
			{Name: "clientFeedback", Label: "Client Feedback", Type: "textarea"},
		},
	},
}

// Steps returns the ordered step schema. Callers must not mutate the result.
func Steps() []Step {
	return steps
}

// StepByID returns the step definition for the given id.
func StepByID(id string) (Step, bool) {
	for _, s := range steps {
		if s.ID == id {
			return s, true
		}
	}
	return Step{}, false
}

// KnownStepID reports whether id belongs to the step schema.
func KnownStepID(id string) bool {
	_, ok := StepByID(id)
	return ok
}
