package register

import "github.com/harborline/freightdesk-backend/internal/domain"

// KPISet is the fixed dashboard aggregate over a register collection.
type KPISet struct {
	Total              int `json:"total"`
	Completed          int `json:"completed"`
	InProgress         int `json:"inProgress"`
	PaymentsInProgress int `json:"paymentsInProgress"`
	Cancelled          int `json:"cancelled"`
	UniqueCarriers     int `json:"uniqueCarriers"`
	UniqueClients      int `json:"uniqueClients"`
}

// KPIs computes the dashboard counters. InProgress counts every row that is
// neither NOT STARTED, COMPLETED, nor CANCELLED. Unique carrier/client counts
// exclude the respective blank sentinels.
func KPIs(rows []domain.RegisterRow) KPISet {
	kpi := KPISet{Total: len(rows)}
	carriers := make(map[string]bool)
	clients := make(map[string]bool)

	for _, row := range rows {
		switch row.OverallStatus {
		case domain.StageCompleted:
			kpi.Completed++
		case domain.StageCancelled:
			kpi.Cancelled++
		case domain.StageNotStarted:
			// not in progress
		default:
			kpi.InProgress++
		}
		if row.OverallStatus == domain.StagePaymentsInProgress {
			kpi.PaymentsInProgress++
		}
		if row.Carrier != domain.NoCarrier {
			carriers[row.Carrier] = true
		}
		if row.ClientName != domain.NoClient {
			clients[row.ClientName] = true
		}
	}

	kpi.UniqueCarriers = len(carriers)
	kpi.UniqueClients = len(clients)
	return kpi
}

// CountByCarrier groups rows by carrier label, sentinels included.
func CountByCarrier(rows []domain.RegisterRow) map[string]int {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[row.Carrier]++
	}
	return counts
}

// CountByClient groups rows by client label, sentinels included.
func CountByClient(rows []domain.RegisterRow) map[string]int {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[row.ClientName]++
	}
	return counts
}

// CountByRoute groups rows by the composed route label.
func CountByRoute(rows []domain.RegisterRow) map[string]int {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[row.Route]++
	}
	return counts
}
