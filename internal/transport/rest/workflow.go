package rest

import (
	"net/http"

	"github.com/harborline/freightdesk-backend/internal/domain"
	"github.com/harborline/freightdesk-backend/internal/workflow"
)

// WorkflowHandler serves the static workflow configuration the UI renders
// from: the gated tab sequence and the wizard step schema.
type WorkflowHandler struct{}

// NewWorkflowHandler creates a WorkflowHandler.
func NewWorkflowHandler() *WorkflowHandler {
	return &WorkflowHandler{}
}

type tabsResponse struct {
	Tabs []workflow.TabID `json:"tabs"`
}

type stepsResponse struct {
	Steps []domain.Step `json:"steps"`
}

// Tabs handles GET /v1/workflow/tabs.
// Order is the gating order: a tab unlocks once all tabs before it are complete.
func (h *WorkflowHandler) Tabs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, tabsResponse{Tabs: workflow.Tabs()})
}

// Steps handles GET /v1/workflow/steps.
func (h *WorkflowHandler) Steps(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stepsResponse{Steps: domain.Steps()})
}
