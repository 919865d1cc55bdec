package workflow

// TabID identifies one screen of the booking wizard.
type TabID string

// The fixed wizard tab sequence.
const (
	TabBookingRequest       TabID = "booking-request"
	TabBookingConfirmation  TabID = "booking-confirmation"
	TabClientInfo           TabID = "client-info"
	TabShippingInstructions TabID = "shipping-instructions"
	TabCharges              TabID = "charges"
	TabPreviewInvoice       TabID = "preview-invoice"
)

// Tabs returns the wizard tab sequence in order.
func Tabs() []TabID {
	return []TabID{
		TabBookingRequest,
		TabBookingConfirmation,
		TabClientInfo,
		TabShippingInstructions,
		TabCharges,
		TabPreviewInvoice,
	}
}

// Navigator enforces the step-gating rules over the wizard tab sequence.
// Backward and lateral navigation is always allowed; forward navigation
// requires every tab before the target to be marked complete. Completion is
// an independent per-tab flag supplied by the tab's own form validity, not
// derived from step ids. Rejected transitions leave the current tab
// unchanged.
type Navigator struct {
	tabs     []TabID
	complete map[TabID]bool
	current  int
}

// NewNavigator creates a Navigator positioned at the first tab with no tab
// marked complete.
func NewNavigator() *Navigator {
	return &Navigator{
		tabs:     Tabs(),
		complete: make(map[TabID]bool),
	}
}

// Current returns the active tab.
func (n *Navigator) Current() TabID {
	return n.tabs[n.current]
}

// IsComplete reports whether the given tab has been marked complete.
func (n *Navigator) IsComplete(tab TabID) bool {
	return n.complete[tab]
}

// MarkComplete sets the completion flag for a tab. Unknown tabs are ignored.
func (n *Navigator) MarkComplete(tab TabID, done bool) {
	if n.index(tab) < 0 {
		return
	}
	n.complete[tab] = done
}

// GoTo attempts to move to the target tab and reports whether the move was
// allowed. Moves to the current tab or any earlier tab always succeed.
// Forward moves succeed only when every tab strictly before the target is
// complete.
func (n *Navigator) GoTo(target TabID) bool {
	idx := n.index(target)
	if idx < 0 {
		return false
	}
	if idx <= n.current {
		n.current = idx
		return true
	}
	for i := 0; i < idx; i++ {
		if !n.complete[n.tabs[i]] {
			return false
		}
	}
	n.current = idx
	return true
}

// Next advances one tab. Allowed only when the current tab is complete.
// At the terminal tab Next is a no-op and reports false.
func (n *Navigator) Next() bool {
	if n.current == len(n.tabs)-1 {
		return false
	}
	if !n.complete[n.tabs[n.current]] {
		return false
	}
	n.current++
	return true
}

// Previous moves one tab back. Always allowed unless already at the first tab.
func (n *Navigator) Previous() bool {
	if n.current == 0 {
		return false
	}
	n.current--
	return true
}

func (n *Navigator) index(tab TabID) int {
	for i, t := range n.tabs {
		if t == tab {
			return i
		}
	}
	return -1
}
