package listing

import (
	"github.com/okazmarkt/core/internal/models"
)

// Transition rejection codes. These are policy violations with their own wire
// codes, kept apart from field validation errors.
const (
	TransitionInvalid       = "invalid_transition"
	TransitionBlockedTarget = "blocked_status_requested"
	TransitionFromBlocked   = "listing_blocked"
	TransitionMediaRequired = "media_required"
	TransitionUnknownStatus = "unknown_status"
)

// TransitionError describes why a status change was refused.
type TransitionError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *TransitionError) Error() string { return e.Message }

var validStatuses = map[string]bool{
	models.StatusDraft:    true,
	models.StatusActive:   true,
	models.StatusArchived: true,
	models.StatusBlocked:  true,
}

// CheckTransition applies the status graph: draft moves freely to draft,
// active or archived; active can only archive; archived can only relist to
// active; blocked is terminal. The media gate for activation is separate
// (see RequiresMedia) because it depends on external state, not the graph.
func CheckTransition(from, to string) *TransitionError {
	if !validStatuses[to] {
		return &TransitionError{Code: TransitionUnknownStatus, Message: "unknown status " + to}
	}
	if to == models.StatusBlocked {
		return &TransitionError{Code: TransitionBlockedTarget, Message: "blocked is an administrative status"}
	}
	if from == models.StatusBlocked {
		return &TransitionError{Code: TransitionFromBlocked, Message: "this listing is blocked"}
	}
	if from == to {
		return nil
	}
	switch from {
	case models.StatusDraft:
		return nil
	case models.StatusActive:
		if to == models.StatusArchived {
			return nil
		}
		return &TransitionError{Code: TransitionInvalid, Message: "an active listing must be archived before returning to draft"}
	case models.StatusArchived:
		if to == models.StatusActive {
			return nil
		}
		return &TransitionError{Code: TransitionInvalid, Message: "an archived listing cannot return to draft"}
	}
	return &TransitionError{Code: TransitionUnknownStatus, Message: "unknown status " + from}
}

// RequiresMedia reports whether the transition needs the media precondition.
// Checked fresh right before commit; media may have been deleted since the
// form was rendered.
func RequiresMedia(from, to string) bool {
	return to == models.StatusActive && from != models.StatusActive
}
