package workflow

import "errors"

var (
	// ErrUnknownPath is returned when a (complaint type, scope) pair does not
	// map to one of the four defined escalation paths.
	ErrUnknownPath = errors.New("unknown workflow path")

	// ErrUnauthorizedAction is returned when the acting role is not in the
	// permitted set for the requested action.
	ErrUnauthorizedAction = errors.New("role not permitted for this action")

	// ErrMissingEvidence is returned when a major complaint is recommended
	// onward from its evidence step without an evidence URL.
	ErrMissingEvidence = errors.New("evidence url is required")

	// ErrMissingReason is returned when a reversal carries no reason.
	ErrMissingReason = errors.New("reversal reason is required")

	// ErrInvalidTransition is returned when the requested action is not valid
	// at the ticket's current step.
	ErrInvalidTransition = errors.New("invalid workflow transition")

	// ErrConcurrentModification is returned when the ticket's workflow state
	// changed between read and write; the caller should reload and retry.
	ErrConcurrentModification = errors.New("ticket workflow state changed since read")

	// ErrTicketAlreadyClosed is returned for any action on a closed ticket.
	ErrTicketAlreadyClosed = errors.New("ticket workflow already closed")
)
