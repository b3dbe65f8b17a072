package challenge

import (
	"github.com/DhavalSuthar-24/ladder/pkg/apperrors"
)

type ChallengeStatus string

const (
	StatusPending  ChallengeStatus = "PENDING"
	StatusAccepted ChallengeStatus = "ACCEPTED"
	StatusDenied   ChallengeStatus = "DENIED"
	StatusDone     ChallengeStatus = "DONE"
	StatusCanceled ChallengeStatus = "CANCELED"
)

// transitions lists the legal next states. Terminal states have no entry.
var transitions = map[ChallengeStatus][]ChallengeStatus{
	StatusPending:  {StatusAccepted, StatusDenied, StatusDone, StatusCanceled},
	StatusAccepted: {StatusDone, StatusCanceled},
}

func (s ChallengeStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusDenied, StatusDone, StatusCanceled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s ChallengeStatus) IsTerminal() bool {
	return s.IsValid() && len(transitions[s]) == 0
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to ChallengeStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns an InvalidTransition error naming both ends
// when the move is not in the table.
func ValidateTransition(from, to ChallengeStatus) error {
	if !to.IsValid() {
		return apperrors.Newf(apperrors.ValidationFailed, "Unknown challenge status %s", to).
			WithDetail("status", string(to))
	}
	if CanTransition(from, to) {
		return nil
	}
	return apperrors.Newf(apperrors.InvalidTransition, "Cannot move challenge from %s to %s", from, to).
		WithDetail("from", string(from)).
		WithDetail("to", string(to))
}
