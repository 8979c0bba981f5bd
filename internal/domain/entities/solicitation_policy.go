package entities

import "slices"

// Action is an operation an actor can attempt on a solicitation.
type Action string

const (
	ActionCreate       Action = "create"
	ActionAccept       Action = "accept"
	ActionSuggestValue Action = "suggest_value"
	ActionConsent      Action = "consent"
	ActionCancel       Action = "cancel"
	ActionFinish       Action = "finish"
	ActionStartWork    Action = "start_work"
	ActionView         Action = "view"
)

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID   int64
	Role Role
}

// ValidProgressTransitions is the single transition table for solicitations.
var ValidProgressTransitions = map[Progress][]Progress{
	ProgressCreated:    {ProgressAccepted, ProgressCancelled, ProgressExpired},
	ProgressAccepted:   {ProgressInProgress, ProgressCancelled},
	ProgressInProgress: {ProgressFinished, ProgressCancelled},
}

func CanMoveTo(from, to Progress) bool {
	return slices.Contains(ValidProgressTransitions[from], to)
}

var unrestrictedViewers = []Role{RoleEmployee, RoleAdmin}

// CanTransition is the capability check for role gates and ownership.
// It does not look at progress; state rules are checked separately so that
// callers can report a conflict instead of a permission failure.
func CanTransition(actor Actor, s Solicitation, action Action) bool {
	switch action {
	case ActionCreate:
		return actor.Role.In(RoleEnterprise, RoleAdmin) && s.AuthorID == actor.ID
	case ActionAccept:
		return actor.Role.In(RoleEmployee, RoleAdmin) && !s.IsAuthor(actor.ID)
	case ActionSuggestValue, ActionConsent:
		return s.IsParty(actor.ID)
	case ActionCancel, ActionStartWork:
		return s.IsAuthor(actor.ID)
	case ActionFinish:
		return s.IsAssignedEmployee(actor.ID)
	case ActionView:
		return s.IsAuthor(actor.ID) || slices.Contains(unrestrictedViewers, actor.Role)
	}
	return false
}
