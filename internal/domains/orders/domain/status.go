package domain

// Status enumerates order progression through the kitchen.
//
// Orders move strictly forward:
//
//	WAITING --start--> IN_PROGRESS --complete--> COMPLETED
//
// COMPLETED is terminal. Only the order store writes a status after creation.
type Status string

const (
	StatusWaiting    Status = "WAITING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// IsValid reports whether the status is one of the known states.
func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition can leave this status.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

func (s Status) String() string {
	return string(s)
}
