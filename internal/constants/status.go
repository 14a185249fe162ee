package constants

type TaskStatus string

const (
	StatusNew        TaskStatus = "new"
	StatusInProgress TaskStatus = "in_progress"
	StatusReview     TaskStatus = "review"
	StatusApproved   TaskStatus = "approved"
	StatusRejected   TaskStatus = "rejected"
)

// StatusAll is the list filter that matches every status.
const StatusAll = "all"

var TaskStatuses = []TaskStatus{
	StatusNew,
	StatusInProgress,
	StatusReview,
	StatusApproved,
	StatusRejected,
}

func (s TaskStatus) Valid() bool {
	for _, known := range TaskStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition leaves s.
func (s TaskStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationInfo    NotificationType = "info"
)
