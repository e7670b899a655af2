package domain

// ProcessingStatus represents the lifecycle state of a journal entry's
// AI parsing pipeline.
type ProcessingStatus string

const (
	ProcessingStatusPending    ProcessingStatus = "pending"
	ProcessingStatusProcessing ProcessingStatus = "processing"
	ProcessingStatusCompleted  ProcessingStatus = "completed"
	ProcessingStatusFailed     ProcessingStatus = "failed"
)

func (s ProcessingStatus) String() string { return string(s) }

func (s ProcessingStatus) IsValid() bool {
	switch s {
	case ProcessingStatusPending, ProcessingStatusProcessing,
		ProcessingStatusCompleted, ProcessingStatusFailed:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is a legal
// state-machine transition. The full transition table:
//
//	pending    -> processing
//	processing -> completed | failed
//	failed     -> pending   (explicit retry only)
//
// Completed has no outgoing transitions; completed entries are never
// re-submitted by normal flow.
func (s ProcessingStatus) CanTransitionTo(next ProcessingStatus) bool {
	switch s {
	case ProcessingStatusPending:
		return next == ProcessingStatusProcessing
	case ProcessingStatusProcessing:
		return next == ProcessingStatusCompleted || next == ProcessingStatusFailed
	case ProcessingStatusFailed:
		return next == ProcessingStatusPending
	}
	return false
}

// CanRetry reports whether an entry in this state may be retried.
// Only failed entries are retryable.
func (s ProcessingStatus) CanRetry() bool {
	return s == ProcessingStatusFailed
}
