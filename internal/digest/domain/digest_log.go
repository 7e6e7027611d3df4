package domain

import "time"

// DigestStatus is the recorded outcome of one digest run
type DigestStatus string

const (
	DigestStatusSuccess DigestStatus = "success"
	DigestStatusPartial DigestStatus = "partial"
	DigestStatusFailed  DigestStatus = "failed"
)

// DigestLog is one append-only ledger entry per digest run. Exactly one
// entry is written per invocation, on both the completed and the aborted
// path.
type DigestLog struct {
	ID          uint         `json:"id" gorm:"primaryKey;autoIncrement"`
	TotalRepos  int          `json:"total_repos"`
	TotalEmails int          `json:"total_emails"`
	Status      DigestStatus `json:"status"`
	ErrorMsg    string       `json:"error_msg,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// SendResult is the outcome of one digest email dispatch. The mailer
// reports failures through this value rather than raising them, so the
// orchestrator can isolate recipients from each other.
type SendResult struct {
	Success   bool
	MessageID string
	Err       error
}
