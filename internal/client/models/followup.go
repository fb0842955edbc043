package models

import "time"

// FollowUp is a locally tracked follow-up action ("tindak lanjut") attached
// to the sharing workflow. Follow-ups live only in the client's local
// database and are never sent to the remote stores.
type FollowUp struct {
	ID          string
	Title       string
	Responsible string
	DueDate     string // YYYY-MM-DD, empty when no deadline is set
	Notes       string
	Completed   bool
	CreatedAt   time.Time
}
