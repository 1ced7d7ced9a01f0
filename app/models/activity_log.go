package models

// ActivityLog is an append-only record of user-visible actions.
type ActivityLog struct {
	ID        int64  `json:"log_id"`
	Timestamp string `json:"timestamp"`
	Action    string `json:"action"`
	Details   string `json:"details"`
}
