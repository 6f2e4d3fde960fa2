package dto

import "time"

type ActivityLogQuery struct {
	Action string
	UserID *int
	Page   int
	Limit  int
}

type ActivityLogResponse struct {
	ID         int64                  `json:"id"`
	UserID     *int                   `json:"user_id,omitempty"`
	Username   string                 `json:"username"`
	Role       string                 `json:"role"`
	Action     string                 `json:"action"`
	TargetData string                 `json:"target_data"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

type ActivityLogListResponse struct {
	Logs  []ActivityLogResponse `json:"logs"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}
