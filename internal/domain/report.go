package domain

import (
	"encoding/json"
	"time"
)

// CompatibilityReport records one resume/job-description analysis.
type CompatibilityReport struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id,omitempty"`
	ResumeName     string          `json:"resume_name"`
	JobDescription string          `json:"job_description"`
	Result         json.RawMessage `json:"result"`
	Score          int             `json:"score"`
	CreatedAt      time.Time       `json:"created_at"`
}
