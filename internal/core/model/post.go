package model

import "time"

// VerificationStatus is the fact-check state attached to a tracked post.
type VerificationStatus string

const (
	StatusVerifiedFalse VerificationStatus = "Verified False"
	StatusDebunked      VerificationStatus = "Debunked"
	StatusFactChecked   VerificationStatus = "Fact-Checked"
	StatusFlagged       VerificationStatus = "Flagged"
	StatusDisputed      VerificationStatus = "Disputed"
	StatusUnderReview   VerificationStatus = "Under Review"
)

// VerificationStatuses lists all known statuses, most confirmed-false
// first. Risk severity must be non-increasing along this order.
var VerificationStatuses = []VerificationStatus{
	StatusVerifiedFalse,
	StatusDebunked,
	StatusFactChecked,
	StatusFlagged,
	StatusDisputed,
	StatusUnderReview,
}

// Valid reports whether s is one of the known statuses.
func (s VerificationStatus) Valid() bool {
	for _, known := range VerificationStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// PostRecord is one flagged social-media post as delivered by the
// ingestion layer. Engagement counts are non-negative; the record is
// never mutated by the graph subsystem.
type PostRecord struct {
	PostID       string             `json:"post_id"`
	UserID       string             `json:"user_id,omitempty"`
	Username     string             `json:"username,omitempty"`
	Platform     string             `json:"platform"`
	Category     string             `json:"category"`
	Content      string             `json:"content,omitempty"`
	Timestamp    time.Time          `json:"timestamp"`
	Shares       int                `json:"shares"`
	Likes        int                `json:"likes"`
	Comments     int                `json:"comments"`
	Views        int                `json:"views"`
	Status       VerificationStatus `json:"verification_status"`
	Archived     bool               `json:"archived"`
	ArchiveURL   string             `json:"archive_url,omitempty"`
	MisinfoScore float64            `json:"misinfo_score"`
	RiskTier     RiskTier           `json:"risk_tier,omitempty"`
}
