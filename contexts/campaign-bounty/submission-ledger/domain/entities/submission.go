package entities

import (
	"math"
	"strings"
	"time"
)

type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

// Submission is one clipper entry against a campaign. A row never moves
// between campaigns or submitters after creation; moderation only flips
// Status along the allowed edges.
type Submission struct {
	SubmissionID string
	CampaignID   string
	SubmitterID  string
	ContentURLs  []string
	Status       SubmissionStatus
	Paid         float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (s Submission) ValidateCreate() bool {
	if strings.TrimSpace(s.CampaignID) == "" || strings.TrimSpace(s.SubmitterID) == "" {
		return false
	}
	if len(s.ContentURLs) == 0 {
		return false
	}
	for _, url := range s.ContentURLs {
		if strings.TrimSpace(url) == "" {
			return false
		}
	}
	return true
}

// CanTransition encodes the moderation state machine. Approve and reject
// only apply to pending rows; revert returns a decided row to pending.
// Self-transitions are not allowed.
func CanTransition(from, to SubmissionStatus) bool {
	switch from {
	case SubmissionStatusPending:
		return to == SubmissionStatusApproved || to == SubmissionStatusRejected
	case SubmissionStatusApproved, SubmissionStatusRejected:
		return to == SubmissionStatusPending
	default:
		return false
	}
}

// EstimatedPayout projects what a campaign's accumulated views are worth at
// its advertised rate, rounded to cents.
func EstimatedPayout(totalViews int64, ratePerMillionViews float64) float64 {
	value := float64(totalViews) / 1_000_000 * ratePerMillionViews
	return math.Round(value*100) / 100
}
