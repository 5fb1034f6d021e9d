package entities

import (
	"strings"
	"time"
)

// CampaignInfo is the slice of campaign state the review view needs.
type CampaignInfo struct {
	CampaignID           string
	Title                string
	Description          string
	MoneyPerMillionViews float64
	Prize                float64
	TotalViews           int64
}

// SubmitterInfo is the slice of profile state the review view needs.
type SubmitterInfo struct {
	UserID   string
	Username string
}

// Record is one submission joined with its campaign and submitter. Either
// lookup may be nil when the referenced row has vanished; the record still
// counts toward the summary.
type Record struct {
	SubmissionID    string
	CampaignID      string
	SubmitterID     string
	ContentURLs     []string
	Status          string
	CreatedAt       time.Time
	EstimatedPayout float64
	Campaign        *CampaignInfo
	Submitter       *SubmitterInfo
}

type Summary struct {
	Pending       int
	Accepted      int
	Rejected      int
	PayoutsQueued float64
}

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	TierHigh   = "high"
	TierMedium = "medium"
	TierLow    = "low"
)

const (
	WindowWeek  = "7d"
	WindowMonth = "30d"
	WindowAll   = "all"
)

type Filter struct {
	Status string
	Search string
	Tier   string
	Window string
}

// Summarize buckets the collection by status. PayoutsQueued sums the full
// campaign prize over approved rows rather than each row's estimated
// payout, which matches what the finance review screen expects to see.
func Summarize(records []Record) Summary {
	var summary Summary
	for _, record := range records {
		switch record.Status {
		case StatusApproved:
			summary.Accepted++
			if record.Campaign != nil {
				summary.PayoutsQueued += record.Campaign.Prize
			}
		case StatusRejected:
			summary.Rejected++
		default:
			summary.Pending++
		}
	}
	return summary
}

// ApplyFilter runs each record through the filters in a fixed order,
// dropping it at the first miss: status, then text search, then payout
// tier, then time window. It never mutates its input.
func ApplyFilter(records []Record, filter Filter, now time.Time) []Record {
	result := make([]Record, 0, len(records))
	for _, record := range records {
		if !matchesStatus(record, filter.Status) {
			continue
		}
		if !matchesSearch(record, filter.Search) {
			continue
		}
		if !matchesTier(record, filter.Tier) {
			continue
		}
		if !matchesWindow(record, filter.Window, now) {
			continue
		}
		result = append(result, record)
	}
	return result
}

func matchesStatus(record Record, status string) bool {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" || status == "all" {
		return true
	}
	return record.Status == status
}

func matchesSearch(record Record, search string) bool {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return true
	}
	if record.Campaign != nil {
		if strings.Contains(strings.ToLower(record.Campaign.Title), needle) {
			return true
		}
		if strings.Contains(strings.ToLower(record.Campaign.Description), needle) {
			return true
		}
	}
	if record.Submitter != nil && strings.Contains(strings.ToLower(record.Submitter.Username), needle) {
		return true
	}
	return false
}

// TierFor buckets a per-million-views rate. A record with no campaign
// lookup rates as zero and lands in the low tier.
func TierFor(rate float64) string {
	switch {
	case rate >= 500:
		return TierHigh
	case rate >= 100:
		return TierMedium
	default:
		return TierLow
	}
}

func matchesTier(record Record, tier string) bool {
	tier = strings.ToLower(strings.TrimSpace(tier))
	if tier == "" || tier == "all" {
		return true
	}
	rate := 0.0
	if record.Campaign != nil {
		rate = record.Campaign.MoneyPerMillionViews
	}
	return TierFor(rate) == tier
}

func matchesWindow(record Record, window string, now time.Time) bool {
	switch strings.ToLower(strings.TrimSpace(window)) {
	case WindowWeek:
		return record.CreatedAt.After(now.Add(-7 * 24 * time.Hour))
	case WindowMonth:
		return record.CreatedAt.After(now.Add(-30 * 24 * time.Hour))
	default:
		return true
	}
}
