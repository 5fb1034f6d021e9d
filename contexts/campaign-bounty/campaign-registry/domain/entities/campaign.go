package entities

import (
	"strings"
	"time"
)

type PayoutTier string

const (
	PayoutTierHigh   PayoutTier = "high"
	PayoutTierMedium PayoutTier = "medium"
	PayoutTierLow    PayoutTier = "low"
)

type Campaign struct {
	CampaignID           string
	CreatorID            string
	Title                string
	Description          string
	ImageURL             string
	ExternalURL          string
	MoneyPerMillionViews float64
	Prize                float64
	Paid                 float64
	TotalViews           int64
	ContentTypeTags      []string
	CategoryTags         []string
	Open                 bool
	Entries              int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// PayoutTierFor buckets a per-million-views rate for list filtering.
func PayoutTierFor(rate float64) PayoutTier {
	switch {
	case rate >= 500:
		return PayoutTierHigh
	case rate >= 100:
		return PayoutTierMedium
	default:
		return PayoutTierLow
	}
}

func IsSupportedContentType(value string) bool {
	switch strings.TrimSpace(value) {
	case "Clipping", "Logo display", "Video content":
		return true
	default:
		return false
	}
}

func AllSupportedContentTypes(tags []string) bool {
	if len(tags) == 0 {
		return false
	}
	for _, item := range tags {
		if !IsSupportedContentType(item) {
			return false
		}
	}
	return true
}

func IsSupportedCategory(value string) bool {
	switch strings.TrimSpace(value) {
	case "Gaming", "Entertainment", "Education", "Technology", "Music", "Sports",
		"Lifestyle", "Comedy", "Beauty", "Cooking", "Travel", "Fitness":
		return true
	default:
		return false
	}
}

func AllSupportedCategories(tags []string) bool {
	for _, item := range tags {
		if !IsSupportedCategory(item) {
			return false
		}
	}
	return true
}
