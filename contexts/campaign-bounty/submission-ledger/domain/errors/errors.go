package errors

import "errors"

var (
	ErrSubmissionNotFound     = errors.New("submission not found")
	ErrInvalidSubmissionInput = errors.New("invalid submission input")
	ErrInvalidTransition      = errors.New("submission status transition not allowed")
	ErrCampaignNotFound       = errors.New("campaign not found")
	ErrCampaignClosed         = errors.New("campaign is closed for submissions")
)
