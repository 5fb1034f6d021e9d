package errors

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrCampaignNotFound     = errors.New("campaign not found")
	ErrInvalidCampaignInput = errors.New("invalid campaign input")
	ErrNotCampaignOwner     = errors.New("only the owning creator may modify a campaign")
	ErrInvalidBannerUpload  = errors.New("invalid banner upload request")
)

// FieldErrors enumerates every failing field of a create/update payload,
// not just the first. It matches ErrInvalidCampaignInput under errors.Is.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return ErrInvalidCampaignInput.Error()
	}
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return "invalid campaign input: " + strings.Join(parts, "; ")
}

func (e FieldErrors) Is(target error) bool {
	return target == ErrInvalidCampaignInput
}
