package httptransport

type SubmissionDTO struct {
	SubmissionID string   `json:"submissionId"`
	CampaignID   string   `json:"campaignId"`
	SubmitterID  string   `json:"submitterId"`
	ContentURLs  []string `json:"contentUrls"`
	Status       string   `json:"status"`
	Paid         float64  `json:"paid"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

type CreateSubmissionRequest struct {
	ContentURLs []string `json:"contentUrls"`
}

type CreateSubmissionResponse struct {
	Submission SubmissionDTO `json:"submission"`
}

type SetStatusResponse struct {
	Submission SubmissionDTO `json:"submission"`
}

type ListSubmissionsResponse struct {
	Items []SubmissionDTO `json:"items"`
}

type GetSubmissionResponse struct {
	Submission SubmissionDTO `json:"submission"`
}
