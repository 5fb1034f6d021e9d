package httptransport

type ReviewCampaignDTO struct {
	CampaignID           string  `json:"campaignId"`
	Title                string  `json:"title"`
	Description          string  `json:"description"`
	MoneyPerMillionViews float64 `json:"moneyPerMillionViews"`
	Prize                float64 `json:"prize"`
	TotalViews           int64   `json:"totalViews"`
	PayoutTier           string  `json:"payoutTier"`
}

type ReviewSubmitterDTO struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

type ReviewRecordDTO struct {
	SubmissionID    string              `json:"submissionId"`
	CampaignID      string              `json:"campaignId"`
	SubmitterID     string              `json:"submitterId"`
	ContentURLs     []string            `json:"contentUrls"`
	Status          string              `json:"status"`
	CreatedAt       string              `json:"createdAt"`
	EstimatedPayout float64             `json:"estimatedPayout"`
	Campaign        *ReviewCampaignDTO  `json:"campaign,omitempty"`
	Submitter       *ReviewSubmitterDTO `json:"submitter,omitempty"`
}

type ReviewSummaryDTO struct {
	Pending       int     `json:"pending"`
	Accepted      int     `json:"accepted"`
	Rejected      int     `json:"rejected"`
	PayoutsQueued float64 `json:"payoutsQueued"`
}

type ReviewFeedResponse struct {
	Items   []ReviewRecordDTO `json:"items"`
	Summary ReviewSummaryDTO  `json:"summary"`
}
