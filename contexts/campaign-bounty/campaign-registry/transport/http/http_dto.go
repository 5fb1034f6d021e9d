package httptransport

type CampaignDTO struct {
	CampaignID           string   `json:"campaignId"`
	CreatorID            string   `json:"creatorId"`
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	ImageURL             string   `json:"image"`
	ExternalURL          string   `json:"resource"`
	MoneyPerMillionViews float64  `json:"moneyPerMillionViews"`
	Prize                float64  `json:"prize"`
	Paid                 float64  `json:"paid"`
	TotalViews           int64    `json:"totalViews"`
	ContentTypeTags      []string `json:"contentTypeTags"`
	CategoryTags         []string `json:"categoryTags"`
	Open                 bool     `json:"open"`
	Entries              int      `json:"entries"`
	PayoutTier           string   `json:"payoutTier"`
	CreatedAt            string   `json:"createdAt"`
	UpdatedAt            string   `json:"updatedAt"`
}

type CreateCampaignRequest struct {
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	ImageURL             string   `json:"image"`
	ExternalURL          string   `json:"resource"`
	MoneyPerMillionViews float64  `json:"moneyPerMillionViews"`
	ContentTypeTags      []string `json:"contentTypeTags"`
	CategoryTags         []string `json:"categoryTags"`
}

type CreateCampaignResponse struct {
	Campaign CampaignDTO `json:"campaign"`
}

type UpdateCampaignRequest struct {
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	ImageURL             string   `json:"image"`
	ExternalURL          string   `json:"resource"`
	MoneyPerMillionViews float64  `json:"moneyPerMillionViews"`
	ContentTypeTags      []string `json:"contentTypeTags"`
	CategoryTags         []string `json:"categoryTags"`
}

type ListCampaignsResponse struct {
	Items []CampaignDTO `json:"items"`
}

type GetCampaignResponse struct {
	Campaign CampaignDTO `json:"campaign"`
}

type GenerateBannerUploadURLRequest struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
}

type GenerateBannerUploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
	AssetPath string `json:"assetPath"`
	ExpiresAt string `json:"expiresAt"`
}
