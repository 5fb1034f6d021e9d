package httptransport

type ProfileDTO struct {
	UserID    string   `json:"userId"`
	Type      string   `json:"type"`
	Name      string   `json:"name"`
	Username  string   `json:"username"`
	Region    string   `json:"region"`
	Interests []string `json:"interests"`
	Twitter   string   `json:"twitter"`
	Instagram string   `json:"instagram"`
	YouTube   string   `json:"youtube"`
	TikTok    string   `json:"tiktok"`
	AvatarURL string   `json:"avatar"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

type CreateProfileRequest struct {
	Type      string   `json:"type"`
	Name      string   `json:"name"`
	Username  string   `json:"username"`
	Region    string   `json:"region"`
	Interests []string `json:"interests"`
	Twitter   string   `json:"twitter"`
	Instagram string   `json:"instagram"`
	YouTube   string   `json:"youtube"`
	TikTok    string   `json:"tiktok"`
	AvatarURL string   `json:"avatar"`
}

type UpdateProfileRequest struct {
	Name      string   `json:"name"`
	Username  string   `json:"username"`
	Region    string   `json:"region"`
	Interests []string `json:"interests"`
	Twitter   string   `json:"twitter"`
	Instagram string   `json:"instagram"`
	YouTube   string   `json:"youtube"`
	TikTok    string   `json:"tiktok"`
	AvatarURL string   `json:"avatar"`
}

type ProfileResponse struct {
	Profile ProfileDTO `json:"profile"`
}

type UsernameAvailabilityResponse struct {
	Username  string `json:"username"`
	Available bool   `json:"available"`
	Suggested string `json:"suggested,omitempty"`
}
