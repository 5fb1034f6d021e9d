package httptransport

type JoinWaitlistRequest struct {
	Email string `json:"email"`
}

type WaitlistEntryDTO struct {
	EntryID   string `json:"entryId"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

type JoinWaitlistResponse struct {
	Entry WaitlistEntryDTO `json:"entry"`
}

type ListWaitlistResponse struct {
	Items []WaitlistEntryDTO `json:"items"`
}
