package dto

// ConnectRequest asks for a new partnership with the given account. The
// requester is always the authenticated caller.
type ConnectRequest struct {
	RecipientID int64 `json:"recipientId" binding:"required"`
}

// RespondRequest accepts or rejects a pending partnership.
type RespondRequest struct {
	PartnershipID int64  `json:"partnershipId" binding:"required"`
	Status        string `json:"status" binding:"required,oneof=Active Rejected"`
}

// CollegeSummary is a searchable college entry.
type CollegeSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
