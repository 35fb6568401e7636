package models

import (
	"time"
)

// Partnership is a college-company connection with a pending/active/rejected
// lifecycle. At most one partnership exists per unordered (requester,
// recipient) pair, enforced by a unique index on the sorted pair.
type Partnership struct {
	ID          int64             `json:"id" db:"id"`
	RequesterID int64             `json:"requesterId" db:"requester_id"`
	RecipientID int64             `json:"recipientId" db:"recipient_id"`
	Status      PartnershipStatus `json:"status" db:"status"`
	CreatedAt   time.Time         `json:"createdAt" db:"created_at"`

	RequesterName string `json:"requesterName,omitempty"` // joined from users
	RecipientName string `json:"recipientName,omitempty"`
}

// OtherParty returns the id on the opposite side of the given user.
func (p *Partnership) OtherParty(userID int64) int64 {
	if p.RequesterID == userID {
		return p.RecipientID
	}
	return p.RequesterID
}
