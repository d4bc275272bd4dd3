package entity

import (
	"encoding/json"
	"time"
)

// BusinessProfile represents a local business owned by a business_owner user.
type BusinessProfile struct {
	ID          int64     `json:"bp_id,omitempty"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"bp_name"`
	Description string    `json:"description,omitempty"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

// UnmarshalJSON accepts the legacy "pb_id" primary key next to "bp_id".
func (b *BusinessProfile) UnmarshalJSON(data []byte) error {
	type plain BusinessProfile
	var aux struct {
		plain
		LegacyID *int64 `json:"pb_id"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*b = BusinessProfile(aux.plain)
	if b.ID == 0 && aux.LegacyID != nil {
		b.ID = *aux.LegacyID
	}

	return nil
}

// OwnedBy reports whether the business belongs to the given user.
func (b *BusinessProfile) OwnedBy(userID int64) bool {
	return b != nil && b.UserID == userID
}

// TelURI returns the tel: link used for the contact button and QR code.
func (b *BusinessProfile) TelURI() string {
	if b == nil || b.Phone == "" {
		return ""
	}

	return "tel:" + b.Phone
}
