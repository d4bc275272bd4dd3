package entity

import (
	"encoding/json"
	"slices"
	"time"
)

// Ad is a service listing posted by a business profile.
// Status false means the ad waits for admin approval; true means it is publicly visible.
type Ad struct {
	ID          int64     `json:"ad_id,omitempty"`
	BusinessID  int64     `json:"bp_id"`
	Title       string    `json:"ad_title"`
	Description string    `json:"description,omitempty"`
	CategoryIDs []int64   `json:"category_ids"`
	Price       string    `json:"price,omitempty"`
	Address     string    `json:"address,omitempty"`
	PostDate    string    `json:"post_date,omitempty"`
	DueDate     string    `json:"due_date,omitempty"`
	Status      bool      `json:"status"`
	Images      []string  `json:"images,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

// UnmarshalJSON accepts both the list form "category_ids" and the legacy
// scalar "category_id", and a numeric or textual price.
func (a *Ad) UnmarshalJSON(data []byte) error {
	type plain Ad
	var aux struct {
		plain
		CategoryID *int64          `json:"category_id"`
		RawPrice   json.RawMessage `json:"price"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*a = Ad(aux.plain)
	if aux.CategoryID != nil && !slices.Contains(a.CategoryIDs, *aux.CategoryID) {
		a.CategoryIDs = append(a.CategoryIDs, *aux.CategoryID)
	}
	a.Price = decodePrice(aux.RawPrice)

	return nil
}

// MarshalJSON writes the API's create and update shape: a single
// "category_id" holding the first category instead of the list.
func (a Ad) MarshalJSON() ([]byte, error) {
	type plain Ad
	aux := struct {
		plain
		CategoryIDs *struct{} `json:"category_ids,omitempty"`
		CategoryID  int64     `json:"category_id,omitempty"`
	}{plain: plain(a)}
	if len(a.CategoryIDs) > 0 {
		aux.CategoryID = a.CategoryIDs[0]
	}

	return json.Marshal(aux)
}

func decodePrice(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}

	var number json.Number
	if err := json.Unmarshal(raw, &number); err == nil {
		return number.String()
	}

	return ""
}

// HasCategory reports whether the ad is linked to the category.
func (a *Ad) HasCategory(categoryID int64) bool {
	return slices.Contains(a.CategoryIDs, categoryID)
}

// IsApproved reports whether the ad is publicly visible.
func (a *Ad) IsApproved() bool {
	return a.Status
}

// Cover returns the first image URL, if any.
func (a *Ad) Cover() string {
	if len(a.Images) == 0 {
		return ""
	}

	return a.Images[0]
}
