package valueset

import "time"

// Item is a single value in a value set.
type Item struct {
	ID          string    `json:"id,omitempty"`
	SetID       string    `json:"setId,omitempty"`
	Value       string    `json:"value"`
	Description string    `json:"description,omitempty"`
	DateCreated time.Time `json:"dateCreated,omitzero"`
	DateUpdated time.Time `json:"dateUpdated,omitzero"`
}
