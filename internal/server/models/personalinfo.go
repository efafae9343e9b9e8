package models

import "time"

// PersonalInfoEntry is one key→value pair of the owner's profile. The profile
// is a flat mapping, not a fixed schema: each key is an independent record
// upserted by key.
type PersonalInfoEntry struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (e *PersonalInfoEntry) Validate() error {
	v := &validator{}
	v.require("key", e.Key)
	return v.result()
}
