// Package models declares the record types stored by Dream Diary and their
// validation rules. Validation runs at the persistence boundary, independent
// of the store technology: every record is checked before any repository call.
package models

import "time"

// Poem is a single published poem.
type Poem struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Date      string     `json:"date"`
	Tags      StringList `json:"tags"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Validate reports every failing field as a ValidationErrors value.
func (p *Poem) Validate() error {
	v := &validator{}
	v.require("title", p.Title)
	v.require("content", p.Content)
	return v.result()
}

// PoemUpdate carries a partial update; nil fields keep their prior value.
type PoemUpdate struct {
	Title   *string     `json:"title"`
	Content *string     `json:"content"`
	Date    *string     `json:"date"`
	Tags    *StringList `json:"tags"`
}

// Apply merges the supplied fields onto p.
func (u *PoemUpdate) Apply(p *Poem) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Content != nil {
		p.Content = *u.Content
	}
	if u.Date != nil {
		p.Date = *u.Date
	}
	if u.Tags != nil {
		p.Tags = *u.Tags
	}
}
