package models

import "time"

// Book is a single entry in the owner's reading log. ReadDate is free text,
// in practice usually a year.
type Book struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Author    string     `json:"author"`
	Cover     string     `json:"cover,omitempty"`
	ReadDate  string     `json:"readDate"`
	Rating    int        `json:"rating"`
	Genres    StringList `json:"genres"`
	Thoughts  string     `json:"thoughts"`
	Quote     string     `json:"quote,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (b *Book) Validate() error {
	v := &validator{}
	v.require("title", b.Title)
	v.require("author", b.Author)
	v.require("readDate", b.ReadDate)
	v.ratingInRange("rating", b.Rating)
	return v.result()
}

// BookUpdate carries a partial update; nil fields keep their prior value.
type BookUpdate struct {
	Title    *string     `json:"title"`
	Author   *string     `json:"author"`
	Cover    *string     `json:"cover"`
	ReadDate *string     `json:"readDate"`
	Rating   *int        `json:"rating"`
	Genres   *StringList `json:"genres"`
	Thoughts *string     `json:"thoughts"`
	Quote    *string     `json:"quote"`
}

func (u *BookUpdate) Apply(b *Book) {
	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Author != nil {
		b.Author = *u.Author
	}
	if u.Cover != nil {
		b.Cover = *u.Cover
	}
	if u.ReadDate != nil {
		b.ReadDate = *u.ReadDate
	}
	if u.Rating != nil {
		b.Rating = *u.Rating
	}
	if u.Genres != nil {
		b.Genres = *u.Genres
	}
	if u.Thoughts != nil {
		b.Thoughts = *u.Thoughts
	}
	if u.Quote != nil {
		b.Quote = *u.Quote
	}
}
