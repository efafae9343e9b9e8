package models

import "time"

// Movie is a single entry in the owner's movie log.
type Movie struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Poster      string     `json:"poster,omitempty"`
	Year        int        `json:"year"`
	Director    string     `json:"director"`
	Actors      StringList `json:"actors"`
	Genres      StringList `json:"genres"`
	Rating      int        `json:"rating"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (m *Movie) Validate() error {
	v := &validator{}
	v.require("title", m.Title)
	v.require("director", m.Director)
	v.requireNonZero("year", m.Year)
	v.ratingInRange("rating", m.Rating)
	return v.result()
}

// MovieUpdate carries a partial update; nil fields keep their prior value.
type MovieUpdate struct {
	Title       *string     `json:"title"`
	Poster      *string     `json:"poster"`
	Year        *int        `json:"year"`
	Director    *string     `json:"director"`
	Actors      *StringList `json:"actors"`
	Genres      *StringList `json:"genres"`
	Rating      *int        `json:"rating"`
	Description *string     `json:"description"`
}

func (u *MovieUpdate) Apply(m *Movie) {
	if u.Title != nil {
		m.Title = *u.Title
	}
	if u.Poster != nil {
		m.Poster = *u.Poster
	}
	if u.Year != nil {
		m.Year = *u.Year
	}
	if u.Director != nil {
		m.Director = *u.Director
	}
	if u.Actors != nil {
		m.Actors = *u.Actors
	}
	if u.Genres != nil {
		m.Genres = *u.Genres
	}
	if u.Rating != nil {
		m.Rating = *u.Rating
	}
	if u.Description != nil {
		m.Description = *u.Description
	}
}
