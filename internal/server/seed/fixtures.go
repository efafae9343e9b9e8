// Package seed holds the fixture content loaded by the destructive reseed.
package seed

import "github.com/soniwriter/dreamdiary/internal/server/models"

// Poems returns a fresh copy of the seed poems.
func Poems() []*models.Poem {
	return []*models.Poem{
		{
			ID:      "poem1",
			Title:   "Whispers of the Stars",
			Content: "In the silence of night,\nStars whisper ancient tales.\nCosmic dust and stardust dreams,\nEchoing through eternity's veils.",
			Date:    "2023-05-15",
			Tags:    models.StringList{"night", "stars", "dreams"},
		},
		{
			ID:      "poem2",
			Title:   "Ocean's Embrace",
			Content: "Waves crash upon the shore,\nA rhythmic lullaby of blue.\nSalt-kissed air and sandy toes,\nThe ocean's embrace, forever true.",
			Date:    "2023-07-22",
			Tags:    models.StringList{"ocean", "nature", "peace"},
		},
		{
			ID:      "poem3",
			Title:   "Autumn Leaves",
			Content: "Crimson, gold, and amber hues,\nDancing in the autumn breeze.\nWhispering secrets of the earth,\nAs they fall from aging trees.",
			Date:    "2023-10-10",
			Tags:    models.StringList{"autumn", "nature", "change"},
		},
		{
			ID:      "poem4",
			Title:   "Midnight Thoughts",
			Content: "When the world falls silent,\nAnd darkness claims the sky,\nThoughts wander freely,\nAsking questions of why.\n\nIn this quiet solitude,\nTruths begin to unfold,\nStories of the heart,\nThat daylight never told.",
			Date:    "2024-01-05",
			Tags:    models.StringList{"night", "reflection", "solitude"},
		},
		{
			ID:      "poem5",
			Title:   "Digital Dreams",
			Content: "In a world of ones and zeros,\nWhere reality blurs with code,\nWe build our digital castles,\nOn the information road.\n\nPixels paint our memories,\nAlgorithms guide our way,\nIn this realm of endless data,\nWhere dreams and nightmares play.",
			Date:    "2024-02-18",
			Tags:    models.StringList{"technology", "digital", "modern"},
		},
		{
			ID:      "poem6",
			Title:   "Mountain Whispers",
			Content: "Ancient peaks that touch the sky,\nSilent guardians of time,\nWhispering tales of ages past,\nIn a language sublime.\n\nRooted deep within the earth,\nReaching for the stars above,\nA testament to nature's strength,\nAnd its enduring love.",
			Date:    "2024-03-07",
			Tags:    models.StringList{"mountains", "nature", "time"},
		},
	}
}

// Movies returns a fresh copy of the seed movies.
func Movies() []*models.Movie {
	return []*models.Movie{
		{
			ID:          "movie1",
			Title:       "Eternal Sunshine of the Spotless Mind",
			Year:        2004,
			Director:    "Michel Gondry",
			Actors:      models.StringList{"Jim Carrey", "Kate Winslet", "Kirsten Dunst"},
			Genres:      models.StringList{"Drama", "Romance", "Sci-Fi"},
			Rating:      4,
			Description: "When their relationship turns sour, a couple undergoes a medical procedure to have each other erased from their memories.",
		},
		{
			ID:          "movie2",
			Title:       "Inception",
			Year:        2010,
			Director:    "Christopher Nolan",
			Actors:      models.StringList{"Leonardo DiCaprio", "Joseph Gordon-Levitt", "Ellen Page"},
			Genres:      models.StringList{"Action", "Adventure", "Sci-Fi"},
			Rating:      5,
			Description: "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
		},
		{
			ID:          "movie3",
			Title:       "The Grand Budapest Hotel",
			Year:        2014,
			Director:    "Wes Anderson",
			Actors:      models.StringList{"Ralph Fiennes", "F. Murray Abraham", "Mathieu Amalric"},
			Genres:      models.StringList{"Adventure", "Comedy", "Crime"},
			Rating:      4,
			Description: "A writer encounters the owner of an aging high-class hotel, who tells him of his early years serving as a lobby boy in the hotel's glorious years under an exceptional concierge.",
		},
		{
			ID:          "movie4",
			Title:       "Parasite",
			Year:        2019,
			Director:    "Bong Joon Ho",
			Actors:      models.StringList{"Song Kang-ho", "Lee Sun-kyun", "Cho Yeo-jeong"},
			Genres:      models.StringList{"Drama", "Thriller"},
			Rating:      5,
			Description: "Greed and class discrimination threaten the newly formed symbiotic relationship between the wealthy Park family and the destitute Kim clan.",
		},
		{
			ID:          "movie5",
			Title:       "Spirited Away",
			Year:        2001,
			Director:    "Hayao Miyazaki",
			Actors:      models.StringList{"Daveigh Chase", "Suzanne Pleshette", "Miyu Irino"},
			Genres:      models.StringList{"Animation", "Adventure", "Family"},
			Rating:      5,
			Description: "During her family's move to the suburbs, a sullen 10-year-old girl wanders into a world ruled by gods, witches, and spirits, and where humans are changed into beasts.",
		},
		{
			ID:          "movie6",
			Title:       "The Shawshank Redemption",
			Year:        1994,
			Director:    "Frank Darabont",
			Actors:      models.StringList{"Tim Robbins", "Morgan Freeman", "Bob Gunton"},
			Genres:      models.StringList{"Drama"},
			Rating:      5,
			Description: "Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency.",
		},
		{
			ID:          "movie7",
			Title:       "Interstellar",
			Year:        2014,
			Director:    "Christopher Nolan",
			Actors:      models.StringList{"Matthew McConaughey", "Anne Hathaway", "Jessica Chastain"},
			Genres:      models.StringList{"Adventure", "Drama", "Sci-Fi"},
			Rating:      4,
			Description: "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
		},
		{
			ID:          "movie8",
			Title:       "The Dark Knight",
			Year:        2008,
			Director:    "Christopher Nolan",
			Actors:      models.StringList{"Christian Bale", "Heath Ledger", "Aaron Eckhart"},
			Genres:      models.StringList{"Action", "Crime", "Drama"},
			Rating:      5,
			Description: "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests of his ability to fight injustice.",
		},
	}
}

// Books returns a fresh copy of the seed books.
func Books() []*models.Book {
	return []*models.Book{
		{
			ID:       "book1",
			Title:    "Dune",
			Author:   "Frank Herbert",
			ReadDate: "2022",
			Rating:   5,
			Genres:   models.StringList{"Science Fiction", "Fantasy"},
			Thoughts: "A masterpiece of world-building and political intrigue set in a fascinating universe.",
			Quote:    "Fear is the mind-killer. Fear is the little-death that brings total obliteration.",
		},
		{
			ID:       "book2",
			Title:    "The Alchemist",
			Author:   "Paulo Coelho",
			ReadDate: "2021",
			Rating:   4,
			Genres:   models.StringList{"Fiction", "Philosophy", "Adventure"},
			Thoughts: "A beautiful fable about following your dreams and finding your personal legend.",
			Quote:    "When you want something, all the universe conspires in helping you to achieve it.",
		},
		{
			ID:       "book3",
			Title:    "Sapiens: A Brief History of Humankind",
			Author:   "Yuval Noah Harari",
			ReadDate: "2023",
			Rating:   5,
			Genres:   models.StringList{"Non-fiction", "History", "Science"},
			Thoughts: "A thought-provoking exploration of human history and our impact on the world.",
			Quote:    "We study history not to know the future but to widen our horizons.",
		},
		{
			ID:       "book4",
			Title:    "The Night Circus",
			Author:   "Erin Morgenstern",
			ReadDate: "2022",
			Rating:   4,
			Genres:   models.StringList{"Fantasy", "Romance", "Fiction"},
			Thoughts: "A magical and enchanting story with beautiful prose and vivid imagery.",
			Quote:    "The finest of pleasures are always the unexpected ones.",
		},
		{
			ID:       "book5",
			Title:    "1984",
			Author:   "George Orwell",
			ReadDate: "2020",
			Rating:   5,
			Genres:   models.StringList{"Dystopian", "Classics", "Science Fiction"},
			Thoughts: "A chilling and prophetic vision of a totalitarian future that remains relevant today.",
			Quote:    "Who controls the past controls the future. Who controls the present controls the past.",
		},
		{
			ID:       "book6",
			Title:    "The Hobbit",
			Author:   "J.R.R. Tolkien",
			ReadDate: "2019",
			Rating:   5,
			Genres:   models.StringList{"Fantasy", "Adventure", "Classics"},
			Thoughts: "A timeless adventure that sparked my love for fantasy literature.",
			Quote:    "Not all those who wander are lost.",
		},
	}
}

// PersonalInfo returns a fresh copy of the seed profile pairs.
func PersonalInfo() map[string]string {
	return map[string]string{
		"Full Name":      "Jane Doe",
		"Birthday":       "April 15, 1995",
		"Location":       "San Francisco, CA",
		"Occupation":     "UX Designer",
		"Email":          "jane.doe@example.com",
		"Phone":          "(555) 123-4567",
		"Favorite Color": "Teal",
		"Life Goals":     "Travel to 50 countries, write a novel, learn to play the piano",
		"Personal Motto": "Create more than you consume",
	}
}
