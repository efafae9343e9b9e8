package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soniwriter/dreamdiary/internal/server/models"
)

// --- poems ---

func (s *Server) listPoems(c *gin.Context) {
	items, err := s.poems.List(c.Request.Context())
	if err != nil {
		respondError(c, "poems", err)
		return
	}
	noCache(c)
	c.JSON(http.StatusOK, items)
}

func (s *Server) getPoem(c *gin.Context) {
	item, err := s.poems.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "poem", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) createPoem(c *gin.Context) {
	var poem models.Poem
	if err := c.ShouldBindJSON(&poem); err != nil {
		badRequest(c)
		return
	}
	created, err := s.poems.Create(c.Request.Context(), &poem)
	if err != nil {
		respondError(c, "poem", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) updatePoem(c *gin.Context) {
	var upd models.PoemUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		badRequest(c)
		return
	}
	updated, err := s.poems.Update(c.Request.Context(), c.Param("id"), &upd)
	if err != nil {
		respondError(c, "poem", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deletePoem(c *gin.Context) {
	if err := s.poems.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "poem", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "poem deleted successfully"})
}

// --- movies ---

func (s *Server) listMovies(c *gin.Context) {
	items, err := s.movies.List(c.Request.Context())
	if err != nil {
		respondError(c, "movies", err)
		return
	}
	noCache(c)
	c.JSON(http.StatusOK, items)
}

func (s *Server) getMovie(c *gin.Context) {
	item, err := s.movies.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "movie", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) createMovie(c *gin.Context) {
	var movie models.Movie
	if err := c.ShouldBindJSON(&movie); err != nil {
		badRequest(c)
		return
	}
	created, err := s.movies.Create(c.Request.Context(), &movie)
	if err != nil {
		respondError(c, "movie", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateMovie(c *gin.Context) {
	var upd models.MovieUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		badRequest(c)
		return
	}
	updated, err := s.movies.Update(c.Request.Context(), c.Param("id"), &upd)
	if err != nil {
		respondError(c, "movie", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteMovie(c *gin.Context) {
	if err := s.movies.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "movie", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "movie deleted successfully"})
}

// --- books ---

func (s *Server) listBooks(c *gin.Context) {
	items, err := s.books.List(c.Request.Context())
	if err != nil {
		respondError(c, "books", err)
		return
	}
	noCache(c)
	c.JSON(http.StatusOK, items)
}

func (s *Server) getBook(c *gin.Context) {
	item, err := s.books.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "book", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) createBook(c *gin.Context) {
	var book models.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		badRequest(c)
		return
	}
	created, err := s.books.Create(c.Request.Context(), &book)
	if err != nil {
		respondError(c, "book", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateBook(c *gin.Context) {
	var upd models.BookUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		badRequest(c)
		return
	}
	updated, err := s.books.Update(c.Request.Context(), c.Param("id"), &upd)
	if err != nil {
		respondError(c, "book", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteBook(c *gin.Context) {
	if err := s.books.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "book", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "book deleted successfully"})
}
