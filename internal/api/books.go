package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"diary/internal/service"
)

func (s *Server) listBooks(c *gin.Context) {
	books, err := s.books.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"books": books})
}

func (s *Server) createBook(c *gin.Context) {
	var input service.BookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	book, err := s.books.Create(c.Request.Context(), input)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, book)
}

func (s *Server) getBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	book, err := s.books.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

func (s *Server) updateBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var update service.BookUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	book, err := s.books.Update(c.Request.Context(), id, update)
	if err != nil {
		respondErr(c, err)
		return
	}
	if book == nil {
		c.JSON(http.StatusOK, gin.H{"message": "nothing to update"})
		return
	}
	c.JSON(http.StatusOK, book)
}

func (s *Server) addBookPages(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body struct {
		Pages int `json:"pages"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	book, err := s.books.AddPages(c.Request.Context(), id, body.Pages)
	if err != nil {
		respondErr(c, err)
		return
	}
	if book == nil {
		c.JSON(http.StatusOK, gin.H{"message": "book not found"})
		return
	}
	c.JSON(http.StatusOK, book)
}

func (s *Server) deleteBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := s.books.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "book deleted"})
}
