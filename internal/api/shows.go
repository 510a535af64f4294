package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"diary/internal/service"
)

func (s *Server) listShows(c *gin.Context) {
	shows, err := s.shows.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shows": shows})
}

func (s *Server) createShow(c *gin.Context) {
	var input service.ShowInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	show, err := s.shows.Create(c.Request.Context(), input)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, show)
}

func (s *Server) getShow(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	show, err := s.shows.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, show)
}

func (s *Server) updateShow(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var update service.ShowUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	show, err := s.shows.Update(c.Request.Context(), id, update)
	if err != nil {
		respondErr(c, err)
		return
	}
	if show == nil {
		c.JSON(http.StatusOK, gin.H{"message": "nothing to update"})
		return
	}
	c.JSON(http.StatusOK, show)
}

func (s *Server) advanceShow(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	show, err := s.shows.AdvanceEpisode(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	if show == nil {
		c.JSON(http.StatusOK, gin.H{"message": "show not found"})
		return
	}
	c.JSON(http.StatusOK, show)
}

func (s *Server) newSeason(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	show, err := s.shows.StartNewSeason(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	if show == nil {
		c.JSON(http.StatusOK, gin.H{"message": "show not found"})
		return
	}
	c.JSON(http.StatusOK, show)
}

func (s *Server) deleteShow(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := s.shows.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "show deleted"})
}
