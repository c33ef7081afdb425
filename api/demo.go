package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// demoFeed serves the simulator's append-only activity feed for the
// public demo page.
func (s *Server) demoFeed(c *gin.Context) {
	if s.simulator == nil {
		abortWithEncoding(c, http.StatusNotFound, errorInvalidParameters)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": s.simulator.Feed()})
}

func (s *Server) demoSummary(c *gin.Context) {
	if s.simulator == nil {
		abortWithEncoding(c, http.StatusNotFound, errorInvalidParameters)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": s.simulator.Summary()})
}
