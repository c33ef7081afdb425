package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/microcollab/microcollab-api/schema"
)

func (s *Server) accountDetail(c *gin.Context) {
	user, ok := c.MustGet("user").(*schema.User)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (s *Server) accountUpdate(c *gin.Context) {
	user, ok := c.MustGet("user").(*schema.User)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var update schema.UserUpdate
	if err := c.BindJSON(&update); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	updated, err := s.store.UpdateUser(user.ID, update)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": updated})
}

func (s *Server) listHelpers(c *gin.Context) {
	var filter schema.HelperFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	helpers, err := s.store.ListHelpers(filter)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"helpers": helpers})
}
