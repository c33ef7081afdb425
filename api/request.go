package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/microcollab/microcollab-api/schema"
	"github.com/microcollab/microcollab-api/store"
)

func (s *Server) listRequests(c *gin.Context) {
	var filter schema.RequestFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	requests, err := s.store.ListRequests(filter)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

func (s *Server) getRequest(c *gin.Context) {
	detail, err := s.store.GetRequest(c.Param("requestID"))
	if err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"request": detail})
}

func (s *Server) createRequest(c *gin.Context) {
	var params schema.RequestParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	request, err := s.store.CreateRequest(c.GetString("userID"), params)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"request": request})
}

func (s *Server) updateRequest(c *gin.Context) {
	var update schema.RequestUpdate
	if err := c.BindJSON(&update); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	request, err := s.store.UpdateRequest(c.Param("requestID"), update)
	if err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"request": request})
}

func (s *Server) deleteRequest(c *gin.Context) {
	if err := s.store.DeleteRequest(c.Param("requestID")); err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
