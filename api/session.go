package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/microcollab/microcollab-api/schema"
	"github.com/microcollab/microcollab-api/store"
)

func (s *Server) listSessions(c *gin.Context) {
	sessions, err := s.store.ListSessions(c.GetString("userID"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (s *Server) getSession(c *gin.Context) {
	detail, err := s.store.GetSession(c.Param("sessionID"))
	if err != nil {
		if err == store.ErrSessionNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorSessionNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": detail})
}

func (s *Server) startSession(c *gin.Context) {
	session, err := s.store.StartSession(c.Param("sessionID"))
	if err != nil {
		if err == store.ErrSessionNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorSessionNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}

func (s *Server) endSession(c *gin.Context) {
	var params struct {
		Notes string `json:"notes"`
	}
	// notes are optional; an empty body is fine
	_ = c.ShouldBindJSON(&params)

	session, err := s.store.EndSession(c.Param("sessionID"), params.Notes)
	if err != nil {
		switch err {
		case store.ErrSessionNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorSessionNotFound, err)
		case store.ErrRequestNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}

func (s *Server) cancelSession(c *gin.Context) {
	session, err := s.store.CancelSession(c.Param("sessionID"))
	if err != nil {
		switch err {
		case store.ErrSessionNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorSessionNotFound, err)
		case store.ErrRequestNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}

func (s *Server) listMessages(c *gin.Context) {
	messages, err := s.store.ListMessages(c.Param("sessionID"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

func (s *Server) sendMessage(c *gin.Context) {
	var params struct {
		Content string             `json:"content"`
		Type    schema.MessageType `json:"type"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	message, err := s.store.SendMessage(c.Param("sessionID"), c.GetString("userID"), params.Content, params.Type)
	if err != nil {
		if err == store.ErrSessionNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorSessionNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}
