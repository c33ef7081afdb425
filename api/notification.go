package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/microcollab/microcollab-api/store"
)

func (s *Server) listNotifications(c *gin.Context) {
	notifications, err := s.store.ListNotifications(c.GetString("userID"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (s *Server) unreadCount(c *gin.Context) {
	count, err := s.store.CountUnread(c.GetString("userID"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread": count})
}

func (s *Server) markNotificationRead(c *gin.Context) {
	if err := s.store.MarkNotificationRead(c.Param("notificationID")); err != nil {
		if err == store.ErrNotificationNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorNotificationNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) markAllNotificationsRead(c *gin.Context) {
	if err := s.store.MarkAllNotificationsRead(c.GetString("userID")); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
