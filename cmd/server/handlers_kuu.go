package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kuu/internal/auth"
	"kuu/internal/progress"
	"kuu/internal/ranking"
	"kuu/internal/user"
	"kuu/pkg/models"
)

func (s *server) handleStatus(c *gin.Context) {
	userID := c.GetString(auth.CtxUserIDKey)

	snap, err := progress.Status(s.db, userID)
	if errors.Is(err, progress.ErrNoStatus) {
		c.JSON(http.StatusNotFound, gin.H{"message": "No kuu status found."})
		return
	}
	if err != nil {
		s.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, snap)
}

func (s *server) handleCountUp(c *gin.Context) {
	userID := c.GetString(auth.CtxUserIDKey)

	snap, err := progress.Increment(s.db, userID)
	if err != nil {
		s.serverError(c, err)
		return
	}

	// Best effort; a failed broadcast never fails the count-up.
	if u, err := user.GetByID(s.db, userID); err == nil {
		s.hub.Broadcast(models.KuuEvent{
			UserID:    userID,
			UserName:  u.Name,
			KuuCount:  snap.KuuCount,
			Level:     snap.Level,
			Title:     snap.Title,
			LeveledUp: snap.LeveledUp,
			Timestamp: time.Now().Unix(),
		})
	}

	c.JSON(http.StatusOK, snap)
}

func (s *server) handleRanking(c *gin.Context) {
	page := parseInt(c.Query("page"), 1)
	limit := parseInt(c.Query("limit"), 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	rows, pagination, err := ranking.List(s.db, page, limit)
	if err != nil {
		s.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rankings": rows, "pagination": pagination})
}
