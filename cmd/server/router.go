package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kuu/internal/auth"
	"kuu/internal/config"
	"kuu/internal/events"
)

type server struct {
	db  *sql.DB
	cfg *config.Config
	log *slog.Logger
	hub *events.Hub
}

func (s *server) router() *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// PUBLIC
	r.POST("/register", s.handleRegister)
	r.POST("/login", s.handleLogin)
	r.GET("/kuu/ranking", s.handleRanking)

	// WEBSOCKET EVENT FEED
	r.GET("/ws", events.Handler(s.hub))

	// PROTECTED
	authed := r.Group("/")
	authed.Use(auth.RequireAuth([]byte(s.cfg.JWTSecret)))
	authed.POST("/logout", s.handleLogout)
	authed.GET("/user", s.handleUser)
	authed.GET("/kuu/status", s.handleStatus)
	authed.POST("/kuu/count-up", s.handleCountUp)
	authed.GET("/kuu/sounds", s.handleListSounds)
	authed.POST("/kuu/sounds", s.handleUploadSound)
	authed.GET("/kuu/sounds/:id", s.handleGetSound)
	authed.DELETE("/kuu/sounds/:id", s.handleDeleteSound)

	return r
}

func (s *server) serverError(c *gin.Context, err error) {
	s.log.Error("request failed", "path", c.FullPath(), "err", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
