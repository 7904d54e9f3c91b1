package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kuu/internal/auth"
	"kuu/internal/user"
)

func (s *server) handleRegister(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name, email and password are required"})
		return
	}

	u, err := user.Create(s.db, req.Name, req.Email, req.Password)
	if errors.Is(err, user.ErrEmailTaken) {
		c.JSON(http.StatusConflict, gin.H{"message": "This email is already registered."})
		return
	}
	if err != nil {
		s.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registration complete.", "user": u})
}

func (s *server) handleLogin(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email and password are required"})
		return
	}

	u, err := user.VerifyLogin(s.db, req.Email, req.Password)
	if errors.Is(err, user.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password."})
		return
	}
	if err != nil {
		s.serverError(c, err)
		return
	}

	token, err := auth.SignToken([]byte(s.cfg.JWTSecret), u.ID, auth.TokenTTL)
	if err != nil {
		s.serverError(c, err)
		return
	}
	auth.SetSessionCookie(c, token, s.cfg.IsProduction())

	c.JSON(http.StatusOK, gin.H{"message": "Login successful.", "user": u, "token": token})
}

func (s *server) handleLogout(c *gin.Context) {
	auth.ClearSessionCookie(c, s.cfg.IsProduction())
	c.JSON(http.StatusOK, gin.H{"message": "Logged out."})
}

func (s *server) handleUser(c *gin.Context) {
	userID := c.GetString(auth.CtxUserIDKey)

	u, err := user.GetByID(s.db, userID)
	if errors.Is(err, user.ErrNotFound) {
		// Token is valid but the user is gone; treat as unauthenticated.
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
		return
	}
	if err != nil {
		s.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}
