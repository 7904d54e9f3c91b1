package main

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kuu/internal/auth"
	"kuu/internal/sound"
)

func (s *server) handleListSounds(c *gin.Context) {
	f := sound.ListFilter{
		WithFileData: c.Query("withFileData") == "1",
		Limit:        parseInt(c.Query("limit"), 0),
		Offset:       parseInt(c.Query("offset"), 0),
	}
	if c.Query("userOnly") == "1" {
		f.OwnerID = c.GetString(auth.CtxUserIDKey)
	}

	sounds, err := sound.List(s.db, f)
	if err != nil {
		s.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sounds": sounds})
}

func (s *server) handleUploadSound(c *gin.Context) {
	name := c.PostForm("name")
	fileHeader, err := c.FormFile("file")
	if err != nil || name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "file and name are required"})
		return
	}
	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "audio/") {
		c.JSON(http.StatusBadRequest, gin.H{"message": "only audio uploads are allowed"})
		return
	}
	if fileHeader.Size > sound.MaxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{"message": "file too large (max 10MB)"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		s.serverError(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.serverError(c, err)
		return
	}

	userID := c.GetString(auth.CtxUserIDKey)
	snd, err := sound.Create(s.db, userID, name, data)
	if err != nil {
		s.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recording saved.", "sound": snd})
}

func (s *server) handleGetSound(c *gin.Context) {
	snd, err := sound.Get(s.db, c.Param("id"))
	if errors.Is(err, sound.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Sound not found."})
		return
	}
	if err != nil {
		s.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, snd)
}

func (s *server) handleDeleteSound(c *gin.Context) {
	userID := c.GetString(auth.CtxUserIDKey)

	err := sound.Delete(s.db, userID, c.Param("id"))
	if errors.Is(err, sound.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Sound not found."})
		return
	}
	if err != nil {
		s.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sound deleted."})
}
