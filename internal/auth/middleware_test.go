package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", RequireAuth(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString(CtxUserIDKey)})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	r := guardedRouter()

	valid, err := SignToken(testSecret, "user-123", time.Hour)
	require.NoError(t, err)
	expired, err := SignToken(testSecret, "user-123", -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name       string
		cookie     string
		wantStatus int
		wantBody   string
	}{
		{name: "no cookie", cookie: "", wantStatus: http.StatusUnauthorized, wantBody: `"Unauthenticated."`},
		{name: "expired token", cookie: expired, wantStatus: http.StatusUnauthorized, wantBody: `"Unauthenticated."`},
		{name: "tampered token", cookie: valid + "x", wantStatus: http.StatusUnauthorized, wantBody: `"Unauthenticated."`},
		{name: "valid token", cookie: valid, wantStatus: http.StatusOK, wantBody: `"user-123"`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if test.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: test.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, test.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), test.wantBody)
		})
	}
}
