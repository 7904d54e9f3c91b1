package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	CookieName = "auth_token"
	TokenTTL   = 7 * 24 * time.Hour
)

// SetSessionCookie attaches the signed token as an HTTP-only cookie.
// Secure is only set in production so local HTTP development works.
func SetSessionCookie(c *gin.Context, token string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(TokenTTL.Seconds()), "/", "", secure, true)
}

// ClearSessionCookie expires the cookie immediately. The token itself stays
// valid until its expiry; there is no server-side revocation.
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", secure, true)
}
