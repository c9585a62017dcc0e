package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const sessionCookie = "cms_session"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if !s.bindJSON(c, "login", &req) {
		return
	}
	if !s.creds.Check(req.Username, req.Password) {
		s.log.Warn().Str("username", req.Username).Str("ip", c.ClientIP()).Msg("login refused")
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid username or password"})
		return
	}

	value := s.sessions.Create(req.Username)
	s.setSessionCookie(c, value, int(s.sessions.TTL().Seconds()))
	c.Set(usernameKey, req.Username)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login successful"})
}

func (s *Server) logout(c *gin.Context) {
	if value, err := c.Cookie(sessionCookie); err == nil {
		s.sessions.Delete(value)
	}
	s.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

func (s *Server) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, value, maxAge, "/", "", !s.cfg.DevMode, true)
}

// requireSession rejects requests without a live session cookie.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(sessionCookie)
		if err == nil {
			if username, ok := s.sessions.Lookup(value); ok {
				c.Set(usernameKey, username)
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required."})
	}
}
