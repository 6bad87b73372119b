// Package session wraps the cookie-backed session for the multidiary blog.
// The session holds a single key with the authenticated user's login name;
// absence of the key means the request is anonymous.
package session

import (
	"github.com/fabre752/multidiary/util/common"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginUser = "LOGIN_USER"

func SetLoginUser(c *gin.Context, login string) error {
	s := sessions.Default(c)
	s.Set(loginUser, login)
	return s.Save()
}

// GetLoginUser returns the login name stored in the session, or "" when the
// request is anonymous.
func GetLoginUser(c *gin.Context) string {
	s := sessions.Default(c)
	if obj := s.Get(loginUser); obj != nil {
		if login, ok := obj.(string); ok {
			return login
		}
	}
	return ""
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != ""
}

// ClearLoginUser removes the authentication state. Logging out without a
// logged-in session is an error, not a no-op.
func ClearLoginUser(c *gin.Context) error {
	s := sessions.Default(c)
	if s.Get(loginUser) == nil {
		return common.NewError("no login session to clear")
	}
	s.Delete(loginUser)
	return s.Save()
}

// AddFlash queues a one-time notice for the next rendered page.
func AddFlash(c *gin.Context, msg string) error {
	s := sessions.Default(c)
	s.AddFlash(msg)
	return s.Save()
}

// Flashes drains the queued notices. Draining mutates the session, so the
// save persists their removal.
func Flashes(c *gin.Context) []string {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) > 0 {
		if err := s.Save(); err != nil {
			return nil
		}
	}
	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
