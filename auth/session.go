package auth

import (
	"gallery/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const userIdKey = "id"

// The gorm store ties the server-side record lifetime to the cookie MaxAge,
// so a true browser-session cookie (MaxAge 0) would expire the record right
// away. Short-lived sessions get a 12 hour TTL instead.
const (
	DefaultMaxAge  = 12 * 3600
	RememberMaxAge = 30 * 86400 // "remember me"
)

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

// LoginUser binds the session to the given user. With remember the session
// survives for a month, otherwise it expires the same day.
func (s *Session) LoginUser(user *models.User, remember bool) {
	maxAge := DefaultMaxAge
	if remember {
		maxAge = RememberMaxAge
	}
	s.Set(userIdKey, user.ID)
	s.Options(sessions.Options{Path: "/", MaxAge: maxAge, HttpOnly: true})
	s.Save()
}

func (s *Session) LogoutUser() {
	s.Delete(userIdKey)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	s.Save()
}

// User resolves the session's bound user id. A zero-ID user means Anonymous.
func (s *Session) User() models.User {
	id := s.Get(userIdKey)
	if id == nil {
		return models.User{}
	}
	uid, ok := id.(uint64)
	if !ok {
		return models.User{}
	}
	user, err := models.UserFindByID(uid)
	if err != nil {
		return models.User{}
	}
	return user
}
