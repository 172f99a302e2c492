package sessions

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"skillgap-backend/internal/users"
)

// Manager resolves the session cookie to a user and manages cookie lifecycle.
// Handlers that need identity call CurrentUser explicitly rather than relying
// on middleware decoration.
type Manager struct {
	Store  Store
	Users  *users.Service
	TTL    time.Duration
	Secure bool
}

// NewManager constructs a Manager. secure controls the cookie Secure flag and
// should be true in production.
func NewManager(store Store, userSvc *users.Service, ttl time.Duration, secure bool) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{Store: store, Users: userSvc, TTL: ttl, Secure: secure}
}

// CurrentUser returns the user bound to the request's session cookie, or
// ok=false when there is no valid session.
func (m *Manager) CurrentUser(c *gin.Context) (users.User, bool) {
	token, err := c.Cookie(CookieName)
	if err != nil || token == "" {
		return users.User{}, false
	}

	sess, err := m.Store.Get(c.Request.Context(), token)
	if err != nil {
		return users.User{}, false
	}

	user, err := m.Users.GetByID(c.Request.Context(), sess.UserID)
	if err != nil {
		return users.User{}, false
	}

	c.Set("userId", user.ID)
	return user, true
}

// Issue creates a session for the user and sets the cookie on the response.
func (m *Manager) Issue(c *gin.Context, userID string) error {
	sess, err := m.Store.Create(c.Request.Context(), userID, m.TTL)
	if err != nil {
		return err
	}
	m.setCookie(c, sess.Token, int(m.TTL.Seconds()))
	return nil
}

// Clear destroys the request's session, if any, and expires the cookie.
func (m *Manager) Clear(c *gin.Context) {
	if token, err := c.Cookie(CookieName); err == nil && token != "" {
		_ = m.Store.Delete(c.Request.Context(), token)
	}
	m.setCookie(c, "", -1)
}

func (m *Manager) setCookie(c *gin.Context, value string, maxAge int) {
	sameSite := http.SameSiteLaxMode
	if m.Secure {
		sameSite = http.SameSiteNoneMode
	}
	c.SetSameSite(sameSite)
	c.SetCookie(CookieName, value, maxAge, "/", "", m.Secure, true)
}
