package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"skillgap-backend/internal/sessions"
	"skillgap-backend/internal/shared/server/respond"
	"skillgap-backend/internal/shared/telemetry"
	"skillgap-backend/internal/users"
)

// GoogleService handles the Google OAuth flow and session endpoints.
type GoogleService struct {
	oauthConfig *oauth2.Config
	uiRedirect  string
	uiFailure   string
	stateTTL    time.Duration
	stateStore  *stateStore
	userSvc     *users.Service
	sessionMgr  *sessions.Manager
}

// NewGoogleService builds a GoogleService.
func NewGoogleService(clientID, clientSecret, redirectURL, uiRedirect, uiFailure string, userSvc *users.Service, sessionMgr *sessions.Manager) *GoogleService {
	return &GoogleService{
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		uiRedirect: uiRedirect,
		uiFailure:  uiFailure,
		stateTTL:   5 * time.Minute,
		stateStore: newStateStore(),
		userSvc:    userSvc,
		sessionMgr: sessionMgr,
	}
}

// RegisterRoutes attaches auth routes.
func (s *GoogleService) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/google", s.start)
	rg.GET("/auth/google/callback", s.callback)
	rg.GET("/auth/me", s.me)
	rg.POST("/auth/logout", s.logout)
}

func (s *GoogleService) start(c *gin.Context) {
	if s.oauthConfig.ClientID == "" || s.oauthConfig.ClientSecret == "" || s.oauthConfig.RedirectURL == "" {
		respond.Error(c, http.StatusInternalServerError, "Google auth is not configured")
		return
	}

	state := uuid.NewString()
	s.stateStore.put(state, time.Now().Add(s.stateTTL))

	url := s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	c.Redirect(http.StatusFound, url)
}

func (s *GoogleService) callback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" || !s.stateStore.consume(state) {
		s.failLogin(c, "invalid or expired oauth state")
		return
	}

	ctx := c.Request.Context()
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		s.failLogin(c, "failed to exchange code")
		return
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		s.failLogin(c, "failed to fetch user profile")
		return
	}
	// Without an email there is nothing to upsert against; the visitor
	// stays anonymous.
	if info.Email == "" {
		s.failLogin(c, "provider profile missing email")
		return
	}

	user, err := s.userSvc.UpsertFromAuth(ctx, info.Email, info.Name, info.Picture, info.Sub)
	if err != nil {
		s.failLogin(c, "failed to persist user")
		return
	}

	if err := s.sessionMgr.Issue(c, user.ID); err != nil {
		s.failLogin(c, "failed to establish session")
		return
	}

	c.Redirect(http.StatusFound, s.uiRedirect)
}

func (s *GoogleService) me(c *gin.Context) {
	user, ok := s.sessionMgr.CurrentUser(c)
	if !ok {
		respond.JSON(c, http.StatusOK, gin.H{"authenticated": false, "user": nil})
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"authenticated": true,
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"name":     user.Name,
			"imageUrl": user.ImageURL,
		},
	})
}

func (s *GoogleService) logout(c *gin.Context) {
	s.sessionMgr.Clear(c)
	respond.JSON(c, http.StatusOK, gin.H{"success": true})
}

func (s *GoogleService) failLogin(c *gin.Context, reason string) {
	telemetry.Warn("auth.google.failed", map[string]any{
		"reason":     reason,
		"request_id": c.GetString("requestId"),
	})
	c.Redirect(http.StatusFound, s.uiFailure)
}

type googleUserInfo struct {
	Sub     string `json:"sub"`
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func (s *GoogleService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (googleUserInfo, error) {
	client := s.oauthConfig.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return googleUserInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return googleUserInfo{}, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return googleUserInfo{}, err
	}

	// Some responses use "id" instead of "sub".
	if info.Sub == "" {
		info.Sub = info.ID
	}
	return info, nil
}

type stateStore struct {
	items map[string]time.Time
	mu    sync.Mutex
}

func newStateStore() *stateStore {
	return &stateStore{items: make(map[string]time.Time)}
}

func (s *stateStore) put(state string, exp time.Time) {
	s.mu.Lock()
	s.items[state] = exp
	s.mu.Unlock()
}

func (s *stateStore) consume(state string) bool {
	s.mu.Lock()
	exp, ok := s.items[state]
	if ok {
		delete(s.items, state)
	}
	s.mu.Unlock()
	if !ok {
		return false
	}
	return !time.Now().After(exp)
}
