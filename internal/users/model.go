package users

import "time"

// User is an account created on first OAuth login and refreshed on every
// subsequent login. Never explicitly deleted by this system.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"imageUrl"`
	GoogleID  string    `json:"googleId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
