package models

import "time"

// Session is the ephemeral identity issued at login. It lives only in the
// session store and is never written to an entity collection.
type Session struct {
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	LoginTime time.Time `json:"loginTime"`
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
