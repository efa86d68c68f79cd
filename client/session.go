package client

import "github.com/hemadri138/veritas-project/internal/model"

// Session holds the bearer token returned by Register or Login.
// The zero value and nil are both logged out.
type Session struct {
	Token string
	User  model.User
}

func (s *Session) Valid() bool {
	return s != nil && s.Token != ""
}

// Clear logs the session out.
func (s *Session) Clear() {
	if s == nil {
		return
	}
	s.Token = ""
	s.User = model.User{}
}
