// Package session holds the authenticated identity of the running client.
// There is exactly one live Session per client; it is owned by the engine
// and read by the API client on every authenticated call.
package session

// Session stores the backend auth token, or nothing when logged out.
// It cannot fail; callers decide when to set or clear it.
type Session struct {
	token string
}

// New returns an unauthenticated session.
func New() *Session {
	return &Session{}
}

// Login records the token obtained from a successful authenticate call.
func (s *Session) Login(token string) {
	s.token = token
}

// Logout clears the token.
func (s *Session) Logout() {
	s.token = ""
}

// Token returns the current token, empty when unauthenticated.
func (s *Session) Token() string {
	return s.token
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	return s.token != ""
}
