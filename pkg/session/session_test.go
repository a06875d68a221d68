package session

import "testing"

func TestSessionLifecycle(t *testing.T) {
	s := New()
	if s.Authenticated() {
		t.Fatal("new session should not be authenticated")
	}
	if s.Token() != "" {
		t.Fatalf("expected empty token, got %q", s.Token())
	}

	s.Login("tok1")
	if !s.Authenticated() {
		t.Fatal("expected authenticated after login")
	}
	if s.Token() != "tok1" {
		t.Fatalf("expected token tok1, got %q", s.Token())
	}

	s.Login("tok2")
	if s.Token() != "tok2" {
		t.Fatalf("login should replace token, got %q", s.Token())
	}

	s.Logout()
	if s.Authenticated() {
		t.Fatal("expected unauthenticated after logout")
	}
}
