package service

import "testing"

func TestIdentityUserKey(t *testing.T) {
	cases := []struct {
		name      string
		provider  string
		principal string
		want      string
	}{
		{name: "both present", provider: "aad", principal: "user-1", want: "aaduser-1"},
		{name: "missing provider", provider: "", principal: "user-1", want: ""},
		{name: "missing principal", provider: "aad", principal: "", want: ""},
		{name: "both missing", provider: "", principal: "", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id := NewIdentity("session-1", tc.provider, tc.principal)
			if got := id.UserKey(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestIdentityTrimsWhitespace(t *testing.T) {
	id := NewIdentity("  session-1 ", " aad ", " user-1 ")
	if id.SessionKey != "session-1" {
		t.Fatalf("expected trimmed session key, got %q", id.SessionKey)
	}
	if id.UserKey() != "aaduser-1" {
		t.Fatalf("expected trimmed user key, got %q", id.UserKey())
	}
}

func TestIdentityCartKey(t *testing.T) {
	anonymous := NewIdentity("session-1", "", "")
	if anonymous.Authenticated() {
		t.Fatalf("expected anonymous identity")
	}
	if anonymous.CartKey() != "session-1" {
		t.Fatalf("expected session key, got %q", anonymous.CartKey())
	}

	authenticated := NewIdentity("session-1", "aad", "user-1")
	if !authenticated.Authenticated() {
		t.Fatalf("expected authenticated identity")
	}
	if authenticated.CartKey() != "aaduser-1" {
		t.Fatalf("expected user key to win, got %q", authenticated.CartKey())
	}
}
