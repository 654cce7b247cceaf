package middleware

import "testing"

func TestBearerTokenFromHeader(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc123", "abc123", true},
		{"bearer abc123", "abc123", true},
		{"Bearer  abc123 ", "abc123", true},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"Basic abc123", "", false},
		{"", "", false},
	}

	for _, c := range cases {
		token, ok := BearerTokenFromHeader(c.header)
		if ok != c.ok || token != c.token {
			t.Fatalf("BearerTokenFromHeader(%q) = (%q, %v), want (%q, %v)", c.header, token, ok, c.token, c.ok)
		}
	}
}
