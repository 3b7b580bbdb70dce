package jwt

import "testing"

func TestIssueAndParse(t *testing.T) {
	tok, err := Issue("secret", 42, 1)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := ParseAuth("Bearer "+tok, "secret")
	if err != nil {
		t.Fatalf("ParseAuth error: %v", err)
	}
	sub, ok := claims["sub"].(float64)
	if !ok || int64(sub) != 42 {
		t.Fatalf("got sub %v; want 42", claims["sub"])
	}
}

func TestParse_NoBearerPrefix(t *testing.T) {
	tok, err := Issue("secret", 7, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseAuth(tok, "secret"); err != nil {
		t.Fatalf("raw token should parse: %v", err)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := Issue("secret", 42, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseAuth("Bearer "+tok, "other"); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestParse_MissingHeader(t *testing.T) {
	if _, err := ParseAuth("", "secret"); err == nil {
		t.Fatal("expected error for empty header")
	}
	if _, err := ParseAuth("Bearer ", "secret"); err == nil {
		t.Fatal("expected error for empty token")
	}
}
