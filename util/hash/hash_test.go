package hash

import "testing"

func TestHashAndCheck(t *testing.T) {
	h, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h == "password123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !Check(h, "password123") {
		t.Fatal("correct password should verify")
	}
	if Check(h, "password124") {
		t.Fatal("wrong password should not verify")
	}
}

func TestHashesDiffer(t *testing.T) {
	h1, err := HashPassword("password123")
	if err != nil {
		t.Fatal(err)
	}
	h2, err := HashPassword("password123")
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h2 {
		t.Fatal("bcrypt hashes should be salted")
	}
}
