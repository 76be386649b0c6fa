package models

import "testing"

func TestUserPasswordRoundTrip(t *testing.T) {
	user := User{Password: "island-hopper"}

	if err := user.HashPassword(); err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if user.PasswordHash == "" {
		t.Fatal("expected a password hash to be set")
	}
	if user.PasswordHash == user.Password {
		t.Fatal("password must not be stored in plain text")
	}

	if err := user.CheckPassword("island-hopper"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := user.CheckPassword("wrong-password"); err == nil {
		t.Error("wrong password accepted")
	}
}

func TestHashPasswordSkipsEmptyPassword(t *testing.T) {
	user := User{}
	if err := user.HashPassword(); err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if user.PasswordHash != "" {
		t.Errorf("expected no hash for empty password, got %q", user.PasswordHash)
	}
}
