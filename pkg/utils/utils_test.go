package utils

import (
	"os"
	"strings"
	"testing"

	"github.com/andamanescapes/travel-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateBookingReference(t *testing.T) {
	ref := GenerateBookingReference(ActivityBookingPrefix)

	if !strings.HasPrefix(ref, "AND-A-") {
		t.Errorf("unexpected prefix: %s", ref)
	}
	if len(ref) != len("AND-A-")+8 {
		t.Errorf("unexpected length: %s", ref)
	}

	other := GenerateBookingReference(ActivityBookingPrefix)
	if ref == other {
		t.Error("references should be unique")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")

	user := models.User{Email: "traveller@example.com", Role: "user"}
	user.ID = 42

	tokenString, err := GenerateToken(&user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	token, err := ValidateToken(tokenString)
	if err != nil || !token.Valid {
		t.Fatalf("validate token: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected map claims")
	}
	if uint(claims["id"].(float64)) != 42 {
		t.Errorf("unexpected id claim: %v", claims["id"])
	}
	if claims["role"].(string) != "user" {
		t.Errorf("unexpected role claim: %v", claims["role"])
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")

	user := models.User{Email: "traveller@example.com", Role: "user"}
	user.ID = 42

	tokenString, err := GenerateToken(&user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	os.Setenv("JWT_SECRET", "different-secret")
	if token, err := ValidateToken(tokenString); err == nil && token.Valid {
		t.Error("token signed with another secret must not validate")
	}
	os.Setenv("JWT_SECRET", "test-secret")
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Ten Days in the Andamans":  "ten-days-in-the-andamans",
		"  Havelock: A Field Guide": "havelock-a-field-guide",
		"UPPER lower 123":           "upper-lower-123",
	}

	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
