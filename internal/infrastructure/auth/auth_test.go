package auth

import (
	"testing"
	"time"

	"coletaverde/internal/domain/entities"

	"golang.org/x/crypto/bcrypt"
)

func TestJWTIssuer(t *testing.T) {
	issuer := NewJWTIssuer("secret", 1)

	token, err := issuer.Issue(entities.User{ID: 42, Role: entities.RoleEmployee})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 || claims.Role != entities.RoleEmployee {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	t.Run("wrong secret", func(t *testing.T) {
		if _, err := NewJWTIssuer("other", 1).Parse(token); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		old := NewJWTIssuer("secret", 1)
		old.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		expired, err := old.Issue(entities.User{ID: 42, Role: entities.RoleUser})
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		if _, err := issuer.Parse(expired); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := issuer.Parse("not-a-token"); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	hash, err := h.Hash("supersecret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "supersecret" {
		t.Fatalf("hash must not be the plain password")
	}
	if err := h.Compare(hash, "supersecret"); err != nil {
		t.Fatalf("compare: %v", err)
	}
	if err := h.Compare(hash, "wrong"); err == nil {
		t.Fatalf("expected mismatch")
	}
	if NewBcryptHasher(100).cost != bcrypt.DefaultCost {
		t.Fatalf("out of range cost should fall back to default")
	}
}
