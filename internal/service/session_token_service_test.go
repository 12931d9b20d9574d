package service

import (
	"errors"
	"testing"
	"time"
)

func TestSessionTokenIssueAndParse(t *testing.T) {
	svc := NewSessionTokenService("secret", time.Hour)

	token, sessionID, err := svc.Issue()
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" || sessionID == "" {
		t.Fatalf("expected non-empty token and session id")
	}

	claims, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.SessionID != sessionID {
		t.Fatalf("expected session id %q, got %q", sessionID, claims.SessionID)
	}
}

func TestSessionTokenUniquePerIssue(t *testing.T) {
	svc := NewSessionTokenService("secret", time.Hour)

	_, first, err := svc.Issue()
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	_, second, err := svc.Issue()
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct session ids")
	}
}

func TestSessionTokenParseRejectsGarbage(t *testing.T) {
	svc := NewSessionTokenService("secret", time.Hour)

	if _, err := svc.Parse("not-a-jwt"); !errors.Is(err, ErrSessionTokenInvalid) {
		t.Fatalf("expected ErrSessionTokenInvalid, got %v", err)
	}
	if _, err := svc.Parse(""); !errors.Is(err, ErrSessionTokenInvalid) {
		t.Fatalf("expected ErrSessionTokenInvalid for empty token, got %v", err)
	}
}

func TestSessionTokenParseRejectsWrongSecret(t *testing.T) {
	issuer := NewSessionTokenService("secret-a", time.Hour)
	verifier := NewSessionTokenService("secret-b", time.Hour)

	token, _, err := issuer.Issue()
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Parse(token); !errors.Is(err, ErrSessionTokenInvalid) {
		t.Fatalf("expected ErrSessionTokenInvalid, got %v", err)
	}
}

func TestSessionTokenExpired(t *testing.T) {
	svc := NewSessionTokenService("secret", time.Hour)
	// TTL negativo fuerza ExpiresAt en el pasado sin dormir en el test.
	svc.ttl = -time.Minute

	token, _, err := svc.Issue()
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.Parse(token); !errors.Is(err, ErrSessionTokenExpired) {
		t.Fatalf("expected ErrSessionTokenExpired, got %v", err)
	}
}

func TestSessionTokenEmptySecret(t *testing.T) {
	svc := NewSessionTokenService("", time.Hour)

	if _, _, err := svc.Issue(); !errors.Is(err, ErrSessionTokenInvalid) {
		t.Fatalf("expected ErrSessionTokenInvalid without secret, got %v", err)
	}
}
