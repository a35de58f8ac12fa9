package sessions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestCookieIssuer_Issue_BrowserSession(t *testing.T) {
	t.Parallel()

	codec := NewCodec([]byte("secret"), "noflow_session", false)
	rec := httptest.NewRecorder()

	err := NewCookieIssuer(rec, codec).Issue(context.Background(), Session{SubjectID: "u1", SubjectName: "alice"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	c := sessionCookie(t, rec, "noflow_session")
	if c.MaxAge != 0 || !c.Expires.IsZero() {
		t.Fatalf("browser-session cookie must not carry an expiry: %+v", c)
	}
	if !c.HttpOnly {
		t.Fatalf("cookie must be HttpOnly")
	}

	got, err := codec.Decode(c.Value)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if got.SubjectID != "u1" || got.SubjectName != "alice" {
		t.Fatalf("subject mismatch: %+v", got)
	}
}

func TestCookieIssuer_Issue_PersistentSetsExpiry(t *testing.T) {
	t.Parallel()

	codec := NewCodec([]byte("secret"), "noflow_session", false)
	now := time.Now()
	codec.now = func() time.Time { return now }
	rec := httptest.NewRecorder()

	expiry := now.Add(30 * 24 * time.Hour)
	err := NewCookieIssuer(rec, codec).Issue(context.Background(), Session{
		SubjectID:   "u1",
		SubjectName: "alice",
		Persistent:  true,
		ExpiresAt:   expiry,
	})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	c := sessionCookie(t, rec, "noflow_session")
	if c.MaxAge != int(30*24*time.Hour/time.Second) {
		t.Fatalf("unexpected MaxAge: %d", c.MaxAge)
	}
	if c.Expires.IsZero() {
		t.Fatalf("persistent cookie must carry Expires")
	}
}

func TestCookieIssuer_Revoke_Idempotent(t *testing.T) {
	t.Parallel()

	codec := NewCodec([]byte("secret"), "noflow_session", false)
	rec := httptest.NewRecorder()
	issuer := NewCookieIssuer(rec, codec)

	// no session was ever issued; revoking must still succeed
	if err := issuer.Revoke(context.Background()); err != nil {
		t.Fatalf("Revoke error: %v", err)
	}
	if err := issuer.Revoke(context.Background()); err != nil {
		t.Fatalf("second Revoke error: %v", err)
	}

	c := sessionCookie(t, rec, "noflow_session")
	if c.MaxAge >= 0 || c.Value != "" {
		t.Fatalf("revoked cookie must be cleared: %+v", c)
	}
}
