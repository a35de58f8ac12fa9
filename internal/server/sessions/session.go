// Package sessions implements signed cookie sessions: claim construction,
// issuance, and validation. The credential service only sees the Issuer
// contract; the cookie and JWT mechanics live here.
package sessions

import (
	"context"
	"time"
)

// Session is the authenticated context established after a successful
// registration or login. A zero ExpiresAt means a browser-session cookie
// with no fixed expiry.
type Session struct {
	SubjectID   string
	SubjectName string
	Persistent  bool
	ExpiresAt   time.Time
}

// Issuer establishes and tears down sessions. It is passed explicitly into
// each credential-service call instead of living behind an ambient
// request accessor, so the service stays testable with fakes.
//
// Once Issue returns, subsequent requests presenting the resulting credential
// must resolve back to the same SubjectID/SubjectName pair. Revoke is
// idempotent: revoking when no session is active must not fail.
type Issuer interface {
	Issue(ctx context.Context, s Session) error
	Revoke(ctx context.Context) error
}
