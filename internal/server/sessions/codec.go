package sessions

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/noflow/engine/internal/common"
)

// Claims carries the session subject inside the signed cookie value. The
// registered Subject claim holds the user id; Name and Persistent are
// custom claims.
type Claims struct {
	jwt.RegisteredClaims
	Name       string `json:"name"`
	Persistent bool   `json:"persistent"`
}

// browserSessionMaxAge bounds how long a token without a fixed expiry stays
// valid server-side. Browsers drop the cookie when the session ends, but a
// leaked token would otherwise validate indefinitely.
const browserSessionMaxAge = 24 * time.Hour

// Codec signs and validates session tokens (HS256) and knows the cookie
// attributes shared by every issued session.
type Codec struct {
	secret     []byte
	cookieName string
	secure     bool
	now        func() time.Time
}

func NewCodec(secret []byte, cookieName string, secure bool) *Codec {
	return &Codec{
		secret:     secret,
		cookieName: cookieName,
		secure:     secure,
		now:        time.Now,
	}
}

// CookieName returns the name under which session tokens travel.
func (c *Codec) CookieName() string {
	return c.cookieName
}

// Encode builds and signs the token for a session. An expiry claim is set
// only when the session carries a fixed expiry.
func (c *Codec) Encode(s Session) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  s.SubjectID,
			IssuedAt: jwt.NewNumericDate(c.now()),
		},
		Name:       s.SubjectName,
		Persistent: s.Persistent,
	}
	if !s.ExpiresAt.IsZero() {
		claims.ExpiresAt = jwt.NewNumericDate(s.ExpiresAt)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Decode validates a token string and reconstructs the session it encodes.
// Tampered, expired, or malformed tokens yield common.ErrInvalidSession, as
// do tokens without a fixed expiry that are older than browserSessionMaxAge.
func (c *Codec) Decode(tokenString string) (Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(c.now))
	if err != nil {
		return Session{}, fmt.Errorf("%w: %s", common.ErrInvalidSession, err)
	}
	if !token.Valid {
		return Session{}, common.ErrInvalidSession
	}
	if claims.ExpiresAt == nil {
		if claims.IssuedAt == nil || c.now().Sub(claims.IssuedAt.Time) > browserSessionMaxAge {
			return Session{}, common.ErrInvalidSession
		}
	}

	s := Session{
		SubjectID:   claims.Subject,
		SubjectName: claims.Name,
		Persistent:  claims.Persistent,
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}
