package sessions

import (
	"context"
	"net/http"
)

// CookieIssuer writes the signed session cookie for a single request. It is
// constructed per request around the ResponseWriter and handed to the
// credential service explicitly.
type CookieIssuer struct {
	w     http.ResponseWriter
	codec *Codec
}

func NewCookieIssuer(w http.ResponseWriter, codec *Codec) *CookieIssuer {
	return &CookieIssuer{w: w, codec: codec}
}

// Issue signs the session claims and sets the cookie. Persistent sessions
// get an absolute expiry; otherwise the cookie lives for the browser session.
func (i *CookieIssuer) Issue(_ context.Context, s Session) error {
	token, err := i.codec.Encode(s)
	if err != nil {
		return err
	}

	cookie := &http.Cookie{
		Name:     i.codec.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   i.codec.secure,
	}
	if s.Persistent && !s.ExpiresAt.IsZero() {
		cookie.Expires = s.ExpiresAt
		cookie.MaxAge = int(s.ExpiresAt.Sub(i.codec.now()).Seconds())
	}

	http.SetCookie(i.w, cookie)
	return nil
}

// Revoke expires the session cookie. Revoking with no active session writes
// the same expired cookie and is a no-op for the client.
func (i *CookieIssuer) Revoke(_ context.Context) error {
	http.SetCookie(i.w, &http.Cookie{
		Name:     i.codec.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   i.codec.secure,
	})
	return nil
}
