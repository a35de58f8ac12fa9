// Package services contains the business logic of the server. The
// credential service owns registration, login, and logout; everything it
// needs (store access, session issuance) is injected.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/noflow/engine/internal/common"
	"github.com/noflow/engine/internal/cryptox"
	"github.com/noflow/engine/internal/dbx"
	"github.com/noflow/engine/internal/logging"
	"github.com/noflow/engine/internal/server/models"
	"github.com/noflow/engine/internal/server/repositories/repomanager"
	"github.com/noflow/engine/internal/server/sessions"
)

// Outcome messages returned to callers on business-rule rejections. Login
// deliberately reports the same message for an unknown username and a wrong
// password, so callers cannot probe which usernames exist.
const (
	MsgUsernameExists     = "Username already exists."
	MsgInvalidCredentials = "Invalid username or password."
)

// AuthService implements account registration, login, and logout on top of a
// user repository and a session issuer.
type AuthService struct {
	db                 *sql.DB
	rm                 repomanager.RepositoryManager
	logger             logging.Logger
	persistentValidity time.Duration
	now                func() time.Time
}

// NewAuthService returns an AuthService. persistentValidity is the lifetime
// of a "remember me" session.
func NewAuthService(db *sql.DB, rm repomanager.RepositoryManager, logger logging.Logger, persistentValidity time.Duration) *AuthService {
	return &AuthService{
		db:                 db,
		rm:                 rm,
		logger:             logger,
		persistentValidity: persistentValidity,
		now:                time.Now,
	}
}

// Register creates an account for the given credentials and, on success,
// signs the new user in with a browser-session (non-persistent) session.
// A taken username yields a failed outcome, not an error; infrastructure
// faults are returned as errors with no outcome.
func (s *AuthService) Register(ctx context.Context, issuer sessions.Issuer, username string, password string) (*models.AuthOutcome, error) {
	hash, salt, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	var created *models.User

	// The existence check and the insert run in one transaction; the unique
	// constraint on username still backstops concurrent registrations.
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.rm.Users(tx)

		_, err := repo.GetByUsername(ctx, username)
		if err == nil {
			return common.ErrAlreadyExists
		}
		if !errors.Is(err, common.ErrNotFound) {
			return err
		}

		created, err = repo.Create(ctx, &models.User{
			Username:     username,
			PasswordHash: hash,
			PasswordSalt: salt,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return models.Failure(MsgUsernameExists), nil
		}
		return nil, err
	}

	if err := issuer.Issue(ctx, sessions.Session{
		SubjectID:   created.ID,
		SubjectName: created.Username,
	}); err != nil {
		return nil, fmt.Errorf("issuing session: %w", err)
	}

	s.logger.Info(ctx, "user registered", "username", created.Username)
	return models.Success(), nil
}

// Login verifies the credentials and, on success, signs the user in. With
// rememberMe the session is persistent and expires after the configured
// validity window; otherwise it lasts for the browser session. Unknown
// usernames and wrong passwords produce the identical failed outcome.
func (s *AuthService) Login(ctx context.Context, issuer sessions.Issuer, username string, password string, rememberMe bool) (*models.AuthOutcome, error) {
	if username == "" || password == "" {
		return models.Failure(MsgInvalidCredentials), nil
	}

	repo := s.rm.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.Failure(MsgInvalidCredentials), nil
		}
		return nil, err
	}

	if !cryptox.VerifyPassword(password, user.PasswordHash, user.PasswordSalt) {
		return models.Failure(MsgInvalidCredentials), nil
	}

	session := sessions.Session{
		SubjectID:   user.ID,
		SubjectName: user.Username,
		Persistent:  rememberMe,
	}
	if rememberMe {
		session.ExpiresAt = s.now().Add(s.persistentValidity)
	}

	if err := issuer.Issue(ctx, session); err != nil {
		return nil, fmt.Errorf("issuing session: %w", err)
	}

	s.logger.Info(ctx, "user logged in", "username", user.Username, "persistent", rememberMe)
	return models.Success(), nil
}

// Logout revokes the current session. Calling it without an active session
// is not an error.
func (s *AuthService) Logout(ctx context.Context, issuer sessions.Issuer) error {
	return issuer.Revoke(ctx)
}
