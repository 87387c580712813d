package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/you/rentalfront/domain"
)

// SessionServiceImpl implements domain.SessionService. It owns the durable
// session record: login is the only way a session appears, logout always
// removes it, profile updates re-persist it.
type SessionServiceImpl struct {
	store      domain.SessionStore
	authClient domain.AuthClient
	defaultTTL time.Duration
}

// NewSessionService creates a new session service.
func NewSessionService(store domain.SessionStore, authClient domain.AuthClient, defaultTTL time.Duration) domain.SessionService {
	return &SessionServiceImpl{
		store:      store,
		authClient: authClient,
		defaultTTL: defaultTTL,
	}
}

// Login implements domain.SessionService. The session is persisted only
// after the backend accepted the credentials, so the token and the user
// record are never half-set.
func (s *SessionServiceImpl) Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	result, err := s.authClient.Login(ctx, creds)
	if err != nil {
		logAudit(domain.UserLoginFailureEvent, "", 0, err)
		return nil, err
	}

	now := time.Now()
	session := &domain.Session{
		ID:        fmt.Sprintf("sess_%d_%d", result.User.ID, now.UnixNano()),
		Token:     result.AccessToken,
		User:      result.User,
		CreatedAt: now,
		ExpiresAt: tokenExpiry(result.AccessToken, now.Add(s.defaultTTL)),
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	logAudit(domain.UserLoginEvent, session.ID, result.User.ID, nil)
	return session, nil
}

// Logout implements domain.SessionService. The backend notification is
// best-effort; the local session is cleared regardless of its outcome.
func (s *SessionServiceImpl) Logout(ctx context.Context, sessionID string) error {
	if session, err := s.store.Load(ctx, sessionID); err == nil {
		if err := s.authClient.Logout(ctx, session.Token); err != nil {
			log.Printf("LOGOUT_NOTIFY_FAILED: session_id=%s error=%v", sessionID, err)
		}
	}

	if err := s.store.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	logAudit(domain.UserLogoutEvent, sessionID, 0, nil)
	return nil
}

// Current implements domain.SessionService.
func (s *SessionServiceImpl) Current(ctx context.Context, sessionID string) (*domain.Session, error) {
	return s.store.Load(ctx, sessionID)
}

// UpdateUserInfo implements domain.SessionService. The patch is
// shallow-merged into the stored user and the session is re-persisted.
func (s *SessionServiceImpl) UpdateUserInfo(ctx context.Context, sessionID string, patch domain.UserPatch) (*domain.Session, error) {
	session, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.User = patch.Merge(session.User)
	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	logAudit(domain.ProfileUpdatedEvent, sessionID, session.User.ID, nil)
	return session, nil
}

// tokenExpiry bounds the session cache by the backend token's exp claim
// when one is readable. The token is backend-signed and backend-verified;
// the unverified parse here only shortens our own cache TTL.
func tokenExpiry(token string, fallback time.Time) time.Time {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return fallback
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return fallback
	}
	if exp.Time.Before(fallback) && exp.Time.After(time.Now()) {
		return exp.Time
	}
	return fallback
}

var _ domain.SessionService = (*SessionServiceImpl)(nil)
