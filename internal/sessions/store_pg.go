package sessions

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type PGStore struct {
	DB *sql.DB
}

func (s *PGStore) Create(ctx context.Context, userID string, ttl time.Duration) (Session, error) {
	token, err := NewToken()
	if err != nil {
		return Session{}, err
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := time.Now().UTC()
	sess := Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	const query = `
INSERT INTO sessions (token, user_id, created_at, expires_at)
VALUES ($1, $2, $3, $4)`
	if _, err := s.DB.ExecContext(ctx, query, sess.Token, sess.UserID, sess.CreatedAt, sess.ExpiresAt); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *PGStore) Get(ctx context.Context, token string) (Session, error) {
	const query = `
SELECT token, user_id, created_at, expires_at
FROM sessions
WHERE token = $1
LIMIT 1`
	var sess Session
	err := s.DB.QueryRowContext(ctx, query, token).Scan(
		&sess.Token,
		&sess.UserID,
		&sess.CreatedAt,
		&sess.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}
	if sess.Expired(time.Now().UTC()) {
		_ = s.Delete(ctx, token)
		return Session{}, ErrNotFound
	}
	return sess, nil
}

func (s *PGStore) Delete(ctx context.Context, token string) error {
	const query = `DELETE FROM sessions WHERE token = $1`
	_, err := s.DB.ExecContext(ctx, query, token)
	return err
}
