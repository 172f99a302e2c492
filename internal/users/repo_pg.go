package users

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) UpsertByEmail(ctx context.Context, user User) (User, error) {
	const query = `
INSERT INTO users (id, email, name, image_url, google_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())
ON CONFLICT (email) DO UPDATE SET
  name = EXCLUDED.name,
  image_url = EXCLUDED.image_url,
  google_id = EXCLUDED.google_id,
  updated_at = now()
RETURNING id, email, name, image_url, google_id, created_at, updated_at`

	var out User
	var name, imageURL, googleID sql.NullString
	var updatedAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query,
		user.ID,
		user.Email,
		nullableString(user.Name),
		nullableString(user.ImageURL),
		nullableString(user.GoogleID),
	).Scan(
		&out.ID,
		&out.Email,
		&name,
		&imageURL,
		&googleID,
		&out.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return User{}, err
	}
	out.Name = name.String
	out.ImageURL = imageURL.String
	out.GoogleID = googleID.String
	if updatedAt.Valid {
		out.UpdatedAt = updatedAt.Time
	} else {
		out.UpdatedAt = time.Now().UTC()
	}
	return out, nil
}

func (r *PGRepo) GetByID(ctx context.Context, userID string) (User, error) {
	const query = `
SELECT id, email, name, image_url, google_id, created_at, updated_at
FROM users
WHERE id = $1
LIMIT 1`

	var user User
	var name, imageURL, googleID sql.NullString
	var updatedAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.Email,
		&name,
		&imageURL,
		&googleID,
		&user.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	user.Name = name.String
	user.ImageURL = imageURL.String
	user.GoogleID = googleID.String
	if updatedAt.Valid {
		user.UpdatedAt = updatedAt.Time
	}
	return user, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
