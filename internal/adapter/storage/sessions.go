package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.SessionStorage = SessionsRepository{}

type SessionsRepository struct {
	sqldb sqldb
}

func NewSessionsRepository(sqldb sqldb) SessionsRepository {
	return SessionsRepository{sqldb}
}

func (r SessionsRepository) StoreSession(
	ctx context.Context, sess domain.Session,
) error {
	const op = "SessionsRepository.StoreSession"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO sessions (user_id, id_token, email)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			id_token = EXCLUDED.id_token,
			email = EXCLUDED.email,
			created_at = now();
	`

	_, err := r.sqldb.ExecContext(
		ctx, query, sess.UserID, sess.IDToken, sess.Email,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to exec: %w", op, err)
	}
	return nil
}

func (r SessionsRepository) ReadSession(
	ctx context.Context, userID string,
) (domain.Session, error) {
	const op = "SessionsRepository.ReadSession"

	if err := ctx.Err(); err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT user_id, id_token, email FROM sessions
		WHERE user_id = $1;
	`

	var sess domain.Session
	err := r.sqldb.QueryRowContext(ctx, query, userID).Scan(
		&sess.UserID, &sess.IDToken, &sess.Email,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Session{}, fmt.Errorf(
				"%s: %w", op, domain.ErrNotFound,
			)
		}
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	return sess, nil
}
