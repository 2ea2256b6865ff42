package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Jayzhong/insta-backend/internal/domain"
)

const uniqueViolation = "23505"

// translateUnique maps a unique-constraint violation to the domain error the
// application-level pre-check would have raised. The constraints are the
// authoritative guard against concurrent writers racing past the pre-checks.
func translateUnique(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}
	switch pgErr.ConstraintName {
	case "users_username_key":
		return domain.ErrUsernameTaken
	case "users_email_key":
		return domain.ErrEmailTaken
	case "follows_pkey":
		return domain.ErrAlreadyFollowing
	}
	return err
}
