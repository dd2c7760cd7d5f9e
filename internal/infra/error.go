package infra

import (
	"log/slog"

	"sportshub/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string
	msg        string
	err        error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies a low-level error. An explicit kind wins; otherwise
// the PostgreSQL SQLSTATE decides and anything unrecognised is a DB failure.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k, constraint := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	logArgs := []any{
		slog.String("kind", string(k)),
	}
	if constraint != "" {
		logArgs = append(logArgs, slog.String("constraint", constraint))
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	if k == KindNotFound {
		slog.Debug("Repository error: "+msg, logArgs...)
	} else {
		slog.Error("Repository error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, Constraint: constraint, msg: msg, err: err}
}

func classify(err error) (RepositoryErrorKind, string) {
	var pgErr *pgconn.PgError
	if !errs.As(err, &pgErr) {
		return KindDBFailure, ""
	}
	switch pgErr.Code {
	case pgErrUniqueViolation:
		return KindDuplicateKey, pgErr.ConstraintName
	case pgErrForeignKeyViolation:
		return KindForeignKeyViolated, pgErr.ConstraintName
	case pgErrExclusionViolation:
		return KindExclusionViolated, pgErr.ConstraintName
	default:
		return KindDBFailure, pgErr.ConstraintName
	}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errs.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ConstraintOf returns the violated constraint name, if any.
func ConstraintOf(err error) string {
	var e RepositoryError
	if errs.As(err, &e) {
		return e.Constraint
	}
	return ""
}

const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
	pgErrExclusionViolation  = "23P01"
)

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindExclusionViolated  RepositoryErrorKind = "EXCLUSION_VIOLATED"
)
