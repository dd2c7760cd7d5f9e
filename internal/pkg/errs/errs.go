package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// WithReason marks err with kind and attaches a user-displayable reason.
func WithReason(kind error, reason string) error {
	return cr.WithHint(cr.Mark(cr.New(reason), kind), reason)
}

// Reason returns the first user-displayable reason carried by err, if any.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	hints := cr.GetAllHints(err)
	if len(hints) == 0 {
		return ""
	}
	return hints[0]
}

func Is(err, target error) bool {
	return cr.Is(err, target)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}

func As(err error, target any) bool {
	return cr.As(err, target)
}
