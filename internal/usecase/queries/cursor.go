package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"sportshub/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
	cursorVersion    = "r1"
)

// Cursor is the opaque keyset position of a reservation list page.
type Cursor struct {
	After string `json:"after,omitempty"`
}

// EncodeAfterCursor keeps microsecond precision to match PostgreSQL timestamps.
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	raw := cursorVersion + ":" + strconv.FormatInt(t.UnixMicro(), 10) + ":" + id.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	if cursor == "" {
		return time.Time{}, uuid.Nil, errs.New("cursor is empty")
	}
	decoded, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "cursor is not base64url")
	}

	parts := strings.SplitN(string(decoded), ":", 3)
	if len(parts) != 3 || parts[0] != cursorVersion {
		return time.Time{}, uuid.Nil, errs.New("unsupported cursor format")
	}
	micros, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "invalid cursor timestamp")
	}
	id, err := uuid.Parse(parts[2])
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "invalid cursor id")
	}
	return time.UnixMicro(micros).UTC(), id, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return min(limit, MaxListLimit)
}
