//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"sportshub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2030, 3, 1, 12, 30, 15, 123456789, time.UTC)
	id := uuid.New()

	gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))

	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.True(t, gotAt.Equal(at.Truncate(time.Microsecond)))
}

func TestDecodeAfterCursor_Invalid(t *testing.T) {
	enc := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }
	for name, cursor := range map[string]string{
		"empty":         "",
		"not base64":    "%%%",
		"wrong version": enc("v9:1:" + uuid.NewString()),
		"bad timestamp": enc("r1:abc:" + uuid.NewString()),
		"bad id":        enc("r1:1:nope"),
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-5))
	assert.Equal(t, 7, queries.ValidateLimit(7))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
