package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	cursor := Cursor{
		Date:      time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC),
		ID:        "0b9c6e8e-3c1e-4a43-9a55-5b0e0f4f7f11",
	}

	token := EncodeToken(cursor)
	assert.NotEmpty(t, token, "Token should not be empty")

	decoded, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, cursor, decoded)

	// Zero time values
	zero := Cursor{ID: "x"}
	decodedZero, err := DecodeToken(EncodeToken(zero))
	require.NoError(t, err)
	assert.True(t, decodedZero.Date.IsZero())
	assert.True(t, decodedZero.CreatedAt.IsZero())

	// Non-UTC times keep their instant
	ist := time.FixedZone("IST", 5*3600+1800)
	now := time.Now().In(ist)
	decodedNow, err := DecodeToken(EncodeToken(Cursor{Date: now, CreatedAt: now, ID: "y"}))
	require.NoError(t, err)
	assert.True(t, now.Equal(decodedNow.Date))
	assert.True(t, now.Equal(decodedNow.CreatedAt))
}

func TestDecodeTokenError(t *testing.T) {
	_, err := DecodeToken("this is not base64!")
	assert.ErrorContains(t, err, "base64 decode")

	_, err = DecodeToken(base64.URLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z")))
	assert.ErrorContains(t, err, "split")

	_, err = DecodeToken(base64.URLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z|2023-05-15T00:00:00Z|")))
	assert.ErrorContains(t, err, "split", "empty id is rejected")

	_, err = DecodeToken(base64.URLEncoding.EncodeToString([]byte("notadate|2023-05-15T14:30:45Z|id")))
	assert.ErrorContains(t, err, "date parse")

	_, err = DecodeToken(base64.URLEncoding.EncodeToString([]byte("2023-05-15T14:30:45Z|nope|id")))
	assert.ErrorContains(t, err, "created_at parse")
}
