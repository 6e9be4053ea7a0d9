package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePositionPing(t *testing.T) {
	payload := []byte(`{"player_id":7,"latitude":40.5,"longitude":-3.7,"is_live":true,"edited_at":1700000000}`)

	ping, err := decodePositionPing(payload)
	require.NoError(t, err)
	assert.Equal(t, int64(7), ping.PlayerID)
	assert.Equal(t, 40.5, ping.Latitude)
	assert.True(t, ping.IsLive)
}

func TestDecodePositionPingRejectsGarbage(t *testing.T) {
	_, err := decodePositionPing([]byte("{not json"))
	assert.ErrorIs(t, err, ErrMalformedEvent)
}
