package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/argo-acoustics/internal/domain"
)

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 30, 45, 0, time.UTC)
	event := domain.ProfileEvent{
		ID:         "argo-ba6a61e7ef9c34ab",
		Platform:   "6902746",
		Cycle:      42,
		Geo:        domain.Geo{Lat: 25, Lon: -60},
		ObservedAt: time.Date(2026, 8, 14, 6, 0, 0, 0, time.UTC),
		Levels: []domain.Level{
			{Pressure: 5, Depth: 5, Temperature: 18.5, Salinity: 36.1, SoundSpeed: 1518.67},
		},
		Summary: domain.Summary{
			Levels:         1,
			MinSoundSpeed:  1518.67,
			MaxSoundSpeed:  1518.67,
			MeanSoundSpeed: 1518.67,
		},
		Source:      "erddap",
		ProcessedAt: now,
	}

	msg, err := serializeToMessage(event)
	require.NoError(t, err)

	assert.Equal(t, []byte("argo-ba6a61e7ef9c34ab"), msg.Key)
	assert.Contains(t, string(msg.Value), `"platform":"6902746"`)
	assert.Contains(t, string(msg.Value), `"cycle":42`)
	assert.Contains(t, string(msg.Value), `"sound_speed_ms":1518.67`)
	assert.Contains(t, string(msg.Value), `"observed_at":"2026-08-14T06:00:00Z"`)

	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "platform", msg.Headers[0].Key)
	assert.Equal(t, []byte("6902746"), msg.Headers[0].Value)
	assert.Equal(t, "processed_at", msg.Headers[1].Key)
	assert.Equal(t, []byte("2026-08-20T12:30:45Z"), msg.Headers[1].Value)
}

func TestSerializeToMessage_DeterministicKey(t *testing.T) {
	event := domain.ProfileEvent{ID: "argo-ba6a61e7ef9c34ab", Platform: "6902746"}

	msg1, err := serializeToMessage(event)
	require.NoError(t, err)
	msg2, err := serializeToMessage(event)
	require.NoError(t, err)

	assert.Equal(t, msg1.Key, msg2.Key)
}
