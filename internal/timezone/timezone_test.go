package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("Asia/Tokyo"))
	assert.True(t, IsValid("UTC"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus"))
}

func TestLocation_FallsBackToTokyo(t *testing.T) {
	assert.Equal(t, "Asia/Tokyo", Location("nonsense").String())
	assert.Equal(t, "America/New_York", Location("America/New_York").String())
}

func TestNewClock_PinsLocation(t *testing.T) {
	clock := NewClock("Asia/Tokyo")
	assert.Equal(t, "Asia/Tokyo", clock.Location().String())
	assert.Equal(t, "Asia/Tokyo", clock.Now().Location().String())
}

func TestFixed(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	at := time.Date(2025, 1, 9, 12, 0, 0, 0, loc)

	clock := Fixed(at)
	assert.True(t, clock.Now().Equal(at))
	assert.Equal(t, loc, clock.Location())
}
