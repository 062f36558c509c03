package dedup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldProcess(t *testing.T) {
	d := New(time.Minute, 10)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return clock }

	require.True(t, d.ShouldProcess("a"))
	require.False(t, d.ShouldProcess("a"))
	require.True(t, d.ShouldProcess("b"))
	require.True(t, d.ShouldProcess(""))
	require.True(t, d.ShouldProcess(""))

	clock = clock.Add(2 * time.Minute)
	require.True(t, d.ShouldProcess("a"))
}

func TestEvictionKeepsBound(t *testing.T) {
	d := New(time.Minute, 3)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return clock }

	for _, id := range []string{"a", "b", "c", "d"} {
		clock = clock.Add(time.Second)
		require.True(t, d.ShouldProcess(id))
	}
	assert.Equal(t, 3, d.Len())
	// "a" was closest to expiry and got evicted.
	assert.True(t, d.ShouldProcess("a"))
	assert.False(t, d.ShouldProcess("d"))
}

func TestDefaults(t *testing.T) {
	d := New(0, 0)
	assert.Equal(t, DefaultTTL, d.ttl)
	assert.Equal(t, DefaultMaxEntries, d.max)
}

func TestKey(t *testing.T) {
	k := Key("bob/1/uplink", []byte("536440"))
	assert.Len(t, k, 64)
	assert.Equal(t, k, Key("bob/1/uplink", []byte("536440")))
	assert.NotEqual(t, k, Key("bob/2/uplink", []byte("536440")))
}
