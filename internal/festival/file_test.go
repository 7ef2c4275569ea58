package festival

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCalendar = `
[[festival]]
name = "Onam"
description = "Harvest festival of Kerala"
month = 8
day = 29
duration = 10

[[festival]]
name = "Pongal"
description = "Tamil harvest festival"
month = 1
day = 15
type = "minor"
`

func TestParse(t *testing.T) {
	cal, err := Parse([]byte(sampleCalendar))
	require.NoError(t, err)
	require.Len(t, cal.Rules, 2)

	assert.Equal(t, Rule{
		Name: "Onam", Description: "Harvest festival of Kerala",
		Month: 8, Day: 29, Type: Major, Duration: 10,
	}, cal.Rules[0])
	assert.Equal(t, Minor, cal.Rules[1].Type)
	assert.Equal(t, 1, cal.Rules[1].Duration)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("[[festival]\nname = "))
	assert.Error(t, err)

	_, err = Parse([]byte("[[festival]]\nname = \"Bad\"\nmonth = 2\nday = 30\n"))
	assert.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	require.NoError(t, err)

	cal, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), cal)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "festivals.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCalendar), 0o644))

	cal, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, cal.Rules, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestStore_Watch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "festivals.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCalendar), 0o644))

	store := NewStore(nil)
	require.Len(t, store.Calendar().Rules, 17)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- store.Watch(ctx, path, zerolog.New(zerolog.NewTestWriter(t))) }()

	// Give the watcher a moment to register before writing
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(sampleCalendar), 0o644))

	assert.Eventually(t, func() bool {
		return len(store.Calendar().Rules) == 2
	}, 3*time.Second, 20*time.Millisecond)

	// A broken file keeps the previous calendar
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o644))
	time.Sleep(400 * time.Millisecond)
	assert.Len(t, store.Calendar().Rules, 2)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
