package main

import (
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestPlaythroughFilename(t *testing.T) {
	t.Chdir(t.TempDir())

	row := dbRow{
		startMoment:       time.Date(2026, 10, 19, 15, 30, 7, 0, time.UTC),
		user:              "vali",
		simulationVersion: 1,
		inputVersion:      2,
	}
	name := PlaythroughFilename(row)
	assert.Equal(t, filepath.Join("vali", "20261019-153007.minipong-1-2"), name)

	// The user's folder is created so the file can be written right away.
	info, err := os.Stat("vali")
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}
