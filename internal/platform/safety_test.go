package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDataDir(t *testing.T) {
	inTemp := t.TempDir()
	devRoot := filepath.Join(os.TempDir(), DevDirName)

	tests := []struct {
		name      string
		userPath  string
		forceTemp bool
		expected  string
	}{
		{"Normal Mode", "./data", false, "./data"},
		{"Normal Mode Empty", "", false, "."},
		{"Dev Mode Relative", "./data", true, filepath.Join(devRoot, "data")},
		{"Dev Mode Empty", "", true, filepath.Join(devRoot, "default")},
		{"Dev Mode Dot", ".", true, filepath.Join(devRoot, "default")},
		{"Dev Mode Already In Temp", inTemp, true, filepath.Clean(inTemp)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveDataDir(tt.userPath, tt.forceTemp))
		})
	}
}

func TestIsDevRun(t *testing.T) {
	// go test binaries always qualify.
	assert.True(t, IsDevRun())
}
