package detector

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestDetect(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name       string
		inputFile  string
		wantSystem System
	}{
		{
			name:       "detect from .nds extension",
			inputFile:  "game.nds",
			wantSystem: NDS,
		},
		{
			name:       "detect from upper case extension",
			inputFile:  "/roms/GAME.NDS",
			wantSystem: NDS,
		},
		{
			name:       "detect from .srl extension",
			inputFile:  "game.srl",
			wantSystem: NDS,
		},
		{
			name:       "detect from .dsi extension",
			inputFile:  "game.dsi",
			wantSystem: DSi,
		},
		{
			name:       "unknown extension",
			inputFile:  "game.bin",
			wantSystem: Unknown,
		},
		{
			name:       "no extension",
			inputFile:  "game",
			wantSystem: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSystem, d.Detect(tt.inputFile))
		})
	}
}

func TestSystemString(t *testing.T) {
	assert.Equal(t, "nds", NDS.String())
	assert.Equal(t, "unknown", Unknown.String())
}
