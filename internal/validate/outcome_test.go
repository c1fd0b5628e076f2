package validate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"0", LevelParseOnly, false},
		{"1", LevelLegacy, false},
		{"2", LevelFull, false},
		{"3", 0, true},
		{"-1", 0, true},
		{"two", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidLevel)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLevelSurfaces(t *testing.T) {
	require.False(t, LevelParseOnly.Surfaces())
	require.True(t, LevelLegacy.Surfaces())
	require.True(t, LevelFull.Surfaces())
}
