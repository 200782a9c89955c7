package stringutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLowerUpper(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lower_all_upper", "NASA", "nasa"},
		{"lower_noop", "cats", "cats"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Lower(tt.in))
		})
	}
}

func TestIsAllUpper(t *testing.T) {
	require.True(t, IsAllUpper("NASA"))
	require.False(t, IsAllUpper("Nasa"))
	require.False(t, IsAllUpper("123"))
}

func TestIsLettersAndApostrophes(t *testing.T) {
	require.True(t, IsLettersAndApostrophes("don't"))
	require.True(t, IsLettersAndApostrophes("cats"))
	require.False(t, IsLettersAndApostrophes("cat2"))
	require.False(t, IsLettersAndApostrophes(""))
}
