package imagegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	assert.Equal(t,
		"A luxury fashion piece: velvet cape with brass buttons, in a Gothic style.",
		BuildPrompt("  velvet cape with brass buttons ", "Gothic"))
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "Minimalist"},
		{"gothic", "Gothic"},
		{" AVANT-GARDE ", "Avant-garde"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStyle(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseStyle("baroque")
	assert.ErrorIs(t, err, ErrUnknownStyle)
	assert.Len(t, Styles(), 8)
}

func TestIsPlaceholderKey(t *testing.T) {
	for _, key := range []string{"", "  ", "YOUR_API_KEY", "API_KEY_ADDED"} {
		assert.True(t, IsPlaceholderKey(key), key)
	}
	assert.False(t, IsPlaceholderKey("sk-live-123"))
}

func TestMissingAPIKeyIsExternalServiceError(t *testing.T) {
	assert.ErrorIs(t, ErrMissingAPIKey, ErrExternalService)
}
