package imagegen

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var styles = []string{
	"Minimalist",
	"Futuristic",
	"Vintage",
	"Streetwear",
	"Luxury",
	"Bohemian",
	"Gothic",
	"Avant-garde",
}

// Styles returns the selectable design styles.
func Styles() []string {
	out := make([]string, len(styles))
	copy(out, styles)
	return out
}

// ParseStyle matches a style name case-insensitively. Blank selects the first style.
func ParseStyle(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return styles[0], nil
	}
	for _, style := range styles {
		if strings.EqualFold(style, s) {
			return style, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownStyle, "%q", s)
}

// BuildPrompt wraps the shopper's idea in the studio's prompt template.
func BuildPrompt(prompt, style string) string {
	return fmt.Sprintf("A luxury fashion piece: %s, in a %s style.", strings.TrimSpace(prompt), style)
}

// IsPlaceholderKey reports whether key is blank or one of the template values
// shipped in sample env files.
func IsPlaceholderKey(key string) bool {
	switch strings.TrimSpace(key) {
	case "", "YOUR_API_KEY", "API_KEY_ADDED":
		return true
	}
	return false
}
