package figyaml

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/okfig/okfig/figscene"
)

func isHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// validateColor accepts the SVG named colors, #rgb and #rrggbb hex
// forms, and the two non-paint keywords.
func validateColor(s string) error {
	if s == "none" || s == "transparent" {
		return nil
	}
	if isHexColor(s) {
		return nil
	}
	if _, ok := colornames.Map[strings.ToLower(s)]; ok {
		return nil
	}
	return &figscene.ConfigurationError{Reason: fmt.Sprintf("unknown color %q", s)}
}
