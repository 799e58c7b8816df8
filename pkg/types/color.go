package types

import "regexp"

// hexColorRE matches #rgb and #rrggbb. This is a shape check for display
// layers; the store itself treats colors as opaque strings.
var hexColorRE = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidHexColor reports whether s looks like a hex color value.
func ValidHexColor(s string) bool {
	return hexColorRE.MatchString(s)
}
