package bill

import "strings"

// ValidReceiptName reports whether a candidate receipt file name carries an
// accepted image extension. Only the extension is checked, case-insensitively.
func ValidReceiptName(name string) bool {
	idx := strings.LastIndex(name, ".")
	ext := strings.ToLower(name[idx+1:])
	switch ext {
	case "jpg", "jpeg", "png":
		return idx >= 0
	}
	return false
}

// DisplayFileName derives the display name from a file input's submitted
// value: the last backslash-separated segment. Browsers on Windows submit
// fakepath-style values, which is where the backslash split comes from.
func DisplayFileName(value string) string {
	parts := strings.Split(value, `\`)
	return parts[len(parts)-1]
}
