package explain

import "strings"

// SanitizePath converts a file path to a safe output filename stem
// (e.g. src/auth/client.py becomes src-auth-client).
func SanitizePath(path string) string {
	name := strings.ReplaceAll(path, "/", "-")
	name = strings.ReplaceAll(name, "\\", "-")
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[:idx]
	}
	return name
}
