package zone

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SystemZone detects the process's local timezone by consulting, in
// order: the TZ environment variable, /etc/timezone, and the zoneinfo
// name embedded in the /etc/localtime symlink target. It falls back to
// UTC if none resolve — system zone detection is read-only, best-effort,
// and must never fail the caller.
//
// No library in the retrieved pack performs this detection (it is always
// either hardcoded or left to time.Local), so this is implemented
// directly against the stdlib os/path APIs — there is nothing third-party
// to wire in for a concern this small and platform-specific.
func SystemZone(provider Provider) *time.Location {
	if tz := os.Getenv("TZ"); tz != "" {
		if loc, err := provider.Load(tz); err == nil {
			return loc
		}
	}

	if data, err := os.ReadFile("/etc/timezone"); err == nil {
		name := strings.TrimSpace(string(data))
		if loc, err := provider.Load(name); err == nil {
			return loc
		}
	}

	if target, err := os.Readlink("/etc/localtime"); err == nil {
		if name := zoneinfoName(target); name != "" {
			if loc, err := provider.Load(name); err == nil {
				return loc
			}
		}
	}

	return time.UTC
}

// zoneinfoName extracts the IANA zone name from a /etc/localtime symlink
// target such as "/usr/share/zoneinfo/Europe/Berlin".
func zoneinfoName(target string) string {
	const marker = "zoneinfo/"
	idx := strings.Index(target, marker)
	if idx == -1 {
		return ""
	}
	return filepath.ToSlash(target[idx+len(marker):])
}
