// pkg/clean/clean.go

// Package clean normalizes untrusted names before they travel somewhere
// less forgiving than a Unix path, such as a mail attachment header.
package clean

import (
	"regexp"
	"strings"
)

// forbidden covers characters rejected by Windows filesystems plus the
// control characters that would corrupt a MIME header.
var forbidden = regexp.MustCompile(`[<>:"/\\|?*\x00\n\r\t]`)

// Reserved Windows device names. Reserved even with an extension:
// CON.txt cannot be saved either.
var reserved = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// FileName rewrites name so any mail client can save it: forbidden
// characters become underscores, trailing dots and spaces go, reserved
// device names get prefixed, and the result is never empty.
func FileName(name string) string {
	// Windows caps filenames at 255.
	if len(name) > 255 {
		name = name[:255]
	}

	cleaned := forbidden.ReplaceAllString(name, "_")
	cleaned = strings.TrimRight(cleaned, " .")

	stem := cleaned
	if i := strings.LastIndex(cleaned, "."); i > 0 {
		stem = cleaned[:i]
	}
	if reserved[strings.ToUpper(stem)] {
		cleaned = "_" + cleaned
	}

	if cleaned == "" {
		cleaned = "attachment"
	}
	return cleaned
}
