package utils

import (
	"regexp"
	"strings"
)

var (
	// Characters invalid in filenames on most filesystems
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	multipleSpaces       = regexp.MustCompile(`\s+`)
)

// SanitizeFilename makes an uploaded or generated name safe to use as a
// single path element.
func SanitizeFilename(filename string) string {
	filename = invalidFilenameChars.ReplaceAllString(filename, " ")
	filename = multipleSpaces.ReplaceAllString(filename, " ")
	filename = strings.Trim(filename, ". ")

	// Leave room for an extension within the usual 255 byte limit.
	if len(filename) > 200 {
		filename = strings.Trim(filename[:200], ". ")
	}

	if filename == "" {
		filename = "Untitled"
	}
	return filename
}
