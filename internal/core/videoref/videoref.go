// Package videoref extracts the 11-character video id from the shapes users paste:
// watch URLs, short links, embed and shorts URLs, or the bare id itself
package videoref

import (
	"errors"
	"regexp"
	"strings"
)

// IDLen is the fixed length of a platform video id
const IDLen = 11

// ErrInvalid is returned when no video id can be found
var ErrInvalid = errors.New("invalid video reference")

var (
	urlRE = regexp.MustCompile(`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?|shorts|live)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)
	idRE  = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
)

// Parse returns the video id referenced by ref
func Parse(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrInvalid
	}
	if idRE.MatchString(ref) {
		return ref, nil
	}
	if m := urlRE.FindStringSubmatch(ref); m != nil {
		return m[1], nil
	}
	return "", ErrInvalid
}

// WatchURL is the canonical watch page for id
func WatchURL(id string) string { return "https://www.youtube.com/watch?v=" + id }
