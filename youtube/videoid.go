package youtube

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	embedPattern   = regexp.MustCompile(`/embed/([A-Za-z0-9_-]{11})`)
	videoIDPattern = regexp.MustCompile(`([A-Za-z0-9_-]{11})`)
)

// ExtractVideoID pulls a video id out of a YouTube URL. Structured forms are
// tried first (youtu.be short links, the v query parameter, /embed/ paths);
// only then does it fall back to scanning the raw string for an 11-character
// id-shaped run, which can false-positive on unrelated substrings. Never
// errors: an unusable URL yields ok=false.
func ExtractVideoID(raw string) (string, bool) {
	parsed, err := url.Parse(raw)
	if err == nil {
		if parsed.Host == "youtu.be" {
			// Short link: https://youtu.be/<id>
			if id := strings.TrimPrefix(parsed.Path, "/"); id != "" {
				return id, true
			}
		}
		if strings.HasSuffix(parsed.Host, "youtube.com") {
			if v := parsed.Query().Get("v"); v != "" {
				return v, true
			}
			// Embedded or share formats
			if m := embedPattern.FindStringSubmatch(parsed.Path); m != nil {
				return m[1], true
			}
		}
	}

	// As a fallback, try to match a plausible 11-char id anywhere in the URL
	if m := videoIDPattern.FindString(raw); m != "" {
		return m, true
	}
	return "", false
}
