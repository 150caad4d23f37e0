// package player turns raw channel URLs into verdicts and embeddable player
// URLs.
//
// Everything in this package is pure and stateless. Normalization is best
// effort: a URL that matches no known pattern passes through unchanged, and
// the player surface fails visibly if it is unusable. Nothing here returns
// an error.
package player

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"livetv/internal/models"
)

// URL families accepted per platform.
var (
	youtubePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com|youtu\.be)/.+`),
		regexp.MustCompile(`^https?://www\.youtube\.com/embed/[^/]+`),
		regexp.MustCompile(`^https?://youtu\.be/[^/]+`),
	}
	facebookPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(https?://)?(www\.)?facebook\.com/.+`),
		regexp.MustCompile(`^https?://www\.facebook\.com/plugins/video\.php\?.+`),
	}
)

// Video id capture patterns, tried in order; first match wins.
var youtubeIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=([^&\n?#]+)`),
	regexp.MustCompile(`youtu\.be/([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/embed/([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/v/([^&\n?#]+)`),
}

// Classify reports whether rawURL is an acceptable source URL for the given
// channel type.
func Classify(rawURL string, t models.ChannelType) bool {
	var patterns []*regexp.Regexp
	switch t {
	case models.TypeYouTube:
		patterns = youtubePatterns
	case models.TypeFacebook:
		patterns = facebookPatterns
	default:
		return false
	}

	for _, p := range patterns {
		if p.MatchString(rawURL) {
			return true
		}
	}
	return false
}

// ToEmbedURL rewrites rawURL into a form directly usable by an inline player.
//
// URLs that already point at an embed surface are returned unchanged. YouTube
// URLs have their video id extracted and wrapped into an autoplaying embed
// URL; Facebook video URLs are wrapped into the plugins/video.php player.
// Anything else passes through unchanged.
func ToEmbedURL(rawURL string, t models.ChannelType) string {
	if strings.Contains(rawURL, "/embed/") {
		return rawURL
	}

	switch t {
	case models.TypeYouTube:
		for _, p := range youtubeIDPatterns {
			if m := p.FindStringSubmatch(rawURL); len(m) > 1 && m[1] != "" {
				return fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=1&rel=0", m[1])
			}
		}
	case models.TypeFacebook:
		if strings.Contains(rawURL, "facebook.com") && strings.Contains(rawURL, "/videos/") {
			return fmt.Sprintf("https://www.facebook.com/plugins/video.php?href=%s&show_text=0&autoplay=1", url.QueryEscape(rawURL))
		}
	}

	return rawURL
}

// ShareURL builds the deep link for a channel: {base}?channel={id}.
func ShareURL(base string, id int) string {
	return fmt.Sprintf("%s?channel=%d", base, id)
}

// ChannelIDFromQuery resolves the share deep link's channel parameter.
// Absent or non-numeric values report false; callers treat that as a silent
// no-op.
func ChannelIDFromQuery(values url.Values) (int, bool) {
	raw := values.Get("channel")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}
