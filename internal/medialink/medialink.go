// Package medialink normalizes user-pasted streaming links into stable
// track/video identifiers. Extraction is best effort: unrecognized shapes
// pass the trimmed input through unchanged.
package medialink

import "strings"

// Service identifies which provider a link belongs to.
type Service string

// Known providers.
const (
	ServiceSpotify Service = "spotify"
	ServiceYouTube Service = "youtube"
	ServiceUnknown Service = ""
)

// Detect guesses the provider from the link text.
func Detect(input string) Service {
	s := strings.ToLower(strings.TrimSpace(input))
	switch {
	case strings.Contains(s, "spotify"):
		return ServiceSpotify
	case strings.Contains(s, "youtube.com"), strings.Contains(s, "youtu.be"), strings.HasPrefix(s, "vnd.youtube:"):
		return ServiceYouTube
	}
	return ServiceUnknown
}

// SpotifyTrackID extracts the track identifier from any of the known
// Spotify link shapes:
//
//	https://open.spotify.com/track/<id>?si=...
//	spotify:track:<id>
//	<id>
func SpotifyTrackID(input string) string {
	s := strings.TrimSpace(input)

	if rest, ok := cutAfter(s, "/track/"); ok {
		return trimQuery(rest)
	}
	if rest, ok := cutAfter(s, "spotify:track:"); ok {
		return trimQuery(rest)
	}
	return s
}

// YouTubeVideoID extracts the video identifier from any of the known
// YouTube link shapes:
//
//	https://www.youtube.com/watch?v=<id>&t=...
//	https://youtu.be/<id>?t=...
//	https://www.youtube.com/shorts/<id>
//	https://www.youtube.com/embed/<id>
//	vnd.youtube:<id>
//	<id>
func YouTubeVideoID(input string) string {
	s := strings.TrimSpace(input)

	if rest, ok := cutAfter(s, "v="); ok && strings.Contains(s, "youtube.com") {
		return trimQuery(rest)
	}
	if rest, ok := cutAfter(s, "youtu.be/"); ok {
		return trimQuery(rest)
	}
	if rest, ok := cutAfter(s, "/shorts/"); ok {
		return trimQuery(rest)
	}
	if rest, ok := cutAfter(s, "/embed/"); ok {
		return trimQuery(rest)
	}
	if rest, ok := cutAfter(s, "vnd.youtube:"); ok {
		return trimQuery(rest)
	}
	return s
}

// cutAfter returns the substring following the first occurrence of marker.
func cutAfter(s, marker string) (string, bool) {
	idx := strings.Index(s, marker)
	if idx < 0 {
		return "", false
	}
	return s[idx+len(marker):], true
}

// trimQuery drops everything from the first query or fragment separator on.
func trimQuery(s string) string {
	if i := strings.IndexAny(s, "?&#/"); i >= 0 {
		return s[:i]
	}
	return s
}
