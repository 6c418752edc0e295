package medialink

import "testing"

func TestSpotifyTrackID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://open.spotify.com/track/64Ny7djQ6rNJspquof2KoX", "64Ny7djQ6rNJspquof2KoX"},
		{"https://open.spotify.com/track/64Ny7djQ6rNJspquof2KoX?si=abc123", "64Ny7djQ6rNJspquof2KoX"},
		{"spotify:track:64Ny7djQ6rNJspquof2KoX", "64Ny7djQ6rNJspquof2KoX"},
		{"  spotify:track:64Ny7djQ6rNJspquof2KoX  ", "64Ny7djQ6rNJspquof2KoX"},
		// Unrecognized shapes pass through trimmed.
		{"64Ny7djQ6rNJspquof2KoX", "64Ny7djQ6rNJspquof2KoX"},
		{" some text ", "some text"},
	}
	for _, tt := range tests {
		if got := SpotifyTrackID(tt.in); got != tt.want {
			t.Errorf("SpotifyTrackID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestYouTubeVideoID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ?t=42", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"vnd.youtube:dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"dQw4w9WgXcQ", "dQw4w9WgXcQ"},
	}
	for _, tt := range tests {
		if got := YouTubeVideoID(tt.in); got != tt.want {
			t.Errorf("YouTubeVideoID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		in   string
		want Service
	}{
		{"https://open.spotify.com/track/abc", ServiceSpotify},
		{"spotify:track:abc", ServiceSpotify},
		{"https://www.youtube.com/watch?v=abc", ServiceYouTube},
		{"https://youtu.be/abc", ServiceYouTube},
		{"vnd.youtube:abc", ServiceYouTube},
		{"https://example.com/song", ServiceUnknown},
		{"", ServiceUnknown},
	}
	for _, tt := range tests {
		if got := Detect(tt.in); got != tt.want {
			t.Errorf("Detect(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
