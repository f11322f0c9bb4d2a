package domain

import "strings"

// ArtistDelimiter joins multiple artist names into the single string
// the backend stores.
const ArtistDelimiter = " / "

// SplitArtists splits a joined artist-name string into its ordered
// parts. Splitting is tolerant: any "/" separates, segments are
// trimmed, and empty segments dropped, so ragged input like
// "Alice/ Bob" canonicalizes to the same parts as "Alice / Bob" and
// round-trips through JoinArtists into the canonical form.
func SplitArtists(s string) []string {
	parts := strings.Split(s, "/")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}

// JoinArtists joins artist names back into the stored representation.
// An empty list yields the empty string, the backend's "clear all
// artists" signal.
func JoinArtists(names []string) string {
	return strings.Join(names, ArtistDelimiter)
}
