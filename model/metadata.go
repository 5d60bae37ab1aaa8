package model

// SongMetadata is the optional title-block enrichment for a song.
type SongMetadata struct {
	Title   string
	Artist  string
	Release string
	Year    uint
}
