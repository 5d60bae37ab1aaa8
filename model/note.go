package model

// Role is the inferred musical function of a layer.
type Role string

const (
	RoleDrums      Role = "drums"
	RoleBass       Role = "bass"
	RoleChords     Role = "chords"
	RoleMelody     Role = "melody"
	RoleHarmony    Role = "harmony"
	RolePercussion Role = "percussion"
	RoleUnknown    Role = "unknown"
)

// Note is one decoded MIDI note. Start and Duration are in beats.
type Note struct {
	Pitch    uint8
	Start    float64
	Duration float64
	Velocity uint8
	Channel  uint8
}

// End is the note's off position in beats.
func (n Note) End() float64 {
	return n.Start + n.Duration
}

// Track is one logical instrument layer of a song.
type Track struct {
	Name  string
	Notes []Note
	Role  Role
	Color string
}

// IsPercussion reports whether the track's rows should be labeled with drum
// instrument names instead of note names.
func (t Track) IsPercussion() bool {
	return t.Role == RoleDrums || t.Role == RolePercussion
}
