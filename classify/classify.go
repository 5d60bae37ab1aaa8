package classify

import (
	"math"
	"strings"

	"github.com/beatmaking/rollsheet/model"
)

// MIDI channel 10 (0-indexed) is reserved for percussion
const drumChannel = 9

const (
	bassMaxPitch         = 52
	melodyAvgPitch       = 65.0
	chordMinSimultaneous = 3
)

var roleColors = map[model.Role]string{
	model.RoleDrums:      "red",
	model.RoleBass:       "blue",
	model.RoleChords:     "green",
	model.RoleMelody:     "purple",
	model.RoleHarmony:    "orange",
	model.RolePercussion: "orange",
	model.RoleUnknown:    "gray",
}

// Color returns the display color for a role. The table is fixed so the same
// layer type always prints in the same color across songs.
func Color(role model.Role) string {
	if c, ok := roleColors[role]; ok {
		return c
	}
	return "gray"
}

// Classify infers the musical role of one layer's notes. It's a decision list
// over channel, pitch range and simultaneity; best effort, not a guarantee.
func Classify(notes []model.Note) model.Role {
	if len(notes) == 0 {
		return model.RoleUnknown
	}

	for _, n := range notes {
		if n.Channel == drumChannel {
			return model.RoleDrums
		}
	}

	var maxPitch uint8
	var pitchSum int
	for _, n := range notes {
		if n.Pitch > maxPitch {
			maxPitch = n.Pitch
		}
		pitchSum += int(n.Pitch)
	}

	if maxPitch < bassMaxPitch {
		return model.RoleBass
	}
	if maxSimultaneous(notes) >= chordMinSimultaneous {
		return model.RoleChords
	}
	if float64(pitchSum)/float64(len(notes)) >= melodyAvgPitch {
		return model.RoleMelody
	}
	return model.RoleHarmony
}

// maxSimultaneous quantizes note starts to a sixteenth grid and returns the
// size of the fullest bucket.
func maxSimultaneous(notes []model.Note) int {
	buckets := make(map[float64]int)
	for _, n := range notes {
		q := math.Round(n.Start*4) / 4
		buckets[q]++
	}
	var res int
	for _, count := range buckets {
		if count > res {
			res = count
		}
	}
	return res
}

// RoleForLayer classifies a named layer from multi-file input. The channel
// and pitch heuristics come first; a drum hint in the layer name then forces
// percussion so the rows get instrument labels even when the file was
// exported on a melodic channel.
func RoleForLayer(name string, notes []model.Note) model.Role {
	role := Classify(notes)
	if role == model.RoleDrums {
		return role
	}
	lower := strings.ToLower(name)
	if strings.Contains(lower, "drum") || strings.Contains(lower, "perc") {
		return model.RolePercussion
	}
	return role
}

// NewTrack builds a classified track from one source unit of a single file.
func NewTrack(name string, notes []model.Note) model.Track {
	role := Classify(notes)
	return model.Track{Name: name, Notes: notes, Role: role, Color: Color(role)}
}

// NewLayer builds a classified track from one file of a multi-file song,
// where the filename stem doubles as a role hint.
func NewLayer(name string, notes []model.Note) model.Track {
	role := RoleForLayer(name, notes)
	return model.Track{Name: name, Notes: notes, Role: role, Color: Color(role)}
}
