package layout

import (
	"fmt"
	"strings"

	"github.com/beatmaking/rollsheet/model"
	"github.com/beatmaking/rollsheet/util"
)

const (
	rowHeight     = 0.4
	noteSlot      = 0.35
	sustainHeight = 0.25

	// a near-zero duration still has to print as a visible mark
	minNoteWidth   = 0.15
	maxAttackWidth = 0.08

	melodicPad = 3
	lowestRow  = 21  // A0
	highestRow = 108 // C8

	subdivisionsPerBeat = 8
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// pitch mod 12 of the chromatic black-key rows
var blackKeys = map[uint8]bool{1: true, 3: true, 6: true, 8: true, 10: true}

// PitchName converts a MIDI pitch to a note name with its octave, MIDI
// convention: octave = pitch/12 - 1, so 60 is C4.
func PitchName(pitch uint8) string {
	return fmt.Sprintf("%v%v", noteNames[pitch%12], int(pitch)/12-1)
}

// pitchExtent is the vertical range a track renders over. Melodic tracks get
// a few rows of padding, clamped to the piano range; percussion shows only
// the exact rows in use so the drum labels stay dense.
func pitchExtent(track model.Track) (uint8, uint8) {
	if len(track.Notes) == 0 {
		return 60, 72
	}
	minPitch := track.Notes[0].Pitch
	maxPitch := track.Notes[0].Pitch
	for _, n := range track.Notes {
		if n.Pitch < minPitch {
			minPitch = n.Pitch
		}
		if n.Pitch > maxPitch {
			maxPitch = n.Pitch
		}
	}
	if track.IsPercussion() {
		return minPitch, maxPitch
	}
	return uint8(util.Max(int(minPitch)-melodicPad, lowestRow)),
		uint8(util.Min(int(maxPitch)+melodicPad, highestRow))
}

// Build lays out one track against the session's shared width. showBarLabels
// adds the bar and beat numbers under the grid; on a stacked sheet only the
// bottom layer carries them.
func Build(track model.Track, renderedBeats float64, showBarLabels bool) model.TrackGeometry {
	minPitch, maxPitch := pitchExtent(track)
	pitchRange := int(maxPitch) - int(minPitch)
	yMax := float64(pitchRange+1) * rowHeight

	geo := model.TrackGeometry{
		Name:     track.Name,
		Role:     track.Role,
		Color:    track.Color,
		MinPitch: minPitch,
		MaxPitch: maxPitch,
	}

	// black-key bands go first so renderers can paint them behind the grid
	for i := 0; i <= pitchRange; i++ {
		pitch := minPitch + uint8(i)
		if blackKeys[pitch%12] {
			geo.Bands = append(geo.Bands, model.Band{
				Y:      float64(i) * rowHeight,
				Width:  renderedBeats,
				Height: rowHeight,
			})
		}
	}

	// border frame: bottom, top, right; the left edge is the first bar line
	geo.Lines = append(geo.Lines,
		model.Line{Kind: model.LineBorder, X1: 0, Y1: 0, X2: renderedBeats, Y2: 0},
		model.Line{Kind: model.LineBorder, X1: 0, Y1: yMax, X2: renderedBeats, Y2: yMax},
		model.Line{Kind: model.LineBorder, X1: renderedBeats, Y1: 0, X2: renderedBeats, Y2: yMax},
	)

	// horizontal pitch rows, C rows heavier
	for i := 0; i <= pitchRange; i++ {
		pitch := minPitch + uint8(i)
		kind := model.LinePitch
		if pitch%12 == 0 {
			kind = model.LinePitchC
		}
		y := float64(i) * rowHeight
		geo.Lines = append(geo.Lines, model.Line{Kind: kind, X1: 0, Y1: y, X2: renderedBeats, Y2: y})
	}

	geo.Lines = append(geo.Lines, verticalGrid(renderedBeats, yMax)...)
	geo.Labels = append(geo.Labels, gridLabels(renderedBeats, showBarLabels)...)
	geo.Labels = append(geo.Labels, rowLabels(track, minPitch, pitchRange)...)

	// rotated layer name on the right edge
	geo.Labels = append(geo.Labels, model.Label{
		Kind: model.LabelTrackName,
		X:    renderedBeats + 0.5,
		Y:    yMax / 2,
		Text: strings.ToUpper(track.Name),
	})

	for _, n := range track.Notes {
		if n.Start >= renderedBeats {
			// outlier past the session width, truncated
			continue
		}
		geo.Notes = append(geo.Notes, noteShape(n, minPitch))
	}

	return geo
}

// verticalGrid emits the time grid at five densities, finest first weeded
// out by modulo: bar, beat, eighth, sixteenth, thirty-second.
func verticalGrid(renderedBeats, yMax float64) []model.Line {
	var res []model.Line
	for sub := 0; sub <= int(renderedBeats)*subdivisionsPerBeat; sub++ {
		beat := float64(sub) / subdivisionsPerBeat
		var kind model.LineKind
		switch {
		case sub%(4*subdivisionsPerBeat) == 0:
			if beat >= renderedBeats {
				// the closing bar line is already the border
				continue
			}
			kind = model.LineBar
		case sub%subdivisionsPerBeat == 0:
			kind = model.LineBeat
		case sub%(subdivisionsPerBeat/2) == 0:
			kind = model.LineEighth
		case sub%(subdivisionsPerBeat/4) == 0:
			kind = model.LineSixteenth
		default:
			kind = model.LineThirtySecond
		}
		res = append(res, model.Line{Kind: kind, X1: beat, Y1: 0, X2: beat, Y2: yMax})
	}
	return res
}

func gridLabels(renderedBeats float64, showBarLabels bool) []model.Label {
	if !showBarLabels {
		return nil
	}
	var res []model.Label
	for sub := 0; sub < int(renderedBeats)*subdivisionsPerBeat; sub += subdivisionsPerBeat {
		beat := float64(sub) / subdivisionsPerBeat
		if sub%(4*subdivisionsPerBeat) == 0 {
			barNum := sub/(4*subdivisionsPerBeat) + 1
			res = append(res, model.Label{
				Kind: model.LabelBar,
				X:    beat,
				Y:    -0.5,
				Text: fmt.Sprintf("Bar %v", barNum),
			})
		} else {
			beatNum := sub%(4*subdivisionsPerBeat)/subdivisionsPerBeat + 1
			res = append(res, model.Label{
				Kind: model.LabelBeat,
				X:    beat,
				Y:    -0.5,
				Text: fmt.Sprintf("%v", beatNum),
			})
		}
	}
	return res
}

// rowLabels names each chromatic row. Percussion tracks label rows by drum
// instrument and leave unmapped pitches blank.
func rowLabels(track model.Track, minPitch uint8, pitchRange int) []model.Label {
	const labelX = -0.3
	var res []model.Label
	for i := 0; i <= pitchRange; i++ {
		pitch := minPitch + uint8(i)
		yCenter := float64(i)*rowHeight + rowHeight/2

		if track.IsPercussion() {
			name := DrumName(pitch)
			if name == "" {
				continue
			}
			res = append(res, model.Label{Kind: model.LabelDrum, X: labelX, Y: yCenter, Text: name})
			continue
		}

		kind := model.LabelPitch
		if pitch%12 == 0 {
			kind = model.LabelPitchC
		}
		res = append(res, model.Label{Kind: kind, X: labelX, Y: yCenter, Text: PitchName(pitch)})
	}
	return res
}

// noteShape builds the attack/sustain pair for one note. Velocity maps to
// opacity so quiet notes stay legible and loud ones stand out.
func noteShape(n model.Note, minPitch uint8) model.NoteShape {
	width := util.Max(n.Duration, minNoteWidth)
	yBase := float64(int(n.Pitch)-int(minPitch))*rowHeight + 0.025

	opacity := 0.6 + float64(n.Velocity)/127*0.4

	return model.NoteShape{
		Sustain: model.NoteBox{
			X:       n.Start,
			Y:       yBase + (noteSlot-sustainHeight)/2,
			Width:   width,
			Height:  sustainHeight,
			Opacity: opacity,
		},
		Attack: model.NoteBox{
			X:       n.Start,
			Y:       yBase,
			Width:   util.Min(maxAttackWidth, width*0.3),
			Height:  noteSlot,
			Opacity: util.Min(1.0, opacity+0.35),
		},
	}
}

// BuildAll lays out every track of a session. Bar and beat numbers go on the
// last layer only, matching the printed packets.
func BuildAll(s *model.Session) []model.TrackGeometry {
	var res []model.TrackGeometry
	for i, t := range s.Tracks {
		isLast := i == len(s.Tracks)-1
		res = append(res, Build(t, s.RenderedBeats, isLast))
	}
	return res
}

// Sheet assembles the complete geometry output for one session.
func Sheet(s *model.Session, song string) model.SheetGeometry {
	return model.SheetGeometry{
		SessionID:     s.ID,
		Song:          song,
		Bars:          s.Bars,
		TotalBeats:    s.TotalBeats,
		RenderedBeats: s.RenderedBeats,
		Tracks:        BuildAll(s),
	}
}
