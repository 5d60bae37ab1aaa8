package session

import (
	"errors"
	"math"

	"github.com/beatmaking/rollsheet/model"
	"github.com/google/uuid"
)

// fixed time signature assumption, 4/4
const BeatsPerBar = 4

// ErrNothingToRender is the empty-input outcome: zero tracks, or tracks with
// zero notes between them. Not a failure.
var ErrNothingToRender = errors.New("no notes to render")

// Build aligns a set of independently-decoded tracks on one shared time
// axis. The longest track sets the session length, rounded up to a whole
// bar, and every track renders against that width.
func Build(tracks []model.Track) (*model.Session, error) {
	var total float64
	var numNotes int
	for _, t := range tracks {
		for _, n := range t.Notes {
			numNotes += 1
			if end := n.End(); end > total {
				total = end
			}
		}
	}

	if numNotes == 0 {
		return nil, ErrNothingToRender
	}

	bars := int(math.Ceil(total / BeatsPerBar))
	return &model.Session{
		ID:            uuid.New().String(),
		Tracks:        tracks,
		TotalBeats:    total,
		Bars:          bars,
		RenderedBeats: float64(bars * BeatsPerBar),
	}, nil
}
