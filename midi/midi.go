package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/beatmaking/rollsheet/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

// default is 120 BPM, in microseconds per beat
const defaultTempo = 500000

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file %v... %s", filepath, err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file %v... %s", filepath, err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

// DecodedTrack is one source unit's notes plus whatever name the track
// metadata carried.
type DecodedTrack struct {
	Name  string
	Notes []model.Note
}

// File is the decoded content of one SMF.
type File struct {
	TicksPerBeat float64
	// Tempo is the last set_tempo seen, in microseconds per beat. Captured
	// for callers that want to report BPM; beat positions never depend on it,
	// only on TicksPerBeat.
	Tempo  uint32
	Tracks []DecodedTrack
}

// AllNotes flattens every track's notes into one layer, the multi-file-mode
// view where a whole file is a single instrument.
func (f *File) AllNotes() []model.Note {
	var res []model.Note
	for _, t := range f.Tracks {
		res = append(res, t.Notes...)
	}
	return res
}

// TicksPerBeat reads the tick resolution from the SMF header.
func TicksPerBeat(s *smf.SMF) (float64, error) {
	mt, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return 0, fmt.Errorf("Unsupported SMF time format: %v", s.TimeFormat)
	}
	return float64(mt), nil
}

type pendingNote struct {
	startTicks int64
	velocity   uint8
	channel    uint8
}

// DecodeTrack reconstructs notes from one track's timed messages. The active
// table lives and dies inside this call.
//
// A second note-on for an already-sounding pitch overwrites the pending start
// and the first note is lost. That drops real notes on legato retriggers, but
// existing sheets were proofed against it, so it stays.
func DecodeTrack(track smf.Track, ticksPerBeat float64) ([]model.Note, uint32) {
	var notes []model.Note
	var absTicks int64
	tempo := uint32(defaultTempo)
	active := make(map[uint8]pendingNote)

	for _, event := range track {
		absTicks += int64(event.Delta)
		var channel uint8
		var key uint8
		var velocity uint8
		var bpm float64
		switch {
		case event.Message.GetMetaTempo(&bpm):
			tempo = uint32(60000000 / bpm)
		case event.Message.GetNoteOn(&channel, &key, &velocity):
			if velocity == 0 {
				// velocity-0 note-on is a note-off in disguise
				notes = closeNote(notes, active, key, absTicks, ticksPerBeat)
			} else {
				active[key] = pendingNote{
					startTicks: absTicks,
					velocity:   velocity,
					channel:    channel,
				}
			}
		case event.Message.GetNoteOff(&channel, &key, &velocity):
			notes = closeNote(notes, active, key, absTicks, ticksPerBeat)
		}
	}

	// anything still in active never got a note-off and is dropped
	return notes, tempo
}

func closeNote(notes []model.Note, active map[uint8]pendingNote, key uint8, absTicks int64, ticksPerBeat float64) []model.Note {
	pending, ok := active[key]
	if !ok {
		// note-off for a pitch that isn't sounding, ignore
		return notes
	}
	delete(active, key)
	return append(notes, model.Note{
		Pitch:    key,
		Start:    float64(pending.startTicks) / ticksPerBeat,
		Duration: float64(absTicks-pending.startTicks) / ticksPerBeat,
		Velocity: pending.velocity,
		Channel:  pending.channel,
	})
}

// DecodeFile decodes every track of one SMF.
func DecodeFile(s *smf.SMF) (*File, error) {
	tpb, err := TicksPerBeat(s)
	if err != nil {
		return nil, err
	}

	res := File{TicksPerBeat: tpb, Tempo: defaultTempo}
	for i, track := range s.Tracks {
		name := trackName(track)
		if name == "" {
			name = fmt.Sprintf("Track %v", i)
		}
		notes, tempo := DecodeTrack(track, tpb)
		if tempo != defaultTempo {
			res.Tempo = tempo
		}
		res.Tracks = append(res.Tracks, DecodedTrack{Name: name, Notes: notes})
	}
	return &res, nil
}

func trackName(track smf.Track) string {
	var name string
	for _, event := range track {
		if event.Message.GetMetaTrackName(&name) {
			return name
		}
	}
	return ""
}
