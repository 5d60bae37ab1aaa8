package midi

import (
	"path/filepath"
	"testing"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/stretchr/testify/assert"
)

func newTestSMF(ticksPerBeat uint16, tracks ...smf.Track) *smf.SMF {
	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(ticksPerBeat)
	s.Tracks = tracks
	return &s
}

func TestDecodeRoundTripThroughFile(t *testing.T) {
	// encode a known note and read it back through the real SMF codec
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(480)

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName("Lead"))
	tr.Add(480, gomidi.NoteOn(0, 60, 100))
	tr.Add(960, gomidi.NoteOff(0, 60))
	tr.Close(0)
	assert.NoError(t, s.Add(tr))

	path := filepath.Join(t.TempDir(), "roundtrip.mid")
	err := s.WriteFile(path)
	assert.NoError(t, err)

	parsed, err := ReadMidiFile(path)
	assert.NoError(t, err)
	decoded, err := DecodeFile(parsed)
	assert.NoError(t, err)

	assert.Equal(t, float64(480), decoded.TicksPerBeat)
	assert.Equal(t, "Lead", decoded.Tracks[0].Name)

	notes := decoded.Tracks[0].Notes
	assert.Len(t, notes, 1)
	assert.Equal(t, uint8(60), notes[0].Pitch)
	assert.Equal(t, uint8(100), notes[0].Velocity)
	assert.InDelta(t, 1.0, notes[0].Start, 1e-9)
	assert.InDelta(t, 2.0, notes[0].Duration, 1e-9)
}

func TestDecodeTrackPositiveDurations(t *testing.T) {
	var tr smf.Track
	tr.Add(0, gomidi.NoteOn(0, 60, 90))
	tr.Add(120, gomidi.NoteOn(0, 64, 90))
	tr.Add(120, gomidi.NoteOff(0, 60))
	tr.Add(240, gomidi.NoteOff(0, 64))

	notes, _ := DecodeTrack(tr, 480)
	assert.Len(t, notes, 2)
	for _, n := range notes {
		assert.Greater(t, n.Duration, 0.0)
		assert.GreaterOrEqual(t, n.Start, 0.0)
	}
}

func TestVelocityZeroNoteOnEndsNote(t *testing.T) {
	var tr smf.Track
	tr.Add(0, gomidi.NoteOn(0, 62, 80))
	tr.Add(480, gomidi.NoteOn(0, 62, 0))

	notes, _ := DecodeTrack(tr, 480)
	assert.Len(t, notes, 1)
	assert.InDelta(t, 1.0, notes[0].Duration, 1e-9)
	assert.Equal(t, uint8(80), notes[0].Velocity)
}

func TestOrphanNoteOffIgnored(t *testing.T) {
	var tr smf.Track
	tr.Add(0, gomidi.NoteOff(0, 60))
	tr.Add(480, gomidi.NoteOn(0, 60, 100))
	tr.Add(480, gomidi.NoteOff(0, 60))

	notes, _ := DecodeTrack(tr, 480)
	assert.Len(t, notes, 1)
	assert.InDelta(t, 1.0, notes[0].Start, 1e-9)
}

func TestUnmatchedNoteOnDropped(t *testing.T) {
	var tr smf.Track
	tr.Add(0, gomidi.NoteOn(0, 60, 100))
	tr.Add(480, gomidi.NoteOff(0, 60))
	tr.Add(0, gomidi.NoteOn(0, 72, 100))
	// no note-off for 72 before end of track

	notes, _ := DecodeTrack(tr, 480)
	assert.Len(t, notes, 1)
	assert.Equal(t, uint8(60), notes[0].Pitch)
}

func TestDoubleNoteOnOverwritesPendingStart(t *testing.T) {
	// retrigger before the note-off: the first onset is lost
	var tr smf.Track
	tr.Add(0, gomidi.NoteOn(0, 60, 100))
	tr.Add(480, gomidi.NoteOn(0, 60, 70))
	tr.Add(480, gomidi.NoteOff(0, 60))

	notes, _ := DecodeTrack(tr, 480)
	assert.Len(t, notes, 1)
	assert.InDelta(t, 1.0, notes[0].Start, 1e-9)
	assert.InDelta(t, 1.0, notes[0].Duration, 1e-9)
	assert.Equal(t, uint8(70), notes[0].Velocity)
}

func TestTempoCapturedButInert(t *testing.T) {
	var tr smf.Track
	tr.Add(0, smf.MetaTempo(140))
	tr.Add(0, gomidi.NoteOn(0, 60, 100))
	tr.Add(480, gomidi.NoteOff(0, 60))

	notes, tempo := DecodeTrack(tr, 480)
	// beat positions divide by ticks/beat only, never by tempo
	assert.InDelta(t, 1.0, notes[0].Duration, 1e-9)
	assert.InDelta(t, 428571, float64(tempo), 1)
}

func TestDecodeFileFallbackTrackName(t *testing.T) {
	var tr smf.Track
	tr.Add(0, gomidi.NoteOn(0, 60, 100))
	tr.Add(480, gomidi.NoteOff(0, 60))

	decoded, err := DecodeFile(newTestSMF(480, tr))
	assert.NoError(t, err)
	assert.Equal(t, "Track 0", decoded.Tracks[0].Name)
}

func TestAllNotesFlattensTracks(t *testing.T) {
	var tr1 smf.Track
	tr1.Add(0, gomidi.NoteOn(0, 60, 100))
	tr1.Add(480, gomidi.NoteOff(0, 60))
	var tr2 smf.Track
	tr2.Add(0, gomidi.NoteOn(0, 48, 100))
	tr2.Add(240, gomidi.NoteOff(0, 48))

	decoded, err := DecodeFile(newTestSMF(480, tr1, tr2))
	assert.NoError(t, err)
	assert.Len(t, decoded.AllNotes(), 2)
}

func TestReadMidiFileMissing(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing.mid")
}
