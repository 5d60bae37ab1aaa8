package model

// Geometry coordinates: x is beats from the start of the session, y is rows
// of 0.4 units per semitone from the bottom of the track's pitch extent.
// Renderers decide what a unit maps to on paper or screen.

type LineKind string

const (
	LineBorder       LineKind = "border"
	LineBar          LineKind = "bar"
	LineBeat         LineKind = "beat"
	LineEighth       LineKind = "eighth"
	LineSixteenth    LineKind = "sixteenth"
	LineThirtySecond LineKind = "thirty_second"
	LinePitch        LineKind = "pitch"
	LinePitchC       LineKind = "pitch_c"
)

type LabelKind string

const (
	LabelPitch     LabelKind = "pitch"
	LabelPitchC    LabelKind = "pitch_c"
	LabelDrum      LabelKind = "drum"
	LabelBar       LabelKind = "bar"
	LabelBeat      LabelKind = "beat"
	LabelTrackName LabelKind = "track_name"
)

type Line struct {
	Kind LineKind `json:"kind"`
	X1   float64  `json:"x1"`
	Y1   float64  `json:"y1"`
	X2   float64  `json:"x2"`
	Y2   float64  `json:"y2"`
}

// Band is a shaded horizontal row marking a black-key semitone.
type Band struct {
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Label struct {
	Kind LabelKind `json:"kind"`
	X    float64   `json:"x"`
	Y    float64   `json:"y"`
	Text string    `json:"text"`
}

type NoteBox struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Opacity float64 `json:"opacity"`
}

// NoteShape is the two-part rendering of one note: a full-height attack
// marker at the onset plus a thinner sustain tail over the duration.
type NoteShape struct {
	Sustain NoteBox `json:"sustain"`
	Attack  NoteBox `json:"attack"`
}

// TrackGeometry is everything a renderer needs to draw one layer.
type TrackGeometry struct {
	Name     string      `json:"name"`
	Role     Role        `json:"role"`
	Color    string      `json:"color"`
	MinPitch uint8       `json:"min_pitch"`
	MaxPitch uint8       `json:"max_pitch"`
	Bands    []Band      `json:"bands"`
	Lines    []Line      `json:"lines"`
	Labels   []Label     `json:"labels"`
	Notes    []NoteShape `json:"notes"`
}

// SheetGeometry is the full output of one run: session metadata plus the
// per-layer primitive lists. Doubles as the gob artifact format.
type SheetGeometry struct {
	SessionID     string          `json:"session_id"`
	Song          string          `json:"song"`
	Bars          int             `json:"bars"`
	TotalBeats    float64         `json:"total_beats"`
	RenderedBeats float64         `json:"rendered_beats"`
	Tracks        []TrackGeometry `json:"tracks"`
}
