package model

// Session owns the aligned tracks for one song. Every track renders against
// RenderedBeats so bar lines line up when the layers are stacked.
type Session struct {
	ID            string
	Tracks        []Track
	TotalBeats    float64
	Bars          int
	RenderedBeats float64
}
