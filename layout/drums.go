package layout

// General MIDI percussion map, the subset that shows up in beat packets.
// Pitches outside the table render as unlabeled rows.
var drumNames = map[uint8]string{
	35: "Kick",
	36: "Kick",
	37: "Side Stick",
	38: "Snare",
	39: "Clap",
	40: "Snare",
	41: "Tom Low",
	42: "Hi-Hat Closed",
	43: "Tom Low-Mid",
	44: "Hi-Hat Pedal",
	45: "Tom Mid",
	46: "Hi-Hat Open",
	47: "Tom Mid-High",
	48: "Tom High",
	49: "Crash",
	51: "Ride",
	52: "Crash China",
	53: "Ride Bell",
	54: "Tambourine",
	55: "Splash",
	56: "Cowbell",
	57: "Crash",
	59: "Ride",
}

// DrumName returns the instrument name for a percussion pitch, or "" when
// the pitch has no mapping.
func DrumName(pitch uint8) string {
	return drumNames[pitch]
}
