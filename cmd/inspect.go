package cmd

import (
	"fmt"
	"strings"

	"github.com/beatmaking/rollsheet/classify"
	"github.com/beatmaking/rollsheet/layout"
	"github.com/beatmaking/rollsheet/midi"
	"github.com/beatmaking/rollsheet/model"
	"github.com/beatmaking/rollsheet/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid|artifact.dat>",
	Short: "Inspects a midi file or a geometry artifact",
	Long:  `Inspects a midi file or a geometry artifact`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		if strings.HasSuffix(args[0], ".dat") {
			inspectArtifact(args[0])
		} else {
			cobra.CheckErr(inspectMidi(args[0]))
		}
	},
}

func inspectMidi(path string) error {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	decoded, err := midi.DecodeFile(parsed)
	if err != nil {
		return err
	}

	bpm := 60000000 / float64(decoded.Tempo)
	fmt.Printf("ticks/beat: %v, tempo: %.1f bpm\n", decoded.TicksPerBeat, bpm)
	for _, dt := range decoded.Tracks {
		role := classify.Classify(dt.Notes)
		fmt.Printf("%v: %v notes, role %v\n", dt.Name, len(dt.Notes), role)
		for _, n := range dt.Notes {
			fmt.Printf("   %v start=%.3f dur=%.3f vel=%v ch=%v\n",
				layout.PitchName(n.Pitch), n.Start, n.Duration, n.Velocity, n.Channel)
		}
	}
	return nil
}

func inspectArtifact(path string) {
	geo := util.ReadBinaryOrPanic[model.SheetGeometry](path)
	fmt.Printf("song: %v\n", geo.Song)
	fmt.Printf("session: %v\n", geo.SessionID)
	fmt.Printf("bars: %v (%.1f of %.1f beats)\n", geo.Bars, geo.TotalBeats, geo.RenderedBeats)
	for _, t := range geo.Tracks {
		fmt.Printf("%v (%v, %v): %v notes, %v lines, %v labels\n",
			t.Name, t.Role, t.Color, len(t.Notes), len(t.Lines), len(t.Labels))
	}
}
