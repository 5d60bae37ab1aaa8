package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beatmaking/rollsheet/classify"
	"github.com/beatmaking/rollsheet/latex"
	"github.com/beatmaking/rollsheet/layout"
	"github.com/beatmaking/rollsheet/midi"
	"github.com/beatmaking/rollsheet/model"
	"github.com/beatmaking/rollsheet/session"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sheetCmd)
}

var sheetCmd = &cobra.Command{
	Use:   "sheet <midi-file> [bars]",
	Short: "Renders one MIDI file as a layered piano roll sheet",
	Long:  `Renders one MIDI file as a layered piano roll sheet. Each track inside the file becomes a layer. An optional bar count overrides the length derived from the longest track.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			panic("Need a midi file...")
		}
		var bars int
		if len(args) > 1 {
			arg2, err := strconv.Atoi(args[1])
			if err != nil {
				panic(err)
			}
			bars = arg2
		}
		cobra.CheckErr(Sheet(args[0], bars))
	},
}

// Sheet is the single-file pipeline: decode every track of one SMF, classify
// each as a layer, align, lay out and write the tex next to the input.
func Sheet(path string, bars int) error {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	decoded, err := midi.DecodeFile(parsed)
	if err != nil {
		return errors.New(path + ": " + err.Error())
	}

	fmt.Printf("Analyzing %v (%v ticks/beat, %v tracks)\n",
		filepath.Base(path), decoded.TicksPerBeat, len(decoded.Tracks))

	var tracks []model.Track
	for _, dt := range decoded.Tracks {
		if len(dt.Notes) == 0 {
			continue
		}
		t := classify.NewTrack(dt.Name, dt.Notes)
		fmt.Printf("   %v: %v notes, role %v\n", t.Name, len(t.Notes), t.Role)
		tracks = append(tracks, t)
	}

	sess, err := session.Build(tracks)
	if errors.Is(err, session.ErrNothingToRender) {
		fmt.Println("Nothing to render")
		return nil
	}
	if err != nil {
		return err
	}
	if bars > 0 {
		// caller-supplied length wins; notes past it get truncated
		sess.Bars = bars
		sess.RenderedBeats = float64(bars * session.BeatsPerBar)
	}

	stem := strings.TrimSuffix(path, filepath.Ext(path))
	geo := layout.Sheet(sess, displayName(filepath.Base(stem)))
	outPath := stem + "_pianoroll.tex"
	err = os.WriteFile(outPath, []byte(latex.Document(geo)), 0644)
	if err != nil {
		return errors.New("Could not write " + outPath + ": " + err.Error())
	}

	fmt.Printf("Generated %v (%v bars)\n", outPath, sess.Bars)
	return nil
}

// displayName turns a filename stem like "come_together" into "Come Together".
func displayName(stem string) string {
	words := strings.Fields(strings.ReplaceAll(stem, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
