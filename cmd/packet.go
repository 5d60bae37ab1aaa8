package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/beatmaking/rollsheet/classify"
	"github.com/beatmaking/rollsheet/constants"
	"github.com/beatmaking/rollsheet/db"
	"github.com/beatmaking/rollsheet/latex"
	"github.com/beatmaking/rollsheet/layout"
	"github.com/beatmaking/rollsheet/midi"
	"github.com/beatmaking/rollsheet/model"
	"github.com/beatmaking/rollsheet/session"
	"github.com/beatmaking/rollsheet/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(packetCmd)
}

var packetCmd = &cobra.Command{
	Use:   "packet <midi-dir> [song name]",
	Short: "Renders a directory of MIDI files as one unified sheet",
	Long:  `Renders a directory of MIDI files as one unified sheet. Each file is one layer named after its filename stem; all layers share one time axis so bar lines align.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			panic("Need a midi directory...")
		}
		var song string
		if len(args) > 1 {
			song = args[1]
		}
		cobra.CheckErr(Packet(args[0], song))
	},
}

// BuildGeometry is the multi-file pipeline up to (and including) layout:
// one file per layer, filename stem as the layer name, one shared width.
func BuildGeometry(dir string, song string) (model.SheetGeometry, error) {
	var blank model.SheetGeometry

	paths := util.GatherAllMidiPaths(dir)
	if len(paths) == 0 {
		fmt.Printf("No midi files found in %v\n", dir)
		return blank, session.ErrNothingToRender
	}
	fmt.Printf("Found %v midi files in %v\n", len(paths), dir)

	var tracks []model.Track
	for _, p := range paths {
		parsed, err := midi.ReadMidiFile(p)
		if err != nil {
			// malformed input is fatal for the run, never a partial sheet
			return blank, err
		}
		decoded, err := midi.DecodeFile(parsed)
		if err != nil {
			return blank, errors.New(p + ": " + err.Error())
		}

		notes := decoded.AllNotes()
		name := displayName(strings.TrimSuffix(filepath.Base(p), filepath.Ext(p)))
		if len(notes) == 0 {
			fmt.Printf("   %v: no notes, skipping\n", name)
			continue
		}

		t := classify.NewLayer(name, notes)
		var end float64
		for _, n := range notes {
			if n.End() > end {
				end = n.End()
			}
		}
		fmt.Printf("   %v: %v notes, %.1f beats, role %v\n", name, len(notes), end, t.Role)
		tracks = append(tracks, t)
	}

	sess, err := session.Build(tracks)
	if err != nil {
		return blank, err
	}
	fmt.Printf("Total length: %.1f beats (%v bars)\n", sess.TotalBeats, sess.Bars)

	if song == "" {
		song = displayName(filepath.Base(dir))
	}
	if constants.GetMetadataEndpoint() != "" {
		metadatas := db.GetSongMetadatas([]string{song})
		if m, ok := metadatas[song]; ok {
			song = fmt.Sprintf("%v (%v)", m.Title, m.Artist)
		}
	}

	return layout.Sheet(sess, song), nil
}

// Packet renders the unified sheet and drops both the tex and a gob geometry
// artifact in the out dir.
func Packet(dir string, song string) error {
	geo, err := BuildGeometry(dir, song)
	if errors.Is(err, session.ErrNothingToRender) {
		fmt.Println("Nothing to render")
		return nil
	}
	if err != nil {
		return err
	}

	util.EnsureOutputDir()
	texPath := filepath.Join(constants.GetOutDir(), filepath.Base(dir)+"_pianoroll.tex")
	err = os.WriteFile(texPath, []byte(latex.Document(geo)), 0644)
	if err != nil {
		return errors.New("Could not write " + texPath + ": " + err.Error())
	}
	util.CreateBinary(filepath.Join(constants.GetOutDir(), geo.SessionID+".dat"), geo)

	fmt.Printf("Generated %v for %v layers\n", texPath, len(geo.Tracks))
	fmt.Printf("Compile with: xelatex %v\n", filepath.Base(texPath))
	return nil
}
