package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/beatmaking/rollsheet/constants"
	"github.com/beatmaking/rollsheet/model"
	"github.com/beatmaking/rollsheet/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarizes the geometry artifacts in the out dir",
	Long:  `Summarizes the geometry artifacts in the out dir`,
	Run: func(cmd *cobra.Command, args []string) {
		report()
	},
}

type artifactsReport struct {
	numSessions int64
	numTracks   int64
	numNotes    int64
	numBytes    int64
}

func analyzeArtifacts() artifactsReport {
	var report artifactsReport

	files, err := os.ReadDir(constants.GetOutDir())
	if err != nil {
		panic("Could not read dir because: " + err.Error())
	}

	r, _ := regexp.Compile("^[0-9a-fA-F]{8}-([0-9a-fA-F]{4}-){3}[0-9a-fA-F]{12}.dat$")
	for _, file := range files {
		filename := file.Name()
		if !r.MatchString(filename) {
			continue
		}
		path := filepath.Join(constants.GetOutDir(), filename)
		geo := util.ReadBinaryOrPanic[model.SheetGeometry](path)

		report.numSessions += 1
		report.numTracks += int64(len(geo.Tracks))
		for _, t := range geo.Tracks {
			report.numNotes += int64(len(t.Notes))
		}

		info, err := file.Info()
		if err != nil {
			panic("Could not get file stats")
		}
		report.numBytes += info.Size()
	}

	return report
}

func report() {
	r := analyzeArtifacts()
	fmt.Printf("sessions: %v\n", r.numSessions)
	fmt.Printf("tracks: %v\n", r.numTracks)
	fmt.Printf("notes: %v\n", r.numNotes)
	fmt.Printf("bytes: %v\n", r.numBytes)
}
