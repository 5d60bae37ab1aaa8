package latex

import (
	"strings"
	"testing"

	"github.com/beatmaking/rollsheet/layout"
	"github.com/beatmaking/rollsheet/model"
	"github.com/stretchr/testify/assert"
)

func testGeometry() model.SheetGeometry {
	sess := &model.Session{
		ID:            "test",
		Bars:          2,
		TotalBeats:    7.5,
		RenderedBeats: 8,
		Tracks: []model.Track{{
			Name:  "Keys",
			Role:  model.RoleChords,
			Color: "green",
			Notes: []model.Note{
				{Pitch: 61, Start: 0, Duration: 1, Velocity: 100},
			},
		}},
	}
	return layout.Sheet(sess, "Come Together")
}

func TestDocumentStructure(t *testing.T) {
	doc := Document(testGeometry())

	assert := assert.New(t)
	assert.Contains(doc, "\\begin{document}")
	assert.Contains(doc, "\\end{document}")
	assert.Contains(doc, "\\definecolor{purple}{RGB}{138,43,226}")
	assert.Contains(doc, "Come Together")
	assert.Contains(doc, "\\begin{tikzpicture}[xscale=1.62, yscale=1.1]")
	assert.Contains(doc, "{KEYS}")
}

func TestNoteNamesAreEscaped(t *testing.T) {
	doc := Document(testGeometry())
	// row labels around pitch 61 include sharps
	assert.Contains(t, doc, "C\\#4")
	assert.NotContains(t, doc, "{C#4}")
}

func TestNoteFillUsesTrackColor(t *testing.T) {
	doc := Document(testGeometry())
	assert.Contains(t, doc, "\\fill[green, opacity=1.00, rounded corners=1pt]")
}

func TestEscape(t *testing.T) {
	assert.Equal(t, `A\#1 \& B\_2 \%`, escape(`A#1 & B_2 %`))
}

func TestOneTikzPicturePerTrack(t *testing.T) {
	geo := testGeometry()
	geo.Tracks = append(geo.Tracks, geo.Tracks[0])
	doc := Document(geo)
	assert.Equal(t, 2, strings.Count(doc, "\\begin{tikzpicture}"))
}
