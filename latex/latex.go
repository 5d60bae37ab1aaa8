// Package latex turns sheet geometry into a XeLaTeX/TikZ document. It is a
// pure consumer of layout primitives; all musical decisions happen upstream.
package latex

import (
	"fmt"
	"strings"

	"github.com/beatmaking/rollsheet/constants"
	"github.com/beatmaking/rollsheet/model"
)

const header = `\documentclass[11pt]{article}
\usepackage[top=0.4in, bottom=0.65in, left=0.75in, right=0.75in]{geometry}
\usepackage{fontspec}
\usepackage{xcolor}
\usepackage{tikz}
\usetikzlibrary{patterns}
\usepackage{setspace}

% Font setup
\setmainfont{ElMessiri-Regular}[
    Path = ../../../assets/fonts/,
    Extension = .ttf,
    BoldFont = ElMessiri-Regular,
    BoldFeatures = {FakeBold=1.5},
]

% Define colors
\definecolor{purple}{RGB}{138,43,226}
\definecolor{blue}{RGB}{30,144,255}
\definecolor{green}{RGB}{34,139,34}
\definecolor{red}{RGB}{220,20,60}
\definecolor{orange}{RGB}{255,140,0}
\definecolor{lightgray}{RGB}{245,245,245}

\begin{document}
\pagestyle{empty}

`

const footer = `
\end{document}
`

var escaper = strings.NewReplacer(
	"#", `\#`,
	"_", `\_`,
	"&", `\&`,
	"%", `\%`,
)

func escape(s string) string {
	return escaper.Replace(s)
}

// Document renders the full sheet: title block, then one tikzpicture per
// layer, stacked with a fixed left margin so the grids align on the page.
func Document(geo model.SheetGeometry) string {
	var b strings.Builder
	b.WriteString(header)

	fmt.Fprintf(&b, "\\begin{center}\n{\\Huge\\bfseries %v}\n\\end{center}\n\n", escape(geo.Song))
	b.WriteString("\\vspace{0.05cm}\n\n")

	for _, track := range geo.Tracks {
		writeTrack(&b, track, geo.RenderedBeats)
	}

	b.WriteString(footer)
	return b.String()
}

func writeTrack(b *strings.Builder, track model.TrackGeometry, renderedBeats float64) {
	// fixed left margin for every layer, so stacked grids line up
	b.WriteString("\\noindent\\hspace{2.5cm}")
	xScale := constants.TargetWidthCm / renderedBeats
	fmt.Fprintf(b, "\\begin{tikzpicture}[xscale=%.2f, yscale=1.1]\n", xScale)

	for _, band := range track.Bands {
		fmt.Fprintf(b, "\\fill[black!8] (0,%v) rectangle (%v,%v);\n",
			band.Y, band.Width, band.Y+band.Height)
	}
	for _, line := range track.Lines {
		fmt.Fprintf(b, "\\draw[%v] (%v,%v) -- (%v,%v);\n",
			lineStyle(line.Kind), line.X1, line.Y1, line.X2, line.Y2)
	}
	for _, label := range track.Labels {
		fmt.Fprintf(b, "\\node[%v] at (%v,%v) {%v};\n",
			labelStyle(label.Kind), label.X, label.Y, escape(label.Text))
	}
	for _, note := range track.Notes {
		writeBox(b, note.Sustain, track.Color)
		writeBox(b, note.Attack, track.Color)
	}

	b.WriteString("\\end{tikzpicture}\n\n")
	b.WriteString("\\vspace{0.05cm}\n\n")
}

func writeBox(b *strings.Builder, box model.NoteBox, color string) {
	fmt.Fprintf(b, "\\fill[%v, opacity=%.2f, rounded corners=1pt] (%v,%v) rectangle (%v,%v);\n",
		color, box.Opacity, box.X, box.Y, box.X+box.Width, box.Y+box.Height)
}

func lineStyle(kind model.LineKind) string {
	switch kind {
	case model.LineBorder, model.LineBar:
		return "black, very thick"
	case model.LineBeat:
		return "gray!70"
	case model.LineEighth:
		return "gray!50"
	case model.LineSixteenth:
		return "gray!35"
	case model.LineThirtySecond:
		return "gray!20"
	case model.LinePitchC:
		return "gray!50, thick"
	default:
		return "gray!20"
	}
}

func labelStyle(kind model.LabelKind) string {
	switch kind {
	case model.LabelBar:
		return "below, font=\\large\\bfseries, overlay"
	case model.LabelBeat:
		return "below, font=\\small, gray, overlay"
	case model.LabelPitchC:
		return "anchor=east, font=\\small\\bfseries, overlay"
	case model.LabelTrackName:
		return "rotate=90, font=\\Large\\bfseries, overlay"
	default:
		return "anchor=east, font=\\small, overlay"
	}
}
