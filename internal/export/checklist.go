// Package export renders the catalog as a printable checklist PDF.
package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/appengine-ltd/pokedex/internal/catalog"
	"github.com/appengine-ltd/pokedex/internal/game"
)

const (
	margin     = 36.0
	headerH    = 40.0
	rowH       = 13.0
	columns    = 3
	boxSize    = 8.0
	fontSize   = 8.0
	titleSize  = 16.0
	regionSize = 10.0
)

type Options struct {
	Title string
	// RevealUnseen prints names of creatures never seen. Otherwise they read
	// "???" like on the device.
	RevealUnseen bool
}

// Section is one region heading and the creatures filed under it.
type Section struct {
	Region    string
	Creatures []catalog.Creature
}

// Group files creatures under the regions that own their ids, in region
// order. Creatures outside every region land in a trailing "Other" section.
func Group(creatures []catalog.Creature, regions []game.Region) []Section {
	sections := make([]Section, len(regions))
	for i, r := range regions {
		sections[i].Region = r.Name
	}
	var other []catalog.Creature
	for _, c := range creatures {
		placed := false
		for i, r := range regions {
			if r.Contains(c.ID) {
				sections[i].Creatures = append(sections[i].Creatures, c)
				placed = true
				break
			}
		}
		if !placed {
			other = append(other, c)
		}
	}
	out := sections[:0]
	for _, s := range sections {
		if len(s.Creatures) > 0 {
			out = append(out, s)
		}
	}
	if len(other) > 0 {
		out = append(out, Section{Region: "Other", Creatures: other})
	}
	return out
}

// Checklist renders sections as an A4 PDF with one checkbox per creature.
// Caught entries are ticked and shiny ones starred.
func Checklist(sections []Section, opts Options) ([]byte, error) {
	if opts.Title == "" {
		opts.Title = "Pokédex"
	}
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, pageH := pdf.GetPageSize()
	colW := (pageW - 2*margin) / columns
	rowsPerCol := int((pageH - 2*margin - headerH) / rowH)

	caught, total := 0, 0
	for _, s := range sections {
		for _, c := range s.Creatures {
			total++
			if c.Caught {
				caught++
			}
		}
	}

	page := 0
	slot := 0
	newPage := func() {
		pdf.AddPage()
		page++
		slot = 0
		pdf.SetTextColor(200, 42, 42)
		pdf.SetFont("Helvetica", "B", titleSize)
		pdf.SetXY(margin, margin)
		pdf.CellFormat(pageW-2*margin, titleSize+2, tr(opts.Title), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", fontSize)
		pdf.SetTextColor(80, 80, 80)
		pdf.SetXY(margin, margin)
		pdf.CellFormat(pageW-2*margin, titleSize+2, fmt.Sprintf("%d / %d  -  page %d", caught, total, page), "", 0, "R", false, 0, "")
		pdf.SetDrawColor(200, 42, 42)
		pdf.Line(margin, margin+headerH-8, pageW-margin, margin+headerH-8)
	}
	cell := func() (float64, float64) {
		col, row := slot/rowsPerCol, slot%rowsPerCol
		return margin + float64(col)*colW, margin + headerH + float64(row)*rowH
	}
	next := func() {
		slot++
		if slot >= rowsPerCol*columns {
			newPage()
		}
	}

	newPage()
	for _, s := range sections {
		// Keep a heading with at least one entry below it.
		if slot%rowsPerCol == rowsPerCol-1 {
			next()
		}
		x, y := cell()
		pdf.SetFont("Helvetica", "B", regionSize)
		pdf.SetTextColor(40, 40, 40)
		pdf.SetXY(x, y)
		pdf.CellFormat(colW, rowH, tr(s.Region), "", 0, "L", false, 0, "")
		next()

		pdf.SetFont("Helvetica", "", fontSize)
		for _, c := range s.Creatures {
			x, y := cell()
			drawEntry(pdf, tr, c, x, y, colW, opts.RevealUnseen)
			next()
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render checklist: %w", err)
	}
	return buf.Bytes(), nil
}

func drawEntry(pdf *gofpdf.Fpdf, tr func(string) string, c catalog.Creature, x, y, w float64, reveal bool) {
	boxY := y + (rowH-boxSize)/2
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.6)
	pdf.Rect(x, boxY, boxSize, boxSize, "D")
	if c.Caught {
		pdf.SetDrawColor(40, 140, 60)
		pdf.SetLineWidth(1.2)
		pdf.Line(x+1.5, boxY+boxSize/2, x+boxSize/2.5, boxY+boxSize-1.5)
		pdf.Line(x+boxSize/2.5, boxY+boxSize-1.5, x+boxSize-1, boxY+1)
	}

	pdf.SetTextColor(30, 30, 30)
	pdf.SetXY(x+boxSize+4, y)
	pdf.CellFormat(w-boxSize-4, rowH, tr(EntryLabel(c, reveal)), "", 0, "L", false, 0, "")
}

// EntryLabel is the printed line for c.
func EntryLabel(c catalog.Creature, reveal bool) string {
	name := c.Name
	if name == "" {
		name = c.NameEN
	}
	if !reveal && !c.Seen && !c.Caught {
		name = "???"
	}
	label := fmt.Sprintf("#%03d %s", c.ID, name)
	if c.IsShiny {
		label += " *"
	}
	return label
}
