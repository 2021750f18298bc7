// Package sheet renders a printable character-sheet PDF (old-parchment
// style) for the selected character.
package sheet

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"magician/internal/game"
)

const (
	pageW     = 595
	pageH     = 842
	margin    = 48
	titleSize = 20
	headSize  = 12
	bodySize  = 10
	rowH      = 18.0
)

// Generate returns PDF bytes for a one-page character sheet: name, path,
// the six attributes, derived health and mana, and the starting inventory.
func Generate(c *game.Character, username string) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("no character selected")
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Parchment background
	pdf.SetFillColor(245, 235, 210)
	pdf.Rect(0, 0, pageW, pageH, "F")

	// Brown ink
	pdf.SetDrawColor(80, 50, 30)
	pdf.SetTextColor(80, 50, 30)
	pdf.SetLineWidth(1)

	// Title block
	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.SetXY(margin, margin)
	pdf.CellFormat(pageW-2*margin, 24, c.Name, "", 0, "C", false, 0, "")
	pdf.SetFont("Helvetica", "I", headSize)
	pdf.SetXY(margin, margin+26)
	pdf.CellFormat(pageW-2*margin, 16, "Path of the "+c.Path, "", 0, "C", false, 0, "")
	if username != "" {
		pdf.SetFont("Helvetica", "", bodySize)
		pdf.SetXY(margin, margin+44)
		pdf.CellFormat(pageW-2*margin, 12, "Played by "+username, "", 0, "C", false, 0, "")
	}
	pdf.Line(margin, margin+66, pageW-margin, margin+66)

	y := float64(margin) + 84

	// Attributes, fixed order
	y = section(pdf, y, "Attributes")
	rows := [][2]string{
		{"Strength", fmt.Sprintf("%d", c.Attributes.Strength)},
		{"Constitution", fmt.Sprintf("%d", c.Attributes.Constitution)},
		{"Agility", fmt.Sprintf("%d", c.Attributes.Agility)},
		{"Intelligence", fmt.Sprintf("%d", c.Attributes.Intelligence)},
		{"Willpower", fmt.Sprintf("%d", c.Attributes.Willpower)},
		{"Charisma", fmt.Sprintf("%d", c.Attributes.Charisma)},
	}
	y = table(pdf, y, rows)

	// Derived stats, recomputed here like everywhere else
	y = section(pdf, y+10, "Derived")
	y = table(pdf, y, [][2]string{
		{"Health", fmt.Sprintf("%d", c.MaxHealth())},
		{"Mana", fmt.Sprintf("%d", c.MaxMana())},
	})

	y = section(pdf, y+10, "Inventory")
	pdf.SetFont("Helvetica", "", bodySize)
	for _, item := range c.Inventory {
		pdf.SetXY(margin+12, y)
		pdf.CellFormat(pageW-2*margin-12, rowH, "- "+item, "", 0, "L", false, 0, "")
		y += rowH
	}

	// Description footer
	pdf.SetFont("Helvetica", "I", bodySize)
	pdf.SetXY(margin, y+18)
	pdf.MultiCell(pageW-2*margin, 14, c.Description, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, y float64, title string) float64 {
	pdf.SetFont("Helvetica", "B", headSize)
	pdf.SetXY(margin, y)
	pdf.CellFormat(pageW-2*margin, rowH, title, "", 0, "L", false, 0, "")
	pdf.Line(margin, y+rowH, pageW-margin, y+rowH)
	return y + rowH + 6
}

func table(pdf *gofpdf.Fpdf, y float64, rows [][2]string) float64 {
	pdf.SetFont("Helvetica", "", bodySize)
	for _, row := range rows {
		pdf.SetXY(margin+12, y)
		pdf.CellFormat(140, rowH, row[0], "", 0, "L", false, 0, "")
		pdf.SetXY(margin+160, y)
		pdf.CellFormat(60, rowH, row[1], "", 0, "R", false, 0, "")
		y += rowH
	}
	return y
}
