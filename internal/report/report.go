// Package report renders entry history, insights and advice as a PDF.
package report

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/julianstephens/mindlog/internal/constants"
	"github.com/julianstephens/mindlog/internal/models"
)

// NotesWidth is the number of runes of notes shown per row
const NotesWidth = 15

// AllUsers is the title label when the report spans every user
const AllUsers = "All users"

var (
	headerColor = props.Color{Red: 50, Green: 50, Blue: 50}
	mutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	lineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

type column struct {
	title string
	size  int
}

// column sizes add up to the 12-unit maroto grid
var columns = []column{
	{"Date", 2},
	{"Name", 2},
	{"Focus", 1},
	{"Cognitive Score", 1},
	{"Sleep Hours", 1},
	{"Screen Time", 1},
	{"Mood", 1},
	{"Notes", 3},
}

// Data is everything a report shows
type Data struct {
	User     string
	Entries  []models.DailyEntry
	Insights []string
	Advice   []string
}

// Title returns the document heading for user
func Title(user string) string {
	if user == "" {
		user = AllUsers
	}
	return fmt.Sprintf("%s report - %s", constants.AppName, user)
}

// Rows returns the table cells for entries in column order
func Rows(entries []models.DailyEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Date,
			e.User,
			optionalInt(e.Focus),
			strconv.FormatFloat(e.CognitiveScore, 'f', 2, 64),
			optionalFloat(e.SleepHours),
			optionalFloat(e.ScreenTime),
			string(e.Mood),
			truncate(e.Notes, NotesWidth),
		})
	}
	return rows
}

// Build lays out the report document
func Build(d Data) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(15).
		WithRightMargin(12).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14, text.NewCol(12, Title(d.User), props.Text{
		Style: fontstyle.Bold,
		Size:  16,
		Color: &headerColor,
	}))
	m.AddRow(8, text.NewCol(12, fmt.Sprintf("%d entries", len(d.Entries)), props.Text{
		Size:  10,
		Color: &mutedColor,
	}))
	m.AddRow(4, line.NewCol(12, props.Line{Color: &lineColor}))

	var header []core.Col
	for _, c := range columns {
		header = append(header, text.NewCol(c.size, c.title, props.Text{Style: fontstyle.Bold, Size: 8}))
	}
	m.AddRow(8, header...)

	for _, row := range Rows(d.Entries) {
		cols := make([]core.Col, len(row))
		for i, cell := range row {
			cols[i] = text.NewCol(columns[i].size, cell, props.Text{Size: 8})
		}
		m.AddRow(6, cols...)
	}

	addSection(m, "Insights", d.Insights)
	addSection(m, "Advice", d.Advice)
	return m
}

// Save renders d and writes the PDF to path
func Save(d Data, path string) error {
	doc, err := Build(d).Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}
	return doc.Save(path)
}

func addSection(m core.Maroto, title string, lines []string) {
	m.AddRow(6)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &lineColor}))
	m.AddRow(9, text.NewCol(12, title, props.Text{
		Style: fontstyle.Bold,
		Size:  12,
		Color: &headerColor,
	}))
	for _, l := range lines {
		m.AddRow(6, text.NewCol(12, "- "+l, props.Text{Size: 9}))
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func optionalInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func optionalFloat(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
