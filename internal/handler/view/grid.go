package view

import (
	"embed"
	"html/template"

	"weekboard/internal/domain/booking"
)

//go:embed templates/*.html
var templates embed.FS

// Template parses the embedded grid template for gin's HTML renderer.
func Template() *template.Template {
	return template.Must(template.ParseFS(templates, "templates/*.html"))
}

// GridPage is the render model for the weekly grid: one row per time
// label, one cell per weekday, built from the grid projection.
type GridPage struct {
	Week string
	Days []string
	Rows []GridRow
}

type GridRow struct {
	Time  string
	Cells []GridCell
}

type GridCell struct {
	Day    string
	Time   string
	ID     int64
	Name   string
	Booked bool
}

func NewGridPage(grid *booking.Grid) GridPage {
	weekdays := booking.Weekdays()

	days := make([]string, len(weekdays))
	for i, d := range weekdays {
		days[i] = string(d)
	}

	labels := booking.TimeLabels()
	rows := make([]GridRow, len(labels))
	for i, label := range labels {
		cells := make([]GridCell, len(weekdays))
		for j, day := range weekdays {
			cell := GridCell{Day: string(day), Time: string(label)}
			if c, ok := grid.Cell(day, label); ok {
				cell.ID = c.BookingID
				cell.Name = c.Name
				cell.Booked = true
			}
			cells[j] = cell
		}
		rows[i] = GridRow{Time: string(label), Cells: cells}
	}

	return GridPage{
		Week: grid.Week().String(),
		Days: days,
		Rows: rows,
	}
}
