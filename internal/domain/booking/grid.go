package booking

// Cell is what the grid shows for one occupied slot.
type Cell struct {
	BookingID int64
	Name      string
}

// Grid projects a week's bookings onto the weekday × time matrix.
// Nothing prevents two bookings from occupying the same cell; the grid
// resolves the collision by letting the later entry in the sequence win.
type Grid struct {
	week  WeekID
	cells map[Slot]Cell
}

func NewGrid(week WeekID) *Grid {
	return &Grid{
		week:  week,
		cells: make(map[Slot]Cell),
	}
}

func (g *Grid) Week() WeekID { return g.week }

// Place records a booking in its cell, overwriting any earlier occupant.
// Out-of-grid slots are stored rows too; they land in no visible cell
// but must not corrupt the grid, so they are simply dropped here.
func (g *Grid) Place(slot Slot, cell Cell) {
	if !validWeekday(slot.weekday) || !validTimeLabel(slot.time) {
		return
	}
	g.cells[slot] = cell
}

func (g *Grid) Cell(weekday Weekday, time TimeLabel) (Cell, bool) {
	c, ok := g.cells[Slot{weekday: weekday, time: time}]
	return c, ok
}

func (g *Grid) Occupied() int { return len(g.cells) }
