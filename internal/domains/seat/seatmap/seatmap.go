// Package seatmap lays a bus's seats out as rows and applies seat clicks to a selection.
//
// A Map is built from the flat seat list the bus management API returns. Seats are
// ordered by the integer that follows the one-character prefix of their number, so R09
// comes before R10, and are then cut into rows of a fixed width. Clicking a booked seat
// does nothing, clicking a regular seat toggles it, and clicking a priority seat asks
// for an eligibility confirmation first. The package never performs I/O.
package seatmap

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"unicode"
	"unicode/utf8"

	"busbooking/internal/domains/seat/model"
)

const (
	DefaultRowWidth = 4

	elderlyEligibilityPrompt  = "This is a priority seat reserved for elderly passengers. Please ensure you meet the eligibility criteria."
	pregnantEligibilityPrompt = "This is a priority seat reserved for pregnant passengers. Please ensure you meet the eligibility criteria."
)

var (
	ErrUnknownSeat           = errors.New("seat is not part of this bus")
	ErrNoPendingConfirmation = errors.New("seat is not awaiting confirmation")
)

// SeatIndex is the numeric part of a seat number.
type SeatIndex int

type ParseError struct {
	SeatNumber string
	Reason     string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid seat number %q: %s", e.SeatNumber, e.Reason)
}

// ParseSeatNumber accepts exactly one non-digit prefix character followed by decimal digits.
func ParseSeatNumber(number string) (SeatIndex, error) {
	if number == "" {
		return 0, &ParseError{SeatNumber: number, Reason: "empty"}
	}

	prefix, size := utf8.DecodeRuneInString(number)
	if prefix == utf8.RuneError || unicode.IsDigit(prefix) {
		return 0, &ParseError{SeatNumber: number, Reason: "missing prefix"}
	}

	digits := number[size:]
	if digits == "" {
		return 0, &ParseError{SeatNumber: number, Reason: "missing index"}
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, &ParseError{SeatNumber: number, Reason: "index is not a decimal number"}
		}
	}

	index, err := strconv.Atoi(digits)
	if err != nil {
		return 0, &ParseError{SeatNumber: number, Reason: "index out of range"}
	}

	return SeatIndex(index), nil
}

type VisualState string

const (
	StateSelected  VisualState = "selected"
	StateBooked    VisualState = "booked"
	StatePriority  VisualState = "priority"
	StateAvailable VisualState = "available"
)

// StateOf applies the precedence selected > booked > priority > available.
func StateOf(selected bool, status model.Status, seatType model.Type) VisualState {
	switch {
	case selected:
		return StateSelected
	case !status.Available():
		return StateBooked
	case seatType.Priority():
		return StatePriority
	default:
		return StateAvailable
	}
}

// EligibilityPrompt is the confirmation text shown before a priority seat is taken.
func EligibilityPrompt(seatType model.Type) string {
	if seatType == model.TypePregnant {
		return pregnantEligibilityPrompt
	}

	return elderlyEligibilityPrompt
}

type Cell struct {
	model.Seat
	Index    SeatIndex   `json:"index"`
	Selected bool        `json:"selected"`
	State    VisualState `json:"state"`
}

type Row []Cell

// ToggleFunc observes every applied toggle with the selection as it is after the toggle.
type ToggleFunc func(seatNumber string, selected bool, selection Selection)

type Map struct {
	cells     []Cell
	byNumber  map[string]int
	rowWidth  int
	selection Selection
	onToggle  ToggleFunc
	pending   string
}

// Build fails with a *ParseError on the first malformed or duplicated seat number.
func Build(seats []model.Seat, selected []string, rowWidth int, onToggle ToggleFunc) (*Map, error) {
	if rowWidth <= 0 {
		rowWidth = DefaultRowWidth
	}

	cells := make([]Cell, len(seats))
	for i, seat := range seats {
		index, err := ParseSeatNumber(seat.SeatNumber)
		if err != nil {
			return nil, err
		}

		cells[i] = Cell{Seat: seat, Index: index}
	}

	sort.SliceStable(cells, func(i, j int) bool {
		return cells[i].Index < cells[j].Index
	})

	m := &Map{
		cells:     cells,
		byNumber:  make(map[string]int, len(cells)),
		rowWidth:  rowWidth,
		selection: NewSelection(selected...),
		onToggle:  onToggle,
	}

	for i := range m.cells {
		number := m.cells[i].SeatNumber
		if _, ok := m.byNumber[number]; ok {
			return nil, &ParseError{SeatNumber: number, Reason: "duplicate seat number"}
		}

		m.byNumber[number] = i
		m.refresh(i)
	}

	return m, nil
}

// Rows returns ceil(n/rowWidth) rows; only the last may be short.
func (m *Map) Rows() []Row {
	rows := make([]Row, 0, (len(m.cells)+m.rowWidth-1)/m.rowWidth)

	for start := 0; start < len(m.cells); start += m.rowWidth {
		end := min(start+m.rowWidth, len(m.cells))

		row := make(Row, end-start)
		copy(row, m.cells[start:end])
		rows = append(rows, row)
	}

	return rows
}

func (m *Map) Cells() []Cell {
	cells := make([]Cell, len(m.cells))
	copy(cells, m.cells)

	return cells
}

func (m *Map) Cell(seatNumber string) (Cell, bool) {
	i, ok := m.byNumber[seatNumber]
	if !ok {
		return Cell{}, false
	}

	return m.cells[i], true
}

func (m *Map) Selection() Selection {
	return m.selection.clone()
}

func (m *Map) RowWidth() int {
	return m.rowWidth
}

// Pending is the priority seat waiting for Confirm or Decline, empty when none is.
func (m *Map) Pending() string {
	return m.pending
}

// Click applies one seat click. Every click on an available priority seat, selected or not,
// is held as pending until Confirm or Decline.
func (m *Map) Click(seatNumber string) (Outcome, error) {
	i, ok := m.byNumber[seatNumber]
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %s", ErrUnknownSeat, seatNumber)
	}

	cell := m.cells[i]

	if !cell.Status.Available() {
		return Outcome{Kind: OutcomeIgnored, SeatNumber: seatNumber, Selected: cell.Selected}, nil
	}

	if cell.Type.Priority() {
		m.pending = seatNumber

		return Outcome{
			Kind:       OutcomeConfirmationRequired,
			SeatNumber: seatNumber,
			Prompt:     EligibilityPrompt(cell.Type),
		}, nil
	}

	return m.apply(i), nil
}

// Confirm applies the toggle a previous Click deferred for seatNumber.
func (m *Map) Confirm(seatNumber string) (Outcome, error) {
	if m.pending == "" || m.pending != seatNumber {
		return Outcome{}, fmt.Errorf("%w: %s", ErrNoPendingConfirmation, seatNumber)
	}

	m.pending = ""

	return m.apply(m.byNumber[seatNumber]), nil
}

// Decline drops the pending confirmation and leaves the selection untouched.
func (m *Map) Decline() Outcome {
	seatNumber := m.pending
	m.pending = ""

	return Outcome{Kind: OutcomeIgnored, SeatNumber: seatNumber}
}

func (m *Map) apply(i int) Outcome {
	number := m.cells[i].SeatNumber
	selected := m.selection.toggle(number)

	m.refresh(i)

	if m.onToggle != nil {
		m.onToggle(number, selected, m.selection.clone())
	}

	return Outcome{Kind: OutcomeToggled, SeatNumber: number, Selected: selected}
}

func (m *Map) refresh(i int) {
	cell := &m.cells[i]
	cell.Selected = m.selection.Contains(cell.SeatNumber)
	cell.State = StateOf(cell.Selected, cell.Status, cell.Type)
}
