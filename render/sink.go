package render

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Target names a single text slot of the output surface.
type Target int

const (
	Greeting Target = iota
	Date
	Time
	Temp
	Condition
	Place
)

var targetNames = map[Target]string{
	Greeting:  "greeting",
	Date:      "date",
	Time:      "time",
	Temp:      "temp",
	Condition: "condition",
	Place:     "place",
}

func (t Target) String() string {
	if name, ok := targetNames[t]; ok {
		return name
	}
	return fmt.Sprintf("target(%d)", int(t))
}

// Day is the content of one cell of the weekly strip.
type Day struct {
	Label     string
	Temp      string
	Condition string
}

// Sink is the output surface the pipeline writes into.
type Sink interface {
	Set(target Target, text string)
	// SetDay replaces the content of cell i, 0 <= i < Days().
	SetDay(i int, day Day)
	Days() int
}

// Flusher is implemented by sinks that publish their content in frames.
type Flusher interface {
	Flush()
}

// Snapshot is a copy of a Board's content.
type Snapshot struct {
	Text map[Target]string
	Days []Day
}

// Board is an in-memory Sink safe for concurrent use.
type Board struct {
	mu   sync.Mutex
	text map[Target]string
	days []Day
}

func NewBoard(days int) *Board {
	return &Board{
		text: make(map[Target]string),
		days: make([]Day, max(days, 0)),
	}
}

func (b *Board) Set(target Target, text string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.text[target] = text
}

func (b *Board) SetDay(i int, day Day) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if i < 0 || i >= len(b.days) {
		return
	}
	b.days[i] = day
}

func (b *Board) Days() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.days)
}

func (b *Board) Get(target Target) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.text[target]
}

func (b *Board) Day(i int) Day {
	b.mu.Lock()
	defer b.mu.Unlock()

	if i < 0 || i >= len(b.days) {
		return Day{}
	}
	return b.days[i]
}

func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := Snapshot{
		Text: make(map[Target]string, len(b.text)),
		Days: make([]Day, len(b.days)),
	}
	for k, v := range b.text {
		s.Text[k] = v
	}
	copy(s.Days, b.days)

	return s
}

// Terminal is a Board that prints a frame to w on every flush.
type Terminal struct {
	*Board

	mu sync.Mutex
	w  io.Writer
}

func NewTerminal(w io.Writer, days int) *Terminal {
	return &Terminal{
		Board: NewBoard(days),
		w:     w,
	}
}

func (t *Terminal) Flush() {
	snapshot := t.Snapshot()

	t.mu.Lock()
	defer t.mu.Unlock()

	_ = Fprint(t.w, snapshot)
}

// Fprint writes a snapshot as a small text frame.
func Fprint(w io.Writer, s Snapshot) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\t%s  %s\n", s.Text[Greeting], s.Text[Date], s.Text[Time])
	if place := s.Text[Place]; place != "" {
		fmt.Fprintf(&b, "%s\n", place)
	}
	fmt.Fprintf(&b, "%s  %s\n", s.Text[Temp], s.Text[Condition])

	if len(s.Days) > 0 {
		b.WriteString("DAY\t")
		for _, day := range s.Days {
			fmt.Fprintf(&b, "%-14s", day.Label)
		}
		b.WriteString("\nTEMP\t")
		for _, day := range s.Days {
			fmt.Fprintf(&b, "%-14s", day.Temp)
		}
		b.WriteString("\nSKY\t")
		for _, day := range s.Days {
			fmt.Fprintf(&b, "%-14s", day.Condition)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
