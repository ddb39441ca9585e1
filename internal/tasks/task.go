package tasks

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// DateLayout is the long-form date used in snapshots and listings.
const DateLayout = "January 02, 2006"

// Task is a single to-do item
type Task struct {
	ID          int    `json:"id" yaml:"id" toml:"id"`
	Description string `json:"description" yaml:"description" toml:"description"`
	Complete    bool   `json:"complete" yaml:"complete" toml:"complete"`
	DateAdded   Date   `json:"date_added" yaml:"date_added" toml:"date_added"`
}

// Status returns a human-readable completion status
func (t Task) Status() string {
	if t.Complete {
		return "Complete"
	}
	return "Incomplete"
}

// Date is a calendar date without a time of day
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a date in DateLayout form
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// IsZero reports whether d is the zero date
func (d Date) IsZero() bool {
	return d == Date{}
}

// String formats d as e.g. "January 05, 2024"
func (d Date) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(DateLayout)
}

// MarshalText implements encoding.TextMarshaler
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// newTask builds the next task for a collection of the given size
func newTask(count int, description string, added Date) (Task, error) {
	description = strings.TrimSpace(strings.ToValidUTF8(description, "\uFFFD"))
	if description == "" {
		return Task{}, ErrEmptyDescription
	}
	return Task{
		ID:          count + 1,
		Description: description,
		Complete:    false,
		DateAdded:   added,
	}, nil
}

// Find returns the first task with the given ID, or nil
func Find(tasks []Task, id int) *Task {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
	}
	return nil
}

// Partition splits tasks into incomplete and complete groups,
// each keeping the original relative order
func Partition(tasks []Task) (incomplete, complete []Task) {
	incomplete = []Task{}
	complete = []Task{}
	for _, t := range tasks {
		if t.Complete {
			complete = append(complete, t)
		} else {
			incomplete = append(incomplete, t)
		}
	}
	return incomplete, complete
}

// Stats returns task statistics
func Stats(tasks []Task) (total, completed, incomplete int) {
	for _, t := range tasks {
		total++
		if t.Complete {
			completed++
		} else {
			incomplete++
		}
	}
	return
}

// validate checks a decoded task for values the store never produces
func (t Task) validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("task has non-positive id %d", t.ID)
	}
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("task %d has an empty description", t.ID)
	}
	if !utf8.ValidString(t.Description) {
		return fmt.Errorf("task %d has a description that is not valid UTF-8", t.ID)
	}
	if t.DateAdded.IsZero() {
		return fmt.Errorf("task %d has no date_added", t.ID)
	}
	return nil
}
