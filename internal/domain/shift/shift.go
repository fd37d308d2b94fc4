package shift

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Shift is the closed set of work shifts. Every time of day maps to
// exactly one shift; there is no "unknown" bucket at runtime.
type Shift int

const (
	Morning Shift = iota
	Afternoon
	Night
)

var (
	ErrIncompleteInput = errors.New("check-in and check-out are both required")
	ErrUnknownShift    = errors.New("unknown shift tag")
	ErrInvalidClock    = errors.New("invalid clock time, expected HH:MM")
)

func (s Shift) String() string {
	switch s {
	case Morning:
		return "morning"
	case Afternoon:
		return "afternoon"
	case Night:
		return "night"
	}
	return "unknown"
}

// Parse converts a stored shift tag back into a Shift.
func Parse(tag string) (Shift, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "morning":
		return Morning, nil
	case "afternoon":
		return Afternoon, nil
	case "night":
		return Night, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShift, tag)
}

// ClockTime is a time of day without a date, minute precision.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClock parses "HH:MM" (seconds, if present, are dropped).
func ParseClock(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

// Minutes returns minutes since midnight.
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Window is a shift's expected working window. End falls on the next
// calendar day when CrossesMidnight is set.
type Window struct {
	Start           ClockTime
	End             ClockTime
	CrossesMidnight bool
}

// Window returns the expected window for the shift. The start times
// double as the classification boundaries, so checking in exactly at a
// shift's start yields zero lateness.
func (s Shift) Window() (Window, error) {
	switch s {
	case Morning:
		return Window{Start: ClockTime{5, 0}, End: ClockTime{13, 0}}, nil
	case Afternoon:
		return Window{Start: ClockTime{13, 0}, End: ClockTime{22, 0}}, nil
	case Night:
		return Window{Start: ClockTime{22, 0}, End: ClockTime{7, 0}, CrossesMidnight: true}, nil
	}
	return Window{}, ErrUnknownShift
}

// Classify maps a check-in time to its shift using half-open buckets:
// [05:00,13:00) morning, [13:00,22:00) afternoon, the rest night.
func Classify(t ClockTime) Shift {
	m := t.Minutes()
	switch {
	case m >= 5*60 && m < 13*60:
		return Morning
	case m >= 13*60 && m < 22*60:
		return Afternoon
	default:
		return Night
	}
}

// Result holds the derived minute counts for one attendance day.
type Result struct {
	LatenessMinutes int
	OvertimeMinutes int
}

// ComputeLatenessOvertime derives lateness and overtime minutes for a
// check-in/check-out pair against the shift's expected window.
//
// Lateness = max(0, checkIn - expectedStart), overtime =
// max(0, checkOut - expectedEnd). For the night shift the times carry no
// date, so they are placed on a synthetic two-day timeline: anything at
// or after the shift start belongs to day 0, anything before it (an
// early-morning check-out) to day 1.
//
// A missing check-in or check-out returns ErrIncompleteInput so callers
// can tell "computed zero" apart from "could not compute".
func ComputeLatenessOvertime(checkIn, checkOut *ClockTime, s Shift) (Result, error) {
	if checkIn == nil || checkOut == nil {
		return Result{}, ErrIncompleteInput
	}

	w, err := s.Window()
	if err != nil {
		return Result{}, err
	}

	start := w.Start.Minutes()
	end := w.End.Minutes()
	in := checkIn.Minutes()
	out := checkOut.Minutes()

	if w.CrossesMidnight {
		end += 24 * 60
		if in < start {
			in += 24 * 60
		}
		if out < start {
			out += 24 * 60
		}
	}

	res := Result{
		LatenessMinutes: in - start,
		OvertimeMinutes: out - end,
	}
	if res.LatenessMinutes < 0 {
		res.LatenessMinutes = 0
	}
	if res.OvertimeMinutes < 0 {
		res.OvertimeMinutes = 0
	}
	return res, nil
}
