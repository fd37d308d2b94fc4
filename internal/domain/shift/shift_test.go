package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(h, m int) *ClockTime {
	return &ClockTime{Hour: h, Minute: m}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		input   string
		want    ClockTime
		wantErr bool
	}{
		{"07:30", ClockTime{7, 30}, false},
		{"00:00", ClockTime{0, 0}, false},
		{"23:59", ClockTime{23, 59}, false},
		{"9:05", ClockTime{9, 5}, false},
		{"08:15:30", ClockTime{8, 15}, false},
		{"24:00", ClockTime{}, true},
		{"12:60", ClockTime{}, true},
		{"abc", ClockTime{}, true},
		{"", ClockTime{}, true},
	}
	for _, c := range cases {
		got, err := ParseClock(c.input)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q) expected error, got %v", c.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q) unexpected error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseClock(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestClassifyPartitionsTheDay(t *testing.T) {
	// Every minute of the day must land in exactly one shift.
	counts := map[Shift]int{}
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			counts[Classify(ClockTime{h, m})]++
		}
	}
	assert.Equal(t, 8*60, counts[Morning], "morning covers [05:00,13:00)")
	assert.Equal(t, 9*60, counts[Afternoon], "afternoon covers [13:00,22:00)")
	assert.Equal(t, 7*60, counts[Night], "night covers the remainder")
}

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		in   ClockTime
		want Shift
	}{
		{ClockTime{5, 0}, Morning},
		{ClockTime{12, 59}, Morning},
		{ClockTime{13, 0}, Afternoon},
		{ClockTime{21, 59}, Afternoon},
		{ClockTime{22, 0}, Night},
		{ClockTime{23, 59}, Night},
		{ClockTime{0, 0}, Night},
		{ClockTime{4, 59}, Night},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Classify(c.in), "Classify(%s)", c.in)
	}
}

func TestComputeExactWindowIsZero(t *testing.T) {
	for _, s := range []Shift{Morning, Afternoon} {
		w, err := s.Window()
		require.NoError(t, err)

		res, err := ComputeLatenessOvertime(&w.Start, &w.End, s)
		require.NoError(t, err)
		assert.Zero(t, res.LatenessMinutes, "%s lateness", s)
		assert.Zero(t, res.OvertimeMinutes, "%s overtime", s)
	}
}

func TestComputeMorningShift(t *testing.T) {
	res, err := ComputeLatenessOvertime(clock(5, 25), clock(13, 40), Morning)
	require.NoError(t, err)
	assert.Equal(t, 25, res.LatenessMinutes)
	assert.Equal(t, 40, res.OvertimeMinutes)

	// Early check-in and early check-out both clamp to zero.
	res, err = ComputeLatenessOvertime(clock(4, 30), clock(12, 0), Morning)
	require.NoError(t, err)
	assert.Zero(t, res.LatenessMinutes)
	assert.Zero(t, res.OvertimeMinutes)
}

func TestComputeNightShiftCrossesMidnight(t *testing.T) {
	// Check-in 23:50 is 110 minutes after the 22:00 start; check-out
	// 07:30 is on the next calendar day, 30 minutes past the 07:00 end.
	res, err := ComputeLatenessOvertime(clock(23, 50), clock(7, 30), Night)
	require.NoError(t, err)
	assert.Equal(t, 110, res.LatenessMinutes)
	assert.Equal(t, 30, res.OvertimeMinutes)
}

func TestComputeNightShiftOnTime(t *testing.T) {
	res, err := ComputeLatenessOvertime(clock(22, 0), clock(7, 0), Night)
	require.NoError(t, err)
	assert.Zero(t, res.LatenessMinutes)
	assert.Zero(t, res.OvertimeMinutes)

	// Early morning check-in belongs to day 1: heavily late, no overtime
	// when leaving before the expected end.
	res, err = ComputeLatenessOvertime(clock(1, 0), clock(6, 0), Night)
	require.NoError(t, err)
	assert.Equal(t, 3*60, res.LatenessMinutes)
	assert.Zero(t, res.OvertimeMinutes)
}

func TestComputeIncompleteInput(t *testing.T) {
	_, err := ComputeLatenessOvertime(nil, clock(13, 0), Morning)
	assert.ErrorIs(t, err, ErrIncompleteInput)

	_, err = ComputeLatenessOvertime(clock(5, 0), nil, Morning)
	assert.ErrorIs(t, err, ErrIncompleteInput)
}

func TestComputeUnknownShift(t *testing.T) {
	_, err := ComputeLatenessOvertime(clock(5, 0), clock(13, 0), Shift(99))
	assert.ErrorIs(t, err, ErrUnknownShift)
}

func TestComputeIsDeterministic(t *testing.T) {
	first, err := ComputeLatenessOvertime(clock(23, 50), clock(7, 30), Night)
	require.NoError(t, err)
	second, err := ComputeLatenessOvertime(clock(23, 50), clock(7, 30), Night)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseShiftTag(t *testing.T) {
	for _, s := range []Shift{Morning, Afternoon, Night} {
		parsed, err := Parse(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := Parse("graveyard")
	assert.ErrorIs(t, err, ErrUnknownShift)
}
