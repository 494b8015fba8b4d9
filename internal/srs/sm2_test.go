package srs

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestSchedule_FirstPassIntervalIsOne(t *testing.T) {
	tests := []struct {
		name string
		cur  State
	}{
		{"fresh item", NewState()},
		{"stale interval left over", State{EaseFactor: 2.5, IntervalDays: 30, Repetitions: 0}},
		{"low ease factor", State{EaseFactor: 1.3, IntervalDays: 15, Repetitions: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := Schedule(FullRecall, tt.cur, testNow)

			assert.Equal(t, 1, next.Repetitions)
			assert.Equal(t, 1, next.IntervalDays)
			assert.Equal(t, testNow.AddDate(0, 0, 1), next.NextReviewAt)
		})
	}
}

func TestSchedule_SecondPassIntervalIsSix(t *testing.T) {
	cur := State{EaseFactor: 2.5, IntervalDays: 1, Repetitions: 1}

	next := Schedule(PartialRecall, cur, testNow)

	assert.Equal(t, 2, next.Repetitions)
	assert.Equal(t, 6, next.IntervalDays)
}

func TestSchedule_LaterPassesMultiplyByPreUpdateEase(t *testing.T) {
	cur := State{EaseFactor: 2.0, IntervalDays: 10, Repetitions: 2}

	next := Schedule(FullRecall, cur, testNow)

	// 10 * 2.0 uses the ease factor before this review's adjustment.
	assert.Equal(t, 20, next.IntervalDays)
	assert.InDelta(t, 2.1, next.EaseFactor, 1e-9)
}

func TestSchedule_FailResetsProgress(t *testing.T) {
	tests := []struct {
		name string
		cur  State
	}{
		{"well-learned item", State{EaseFactor: 2.8, IntervalDays: 120, Repetitions: 9}},
		{"young item", State{EaseFactor: 2.5, IntervalDays: 1, Repetitions: 1}},
		{"fresh item", NewState()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := Schedule(NoRecall, tt.cur, testNow)

			assert.Equal(t, 0, next.Repetitions)
			assert.Equal(t, 1, next.IntervalDays)
			assert.Equal(t, testNow.AddDate(0, 0, 1), next.NextReviewAt)
		})
	}
}

func TestSchedule_EaseFactorNeverBelowFloor(t *testing.T) {
	st := NewState()

	// Fail repeatedly: each NoRecall subtracts 0.54 until the floor holds.
	for i := 0; i < 10; i++ {
		st = Schedule(NoRecall, st, testNow)
		require.GreaterOrEqual(t, st.EaseFactor, 1.3)
	}

	assert.InDelta(t, 1.3, st.EaseFactor, 1e-9)
}

func TestSchedule_EaseFactorDeltas(t *testing.T) {
	tests := []struct {
		name    string
		quality Quality
		wantEF  float64
	}{
		{"full recall adds a tenth", FullRecall, 2.6},
		{"partial recall shaves a little", PartialRecall, 2.36},
		{"no recall drops hard", NoRecall, 1.96},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := Schedule(tt.quality, NewState(), testNow)
			assert.InDelta(t, tt.wantEF, next.EaseFactor, 1e-9)
		})
	}
}

func TestSchedule_IsPure(t *testing.T) {
	cur := State{EaseFactor: 2.2, IntervalDays: 14, Repetitions: 4}

	first := Schedule(PartialRecall, cur, testNow)
	second := Schedule(PartialRecall, cur, testNow)

	assert.Equal(t, first, second)
}

func TestSchedule_ThreeFullRecallsFromScratch(t *testing.T) {
	st := NewState()

	st = Schedule(FullRecall, st, testNow)
	require.Equal(t, 1, st.Repetitions)
	require.Equal(t, 1, st.IntervalDays)
	require.InDelta(t, 2.6, st.EaseFactor, 1e-9)

	st = Schedule(FullRecall, st, testNow)
	require.Equal(t, 2, st.Repetitions)
	require.Equal(t, 6, st.IntervalDays)
	require.InDelta(t, 2.7, st.EaseFactor, 1e-9)

	st = Schedule(FullRecall, st, testNow)
	require.Equal(t, 3, st.Repetitions)
	// round(6 * 2.7), with the pre-update ease factor.
	require.Equal(t, 16, st.IntervalDays)
	require.InDelta(t, 2.8, st.EaseFactor, 1e-9)
}

func TestSchedule_ToleratesCorruptedInput(t *testing.T) {
	tests := []struct {
		name string
		cur  State
	}{
		{"NaN ease factor", State{EaseFactor: math.NaN(), IntervalDays: 3, Repetitions: 2}},
		{"infinite ease factor", State{EaseFactor: math.Inf(1), IntervalDays: 3, Repetitions: 2}},
		{"negative repetitions", State{EaseFactor: 2.5, IntervalDays: 3, Repetitions: -4}},
		{"negative interval", State{EaseFactor: 2.5, IntervalDays: -7, Repetitions: 5}},
		{"ease factor below floor", State{EaseFactor: 0.9, IntervalDays: 3, Repetitions: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := Schedule(FullRecall, tt.cur, testNow)

			assert.False(t, math.IsNaN(next.EaseFactor))
			assert.GreaterOrEqual(t, next.EaseFactor, 1.3)
			assert.GreaterOrEqual(t, next.IntervalDays, 1)
			assert.GreaterOrEqual(t, next.Repetitions, 0)
			assert.True(t, next.NextReviewAt.After(testNow))
		})
	}
}
