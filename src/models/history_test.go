package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHistoryBuffer(t *testing.T) {
	ts := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	t.Run("append below capacity keeps all entries", func(t *testing.T) {
		h := NewHistoryBuffer()

		for i := 0; i < 50; i++ {
			h.Append(ProfitSnapshot{Timestamp: ts, CurrentPrice: float64(i)})
		}

		assert.Equal(t, 50, h.Len())
		assert.Equal(t, 0.0, h.Snapshot()[0].CurrentPrice)
	})

	t.Run("append past capacity evicts oldest first", func(t *testing.T) {
		h := NewHistoryBuffer()

		for i := 1; i <= 101; i++ {
			h.Append(ProfitSnapshot{Timestamp: ts, CurrentPrice: float64(i)})
		}

		assert.Equal(t, HistoryCapacity, h.Len())

		snapshots := h.Snapshot()
		assert.Equal(t, 2.0, snapshots[0].CurrentPrice)
		assert.Equal(t, 101.0, snapshots[len(snapshots)-1].CurrentPrice)

		for i := 1; i < len(snapshots); i++ {
			assert.Equal(t, snapshots[i-1].CurrentPrice+1, snapshots[i].CurrentPrice)
		}
	})

	t.Run("snapshot returns a copy", func(t *testing.T) {
		h := NewHistoryBuffer()
		h.Append(ProfitSnapshot{Timestamp: ts, CurrentPrice: 600})

		snapshots := h.Snapshot()
		snapshots[0].CurrentPrice = 0

		assert.Equal(t, 600.0, h.Snapshot()[0].CurrentPrice)
	})

	t.Run("clear empties the buffer", func(t *testing.T) {
		h := NewHistoryBuffer()
		h.Append(ProfitSnapshot{Timestamp: ts, CurrentPrice: 600})
		h.Clear()

		assert.Equal(t, 0, h.Len())
	})
}

func TestRound2(t *testing.T) {
	// 600.125 is exactly representable, so this exercises the tie rule.
	assert.Equal(t, 600.13, Round2(600.125))
	assert.Equal(t, -600.13, Round2(-600.125))
	assert.Equal(t, 600.0, Round2(599.999))
	assert.Equal(t, 602.8, Round2(602.8))
}

func TestProfitSnapshotStatus(t *testing.T) {
	s := ProfitSnapshot{ProfitUp: 3.0, ProfitDown: -62.0}
	assert.Equal(t, ProfitStatusProfit, s.ProfitUpStatus())
	assert.Equal(t, ProfitStatusLoss, s.ProfitDownStatus())

	flat := ProfitSnapshot{}
	assert.Equal(t, ProfitStatusFlat, flat.ProfitUpStatus())
}
