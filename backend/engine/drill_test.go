package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceBasePairsAndScores(t *testing.T) {
	d := NewDrill()

	res, err := d.PlaceBase(StrandA, 0, 'A')
	assert.NoError(t, err)
	assert.False(t, res.Paired)
	assert.Equal(t, 0, d.Score())

	res, err = d.PlaceBase(StrandB, 0, 'T')
	assert.NoError(t, err)
	assert.True(t, res.Paired)
	assert.Equal(t, PointsPerPair, d.Score())
	assert.Equal(t, 1, d.PairedCount())

	// Mismatched opposite does not pair.
	_, err = d.PlaceBase(StrandA, 1, 'G')
	assert.NoError(t, err)
	res, err = d.PlaceBase(StrandB, 1, 'A')
	assert.NoError(t, err)
	assert.False(t, res.Paired)
	assert.Equal(t, PointsPerPair, d.Score())
}

func TestPlaceBaseInvalidInput(t *testing.T) {
	d := NewDrill()

	_, err := d.PlaceBase(StrandA, -1, 'A')
	assert.ErrorIs(t, err, ErrInvalidDrillMove)
	_, err = d.PlaceBase(StrandA, DrillSlots, 'A')
	assert.ErrorIs(t, err, ErrInvalidDrillMove)
	_, err = d.PlaceBase(StrandA, 0, 'X')
	assert.ErrorIs(t, err, ErrInvalidDrillMove)
	_, err = d.PlaceBase(Strand(7), 0, 'A')
	assert.ErrorIs(t, err, ErrInvalidDrillMove)
}

func TestPlaceOntoOccupiedSlotReplaces(t *testing.T) {
	d := NewDrill()

	d.PlaceBase(StrandA, 2, 'G')
	d.PlaceBase(StrandB, 2, 'C')
	assert.Equal(t, PointsPerPair, d.Score())

	// Replacing a paired base revokes the old pairing first. The new base
	// does not complement the opposite, so the pair is gone.
	res, err := d.PlaceBase(StrandA, 2, 'A')
	assert.NoError(t, err)
	assert.False(t, res.Paired)
	assert.Equal(t, 0, d.Score())
	assert.Equal(t, 0, d.PairedCount())

	// Replacing with the complement pairs again.
	res, _ = d.PlaceBase(StrandA, 2, 'G')
	assert.True(t, res.Paired)
	assert.Equal(t, PointsPerPair, d.Score())
}

func TestRemoveBase(t *testing.T) {
	d := NewDrill()

	// Removing an empty slot is a no-op.
	assert.NoError(t, d.RemoveBase(StrandA, 3))
	assert.Equal(t, 0, d.Score())

	d.PlaceBase(StrandA, 2, 'A')
	d.PlaceBase(StrandB, 2, 'T')
	assert.Equal(t, PointsPerPair, d.Score())

	// Removing one side of a pair revokes the points and clears the paired
	// flag on the surviving base.
	assert.NoError(t, d.RemoveBase(StrandA, 2))
	assert.Equal(t, 0, d.Score())
	assert.Equal(t, 0, d.PairedCount())

	snap := d.Snapshot()
	assert.Equal(t, "", snap[StrandA][2].Base)
	assert.Equal(t, "T", snap[StrandB][2].Base)
	assert.False(t, snap[StrandB][2].Paired)
}

func TestCompletionFiresOnce(t *testing.T) {
	d := NewDrill()
	bases := []byte{'A', 'T', 'G', 'C', 'A', 'G'}

	var completed bool
	for pos, base := range bases {
		d.PlaceBase(StrandA, pos, base)
		res, err := d.PlaceBase(StrandB, pos, complement(base))
		assert.NoError(t, err)
		assert.True(t, res.Paired)
		completed = res.Completed
	}
	assert.True(t, completed)
	assert.Equal(t, DrillSlots*PointsPerPair, d.Score())

	// Break and restore a pair: completion does not fire a second time.
	d.RemoveBase(StrandA, 0)
	res, _ := d.PlaceBase(StrandA, 0, 'A')
	assert.True(t, res.Paired)
	assert.False(t, res.Completed)

	_, checkCompleted := d.CheckPairing()
	assert.False(t, checkCompleted)
}

func TestCheckPairingAgreesWithIncremental(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	bases := []byte{'A', 'T', 'G', 'C'}

	for trial := 0; trial < 200; trial++ {
		d := NewDrill()
		for op := 0; op < 30; op++ {
			strand := Strand(rng.Intn(2))
			pos := rng.Intn(DrillSlots)
			if rng.Intn(4) == 0 {
				d.RemoveBase(strand, pos)
			} else {
				d.PlaceBase(strand, pos, bases[rng.Intn(len(bases))])
			}
		}

		incremental := d.Score()
		incrementalCount := d.PairedCount()
		recomputed, _ := d.CheckPairing()
		assert.Equal(t, incremental, recomputed, "trial %d", trial)
		assert.Equal(t, incrementalCount, d.PairedCount(), "trial %d", trial)
	}
}

func TestReset(t *testing.T) {
	d := NewDrill()
	d.PlaceBase(StrandA, 0, 'A')
	d.PlaceBase(StrandB, 0, 'T')
	d.Reset()

	assert.Equal(t, 0, d.Score())
	assert.Equal(t, 0, d.PairedCount())
	snap := d.Snapshot()
	for s := 0; s < 2; s++ {
		for pos := 0; pos < DrillSlots; pos++ {
			assert.Equal(t, "", snap[s][pos].Base)
		}
	}
}
