package engine

// DNA base-pairing drill: two parallel strands of six slots. Placing
// complementary bases opposite each other scores points; removing a paired
// base gives them back. CheckPairing is the authoritative recompute and must
// always agree with the incremental path.

const (
	DrillSlots    = 6
	PointsPerPair = 15
)

type Strand int

const (
	StrandA Strand = iota
	StrandB
)

// complement returns the pairing partner of a base, or 0 for an invalid base.
func complement(base byte) byte {
	switch base {
	case 'A':
		return 'T'
	case 'T':
		return 'A'
	case 'G':
		return 'C'
	case 'C':
		return 'G'
	default:
		return 0
	}
}

type drillSlot struct {
	base   byte // 0 when empty
	paired bool
}

type Drill struct {
	strands     [2][DrillSlots]drillSlot
	score       int
	pairedCount int
	// completion fires once, the first time all six pairs are in place.
	completeFired bool
}

func NewDrill() *Drill {
	return &Drill{}
}

// PlaceResult reports what a placement did.
type PlaceResult struct {
	Paired    bool `json:"paired"`
	Completed bool `json:"completed"` // one-time signal at six pairs
}

// PlaceBase puts a base into a slot. Placing onto an occupied slot performs
// an implicit removal first, revoking any pairing the old base held.
func (d *Drill) PlaceBase(strand Strand, position int, base byte) (PlaceResult, error) {
	if err := d.validate(strand, position); err != nil {
		return PlaceResult{}, err
	}
	if complement(base) == 0 {
		return PlaceResult{}, ErrInvalidDrillMove
	}

	if d.strands[strand][position].base != 0 {
		if err := d.RemoveBase(strand, position); err != nil {
			return PlaceResult{}, err
		}
	}

	d.strands[strand][position] = drillSlot{base: base}

	var res PlaceResult
	opposite := &d.strands[1-strand][position]
	if opposite.base != 0 && complement(base) == opposite.base {
		d.strands[strand][position].paired = true
		opposite.paired = true
		d.score += PointsPerPair
		d.pairedCount++
		res.Paired = true
	}

	if d.pairedCount == DrillSlots && !d.completeFired {
		d.completeFired = true
		res.Completed = true
	}
	return res, nil
}

// RemoveBase clears a slot. Removing an empty slot is a no-op. If the slot
// was part of a pair, the pairing is revoked on both strands and the pair's
// points are taken back, floored at zero.
func (d *Drill) RemoveBase(strand Strand, position int) error {
	if err := d.validate(strand, position); err != nil {
		return err
	}
	slot := d.strands[strand][position]
	if slot.base == 0 {
		return nil
	}
	if slot.paired {
		d.score -= PointsPerPair
		if d.score < 0 {
			d.score = 0
		}
		if d.pairedCount > 0 {
			d.pairedCount--
		}
		d.strands[1-strand][position].paired = false
	}
	d.strands[strand][position] = drillSlot{}
	return nil
}

// CheckPairing recomputes pairing and score for all positions from scratch.
// It returns the recomputed score and the one-time completion signal if the
// recompute is what reached six pairs.
func (d *Drill) CheckPairing() (int, bool) {
	count := 0
	for pos := 0; pos < DrillSlots; pos++ {
		a := &d.strands[StrandA][pos]
		b := &d.strands[StrandB][pos]
		if a.base != 0 && b.base != 0 && complement(a.base) == b.base {
			a.paired = true
			b.paired = true
			count++
		} else {
			a.paired = false
			b.paired = false
		}
	}
	d.pairedCount = count
	d.score = count * PointsPerPair

	completed := false
	if count == DrillSlots && !d.completeFired {
		d.completeFired = true
		completed = true
	}
	return d.score, completed
}

func (d *Drill) Score() int       { return d.score }
func (d *Drill) PairedCount() int { return d.pairedCount }

func (d *Drill) Reset() {
	*d = Drill{}
}

// DrillSlotView is the serializable state of one slot.
type DrillSlotView struct {
	Base   string `json:"base"` // empty string when unoccupied
	Paired bool   `json:"paired"`
}

// Snapshot renders both strands for the caller layer.
func (d *Drill) Snapshot() [2][DrillSlots]DrillSlotView {
	var out [2][DrillSlots]DrillSlotView
	for s := 0; s < 2; s++ {
		for pos := 0; pos < DrillSlots; pos++ {
			slot := d.strands[s][pos]
			if slot.base != 0 {
				out[s][pos] = DrillSlotView{Base: string(slot.base), Paired: slot.paired}
			}
		}
	}
	return out
}

func (d *Drill) validate(strand Strand, position int) error {
	if strand != StrandA && strand != StrandB {
		return ErrInvalidDrillMove
	}
	if position < 0 || position >= DrillSlots {
		return ErrInvalidDrillMove
	}
	return nil
}
