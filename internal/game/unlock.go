package game

// ComputeUnlockCeiling returns the ceiling of the highest threshold already
// met by caught. The result depends on caught alone, so it can be rebuilt from
// the store at startup.
func ComputeUnlockCeiling(caught int, table ThresholdTable) (maxID int, region string) {
	for _, t := range table {
		if t.UnlockCount > caught {
			break
		}
		maxID = t.MaxID
		region = t.Region
	}
	return maxID, region
}

// NextUnlock reports the single highest threshold crossed since the ceiling
// was prevMax. ok=false means the ceiling did not move.
func NextUnlock(prevMax, caught int, table ThresholdTable) (t Threshold, ok bool) {
	for _, candidate := range table {
		if candidate.UnlockCount > caught {
			break
		}
		if candidate.MaxID > prevMax {
			t, ok = candidate, true
		}
	}
	return t, ok
}

// UnlockState is the current ceiling. It never moves down.
type UnlockState struct {
	MaxID int
}

func NewUnlockState(caught int, table ThresholdTable) UnlockState {
	maxID, _ := ComputeUnlockCeiling(caught, table)
	return UnlockState{MaxID: maxID}
}

// Advance applies a new capture count and returns the threshold that was
// newly crossed, if any.
func (u *UnlockState) Advance(caught int, table ThresholdTable) (Threshold, bool) {
	t, ok := NextUnlock(u.MaxID, caught, table)
	if ok {
		u.MaxID = t.MaxID
	}
	return t, ok
}

// UnlockedRegions counts regions whose interval starts below the ceiling.
func UnlockedRegions(regions []Region, maxID int) int {
	n := 0
	for _, r := range regions {
		if !Locked(r, maxID) {
			n++
		}
	}
	return n
}

// Eligible reports whether the bonus creature joins the pool.
func (b BonusRule) Eligible(caughtBelow int) bool {
	return b.ID > 0 && caughtBelow >= b.RequiredBelow
}
