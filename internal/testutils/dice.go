package testutils

// FixedRoller satisfies dice.Roller with predetermined faces. RollN returns
// the first count faces; Err, when set, fails every roll.
type FixedRoller struct {
	Faces []int
	Err   error
}

// Roll returns the first face
func (r *FixedRoller) Roll(_ int) (int, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	return r.Faces[0], nil
}

// RollN returns the first count faces
func (r *FixedRoller) RollN(count, _ int) ([]int, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Faces[:count], nil
}
