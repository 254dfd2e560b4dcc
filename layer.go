package contour

import "strconv"

// LayerIndex numbers the layers of a sliced model. It is a facade: it
// behaves exactly like an integer, but having a distinct type prevents
// a layer number from being confused with other integer quantities.
//
// Raft layers sit below the model and have negative indices.
type LayerIndex int

func (l LayerIndex) String() string {
	return strconv.Itoa(int(l))
}
