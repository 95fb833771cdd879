package deltastep

// Outputs is a bitmask over the optional result fields Run can populate,
// modeled on oneDAL's optional_result_id bitmask (original_source's
// oneapi::dal::preview::shortest_paths::common.hpp): a caller asks for
// exactly the fields it needs, and reading an unrequested field is a
// programming error reported through
// result.ErrUninitializedOptionalResult rather than silently returning a
// zero value.
type Outputs uint8

const (
	// Distances requests the per-vertex shortest-path distance table.
	Distances Outputs = 1 << iota
	// Predecessors requests the per-vertex shortest-path predecessor table.
	Predecessors
)

func (o Outputs) has(f Outputs) bool { return o&f != 0 }
