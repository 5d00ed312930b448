package domain

import "fmt"

// EntityRef identifies a single entity by the pair (descriptor_index,
// entity_index): descriptor_index selects which entity collection,
// entity_index is the position within that collection. It is the only
// identity the scoring and move core uses (spec §3 Entity, §4.M "no
// cyclic owning references").
type EntityRef struct {
	DescriptorIndex int
	EntityIndex     int
}

// String renders "d<descriptor>:e<entity>", useful in test failure
// messages and tabu-ring debugging.
func (r EntityRef) String() string {
	return fmt.Sprintf("d%d:e%d", r.DescriptorIndex, r.EntityIndex)
}

// Less gives EntityRef a total order, used to keep self-join tuples
// canonically sorted (spec §3 Match: "strictly increasing to
// de-duplicate symmetric tuples").
func (r EntityRef) Less(o EntityRef) bool {
	if r.DescriptorIndex != o.DescriptorIndex {
		return r.DescriptorIndex < o.DescriptorIndex
	}
	return r.EntityIndex < o.EntityIndex
}
