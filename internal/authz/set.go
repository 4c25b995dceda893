package authz

import "sort"

// Set is a deduplicated collection of authorities.
type Set map[Authority]struct{}

// NewSet builds a set from the given authorities.
func NewSet(authorities ...Authority) Set {
	set := make(Set, len(authorities))
	for _, a := range authorities {
		set[a] = struct{}{}
	}
	return set
}

// Has reports whether the authority is in the set.
func (s Set) Has(a Authority) bool {
	_, ok := s[a]
	return ok
}

// AddAll unions the other set into this one.
func (s Set) AddAll(other Set) {
	for a := range other {
		s[a] = struct{}{}
	}
}

// Slice returns the authorities in sorted order.
func (s Set) Slice() []Authority {
	out := make([]Authority, 0, len(s))
	for a := range s {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Strings returns the sorted authority names.
func (s Set) Strings() []string {
	authorities := s.Slice()
	out := make([]string, len(authorities))
	for i, a := range authorities {
		out[i] = string(a)
	}
	return out
}
