package highlight

import "slices"

// Prevention is a set of named reasons suppressing an item's highlights.
// Independent callers assert and retract their own names without
// clobbering each other.
type Prevention struct {
	reasons map[string]struct{}
}

// Prevent asserts (prevent=true) or retracts the named reason. Retracting
// a name that was never asserted does nothing.
func (p *Prevention) Prevent(name string, prevent bool) {
	if !prevent {
		delete(p.reasons, name)
		return
	}
	if p.reasons == nil {
		p.reasons = make(map[string]struct{})
	}
	p.reasons[name] = struct{}{}
}

// IsPreventedVia reports whether name is asserted.
func (p *Prevention) IsPreventedVia(name string) bool {
	_, ok := p.reasons[name]
	return ok
}

// IsPreventedViaAny reports whether any reason is asserted.
func (p *Prevention) IsPreventedViaAny() bool {
	return len(p.reasons) > 0
}

// Reasons returns the asserted names, sorted.
func (p *Prevention) Reasons() []string {
	out := make([]string, 0, len(p.reasons))
	for name := range p.reasons {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
