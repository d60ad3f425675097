package systems

import "github.com/pthm-cable/snake/components"

// Steer records a direction request for the next tick. Requests that would
// reverse the committed direction, repeat it, or carry no direction are
// rejected and leave any earlier pending request in place.
func Steer(h *components.Heading, requested components.Direction) bool {
	if requested == components.DirNone {
		return false
	}
	if requested == h.Current || requested.IsOpposite(h.Current) {
		return false
	}
	h.Pending = requested
	return true
}

// ApplySteering commits the pending request at the tick boundary.
func ApplySteering(h *components.Heading) {
	if h.Pending != components.DirNone {
		h.Current = h.Pending
		h.Pending = components.DirNone
	}
}
