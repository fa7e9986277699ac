package building

// IsUnlockable reports whether def may be built given the set of building IDs
// already present in the den.
//
// A non-nil override is returned as-is. Otherwise a definition with no
// required buildings is always unlockable, and one with requirements is
// unlockable iff every requirement is in built. IsUnlockable has no side
// effects and may be called speculatively.
//
// Precondition: def must not be nil; built may be nil.
func IsUnlockable(def *Definition, built map[string]bool, override *bool) bool {
	if override != nil {
		return *override
	}
	for _, req := range def.Requires() {
		if !built[req] {
			return false
		}
	}
	return true
}

// Missing returns the required building IDs of def that are not in built,
// in declaration order. It ignores overrides.
func Missing(def *Definition, built map[string]bool) []string {
	var out []string
	for _, req := range def.Requires() {
		if !built[req] {
			out = append(out, req)
		}
	}
	return out
}
