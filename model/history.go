package model

const historySize = 5

// History keeps the hashes of recent generations for cycle detection
type History struct {
	hashes []string
}

// Record adds a state hash to history and maintains size
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)

	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether hash repeats one of the last three recorded states,
// i.e. the simulation is static or cycling with period 3 or less
func (h *History) IsStagnant(hash string) bool {
	if len(h.hashes) < 3 {
		return false
	}

	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == hash {
			return true
		}
	}
	return false
}

// Reset forgets every recorded state
func (h *History) Reset() {
	h.hashes = nil
}
