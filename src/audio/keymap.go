package audio

// ----- Key Map ----- //

// KeyMap maps playable keys to fundamental frequencies. It is immutable once built.
type KeyMap struct {
	keys  []string
	freqs map[string]float64
}

// KeyFreq ...
type KeyFreq struct {
	Key  string
	Freq float64 // Hz
}

// NewKeyMap builds a KeyMap that keeps the order of entries. A repeated key keeps
// its first position and takes the last frequency.
func NewKeyMap(entries ...KeyFreq) *KeyMap {
	m := &KeyMap{
		keys:  make([]string, 0, len(entries)),
		freqs: make(map[string]float64, len(entries)),
	}
	for _, e := range entries {
		if _, ok := m.freqs[e.Key]; !ok {
			m.keys = append(m.keys, e.Key)
		}
		m.freqs[e.Key] = e.Freq
	}
	return m
}

// DefaultKeyMap is the top letter row. o and p repeat the pitches of q and w.
func DefaultKeyMap() *KeyMap {
	return NewKeyMap(
		KeyFreq{"q", 261.63},
		KeyFreq{"w", 293.66},
		KeyFreq{"e", 329.63},
		KeyFreq{"r", 349.23},
		KeyFreq{"t", 392.00},
		KeyFreq{"y", 440.00},
		KeyFreq{"u", 466.16},
		KeyFreq{"i", 493.88},
		KeyFreq{"o", 261.63},
		KeyFreq{"p", 293.66},
	)
}

// Keys returns the keys in display order.
func (m *KeyMap) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Frequency ...
func (m *KeyMap) Frequency(key string) (float64, bool) {
	freq, ok := m.freqs[key]
	return freq, ok
}
