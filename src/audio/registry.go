package audio

import "sync"

// ----- Meter ----- //

// Level is a point-in-time reading of a sounding note.
type Level struct {
	RMS  float64
	Time float64 // sec since the note started
}

// Meter is the live metering state of one playback session.
type Meter struct {
	sync.Mutex
	rms float64
	t   float64
}

func (m *Meter) set(rms float64, t float64) {
	m.Lock()
	m.rms = rms
	m.t = t
	m.Unlock()
}

// Level ...
func (m *Meter) Level() Level {
	m.Lock()
	defer m.Unlock()
	return Level{RMS: m.rms, Time: m.t}
}

// ----- Registry ----- //

// Registry maps keys to the meter of the session currently sounding them.
type Registry struct {
	sync.RWMutex
	meters map[string]*Meter
}

// NewRegistry ...
func NewRegistry() *Registry {
	return &Registry{
		meters: make(map[string]*Meter),
	}
}

// Set inserts or replaces the meter for key.
func (r *Registry) Set(key string, m *Meter) {
	r.Lock()
	r.meters[key] = m
	r.Unlock()
}

// Get ...
func (r *Registry) Get(key string) (*Meter, bool) {
	r.RLock()
	m, ok := r.meters[key]
	r.RUnlock()
	return m, ok
}

// Remove deletes whatever meter is registered for key.
func (r *Registry) Remove(key string) {
	r.Lock()
	delete(r.meters, key)
	r.Unlock()
}

// RemoveIf deletes the entry for key only while it is still m.
func (r *Registry) RemoveIf(key string, m *Meter) bool {
	r.Lock()
	defer r.Unlock()
	if r.meters[key] != m {
		return false
	}
	delete(r.meters, key)
	return true
}

// Len ...
func (r *Registry) Len() int {
	r.RLock()
	defer r.RUnlock()
	return len(r.meters)
}

// Levels takes a snapshot of every registered meter.
func (r *Registry) Levels() map[string]Level {
	r.RLock()
	defer r.RUnlock()
	levels := make(map[string]Level, len(r.meters))
	for key, m := range r.meters {
		levels[key] = m.Level()
	}
	return levels
}
