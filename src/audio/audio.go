package audio

import (
	"log"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ----- Audio ----- //

// Audio is the instrument: it turns key presses into playback sessions and
// exposes their live levels.
type Audio struct {
	params   *Params
	device   Device
	registry *Registry
	sessions errgroup.Group
	lastID   uint64
	errorCh  chan error
}

// NewAudio ...
func NewAudio(params *Params, device Device) (*Audio, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Audio{
		params:   params,
		device:   device,
		registry: NewRegistry(),
		errorCh:  make(chan error, 16),
	}, nil
}

// Keys lists the playable keys in display order.
func (a *Audio) Keys() []string {
	return a.params.KeyMap.Keys()
}

// NoteOn starts a note for key and returns immediately. Unmapped keys are ignored
// and report false.
func (a *Audio) NoteOn(key string, velocity float64) bool {
	return a.noteOn(key, velocity) != nil
}

func (a *Audio) noteOn(key string, velocity float64) *session {
	freq, ok := a.params.KeyMap.Frequency(key)
	if !ok {
		return nil
	}
	s := &session{
		id:       atomic.AddUint64(&a.lastID, 1),
		key:      key,
		freq:     freq,
		velocity: velocity,
		params:   a.params,
		device:   a.device,
		registry: a.registry,
		meter:    &Meter{},
		done:     make(chan struct{}),
	}
	log.Printf("got note-on: %s#%d (%.2fHz, velocity %.2f)\n", key, s.id, freq, velocity)
	a.sessions.Go(func() error {
		err := s.run()
		if err != nil {
			log.Printf("error: %v\n", err)
			a.reportError(err)
		}
		return err
	})
	return s
}

func (a *Audio) reportError(err error) {
	select {
	case a.errorCh <- err:
	default:
		log.Println("[WARN] error channel full, dropping error")
	}
}

// Errors delivers session failures. Sends never block, so errors may be dropped
// when nobody is reading.
func (a *Audio) Errors() <-chan error {
	return a.errorCh
}

// Level returns the current reading for key if a note is sounding on it.
func (a *Audio) Level(key string) (Level, bool) {
	m, ok := a.registry.Get(key)
	if !ok {
		return Level{}, false
	}
	return m.Level(), true
}

// Levels ...
func (a *Audio) Levels() map[string]Level {
	return a.registry.Levels()
}

// Wait blocks until every session started so far has completed and returns the
// first failure.
func (a *Audio) Wait() error {
	return a.sessions.Wait()
}

// Close releases the device without waiting for sounding notes.
func (a *Audio) Close() error {
	log.Println("Closing Audio...")
	return a.device.Close()
}
