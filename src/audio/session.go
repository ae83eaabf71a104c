package audio

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"
)

// ----- Session State ----- //

const (
	sessionRendering = iota
	sessionPlaying
	sessionCompleted
)

// ----- Session ----- //

// session owns one triggered note from synthesis until the device is done with it.
type session struct {
	id       uint64
	key      string
	freq     float64
	velocity float64
	params   *Params
	device   Device
	registry *Registry
	meter    *Meter
	samples  []int16
	state    int32
	done     chan struct{}
}

func (s *session) setState(state int32) {
	atomic.StoreInt32(&s.state, state)
}

func (s *session) getState() int32 {
	return atomic.LoadInt32(&s.state)
}

func (s *session) run() error {
	defer close(s.done)
	s.setState(sessionRendering)
	s.samples = s.params.render(s.freq, s.velocity)
	s.registry.Set(s.key, s.meter)
	playback, err := s.device.Play(s.samples)
	if err != nil {
		s.registry.RemoveIf(s.key, s.meter)
		s.setState(sessionCompleted)
		return fmt.Errorf("note %s#%d: failed to start playback: %w", s.key, s.id, err)
	}

	s.setState(sessionPlaying)
	s.meterFrames()

	err = playback.Wait()
	s.registry.RemoveIf(s.key, s.meter)
	s.setState(sessionCompleted)
	if err != nil {
		return fmt.Errorf("note %s#%d: playback failed: %w", s.key, s.id, err)
	}
	return nil
}

// meterFrames publishes the RMS of each frame roughly in step with the device clock.
func (s *session) meterFrames() {
	p := s.params
	frameSize := p.FrameSize
	frameDuration := p.frameDuration()
	frames := len(s.samples) / frameSize

	ticker := time.NewTicker(time.Duration(frameDuration * float64(time.Second)))
	defer ticker.Stop()
	for i := 0; i < frames; i++ {
		frame := s.samples[i*frameSize : (i+1)*frameSize]
		s.meter.set(rms(frame), float64(i)*frameDuration)
		<-ticker.C
	}
	if rem := len(s.samples) % frameSize; rem > 0 {
		s.meter.set(rms(s.samples[len(s.samples)-rem:]), p.Duration)
	}
	log.Printf("note %s#%d: metered %d frames\n", s.key, s.id, frames)
}
