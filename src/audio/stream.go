package audio

import (
	"errors"

	"github.com/faiface/beep"
)

// ----- Sample Streamer ----- //

// Streamer exposes a rendered buffer as a beep.StreamSeeker. Mono samples are
// duplicated to both channels.
type Streamer struct {
	samples []int16
	pos     int
}

var _ beep.StreamSeeker = (*Streamer)(nil)

// NewStreamer ...
func NewStreamer(samples []int16) *Streamer {
	return &Streamer{samples: samples}
}

// Stream ...
func (s *Streamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	for n < len(samples) && s.pos < len(s.samples) {
		v := toFloat(s.samples[s.pos])
		samples[n][0] = v
		samples[n][1] = v
		n++
		s.pos++
	}
	return n, true
}

// Err ...
func (s *Streamer) Err() error {
	return nil
}

// Len ...
func (s *Streamer) Len() int {
	return len(s.samples)
}

// Position ...
func (s *Streamer) Position() int {
	return s.pos
}

// Seek ...
func (s *Streamer) Seek(p int) error {
	if p < 0 || p > len(s.samples) {
		return errors.New("seek position out of range")
	}
	s.pos = p
	return nil
}
