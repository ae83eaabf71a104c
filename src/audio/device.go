package audio

import (
	"fmt"
	"time"
)

const (
	channelNum      = 1
	bitDepthInBytes = 2
	bytesPerSample  = bitDepthInBytes * channelNum
)

// Device plays finished mono 16-bit buffers.
type Device interface {
	// Play starts playback and returns without waiting for it to finish.
	Play(samples []int16) (Playback, error)
	Close() error
}

// Playback is a buffer handed to a Device.
type Playback interface {
	// Wait blocks until the device has finished playing the buffer.
	Wait() error
}

// OpenDevice opens an output device by name: "oto", "beep" or "none".
func OpenDevice(name string, sampleRate int) (Device, error) {
	switch name {
	case "oto":
		d, err := newOtoDevice(sampleRate)
		if err != nil {
			return nil, err
		}
		return d, nil
	case "beep":
		d, err := newBeepDevice(sampleRate)
		if err != nil {
			return nil, err
		}
		return d, nil
	case "none":
		return NewSilentDevice(sampleRate), nil
	}
	return nil, fmt.Errorf("unknown device %q", name)
}

// ----- Silent Device ----- //

type silentDevice struct {
	sampleRate int
}

// NewSilentDevice returns a Device that discards audio but takes as long as real playback.
func NewSilentDevice(sampleRate int) Device {
	return &silentDevice{sampleRate: sampleRate}
}

func (d *silentDevice) Play(samples []int16) (Playback, error) {
	length := time.Duration(float64(len(samples)) / float64(d.sampleRate) * float64(time.Second))
	return &timerPlayback{timer: time.NewTimer(length)}, nil
}

func (d *silentDevice) Close() error {
	return nil
}

type timerPlayback struct {
	timer *time.Timer
}

func (p *timerPlayback) Wait() error {
	<-p.timer.C
	return nil
}

// ----- PCM ----- //

func writeBuffer(samples []int16, buf []byte) {
	for i, s := range samples {
		buf[bytesPerSample*i] = byte(s)
		buf[bytesPerSample*i+1] = byte(s >> 8)
	}
}
