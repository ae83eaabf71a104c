package audio

import (
	"log"
	"time"

	"github.com/hajimehoshi/oto"
)

const samplesPerCycle = 1024
const bufferSizeInBytes = samplesPerCycle * bytesPerSample * 4

// ----- Oto Device ----- //

type otoDevice struct {
	otoContext *oto.Context
	sampleRate int
}

func newOtoDevice(sampleRate int) (*otoDevice, error) {
	otoContext, err := oto.NewContext(sampleRate, channelNum, bitDepthInBytes, bufferSizeInBytes)
	if err != nil {
		return nil, err
	}
	return &otoDevice{
		otoContext: otoContext,
		sampleRate: sampleRate,
	}, nil
}

// Play gives each buffer its own player; the context mixes concurrent players.
func (d *otoDevice) Play(samples []int16) (Playback, error) {
	buf := make([]byte, len(samples)*bytesPerSample)
	writeBuffer(samples, buf)
	p := &otoPlayback{done: make(chan error, 1)}
	player := d.otoContext.NewPlayer()
	go func() {
		_, err := player.Write(buf)
		// Write returns once the tail is queued, so let the device buffer drain.
		time.Sleep(d.bufferDuration())
		if cerr := player.Close(); err == nil {
			err = cerr
		}
		p.done <- err
	}()
	return p, nil
}

func (d *otoDevice) bufferDuration() time.Duration {
	samples := bufferSizeInBytes / bytesPerSample
	return time.Duration(float64(samples) / float64(d.sampleRate) * float64(time.Second))
}

func (d *otoDevice) Close() error {
	log.Println("Closing oto context...")
	return d.otoContext.Close()
}

type otoPlayback struct {
	done chan error
}

func (p *otoPlayback) Wait() error {
	return <-p.done
}
