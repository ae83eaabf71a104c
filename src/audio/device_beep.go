package audio

import (
	"log"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// ----- Beep Device ----- //

type beepDevice struct{}

func newBeepDevice(sampleRate int) (*beepDevice, error) {
	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &beepDevice{}, nil
}

// Play queues the buffer on the speaker mixer; the callback fires after its last sample.
func (d *beepDevice) Play(samples []int16) (Playback, error) {
	done := make(chan struct{})
	speaker.Play(beep.Seq(NewStreamer(samples), beep.Callback(func() {
		close(done)
	})))
	return &beepPlayback{done: done}, nil
}

func (d *beepDevice) Close() error {
	log.Println("Closing speaker...")
	speaker.Close()
	return nil
}

type beepPlayback struct {
	done chan struct{}
}

func (p *beepPlayback) Wait() error {
	<-p.done
	return nil
}
