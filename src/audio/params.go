package audio

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Params holds every tunable of the instrument. It is read-only once an Audio is built.
type Params struct {
	SampleRate int
	Duration   float64 // sec
	FrameSize  int     // samples per metering update
	Amplitude  float64 // 0-1, scaled by velocity
	KeyMap     *KeyMap
	adsr       *adsrParams
}

// NewParams returns the reference configuration.
func NewParams() *Params {
	return &Params{
		SampleRate: 44100,
		Duration:   2.0,
		FrameSize:  1024,
		Amplitude:  0.6,
		KeyMap:     DefaultKeyMap(),
		adsr:       newADSRParams(),
	}
}

type paramsJSON struct {
	SampleRate int             `json:"sampleRate"`
	Duration   float64         `json:"duration"`
	FrameSize  int             `json:"frameSize"`
	Amplitude  float64         `json:"amplitude"`
	Adsr       json.RawMessage `json:"adsr,omitempty"`
}

// ApplyJSON overwrites the fields present in data.
func (p *Params) ApplyJSON(data []byte) error {
	j := paramsJSON{
		SampleRate: p.SampleRate,
		Duration:   p.Duration,
		FrameSize:  p.FrameSize,
		Amplitude:  p.Amplitude,
	}
	if err := json.Unmarshal(data, &j); err != nil {
		return fmt.Errorf("failed to apply JSON to params: %w", err)
	}
	if err := p.adsr.applyJSON(j.Adsr); err != nil {
		return err
	}
	p.SampleRate = j.SampleRate
	p.Duration = j.Duration
	p.FrameSize = j.FrameSize
	p.Amplitude = j.Amplitude
	return nil
}

// ToJSON ...
func (p *Params) ToJSON() []byte {
	bytes, err := json.Marshal(&paramsJSON{
		SampleRate: p.SampleRate,
		Duration:   p.Duration,
		FrameSize:  p.FrameSize,
		Amplitude:  p.Amplitude,
		Adsr:       p.adsr.toJSON(),
	})
	if err != nil {
		panic(err)
	}
	return bytes
}

// Set assigns a single value by name, e.g. "duration" or "adsr.release".
func (p *Params) Set(key string, value string) error {
	if strings.HasPrefix(key, "adsr.") {
		return p.adsr.set(strings.TrimPrefix(key, "adsr."), value)
	}
	switch key {
	case "sample_rate":
		v, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		p.SampleRate = v
	case "frame_size":
		v, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		p.FrameSize = v
	case "duration":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		p.Duration = v
	case "amplitude":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		p.Amplitude = v
	default:
		return fmt.Errorf("unknown param %q", key)
	}
	return nil
}

// Validate ...
func (p *Params) Validate() error {
	if p.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", p.SampleRate)
	}
	if p.FrameSize <= 0 {
		return fmt.Errorf("frame size must be positive, got %d", p.FrameSize)
	}
	if p.KeyMap == nil {
		return fmt.Errorf("no key map")
	}
	return nil
}

func (p *Params) frameDuration() float64 {
	return float64(p.FrameSize) / float64(p.SampleRate)
}

func toRawMessage(v interface{}) json.RawMessage {
	bytes, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return json.RawMessage(bytes)
}
