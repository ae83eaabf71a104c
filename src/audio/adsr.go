package audio

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ----- ADSR Params ----- //

const (
	phaseAttack = iota
	phaseDecay
	phaseSustain
	phaseRelease
)

type adsrParams struct {
	attack  float64 // sec
	decay   float64 // sec
	sustain float64 // 0-1
	release float64 // sec
}
type adsrJSON struct {
	Attack  float64 `json:"attack"`
	Decay   float64 `json:"decay"`
	Sustain float64 `json:"sustain"`
	Release float64 `json:"release"`
}

func newADSRParams() *adsrParams {
	return &adsrParams{attack: 0.01, decay: 0.12, sustain: 0.7, release: 0.2}
}

func (a *adsrParams) applyJSON(data json.RawMessage) error {
	if len(data) == 0 {
		return nil
	}
	j := adsrJSON{
		Attack:  a.attack,
		Decay:   a.decay,
		Sustain: a.sustain,
		Release: a.release,
	}
	if err := json.Unmarshal(data, &j); err != nil {
		return fmt.Errorf("failed to apply JSON to adsrParams: %w", err)
	}
	a.attack = j.Attack
	a.decay = j.Decay
	a.sustain = j.Sustain
	a.release = j.Release
	return nil
}
func (a *adsrParams) toJSON() json.RawMessage {
	return toRawMessage(&adsrJSON{
		Attack:  a.attack,
		Decay:   a.decay,
		Sustain: a.sustain,
		Release: a.release,
	})
}
func (a *adsrParams) set(key string, value string) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	switch key {
	case "attack":
		a.attack = v
	case "decay":
		a.decay = v
	case "sustain":
		if v < 0 || v > 1 {
			return fmt.Errorf("sustain out of range: %v", v)
		}
		a.sustain = v
	case "release":
		a.release = v
	default:
		return fmt.Errorf("unknown adsr param %q", key)
	}
	return nil
}

// phaseLengths returns the sample count of each phase for a curve of total samples.
// Sustain absorbs whatever is left and never goes negative.
func (a *adsrParams) phaseLengths(total int, sampleRate int) [4]int {
	var l [4]int
	l[phaseAttack] = secToSamples(a.attack, sampleRate)
	l[phaseDecay] = secToSamples(a.decay, sampleRate)
	l[phaseRelease] = secToSamples(a.release, sampleRate)
	l[phaseSustain] = total - (l[phaseAttack] + l[phaseDecay] + l[phaseRelease])
	if l[phaseSustain] < 0 {
		l[phaseSustain] = 0
	}
	return l
}

// ----- ADSR Curve ----- //

/*
  1 +  x
    | /|\
    |/ | \
  s +  |  x-----------x
    |  |  |           |\
    |  |  |           | \
  0 x--+--+-----------+--x
    |a |d |s          |r |
*/
func envelopeCurve(duration float64, sampleRate int, p *adsrParams) []float64 {
	total := secToSamples(duration, sampleRate)
	env := make([]float64, total)
	l := p.phaseLengths(total, sampleRate)
	pos := 0
	pos = ramp(env, pos, l[phaseAttack], 0, 1, false)
	pos = ramp(env, pos, l[phaseDecay], 1, p.sustain, false)
	pos = fill(env, pos, l[phaseSustain], p.sustain)
	ramp(env, pos, l[phaseRelease], p.sustain, 0, true)
	return env
}

// ramp writes n linearly spaced values from start towards stop beginning at pos.
// Values that would land past the end of out are dropped.
func ramp(out []float64, pos int, n int, start float64, stop float64, inclusive bool) int {
	div := float64(n)
	if inclusive {
		div = float64(n - 1)
	}
	for i := 0; i < n; i++ {
		if pos+i >= len(out) {
			break
		}
		if div <= 0 {
			out[pos+i] = start
			continue
		}
		out[pos+i] = start + (stop-start)*float64(i)/div
	}
	return pos + n
}

func fill(out []float64, pos int, n int, value float64) int {
	for i := pos; i < pos+n && i < len(out); i++ {
		out[i] = value
	}
	return pos + n
}

func secToSamples(sec float64, sampleRate int) int {
	n := int(sec * float64(sampleRate))
	if n < 0 {
		return 0
	}
	return n
}
