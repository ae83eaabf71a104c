package audio

import (
	"testing"
)

func TestEnvelopeShape(t *testing.T) {
	// 100 samples: attack 10, decay 20, sustain 40, release 30
	p := &adsrParams{attack: 0.1, decay: 0.2, sustain: 0.5, release: 0.3}
	env := envelopeCurve(1.0, 100, p)

	expectEqual(t, len(env), 100)
	expectNearlyEqual(t, env[0], 0)
	expectNearlyEqual(t, env[5], 0.5)
	expectNearlyEqual(t, env[9], 0.9)
	expectNearlyEqual(t, env[10], 1)
	expectNearlyEqual(t, env[20], 0.75)
	expectNearlyEqual(t, env[29], 1-0.5*19.0/20.0)
	for i := 30; i < 70; i++ {
		expectNearlyEqual(t, env[i], 0.5)
	}
	expectNearlyEqual(t, env[70], 0.5)
	expectNearlyEqual(t, env[85], 0.5-0.5*15.0/29.0)
	expectNearlyEqual(t, env[99], 0)
}

func TestEnvelopeLengthAndRange(t *testing.T) {
	cases := []struct {
		duration   float64
		sampleRate int
		p          adsrParams
	}{
		{2.0, 44100, adsrParams{attack: 0.01, decay: 0.12, sustain: 0.7, release: 0.2}},
		{0.5, 8000, adsrParams{attack: 0, decay: 0, sustain: 1, release: 0}},
		{0.25, 1000, adsrParams{attack: 0.3, decay: 0.3, sustain: 0.2, release: 0.3}},
		{1.0, 48000, adsrParams{attack: 0.5, decay: 0, sustain: 0, release: 0.5}},
		{0.01, 22050, adsrParams{attack: 0.001, decay: 0.001, sustain: 0.9, release: 0.001}},
	}
	for _, c := range cases {
		env := envelopeCurve(c.duration, c.sampleRate, &c.p)
		expectEqual(t, len(env), int(c.duration*float64(c.sampleRate)))
		for i, v := range env {
			if v < 0 || v > 1 {
				t.Fatalf("value %v at %d out of range", v, i)
			}
		}
	}
}

func TestEnvelopeSustainClampedToZero(t *testing.T) {
	// attack, decay and release are 50 samples each but the curve only holds 100
	p := &adsrParams{attack: 0.05, decay: 0.05, sustain: 0.6, release: 0.05}
	l := p.phaseLengths(100, 1000)
	expectEqual(t, l[phaseSustain], 0)
	expectEqual(t, l[phaseAttack], 50)
	expectEqual(t, l[phaseRelease], 50)

	env := envelopeCurve(0.1, 1000, p)
	expectEqual(t, len(env), 100)
	expectNearlyEqual(t, env[0], 0)
	expectNearlyEqual(t, env[50], 1)
	expectNearlyEqual(t, env[99], 1+(0.6-1)*49.0/50.0)
}

func TestEnvelopeDegenerate(t *testing.T) {
	expectEqual(t, len(envelopeCurve(0, 44100, newADSRParams())), 0)
	expectEqual(t, len(envelopeCurve(-1, 44100, newADSRParams())), 0)

	flat := envelopeCurve(0.01, 1000, &adsrParams{sustain: 0.4})
	expectEqual(t, len(flat), 10)
	for _, v := range flat {
		expectNearlyEqual(t, v, 0.4)
	}

	negative := envelopeCurve(0.01, 1000, &adsrParams{attack: -1, sustain: 0.4, release: 0.001})
	expectNearlyEqual(t, negative[0], 0.4)
	// a single release sample keeps the sustain level
	expectNearlyEqual(t, negative[9], 0.4)
}

func TestEnvelopeReferenceStart(t *testing.T) {
	env := envelopeCurve(2.0, 44100, newADSRParams())
	expectEqual(t, len(env), 88200)
	expectEqual(t, env[0], 0.0)
	if env[1] <= 0 || env[1] >= 1 {
		t.Errorf("expected the second sample on the attack ramp, got %v", env[1])
	}
	expectNearlyEqual(t, env[441], 1)
	expectNearlyEqual(t, env[88199], 0)
}

func TestADSRSet(t *testing.T) {
	p := newADSRParams()
	expectNoError(t, p.set("attack", "0.02"))
	expectNoError(t, p.set("release", "0.5"))
	expectNearlyEqual(t, p.attack, 0.02)
	expectNearlyEqual(t, p.release, 0.5)
	if err := p.set("sustain", "1.5"); err == nil {
		t.Error("expected an error for sustain above 1")
	}
	if err := p.set("hold", "1"); err == nil {
		t.Error("expected an error for an unknown param")
	}
	if err := p.set("decay", "slow"); err == nil {
		t.Error("expected an error for a non-number")
	}
}
