package audio

import (
	"testing"

	"github.com/faiface/beep"
)

func TestStreamer(t *testing.T) {
	s := NewStreamer([]int16{0, 32767, -32767, 16384, 1})
	expectEqual(t, s.Len(), 5)

	buf := make([][2]float64, 3)
	n, ok := s.Stream(buf)
	expectEqual(t, n, 3)
	expectEqual(t, ok, true)
	expectNearlyEqual(t, buf[1][0], 1)
	expectNearlyEqual(t, buf[1][1], 1)
	expectNearlyEqual(t, buf[2][0], -1)

	n, ok = s.Stream(buf)
	expectEqual(t, n, 2)
	expectEqual(t, ok, true)
	n, ok = s.Stream(buf)
	expectEqual(t, n, 0)
	expectEqual(t, ok, false)
	expectEqual(t, s.Position(), 5)

	expectNoError(t, s.Seek(1))
	n, _ = s.Stream(buf[:1])
	expectEqual(t, n, 1)
	expectNearlyEqual(t, buf[0][0], 1)
	if err := s.Seek(6); err == nil {
		t.Error("expected an error seeking past the end")
	}
}

func TestStreamerInSequence(t *testing.T) {
	done := false
	seq := beep.Seq(NewStreamer(make([]int16, 10)), beep.Callback(func() {
		done = true
	}))
	buf := make([][2]float64, 16)
	for {
		if _, ok := seq.Stream(buf); !ok {
			break
		}
	}
	expectEqual(t, done, true)
}
