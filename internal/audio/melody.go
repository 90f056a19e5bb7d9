package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Notes of the background loop in Hz. Zero is a rest.
var melodyNotes = []float64{
	523.25, 659.25, 783.99, 659.25,
	587.33, 698.46, 880.00, 0,
	523.25, 659.25, 783.99, 1046.50,
	987.77, 783.99, 659.25, 0,
}

// melody is an endless square-ish tune with a soft attack per note.
type melody struct {
	rate      beep.SampleRate
	noteLen   int
	pos       int
	phase     float64
	amplitude float64
}

func newMelody(rate beep.SampleRate) *melody {
	return &melody{
		rate:      rate,
		noteLen:   rate.N(180 * time.Millisecond),
		amplitude: 0.12,
	}
}

func (m *melody) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		note := (m.pos / m.noteLen) % len(melodyNotes)
		offset := m.pos % m.noteLen
		freq := melodyNotes[note]

		var v float64
		if freq > 0 {
			m.phase += freq / float64(m.rate)
			m.phase -= math.Floor(m.phase)
			v = math.Sin(2*math.Pi*m.phase) + 0.3*math.Sin(6*math.Pi*m.phase)
			v *= m.amplitude * envelope(offset, m.noteLen)
		}
		samples[i][0] = v
		samples[i][1] = v
		m.pos++
		if m.pos >= m.noteLen*len(melodyNotes) {
			m.pos = 0
		}
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }

// envelope ramps in over the first tenth of a note and out over the last third.
func envelope(offset, length int) float64 {
	attack := length / 10
	release := length / 3
	switch {
	case attack > 0 && offset < attack:
		return float64(offset) / float64(attack)
	case release > 0 && offset > length-release:
		return float64(length-offset) / float64(release)
	default:
		return 1
	}
}
