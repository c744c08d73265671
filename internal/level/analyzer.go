package level

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	energyBins     = 8
	binCompression = 0.33
	// The loudest ~1/7 of windows set the normalisation level.
	peakShare = 7.0
)

// Analyzer cuts a sample buffer into disjoint power-of-two windows and
// emits one Note per window.
type Analyzer struct {
	sampleRate float64
	windowSize int
	fft        *fourier.FFT
}

func NewAnalyzer(sampleRate, targetRate float64) *Analyzer {
	ws := windowSizeFor(sampleRate, targetRate)
	return &Analyzer{
		sampleRate: sampleRate,
		windowSize: ws,
		fft:        fourier.NewFFT(ws),
	}
}

// windowSizeFor returns the largest power of two not above
// sampleRate/targetRate, and at least 2.
func windowSizeFor(sampleRate, targetRate float64) int {
	limit := sampleRate / targetRate
	n := 2
	for float64(n*2) <= limit {
		n *= 2
	}
	return n
}

func (a *Analyzer) WindowSize() int { return a.windowSize }

// Rate is the actual number of analysis windows per second.
func (a *Analyzer) Rate() float64 {
	return a.sampleRate / float64(a.windowSize)
}

// Analyze runs the FFT over every full window and returns the normalised
// notes in time order. A trailing partial window is ignored.
func (a *Analyzer) Analyze(samples []float64) []Note {
	ws := a.windowSize
	count := len(samples) / ws
	if count == 0 {
		return nil
	}

	notes := make([]Note, 0, count)
	half := ws / 2
	power := make([]float64, half+1)
	var coeffs []complex128
	var prev [energyBins]float64
	peakSum := 0.0
	peak := math.Inf(-1)

	for i := 0; i < count; i++ {
		coeffs = a.fft.Coefficients(coeffs, samples[i*ws:(i+1)*ws])
		for k, c := range coeffs {
			power[k] = real(c)*real(c) + imag(c)*imag(c)
		}

		var bins [energyBins]float64
		maxV := math.Inf(-1)
		maxI := 0
		for j := 0; j < ws; j++ {
			folded := foldIndex(j, half)
			v := power[folded]
			if b := energyBin(folded, half); v > bins[b] {
				bins[b] = v
			}
			if v > maxV {
				maxV = v
				maxI = j
			}
		}

		delta := 0.0
		for b := range bins {
			delta += math.Abs(bins[b] - prev[b])
		}
		prev = bins

		peakSum += maxV
		peak = math.Max(peak, maxV)
		notes = append(notes, Note{Bin: maxI, Amplitude: maxV, Window: i, Delta: delta})
	}

	avgPeak := peakSum / (float64(count) / peakShare)
	divisor := (avgPeak + peak) / 2
	// Silence leaves everything at zero rather than dividing by it.
	if divisor > 0 {
		for i := range notes {
			notes[i].Amplitude /= divisor
			notes[i].Delta /= divisor
		}
	}
	return notes
}

// foldIndex mirrors the upper half of a real spectrum back onto [0, half].
func foldIndex(j, half int) int {
	if j > half {
		return 2*half - j
	}
	return j
}

// energyBin maps a folded spectral index to one of the energy bins. The
// 0.33 power widens the low end, where most musical energy sits.
func energyBin(folded, half int) int {
	b := int(math.Pow(float64(folded)/float64(half+1), binCompression) * energyBins)
	if b >= energyBins {
		b = energyBins - 1
	}
	return b
}
