package seisutil

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

const gcdEpsilon = 1e-7

// GCD returns the greatest common divisor of two positive reals, up to a
// small relative tolerance. It is used to relate sampling intervals.
func GCD(a, b float64) float64 {
	for b > gcdEpsilon*a {
		a, b = b, math.Mod(a, b)
	}
	return a
}

// LCM returns the least common multiple of two positive reals.
func LCM(a, b float64) float64 {
	return a * b / GCD(a, b)
}

// An UnavailableDecimationError is returned when a downsampling factor
// cannot be decomposed into small integer stages.
type UnavailableDecimationError struct {
	Factor int
}

func (e *UnavailableDecimationError) Error() string {
	return "seisutil: no decimation sequence for factor " + strconv.Itoa(e.Factor)
}

// A DecimationTable maps integer downsampling factors to sequences of small
// stage factors. Decimation from one sampling rate to a lower one is done
// by successive decimation with small factors, because single-stage
// decimation by a large factor is unstable or slow. The table is an owned,
// lifetime-scoped object; it is not safe for concurrent use.
type DecimationTable struct {
	nmax int
	seq  map[int][5]int
}

// NewDecimationTable builds a table covering factors up to nmax. The table
// grows on demand when Sequence is asked for a larger factor.
func NewDecimationTable(nmax int) *DecimationTable {
	t := &DecimationTable{seq: make(map[int][5]int)}
	t.extend(nmax)
	return t
}

func (t *DecimationTable) extend(nmax int) {
	for i := 1; i < 10 && i <= nmax; i++ {
		for j := 1; j <= i && i*j <= nmax; j++ {
			for k := 1; k <= j && i*j*k <= nmax; k++ {
				for l := 1; l <= k && i*j*k*l <= nmax; l++ {
					for m := 1; m <= l; m++ {
						p := i * j * k * l * m
						if p > nmax {
							break
						}
						if _, ok := t.seq[p]; !ok {
							t.seq[p] = [5]int{i, j, k, l, m}
						}
					}
				}
			}
		}
	}
	t.nmax = nmax
}

// Sequence returns the stage factors, largest first, whose product is n.
// Unit stages are omitted; decimation by 1 yields an empty sequence. The
// table extends itself when n exceeds its current coverage.
func (t *DecimationTable) Sequence(n int) ([]int, error) {
	if n > t.nmax {
		t.extend(n * 2)
	}
	s, ok := t.seq[n]
	if !ok {
		return nil, &UnavailableDecimationError{Factor: n}
	}
	out := make([]int, 0, len(s))
	for _, f := range s {
		if f > 1 {
			out = append(out, f)
		}
	}
	return out, nil
}

// A Decimator downsamples signals by integer factors using low-pass FIR
// filters with a Hamming window design. Filter coefficients are cached per
// (order, cutoff) pair in the Decimator itself, so the cache lives and dies
// with its owner. Not safe for concurrent use.
type Decimator struct {
	fir map[firKey][]float64
}

type firKey struct {
	order  int
	cutoff float64
}

// NewDecimator returns a Decimator with an empty coefficient cache.
func NewDecimator() *Decimator {
	return &Decimator{fir: make(map[firKey][]float64)}
}

// Decimate downsamples x by the integer factor q using an order n low-pass
// FIR filter. n <= 0 selects the default order 30. The first n/2 filtered
// samples are dropped to compensate the filter delay.
func (d *Decimator) Decimate(x []float64, q, n int) ([]float64, error) {
	if q < 1 {
		return nil, errors.Errorf("seisutil: decimation factor must be a positive integer, got %d", q)
	}
	if n <= 0 {
		n = 30
	}

	key := firKey{order: n, cutoff: 1 / float64(q)}
	b, ok := d.fir[key]
	if !ok {
		b = firwinHamming(n+1, key.cutoff)
		d.fir[key] = b
	}

	y := firFilter(b, x)
	size := (len(y) - n/2 + q - 1) / q
	if size < 0 {
		size = 0
	}
	out := make([]float64, 0, size)
	for i := n / 2; i < len(y); i += q {
		out = append(out, y[i])
	}
	return out, nil
}

// firwinHamming designs a low-pass FIR filter with numtaps coefficients and
// the given cutoff in Nyquist units, using a Hamming window. The response
// is normalized to unit gain at DC.
func firwinHamming(numtaps int, cutoff float64) []float64 {
	h := make([]float64, numtaps)
	alpha := float64(numtaps-1) / 2
	var sum float64
	for k := range h {
		m := float64(k) - alpha
		w := 0.54 - 0.46*math.Cos(2*math.Pi*float64(k)/float64(numtaps-1))
		h[k] = cutoff * sinc(cutoff*m) * w
		sum += h[k]
	}
	for k := range h {
		h[k] /= sum
	}
	return h
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(math.Pi*x) / (math.Pi * x)
}

// firFilter applies the FIR filter b to x in direct form, with zero initial
// conditions.
func firFilter(b, x []float64) []float64 {
	y := make([]float64, len(x))
	for i := range x {
		var acc float64
		for j, bj := range b {
			if j > i {
				break
			}
			acc += bj * x[i-j]
		}
		y[i] = acc
	}
	return y
}
