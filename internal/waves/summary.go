package waves

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats describes one parameter column of a set.
type Stats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// Summary holds per-parameter statistics for a set.
type Summary struct {
	Count      int   `json:"count"`
	Steepness  Stats `json:"steepness"`
	Wavelength Stats `json:"wavelength"`
	Velocity   Stats `json:"velocity"`
}

// Summarize computes column statistics; an empty set yields a zero Summary.
func Summarize(s Set) Summary {
	if s.Len() == 0 {
		return Summary{}
	}
	return Summary{
		Count:      s.Len(),
		Steepness:  columnStats(s.Steepness()),
		Wavelength: columnStats(s.Wavelengths()),
		Velocity:   columnStats(s.Velocities()),
	}
}

func columnStats(xs []float64) Stats {
	st := Stats{Min: floats.Min(xs), Max: floats.Max(xs)}
	if len(xs) == 1 {
		st.Mean = xs[0]
		return st
	}
	st.Mean, st.StdDev = stat.MeanStdDev(xs, nil)
	return st
}
