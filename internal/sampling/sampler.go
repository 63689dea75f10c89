// Package sampling implements the inverse-exponential biased sampler used to spread wave
// parameters between a rare and a common bound.
//
// A draw interpolates in log-space between the two bounds:
//
//	r   = u*deviation + center,  u ~ U(-1, 1)
//	val = (common/rare)^r * rare
//
// and clamps the result back into the bound interval. Center 0 lands on the rare bound,
// center 1 on the common bound. Bounds are always passed rare first, common second; the
// interval may be ascending or descending.
package sampling

import (
	"math"
	"math/rand/v2"

	"tidegen.dev/internal/generr"
)

// Config names one sampler call by role.
type Config struct {
	RareBound   float64 `yaml:"rare_bound" json:"rare_bound"`
	CommonBound float64 `yaml:"common_bound" json:"common_bound"`
	Deviation   float64 `yaml:"deviation" json:"deviation"`
	Center      float64 `yaml:"center" json:"center"`
}

// Validate reports ErrInvalidConfiguration for unusable bounds, deviation or center.
func (c Config) Validate() error {
	if err := ValidateBounds(c.RareBound, c.CommonBound); err != nil {
		return err
	}
	if math.IsNaN(c.Deviation) || math.IsInf(c.Deviation, 0) || c.Deviation < 0 {
		return generr.Invalid("deviation %v must be finite and >= 0", c.Deviation)
	}
	if math.IsNaN(c.Center) || c.Center < 0 || c.Center > 1 {
		return generr.Invalid("center %v outside [0,1]", c.Center)
	}
	return nil
}

// Sample validates c and draws one value.
func (c Config) Sample(src *rand.Rand) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return Sample(src, c.RareBound, c.CommonBound, c.Deviation, c.Center), nil
}

// ValidateBounds checks that both bounds are finite, strictly positive and distinct.
func ValidateBounds(rare, common float64) error {
	if !(rare > 0) || math.IsInf(rare, 0) {
		return generr.Invalid("rare bound %v must be finite and > 0", rare)
	}
	if !(common > 0) || math.IsInf(common, 0) {
		return generr.Invalid("common bound %v must be finite and > 0", common)
	}
	if rare == common {
		return generr.Invalid("rare and common bounds are equal (%v)", rare)
	}
	return nil
}

// Sample draws one value between rare and common. It does not validate its arguments;
// use Config.Sample for checked input.
//
// One uniform draw is always taken from src, so the stream position does not depend on
// deviation. A nil src is treated as u = 0.
func Sample(src *rand.Rand, rare, common, deviation, center float64) float64 {
	var u float64
	if src != nil {
		u = src.Float64()*2 - 1
	}
	return Clamp(Interpolate(rare, common, u*deviation+center), rare, common)
}

// Interpolate is the pure exponential interpolation (common/rare)^r * rare.
func Interpolate(rare, common, r float64) float64 {
	return math.Pow(common/rare, r) * rare
}

// Clamp pulls val back into the closed interval spanned by rare and common.
func Clamp(val, rare, common float64) float64 {
	if common < rare && val < common || common > rare && val > common {
		val = common
	}
	if rare < common && val < rare || rare > common && val > rare {
		val = rare
	}
	return val
}
