package camera

import "math"

// PitchRange bounds the orbit pitch in degrees. Min greater than Max (after
// normalization into [0, 360)) describes an arc that crosses 0.
type PitchRange struct {
	Min float32 `json:"min"`
	Max float32 `json:"max"`
}

// ClampPitch constrains angle to r. All three values are normalized into [0, 360)
// and the result is in that range too.
//
// For a wrapping range the legal arc is [0, Max] plus [Min, 360). An angle
// outside it snaps to whichever bound is nearer when both are read as signed
// angles in [-180, 180), so the illegal arc splits at the point opposite 0.
func ClampPitch(angle float32, r PitchRange) float32 {
	a := normalizeAngle(angle)
	lo := normalizeAngle(r.Min)
	hi := normalizeAngle(r.Max)

	if lo == hi {
		return lo
	}

	if lo < hi {
		if a < lo {
			return lo
		}
		if a > hi {
			return hi
		}
		return a
	}

	if a <= hi || a >= lo {
		return a
	}
	s := signedAngle(a)
	if absf(s-signedAngle(lo)) < absf(s-signedAngle(hi)) {
		return lo
	}
	return hi
}

func normalizeAngle(a float32) float32 {
	r := float32(math.Mod(float64(a), 360))
	if r < 0 {
		r += 360
	}
	// float32 rounding of a tiny negative remainder can land exactly on 360
	if r >= 360 {
		r = 0
	}
	return r
}

func signedAngle(a float32) float32 {
	if a >= 180 {
		return a - 360
	}
	return a
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
