package stride

import "math"

// MeanSD is a precalculated mean and standard deviation of a dihedral
// angle over the reference dataset.
type MeanSD struct {
	Mean float64
	SD   float64
}

// AngleOutlier returns the residue of the interval [first, last) whose
// phi or psi deviates most from the reference distribution, when that
// deviance exceeds two standard deviations; ok is false otherwise. For
// strand outliers psi takes priority over phi unless psiPriority is
// false. Negative angles are wrapped by +360 before comparison so the
// deviance does not jump at the ±180 seam.
func AngleOutlier(first, last int, angles map[int]Angles, phi, psi MeanSD, psiPriority bool) (int, bool) {
	pick := func(value func(Angles) float64, ref MeanSD) (int, bool) {
		maxDev := -1.0
		maxRes := first
		for r := first; r < last; r++ {
			a, ok := angles[r]
			if !ok {
				continue
			}
			v := value(a)
			if v < 0 {
				v += 360
			}
			dev := math.Abs(v - ref.Mean)
			if dev > maxDev {
				maxDev = dev
				maxRes = r
			}
		}
		return maxRes, maxDev > 2*ref.SD
	}

	order := []struct {
		value func(Angles) float64
		ref   MeanSD
	}{
		{func(a Angles) float64 { return a.Phi }, phi},
		{func(a Angles) float64 { return a.Psi }, psi},
	}
	if psiPriority {
		order[0], order[1] = order[1], order[0]
	}
	for _, o := range order {
		if res, ok := pick(o.value, o.ref); ok {
			return res, true
		}
	}
	return 0, false
}
