// SPDX-License-Identifier: MIT

package stats

const opDescribe = "Describe"

// Summary bundles the descriptive statistics of one dataset.
type Summary struct {
	Count             int
	Mean              float64
	Median            float64
	Min               float64
	Max               float64
	Range             float64
	Variance          float64
	StandardDeviation float64
	IQR               float64
}

// Describe computes a Summary for ds by calling the individual statistics
// in turn, so every field matches its standalone function bit for bit.
// Errors: ErrInsufficientData when len(ds) < 2 (checked before anything else).
func Describe(ds []float64) (Summary, error) {
	if len(ds) < 2 {
		return Summary{}, statsErrorf(opDescribe, ErrInsufficientData)
	}

	var (
		s   = Summary{Count: len(ds)}
		err error
	)
	if s.Mean, err = Mean(ds); err != nil {
		return Summary{}, statsErrorf(opDescribe, err)
	}
	if s.Median, err = Median(ds); err != nil {
		return Summary{}, statsErrorf(opDescribe, err)
	}
	if s.Min, err = Min(ds); err != nil {
		return Summary{}, statsErrorf(opDescribe, err)
	}
	if s.Max, err = Max(ds); err != nil {
		return Summary{}, statsErrorf(opDescribe, err)
	}
	if s.Range, err = DataRange(ds); err != nil {
		return Summary{}, statsErrorf(opDescribe, err)
	}
	if s.Variance, err = Variance(ds); err != nil {
		return Summary{}, statsErrorf(opDescribe, err)
	}
	if s.StandardDeviation, err = StandardDeviation(ds); err != nil {
		return Summary{}, statsErrorf(opDescribe, err)
	}
	if s.IQR, err = InterquartileRange(ds); err != nil {
		return Summary{}, statsErrorf(opDescribe, err)
	}

	return s, nil
}
