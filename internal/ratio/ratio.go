package ratio

// Comparison is an ordered pair of market caps. The smaller cap is the
// numerator, so the ratio always lands in (0, 1].
type Comparison struct {
	NumeratorAsset   string
	NumeratorCap     float64
	DenominatorAsset string
	DenominatorCap   float64
}

// Compare orders the two assets by market cap. The comparison is strict
// less-than, so on a tie asset B becomes the numerator.
func Compare(assetA string, capA float64, assetB string, capB float64) Comparison {
	if capA < capB {
		return Comparison{
			NumeratorAsset:   assetA,
			NumeratorCap:     capA,
			DenominatorAsset: assetB,
			DenominatorCap:   capB,
		}
	}
	return Comparison{
		NumeratorAsset:   assetB,
		NumeratorCap:     capB,
		DenominatorAsset: assetA,
		DenominatorCap:   capA,
	}
}

// Ratio returns the numerator cap over the denominator cap
func (c Comparison) Ratio() float64 {
	return c.NumeratorCap / c.DenominatorCap
}

// Percentage truncates ratio*100 toward zero. Plain and JSON output use
// this value; the gauge rounds instead, so the two can differ by one.
func (c Comparison) Percentage() int {
	return int(c.Ratio() * 100)
}
