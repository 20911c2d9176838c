package ratio

import (
	"encoding/json"
	"fmt"
	"io"
)

// Mode selects the output rendering
type Mode int

const (
	ModeGauge Mode = iota
	ModePlain
	ModeJSON
)

// Report is the JSON output shape; field order matches the emitted object
type Report struct {
	Percentage  int  `json:"percentage"`
	Numerator   Side `json:"numerator"`
	Denominator Side `json:"denominator"`
}

// Side is one half of the comparison with its market cap truncated to a
// whole number of dollars
type Side struct {
	Asset     string `json:"asset"`
	MarketCap uint64 `json:"market_cap"`
}

// Render writes the comparison to w in the requested mode
func Render(w io.Writer, c Comparison, mode Mode) error {
	switch mode {
	case ModePlain:
		_, err := fmt.Fprintf(w, "%s %s %d\n", c.NumeratorAsset, c.DenominatorAsset, c.Percentage())
		return err

	case ModeJSON:
		out, err := json.Marshal(Report{
			Percentage:  c.Percentage(),
			Numerator:   Side{Asset: c.NumeratorAsset, MarketCap: uint64(c.NumeratorCap)},
			Denominator: Side{Asset: c.DenominatorAsset, MarketCap: uint64(c.DenominatorCap)},
		})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err

	default:
		bar, err := Gauge(c.Ratio(), BarLength)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, bar); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", c.NumeratorAsset, FormatShortScale(c.NumeratorCap)); err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s: %s\n", c.DenominatorAsset, FormatShortScale(c.DenominatorCap))
		return err
	}
}
