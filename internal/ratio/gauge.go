package ratio

import (
	"fmt"
	"math"
	"strings"
)

// BarLength is the gauge width in cells
const BarLength = 40

const (
	ansiGreen = "\033[32m"
	ansiReset = "\033[0m"
)

// Gauge renders a fixed-width bar for a ratio in [0, 1]. Both the filled
// cell count and the trailing percentage round half away from zero.
func Gauge(r float64, totalLength int) (string, error) {
	if r < 0 || r > 1 {
		return "", fmt.Errorf("ratio must be between 0 and 1, got %v", r)
	}

	filled := int(math.Round(r * float64(totalLength)))
	empty := totalLength - filled
	percentage := int(math.Round(r * 100))

	return fmt.Sprintf("[%s%s%s%s] %d%%",
		ansiGreen, strings.Repeat("█", filled), ansiReset,
		strings.Repeat(" ", empty), percentage), nil
}
