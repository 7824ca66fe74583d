package progress

import (
	"math"
	"strconv"
)

// Label formats a weighted percentage as the "[NN%] " prefix injected into
// list item paragraphs. Halves round away from zero; NaN renders as
// "[NaN%] ".
func Label(percentage float64) string {
	return "[" + strconv.FormatFloat(math.Round(percentage*100), 'f', 0, 64) + "%] "
}
