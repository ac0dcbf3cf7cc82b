package album

import (
	"fmt"
	"math"
	"strconv"
)

// byteUnits pairs each power-of-1024 unit with the number of decimals worth
// showing at that magnitude.
var byteUnits = []struct {
	suffix   string
	decimals int
}{
	{"", 0}, {"kB", 0}, {"MB", 1}, {"GB", 2}, {"TB", 2}, {"PB", 2},
}

// HumanFine renders a byte count the way people read sizes: "42", "2kB",
// "117.7MB".
func HumanFine(b int64) string {
	if b <= 1 {
		return strconv.FormatInt(b, 10)
	}
	exp := int(math.Log(float64(b)) / math.Log(1024))
	if exp > len(byteUnits)-1 {
		exp = len(byteUnits) - 1
	}
	unit := byteUnits[exp]
	quotient := float64(b) / math.Pow(1024, float64(exp))
	return fmt.Sprintf("%.*f%s", unit.decimals, quotient, unit.suffix)
}
