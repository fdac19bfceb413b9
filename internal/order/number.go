package order

import (
	"fmt"
	"math/rand"
	"time"
)

// newOrderNumber mints a display identifier of the form
// <prefix>-<unix-millis>-<0..999>. Uniqueness is best effort only; the
// number exists for display and correlation, not as a global key.
func (a *Assembler) newOrderNumber(now time.Time) string {
	return fmt.Sprintf("%s-%d-%d", a.prefix, now.UnixMilli(), a.randInt(1000))
}

func defaultRandInt(n int) int {
	return rand.Intn(n)
}
