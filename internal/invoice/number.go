package invoice

import (
	"fmt"
	"math/rand"
	"time"
)

// NumberGenerator mints human-readable invoice numbers.
type NumberGenerator func(t time.Time) string

// Number returns an invoice number of the form CC-YYYYMMDD-XXXX. The random
// suffix is not globally unique; the invoices table carries a unique
// constraint and callers retry with a fresh suffix on conflict.
func Number(t time.Time) string {
	return fmt.Sprintf("CC-%s-%04d", t.Format("20060102"), rand.Intn(10000))
}
