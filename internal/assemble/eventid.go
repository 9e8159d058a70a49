package assemble

import (
	"fmt"
	"math/rand"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewEventID generates a collision-resistant deduplication key. The same ID
// is reused on every representation of one logical conversion (client pixel
// call, server payload and the confirmation-page replay), letting the
// receiving system merge duplicates.
func NewEventID(prefix string) string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = base36[rand.Intn(len(base36))]
	}
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix)
}
