// utils/slots.go
package utils

import (
	"fmt"
	"time"
)

var slotHours = []int{10, 13, 16}

// GenerateVendorSlots builds the demo visit slots shown next to each
// vendor: four dates over the next eight days, two days apart, cycling
// through the fixed visit hours. Nothing is persisted; callers get the
// same slots (modulo the clock) on every request.
func GenerateVendorSlots(now time.Time) []string {
	slots := make([]string, 0, 4)
	for i := 1; i <= 4; i++ {
		day := now.AddDate(0, 0, i*2)
		hour := slotHours[i%len(slotHours)]
		slots = append(slots, fmt.Sprintf("%s %02d:00", day.Format(DateLayout), hour))
	}
	return slots
}
