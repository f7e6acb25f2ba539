package utils

import (
	"strconv"
	"strings"
)

const sizeUnitStep = 1024

var sizeUnits = []string{"b", "kb", "mb", "gb", "tb", "pb"}

// FormatFileSize renders a size in lower-case binary units: 512b, 1.5kb, 46mb.
// Negative sizes render as 0b.
func FormatFileSize(size int64) string {
	if size < sizeUnitStep {
		if size < 0 {
			size = 0
		}
		return strconv.FormatInt(size, 10) + sizeUnits[0]
	}
	scaled := float64(size)
	unitIndex := 0
	for scaled >= sizeUnitStep && unitIndex < len(sizeUnits)-1 {
		scaled /= sizeUnitStep
		unitIndex++
	}
	precision := 0
	if scaled < 10 {
		precision = 1
	}
	formatted := strings.TrimSuffix(strconv.FormatFloat(scaled, 'f', precision, 64), ".0")
	return formatted + sizeUnits[unitIndex]
}
