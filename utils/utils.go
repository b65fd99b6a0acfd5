package utils

import (
	"strconv"
)

// ParseUint safely parses a string to uint
func ParseUint(s string) uint {
	i, _ := strconv.ParseUint(s, 10, 32)
	return uint(i)
}

// FormatID renders a numeric ID the way audit log target IDs store it
func FormatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
