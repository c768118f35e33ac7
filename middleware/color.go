package middleware

import (
	"fmt"
	"hash/fnv"
)

// ColorFromUserID derives a stable presence color from the user id so
// every client renders the same cursor color without coordination.
func ColorFromUserID(userID string) string {
	h := fnv.New32a()
	h.Write([]byte(userID))
	hash := h.Sum32()

	hue := int(hash % 360)
	return fmt.Sprintf("hsl(%d, 70%%, 55%%)", hue)
}
