package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"calendar-tool-service/internal/event"
)

const descriptionTemplate = "Scheduled by voice assistant for %s. RequestId: %s"

// Fingerprint is a short deterministic digest of the request fields. It is
// reported to the caller only; nothing deduplicates on it.
func Fingerprint(input event.CreateInput) string {
	key := strings.Join([]string{
		input.Name,
		input.Title,
		input.Start.ISO(),
		strconv.Itoa(input.DurationMinutes),
		input.Timezone,
		strings.Join(input.Invitees, ","),
	}, "|")

	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])[:event.FingerprintLength]
}

func buildDescription(name, fingerprint string) string {
	return fmt.Sprintf(descriptionTemplate, name, fingerprint)
}

// coalesce returns newVal unless it is empty.
func coalesce(newVal, fallback string) string {
	if newVal != "" {
		return newVal
	}
	return fallback
}
