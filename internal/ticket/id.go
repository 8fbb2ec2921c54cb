package ticket

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const (
	// IDPrefix is the prefix for tickets promoted from AI suggestions.
	IDPrefix = "tk_"

	// ManualIDPrefix is the prefix for manually created tickets.
	ManualIDPrefix = "manual-"

	// IDLength is the number of random base62 characters after the prefix.
	IDLength = 6

	base62Chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateID creates a new unique ticket ID (tk_xxxxxx), retrying on
// collision against the given set of existing IDs.
func GenerateID(existing map[string]bool) (string, error) {
	for range 100 {
		id, err := randomID()
		if err != nil {
			return "", err
		}
		if !existing[id] {
			return id, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique ID after 100 attempts")
}

// ManualID builds an ID for a manually entered ticket from the creation time.
func ManualID(now time.Time) string {
	return fmt.Sprintf("%s%d", ManualIDPrefix, now.UnixMilli())
}

func randomID() (string, error) {
	max := big.NewInt(int64(len(base62Chars)))
	var b strings.Builder
	b.WriteString(IDPrefix)
	for range IDLength {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate random: %w", err)
		}
		b.WriteByte(base62Chars[n.Int64()])
	}
	return b.String(), nil
}
