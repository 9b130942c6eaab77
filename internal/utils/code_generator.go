package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
)

const slugChars = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateSlugSuffix returns a short random suffix used to disambiguate
// custom landing-page URLs.
func GenerateSlugSuffix() string {
	const length = 6
	result := make([]byte, length)
	charsetLen := big.NewInt(int64(len(slugChars)))

	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			// crypto/rand failing is effectively unreachable
			n = big.NewInt(int64(i % len(slugChars)))
		}
		result[i] = slugChars[n.Int64()]
	}

	return string(result)
}

// NormalizeSlug lowercases text and reduces it to [a-z0-9-].
func NormalizeSlug(text string) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "_", "-")

	var b strings.Builder
	for _, r := range slug {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}

	slug = b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}

// PixelExternalID builds the client/server correlation key for a conversion
// event: product id plus a millisecond suffix. Best-effort correlation, not
// a unique identifier.
func PixelExternalID(productID uuid.UUID, now time.Time) string {
	return fmt.Sprintf("%s_%d", productID, now.UnixMilli())
}
