package util

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// JsonHash returns a stable hash of the JSON encoding of s
func JsonHash(s interface{}) string {
	bs, _ := json.Marshal(s)
	hash := sha256.Sum256(bs)
	return hex.EncodeToString(hash[:])
}

// FormatValue prints a value in a fixed width cell
func FormatValue(x float64) string {
	if x < 0 {
		return " -" + fmt.Sprintf("%06.2f", -x)
	}
	return fmt.Sprintf("  %06.2f", x)
}
