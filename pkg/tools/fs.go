package tools

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
)

// Hash returns a short content fingerprint, used to tell dataset
// versions apart in logs.
func Hash(b []byte) string {
	sum := sha256.Sum256(b)

	return hex.EncodeToString(sum[:8])
}

func FileExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}
