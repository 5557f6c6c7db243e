package project

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
)

// Digest is a SHA-256 value used for cache keys and invalidation.
type Digest [32]byte

// IsZero reports whether the digest is unset.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// HashBytes digests raw content.
func HashBytes(content []byte) Digest {
	return sha256.Sum256(content)
}

// CombineDigests folds several digests into one, order-insensitively.
// Used to key a check result on the whole snapshot: any changed file
// changes the combined digest.
func CombineDigests(digests []Digest) Digest {
	sorted := make([]Digest, len(digests))
	copy(sorted, digests)
	sort.Slice(sorted, func(i, j int) bool {
		for k := range sorted[i] {
			if sorted[i][k] != sorted[j][k] {
				return sorted[i][k] < sorted[j][k]
			}
		}
		return false
	})

	h := sha256.New()
	for _, d := range sorted {
		h.Write(d[:])
	}
	var out Digest
	h.Sum(out[:0])
	return out
}
