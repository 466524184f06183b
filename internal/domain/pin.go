package domain

import "hash/fnv"

// HashPIN maps a PIN to a fixed-width 64-bit FNV-1a digest. Deliberately
// non-cryptographic: the stored value is compared for equality only, and the
// on-disk record format encodes it as a decimal integer.
func HashPIN(pin string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(pin))
	return h.Sum64()
}
