package keccak

// One-shot helpers. Each call builds its own permutation, so they are safe
// to call from several goroutines.

// Sum224 returns the SHA3-224 digest of data.
func Sum224(data []byte) [28]byte {
	return [28]byte(New224().Sum(data))
}

// Sum256 returns the SHA3-256 digest of data.
func Sum256(data []byte) [32]byte {
	return [32]byte(New256().Sum(data))
}

// Sum384 returns the SHA3-384 digest of data.
func Sum384(data []byte) [48]byte {
	return [48]byte(New384().Sum(data))
}

// Sum512 returns the SHA3-512 digest of data.
func Sum512(data []byte) [64]byte {
	return [64]byte(New512().Sum(data))
}

// ShakeSum128 fills out with SHAKE128 output for data.
func ShakeSum128(out, data []byte) {
	copy(out, NewShake128().Process(data, 8*len(out)))
}

// ShakeSum256 fills out with SHAKE256 output for data.
func ShakeSum256(out, data []byte) {
	copy(out, NewShake256().Process(data, 8*len(out)))
}

// LegacySum256 returns the legacy Keccak-256 digest of data, the hash
// Ethereum calls keccak256.
func LegacySum256(data []byte) [32]byte {
	return [32]byte(NewLegacyKeccak256().Sum(data))
}
