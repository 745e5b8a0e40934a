package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
)

const hexdigits = "0123456789abcdef"

// GenerateRandomHex returns a random lowercase hex string of n digits,
// without a 0x prefix.
func GenerateRandomHex(n uint) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = hexdigits[RandIntn(len(hexdigits))]
	}
	return string(b)
}

func GenerateRandomBytesHex(n uint) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}

	return hex.EncodeToString(b)
}

// RandIntn returns a uniform random value in [0, n). It panics if got a
// non-positive parameter.
func RandIntn(n int) int {
	r, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(r.Int64())
}

// RandRange returns a uniform random value in [a, b). It panics if got a
// non-positive parameter or a>=b.
func RandRange(a, b int) int {
	return RandIntn(b-a) + a
}
