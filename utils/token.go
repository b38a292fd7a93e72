package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateOtpCode returns a zero-padded numeric code of the given length.
func GenerateOtpCode(length int) string {
	max := big.NewInt(1)
	for i := 0; i < length; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		// crypto/rand only fails when the platform source is broken
		panic(err)
	}
	return fmt.Sprintf("%0*d", length, n)
}

// GenerateRandomToken returns an alphanumeric token, used as a throwaway
// password for OAuth-provisioned accounts and as the OAuth state value.
func GenerateRandomToken(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	token := make([]byte, length)
	for i := range token {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			panic(err)
		}
		token[i] = charset[n.Int64()]
	}
	return string(token)
}
