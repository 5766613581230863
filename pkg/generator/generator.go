package generator

import (
	"crypto/rand"
	"math/big"
)

const (
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	TokenIDLength = 24
)

func GenerateRandomID(length int) (string, error) {
	result := make([]byte, length)
	size := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		randomIndex, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", err
		}
		result[i] = alphabet[randomIndex.Int64()]
	}

	return string(result), nil
}

// TokenID returns an identifier for the jti claim of a session token.
func TokenID() (string, error) {
	return GenerateRandomID(TokenIDLength)
}
