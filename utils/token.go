package utils

import "math/rand"

// GenerateRandomToken returns an alphanumeric token, used for recipe
// short-link codes. The uniqueness guarantee lives in the short_code
// unique index, not here.
func GenerateRandomToken(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	token := make([]byte, length)
	for i := range token {
		token[i] = charset[rand.Intn(len(charset))]
	}
	return string(token)
}
