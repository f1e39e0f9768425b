package utils

import (
	"math/rand"
	"strconv"
)

// GenerateCode returns a random 6-digit numeric code as a string. Used for
// complaint verification and password reset codes.
func GenerateCode() string {
	return strconv.Itoa(100000 + rand.Intn(900000))
}
