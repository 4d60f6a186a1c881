package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	saltLen = 16
	keyLen  = 32
)

// Hasher implements ports.PasswordHasher using Argon2id, encoding hashes in
// the standard $argon2id$... form so cost parameters can change without
// breaking previously stored passwords.
type Hasher struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
}

// NewHasher builds a hasher; zero values fall back to sane Argon2id costs.
func NewHasher(memory, iterations uint32, parallelism uint8) *Hasher {
	if memory == 0 {
		memory = 64 * 1024
	}
	if iterations == 0 {
		iterations = 3
	}
	if parallelism == 0 {
		parallelism = 2
	}
	return &Hasher{memory: memory, iterations: iterations, parallelism: parallelism}
}

func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(password), salt, h.iterations, h.memory, h.parallelism, keyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.memory, h.iterations, h.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

// Verify recomputes the key with the parameters embedded in encoded and
// compares in constant time. Any parse failure verifies as false.
func (h *Hasher) Verify(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false
	}
	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}
	var memory, iterations uint32
	var parallelism uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return false
	}
	computed := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, computed) == 1
}
