package user

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/crypto/pbkdf2"
)

// Role constants
const (
	RoleAdmin   = "admin"
	RoleTrainer = "trainer"
)

// ValidRoles contains all valid role values.
var ValidRoles = []string{RoleAdmin, RoleTrainer}

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 4

// Hash parameters. Changing them only affects newly set passwords; stored
// hashes carry their own iteration count.
const (
	hashIterations = 260000
	hashSaltBytes  = 16
	hashKeyBytes   = 32
)

// Domain errors
var (
	ErrEmptyUsername    = errors.New("username cannot be empty")
	ErrInvalidRole      = errors.New("role must be one of: admin, trainer")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrPasswordTooShort = errors.New("password must be at least 4 characters")
	ErrWrongPassword    = errors.New("incorrect password")
)

// User holds state for a login account. TrainerID links a trainer login to its
// trainer row; zero means no link (admins).
type User struct {
	ID        int64
	Username  string
	Password  string // serialized hash, never plaintext
	Role      string
	TrainerID int64
}

// Validate checks if the User has valid data.
// PRE: User struct is populated
// POST: Returns nil if valid, error otherwise
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return ErrEmptyUsername
	}
	if !isValidRole(u.Role) {
		return ErrInvalidRole
	}
	return nil
}

// SetPassword hashes and stores a password using PBKDF2-HMAC-SHA256.
// PRE: plaintext is non-empty and >= MinPasswordLength characters
// POST: Password is set to the serialized hash
func (u *User) SetPassword(plaintext string) error {
	if plaintext == "" {
		return ErrEmptyPassword
	}
	if len(plaintext) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	hash, err := hashPassword(plaintext)
	if err != nil {
		return err
	}
	u.Password = hash
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
// PRE: Password is set
// INVARIANT: User fields are not mutated
func (u *User) CheckPassword(plaintext string) error {
	if u.Password == "" {
		return ErrWrongPassword
	}
	if !VerifyHash(u.Password, plaintext) {
		return ErrWrongPassword
	}
	return nil
}

// IsAdmin returns true if the user has admin role.
// INVARIANT: User fields are not mutated
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// VerifyHash reports whether plaintext matches a serialized hash. A malformed
// hash never matches. The digest comparison is constant-time.
func VerifyHash(serialized, plaintext string) bool {
	iterations, salt, digest, err := decodeHash(serialized)
	if err != nil {
		return false
	}
	candidate := pbkdf2.Key([]byte(plaintext), salt, iterations, len(digest), sha256.New)
	return hmac.Equal(candidate, digest)
}

// DecoyHash returns a hash of a random password nobody knows. Login verifies
// against it when the username is unknown so that unknown-user and
// wrong-password take the same time.
var DecoyHash = sync.OnceValue(func() string {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	hash, err := hashPassword(hex.EncodeToString(buf))
	if err != nil {
		panic(err)
	}
	return hash
})

// hashPassword derives a fresh-salt PBKDF2 hash serialized as
// pbkdf2:sha256:<iterations>$<salt>$<hexdigest>. The salt field's ASCII
// bytes are the salt itself, so hashes imported from the previous system
// verify unchanged.
func hashPassword(plaintext string) (string, error) {
	raw := make([]byte, hashSaltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	salt := hex.EncodeToString(raw)
	digest := pbkdf2.Key([]byte(plaintext), []byte(salt), hashIterations, hashKeyBytes, sha256.New)
	return fmt.Sprintf("pbkdf2:sha256:%d$%s$%s",
		hashIterations, salt, hex.EncodeToString(digest)), nil
}

func decodeHash(serialized string) (iterations int, salt, digest []byte, err error) {
	parts := strings.Split(serialized, "$")
	if len(parts) != 3 {
		return 0, nil, nil, errors.New("malformed hash")
	}
	method := strings.Split(parts[0], ":")
	if len(method) != 3 || method[0] != "pbkdf2" || method[1] != "sha256" {
		return 0, nil, nil, errors.New("unsupported hash method")
	}
	iterations, err = strconv.Atoi(method[2])
	if err != nil || iterations <= 0 {
		return 0, nil, nil, errors.New("malformed iteration count")
	}
	if parts[1] == "" {
		return 0, nil, nil, errors.New("malformed salt")
	}
	salt = []byte(parts[1])
	digest, err = hex.DecodeString(parts[2])
	if err != nil || len(digest) == 0 {
		return 0, nil, nil, errors.New("malformed digest")
	}
	return iterations, salt, digest, nil
}

func isValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
