package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned whenever a password fails verification,
// whether the password is wrong or the stored hash is unusable. Callers get
// a single answer: the credential did not verify.
var ErrPasswordMismatch = errors.New("cryptox: password does not match")

// HashPassword derives a bcrypt hash from the plaintext using the library
// default cost. The returned string is self-contained: it embeds the
// algorithm tag, cost and a fresh random salt, so two calls with the same
// input produce different encodings that both verify.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword recomputes the hash using the salt embedded in encodedHash
// and compares in constant time. It fails closed: a malformed hash, a wrong
// algorithm tag or a mismatching password all return ErrPasswordMismatch.
func VerifyPassword(password, encodedHash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}
