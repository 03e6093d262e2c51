// pkg/crypto/bcrypt.go

package crypto

import (
	cerr "github.com/cockroachdb/errors"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a generated password with bcrypt at the default cost
// (10). `create password --hash` prints the result next to each password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", cerr.Wrap(err, "bcrypt hash")
	}
	return string(hash), nil
}
