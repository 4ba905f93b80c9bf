// Package password deriva y verifica hashes de contraseña (PBKDF2-SHA256) y genera tokens de sesión.
package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	Iterations = 100_000
	SaltBytes  = 16
	KeyBytes   = 32
	TokenBytes = 32
)

// Hash genera una sal aleatoria y deriva el hash. Ambos se devuelven en base64 estándar.
func Hash(plain string) (salt, hash string, err error) {
	raw := make([]byte, SaltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("generar sal: %w", err)
	}
	salt = base64.StdEncoding.EncodeToString(raw)
	return salt, derive(plain, raw), nil
}

// Verify compara en tiempo constante. Una sal mal codificada se trata como contraseña incorrecta.
func Verify(plain, salt, hash string) bool {
	raw, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return false
	}
	got := derive(plain, raw)
	return subtle.ConstantTimeCompare([]byte(got), []byte(hash)) == 1
}

func derive(plain string, salt []byte) string {
	key := pbkdf2.Key([]byte(plain), salt, Iterations, KeyBytes, sha256.New)
	return base64.StdEncoding.EncodeToString(key)
}

// NewToken devuelve un token de sesión aleatorio (base64url sin padding).
func NewToken() (string, error) {
	raw := make([]byte, TokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generar token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// HashToken es el valor que se persiste por sesión: sha256 del token en base64.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.StdEncoding.EncodeToString(sum[:])
}
