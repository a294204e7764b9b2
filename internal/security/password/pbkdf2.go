package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Formato almacenado: $<iteraciones>$<salt>$<hexKey>
// El split en "$" deja un primer campo vacío, por eso son 4 componentes.
const pbkdf2FieldCount = 4

// verifyPBKDF2SHA256 deriva la clave con HMAC-SHA256 iterado y compara con
// el campo hex almacenado. El largo de clave lo dicta el propio campo.
// Cualquier malformación (campos de menos, iteraciones no numéricas, hex
// inválido) resuelve a false: un hash roto en la base no puede tirar el
// flujo de autenticación.
func verifyPBKDF2SHA256(plain, stored string) bool {
	parts := strings.Split(stored, "$")
	if len(parts) != pbkdf2FieldCount || parts[0] != "" {
		return false
	}
	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 {
		return false
	}
	salt := parts[2]
	want, err := hex.DecodeString(parts[3])
	if err != nil || len(want) == 0 {
		return false
	}
	got := pbkdf2.Key([]byte(plain), []byte(salt), iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}
