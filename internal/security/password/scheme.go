// Package password verifica credenciales contra los formatos de hash que
// producen los sistemas legados dueños de la base: bcrypt, PBKDF2-SHA256 y
// digest plano (MD5/SHA). El esquema se resuelve UNA vez desde configuración;
// Verify nunca falla con error, un hash malformado resuelve a false.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Scheme es la variante cerrada de esquemas soportados.
type Scheme int

const (
	// SchemeBCrypt hash salado adaptativo: el string almacenado codifica su
	// propio salt y cost.
	SchemeBCrypt Scheme = iota

	// SchemePBKDF2SHA256 derivación iterada: $<iteraciones>$<salt>$<hexKey>.
	SchemePBKDF2SHA256

	// SchemePlainDigest digest hex del password en minúsculas.
	SchemePlainDigest
)

func (s Scheme) String() string {
	switch s {
	case SchemeBCrypt:
		return "bcrypt"
	case SchemePBKDF2SHA256:
		return "pbkdf2-sha256"
	case SchemePlainDigest:
		return "plain-digest"
	}
	return "unknown"
}

// Verifier compara un password enviado contra el hash almacenado para un
// esquema ya resuelto. Inmutable después de Resolve.
type Verifier struct {
	scheme Scheme
	digest namedDigest // solo para SchemePlainDigest
}

// Resolve construye el Verifier a partir de la configuración: el flag bcrypt
// tiene precedencia; si no, despacha por el identificador de función de hash.
// Un identificador de digest no reconocido es error de configuración, no un
// fallo de validación en runtime.
func Resolve(hashFunction string, useBCrypt bool) (*Verifier, error) {
	if useBCrypt {
		return &Verifier{scheme: SchemeBCrypt}, nil
	}
	if hashFunction == "PBKDF2-SHA256" {
		return &Verifier{scheme: SchemePBKDF2SHA256}, nil
	}
	d, ok := lookupDigest(hashFunction)
	if !ok {
		return nil, fmt.Errorf("password: unsupported hash function %q", hashFunction)
	}
	return &Verifier{scheme: SchemePlainDigest, digest: d}, nil
}

// Scheme retorna la variante resuelta.
func (v *Verifier) Scheme() Scheme {
	return v.scheme
}

// Verify reporta si plain corresponde al hash almacenado. Credencial vacía o
// malformada => false, determinístico, nunca panic.
func (v *Verifier) Verify(plain, stored string) bool {
	if stored == "" {
		return false
	}
	switch v.scheme {
	case SchemeBCrypt:
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
	case SchemePBKDF2SHA256:
		return verifyPBKDF2SHA256(plain, stored)
	case SchemePlainDigest:
		return v.digest.verify(plain, stored)
	}
	return false
}
