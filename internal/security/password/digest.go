package password

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"strings"
)

// namedDigest es una función de hash plano identificada por su nombre
// configurado (convención JCA: "MD5", "SHA-1", "SHA-256", ...).
type namedDigest struct {
	name string
	fn   func() hash.Hash
}

// Tabla de digests soportados. La clave es el nombre normalizado (mayúsculas
// sin guión) para aceptar "SHA-256", "sha256" y "SHA256" por igual.
var digests = map[string]namedDigest{
	"MD5":    {name: "MD5", fn: md5.New},
	"SHA1":   {name: "SHA-1", fn: sha1.New},
	"SHA224": {name: "SHA-224", fn: sha256.New224},
	"SHA256": {name: "SHA-256", fn: sha256.New},
	"SHA384": {name: "SHA-384", fn: sha512.New384},
	"SHA512": {name: "SHA-512", fn: sha512.New},
}

func lookupDigest(name string) (namedDigest, bool) {
	key := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", ""))
	d, ok := digests[key]
	return d, ok
}

// verify compara hex(digest(lower(plain))) contra el hash almacenado,
// sensible a mayúsculas en el hex.
//
// El lower-case del password es parte del contrato legado: los hashes en la
// base se generaron así. No "arreglarlo" acá; queda aislado en esta variante
// para que no contamine a los otros esquemas.
func (d namedDigest) verify(plain, stored string) bool {
	h := d.fn()
	h.Write([]byte(strings.ToLower(plain)))
	return hex.EncodeToString(h.Sum(nil)) == stored
}
