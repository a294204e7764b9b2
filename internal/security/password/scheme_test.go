package password

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

func TestResolve_SchemePrecedence(t *testing.T) {
	// bcrypt manda sobre cualquier hash function configurada
	v, err := Resolve("SHA-256", true)
	if err != nil {
		t.Fatalf("Resolve err: %v", err)
	}
	if v.Scheme() != SchemeBCrypt {
		t.Fatalf("expected bcrypt scheme, got %s", v.Scheme())
	}

	v, err = Resolve("PBKDF2-SHA256", false)
	if err != nil {
		t.Fatalf("Resolve err: %v", err)
	}
	if v.Scheme() != SchemePBKDF2SHA256 {
		t.Fatalf("expected pbkdf2 scheme, got %s", v.Scheme())
	}

	v, err = Resolve("MD5", false)
	if err != nil {
		t.Fatalf("Resolve err: %v", err)
	}
	if v.Scheme() != SchemePlainDigest {
		t.Fatalf("expected plain digest scheme, got %s", v.Scheme())
	}
}

func TestResolve_UnknownDigestIsConfigError(t *testing.T) {
	if _, err := Resolve("WHIRLPOOL", false); err == nil {
		t.Fatal("expected error for unknown hash function")
	}
}

func TestResolve_DigestNameNormalization(t *testing.T) {
	for _, name := range []string{"SHA-256", "sha256", "SHA256", " sha-256 "} {
		if _, err := Resolve(name, false); err != nil {
			t.Fatalf("Resolve(%q) err: %v", name, err)
		}
	}
}

func TestVerify_BCryptRoundTrip(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret!"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt err: %v", err)
	}
	v, _ := Resolve("", true)

	if !v.Verify("s3cret!", string(hash)) {
		t.Fatal("expected match for correct password")
	}
	if v.Verify("wrong", string(hash)) {
		t.Fatal("expected no match for wrong password")
	}
	if v.Verify("s3cret!", "") {
		t.Fatal("empty stored credential must not match")
	}
	if v.Verify("s3cret!", "not-a-bcrypt-hash") {
		t.Fatal("malformed stored credential must not match")
	}
}

func TestVerify_PBKDF2RoundTrip(t *testing.T) {
	const (
		iterations = 27500
		salt       = "abcd1234"
	)
	dk := pbkdf2.Key([]byte("hunter2"), []byte(salt), iterations, 32, sha256.New)
	stored := fmt.Sprintf("$%d$%s$%s", iterations, salt, hex.EncodeToString(dk))

	v, _ := Resolve("PBKDF2-SHA256", false)

	if !v.Verify("hunter2", stored) {
		t.Fatal("expected match for correct password")
	}
	if v.Verify("hunter3", stored) {
		t.Fatal("expected no match for wrong password")
	}
}

func TestVerify_PBKDF2Malformed(t *testing.T) {
	v, _ := Resolve("PBKDF2-SHA256", false)

	cases := []string{
		"",                      // vacío
		"$27500$salt",           // falta el campo de clave
		"27500$salt$deadbeef",   // sin campo inicial vacío
		"$abc$salt$deadbeef",    // iteraciones no numéricas
		"$0$salt$deadbeef",      // iteraciones cero
		"$-5$salt$deadbeef",     // iteraciones negativas
		"$27500$salt$zzzz",      // hex inválido
		"$27500$salt$deadbeef$", // campos de más
	}
	for _, stored := range cases {
		if v.Verify("hunter2", stored) {
			t.Errorf("malformed credential %q must verify false", stored)
		}
	}
}

func TestVerify_PlainDigestLowercasesPassword(t *testing.T) {
	// Contrato legado: el password se baja a minúsculas antes de hashear.
	sum := sha256.Sum256([]byte("secret"))
	stored := hex.EncodeToString(sum[:])

	v, err := Resolve("SHA-256", false)
	if err != nil {
		t.Fatalf("Resolve err: %v", err)
	}

	if !v.Verify("SECRET", stored) {
		t.Fatal("upper-cased submission must match (legacy lower-casing)")
	}
	if !v.Verify("secret", stored) {
		t.Fatal("exact submission must match")
	}
	if v.Verify("secret!", stored) {
		t.Fatal("different password must not match")
	}
}

func TestVerify_PlainDigestHexCaseSensitive(t *testing.T) {
	sum := sha256.Sum256([]byte("secret"))
	storedUpper := fmt.Sprintf("%X", sum[:])

	v, _ := Resolve("SHA-256", false)
	if v.Verify("secret", storedUpper) {
		t.Fatal("hex comparison is case sensitive against stored value")
	}
}

func TestVerify_MD5(t *testing.T) {
	// md5("password") conocido
	v, _ := Resolve("MD5", false)
	if !v.Verify("PASSWORD", "5f4dcc3b5aa765d61d8327deb882cf99") {
		t.Fatal("expected md5 match")
	}
}
