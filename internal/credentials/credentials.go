// Package credentials hashes and verifies passwords and security answers.
//
// The default scheme is a 32-bit FNV-1a fingerprint. It is deterministic,
// unsalted and trivially brute-forced: it exists only so that documents
// written by earlier versions keep working on a single local device. It is
// NOT a security primitive. The argon2id scheme is the salted, slow
// alternative; Verify understands both formats, so switching schemes never
// locks anyone out.
package credentials

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"golang.org/x/crypto/argon2"

	"github.com/dmitrijs2005/questkeeper/internal/common"
)

// Hasher produces stored hashes for new secrets.
type Hasher interface {
	Hash(secret string) string
	Verify(secret, stored string) bool
}

const (
	fnvOffset = 2166136261
	fnvPrime  = 16777619
)

// Fingerprint returns the FNV-1a variant digest of s as unpadded lower-case
// hex. Input is consumed as UTF-16 code units so digests match documents
// produced by the browser build.
func Fingerprint(s string) string {
	var h uint32 = fnvOffset
	for _, c := range utf16.Encode([]rune(s)) {
		h ^= uint32(c)
		h *= fnvPrime
	}
	return strconv.FormatUint(uint64(h), 16)
}

// FingerprintHasher stores plain fingerprints.
type FingerprintHasher struct{}

func (FingerprintHasher) Hash(secret string) string { return Fingerprint(secret) }

func (FingerprintHasher) Verify(secret, stored string) bool { return Verify(secret, stored) }

const argonPrefix = "argon2id$"

// Limits on parameters read back from a stored argon2id hash. Stored hashes
// may come from an imported save, so anything outside them fails to verify.
const (
	maxArgonTime   = 16
	maxArgonMemKiB = 1 << 20 // 1 GiB
	maxArgonKeyLen = 64
)

// Argon2Hasher stores "argon2id$<t>$<m>$<p>$<salt hex>$<key hex>".
type Argon2Hasher struct {
	Time    uint32
	MemKiB  uint32
	Threads uint8
	KeyLen  uint32
	SaltLen int
}

// DefaultArgon2 mirrors the interactive-login parameters recommended by
// RFC 9106 for memory-constrained hosts.
func DefaultArgon2() Argon2Hasher {
	return Argon2Hasher{Time: 1, MemKiB: 64 * 1024, Threads: 4, KeyLen: 32, SaltLen: 16}
}

func (a Argon2Hasher) Hash(secret string) string {
	salt := common.GenerateRandByteArray(a.SaltLen)
	pw := []byte(secret)
	defer common.WipeByteArray(pw)

	key := argon2.IDKey(pw, salt, a.Time, a.MemKiB, a.Threads, a.KeyLen)
	return fmt.Sprintf("%s%d$%d$%d$%s$%s", argonPrefix, a.Time, a.MemKiB, a.Threads,
		hex.EncodeToString(salt), hex.EncodeToString(key))
}

func (a Argon2Hasher) Verify(secret, stored string) bool { return Verify(secret, stored) }

// Verify checks secret against a stored hash of either scheme.
func Verify(secret, stored string) bool {
	if !strings.HasPrefix(stored, argonPrefix) {
		return subtle.ConstantTimeCompare([]byte(Fingerprint(secret)), []byte(stored)) == 1
	}

	parts := strings.Split(strings.TrimPrefix(stored, argonPrefix), "$")
	if len(parts) != 5 {
		return false
	}
	t, err1 := strconv.ParseUint(parts[0], 10, 32)
	m, err2 := strconv.ParseUint(parts[1], 10, 32)
	p, err3 := strconv.ParseUint(parts[2], 10, 8)
	salt, err4 := hex.DecodeString(parts[3])
	want, err5 := hex.DecodeString(parts[4])
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
		return false
	}
	if t < 1 || t > maxArgonTime || p < 1 || m < 8*p || m > maxArgonMemKiB {
		return false
	}
	if len(want) == 0 || len(want) > maxArgonKeyLen {
		return false
	}

	pw := []byte(secret)
	defer common.WipeByteArray(pw)
	got := argon2.IDKey(pw, salt, uint32(t), uint32(m), uint8(p), uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1
}

// ForScheme maps a config scheme name to a Hasher.
func ForScheme(name string) (Hasher, error) {
	switch name {
	case "fingerprint", "":
		return FingerprintHasher{}, nil
	case "argon2id":
		return DefaultArgon2(), nil
	}
	return nil, fmt.Errorf("unknown credential scheme %q", name)
}
