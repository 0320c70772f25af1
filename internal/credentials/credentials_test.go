package credentials

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint_KnownVectors(t *testing.T) {
	// Standard FNV-1a 32-bit vectors; for ASCII input the UTF-16 variant
	// is identical to the byte-wise algorithm.
	tests := []struct {
		in   string
		want string
	}{
		{"", "811c9dc5"},
		{"a", "e40c292c"},
		{"foobar", "bf9cf968"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Fingerprint(tt.in), tt.in)
	}
}

func TestFingerprint_UnpaddedHex(t *testing.T) {
	for _, s := range []string{"secret1", "rex", "newpass1", "пароль", "🔥"} {
		fp := Fingerprint(s)
		assert.NotEmpty(t, fp)
		assert.LessOrEqual(t, len(fp), 8)
		assert.False(t, strings.HasPrefix(fp, "0") && len(fp) > 1, "hex must be unpadded: %s", fp)
		assert.Equal(t, fp, Fingerprint(s), "deterministic")
	}
}

func TestFingerprint_CaseSensitive(t *testing.T) {
	assert.NotEqual(t, Fingerprint("Rex"), Fingerprint("rex"))
}

func TestFingerprintHasher(t *testing.T) {
	var h Hasher = FingerprintHasher{}

	stored := h.Hash("secret1")
	assert.Equal(t, Fingerprint("secret1"), stored)
	assert.True(t, h.Verify("secret1", stored))
	assert.False(t, h.Verify("secret2", stored))
}

func fastArgon() Argon2Hasher {
	return Argon2Hasher{Time: 1, MemKiB: 256, Threads: 1, KeyLen: 16, SaltLen: 8}
}

func TestArgon2Hasher_HashAndVerify(t *testing.T) {
	h := fastArgon()

	a := h.Hash("secret1")
	b := h.Hash("secret1")
	require.True(t, strings.HasPrefix(a, "argon2id$"))
	assert.NotEqual(t, a, b, "salted hashes differ")

	assert.True(t, h.Verify("secret1", a))
	assert.True(t, Verify("secret1", b))
	assert.False(t, h.Verify("secret2", a))
}

func TestVerify_AcceptsLegacyFingerprintUnderArgon(t *testing.T) {
	h := fastArgon()
	assert.True(t, h.Verify("secret1", Fingerprint("secret1")))
}

func TestVerify_MalformedArgon(t *testing.T) {
	for _, stored := range []string{
		"argon2id$",
		"argon2id$1$256$1$zz$00",
		"argon2id$x$256$1$00$00",
		"argon2id$1$256$1$00$",
		"argon2id$1$64$0$00$00",
		"argon2id$0$64$1$00$00",
		"argon2id$1$4$1$00$00",
		"argon2id$1$4294967295$1$00$00",
		"argon2id$4294967295$64$1$00$00",
		"argon2id$1$64$1$00$" + strings.Repeat("00", maxArgonKeyLen+1),
	} {
		assert.False(t, Verify("secret1", stored), stored)
	}
}

func TestForScheme(t *testing.T) {
	h, err := ForScheme("fingerprint")
	require.NoError(t, err)
	assert.IsType(t, FingerprintHasher{}, h)

	h, err = ForScheme("argon2id")
	require.NoError(t, err)
	assert.IsType(t, Argon2Hasher{}, h)

	_, err = ForScheme("md5")
	require.Error(t, err)
}
