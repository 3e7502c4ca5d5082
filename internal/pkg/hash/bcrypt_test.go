package hash

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashAndVerify(t *testing.T) {
	h := NewBcryptWithCost(bcrypt.MinCost)

	digest, err := h.Hash("pw1")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if digest == "pw1" || !strings.HasPrefix(digest, "$2") {
		t.Fatalf("unexpected digest: %q", digest)
	}
	if !h.Verify("pw1", digest) {
		t.Fatalf("verify rejected the original password")
	}
	if h.Verify("wrong", digest) {
		t.Fatalf("verify accepted a wrong password")
	}
}

func TestBcrypt_DistinctSalts(t *testing.T) {
	h := NewBcryptWithCost(bcrypt.MinCost)

	first, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	second, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct digests for identical input")
	}
	if !h.Verify("same-input", first) || !h.Verify("same-input", second) {
		t.Fatalf("both digests must verify")
	}
}

func TestBcrypt_MalformedDigest(t *testing.T) {
	h := NewBcrypt()

	for _, digest := range []string{"", "not-a-digest", "$2a$zz$garbage"} {
		if h.Verify("anything", digest) {
			t.Fatalf("verify accepted malformed digest %q", digest)
		}
	}
}

func TestBcrypt_CostClamped(t *testing.T) {
	h := NewBcryptWithCost(99)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", h.cost)
	}
}
