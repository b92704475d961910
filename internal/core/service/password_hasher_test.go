package service

import "testing"

func TestPasswordHasher_HashIsSalted(t *testing.T) {
	h := NewPasswordHasher(4)

	first, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if first == "s3cret" || second == "s3cret" {
		t.Fatalf("digest must not equal plaintext")
	}
	if first == second {
		t.Fatalf("two hashes of the same plaintext must differ")
	}
}

func TestPasswordHasher_Verify(t *testing.T) {
	h := NewPasswordHasher(4)

	digest, err := h.Hash("correct-horse")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if !h.Verify("correct-horse", digest) {
		t.Fatalf("expected verify to succeed for matching plaintext")
	}
	if h.Verify("battery-staple", digest) {
		t.Fatalf("expected verify to fail for wrong plaintext")
	}
	if h.Verify("correct-horse", "not-a-digest") {
		t.Fatalf("expected verify to report false for a garbage digest")
	}
}

func TestPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	h := NewPasswordHasher(99)

	digest, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("hash failed with fallback cost: %v", err)
	}
	if !h.Verify("pw", digest) {
		t.Fatalf("verify failed with fallback cost")
	}
}
