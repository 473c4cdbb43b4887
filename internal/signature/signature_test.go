package signature

import (
	"errors"
	"testing"
)

func TestVerifyValidSignature(t *testing.T) {
	secret := "test-secret"
	body := []byte(`{"triggerEvent":"BOOKING_CREATED"}`)

	sig := Compute(secret, body)
	if err := Verify(secret, body, sig); err != nil {
		t.Errorf("Verify() = %v, want nil", err)
	}
}

func TestVerifyMutatedBody(t *testing.T) {
	secret := "test-secret"
	body := []byte(`{"triggerEvent":"BOOKING_CREATED"}`)
	sig := Compute(secret, body)

	mutated := append([]byte{}, body...)
	mutated[0] ^= 0x01

	if err := Verify(secret, mutated, sig); !errors.Is(err, ErrMismatch) {
		t.Errorf("Verify() with mutated body = %v, want ErrMismatch", err)
	}
}

func TestVerifyMutatedSignature(t *testing.T) {
	secret := "test-secret"
	body := []byte(`payload`)
	sig := Compute(secret, body)

	// Flip one hex digit.
	b := []byte(sig)
	if b[0] == 'a' {
		b[0] = 'b'
	} else {
		b[0] = 'a'
	}

	if err := Verify(secret, body, string(b)); !errors.Is(err, ErrMismatch) {
		t.Errorf("Verify() with mutated signature = %v, want ErrMismatch", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	body := []byte(`payload`)
	sig := Compute("secret-a", body)

	if err := Verify("secret-b", body, sig); !errors.Is(err, ErrMismatch) {
		t.Errorf("Verify() with wrong secret = %v, want ErrMismatch", err)
	}
}

func TestVerifyTruncatedSignature(t *testing.T) {
	secret := "test-secret"
	body := []byte(`payload`)
	sig := Compute(secret, body)

	if err := Verify(secret, body, sig[:32]); !errors.Is(err, ErrMismatch) {
		t.Errorf("Verify() with truncated signature = %v, want ErrMismatch", err)
	}
}

func TestVerifyMalformedSignature(t *testing.T) {
	tests := []string{
		"not-hex-at-all",
		"zzzz",
		"abc", // odd length
	}

	for _, sig := range tests {
		if err := Verify("secret", []byte("body"), sig); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Verify() with signature %q = %v, want ErrInvalidFormat", sig, err)
		}
	}
}
