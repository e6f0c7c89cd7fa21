package xoodyak_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/codahale/cyclist"
	"github.com/codahale/cyclist/schemes/aead"
	"github.com/codahale/cyclist/xoodyak"
)

func TestHash(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got := xoodyak.Sum256(nil)
		if got == [xoodyak.HashSize]byte{} {
			t.Fatal("digest of empty message is zero")
		}
		if got != xoodyak.Sum256(nil) {
			t.Fatal("not deterministic")
		}
	})

	t.Run("matches hash.Hash", func(t *testing.T) {
		h := xoodyak.NewHash()
		_, _ = h.Write([]byte("Xoodyak"))

		want := xoodyak.Sum256([]byte("Xoodyak"))
		if !bytes.Equal(h.Sum(nil), want[:]) {
			t.Fatal("NewHash and Sum256 disagree")
		}
	})

	t.Run("message separation", func(t *testing.T) {
		if xoodyak.Sum256(nil) == xoodyak.Sum256([]byte{0}) {
			t.Fatal("distinct messages collided")
		}
	})
}

func TestAEAD(t *testing.T) {
	key := make([]byte, xoodyak.KeySize)
	nonce := make([]byte, xoodyak.NonceSize)

	t.Run("empty everything", func(t *testing.T) {
		a, err := xoodyak.NewAEAD(key)
		if err != nil {
			t.Fatal(err)
		}

		sealed := a.Seal(nil, nonce, nil, nil)
		if got, want := len(sealed), xoodyak.TagSize; got != want {
			t.Fatalf("sealed length %d, want %d", got, want)
		}

		if _, err := a.Open(nil, nonce, sealed, nil); err != nil {
			t.Fatalf("Open: %v", err)
		}
	})

	t.Run("single zero byte", func(t *testing.T) {
		a, err := xoodyak.NewAEAD(key)
		if err != nil {
			t.Fatal(err)
		}

		sealed := a.Seal(nil, nonce, []byte{0}, nil)
		if got, want := len(sealed), 1+xoodyak.TagSize; got != want {
			t.Fatalf("sealed length %d, want %d", got, want)
		}

		opened, err := a.Open(nil, nonce, sealed, nil)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		if !bytes.Equal(opened, []byte{0}) {
			t.Fatalf("got %x, want 00", opened)
		}
	})

	t.Run("rejects flipped tag bit", func(t *testing.T) {
		a, err := xoodyak.NewAEAD(key)
		if err != nil {
			t.Fatal(err)
		}

		sealed := a.Seal(nil, nonce, []byte{0}, nil)
		sealed[len(sealed)-1] ^= 0x01

		if _, err := a.Open(nil, nonce, sealed, nil); !errors.Is(err, aead.ErrInvalidCiphertext) {
			t.Fatalf("got %v, want ErrInvalidCiphertext", err)
		}
	})
}

func TestRatchetChangesKeystream(t *testing.T) {
	key := make([]byte, xoodyak.KeySize)
	plaintext := []byte("the same plaintext")

	ratcheted, err := cyclist.NewKeyed(xoodyak.Xoodoo, key, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	ratcheted.Absorb([]byte("ad"))
	ratcheted.Ratchet()

	plain, err := cyclist.NewKeyed(xoodyak.Xoodoo, key, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	plain.Absorb([]byte("ad"))

	if bytes.Equal(ratcheted.Encrypt(nil, plaintext), plain.Encrypt(nil, plaintext)) {
		t.Fatal("ratchet did not change the ciphertext")
	}
}

func TestParameters(t *testing.T) {
	p := xoodyak.Xoodoo

	if got, want := p.Width, 48; got != want {
		t.Errorf("Width = %d, want %d", got, want)
	}
	if got, want := p.Rates, (cyclist.Rates{Absorb: 16, Squeeze: 16, KeyedAbsorb: 44, KeyedSqueeze: 24, Ratchet: 16}); got != want {
		t.Errorf("Rates = %+v, want %+v", got, want)
	}
}
