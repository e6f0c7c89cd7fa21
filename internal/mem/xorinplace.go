package mem

// XORInPlace sets dst[i] ^= src[i] for each i.
func XORInPlace(dst, src []byte) {
	for i, s := range src[:len(dst)] {
		dst[i] ^= s
	}
}
