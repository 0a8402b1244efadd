package treescan

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// dropInvalid is a transform.Transformer that removes ill-formed UTF-8 bytes
// and copies everything else, including a well-formed U+FFFD, unchanged.
type dropInvalid struct{ transform.NopResetter }

func (dropInvalid) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			// a truncated sequence at the end of the chunk may complete in the next one
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			nSrc++

			continue
		}
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
	}

	return nDst, nSrc, nil
}
