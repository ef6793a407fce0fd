package dictionary

// appendLowerASCII appends the ASCII-lowercased bytes of src to dst,
// returning the extended slice. Only bytes in 'A'-'Z' are folded; everything
// else (including any non-ASCII byte) passes through unchanged. There is no
// Unicode-aware case folding here by design.
func appendLowerASCII(dst, src []byte) []byte {
	for _, c := range src {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		dst = append(dst, c)
	}
	return dst
}
