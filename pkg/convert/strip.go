package convert

// StripBinary drops bytes below 0x09 and normalises line breaks: CR LF
// becomes LF, and a lone CR or a form feed becomes LF.
func StripBinary(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case c < '\t':
			continue
		case c == '\r':
			if i+1 < len(b) && b[i+1] == '\n' {
				continue
			}
			out = append(out, '\n')
		case c == '\f':
			out = append(out, '\n')
		default:
			out = append(out, c)
		}
	}
	return out
}
