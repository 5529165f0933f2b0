package strbuf

// StripBOM removes a leading UTF-8 byte order mark (EF BB BF) in place and
// reports whether one was removed. Buffers shorter than three bytes, or not
// starting with the mark, are left unchanged. Never allocates.
func (b *Buffer) StripBOM() bool {
	if b.Len() < 3 {
		return false
	}
	if b.data[0] != 0xEF || b.data[1] != 0xBB || b.data[2] != 0xBF {
		return false
	}
	n := copy(b.data, b.data[3:])
	b.data = b.data[:n]
	return true
}

// StripTrailingCRLF removes trailing '\r' and '\n' bytes one at a time, in
// any combination ("\r\n", "\n", "\r", or repeats), until the last byte is
// neither or the buffer is empty. Never allocates.
func (b *Buffer) StripTrailingCRLF() {
	if b == nil {
		return
	}
	n := len(b.data)
	for n > 0 && (b.data[n-1] == '\n' || b.data[n-1] == '\r') {
		n--
	}
	b.data = b.data[:n]
}
