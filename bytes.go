package fricgan

// Write copies src into sink, both starting at offset 0, and returns
// len(src). sink must be at least as long as src; spare capacity past
// len(sink) is never used.
func Write(src, sink []byte) int {
	if assertions {
		assertFits("Write", len(src), len(sink))
	}
	return copy(sink[:len(src):len(sink)], src)
}

// Read fills dst from source, both starting at offset 0, and returns
// len(dst). source must be at least as long as dst.
func Read(dst, source []byte) int {
	if assertions {
		assertFits("Read", len(dst), len(source))
	}
	return copy(dst, source[:len(dst):len(source)])
}
