package anybase

// The block primitives shared by the encoder and the decoder. One aligned
// block is at most 5 bytes / 8 symbols (bit width 5), so a single 64-bit
// accumulator always holds a full block with room to spare.

// encodeBlock packs up to blockBytes input bytes into the accumulator, most
// significant byte first, and emits one symbol per bit group, most
// significant group first. src may be shorter than a full block: the missing
// low bytes read as zero, which is exactly the left-aligned zero fill the
// final partial group needs.
func (e *Encoding) encodeBlock(dst, src []byte) {
	var x uint64
	for i := 0; i < len(src); i++ {
		x |= uint64(src[i]) << (8 * (e.blockBytes - 1 - i))
	}
	mask := byte(1<<uint(e.bits) - 1)
	for j := 0; j < len(dst); j++ {
		v := byte(x>>(e.bits*(e.blockSyms-1-j))) & mask
		dst[j] = e.symbols[v]
	}
}

// decodeBlock is the exact inverse of encodeBlock: it reassembles the bit
// groups of up to blockSyms symbols into the accumulator and emits whole
// bytes. Every symbol in src must already have passed validation.
func (e *Encoding) decodeBlock(dst, src []byte) {
	var x uint64
	for i := 0; i < len(src); i++ {
		x |= uint64(e.decodeMap[src[i]]) << (e.bits * (e.blockSyms - 1 - i))
	}
	for j := 0; j < len(dst); j++ {
		dst[j] = byte(x >> (8 * (e.blockBytes - 1 - j)))
	}
}

func divCeil(a, b int) int {
	return (a + b - 1) / b
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
