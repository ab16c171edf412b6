package memalloc

import (
	"unsafe"
)

// Block is a single raw allocation: a header-prefixed, alignment-satisfying
// byte buffer. It is the single allocation primitive every container in
// package container is built on.
type Block struct {
	raw []byte // the full system allocation, header included
	payload []byte // raw[payloadOffset : payloadOffset+PayloadSize]
	offset int // byte offset of payload within raw
}

// Allocate reserves room for count elements of size elemSize, aligned to
// align, and returns a Block whose Payload() is ready to hold them.
//
// align must be a power of two in (0, MaxAlignment], and the combined
// request must fit comfortably inside Go's own slice-length limits
// (48-bit element counts, far below what a []byte can express, so no
// separate check is required beyond the power-of-two/alignment one).
func Allocate(count, elemSize int, align uintptr) *Block {
	if count <= 0 || elemSize <= 0 {
		fatal("memalloc: Allocate called with non-positive count/elemSize")
	}
	if align == 0 {
		align = 1
	}
	if align > MaxAlignment || !isPowerOfTwo(align) {
		fatal("memalloc: alignment must be a power of two in (0, MaxAlignment]")
	}
	if align < unsafe.Alignof(Header{}) {
		align = unsafe.Alignof(Header{})
	}

	payloadSize := count * elemSize
	// Over-allocate by (align-1) extra bytes so we can slide the payload
	// start forward to the next aligned offset after the header.
	systemSize := headerSize + payloadSize + int(align) - 1
	raw := make([]byte, systemSize)

	offset := alignedPayloadOffset(raw, align)
	if offset+payloadSize > len(raw) {
		fatal("memalloc: alignment overflowed system allocation")
	}

	h := headerOf(raw)
	h.PayloadSize = uint64(payloadSize)
	h.Alignment = uint32(align)
	h.SystemSize = uint64(systemSize)
	h.stamp()

	return &Block{
		raw: raw,
		payload: raw[offset : offset+payloadSize : offset+payloadSize],
		offset: offset,
	}
}

// alignedPayloadOffset returns the first offset at or after headerSize
// whose backing address satisfies align.
func alignedPayloadOffset(raw []byte, align uintptr) int {
	base := uintptr(unsafe.Pointer(&raw[0]))
	want := alignUp(base+headerSize, align)
	return int(want - base)
}

func headerOf(raw []byte) *Header {
	return (*Header)(unsafe.Pointer(&raw[0]))
}

// Payload returns the live byte range of the allocation.
func (b *Block) Payload() []byte { return b.payload }

// Header returns the header describing this allocation.
func (b *Block) Header() *Header { return headerOf(b.raw) }

// IsInPlaceReallocatable reports whether the block's backing allocation has
// enough slack to hold newPayloadSize bytes without moving.
func (b *Block) IsInPlaceReallocatable(newPayloadSize int) bool {
	return b.offset+newPayloadSize <= len(b.raw)
}

// Reallocate grows or shrinks the block to newPayloadSize bytes, preserving
// the original alignment. This is only valid for trivially-relocatable
// payloads (the container layer enforces that constraint by type;
// memalloc itself is type-agnostic and always performs a byte-wise
// relocation when it cannot grow in place).
func (b *Block) Reallocate(newPayloadSize int) {
	if newPayloadSize < 0 {
		fatal("memalloc: Reallocate called with negative size")
	}
	if b.IsInPlaceReallocatable(newPayloadSize) {
		b.payload = b.raw[b.offset : b.offset+newPayloadSize : b.offset+newPayloadSize]
		h := headerOf(b.raw)
		h.PayloadSize = uint64(newPayloadSize)
		h.stamp()
		return
	}

	align := uintptr(headerOf(b.raw).Alignment)
	replacement := Allocate(1, newPayloadSize, align)
	n := copy(replacement.payload, b.payload)
	_ = n
	*b = *replacement
}

// Free verifies the header checksum (development builds only) and drops
// the reference to the backing allocation, letting the Go garbage
// collector reclaim it. There is no explicit "system free" call: this is
// the idiomatic Go replacement for free(), which otherwise calls
// out to a genuine system allocator.
func (b *Block) Free() {
	h := headerOf(b.raw)
	if DevelopmentBuild {
		for _, p := range [...]byte{poisonUninitialized, poisonFreed, poisonFence, poisonNoMansLand} {
			if h.PayloadSize == uint64(p)*0x0101010101010101 {
				fatal("memalloc: header holds a poison pattern on Free (uninitialized or freed memory)")
			}
		}
	}
	if DevelopmentBuild && !h.Valid() {
		fatal("memalloc: header checksum mismatch on Free (corruption or double free)")
	}
	if DevelopmentBuild {
		for i := range b.payload {
			b.payload[i] = poisonFreed
		}
	}
	b.raw = nil
	b.payload = nil
	b.offset = 0
}

// fatal terminates the process: out-of-memory and header corruption are
// both treated as unrecoverable.
func fatal(msg string) {
	panic(msg)
}
