package webgpu

import "encoding/binary"

// int32Bytes encodes v little-endian, the byte order of WGSL storage buffers.
func int32Bytes(v []int32) []byte {
	out := make([]byte, len(v)*4)
	for i, x := range v {
		binary.LittleEndian.PutUint32(out[i*4:], uint32(x)) //nolint:gosec // G115: reinterpreting i32 bits.
	}
	return out
}

// alignedSize rounds size up to COPY_BUFFER_ALIGNMENT (4 bytes), minimum 4.
func alignedSize(size uint64) uint64 {
	if size < 4 {
		size = 4
	}
	return (size + 3) &^ 3
}

// bufferSize is the binding size of a buffer created from v.
func bufferSize(v []int32) uint64 {
	return alignedSize(uint64(len(v)) * 4) //nolint:gosec // G115: slice length is non-negative.
}
