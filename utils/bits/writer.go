// Copyright (c) 2019,CAOHONGJU All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bits

// Writer 向字节切片按位写入，最高有效位优先。
// 写入值的低 n 位被使用；buf 中未写入的位保持为零。
type Writer struct {
	buf    []byte
	offset int // bit base
}

// NewWriter returns a new Writer producing size bytes.
func NewWriter(size int) *Writer {
	return &Writer{
		buf: make([]byte, size),
	}
}

// Skip skip n bits, leaving them zero.
func (w *Writer) Skip(n int) {
	if n <= 0 {
		return
	}
	_ = w.buf[(w.offset+n-1)>>3] // bounds check hint to compiler; see golang.org/issue/14808
	w.offset += n
}

// WriteBit write a bit.
func (w *Writer) WriteBit(v uint8) {
	w.buf[w.offset>>3] |= (v & 1) << (7 - w.offset&0x7)
	w.offset++
}

// WriteBool write one bit bool.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteBit(1)
	} else {
		w.WriteBit(0)
	}
}

// WriteUint8 write the low n bits of the uint8.
func (w *Writer) WriteUint8(v uint8, n int) { w.write64(uint64(v), n, 8) }

// WriteUint16 write the low n bits of the uint16.
func (w *Writer) WriteUint16(v uint16, n int) { w.write64(uint64(v), n, 16) }

// WriteUint32 write the low n bits of the uint32.
func (w *Writer) WriteUint32(v uint32, n int) { w.write64(uint64(v), n, 32) }

// WriteUint64 write the low n bits of the uint64.
func (w *Writer) WriteUint64(v uint64, n int) { w.write64(v, n, 64) }

// Offset returns the offset of bits.
func (w *Writer) Offset() int {
	return w.offset
}

// BitsLeft returns the number of left bits.
func (w *Writer) BitsLeft() int {
	return len(w.buf)<<3 - w.offset
}

// Bytes returns the underlying byte slice.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// write64 write the low n bits of the uint64.
func (w *Writer) write64(v uint64, n, max int) {
	if n <= 0 || n > max {
		return
	}

	_ = w.buf[(w.offset+n-1)>>3] // bounds check hint to compiler; see golang.org/issue/14808

	idx := w.offset >> 3
	validBits := 8 - w.offset&0x7
	w.offset += n

	for n >= validBits {
		n -= validBits
		w.buf[idx] |= byte(v>>n) & bitsMask[validBits]
		idx++
		validBits = 8
	}

	if n > 0 {
		w.buf[idx] |= (byte(v) & bitsMask[n]) << (validBits - n)
	}
}
