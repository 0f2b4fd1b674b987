// Copyright (c) 2019,CAOHONGJU All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var bitsDatas = [][]byte{
	{0xFF, 0xF2, 0x10, 0x40, 0x00, 0x52, 0x00, 0x00, 0x00},
	{0xFF, 0xF2, 0x52, 0x40, 0x08, 0x21, 0x02, 0x08, 0x00},
}

func TestBitsReader_ReadBit(t *testing.T) {
	r := NewReader(bitsDatas[0])
	gotRet := r.ReadBit()
	wantRet := uint8(1)
	assert.Equal(t, wantRet, gotRet)

	gotRet = r.ReadBit()
	wantRet = 1
	assert.Equal(t, wantRet, gotRet)

	r.Skip(10)
	gotRet = r.ReadBit()
	wantRet = 0
	assert.Equal(t, wantRet, gotRet)

	gotRet = r.ReadBit()
	wantRet = 0
	assert.Equal(t, wantRet, gotRet)

	gotRet = r.ReadBit()
	wantRet = 1
	assert.Equal(t, wantRet, gotRet)

	gotRet = r.ReadBit()
	wantRet = 0
	assert.Equal(t, wantRet, gotRet)

	gotRet8 := r.ReadUint8(8)
	assert.Equal(t, uint8(0x10), gotRet8)
}

func TestBitsReader_ReadUint16(t *testing.T) {
	r := NewReader(bitsDatas[0])
	gotRet := r.ReadUint16(12)
	wantRet := uint16(0xFFF)
	assert.Equal(t, wantRet, gotRet)

	gotRet = r.ReadUint16(4)
	wantRet = uint16(0x2)
	assert.Equal(t, wantRet, gotRet)

	r.Skip(1)
	gotRet = r.ReadUint16(6)
	wantRet = uint16(0x8)
	assert.Equal(t, wantRet, gotRet)
}

func TestBitsReader_ReadUint32(t *testing.T) {
	r := NewReader(bitsDatas[1])
	gotRet := r.ReadUint32(32)
	wantRet := uint32(0xFFF25240)
	assert.Equal(t, wantRet, gotRet)

	r.Skip(4)
	gotRet = r.ReadUint32(12)
	wantRet = uint32(0x821)
	assert.Equal(t, wantRet, gotRet)
}

func TestBitsReader_ReadUint64(t *testing.T) {
	r := NewReader(bitsDatas[1])
	gotRet := r.ReadUint64(36)
	wantRet := uint64(0xFFF252400)
	assert.Equal(t, wantRet, gotRet)

	gotRet = r.ReadUint64(32)
	wantRet = uint64(0x82102080)
	assert.Equal(t, wantRet, gotRet)
}

func TestBitsReader_Peek(t *testing.T) {
	r := NewReader(bitsDatas[0])
	gotRet := r.Peek(12)
	assert.Equal(t, uint64(0xFFF), gotRet)
	assert.Equal(t, 0, r.Offset())

	gotRet16 := r.ReadUint16(12)
	assert.Equal(t, uint16(0xFFF), gotRet16)
}

func TestBitsReader_Left(t *testing.T) {
	r := NewReader(bitsDatas[0])
	r.Skip(16)
	assert.Equal(t, 16, r.Offset())
	assert.Equal(t, len(bitsDatas[0])*8-16, r.BitsLeft())
	assert.Equal(t, bitsDatas[0][2:], r.BytesLeft())
}

func BenchmarkReadBit(b *testing.B) {
	r := NewReader(bitsDatas[1])
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.offset = 2
		ret := r.ReadBit()
		_ = ret
	}
}

func BenchmarkReadUint8(b *testing.B) {
	r := NewReader(bitsDatas[1])
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.offset = 2
		ret := r.ReadUint8(7)
		_ = ret
	}
}

func BenchmarkReadUint16(b *testing.B) {
	r := NewReader(bitsDatas[1])
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.offset = 2
		ret := r.ReadUint16(13)
		_ = ret
	}
}

func BenchmarkReadUint32(b *testing.B) {
	r := NewReader(bitsDatas[1])
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.offset = 2
		ret := r.ReadUint32(29)
		_ = ret
	}
}

func BenchmarkReadUint64(b *testing.B) {
	r := NewReader(bitsDatas[1])
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.offset = 2
		ret := r.ReadUint64(61)
		_ = ret
	}
}
