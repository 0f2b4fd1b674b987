// Copyright (c) 2019,CAOHONGJU All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package av3a 实现 AVS3-P3（Audio Vivid）音频帧头的解析与生成。
package av3a

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// SamplesPerFrame 每帧每声道采样数
	SamplesPerFrame = 1024

	// MaxHeaderSize 帧头解码窗口字节数；
	// 所有档次的帧头语法都在该窗口内结束。
	MaxHeaderSize = 9

	// SyncWord 帧同步字，12 位
	SyncWord = 0xFFF

	// CodecID 本代编解码器标识，4 位
	CodecID = 2
)

// SampleRate 获取采样频率具体值
func SampleRate(index int) int {
	return SampleRates[index]
}

// SamplingIndex .
func SamplingIndex(rate int) int {
	i := sort.Search(len(SampleRates), func(i int) bool { return SampleRates[i] <= rate })
	if i < len(SampleRates) && SampleRates[i] == rate {
		return i
	}
	return -1
}

// SampleRates 采样频率集合
var SampleRates = [9]int{
	192000, 96000, 48000,
	44100, 32000, 24000,
	22050, 16000, 8000}

// ContentType 音频内容类型
type ContentType int

// 内容类型常量
const (
	ContentTypeChannels ContentType = iota // 声道床
	ContentTypeObjects                     // 纯对象
	ContentTypeMixed                       // 声道床+对象
	ContentTypeHOA                         // 高阶 Ambisonics 场景
)

// String returns a lower-case ASCII representation of the content type.
func (ct ContentType) String() string {
	switch ct {
	case ContentTypeChannels:
		return "channels"
	case ContentTypeObjects:
		return "objects"
	case ContentTypeMixed:
		return "mixed"
	case ContentTypeHOA:
		return "hoa"
	default:
		return ""
	}
}

// MarshalText marshals the ContentType to text.
func (ct *ContentType) MarshalText() ([]byte, error) {
	return []byte(ct.String()), nil
}

// UnmarshalText unmarshals text to a ContentType.
func (ct *ContentType) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "channels":
		*ct = ContentTypeChannels
	case "objects":
		*ct = ContentTypeObjects
	case "mixed":
		*ct = ContentTypeMixed
	case "hoa":
		*ct = ContentTypeHOA
	default:
		return fmt.Errorf("unrecognized content type: %q", text)
	}
	return nil
}

// SampleFormat 输出采样格式
type SampleFormat int

// 采样格式常量
const (
	SampleFormatNone SampleFormat = iota - 1 // 未确定（24 位无标准输出格式）
	SampleFormatU8                           // 无符号 8 位
	SampleFormatS16                          // 有符号 16 位
)

// String returns a lower-case ASCII representation of the sample format.
func (sf SampleFormat) String() string {
	switch sf {
	case SampleFormatU8:
		return "u8"
	case SampleFormatS16:
		return "s16"
	default:
		return "none"
	}
}

// 声道位掩码，与 FFmpeg libavutil/channel_layout.h 的位分配一致。
const (
	ChFrontLeft          uint64 = 0x1
	ChFrontRight         uint64 = 0x2
	ChFrontCenter        uint64 = 0x4
	ChLowFrequency       uint64 = 0x8
	ChBackLeft           uint64 = 0x10
	ChBackRight          uint64 = 0x20
	ChFrontLeftOfCenter  uint64 = 0x40
	ChFrontRightOfCenter uint64 = 0x80
	ChBackCenter         uint64 = 0x100
	ChSideLeft           uint64 = 0x200
	ChSideRight          uint64 = 0x400
	ChTopCenter          uint64 = 0x800
	ChTopFrontLeft       uint64 = 0x1000
	ChTopFrontCenter     uint64 = 0x2000
	ChTopFrontRight      uint64 = 0x4000
	ChTopBackLeft        uint64 = 0x8000
	ChTopBackCenter      uint64 = 0x10000
	ChTopBackRight       uint64 = 0x20000
	ChLowFrequency2      uint64 = 0x800000000
	ChTopSideLeft        uint64 = 0x1000000000
	ChTopSideRight       uint64 = 0x2000000000
	ChBottomFrontCenter  uint64 = 0x4000000000
	ChBottomFrontLeft    uint64 = 0x8000000000
	ChBottomFrontRight   uint64 = 0x10000000000
)

// 规范声道布局
const (
	LayoutMono   = ChFrontCenter
	LayoutStereo = ChFrontLeft | ChFrontRight

	// 5.1 使用后置环绕（FFmpeg 的 5POINT1_BACK 变体）
	Layout5Point1 = LayoutStereo | ChFrontCenter | ChLowFrequency |
		ChBackLeft | ChBackRight

	Layout7Point1 = Layout5Point1 | ChSideLeft | ChSideRight

	Layout22Point2 = Layout7Point1 |
		ChFrontLeftOfCenter | ChFrontRightOfCenter | ChBackCenter |
		ChTopCenter |
		ChTopFrontLeft | ChTopFrontCenter | ChTopFrontRight |
		ChTopBackLeft | ChTopBackCenter | ChTopBackRight |
		ChTopSideLeft | ChTopSideRight |
		ChBottomFrontLeft | ChBottomFrontCenter | ChBottomFrontRight |
		ChLowFrequency2
)
