// Copyright (c) 2019,CAOHONGJU All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
//
// Translate from FFmpeg av3a.h av3a_parser.c
//

package av3a

import (
	"encoding/hex"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/cnotch/av3a/utils/bits"
)

// ErrInvalidData 帧头语法错误统一返回该错误；
// 具体的校验点见 Decode。
var ErrInvalidData = errors.New("Invalid data found when processing input")

// HeaderInfo AVS3-P3 音频帧头信息。
// 四种内容类型各自填充本类型相关的字段，其余字段保持零值。
type HeaderInfo struct {
	CodecID           uint8 // 编解码器标识，固定为 2
	NNType            uint8 // 神经网络后处理类型，透传不校验
	ContentType       ContentType
	SamplingRateIndex uint8
	SampleRate        int // Hz

	ResolutionIndex uint8
	Resolution      int // 每采样位数 8/16/24
	SampleFormat    SampleFormat

	ChannelConfig ChannelConfig // 声道床配置（channels/mixed 有效）
	Channels      int           // 声道床声道数
	Objects       int           // 对象数（objects/mixed 有效）
	HOAOrder      int           // Ambisonics 阶数（hoa 有效）
	TotalChannels int
	ChannelLayout uint64

	BitrateIndex       uint8 // 共享尾部的码率索引（channels/hoa 有效）
	BedBitrateIndex    uint8 // 声道床码率索引（mixed 有效）
	ObjectBitrateIndex uint8 // 单对象码率索引（objects/mixed 有效）
	TotalBitrate       int64 // bps
}

// DecodeString 从 hex 字串解码帧头
func (h *HeaderInfo) DecodeString(config string) error {
	data, err := hex.DecodeString(config)
	if err != nil {
		return err
	}
	return h.Decode(data)
}

// Decode 从字节序列解码帧头。
// data 须包含完整的帧头窗口（MaxHeaderSize 字节），
// 由调用方保证；语法错误返回 ErrInvalidData。
func (h *HeaderInfo) Decode(data []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("av3a header decode panic；r = %v \n %s", r, debug.Stack())
		}
	}()

	r := bits.NewReader(data)

	// 12 bits 帧同步字
	if r.ReadUint16(12) != SyncWord {
		return ErrInvalidData
	}

	// 4 bits 编解码器标识
	codecID := r.ReadUint8(4)
	if codecID != CodecID {
		return ErrInvalidData
	}

	// 1 bit 辅助数据标志，本档次固定为 0
	if r.ReadBit() != 0 {
		return ErrInvalidData
	}

	// 3 bits 神经网络类型
	nnType := r.ReadUint8(3)

	// 3 bits 编码档次
	codingProfile := r.ReadUint8(3)

	// 4 bits 采样频率索引
	samplingIndex := r.ReadUint8(4)
	if int(samplingIndex) >= len(SampleRates) {
		return ErrInvalidData
	}

	// 8 bits CRC 第一部分，不校验
	r.Skip(8)

	var (
		contentType  ContentType
		config       = ChannelConfigUnknown
		channels     int
		objects      int
		hoaOrder     int
		layout       uint64
		totalBitrate int64

		bitrateIdx    uint8
		bedBitrateIdx uint8
		objBitrateIdx uint8
	)

	switch codingProfile {
	case 0:
		// 声道床：7 bits 声道配置索引
		contentType = ContentTypeChannels
		idx := ChannelConfig(r.ReadUint8(7))
		if idx >= ChannelConfigUnknown {
			return ErrInvalidData
		}
		config = idx
		channels = config.Channels()
		layout = config.Layout()

	case 1:
		// 2 bits 声床类型
		soundBedType := r.ReadUint8(2)
		switch soundBedType {
		case 0:
			// 纯对象：7 bits 对象数-1，4 bits 单对象码率索引
			contentType = ContentTypeObjects
			objects = int(r.ReadUint8(7)) + 1
			objBitrateIdx = r.ReadUint8(4)

			perObject, ok := ChannelConfigMono.Bitrate(objBitrateIdx)
			if !ok {
				return ErrInvalidData
			}
			totalBitrate = perObject * int64(objects)

		case 1:
			// 声道床+对象
			contentType = ContentTypeMixed
			idx := ChannelConfig(r.ReadUint8(7))
			if idx >= ChannelConfigUnknown {
				return ErrInvalidData
			}
			config = idx
			bedBitrateIdx = r.ReadUint8(4)
			objects = int(r.ReadUint8(7)) + 1
			objBitrateIdx = r.ReadUint8(4)

			bedBitrate, ok := config.Bitrate(bedBitrateIdx)
			if !ok {
				return ErrInvalidData
			}
			perObject, ok := ChannelConfigMono.Bitrate(objBitrateIdx)
			if !ok {
				return ErrInvalidData
			}
			channels = bedChannels(config)
			totalBitrate = bedBitrate + perObject*int64(objects)

		default:
			// 声床类型 2、3 无语法定义
			return ErrInvalidData
		}

	case 2:
		// Ambisonics：4 bits 阶数-1，仅 1/2/3 阶有声道配置
		contentType = ContentTypeHOA
		hoaOrder = int(r.ReadUint8(4)) + 1
		switch hoaOrder {
		case 1:
			config = ChannelConfigHOAOrder1
		case 2:
			config = ChannelConfigHOAOrder2
		case 3:
			config = ChannelConfigHOAOrder3
		default:
			return ErrInvalidData
		}
		channels = config.Channels()

	default:
		return ErrInvalidData
	}

	// 2 bits 量化精度
	resolutionIndex := r.ReadUint8(2)
	resolution := 0
	format := SampleFormatNone
	switch resolutionIndex {
	case 0:
		format = SampleFormatU8
		resolution = 8
	case 1:
		format = SampleFormatS16
		resolution = 16
	case 2:
		// 24 位无标准输出采样格式，format 保持未确定
		resolution = 24
	default:
		return ErrInvalidData
	}

	if codingProfile != 1 {
		// 4 bits 码率索引，档次 1 的码率已在分支内解析完毕
		bitrateIdx = r.ReadUint8(4)
		bitrate, ok := config.Bitrate(bitrateIdx)
		if !ok {
			return ErrInvalidData
		}
		totalBitrate = bitrate
	}

	// 8 bits CRC 第二部分，不校验
	r.Skip(8)

	h.CodecID = codecID
	h.NNType = nnType
	h.ContentType = contentType
	h.SamplingRateIndex = samplingIndex
	h.SampleRate = SampleRate(int(samplingIndex))
	h.ResolutionIndex = resolutionIndex
	h.Resolution = resolution
	h.SampleFormat = format

	h.ChannelConfig = config
	h.Channels = channels
	h.Objects = objects
	h.HOAOrder = hoaOrder
	h.ChannelLayout = layout

	switch contentType {
	case ContentTypeObjects:
		h.TotalChannels = objects
	case ContentTypeMixed:
		h.TotalChannels = channels + objects
	default:
		h.TotalChannels = channels
	}

	h.BitrateIndex = bitrateIdx
	h.BedBitrateIndex = bedBitrateIdx
	h.ObjectBitrateIndex = objBitrateIdx
	h.TotalBitrate = totalBitrate
	return nil
}

// Encode 生成帧头窗口字节序列。
// 两个 CRC 字段填零；各字段的约束与 Decode 一致，
// 不满足时返回 ErrInvalidData。
func (h *HeaderInfo) Encode() ([]byte, error) {
	w := bits.NewWriter(MaxHeaderSize)

	w.WriteUint16(SyncWord, 12)
	w.WriteUint8(CodecID, 4)
	w.WriteBit(0) // 无辅助数据
	w.WriteUint8(h.NNType, 3)

	var profile uint8
	switch h.ContentType {
	case ContentTypeChannels:
		profile = 0
	case ContentTypeObjects, ContentTypeMixed:
		profile = 1
	case ContentTypeHOA:
		profile = 2
	default:
		return nil, ErrInvalidData
	}
	w.WriteUint8(profile, 3)

	if int(h.SamplingRateIndex) >= len(SampleRates) {
		return nil, ErrInvalidData
	}
	w.WriteUint8(h.SamplingRateIndex, 4)

	w.Skip(8) // CRC 第一部分

	switch h.ContentType {
	case ContentTypeChannels:
		if h.ChannelConfig >= ChannelConfigUnknown {
			return nil, ErrInvalidData
		}
		w.WriteUint8(uint8(h.ChannelConfig), 7)

	case ContentTypeObjects:
		if h.Objects < 1 || h.Objects > 128 {
			return nil, ErrInvalidData
		}
		if _, ok := ChannelConfigMono.Bitrate(h.ObjectBitrateIndex); !ok {
			return nil, ErrInvalidData
		}
		w.WriteUint8(0, 2)
		w.WriteUint8(uint8(h.Objects-1), 7)
		w.WriteUint8(h.ObjectBitrateIndex, 4)

	case ContentTypeMixed:
		if h.ChannelConfig >= ChannelConfigUnknown {
			return nil, ErrInvalidData
		}
		if h.Objects < 1 || h.Objects > 128 {
			return nil, ErrInvalidData
		}
		if _, ok := h.ChannelConfig.Bitrate(h.BedBitrateIndex); !ok {
			return nil, ErrInvalidData
		}
		if _, ok := ChannelConfigMono.Bitrate(h.ObjectBitrateIndex); !ok {
			return nil, ErrInvalidData
		}
		w.WriteUint8(1, 2)
		w.WriteUint8(uint8(h.ChannelConfig), 7)
		w.WriteUint8(h.BedBitrateIndex, 4)
		w.WriteUint8(uint8(h.Objects-1), 7)
		w.WriteUint8(h.ObjectBitrateIndex, 4)

	case ContentTypeHOA:
		if h.HOAOrder < 1 || h.HOAOrder > 3 {
			return nil, ErrInvalidData
		}
		w.WriteUint8(uint8(h.HOAOrder-1), 4)
	}

	if h.ResolutionIndex > 2 {
		return nil, ErrInvalidData
	}
	w.WriteUint8(h.ResolutionIndex, 2)

	if profile != 1 {
		config := h.ChannelConfig
		if h.ContentType == ContentTypeHOA {
			config = ChannelConfigHOAOrder1 + ChannelConfig(h.HOAOrder-1)
		}
		if _, ok := config.Bitrate(h.BitrateIndex); !ok {
			return nil, ErrInvalidData
		}
		w.WriteUint8(h.BitrateIndex, 4)
	}

	w.Skip(8) // CRC 第二部分
	return w.Bytes(), nil
}
