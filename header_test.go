// Copyright (c) 2019,CAOHONGJU All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package av3a

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 各内容类型的帧头样例（窗口补零到 9 字节）
var headerDatas = [][]byte{
	// channels: stereo, 48000Hz, 16bit, 48000bps
	{0xFF, 0xF2, 0x10, 0x40, 0x00, 0x52, 0x00, 0x00, 0x00},
	// hoa: order 3, 48000Hz, 16bit, 512000bps
	{0xFF, 0xF2, 0x14, 0x40, 0x04, 0x98, 0x00, 0x00, 0x00},
	// objects: 4 objects, 44100Hz, 24bit, 4x32000bps
	{0xFF, 0xF2, 0x02, 0x60, 0x00, 0x31, 0x80, 0x00, 0x00},
	// mixed: 5.1 bed + 2 objects, 48000Hz, 16bit, 256000+2x16000bps
	{0xFF, 0xF2, 0x52, 0x40, 0x08, 0x21, 0x02, 0x08, 0x00},
}

func TestHeaderInfo_Decode(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want HeaderInfo
	}{
		{
			"stereo",
			headerDatas[0],
			HeaderInfo{
				CodecID:           CodecID,
				NNType:            1,
				ContentType:       ContentTypeChannels,
				SamplingRateIndex: 2,
				SampleRate:        48000,
				ResolutionIndex:   1,
				Resolution:        16,
				SampleFormat:      SampleFormatS16,
				ChannelConfig:     ChannelConfigStereo,
				Channels:          2,
				TotalChannels:     2,
				ChannelLayout:     LayoutStereo,
				BitrateIndex:      2,
				TotalBitrate:      48000,
			},
		},
		{
			"hoa_order3",
			headerDatas[1],
			HeaderInfo{
				CodecID:           CodecID,
				NNType:            1,
				ContentType:       ContentTypeHOA,
				SamplingRateIndex: 2,
				SampleRate:        48000,
				ResolutionIndex:   1,
				Resolution:        16,
				SampleFormat:      SampleFormatS16,
				ChannelConfig:     ChannelConfigHOAOrder3,
				Channels:          16,
				HOAOrder:          3,
				TotalChannels:     16,
				BitrateIndex:      3,
				TotalBitrate:      512000,
			},
		},
		{
			"objects",
			headerDatas[2],
			HeaderInfo{
				CodecID:            CodecID,
				ContentType:        ContentTypeObjects,
				SamplingRateIndex:  3,
				SampleRate:         44100,
				ResolutionIndex:    2,
				Resolution:         24,
				SampleFormat:       SampleFormatNone,
				ChannelConfig:      ChannelConfigUnknown,
				Objects:            4,
				TotalChannels:      4,
				ObjectBitrateIndex: 1,
				TotalBitrate:       128000,
			},
		},
		{
			"mixed",
			headerDatas[3],
			HeaderInfo{
				CodecID:            CodecID,
				NNType:             5,
				ContentType:        ContentTypeMixed,
				SamplingRateIndex:  2,
				SampleRate:         48000,
				ResolutionIndex:    1,
				Resolution:         16,
				SampleFormat:       SampleFormatS16,
				ChannelConfig:      ChannelConfigMC5Point1,
				Channels:           6,
				Objects:            2,
				TotalChannels:      8,
				BedBitrateIndex:    1,
				ObjectBitrateIndex: 0,
				TotalBitrate:       288000,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h HeaderInfo
			err := h.Decode(tt.data)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, h)
		})
	}
}

func TestHeaderInfo_DecodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"bad_sync", []byte{0xFF, 0xE2, 0x10, 0x40, 0x00, 0x52, 0x00, 0x00, 0x00}},
		{"bad_codec_id", []byte{0xFF, 0xF3, 0x10, 0x40, 0x00, 0x52, 0x00, 0x00, 0x00}},
		{"anc_data", []byte{0xFF, 0xF2, 0x90, 0x40, 0x00, 0x52, 0x00, 0x00, 0x00}},
		{"sampling_index_9", []byte{0xFF, 0xF2, 0x11, 0x20, 0x00, 0x52, 0x00, 0x00, 0x00}},
		{"profile_3", []byte{0xFF, 0xF2, 0x16, 0x40, 0x00, 0x52, 0x00, 0x00, 0x00}},
		{"bed_config_out_of_range", []byte{0xFF, 0xF2, 0x10, 0x40, 0x03, 0x92, 0x00, 0x00, 0x00}},
		{"bed_config_no_bitrate_table", []byte{0xFF, 0xF2, 0x10, 0x40, 0x01, 0x12, 0x00, 0x00, 0x00}},
		{"bitrate_reserved_slot", []byte{0xFF, 0xF2, 0x10, 0x40, 0x00, 0x5B, 0x00, 0x00, 0x00}},
		{"resolution_3", []byte{0xFF, 0xF2, 0x10, 0x40, 0x00, 0x72, 0x00, 0x00, 0x00}},
		{"sound_bed_type_2", []byte{0xFF, 0xF2, 0x02, 0x60, 0x10, 0x31, 0x80, 0x00, 0x00}},
		{"object_bitrate_reserved_slot", []byte{0xFF, 0xF2, 0x02, 0x60, 0x00, 0x3C, 0x80, 0x00, 0x00}},
		{"mixed_bed_no_bitrate_table", []byte{0xFF, 0xF2, 0x52, 0x40, 0x08, 0x41, 0x02, 0x08, 0x00}},
		{"hoa_order_4", []byte{0xFF, 0xF2, 0x14, 0x40, 0x06, 0x98, 0x00, 0x00, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h HeaderInfo
			err := h.Decode(tt.data)
			assert.Equal(t, ErrInvalidData, err)
		})
	}
}

func TestHeaderInfo_DecodeObjectCount(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		objects     int
		wantBitrate int64
	}{
		// 对象数字段 0 => 1 个对象
		{"min", []byte{0xFF, 0xF2, 0x02, 0x60, 0x00, 0x01, 0x80, 0x00, 0x00}, 1, 32000},
		// 对象数字段 127 => 128 个对象
		{"max", []byte{0xFF, 0xF2, 0x02, 0x60, 0x07, 0xF1, 0x80, 0x00, 0x00}, 128, 4096000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h HeaderInfo
			err := h.Decode(tt.data)
			assert.NoError(t, err)
			assert.Equal(t, tt.objects, h.Objects)
			assert.Equal(t, tt.objects, h.TotalChannels)
			assert.Equal(t, tt.wantBitrate, h.TotalBitrate)
		})
	}
}

func TestHeaderInfo_DecodeHOAOrders(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		order    int
		channels int
		config   ChannelConfig
	}{
		{"order1", []byte{0xFF, 0xF2, 0x14, 0x40, 0x00, 0x98, 0x00, 0x00, 0x00}, 1, 4, ChannelConfigHOAOrder1},
		{"order2", []byte{0xFF, 0xF2, 0x14, 0x40, 0x02, 0x98, 0x00, 0x00, 0x00}, 2, 9, ChannelConfigHOAOrder2},
		{"order3", []byte{0xFF, 0xF2, 0x14, 0x40, 0x04, 0x98, 0x00, 0x00, 0x00}, 3, 16, ChannelConfigHOAOrder3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h HeaderInfo
			err := h.Decode(tt.data)
			assert.NoError(t, err)
			assert.Equal(t, tt.order, h.HOAOrder)
			assert.Equal(t, tt.channels, h.TotalChannels)
			assert.Equal(t, tt.config, h.ChannelConfig)
		})
	}
}

func TestHeaderInfo_DecodeChannelConfigs(t *testing.T) {
	for c := ChannelConfigMono; c < ChannelConfigUnknown; c++ {
		data := []byte{0xFF, 0xF2, 0x10, 0x40, 0x00, 0x52, 0x00, 0x00, 0x00}
		data[4] = byte(c >> 2)
		data[5] = byte(c&0x03)<<6 | 0x12

		var h HeaderInfo
		err := h.Decode(data)
		if c == ChannelConfigMC10Point2 || c == ChannelConfigMC22Point2 {
			// 没有码率表的配置不可选用
			assert.Equal(t, ErrInvalidData, err, c.String())
			continue
		}
		assert.NoError(t, err, c.String())
		assert.Equal(t, c, h.ChannelConfig, c.String())
		assert.Equal(t, c.Channels(), h.TotalChannels, c.String())
		assert.Equal(t, c.Layout(), h.ChannelLayout, c.String())
	}
}

func TestHeaderInfo_DecodeSampleRates(t *testing.T) {
	for i, rate := range SampleRates {
		src := HeaderInfo{
			ContentType:       ContentTypeChannels,
			SamplingRateIndex: uint8(i),
			ResolutionIndex:   1,
			ChannelConfig:     ChannelConfigStereo,
			BitrateIndex:      0,
		}
		data, err := src.Encode()
		assert.NoError(t, err)

		var h HeaderInfo
		err = h.Decode(data)
		assert.NoError(t, err)
		assert.Equal(t, rate, h.SampleRate)
	}
}

func TestHeaderInfo_DecodeShort(t *testing.T) {
	var h HeaderInfo
	err := h.Decode([]byte{0xFF, 0xF2, 0x10})
	assert.Error(t, err)
}

func TestHeaderInfo_DecodeString(t *testing.T) {
	var h HeaderInfo
	err := h.DecodeString("fff210400052000000")
	assert.NoError(t, err)
	assert.Equal(t, 48000, h.SampleRate)
	assert.Equal(t, 2, h.TotalChannels)

	err = h.DecodeString("xyz")
	assert.Error(t, err)
}

func TestHeaderInfo_EncodeDecode(t *testing.T) {
	tests := []struct {
		name string
		src  HeaderInfo
	}{
		{
			"channels_7_1_4",
			HeaderInfo{
				NNType:            3,
				ContentType:       ContentTypeChannels,
				SamplingRateIndex: 0,
				ResolutionIndex:   0,
				ChannelConfig:     ChannelConfigMC7Point1Point4,
				BitrateIndex:      4,
			},
		},
		{
			"channels_hoa_order1",
			HeaderInfo{
				ContentType:       ContentTypeChannels,
				SamplingRateIndex: 2,
				ResolutionIndex:   1,
				ChannelConfig:     ChannelConfigHOAOrder1,
				BitrateIndex:      0,
			},
		},
		{
			"objects",
			HeaderInfo{
				ContentType:        ContentTypeObjects,
				SamplingRateIndex:  8,
				ResolutionIndex:    2,
				Objects:            16,
				ObjectBitrateIndex: 11,
			},
		},
		{
			"mixed_7_1_bed",
			HeaderInfo{
				NNType:             7,
				ContentType:        ContentTypeMixed,
				SamplingRateIndex:  4,
				ResolutionIndex:    1,
				ChannelConfig:      ChannelConfigMC7Point1,
				Objects:            3,
				BedBitrateIndex:    5,
				ObjectBitrateIndex: 2,
			},
		},
		{
			"hoa_order2",
			HeaderInfo{
				ContentType:       ContentTypeHOA,
				SamplingRateIndex: 1,
				ResolutionIndex:   1,
				HOAOrder:          2,
				BitrateIndex:      6,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.src.Encode()
			assert.NoError(t, err)
			assert.Equal(t, MaxHeaderSize, len(data))

			var h HeaderInfo
			err = h.Decode(data)
			assert.NoError(t, err)

			assert.Equal(t, tt.src.NNType, h.NNType)
			assert.Equal(t, tt.src.ContentType, h.ContentType)
			assert.Equal(t, tt.src.SamplingRateIndex, h.SamplingRateIndex)
			assert.Equal(t, tt.src.ResolutionIndex, h.ResolutionIndex)
			assert.Equal(t, tt.src.Objects, h.Objects)
			assert.Equal(t, tt.src.HOAOrder, h.HOAOrder)
			assert.Equal(t, tt.src.BitrateIndex, h.BitrateIndex)
			assert.Equal(t, tt.src.BedBitrateIndex, h.BedBitrateIndex)
			assert.Equal(t, tt.src.ObjectBitrateIndex, h.ObjectBitrateIndex)
		})
	}
}

func TestHeaderInfo_EncodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		src  HeaderInfo
	}{
		{"sampling_index", HeaderInfo{ContentType: ContentTypeChannels, SamplingRateIndex: 9, ResolutionIndex: 1, ChannelConfig: ChannelConfigStereo}},
		{"bed_config", HeaderInfo{ContentType: ContentTypeChannels, ResolutionIndex: 1, ChannelConfig: ChannelConfigUnknown}},
		{"no_bitrate_table", HeaderInfo{ContentType: ContentTypeChannels, ResolutionIndex: 1, ChannelConfig: ChannelConfigMC22Point2}},
		{"bitrate_reserved_slot", HeaderInfo{ContentType: ContentTypeChannels, ResolutionIndex: 1, ChannelConfig: ChannelConfigStereo, BitrateIndex: 11}},
		{"resolution_index", HeaderInfo{ContentType: ContentTypeChannels, ResolutionIndex: 3, ChannelConfig: ChannelConfigStereo}},
		{"zero_objects", HeaderInfo{ContentType: ContentTypeObjects, ResolutionIndex: 1}},
		{"too_many_objects", HeaderInfo{ContentType: ContentTypeObjects, ResolutionIndex: 1, Objects: 129}},
		{"hoa_order", HeaderInfo{ContentType: ContentTypeHOA, ResolutionIndex: 1, HOAOrder: 4}},
		{"content_type", HeaderInfo{ContentType: ContentType(9), ResolutionIndex: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.src.Encode()
			assert.Equal(t, ErrInvalidData, err)
		})
	}
}

func BenchmarkHeaderInfoDecode(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var h HeaderInfo
		_ = h.Decode(headerDatas[3])
	}
}

func BenchmarkHeaderInfoEncode(b *testing.B) {
	var h HeaderInfo
	_ = h.Decode(headerDatas[3])
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Encode()
	}
}
