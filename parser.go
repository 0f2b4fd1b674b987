// Copyright (c) 2019,CAOHONGJU All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package av3a

// CodecName 编解码器名称
const CodecName = "AV3A"

// StreamInfo 音频流参数
type StreamInfo struct {
	Codec         string       `json:"codec"`
	SampleRate    int          `json:"samplerate,omitempty"`
	SampleSize    int          `json:"samplesize,omitempty"`
	Channels      int          `json:"channels,omitempty"`
	Objects       int          `json:"objects,omitempty"`
	Bitrate       int64        `json:"bitrate,omitempty"`
	FrameSize     int          `json:"framesize,omitempty"`
	ChannelLayout uint64       `json:"-"`
	SampleFormat  SampleFormat `json:"-"`
	Config        []byte       `json:"-"` // 帧头窗口副本
}

func (info *StreamInfo) update(h *HeaderInfo) {
	info.Codec = CodecName
	info.SampleRate = h.SampleRate
	info.SampleSize = h.Resolution
	info.Channels = h.TotalChannels
	info.Objects = h.Objects
	info.Bitrate = h.TotalBitrate
	info.FrameSize = SamplesPerFrame
	info.ChannelLayout = h.ChannelLayout
	info.SampleFormat = h.SampleFormat
}

// ParseFrame 解析一个裸流帧。
//
// buf 不足一个帧头窗口时返回 n=len(buf) 且无帧输出，
// 调用方继续攒够字节后重试；帧头语法错误返回 ErrInvalidData，
// info 保持原样；成功时填充 info 并把整个 buf 作为一个完整帧返回，
// 本格式不做载荷切分。
func ParseFrame(buf []byte, info *StreamInfo) (n int, frame []byte, err error) {
	if len(buf) < MaxHeaderSize {
		return len(buf), nil, nil
	}

	var header [MaxHeaderSize]byte
	copy(header[:], buf)

	var h HeaderInfo
	if err = h.Decode(header[:]); err != nil {
		return 0, nil, err
	}

	info.update(&h)
	info.Config = header[:]
	return len(buf), buf, nil
}

// MetadataIsReady .
func MetadataIsReady(info *StreamInfo) bool {
	config := info.Config
	if len(config) == 0 {
		return false
	}
	if info.SampleRate == 0 {
		// decode
		var h HeaderInfo
		if err := h.Decode(config); err != nil {
			return false
		}
		info.update(&h)
	}
	return true
}
