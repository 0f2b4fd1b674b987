// Copyright (c) 2019,CAOHONGJU All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sdp

import (
	"encoding/hex"
	"strings"

	"github.com/cnotch/av3a"
	"github.com/cnotch/av3a/utils/scan"
	"github.com/pixelbender/go-sdp/sdp"
)

// ParseMetadata 从 SDP 描述中提取 AV3A 音频流的元数据。
func ParseMetadata(rawsdp string, audio *av3a.StreamInfo) error {
	sdp, err := sdp.ParseString(rawsdp)
	if err != nil {
		return err
	}

	for _, media := range sdp.Media {
		if media.Type != "audio" {
			continue
		}

		audio.Codec = strings.ToUpper(media.Format[0].Name)
		if audio.Codec != "" {
			for _, bw := range media.Bandwidth {
				if bw.Type == "AS" { // 单位 kbps
					audio.Bitrate = int64(bw.Value) * 1000
				}
			}
			parseAudioMeta(media.Format[0], audio)
		}
	}
	return nil
}

func parseAudioMeta(m *sdp.Format, audio *av3a.StreamInfo) {
	audio.SampleSize = 16
	audio.Channels = 2
	audio.SampleRate = 48000
	if m.ClockRate > 0 {
		audio.SampleRate = m.ClockRate
	}
	if m.Channels > 0 {
		audio.Channels = m.Channels
	}

	// parse AV3A config
	if len(m.Params) == 0 {
		return
	}
	if audio.Codec == av3a.CodecName {
		for _, p := range m.Params {
			config := scanConfig(p, audio)
			if config == nil {
				continue
			}

			audio.Config = config
			_ = av3a.MetadataIsReady(audio)
			break
		}
	}
}

// scanConfig 在 fmtp 参数串中扫描 config 键值对
func scanConfig(p string, audio *av3a.StreamInfo) []byte {
	advance := p
	continueScan := true
	for continueScan {
		var token string
		advance, token, continueScan = scan.Semicolon.Scan(advance)
		name, value, ok := scan.EqualPair.Scan(token)
		if !ok || name != "config" {
			continue
		}

		config, err := hex.DecodeString(value)
		if err != nil {
			// 依据 SDP 已知的参数合成一个默认帧头
			config = encodeDefaultConfig(audio)
		}
		return config
	}
	return nil
}

func encodeDefaultConfig(audio *av3a.StreamInfo) []byte {
	idx := av3a.SamplingIndex(audio.SampleRate)
	if idx < 0 {
		return nil
	}

	h := av3a.HeaderInfo{
		ContentType:       av3a.ContentTypeChannels,
		SamplingRateIndex: uint8(idx),
		ResolutionIndex:   1, // 16bit
		ChannelConfig:     av3a.ChannelConfigStereo,
		BitrateIndex:      2,
	}
	if audio.Channels == 1 {
		h.ChannelConfig = av3a.ChannelConfigMono
	}

	config, err := h.Encode()
	if err != nil {
		return nil
	}
	return config
}
