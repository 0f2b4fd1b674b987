// Copyright (c) 2019,CAOHONGJU All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rtp

import (
	"github.com/cnotch/av3a"
	"github.com/pion/rtp"
)

// 打包时假定走 TCP 交织通道传输，包长上限由 2 字节长度前缀决定，
// 无需按 UDP MTU 分片。
const packetizerMTU = 0xFFFF

// 单帧封装：一个 RTP 包携带一个完整的访问单元
type framePayloader struct{}

func (framePayloader) Payload(mtu int, payload []byte) [][]byte {
	if len(payload) == 0 {
		return nil
	}
	return [][]byte{payload}
}

// Packetizer 将音频帧打包为 RTP 包并输出到 PacketWriter
type Packetizer struct {
	pktizer rtp.Packetizer
	w       PacketWriter
}

// NewPacketizer 创建 AV3A 音频帧打包器。
// clockRate 通常与音频的采样率一致。
func NewPacketizer(payloadType uint8, ssrc uint32, clockRate int, w PacketWriter) *Packetizer {
	return &Packetizer{
		pktizer: rtp.NewPacketizer(packetizerMTU, payloadType, ssrc,
			framePayloader{}, rtp.NewRandomSequencer(), uint32(clockRate)),
		w: w,
	}
}

// Packetize 打包单个音频帧
func (p *Packetizer) Packetize(frame *av3a.Frame) error {
	packets := p.pktizer.Packetize(frame.Payload, av3a.SamplesPerFrame)
	for _, rp := range packets {
		data, err := rp.Marshal()
		if err != nil {
			return err
		}

		packet := &Packet{
			Channel: ChannelAudio,
			Data:    data,
			Header:  rp.Header,
		}
		packet.PayloadOffset = len(data) - len(rp.Payload)
		if err := p.w.WriteRtpPacket(packet); err != nil {
			return err
		}
	}
	return nil
}
