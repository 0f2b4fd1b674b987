// Copyright (c) 2019,CAOHONGJU All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rtp

import (
	"time"

	"github.com/cnotch/av3a"
)

type av3aDepacketizer struct {
	meta      *av3a.StreamInfo
	w         av3a.FrameWriter
	syncClock SyncClock
}

// NewAV3ADepacketizer 实例化 AV3A 解包器
func NewAV3ADepacketizer(meta *av3a.StreamInfo, w av3a.FrameWriter) Depacketizer {
	dp := &av3aDepacketizer{
		meta: meta,
		w:    w,
	}
	dp.syncClock.RTPTimeUnit = float64(time.Second) / float64(meta.SampleRate)
	return dp
}

func (dp *av3aDepacketizer) Control(basePts *int64, p *Packet) error {
	if ok := dp.syncClock.Decode(p.Data); ok {
		if *basePts == 0 {
			*basePts = dp.syncClock.NTPTime
		}
	}
	return nil
}

// AV3A 采用单帧封装：每个 RTP 包的载荷是一个自带 9 字节帧头的完整访问单元。
// 载荷中的帧头同时用于刷新流的元数据。
func (dp *av3aDepacketizer) Depacketize(basePts int64, packet *Packet) (err error) {
	if dp.syncClock.NTPTime == 0 { // 未收到同步时钟信息，忽略任意包
		return
	}

	payload := packet.Payload()
	_, frameData, err := av3a.ParseFrame(payload, dp.meta)
	if err != nil {
		return
	}
	if frameData == nil { // 不足一个完整帧头，忽略
		return
	}

	pts := dp.rtp2ntp(packet.Timestamp) - basePts + ptsDelay
	frame := &av3a.Frame{
		Pts:     pts,
		Payload: frameData,
	}
	return dp.w.WriteFrame(frame)
}

func (dp *av3aDepacketizer) rtp2ntp(timestamp uint32) int64 {
	return dp.syncClock.AbsoluteNtp(timestamp)
}
