// Copyright (c) 2019,CAOHONGJU All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rtp

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/cnotch/av3a"
	"github.com/cnotch/queue"
	"github.com/cnotch/xlog"
)

// 网络播放时 PTS（Presentation Time Stamp）的延时
const (
	ptsDelay = int64(time.Second)
)

// Depacketizer 解包器
type Depacketizer interface {
	Control(basePts *int64, p *Packet) error
	Depacketize(basePts int64, p *Packet) error
}

// Demuxer 帧转换器
type Demuxer struct {
	closed    bool
	recvQueue *queue.SyncQueue
	adp       Depacketizer
	logger    *xlog.Logger
}

// NewDemuxer 创建 rtp.Packet 解封装处理器。
func NewDemuxer(audio *av3a.StreamInfo, fw av3a.FrameWriter, logger *xlog.Logger) (*Demuxer, error) {
	if audio.Codec != av3a.CodecName {
		return nil, fmt.Errorf("rtp demuxer unsupport audio codec type:%s", audio.Codec)
	}

	demuxer := &Demuxer{
		recvQueue: queue.NewSyncQueue(),
		closed:    false,
		adp:       NewAV3ADepacketizer(audio, fw),
		logger:    logger,
	}

	go demuxer.process()
	return demuxer, nil
}

func (demuxer *Demuxer) process() {
	defer func() {
		defer func() { // 避免 handler 再 panic
			recover()
		}()

		if r := recover(); r != nil {
			demuxer.logger.Errorf("FrameConverter routine panic；r = %v \n %s", r, debug.Stack())
		}

		// 尽早通知GC，回收内存
		demuxer.recvQueue.Reset()
	}()

	var basePts int64
	for !demuxer.closed {
		p := demuxer.recvQueue.Pop()
		if p == nil {
			if !demuxer.closed {
				demuxer.logger.Warn("FrameConverter:receive nil packet")
			}
			continue
		}

		packet := p.(*Packet)
		var err error
		switch packet.Channel {
		case ChannelAudio:
			err = demuxer.adp.Depacketize(basePts, packet)
		case ChannelAudioControl:
			err = demuxer.adp.Control(&basePts, packet)
		}

		if err != nil {
			demuxer.logger.Errorf("rtp demuxer: depackeetize rtp frame error :%s", err.Error())
			// break
		}
	}
}

// Close .
func (demuxer *Demuxer) Close() error {
	if demuxer.closed {
		return nil
	}

	demuxer.closed = true
	demuxer.recvQueue.Signal()
	return nil
}

// WriteRtpPacket .
func (demuxer *Demuxer) WriteRtpPacket(packet *Packet) error {
	demuxer.recvQueue.Push(packet)
	return nil
}
