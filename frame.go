// Copyright (c) 2019,CAOHONGJU All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package av3a

// Frame 音频完整帧
type Frame struct {
	Pts     int64  // PTS，单位为 ns
	Payload []byte // 帧数据载荷，含帧头
}

// FrameWriter 包装 WriteFrame 方法的接口
type FrameWriter interface {
	WriteFrame(frame *Frame) error
}
