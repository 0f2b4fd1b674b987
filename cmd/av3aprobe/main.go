// Copyright (c) 2019,CAOHONGJU All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// av3aprobe 读取 AV3A 裸流文件（或标准输入）的首帧头，
// 解析后输出流参数。
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cnotch/av3a"
	"github.com/cnotch/xlog"
)

func main() {
	// 初始化配置
	initConfig()
	xlog.Debugf("%s started(%s).", Name, Version)

	files := flag.Args()
	if len(files) == 0 {
		if err := probe("stdin", os.Stdin); err != nil {
			xlog.Errorf("%s: stdin: %s", Name, err.Error())
			os.Exit(1)
		}
		return
	}

	code := 0
	for _, path := range files {
		file, err := os.Open(path)
		if err != nil {
			xlog.Errorf("%s: %s", Name, err.Error())
			code = 1
			continue
		}

		err = probe(path, file)
		file.Close()
		if err != nil {
			xlog.Errorf("%s: %s: %s", Name, path, err.Error())
			code = 1
		}
	}
	os.Exit(code)
}

// probe 读取流的首个帧头窗口并输出解析出的流参数
func probe(name string, r io.Reader) error {
	var buf [av3a.MaxHeaderSize]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return err
	}

	var info av3a.StreamInfo
	_, frame, err := av3a.ParseFrame(buf[:n], &info)
	if err != nil {
		return err
	}
	if frame == nil {
		return fmt.Errorf("need more data, only %d bytes", n)
	}

	if globalC.JSON {
		data, err := json.MarshalIndent(&info, "", "  ")
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", name, data)
		return nil
	}

	fmt.Printf("%s:\n", name)
	fmt.Printf("  codec: %s\n", info.Codec)
	fmt.Printf("  samplerate: %d Hz\n", info.SampleRate)
	fmt.Printf("  samplesize: %d bits\n", info.SampleSize)
	fmt.Printf("  sampleformat: %s\n", info.SampleFormat)
	fmt.Printf("  channels: %d\n", info.Channels)
	if info.Objects > 0 {
		fmt.Printf("  objects: %d\n", info.Objects)
	}
	fmt.Printf("  bitrate: %d bps\n", info.Bitrate)
	fmt.Printf("  framesize: %d samples\n", info.FrameSize)
	return nil
}
