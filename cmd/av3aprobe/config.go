// Copyright (c) 2019,CAOHONGJU All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"strings"

	cfg "github.com/cnotch/loader"
	"github.com/cnotch/xlog"
)

// 工具名
const (
	Name    = "av3aprobe"
	Version = "V1.0.0"
)

// config 工具配置
type config struct {
	JSON bool      `json:"json"` // 以 json 格式输出流参数
	Log  LogConfig `json:"log"`  // 日志配置
}

func (c *config) initFlags() {
	flag.BoolVar(&c.JSON, "json", false,
		"Determines if stream parameters should be printed in json format")

	// 初始化日志配置
	c.Log.initFlags()
}

var globalC *config

// initConfig 初始化 Config
func initConfig() {
	globalC = new(config)
	globalC.initFlags()

	if err := cfg.Load(globalC,
		&cfg.EnvLoader{Prefix: strings.ToUpper(Name)},
		&cfg.FlagLoader{}); err != nil {
		// 异常，直接退出
		xlog.Panic(err.Error())
	}

	// 初始化日志
	globalC.Log.initLogger()
}
