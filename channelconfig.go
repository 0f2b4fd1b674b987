// Copyright (c) 2019,CAOHONGJU All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package av3a

// ChannelConfig 声道配置索引
type ChannelConfig uint8

// 声道配置常量；ChannelConfigUnknown 同时作为索引合法性的边界。
const (
	ChannelConfigMono ChannelConfig = iota // 0
	ChannelConfigStereo
	ChannelConfigMC5Point1
	ChannelConfigMC7Point1
	ChannelConfigMC10Point2
	ChannelConfigMC22Point2
	ChannelConfigMC4Point0
	ChannelConfigMC5Point1Point2
	ChannelConfigMC5Point1Point4
	ChannelConfigMC7Point1Point2
	ChannelConfigMC7Point1Point4
	ChannelConfigHOAOrder1
	ChannelConfigHOAOrder2
	ChannelConfigHOAOrder3
	ChannelConfigUnknown
)

var channelConfigChannels = [ChannelConfigUnknown]int{
	1, 2, 6, 8,
	12, 24, 4, 8,
	10, 10, 12,
	4, 9, 16,
}

// Channels 返回配置的固定声道数；未知配置返回 0。
func (c ChannelConfig) Channels() int {
	if c >= ChannelConfigUnknown {
		return 0
	}
	return channelConfigChannels[c]
}

// Layout 返回配置的规范声道布局掩码；无规范布局的配置返回 0。
func (c ChannelConfig) Layout() uint64 {
	switch c {
	case ChannelConfigMono:
		return LayoutMono
	case ChannelConfigStereo:
		return LayoutStereo
	case ChannelConfigMC5Point1:
		return Layout5Point1
	case ChannelConfigMC7Point1:
		return Layout7Point1
	case ChannelConfigMC22Point2:
		return Layout22Point2
	default:
		return 0
	}
}

// String returns an upper-case ASCII representation of the channel config.
func (c ChannelConfig) String() string {
	switch c {
	case ChannelConfigMono:
		return "MONO"
	case ChannelConfigHOAOrder1:
		return "HOA_ORDER1"
	case ChannelConfigHOAOrder2:
		return "HOA_ORDER2"
	case ChannelConfigHOAOrder3:
		return "HOA_ORDER3"
	}
	for i := range mcConfigTable {
		if mcConfigTable[i].config == c {
			return mcConfigTable[i].name
		}
	}
	return "UNKNOWN"
}

// mcConfig 多声道床配置的名称和声道数
type mcConfig struct {
	name     string
	config   ChannelConfig
	channels int
}

var mcConfigTable = [10]mcConfig{
	{"STEREO", ChannelConfigStereo, 2},
	{"MC_5_1_0", ChannelConfigMC5Point1, 6},
	{"MC_7_1_0", ChannelConfigMC7Point1, 8},
	{"MC_10_2", ChannelConfigMC10Point2, 12},
	{"MC_22_2", ChannelConfigMC22Point2, 24},
	{"MC_4_0", ChannelConfigMC4Point0, 4},
	{"MC_5_1_2", ChannelConfigMC5Point1Point2, 8},
	{"MC_5_1_4", ChannelConfigMC5Point1Point4, 10},
	{"MC_7_1_2", ChannelConfigMC7Point1Point2, 10},
	{"MC_7_1_4", ChannelConfigMC7Point1Point4, 12},
}

// bedChannels 通过多声道床配置表线性查找声道床的声道数；
// 不在表中的配置（MONO、HOA）返回 0。
func bedChannels(c ChannelConfig) int {
	channels := 0
	for i := range mcConfigTable {
		if mcConfigTable[i].config == c {
			channels = mcConfigTable[i].channels
		}
	}
	return channels
}

// 各声道配置的码率表（bps），按 4 位索引取值；
// 零值槽位为保留槽位，不可选用。
var (
	bitrateTableMono = [16]int64{
		16000, 32000, 44000, 56000, 64000, 72000, 80000, 96000,
		128000, 144000, 164000, 192000}

	bitrateTableStereo = [16]int64{
		24000, 32000, 48000, 64000, 80000, 96000, 128000, 144000,
		192000, 256000, 320000}

	bitrateTableMC5Point1 = [16]int64{
		192000, 256000, 320000, 384000, 448000, 512000, 640000, 720000,
		144000, 96000, 128000, 160000}

	bitrateTableMC7Point1 = [16]int64{
		192000, 480000, 256000, 384000, 576000, 640000, 128000, 160000}

	bitrateTableMC4Point0 = [16]int64{
		48000, 96000, 128000, 192000, 256000}

	bitrateTableMC5Point1Point2 = [16]int64{
		152000, 320000, 480000, 576000}

	bitrateTableMC5Point1Point4 = [16]int64{
		176000, 384000, 576000, 704000, 256000, 448000}

	bitrateTableMC7Point1Point2 = [16]int64{
		216000, 480000, 576000, 384000, 768000}

	bitrateTableMC7Point1Point4 = [16]int64{
		240000, 608000, 384000, 512000, 832000}

	bitrateTableFoa = [16]int64{
		48000, 96000, 128000, 192000, 256000}

	bitrateTableHoa2 = [16]int64{
		192000, 256000, 320000, 384000, 480000, 512000, 640000}

	bitrateTableHoa3 = [16]int64{
		256000, 320000, 384000, 512000, 640000, 896000}
)

// bitrateTables 按声道配置索引排列；
// MC_10_2 和 MC_22_2 无实现背书，没有码率表。
var bitrateTables = [ChannelConfigUnknown]*[16]int64{
	ChannelConfigMono:            &bitrateTableMono,
	ChannelConfigStereo:          &bitrateTableStereo,
	ChannelConfigMC5Point1:       &bitrateTableMC5Point1,
	ChannelConfigMC7Point1:       &bitrateTableMC7Point1,
	ChannelConfigMC10Point2:      nil,
	ChannelConfigMC22Point2:      nil,
	ChannelConfigMC4Point0:       &bitrateTableMC4Point0,
	ChannelConfigMC5Point1Point2: &bitrateTableMC5Point1Point2,
	ChannelConfigMC5Point1Point4: &bitrateTableMC5Point1Point4,
	ChannelConfigMC7Point1Point2: &bitrateTableMC7Point1Point2,
	ChannelConfigMC7Point1Point4: &bitrateTableMC7Point1Point4,
	ChannelConfigHOAOrder1:       &bitrateTableFoa,
	ChannelConfigHOAOrder2:       &bitrateTableHoa2,
	ChannelConfigHOAOrder3:       &bitrateTableHoa3,
}

// Bitrate 返回配置 c 的码率表中 index 处的码率。
// 配置没有码率表或槽位为保留零值时 ok 为 false。
func (c ChannelConfig) Bitrate(index uint8) (bitrate int64, ok bool) {
	if c >= ChannelConfigUnknown || int(index) >= len(bitrateTableMono) {
		return 0, false
	}

	table := bitrateTables[c]
	if table == nil || table[index] == 0 {
		return 0, false
	}
	return table[index], true
}
