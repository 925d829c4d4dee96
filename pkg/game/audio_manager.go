package game

import (
	"encoding/binary"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate 音频上下文采样率
const SampleRate = 48000

// 点击音效参数
const (
	openToneHz    = 880.0
	closeToneHz   = 660.0
	clickDuration = 60 * time.Millisecond
)

// AudioManager 音频管理器
// 职责：
//   - 菜单打开/关闭时播放短促的提示音（程序合成，无需音频资源文件）
//   - 从 SettingsManager 读取音效开关与音量
//
// context 为 nil 时所有播放调用都是空操作（测试与无音频环境）
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager
	players         map[bool]*audio.Player // isOpen -> 播放器缓存
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: Ebitengine 音频上下文，可为 nil
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		players:         make(map[bool]*audio.Player),
	}
}

// PlayToggle 播放菜单切换提示音
// 打开与关闭使用不同音高
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlayToggle(open bool) bool {
	if am.context == nil {
		return false
	}

	volume := 1.0
	if am.settingsManager != nil {
		settings := am.settingsManager.GetSettings()
		if !settings.SoundEnabled {
			return false
		}
		volume = settings.SoundVolume
	}

	player, ok := am.players[open]
	if !ok {
		freq := closeToneHz
		if open {
			freq = openToneHz
		}
		player = am.context.NewPlayerFromBytes(SynthesizeTone(SampleRate, freq, clickDuration))
		am.players[open] = player
	}

	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Failed to rewind click player: %v", err)
		return false
	}
	player.SetVolume(volume)
	player.Play()
	return true
}

// SynthesizeTone 合成一段带线性衰减包络的正弦波
// 输出格式为 16 位小端双声道 PCM（Ebitengine audio 的默认格式）
func SynthesizeTone(sampleRate int, freq float64, duration time.Duration) []byte {
	frames := int(float64(sampleRate) * duration.Seconds())
	buf := make([]byte, frames*4)

	for i := 0; i < frames; i++ {
		envelope := 1 - float64(i)/float64(frames)
		v := math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * envelope * 0.3
		sample := uint16(int16(v * math.MaxInt16))

		binary.LittleEndian.PutUint16(buf[i*4:], sample)
		binary.LittleEndian.PutUint16(buf[i*4+2:], sample)
	}
	return buf
}
