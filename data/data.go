// Package data 嵌入默认预设配置
//
// //go:embed 只能嵌入包目录及其子目录的文件，所以配置文件和嵌入声明放在一起。
// 桌面端、移动端和命令行工具都通过 embedded.Init(data.FS) 使用同一份资源，
// 不依赖运行时的工作目录。
package data

import "embed"

// FS 嵌入的配置文件，路径相对于 data/ 目录（如 "hero_presets.yaml"）
//
//go:embed hero_presets.yaml
var FS embed.FS
