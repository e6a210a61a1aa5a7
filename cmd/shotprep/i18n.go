// Package main provides localization for the shotprep CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Prepare App Store screenshots and device mockups.": "App Store用スクリーンショットとデバイスモックアップを準備します。",

		// Store command
		"Resize screenshots to the store canvas with letterbox padding.": "スクリーンショットをストア用キャンバスにレターボックス付きでリサイズ",

		// Mockup command
		"Composite screenshots into a device bezel mockup.": "スクリーンショットをデバイスベゼルに合成してモックアップを作成",

		// Version command
		"Show version information.": "バージョン情報を表示",
		"shotprep version %s":       "shotprep バージョン %s",

		// Common flags
		"Directory containing source screenshots (default: current directory).": "ソーススクリーンショットのディレクトリ（デフォルト: カレントディレクトリ）",
		"Output directory.":                        "出力ディレクトリ",
		"YAML configuration file.":                 "YAML設定ファイル",
		"Number of parallel workers (default: 1).": "並列ワーカー数（デフォルト: 1）",
		"Screenshot file names (default: configured manifest).": "スクリーンショットのファイル名（デフォルト: 設定されたマニフェスト）",

		// Store flags
		"Canvas width (default: 1284).":                   "キャンバスの幅（デフォルト: 1284）",
		"Canvas height (default: 2778).":                  "キャンバスの高さ（デフォルト: 2778）",
		"Letterbox background color (hex, e.g., #000000).": "レターボックスの背景色（16進数、例: #000000）",

		// Mockup flags
		"Device frame image path (default: configured frame asset).": "デバイスフレーム画像のパス（デフォルト: 設定されたフレーム素材）",
		"Device preset for the screen geometry (iphone-16).":         "スクリーン形状のデバイスプリセット（iphone-16）",

		// Debug flags
		"Enable debug artifact output.":  "デバッグ成果物の出力を有効化",
		"Directory for debug artifacts.": "デバッグ成果物のディレクトリ",

		// Logging flags
		"Log level (debug, info, warn, error).": "ログレベル（debug, info, warn, error）",
		"Suppress all log output.":              "全てのログ出力を抑制",
	})
}
