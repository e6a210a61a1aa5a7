package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Store pipeline
		"Preparing store screenshots (%dx%d canvas)": "ストア用スクリーンショットを準備中 (%dx%d キャンバス)",
		"Scaling %dx%d to %dx%d (scale %.4f)":        "%dx%d を %dx%d に拡縮中 (倍率 %.4f)",
		"Centering %dx%d at (%d, %d)":                "%dx%d を (%d, %d) に配置中",

		// Mockup pipeline
		"Creating device mockups":                 "デバイスモックアップを作成中",
		"Screen region: (%d, %d) to (%d, %d)":     "スクリーン領域: (%d, %d) から (%d, %d)",
		"Generated %dx%d corner mask (radius %d)": "%dx%d のコーナーマスクを生成しました (半径 %d)",

		// Batch progress
		"Processing %s": "%s を処理中",
		"Processing %d screenshots with %d workers": "%d 件のスクリーンショットを %d ワーカーで処理中",
		"Saved %s (%dx%d)":               "%s を保存しました (%dx%d)",
		"Skipping %s - not found":        "%s をスキップ - 見つかりません",
		"Done! %d processed, %d skipped": "完了! 処理 %d 件, スキップ %d 件",
		"Interrupted, shutting down...":  "中断されました。シャットダウン中...",

		// Errors
		"Frame asset not found at %s": "フレーム素材が %s に見つかりません",
		"Failed to process %s: %s":    "%s の処理に失敗しました: %s",
	})
}
