package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration
		"Converting %s (%s)":                 "%s を変換中 (%s)",
		"Input resolution: %dx%d":            "入力解像度: %dx%d",
		"Output resolution: %dx%d":           "出力解像度: %dx%d",
		"Duration: %.1fs":                    "再生時間: %.1f秒",
		"Frame rate: %.2f":                   "フレームレート: %.2f",
		"Compression: %s":                    "圧縮方式: %s",
		"Wrote %d frames to %s (%d skipped)": "%d フレームを %s に書き込みました (%d スキップ)",
		"Conversion completed":               "変換が完了しました",
		"Interrupted, shutting down...":      "中断されました。シャットダウン中...",
		"Summary saved to %s":                "サマリーを %s に保存しました",

		// Convert stage
		"Probing %s": "%s を調査中",
		"Unknown frame count, progress total is an estimate": "フレーム数が不明なため、進捗の合計は推定値です",
		"Frame %d: converted %dx%d":                          "フレーム %d: %dx%d に変換しました",
		"Frame %d skipped: %s":                               "フレーム %d をスキップしました: %s",
		"Failed to save debug frame %d: %s":                  "デバッグフレーム %d の保存に失敗しました: %s",
		"Failed to save debug info: %s":                      "デバッグ情報の保存に失敗しました: %s",

		// Frame sources
		"Using ffmpeg at %s":                    "ffmpeg を使用: %s",
		"Running ffmpeg: %s":                    "ffmpeg を実行中: %s",
		"Decoded image %s (%s, %dx%d)":          "画像 %s をデコードしました (%s, %dx%d)",
		"Scaling %dx%d to %dx%d":                "%dx%d を %dx%d に拡大縮小中",
		"Not an MP4 file, natural size unknown": "MP4 ファイルではないため元の解像度が不明です",

		// Show / export / inspect stages
		"Rendering frame %d (%dx%d, %s)":     "フレーム %d を描画中 (%dx%d, %s)",
		"Exported frame %d to %s (%d bytes)": "フレーム %d を %s に書き出しました (%d バイト)",
		"Inspected %d frames":                "%d フレームを調査しました",

		// Errors
		"Failed to convert: %s":       "変換に失敗しました: %s",
		"Failed to close output: %s":  "出力のクローズに失敗しました: %s",
		"Failed to write summary: %s": "サマリーの書き込みに失敗しました: %s",
	})
}
