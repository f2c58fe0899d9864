package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Input":     "入力",
		"Output":    "出力",
		"Container": "コンテナ",
		"Debug":     "デバッグ",
		"Logging":   "ログ",

		// Root command
		"Convert video and images into 1-bit monochrome frame containers": "動画や画像を1ビットモノクロのフレームコンテナに変換",

		// Commands
		"Convert a video or image into a monochrome container": "動画または画像をモノクロコンテナに変換",
		"Print container frames to the terminal":               "コンテナのフレームを端末に表示",
		"Write one container frame as an image":                "コンテナの1フレームを画像として書き出し",
		"List the frames of a container":                       "コンテナのフレーム一覧を表示",

		// Input flags
		"Input video file":          "入力動画ファイル",
		"Input image file":          "入力画像ファイル",
		"Path to ffmpeg executable": "ffmpeg実行ファイルのパス",

		// Output flags
		"Output container file path (required)":              "出力コンテナファイルパス（必須）",
		"Output width in pixels (default: source width)":     "出力の幅（ピクセル、デフォルト: 入力の幅）",
		"Output height in pixels (default: source height)":   "出力の高さ（ピクセル、デフォルト: 入力の高さ）",
		"Output execution summary to file (Markdown format)": "実行サマリーをファイルに出力（Markdown形式）",

		// Container flags
		"Container compression (none, deflate-gzip, deflate-zlib, zstd)": "コンテナの圧縮方式（none, deflate-gzip, deflate-zlib, zstd）",
		"Compression level (0 = backend default)":                        "圧縮レベル（0 = 既定値）",
		"YAML configuration file":                                        "YAML設定ファイル",

		// Show / export / inspect flags
		"Show only this frame (zero-based)":           "このフレームだけを表示（0始まり）",
		"Scan direction (horizontal, vertical)":       "走査方向（horizontal, vertical）",
		"Frame to export (zero-based)":                "書き出すフレーム（0始まり）",
		"Output image path (.png or .jpg) (required)": "出力画像パス（.png または .jpg、必須）",
		"Pixel scale factor (min: 1)":                 "ピクセルの拡大率（最小: 1）",
		"Output format (text, json, csv)":             "出力形式（text, json, csv）",

		// Debug flags
		"Enable debug output":        "デバッグ出力を有効化",
		"Directory for debug output": "デバッグ出力のディレクトリ",

		// Logging flags
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "全てのログ出力を抑制",
		"Disable the progress bar":             "進捗バーを無効化",

		// Runtime messages
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",
		"Exported %dx%d image to %s":    "%dx%d の画像を %s に書き出しました",

		// Error messages
		"container path argument is required":                 "コンテナのパス引数が必要です",
		"output path is required (--output)":                  "出力パスが必要です (--output)",
		"--video and --image are mutually exclusive":          "--video と --image は同時に指定できません",
		"frame index must not be negative, got %d":            "フレーム番号は負にできません: %d",
		"input is required (--video, --image or an argument)": "入力が必要です (--video、--image または引数)",
	})
}
