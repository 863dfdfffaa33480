// Package main provides localization for the reframe CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Output":          "出力先",
		"Layout and Fill": "レイアウトと余白",
		"Quality":         "品質",
		"Config":          "設定",
		"Advice":          "アドバイス",
		"Debug":           "デバッグ",
		"Logging":         "ログ",

		// Root command
		"Fit images into social media layouts without cropping": "画像を切り抜かずにSNS向けレイアウトへ収める",
		"reframe fits each image into fixed social media placements and packages the JPEG results into one zip archive.": "reframeは各画像を決まったSNS向けの枠に収め、JPEGの結果を1つのzipアーカイブにまとめます。",

		// Commands
		"Render images into layouts and write a zip archive": "画像をレイアウトに描画しzipアーカイブを書き出す",
		"List the available layouts":                         "利用可能なレイアウトを一覧表示",

		// Output flags
		"Output zip file path (required unless set in config)": "出力zipファイルのパス (設定ファイルで指定しない場合は必須)",
		"Output execution summary to file (Markdown format)": "実行サマリーをファイルに出力 (Markdown形式)",

		// Layout and fill flags
		"Layout label or short name, repeatable (default: all)": "レイアウトのラベルまたは短縮名、複数指定可 (デフォルト: すべて)",
		"Fill strategy (solid, corner, blur)":                   "余白の塗り方 (solid, corner, blur)",
		"Solid fill color (hex, e.g., #ffffff)":                 "単色塗りの色 (16進数, 例: #ffffff)",
		"Blur fill sigma in pixels (default: 30)":               "ぼかし塗りのシグマ (ピクセル, デフォルト: 30)",

		// Quality flags
		"JPEG quality (1-100, overrides quality preset)": "JPEG品質 (1-100, 品質プリセットを上書き)",
		"Quality preset (low, medium, high)":             "品質プリセット (low, medium, high)",
		"Number of parallel renderings":                  "並列描画数",

		// Config flags
		"YAML config file": "YAML設定ファイル",

		// Advice flags
		"Ask Gemini how to extend each background (needs GEMINI_API_KEY)": "各画像の背景の広げ方をGeminiに尋ねる (GEMINI_API_KEYが必要)",
		"Gemini model name":                           "Geminiのモデル名",
		"Retries after a rate-limited advice request": "レート制限時の再試行回数",

		// Debug flags
		"Enable debug output":        "デバッグ出力を有効化",
		"Directory for debug output": "デバッグ出力ディレクトリ",

		// Logging flags
		"Log level (debug, info, warn, error)": "ログレベル (debug, info, warn, error)",
		"Suppress all log output":              "すべてのログ出力を抑制",

		// Runtime messages
		"At least one input image or directory is required": "入力画像またはディレクトリを1つ以上指定してください",
		"Output path is required (--output or config output)": "出力パスが必要です (--output または設定ファイルの output)",
		"Packaging %d inputs into %s...":                    "%d 個の入力を %s にまとめています...",
		"Advice disabled: GEMINI_API_KEY is not set":        "アドバイスは無効です: GEMINI_API_KEY が設定されていません",
		"Advice disabled: %s":                               "アドバイスは無効です: %s",
		"Summary saved to %s":                               "サマリーを %s に保存しました",
		"Failed to write summary: %s":                       "サマリーの書き込みに失敗しました: %s",

		// Summary labels
		"Packaging Summary": "パッケージングサマリー",
		"Generated":         "生成日時",
		"Images":            "画像",
		"No images":         "画像なし",
		"Name":              "名前",
		"Size":              "サイズ",
		"Format":            "形式",
		"Settings":          "設定",
		"Item":              "項目",
		"Value":             "値",
		"Fill":              "余白",
		"JPEG Quality":      "JPEG品質",
		"Layout":            "レイアウト",
		"Archive":           "アーカイブ",
		"File Size":         "ファイルサイズ",
		"Entries":           "エントリー数",
		"Entry":             "エントリー",
		"Unavailable":       "取得できません",
		"rate_limited":      "レート制限",
		"failed":            "失敗",
		"Generated by":      "生成ツール",
	})
}
