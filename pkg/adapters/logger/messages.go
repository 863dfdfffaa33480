package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Starting pipeline":               "パイプラインを開始します",
		"Pipeline completed successfully": "パイプラインが正常に完了しました",
		"Output saved to %s":              "出力を %s に保存しました",
		"Interrupted, shutting down...":   "中断されました。シャットダウン中...",
		"Rendering %d layouts":            "%d 個のレイアウトに描画します",

		// Load stage
		"Loading images":           "画像を読み込み中",
		"Loaded %d images":         "%d 枚の画像を読み込みました",
		"Loaded %s (%s, %dx%d)":    "%s を読み込みました (%s, %dx%d)",
		"Expanded %s to %d images": "%s から %d 枚の画像を見つけました",

		// Fit stage
		"Fitting %s source into %s: subject %s at (%d,%d), fill %s": "%s の画像を %s に収めます: 被写体 %s 位置 (%d,%d), 余白 %s",

		// Pack stage
		"Packaging %d renderings with %s fill at quality %d":               "%d 件を %s 塗り、品質 %d でまとめています",
		"Packaging %d images x %d layouts with %d workers, fill %s, quality %d": "%d 画像 x %d レイアウトを %d ワーカーで処理中 (余白 %s, 品質 %d)",
		"Archive built: %d entries, %d bytes":                              "アーカイブを作成しました: %d エントリー, %d バイト",
		"Entry %s is overwritten by a later image":                         "エントリー %s は後の画像で上書きされます",

		// Advise stage
		"Requesting advice for %d images":            "%d 枚の画像についてアドバイスを依頼中",
		"Advice received for %s":                     "%s のアドバイスを受信しました",
		"Advice for %s skipped: rate limited":        "%s のアドバイスをスキップしました: レート制限",
		"Advice for %s failed: %s":                   "%s のアドバイスに失敗しました: %s",
		"Rate limited on %s, retrying in %s (%d/%d)": "%s でレート制限されました。%s 後に再試行します (%d/%d)",

		// Errors and warnings
		"Failed to resolve layouts: %s": "レイアウトの解決に失敗しました: %s",
		"Failed to load images: %s":     "画像の読み込みに失敗しました: %s",
		"Failed to package images: %s":  "画像のパッケージングに失敗しました: %s",
		"Failed to write output: %s":    "出力の書き込みに失敗しました: %s",
		"Advice skipped: %s":            "アドバイスをスキップしました: %s",
		"Failed to save preview %s: %v": "プレビュー %s の保存に失敗しました: %v",
		"Failed to save manifest: %v":   "マニフェストの保存に失敗しました: %v",
		"Failed to save advice for %s: %v": "%s のアドバイスの保存に失敗しました: %v",
	})
}
