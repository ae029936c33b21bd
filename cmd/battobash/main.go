// Package main はアプリケーションのエントリーポイントを提供します
package main

import (
	"os"

	"fyne.io/fyne/v2/app"

	"BatToBash/internal/domain/model"
	"BatToBash/internal/gui"
	"BatToBash/internal/infrastructure/filesystem"
	"BatToBash/internal/infrastructure/logging"
	"BatToBash/internal/interface/ui"
	"BatToBash/internal/usecase/convert"
)

func main() {
	// ロガーの初期化
	logger := logging.NewJSONLogger(os.Stdout)

	// ファイルストアの初期化
	store := filesystem.NewStore()

	// 変換処理の初期化（.bat -> .bash）
	converter := convert.NewConverter(store, model.DefaultRule(), logger.WithComponent("convert"))

	// ネイティブのフォルダ選択ダイアログ
	browser := ui.NewDirectorySelector(store)

	a := app.New()
	window := gui.NewWindow(a, converter, browser, logger.WithComponent("gui"))

	logger.Log(logging.LevelInfo, "アプリケーションを起動しました", nil)
	window.ShowAndRun()
	logger.Log(logging.LevelInfo, "アプリケーションを終了しました", nil)
}
