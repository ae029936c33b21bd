// Package gui はGUIを提供します
package gui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"BatToBash/internal/domain/model"
	"BatToBash/internal/infrastructure/logging"
	"BatToBash/internal/interface/ui"
)

// Default window constants
const (
	DefaultWindowTitle  = "Generate"
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
)

// ボタン等の表示文字列
const (
	ConvertButtonLabel = "Convert Bat files to Bash"
	BrowseButtonLabel  = "Browse..."
	PathPlaceholder    = "Folder path"
	BrowseDialogTitle  = "変換するフォルダを選択"
)

// Converter はフォルダ内のファイルを変換するインターフェースです
type Converter interface {
	Convert(ctx context.Context, dir string) ([]model.Conversion, error)
}

// FolderBrowser はフォルダを対話的に選択するインターフェースです
type FolderBrowser interface {
	SelectDirectory(title string) (string, error)
}

// Window はパス入力欄と変換ボタンを持つメインウィンドウです
type Window struct {
	window        fyne.Window
	entry         *widget.Entry
	convertButton *widget.Button
	browseButton  *widget.Button

	converter Converter
	browser   FolderBrowser
	logger    logging.Logger
}

// NewWindow は新しいメインウィンドウを作成します
func NewWindow(a fyne.App, converter Converter, browser FolderBrowser, logger logging.Logger) *Window {
	if logger == nil {
		logger = logging.Nop{}
	}

	w := &Window{
		window:    a.NewWindow(DefaultWindowTitle),
		converter: converter,
		browser:   browser,
		logger:    logger,
	}

	w.entry = widget.NewEntry()
	w.entry.SetPlaceHolder(PathPlaceholder)
	w.convertButton = widget.NewButton(ConvertButtonLabel, w.convert)
	w.browseButton = widget.NewButton(BrowseButtonLabel, w.browse)

	pathRow := container.NewBorder(nil, nil, nil, w.browseButton, w.entry)
	w.window.SetContent(container.NewVBox(pathRow, w.convertButton))
	w.window.Resize(fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight))

	return w
}

// ShowAndRun はウィンドウを表示し、イベントループを開始します
func (w *Window) ShowAndRun() {
	w.window.ShowAndRun()
}

// convert は入力欄の文字列をそのままフォルダとして変換処理に渡します。
// 処理が終わるまでイベントループはブロックされます。
func (w *Window) convert() {
	dir := w.entry.Text

	conversions, err := w.converter.Convert(context.Background(), dir)
	if err != nil {
		w.logger.Log(logging.LevelError, fmt.Sprintf("フォルダ '%s' の変換に失敗", dir), err)
		return
	}

	w.logger.Log(logging.LevelInfo, fmt.Sprintf("フォルダ '%s' の変換が完了しました（%d件）", dir, len(conversions)), nil)
}

// browse はフォルダ選択ダイアログを表示し、選択されたパスを入力欄に設定します
func (w *Window) browse() {
	if w.browser == nil {
		return
	}

	path, err := w.browser.SelectDirectory(BrowseDialogTitle)
	if err != nil {
		if ui.IsCancelled(err) {
			w.logger.Log(logging.LevelInfo, "フォルダ選択がキャンセルされました", nil)
			return
		}
		w.logger.Log(logging.LevelWarn, "フォルダ選択に失敗", err)
		return
	}

	w.entry.SetText(path)
}
