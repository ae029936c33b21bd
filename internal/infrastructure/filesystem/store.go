// Package filesystem はファイルシステム操作を提供します
package filesystem

import (
	"fmt"
	"os"
)

// DefaultFileMode は新しく作成するファイルのパーミッションです
const DefaultFileMode os.FileMode = 0o644

// DirectoryValidator はディレクトリの検証機能を提供するインターフェースです
type DirectoryValidator interface {
	ValidateDirectoryPath(path string) error
}

// Store はOSのファイルシステムに対する読み書きを提供します
type Store struct {
	fileMode os.FileMode
}

// NewStore は新しい Store インスタンスを作成します
func NewStore() *Store {
	return &Store{fileMode: DefaultFileMode}
}

// ValidateDirectoryPath はパスが存在するディレクトリであることを確認します
func (s *Store) ValidateDirectoryPath(path string) error {
	if path == "" {
		return fmt.Errorf("ディレクトリパスが指定されていません")
	}

	fileInfo, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("ディレクトリが存在しません: %w", err)
	}

	if !fileInfo.IsDir() {
		return fmt.Errorf("指定されたパスはディレクトリではありません: %s", path)
	}

	return nil
}

// ListNames はディレクトリ直下のエントリ名をファイル名順に返します（再帰はしません）
func (s *Store) ListNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("ディレクトリの読み込みに失敗しました: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// ReadFile はファイルの内容をすべて読み込みます
func (s *Store) ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ファイル '%s' の読み込みに失敗しました: %w", path, err)
	}
	return content, nil
}

// WriteFile は内容をそのまま書き込みます。既存のファイルは上書きされます
func (s *Store) WriteFile(path string, content []byte) error {
	if err := os.WriteFile(path, content, s.fileMode); err != nil {
		return fmt.Errorf("ファイル '%s' の書き込みに失敗しました: %w", path, err)
	}
	return nil
}
