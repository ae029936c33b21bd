// Package convert はフォルダ内のファイルをサフィックスを置き換えてコピーする機能を提供します
package convert

import (
	"context"
	"fmt"
	"path/filepath"

	"BatToBash/internal/domain/model"
	"BatToBash/internal/infrastructure/logging"
)

// FileStore は変換処理が必要とするファイル操作のインターフェースです
type FileStore interface {
	ListNames(dir string) ([]string, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, content []byte) error
}

// Converter はサフィックス規則に従ってファイルをコピーします
type Converter struct {
	store  FileStore
	rule   model.SuffixRule
	logger logging.Logger
}

// NewConverter は新しい Converter インスタンスを作成します
func NewConverter(store FileStore, rule model.SuffixRule, logger logging.Logger) *Converter {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Converter{
		store:  store,
		rule:   rule,
		logger: logger,
	}
}

// Rule は使用しているサフィックス規則を返します
func (c *Converter) Rule() model.SuffixRule {
	return c.rule
}

// Convert は dir 直下のエントリのうち規則に一致するものを、同じフォルダ内の新しい名前へコピーします。
// 最初のエラーで処理を中断し、それまでに書き込んだファイルはそのまま残ります。
func (c *Converter) Convert(ctx context.Context, dir string) ([]model.Conversion, error) {
	names, err := c.store.ListNames(dir)
	if err != nil {
		return nil, fmt.Errorf("フォルダ '%s' の一覧取得に失敗しました: %w", dir, err)
	}

	var conversions []model.Conversion
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return conversions, err
		}

		if !c.rule.Matches(name) {
			continue
		}

		source := filepath.Join(dir, name)
		target := filepath.Join(dir, c.rule.TargetName(name))

		content, err := c.store.ReadFile(source)
		if err != nil {
			return conversions, err
		}

		if err := c.store.WriteFile(target, content); err != nil {
			return conversions, err
		}

		conversions = append(conversions, model.Conversion{
			Source: source,
			Target: target,
			Size:   len(content),
		})
		c.logger.Log(logging.LevelInfo, fmt.Sprintf("コピーしました: %s -> %s", source, target), nil)
	}

	return conversions, nil
}
