// package model はドメインモデルを定義します
package model

import "strings"

// 既定の変換元・変換先サフィックス
const (
	DefaultFromSuffix = ".bat"
	DefaultToSuffix   = ".bash"
)

// SuffixRule はファイル名の末尾を置き換える規則を表します
type SuffixRule struct {
	// From は変換対象となるファイル名の末尾です
	From string
	// To は新しいファイル名の末尾です
	To string
}

// DefaultRule は .bat を .bash に置き換える規則を返します
func DefaultRule() SuffixRule {
	return SuffixRule{From: DefaultFromSuffix, To: DefaultToSuffix}
}

// Matches はファイル名が変換対象かどうかを判定します（名前のみで判定し、大文字小文字を区別します）
func (r SuffixRule) Matches(name string) bool {
	return strings.HasSuffix(name, r.From)
}

// TargetName は末尾の From を To に置き換えた名前を返します
func (r SuffixRule) TargetName(name string) string {
	return strings.TrimSuffix(name, r.From) + r.To
}

// Conversion は1件のコピー結果を表します
type Conversion struct {
	// Source は元ファイルのパスです
	Source string
	// Target は書き込んだファイルのパスです
	Target string
	// Size は書き込んだバイト数です
	Size int
}
