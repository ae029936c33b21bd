package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"BatToBash/internal/domain/model"
	"BatToBash/internal/infrastructure/filesystem"
	"BatToBash/internal/infrastructure/logging"
)

// setupBenchmarkDir はベンチマーク用のフォルダを作成します
func setupBenchmarkDir(tb testing.TB, matching, other int) string {
	tb.Helper()
	dir := tb.TempDir()

	for i := 0; i < matching; i++ {
		name := filepath.Join(dir, fmt.Sprintf("script_%d.bat", i))
		content := []byte(fmt.Sprintf("@echo off\r\necho %d\r\n", i))
		if err := os.WriteFile(name, content, 0644); err != nil {
			tb.Fatalf("Failed to write file %s: %v", name, err)
		}
	}
	for i := 0; i < other; i++ {
		name := filepath.Join(dir, fmt.Sprintf("note_%d.txt", i))
		if err := os.WriteFile(name, []byte("note"), 0644); err != nil {
			tb.Fatalf("Failed to write file %s: %v", name, err)
		}
	}

	return dir
}

// BenchmarkConverter_Convert benchmarks the Convert function.
func BenchmarkConverter_Convert(b *testing.B) {
	logger := logging.NewJSONLogger(io.Discard)
	converter := NewConverter(filesystem.NewStore(), model.DefaultRule(), logger)
	dir := setupBenchmarkDir(b, 50, 50)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := converter.Convert(context.Background(), dir); err != nil {
			b.Fatalf("Convert failed during benchmark: %v", err)
		}
	}
}
