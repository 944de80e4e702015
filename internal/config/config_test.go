package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shouni/go-docs-combine/internal/config"
	"github.com/shouni/go-docs-combine/pkg/combine"
	"github.com/shouni/go-docs-combine/pkg/group"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigFile は、テスト用のYAML設定ファイルを作成します。
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, combine.DefaultInputDir, cfg.InputDir)
	assert.Equal(t, combine.DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, group.DefaultTable(), cfg.Table())
	require.NoError(t, cfg.Table().Validate())
}

func TestLoad(t *testing.T) {
	t.Run("full_config", func(t *testing.T) {
		path := writeConfigFile(t, `
input_dir: my_docs
output_dir: my_combined
groups:
  - name: guides
    prefix: https://example.com/guides/
  - name: api
    prefix: https://example.com/api/
`)

		cfg, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, "my_docs", cfg.InputDir)
		assert.Equal(t, "my_combined", cfg.OutputDir)

		// グループの宣言順がそのまま維持されること（分類の優先順位になるため）
		expected := group.Table{
			{Name: "guides", Prefix: "https://example.com/guides/"},
			{Name: "api", Prefix: "https://example.com/api/"},
		}
		assert.Equal(t, expected, cfg.Table())
	})

	t.Run("partial_config_applies_defaults", func(t *testing.T) {
		path := writeConfigFile(t, `
input_dir: my_docs
`)

		cfg, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, "my_docs", cfg.InputDir)
		assert.Equal(t, combine.DefaultOutputDir, cfg.OutputDir)
		assert.Equal(t, group.DefaultTable(), cfg.Table(), "グループ未指定時は出荷時テーブルが使われるべきです")
	})

	t.Run("missing_file", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "読み込みに失敗")
	})

	t.Run("invalid_yaml", func(t *testing.T) {
		path := writeConfigFile(t, "groups: [:::")

		cfg, err := config.Load(path)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "パースに失敗")
	})
}
