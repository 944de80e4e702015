package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shouni/go-docs-combine/pkg/combine"
	"github.com/shouni/go-docs-combine/pkg/group"
)

// Config は、YAML設定ファイルの構造を表します。
// groups はリストとして宣言順を保持します。分類は先頭から評価されるため、
// プレフィックスが重複し得る場合は、より具体的なルールを先に書く必要があります。
type Config struct {
	InputDir  string       `yaml:"input_dir"`  // 入力ディレクトリ
	OutputDir string       `yaml:"output_dir"` // 出力ディレクトリ
	Groups    []group.Rule `yaml:"groups"`     // グループテーブル（宣言順が優先順位）
}

// Default は、設定ファイルなしで動作するためのデフォルト設定を返します。
func Default() *Config {
	return &Config{
		InputDir:  combine.DefaultInputDir,
		OutputDir: combine.DefaultOutputDir,
		Groups:    group.DefaultTable(),
	}
}

// Load は、指定されたYAMLファイルから設定を読み込みます。
// 未指定のフィールドにはデフォルト値を適用します。
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("設定ファイル %s の読み込みに失敗しました: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("設定ファイル %s のパースに失敗しました: %w", path, err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults は、ゼロ値のフィールドをデフォルト値で補完します。
func (c *Config) applyDefaults() {
	if c.InputDir == "" {
		c.InputDir = combine.DefaultInputDir
	}
	if c.OutputDir == "" {
		c.OutputDir = combine.DefaultOutputDir
	}
	if len(c.Groups) == 0 {
		c.Groups = group.DefaultTable()
	}
}

// Table は、設定されたグループルールを group.Table として返します。
func (c *Config) Table() group.Table {
	return group.Table(c.Groups)
}
