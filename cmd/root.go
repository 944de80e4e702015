package cmd

import (
	"fmt"
	"log"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"

	"github.com/shouni/go-docs-combine/internal/config"
)

// --- グローバル定数 ---

const (
	appName = "docs-combine"

	// defaultInputDir は、CLIとしてのデフォルト入力ディレクトリです。
	// スクレイピングジョブの標準の出力先 (docs) に合わせています。
	defaultInputDir  = "docs"
	defaultOutputDir = "combined_docs"
)

// --- グローバル変数とフラグ構造体 ---

// AppFlags はこのアプリケーション固有の永続フラグを保持
type AppFlags struct {
	InputDir   string // --input-dir 入力ディレクトリ
	OutputDir  string // --output-dir 出力ディレクトリ
	ConfigPath string // --config グループテーブル等のYAML設定ファイル
}

var Flags AppFlags // アプリケーション固有フラグにアクセスするためのグローバル変数

// --- 初期化とロジック (clibaseへのコールバックとして利用) ---

// addAppPersistentFlags は、アプリケーション固有の永続フラグをルートコマンドに追加します。
func addAppPersistentFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringVarP(
		&Flags.InputDir,
		"input-dir", "i",
		defaultInputDir,
		"スクレイピング結果のテキストファイルを含む入力ディレクトリ",
	)
	rootCmd.PersistentFlags().StringVarP(
		&Flags.OutputDir,
		"output-dir", "o",
		defaultOutputDir,
		"結合済みファイルの出力ディレクトリ",
	)
	rootCmd.PersistentFlags().StringVar(
		&Flags.ConfigPath,
		"config",
		"",
		"グループテーブルとディレクトリを定義するYAML設定ファイルのパス",
	)
}

// initAppPreRunE は、clibase共通処理の後に実行される、アプリケーション固有のPersistentPreRunEです。
// NOTE: clibaseの PersistentPreRunE チェーンにより、clibase.Flags.Verbose はこの関数実行前に設定済み
func initAppPreRunE(cmd *cobra.Command, args []string) error {
	if clibase.Flags.Verbose {
		log.Printf("入力ディレクトリ: %s, 出力ディレクトリ: %s", Flags.InputDir, Flags.OutputDir)
		if Flags.ConfigPath != "" {
			log.Printf("設定ファイル: %s", Flags.ConfigPath)
		}
	}
	return nil
}

// resolveConfig は、設定ファイルとコマンドラインフラグから実効設定を決定します。
// 明示的に指定されたフラグは、設定ファイルの値よりも優先されます。
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config

	// 1. 設定ファイルの読み込み（未指定時はデフォルト設定）
	if Flags.ConfigPath != "" {
		loaded, err := config.Load(Flags.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("設定の読み込みエラー: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.Default()
		// 設定ファイルなしの場合、ディレクトリはフラグのデフォルト値に従う
		cfg.InputDir = Flags.InputDir
		cfg.OutputDir = Flags.OutputDir
		return cfg, nil
	}

	// 2. 明示的なフラグによる上書き
	if cmd.Flags().Changed("input-dir") {
		cfg.InputDir = Flags.InputDir
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = Flags.OutputDir
	}

	return cfg, nil
}

// --- エントリポイント ---

// Execute は、rootCmd を実行するメイン関数です。clibaseのExecuteを使用する。
func Execute() {
	// clibase.Execute を使用して、アプリケーションの初期化、フラグ設定、サブコマンドの登録を一括で行う
	clibase.Execute(
		appName,
		addAppPersistentFlags, // カスタムフラグの追加コールバック
		initAppPreRunE,        // カスタムPersistentPreRunEコールバック
		combineCmd,
		groupsCmd,
	)
	// clibase.Execute() の中で os.Exit(1) が処理されるため、ここでは不要
}
