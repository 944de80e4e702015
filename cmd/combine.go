package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shouni/go-docs-combine/pkg/combine"
)

// コマンドラインフラグ変数を定義
var dryRun bool // --dry-run 分類結果のみを表示し、書き込みは行わない

// printSummary は、結合処理の集計結果を整形して表示します。
func printSummary(summary *combine.Summary) {
	fmt.Println("--- 結合処理の結果 ---")
	fmt.Printf("発見されたファイル数: %d\n", summary.Discovered)
	for _, gc := range summary.Groups {
		fmt.Printf("- %s: %d 件\n", gc.Name, gc.Files)
	}
	fmt.Printf("- other_content: %d 件\n", summary.Other)
	fmt.Println("-----------------------")
}

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "入力ディレクトリのテキストファイルをSource URLのグループ別に結合します",
	Long: `入力ディレクトリ直下の *.txt ファイルを列挙し、各ファイルの先頭行の
Source URL 注釈をグループテーブルと前方一致で照合して、グループごとに
1つの結合ファイル（<グループ名>.txt）へ書き出します。
どのグループにも一致しなかったファイルは other_content.txt にまとめられます。`,
	Args: cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {

		// 1. 実効設定の決定（設定ファイル < 明示フラグ）
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		// 2. 依存性の初期化
		combiner, err := combine.NewCombiner(cfg.InputDir, cfg.OutputDir, cfg.Table())
		if err != nil {
			return fmt.Errorf("Combinerの初期化エラー: %w", err)
		}

		// 3. メインロジックの実行
		var summary *combine.Summary
		if dryRun {
			summary, err = combiner.DryRun()
		} else {
			summary, err = combiner.Combine()
		}
		if err != nil {
			return fmt.Errorf("結合処理の実行エラー: %w", err)
		}

		// 4. 結果の出力
		if dryRun {
			fmt.Println("(ドライラン: ファイルへの書き込みは行われていません)")
		}
		printSummary(summary)

		return nil
	},
}

func init() {
	combineCmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"ファイルを書き込まずに、分類結果の集計のみを表示します")
}
