package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "有効なグループテーブルを宣言順に一覧表示します",
	Long: `現在有効なグループテーブル（グループ名とURLプレフィックスの対）を
宣言順に表示します。分類は先頭のルールから順に評価されるため、
表示順がそのまま優先順位です。--config で指定したテーブルの確認に利用できます。`,
	Args: cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		table := cfg.Table()
		if err := table.Validate(); err != nil {
			return fmt.Errorf("グループテーブルの検証エラー: %w", err)
		}

		fmt.Println("--- グループテーブル ---")
		for i, rule := range table {
			fmt.Printf("[%d] %s\n", i+1, rule.Name)
			fmt.Printf("    プレフィックス: %s\n", rule.Prefix)
		}
		fmt.Println("-----------------------")

		return nil
	},
}
