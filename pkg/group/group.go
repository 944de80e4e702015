package group

import (
	"fmt"
	"strings"
)

// ----------------------------------------------------------------------
// グループテーブルの定義
// ----------------------------------------------------------------------

// Rule は、1つのグループ名と、そのグループに属するURLプレフィックスの対を表します。
type Rule struct {
	Name   string `yaml:"name"`   // グループ名（出力ファイル名 <name>.txt になる）
	Prefix string `yaml:"prefix"` // 前方一致で比較されるURLプレフィックス
}

// Table は、宣言順を保持する不変のルールリストです。
// 分類は宣言順に評価され、最初に一致したルールが勝ちます（first-match-wins）。
// プレフィックスが重複し得る場合は、より具体的なものを先に宣言する必要があります。
type Table []Rule

// DefaultTable は、出荷時のグループテーブルを返します。
// 5つのプレフィックスは相互に排他的ですが、宣言順の契約は維持されます。
func DefaultTable() Table {
	return Table{
		{Name: "core-nodes", Prefix: "https://docs.n8n.io/integrations/builtin/core-nodes/"},
		{Name: "app-nodes", Prefix: "https://docs.n8n.io/integrations/builtin/app-nodes/"},
		{Name: "trigger-nodes", Prefix: "https://docs.n8n.io/integrations/builtin/trigger-nodes/"},
		{Name: "cluster-nodes", Prefix: "https://docs.n8n.io/integrations/builtin/cluster-nodes/"},
		{Name: "credentials", Prefix: "https://docs.n8n.io/integrations/builtin/credentials/"},
	}
}

// ----------------------------------------------------------------------
// 操作
// ----------------------------------------------------------------------

// Classify は、URLをテーブルの宣言順に評価し、最初にプレフィックスが
// 前方一致したグループ名を返します。
// 一致はバイト単位の strings.HasPrefix であり、正規化や正規表現は行いません。
// URLがプレフィックスそのものと等しい場合も一致と見なします。
// URLが空、またはどのプレフィックスにも一致しない場合は ("", false) を返します。
func (t Table) Classify(url string) (string, bool) {
	if url == "" {
		return "", false
	}
	for _, rule := range t {
		if strings.HasPrefix(url, rule.Prefix) {
			return rule.Name, true
		}
	}
	return "", false
}

// Validate は、テーブルが分類に利用できる状態であることを検証します。
// 空のテーブル、空の名前・プレフィックス、およびグループ名の重複を拒否します。
// 名前は出力ファイル名になるため、重複すると出力が上書きされてしまいます。
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("グループテーブルが空です")
	}

	seen := make(map[string]struct{}, len(t))
	for i, rule := range t {
		if rule.Name == "" {
			return fmt.Errorf("グループテーブルの %d 番目のルールに名前がありません", i+1)
		}
		if rule.Prefix == "" {
			return fmt.Errorf("グループ %q にURLプレフィックスがありません", rule.Name)
		}
		if _, ok := seen[rule.Name]; ok {
			return fmt.Errorf("グループ名 %q が重複しています", rule.Name)
		}
		seen[rule.Name] = struct{}{}
	}
	return nil
}
