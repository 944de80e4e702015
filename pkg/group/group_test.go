package group_test

import (
	"testing"

	"github.com/shouni/go-docs-combine/pkg/group"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	table := group.DefaultTable()

	// 出荷時テーブルは5グループで、検証を通過すること
	require.NoError(t, table.Validate())
	require.Len(t, table, 5)

	// 宣言順が維持されていること
	expectedOrder := []string{"core-nodes", "app-nodes", "trigger-nodes", "cluster-nodes", "credentials"}
	for i, rule := range table {
		assert.Equal(t, expectedOrder[i], rule.Name)
	}
}

func TestClassify(t *testing.T) {
	table := group.DefaultTable()

	testCases := []struct {
		name          string
		url           string
		expectedGroup string
		expectedMatch bool
	}{
		// 1. 登録済みプレフィックス配下のURL
		{
			name:          "app_nodes_url",
			url:           "https://docs.n8n.io/integrations/builtin/app-nodes/foo",
			expectedGroup: "app-nodes",
			expectedMatch: true,
		},
		{
			name:          "core_nodes_url",
			url:           "https://docs.n8n.io/integrations/builtin/core-nodes/n8n-nodes-base.code/",
			expectedGroup: "core-nodes",
			expectedMatch: true,
		},

		// 2. URLがプレフィックスそのものと等しい場合も一致すること（前方一致であり、真の拡張は要求しない）
		{
			name:          "url_equal_to_prefix",
			url:           "https://docs.n8n.io/integrations/builtin/credentials/",
			expectedGroup: "credentials",
			expectedMatch: true,
		},

		// 3. どのプレフィックスにも一致しないURL
		{
			name:          "unknown_url",
			url:           "https://example.com/some/page",
			expectedGroup: "",
			expectedMatch: false,
		},
		{
			name:          "similar_but_not_prefixed_url",
			url:           "https://docs.n8n.io/hosting/installation/",
			expectedGroup: "",
			expectedMatch: false,
		},

		// 4. 空URL（注釈なしファイル）は不一致
		{
			name:          "empty_url",
			url:           "",
			expectedGroup: "",
			expectedMatch: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actualGroup, actualMatch := table.Classify(tc.url)

			assert.Equal(t, tc.expectedMatch, actualMatch, "一致判定が期待値と異なります")
			assert.Equal(t, tc.expectedGroup, actualGroup, "グループ名が期待値と異なります")
		})
	}
}

// TestClassifyFirstMatchWins は、プレフィックスが重複するテーブルにおいて
// 宣言順の先頭ルールが勝つこと（first-match-wins）を検証します。
// 出荷時テーブルに重複はありませんが、この契約は防御的に維持されます。
func TestClassifyFirstMatchWins(t *testing.T) {
	// より具体的なプレフィックスを先に宣言したテーブル
	specificFirst := group.Table{
		{Name: "docs-api", Prefix: "https://example.com/docs/api/"},
		{Name: "docs", Prefix: "https://example.com/docs/"},
	}

	name, ok := specificFirst.Classify("https://example.com/docs/api/v1")
	require.True(t, ok)
	assert.Equal(t, "docs-api", name, "より具体的な先頭ルールが勝つべきです")

	// 親プレフィックスを先に宣言した場合は、宣言順どおり親が勝つ
	parentFirst := group.Table{
		{Name: "docs", Prefix: "https://example.com/docs/"},
		{Name: "docs-api", Prefix: "https://example.com/docs/api/"},
	}

	name, ok = parentFirst.Classify("https://example.com/docs/api/v1")
	require.True(t, ok)
	assert.Equal(t, "docs", name, "宣言順の先頭ルールが勝つべきです")
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name          string
		table         group.Table
		expectedError string
	}{
		{
			name:          "valid_table",
			table:         group.DefaultTable(),
			expectedError: "",
		},
		{
			name:          "empty_table",
			table:         group.Table{},
			expectedError: "グループテーブルが空です",
		},
		{
			name: "missing_name",
			table: group.Table{
				{Name: "", Prefix: "https://example.com/"},
			},
			expectedError: "名前がありません",
		},
		{
			name: "missing_prefix",
			table: group.Table{
				{Name: "docs", Prefix: ""},
			},
			expectedError: "URLプレフィックスがありません",
		},
		{
			name: "duplicate_name",
			table: group.Table{
				{Name: "docs", Prefix: "https://example.com/a/"},
				{Name: "docs", Prefix: "https://example.com/b/"},
			},
			expectedError: "重複しています",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.table.Validate()

			if tc.expectedError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedError)
		})
	}
}
