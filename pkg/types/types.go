package types

// SourceFile は、入力ディレクトリから発見された1つのテキストファイルと、
// その先頭行から抽出された Source URL を保持します。
// URL が抽出できなかった場合、URL は空文字列になります。
type SourceFile struct {
	Path string // 入力ファイルのパス
	URL  string // 先頭行から抽出された Source URL（未抽出の場合は空）
}

// FileResult は、書き込みフェーズにおける個別ファイル読み込みの結果を保持します。
// 例外的な制御フローの代わりに、成功（Content）と失敗（Err）を値として表現します。
// これは、Combiner の読み込みステップの出力、書き込みステップの入力として利用されます。
type FileResult struct {
	Path    string // 処理対象のファイルパス
	Content string // 読み込まれたファイルの全文（失敗時は空）
	Err     error  // 読み込み中に発生したエラー
}
