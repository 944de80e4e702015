package combine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/shouni/go-docs-combine/pkg/group"
	"github.com/shouni/go-docs-combine/pkg/types"
)

// ----------------------------------------------------------------------
// 定数定義
// ----------------------------------------------------------------------

const (
	// DefaultInputDir は、スクレイピング結果の入力ディレクトリのデフォルト値です。
	DefaultInputDir = "scraped_docs"
	// DefaultOutputDir は、結合結果の出力ディレクトリのデフォルト値です。
	DefaultOutputDir = "combined_docs"

	// OtherContentFileName は、どのグループにも一致しなかったファイルの出力先です。
	OtherContentFileName = "other_content.txt"

	inputGlobPattern = "*.txt"
	delimiterLength  = 80

	groupHeaderFormat  = "### Combined Content for %s ###\n\n"
	otherContentHeader = "### Content from Other URLs ###\n\n"
)

// sourceURLPattern は、入力ファイル先頭行の Source URL 注釈に一致します。
// 行頭からの一致のみを認め、残り全体をURLとして捕捉します。
var sourceURLPattern = regexp.MustCompile(`^Source URL: (.+)$`)

// ----------------------------------------------------------------------
// Combiner の定義
// ----------------------------------------------------------------------

// Combiner は、入力ディレクトリのテキストファイルを Source URL のグループ別に
// 結合するバッチ処理を管理します。処理は完全に逐次的で、再実行可能です
// （出力ファイルは毎回 truncate して書き直されます）。
type Combiner struct {
	inputDir  string
	outputDir string
	table     group.Table
}

// GroupCount は、サマリー内の1グループ分のファイル数を保持します。
type GroupCount struct {
	Name  string // グループ名（または other_content）
	Files int    // そのグループに分類されたファイル数
}

// Summary は、1回の結合処理の集計結果を保持します。
// Groups はテーブルの宣言順で、分類されたファイルが1件以上あるグループのみを含みます。
type Summary struct {
	Discovered int          // 発見された入力ファイルの総数
	Groups     []GroupCount // 非空グループごとの分類件数
	Other      int          // どのグループにも一致しなかったファイル数
}

// NewCombiner は、新しいCombinerのインスタンスを生成します。
// ディレクトリが空文字列の場合はデフォルト値を適用し、テーブルは検証します。
func NewCombiner(inputDir, outputDir string, table group.Table) (*Combiner, error) {
	if inputDir == "" {
		inputDir = DefaultInputDir
	}
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("combine.NewCombiner: 不正なグループテーブルです: %w", err)
	}
	return &Combiner{
		inputDir:  inputDir,
		outputDir: outputDir,
		table:     table,
	}, nil
}

// InputDir は、設定済みの入力ディレクトリを返します。
func (c *Combiner) InputDir() string { return c.inputDir }

// OutputDir は、設定済みの出力ディレクトリを返します。
func (c *Combiner) OutputDir() string { return c.outputDir }

// ----------------------------------------------------------------------
// 抽出と分類（スキャンフェーズ）
// ----------------------------------------------------------------------

// extractSourceURL は、ファイルの先頭行だけを読み、Source URL 注釈を抽出します。
// 前後の空白を除去した先頭行が `Source URL: <rest>` の形式に一致した場合、
// <rest> を返します。一致しない場合、および読み込みに失敗した場合は
// ("", false) を返します。読み込み失敗はログに記録するのみで、致命的ではありません。
func extractSourceURL(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("ファイル %s の読み込みエラー: %v", path, err)
		return "", false
	}
	defer f.Close()

	// 先頭行の長さには上限を設けない（改行が現れるまで読み切る）
	reader := bufio.NewReader(f)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		log.Printf("ファイル %s の先頭行の読み込みエラー: %v", path, err)
		return "", false
	}

	firstLine := strings.TrimSpace(line)
	m := sourceURLPattern.FindStringSubmatch(firstLine)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// readFile は、書き込みフェーズで使用するファイル全文の読み込みを行い、
// 成否を FileResult の値として返します。
func readFile(path string) types.FileResult {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.FileResult{Path: path, Err: err}
	}
	return types.FileResult{Path: path, Content: string(content)}
}

// scanAndClassify は、入力ディレクトリ直下の *.txt を列挙し、各ファイルを
// グループ別のバケットに振り分けます。
// 不変条件: 発見された全ファイルは、一致グループのバケットか other バケットの
// どちらか一方に、ちょうど1回だけ追加されます。
func (c *Combiner) scanAndClassify() (buckets map[string][]types.SourceFile, other []types.SourceFile, discovered int, err error) {
	// 1. 入力ファイルの列挙（非再帰）
	pattern := filepath.Join(c.inputDir, inputGlobPattern)
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("入力ファイルの列挙に失敗しました (パターン: %s): %w", pattern, err)
	}
	log.Printf("%d 件のテキストファイルを発見しました (入力: %s)", len(paths), c.inputDir)

	// 2. 先頭行のURLによる分類
	buckets = make(map[string][]types.SourceFile)
	for _, path := range paths {
		url, _ := extractSourceURL(path)
		record := types.SourceFile{Path: path, URL: url}

		if name, ok := c.table.Classify(url); ok {
			buckets[name] = append(buckets[name], record)
		} else {
			other = append(other, record)
		}
	}

	return buckets, other, len(paths), nil
}

// ----------------------------------------------------------------------
// 結合（書き込みフェーズ）
// ----------------------------------------------------------------------

// writeGroupFile は、1グループ分の結合ファイルを作成（truncate）し、
// ヘッダーに続けて各メンバーの全文を区切り線付きで書き込みます。
// メンバー個別の読み込み失敗はログに記録してスキップします（致命的ではない）。
// 出力ファイル自体の作成・書き込みエラーは致命的として呼び出し元へ返します。
func writeGroupFile(outputPath, header string, files []types.SourceFile) error {
	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("出力ファイル %s の作成に失敗しました: %w", outputPath, err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	if _, err := w.WriteString(header); err != nil {
		return fmt.Errorf("出力ファイル %s への書き込みに失敗しました: %w", outputPath, err)
	}

	delimiter := strings.Repeat("=", delimiterLength)
	for _, file := range files {
		res := readFile(file.Path)
		if res.Err != nil {
			log.Printf("ファイル %s の処理エラー: %v", res.Path, res.Err)
			continue
		}

		// 区切り線 → 全文（Source URL 行を含む生の内容）→ 区切り線
		if _, err := fmt.Fprintf(w, "\n%s\n%s\n%s\n", delimiter, res.Content, delimiter); err != nil {
			return fmt.Errorf("出力ファイル %s への書き込みに失敗しました: %w", outputPath, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("出力ファイル %s への書き込みに失敗しました: %w", outputPath, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("出力ファイル %s のクローズに失敗しました: %w", outputPath, err)
	}
	return nil
}

// Combine は、結合バッチ処理の全体を実行します。
//  1. 入力ディレクトリ直下の *.txt を列挙し、先頭行のURLで分類する
//  2. 非空の各グループについて <グループ名>.txt を作成し、メンバー全文を結合する
//  3. 未分類ファイルがあれば other_content.txt に同じ形式で書き出す
//  4. 集計結果を Summary として返す
func (c *Combiner) Combine() (*Summary, error) {
	// 1. スキャンと分類
	buckets, other, discovered, err := c.scanAndClassify()
	if err != nil {
		return nil, err
	}

	// 2. 出力ディレクトリの準備（作成失敗は致命的）
	if err := os.MkdirAll(c.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("出力ディレクトリ %s の作成に失敗しました: %w", c.outputDir, err)
	}

	// 3. グループごとの結合ファイル作成（テーブルの宣言順）
	summary := &Summary{Discovered: discovered}
	for _, rule := range c.table {
		files := buckets[rule.Name]
		if len(files) == 0 {
			continue
		}

		outputPath := filepath.Join(c.outputDir, rule.Name+".txt")
		log.Printf("グループ %s の結合ファイルを作成します (%d 件)", rule.Name, len(files))

		header := fmt.Sprintf(groupHeaderFormat, rule.Name)
		if err := writeGroupFile(outputPath, header, files); err != nil {
			return nil, err
		}
		summary.Groups = append(summary.Groups, GroupCount{Name: rule.Name, Files: len(files)})
	}

	// 4. 未分類ファイルの書き出し
	if len(other) > 0 {
		outputPath := filepath.Join(c.outputDir, OtherContentFileName)
		log.Printf("未分類コンテンツのファイルを作成します (%d 件)", len(other))

		if err := writeGroupFile(outputPath, otherContentHeader, other); err != nil {
			return nil, err
		}
	}
	summary.Other = len(other)

	return summary, nil
}

// DryRun は、書き込みを一切行わずにスキャンと分類だけを実行し、
// Combine と同じ形式の Summary を返します。
func (c *Combiner) DryRun() (*Summary, error) {
	buckets, other, discovered, err := c.scanAndClassify()
	if err != nil {
		return nil, err
	}

	summary := &Summary{Discovered: discovered, Other: len(other)}
	for _, rule := range c.table {
		if n := len(buckets[rule.Name]); n > 0 {
			summary.Groups = append(summary.Groups, GroupCount{Name: rule.Name, Files: n})
		}
	}
	return summary, nil
}
