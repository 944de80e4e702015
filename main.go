package main

import (
	"github.com/shouni/go-docs-combine/cmd"
)

// main 関数は、cmd.Execute に処理を委譲します。
// エラーハンドリングとプロセス終了は clibase 側で一元化されています。
func main() {
	cmd.Execute()
}
