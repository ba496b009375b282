// yson 解析命令行给出的 JSON 文件，打印语法树与解析耗时。
// 多个文件在 worker pool 上并发解析，输出保持参数顺序。
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/uniyakcom/yson"
)

type fileResult struct {
	tree    *yson.Value
	rest    string
	elapsed time.Duration
	err     error
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s FILE...\n", os.Args[0])
		os.Exit(1)
	}
	os.Exit(run(os.Args[1:]))
}

func run(paths []string) int {
	pool, err := ants.NewPool(runtime.NumCPU())
	if err != nil {
		slog.Error("create worker pool", "error", err)
		return 1
	}
	defer pool.Release()

	// 每个文件写自己的槽位，无共享状态
	results := make([]fileResult, len(paths))
	var wg sync.WaitGroup
	for idx, path := range paths {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			results[idx] = parseFile(path)
		}); err != nil {
			wg.Done()
			results[idx] = fileResult{err: err}
		}
	}
	wg.Wait()

	code := 0
	for idx, path := range paths {
		r := results[idx]
		if r.err != nil {
			slog.Error("parse failed", "file", path, "error", r.err)
			code = 1
			continue
		}
		fmt.Printf("%s\n%dµs\n", r.tree.Dump(), r.elapsed.Microseconds())
		if strings.TrimSpace(r.rest) != "" {
			slog.Warn("trailing data after value",
				"file", path, "trailing", fmt.Sprintf("%.32q", r.rest))
		}
	}
	return code
}

func parseFile(path string) fileResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileResult{err: err}
	}
	start := time.Now()
	v, rest, err := yson.Parse(string(data))
	elapsed := time.Since(start)
	if err != nil {
		return fileResult{err: err}
	}
	return fileResult{tree: v, rest: rest, elapsed: elapsed}
}
