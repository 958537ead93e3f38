// Package parser reads exported channel-history files. Each export is JSONL:
// one message per line with author id, body, and RFC3339 timestamp.
package parser

import (
	"bufio"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/rivertam/pants-off-podrick/internal/core/model"
	"github.com/rivertam/pants-off-podrick/internal/util"
)

// Parser parses history export files.
type Parser struct {
	concurrency int
}

// ParseResult represents the result of parsing a single file.
type ParseResult struct {
	File     string
	Messages []model.RawMessage
	Error    error
}

// NewParser creates a new Parser instance.
func NewParser(concurrency int) *Parser {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Parser{concurrency: concurrency}
}

// ParseFile parses the export at the specified path. Lines that are not
// valid JSON are skipped with a debug log; the rest of the file is still
// used.
func (p *Parser) ParseFile(filepath string) ([]model.RawMessage, error) {
	util.LogDebug(fmt.Sprintf("Start parsing export: %s", filepath))

	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var msgs []model.RawMessage
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	lineCount := 0
	for scanner.Scan() {
		lineCount++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var msg model.RawMessage
		if err := sonic.Unmarshal(scanner.Bytes(), &msg); err != nil {
			util.LogDebug(fmt.Sprintf("Skip invalid JSON line %s:%d - %v", filepath, lineCount, err))
			continue
		}
		msgs = append(msgs, msg)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	util.LogDebug(fmt.Sprintf("Parsed %d messages from %s (%d lines)", len(msgs), filepath, lineCount))
	return msgs, nil
}

// ParseFiles parses multiple exports concurrently and returns a channel of
// ParseResult, closed once every file has been handled.
func (p *Parser) ParseFiles(files []string) <-chan ParseResult {
	start := time.Now()
	results := make(chan ParseResult, len(files))
	var wg sync.WaitGroup

	semaphore := make(chan struct{}, p.concurrency)

	for _, file := range files {
		wg.Add(1)
		go func(f string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			msgs, err := p.ParseFile(f)
			results <- ParseResult{
				File:     f,
				Messages: msgs,
				Error:    err,
			}
		}(file)
	}

	go func() {
		wg.Wait()
		close(results)
		util.LogDebug(fmt.Sprintf("Concurrent parsing of %d exports finished in %v", len(files), time.Since(start)))
	}()

	return results
}
