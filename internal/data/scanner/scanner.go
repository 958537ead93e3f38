package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rivertam/pants-off-podrick/internal/util"
)

// FileScanner finds history export files under a base directory.
type FileScanner struct {
	baseDir string
}

// NewFileScanner creates a new FileScanner instance.
func NewFileScanner(baseDir string) *FileScanner {
	return &FileScanner{baseDir: baseDir}
}

// Scan walks the directory and returns all .jsonl export paths. A base path
// that is itself a file is returned as-is.
func (s *FileScanner) Scan() ([]string, error) {
	start := time.Now()

	info, err := os.Stat(s.baseDir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{s.baseDir}, nil
	}

	var files []string
	dirCount := 0

	err = filepath.Walk(s.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			util.LogDebug(fmt.Sprintf("Skip path (error): %s - %v", path, err))
			return nil
		}
		if info.IsDir() {
			dirCount++
			return nil
		}
		if strings.HasSuffix(strings.ToLower(path), ".jsonl") {
			files = append(files, path)
		}
		return nil
	})

	util.LogDebug(fmt.Sprintf("Export scan completed: duration %v, %d directories, found %d exports",
		time.Since(start), dirCount, len(files)))

	return files, err
}
