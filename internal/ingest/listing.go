package ingest

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadPathsFile loads a plain-text catalog listing: one full path per line,
// blank lines and #-comments skipped. Order is preserved.
func ReadPathsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open path listing: %w", err)
	}
	defer func() { _ = f.Close() }()

	var paths []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read path listing: %w", err)
	}
	return paths, nil
}
