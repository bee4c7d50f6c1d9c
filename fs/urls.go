// Package fs provides file-based input and output for scrutinaut.
package fs

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// ReadURLFile reads URLs from the file at path. See ParseURLList.
func ReadURLFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseURLList(f)
}

// ParseURLList reads one URL per line. Surrounding whitespace is trimmed;
// blank lines and lines starting with '#' are skipped. URLs are returned
// as written, without validation or deduplication.
func ParseURLList(r io.Reader) ([]string, error) {
	var urls []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return urls, nil
}
