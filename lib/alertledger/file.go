package alertledger

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
)

// FileLedger is the minimal durable set: one token per line, append-only.
// It never rewrites the file, so a crash mid-run can at worst leave a
// duplicate line behind, which Has tolerates.
type FileLedger struct {
	path string
}

func NewFileLedger(path string) FileLedger {
	return FileLedger{path: path}
}

func (l FileLedger) read() ([]string, error) {
	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var tokens []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		tokens = append(tokens, line)
	}
	return tokens, nil
}

func (l FileLedger) Has(ctx context.Context, token string) (bool, error) {
	tokens, err := l.read()
	if err != nil {
		return false, err
	}
	return slices.Contains(tokens, token), nil
}

func (l FileLedger) Mark(ctx context.Context, token string) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = fmt.Fprintln(f, token)
	if err != nil {
		return err
	}
	return f.Sync()
}

func (l FileLedger) List(ctx context.Context) ([]string, error) {
	tokens, err := l.read()
	if err != nil {
		return nil, err
	}
	slices.Sort(tokens)
	return slices.Compact(tokens), nil
}
