// Package trace provides the append-only JSONL receipt log of past runs.
package trace

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Record is one receipt of a past run.
type Record struct {
	RunID string `json:"run_id"`
	Task  string `json:"task"`
	Best  string `json:"best"`
}

// NewRunID mints a unique run identifier.
func NewRunID() string {
	return "r-" + uuid.NewString()
}

// Log is an append-only newline-delimited JSON file of records.
type Log struct {
	path string
}

// NewLog creates a log handle for the file at path.
// The file is created lazily on first append.
func NewLog(path string) *Log {
	return &Log{path: path}
}

// Path returns the log file path.
func (l *Log) Path() string {
	return l.path
}

// Append writes one record as a JSON line at the end of the log,
// creating parent directories as needed.
func (l *Log) Append(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to serialize record: %w", err)
	}

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create trace directory: %w", err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open trace log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to append record: %w", err)
	}
	return nil
}

// Read returns all well-formed records in the log, in file order.
// A missing log yields no records and no error. A malformed line is
// skipped; reading continues over the remaining records.
func (l *Log) Read() ([]Record, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open trace log: %w", err)
	}
	defer f.Close()

	// Lines are read without a length limit: the best field carries a
	// full edge response, so a receipt can outgrow any fixed buffer.
	var records []Record
	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadBytes('\n')
		line = bytes.TrimSpace(line)
		if len(line) > 0 {
			var rec Record
			if jerr := json.Unmarshal(line, &rec); jerr == nil {
				records = append(records, rec)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return records, nil
			}
			return records, fmt.Errorf("failed to scan trace log: %w", err)
		}
	}
}
