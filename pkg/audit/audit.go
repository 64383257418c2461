// Package audit appends one redacted JSONL record per guarded invocation.
// Records never contain the checked text or any environment values; only
// lengths, counts, and verdicts leave the process.
package audit

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/guardcheck/guardcheck/pkg/checker"
	"github.com/guardcheck/guardcheck/pkg/defaults"
	"github.com/guardcheck/guardcheck/pkg/jsonutil"
)

// Record is one audit log line.
type Record struct {
	ID            string `json:"id"`
	Timestamp     string `json:"timestamp"`
	App           string `json:"app,omitempty"`
	Action        string `json:"action,omitempty"`
	Status        string `json:"status"`
	Score         int    `json:"score"`
	FindingsCount int    `json:"findings_count"`
	TextLen       int    `json:"text_len"`
	Command       string `json:"command,omitempty"`
	DryRun        bool   `json:"dry_run,omitempty"`
	ExitCode      int    `json:"exit_code"`
}

// NewRecord builds a redacted record from a check report.
// command should be the wrapped binary's name only, never its arguments.
func NewRecord(rep *checker.Report, command string, dryRun bool, exitCode int) Record {
	return Record{
		ID:            uuid.NewString(),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		App:           rep.App,
		Action:        rep.Action,
		Status:        rep.Status.String(),
		Score:         rep.Score,
		FindingsCount: rep.FindingsCount,
		TextLen:       rep.TextLen,
		Command:       command,
		DryRun:        dryRun,
		ExitCode:      exitCode,
	}
}

// Append writes rec as one JSON line at the end of path, creating the
// file with restrictive permissions if needed.
func Append(path string, rec Record) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, defaults.AuditFileMode)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	if err := jsonutil.NewEncoder(f).Encode(rec); err != nil {
		f.Close()
		return fmt.Errorf("writing audit record: %w", err)
	}
	return f.Close()
}
