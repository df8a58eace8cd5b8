package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alexanderramin/tally/internal/repository"
	"github.com/google/uuid"
)

var testNameCounter atomic.Int64

// SampleChecklist is a small but representative checklist source covering
// nesting, both checkbox cases, prose, and a fenced snippet.
const SampleChecklist = `# Modernization Checklist

Steps before the lift-and-shift.

## General Fixup

- [x] Upgrade runtime to a supported version
- [ ] Pin dependency versions
  - [ ] Generate a lock file
- [ ] Remove dead code paths

## Configuration

- [ ] Move secrets to environment variables
` + "```ini\nDB_HOST=replace-me\n```" + `
- [X] Add a health check endpoint
`

// RecordOption mutates a DocumentRecord fixture.
type RecordOption func(*repository.DocumentRecord)

func WithContent(content string) RecordOption {
	return func(d *repository.DocumentRecord) {
		d.Content = content
	}
}

func WithSourcePath(path string) RecordOption {
	return func(d *repository.DocumentRecord) {
		d.SourcePath = path
	}
}

// NewTestRecord builds a DocumentRecord with a unique name and sample content.
func NewTestRecord(name string, opts ...RecordOption) *repository.DocumentRecord {
	if name == "" {
		name = "doc-" + time.Now().Format("150405")
	}
	now := time.Now().UTC().Truncate(time.Second)
	d := &repository.DocumentRecord{
		ID:        uuid.New().String(),
		Name:      uniqueName(name),
		Content:   SampleChecklist,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func uniqueName(base string) string {
	return base + "-" + strconv.FormatInt(testNameCounter.Add(1), 10)
}

// WriteChecklistFile drops checklist text into a temp file and returns its path.
func WriteChecklistFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "checklist.md")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing checklist fixture: %v", err)
	}
	return path
}
