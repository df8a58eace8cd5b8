package service

import (
	"context"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/repository"
)

// DocumentInfo pairs a stored document with its current progress, for
// listings.
type DocumentInfo struct {
	Record   *repository.DocumentRecord
	Progress domain.Progress
}

// DocumentService manages stored checklists. Document references resolve by
// exact name, exact id, then unique prefix of either.
type DocumentService interface {
	Import(ctx context.Context, filePath, name string) (*repository.DocumentRecord, error)
	List(ctx context.Context) ([]DocumentInfo, error)
	Get(ctx context.Context, ref string) (*domain.Document, error)
	GetRecord(ctx context.Context, ref string) (*repository.DocumentRecord, error)
	Export(ctx context.Context, ref string) (string, error)
	Rename(ctx context.Context, ref, newName string) error
	Delete(ctx context.Context, ref string) error
}

// ChecklistService mutates and reads item state on stored checklists.
type ChecklistService interface {
	// SetChecked flags one item, persists the re-rendered document and
	// records the action, atomically. Returns the item as mutated.
	SetChecked(ctx context.Context, ref string, p domain.Path, value bool) (*domain.Item, error)
	// Progress counts checked/total items; section < 0 scans the whole
	// document.
	Progress(ctx context.Context, ref string, section int) (domain.Progress, error)
}

// ActivityService reads the check/uncheck history of a document.
type ActivityService interface {
	ListRecent(ctx context.Context, ref string, limit int) ([]*domain.ActivityEntry, error)
}
