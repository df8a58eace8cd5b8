package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
)

// DocumentRecord is the persisted form of a checklist: its rendered text
// plus identity metadata. Parsing back into a domain.Document is the
// caller's concern.
type DocumentRecord struct {
	ID         string
	Name       string
	SourcePath string
	Content    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type DocumentRepo interface {
	Create(ctx context.Context, d *DocumentRecord) error
	GetByID(ctx context.Context, id string) (*DocumentRecord, error)
	GetByName(ctx context.Context, name string) (*DocumentRecord, error)
	List(ctx context.Context) ([]*DocumentRecord, error)
	UpdateContent(ctx context.Context, id, content string, updatedAt time.Time) error
	Rename(ctx context.Context, id, name string, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

type ActivityRepo interface {
	Create(ctx context.Context, e *domain.ActivityEntry) error
	ListRecent(ctx context.Context, documentID string, limit int) ([]*domain.ActivityEntry, error)
}
