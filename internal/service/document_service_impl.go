package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/markdown"
	"github.com/alexanderramin/tally/internal/repository"
	"github.com/google/uuid"
)

type documentService struct {
	docs repository.DocumentRepo
}

// NewDocumentService creates the DocumentService backed by the given repo.
func NewDocumentService(docs repository.DocumentRepo) DocumentService {
	return &documentService{docs: docs}
}

func (s *documentService) Import(ctx context.Context, filePath, name string) (*repository.DocumentRecord, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading checklist file: %w", err)
	}

	if name == "" {
		base := filepath.Base(filePath)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	if _, err := s.docs.GetByName(ctx, name); err == nil {
		return nil, fmt.Errorf("document %q already exists", name)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	// Store the rendered form so content is newline-normalized from the
	// start; everything else survives byte-for-byte.
	doc := markdown.Parse(string(data))
	now := time.Now().UTC().Truncate(time.Second)
	rec := &repository.DocumentRecord{
		ID:         uuid.New().String(),
		Name:       name,
		SourcePath: filePath,
		Content:    markdown.Render(doc),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.docs.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("storing document: %w", err)
	}
	return rec, nil
}

func (s *documentService) List(ctx context.Context) ([]DocumentInfo, error) {
	records, err := s.docs.List(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]DocumentInfo, 0, len(records))
	for _, rec := range records {
		infos = append(infos, DocumentInfo{
			Record:   rec,
			Progress: markdown.Parse(rec.Content).Progress(),
		})
	}
	return infos, nil
}

func (s *documentService) Get(ctx context.Context, ref string) (*domain.Document, error) {
	rec, err := resolveRecord(ctx, s.docs, ref)
	if err != nil {
		return nil, err
	}
	return parseRecord(rec), nil
}

func (s *documentService) GetRecord(ctx context.Context, ref string) (*repository.DocumentRecord, error) {
	return resolveRecord(ctx, s.docs, ref)
}

func (s *documentService) Export(ctx context.Context, ref string) (string, error) {
	rec, err := resolveRecord(ctx, s.docs, ref)
	if err != nil {
		return "", err
	}
	return rec.Content, nil
}

func (s *documentService) Rename(ctx context.Context, ref, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("new name is empty")
	}
	rec, err := resolveRecord(ctx, s.docs, ref)
	if err != nil {
		return err
	}
	return s.docs.Rename(ctx, rec.ID, newName, time.Now().UTC().Truncate(time.Second))
}

func (s *documentService) Delete(ctx context.Context, ref string) error {
	rec, err := resolveRecord(ctx, s.docs, ref)
	if err != nil {
		return err
	}
	return s.docs.Delete(ctx, rec.ID)
}

// parseRecord parses stored content and carries the record's identity onto
// the document.
func parseRecord(rec *repository.DocumentRecord) *domain.Document {
	doc := markdown.Parse(rec.Content)
	doc.ID = rec.ID
	doc.Name = rec.Name
	doc.SourcePath = rec.SourcePath
	doc.CreatedAt = rec.CreatedAt
	doc.UpdatedAt = rec.UpdatedAt
	return doc
}
