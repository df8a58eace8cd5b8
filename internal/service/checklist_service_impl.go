package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tally/internal/db"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/markdown"
	"github.com/alexanderramin/tally/internal/repository"
	"github.com/google/uuid"
)

type checklistService struct {
	docs repository.DocumentRepo
	uow  db.UnitOfWork
}

// NewChecklistService creates the ChecklistService. Mutations write the
// updated content and the activity entry within one transaction.
func NewChecklistService(docs repository.DocumentRepo, uow db.UnitOfWork) ChecklistService {
	return &checklistService{docs: docs, uow: uow}
}

func (s *checklistService) SetChecked(ctx context.Context, ref string, p domain.Path, value bool) (*domain.Item, error) {
	rec, err := resolveRecord(ctx, s.docs, ref)
	if err != nil {
		return nil, err
	}

	var item *domain.Item
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txDocs := repository.NewSQLiteDocumentRepo(tx)
		txActs := repository.NewSQLiteActivityRepo(tx)

		// Re-read inside the transaction; the pre-resolved record may be
		// stale if another command ran in between.
		cur, err := txDocs.GetByID(ctx, rec.ID)
		if err != nil {
			return err
		}

		doc := markdown.Parse(cur.Content)
		if err := doc.SetChecked(p, value); err != nil {
			return fmt.Errorf("item %s: %w", p, err)
		}
		item, err = doc.ItemAt(p)
		if err != nil {
			return err
		}

		now := time.Now().UTC().Truncate(time.Second)
		if err := txDocs.UpdateContent(ctx, cur.ID, markdown.Render(doc), now); err != nil {
			return err
		}

		action := domain.ActionCheck
		if !value {
			action = domain.ActionUncheck
		}
		return txActs.Create(ctx, &domain.ActivityEntry{
			ID:         uuid.New().String(),
			DocumentID: cur.ID,
			ItemPath:   p.String(),
			ItemText:   item.Text,
			Action:     action,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *checklistService) Progress(ctx context.Context, ref string, section int) (domain.Progress, error) {
	rec, err := resolveRecord(ctx, s.docs, ref)
	if err != nil {
		return domain.Progress{}, err
	}
	doc := markdown.Parse(rec.Content)
	if section < 0 {
		return doc.Progress(), nil
	}
	prog, err := doc.SectionProgress(section)
	if err != nil {
		return domain.Progress{}, fmt.Errorf("section %d: %w", section+1, err)
	}
	return prog, nil
}
