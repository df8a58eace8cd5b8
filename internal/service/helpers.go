package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/repository"
)

// resolveRecord finds a stored document by exact name, exact id, or a
// prefix of either when that prefix is unambiguous.
func resolveRecord(ctx context.Context, docs repository.DocumentRepo, ref string) (*repository.DocumentRecord, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("document reference is empty: %w", domain.ErrNotFound)
	}

	if rec, err := docs.GetByName(ctx, ref); err == nil {
		return rec, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if rec, err := docs.GetByID(ctx, ref); err == nil {
		return rec, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	all, err := docs.List(ctx)
	if err != nil {
		return nil, err
	}
	var matches []*repository.DocumentRecord
	for _, rec := range all {
		if strings.HasPrefix(rec.Name, ref) || strings.HasPrefix(rec.ID, ref) {
			matches = append(matches, rec)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, fmt.Errorf("document %q: %w", ref, domain.ErrNotFound)
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Name
		}
		return nil, fmt.Errorf("document reference %q is ambiguous (matches %s)", ref, strings.Join(names, ", "))
	}
}
