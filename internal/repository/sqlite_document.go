package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tally/internal/db"
	"github.com/alexanderramin/tally/internal/domain"
)

// documentColumns is the canonical SELECT column list for documents.
const documentColumns = `id, name, source_path, content, created_at, updated_at`

// SQLiteDocumentRepo implements DocumentRepo using a SQLite database.
// It accepts a db.DBTX so it works against both *sql.DB and an open
// transaction.
type SQLiteDocumentRepo struct {
	db db.DBTX
}

// NewSQLiteDocumentRepo creates a new SQLiteDocumentRepo.
func NewSQLiteDocumentRepo(dbtx db.DBTX) *SQLiteDocumentRepo {
	return &SQLiteDocumentRepo{db: dbtx}
}

func (r *SQLiteDocumentRepo) Create(ctx context.Context, d *DocumentRecord) error {
	query := `INSERT INTO documents (id, name, source_path, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.Name,
		d.SourcePath,
		d.Content,
		d.CreatedAt.Format(time.RFC3339),
		d.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting document: %w", err)
	}
	return nil
}

func (r *SQLiteDocumentRepo) GetByID(ctx context.Context, id string) (*DocumentRecord, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = ?`
	return r.scanDocument(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteDocumentRepo) GetByName(ctx context.Context, name string) (*DocumentRecord, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE name = ?`
	return r.scanDocument(r.db.QueryRowContext(ctx, query, name))
}

func (r *SQLiteDocumentRepo) List(ctx context.Context) ([]*DocumentRecord, error) {
	query := `SELECT ` + documentColumns + ` FROM documents ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []*DocumentRecord
	for rows.Next() {
		d, err := r.scanDocumentFromRows(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}
	return docs, nil
}

func (r *SQLiteDocumentRepo) UpdateContent(ctx context.Context, id, content string, updatedAt time.Time) error {
	query := `UPDATE documents SET content = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, content, updatedAt.Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("updating document content: %w", err)
	}
	return requireRowAffected(res, "document")
}

func (r *SQLiteDocumentRepo) Rename(ctx context.Context, id, name string, updatedAt time.Time) error {
	query := `UPDATE documents SET name = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, name, updatedAt.Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("renaming document: %w", err)
	}
	return requireRowAffected(res, "document")
}

func (r *SQLiteDocumentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	return requireRowAffected(res, "document")
}

func (r *SQLiteDocumentRepo) scanDocument(row *sql.Row) (*DocumentRecord, error) {
	var d DocumentRecord
	var createdAtStr, updatedAtStr string

	err := row.Scan(&d.ID, &d.Name, &d.SourcePath, &d.Content, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("document: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning document: %w", err)
	}
	return r.populateTimes(&d, createdAtStr, updatedAtStr)
}

func (r *SQLiteDocumentRepo) scanDocumentFromRows(rows *sql.Rows) (*DocumentRecord, error) {
	var d DocumentRecord
	var createdAtStr, updatedAtStr string

	err := rows.Scan(&d.ID, &d.Name, &d.SourcePath, &d.Content, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("scanning document row: %w", err)
	}
	return r.populateTimes(&d, createdAtStr, updatedAtStr)
}

func (r *SQLiteDocumentRepo) populateTimes(d *DocumentRecord, createdAtStr, updatedAtStr string) (*DocumentRecord, error) {
	var err error
	d.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	d.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return d, nil
}

// requireRowAffected turns a zero-row UPDATE/DELETE into ErrNotFound.
func requireRowAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	return nil
}
