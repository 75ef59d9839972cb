package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wordslide"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ wordslide.SlideSetService = (*SlideSetService)(nil)

// SlideSetService implements wordslide.SlideSetService using SQLite.
type SlideSetService struct {
	db *DB
}

// NewSlideSetService creates a new SlideSetService.
func NewSlideSetService(db *DB) *SlideSetService {
	return &SlideSetService{db: db}
}

// HashContent computes the xxHash of a slide set's name and texts as a hex
// string. Two imports of the same song produce the same hash.
func HashContent(set *wordslide.SlideSet) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(set.Content()))
}

// CreateSlideSet stores a new slide set with its texts in one transaction.
func (s *SlideSetService) CreateSlideSet(ctx context.Context, set *wordslide.SlideSet) error {
	if err := set.Validate(); err != nil {
		return err
	}

	set.ID = uuid.New().String()
	set.ImportedAt = time.Now().UTC()
	set.ContentHash = HashContent(set)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var chorus sql.NullInt64
	if set.Chorus != nil {
		chorus = sql.NullInt64{Int64: int64(*set.Chorus), Valid: true}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO slide_sets (id, name, chorus, styles, source, source_url, content_hash, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, set.ID, set.Name, chorus, set.Styles, string(set.Source), set.SourceURL, set.ContentHash,
		set.ImportedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	for i, text := range set.Texts {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO slide_texts (set_id, position, text, style)
			VALUES (?, ?, ?, ?)
		`, set.ID, i, text.Text, text.Style); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindSlideSetByID retrieves a slide set by ID.
func (s *SlideSetService) FindSlideSetByID(ctx context.Context, id string) (*wordslide.SlideSet, error) {
	sets, err := s.FindSlideSets(ctx, wordslide.SlideSetFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(sets) == 0 {
		return nil, wordslide.Errorf(wordslide.ENOTFOUND, "slide set not found")
	}
	return sets[0], nil
}

// row holds the slide_sets columns until texts are loaded.
type row struct {
	set    *wordslide.SlideSet
	chorus sql.NullInt64
}

// FindSlideSets retrieves slide sets matching the filter, newest first.
func (s *SlideSetService) FindSlideSets(ctx context.Context, filter wordslide.SlideSetFilter) ([]*wordslide.SlideSet, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, name, chorus, styles, source, source_url, content_hash, imported_at
		FROM slide_sets WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, string(*filter.Source))
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY imported_at DESC, name ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}

	// Rows are drained before texts are queried: the pool holds one connection.
	var found []row
	for rows.Next() {
		var r row
		var set wordslide.SlideSet
		var source, importedAt string
		if err := rows.Scan(&set.ID, &set.Name, &r.chorus, &set.Styles, &source, &set.SourceURL,
			&set.ContentHash, &importedAt); err != nil {
			rows.Close()
			return nil, err
		}
		set.Source = wordslide.Source(source)
		if set.ImportedAt, err = parseRFC3339(importedAt, "imported_at"); err != nil {
			rows.Close()
			return nil, err
		}
		r.set = &set
		found = append(found, r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	sets := make([]*wordslide.SlideSet, 0, len(found))
	for _, r := range found {
		if err := s.loadTexts(ctx, r); err != nil {
			return nil, err
		}
		sets = append(sets, r.set)
	}
	return sets, nil
}

// loadTexts rebuilds the texts of r.set through Reserve and SetText so the
// loaded set validates like a freshly imported one.
func (s *SlideSetService) loadTexts(ctx context.Context, r row) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT position, text, style FROM slide_texts WHERE set_id = ? ORDER BY position
	`, r.set.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	var texts []wordslide.TextBlock
	for rows.Next() {
		var pos int
		var t wordslide.TextBlock
		if err := rows.Scan(&pos, &t.Text, &t.Style); err != nil {
			return err
		}
		if pos != len(texts) {
			return fmt.Errorf("slide set %s: text position %d out of sequence", r.set.ID, pos)
		}
		texts = append(texts, t)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	styles := max(r.set.Styles, 1)
	if err := r.set.Reserve(len(texts), styles-1); err != nil {
		return err
	}
	for i, t := range texts {
		if err := r.set.SetText(i, t.Text, t.Style); err != nil {
			return err
		}
	}
	if r.chorus.Valid {
		if err := r.set.SetChorus(int(r.chorus.Int64)); err != nil {
			return err
		}
	}
	return nil
}

// DeleteSlideSet permanently removes a slide set and its texts.
func (s *SlideSetService) DeleteSlideSet(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM slide_sets WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return wordslide.Errorf(wordslide.ENOTFOUND, "slide set not found")
	}

	return nil
}
