package state

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sciframe-io/sciframe/internal/frame"
)

// ErrFrameNotFound is returned when a frame reference matches nothing.
var ErrFrameNotFound = errors.New("frame not found")

// FrameInfo summarizes a stored frame.
type FrameInfo struct {
	ID        string
	Name      string
	NumCols   int
	NumRows   int
	CreatedAt time.Time
}

// SaveFrame stores a frame, replacing any previous version with the same id.
// Cell values survive as JSON, so numeric cells load back as float64.
func (s *Store) SaveFrame(ctx context.Context, f *frame.Frame) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	meta, err := json.Marshal(f.Meta())
	if err != nil {
		return fmt.Errorf("failed to encode frame metadata: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	id := f.UID().String()
	if _, err := tx.ExecContext(ctx, `DELETE FROM frames WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to replace frame: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO frames (id, name, meta, rows, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, f.Name(), string(meta), f.NumRows(), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert frame: %w", err)
	}

	dims := f.Dimensions()
	isDim := make(map[string]bool, len(dims))
	for _, d := range dims {
		isDim[d] = true
	}

	for pos, name := range f.Columns() {
		values, err := f.Column(name)
		if err != nil {
			return err
		}
		encoded, err := json.Marshal(values)
		if err != nil {
			return fmt.Errorf("failed to encode column %q: %w", name, err)
		}
		unit, _ := f.Unit(name)
		_, err = tx.ExecContext(ctx,
			`INSERT INTO frame_columns (frame_id, position, name, unit, is_dimension, values_json)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			id, pos, name, unit, isDim[name], string(encoded))
		if err != nil {
			return fmt.Errorf("failed to insert column %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit frame: %w", err)
	}
	s.logger.Debug("saved frame", "id", id, "name", f.Name(), "rows", f.NumRows())
	return nil
}

// LoadFrame retrieves a frame by id or, failing that, by name. When several
// frames share a name the most recently created one wins.
func (s *Store) LoadFrame(ctx context.Context, ref string) (*frame.Frame, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, meta FROM frames WHERE id = ? OR name = ?
		 ORDER BY created_at DESC LIMIT 1`, ref, ref)

	var id, name, metaJSON string
	if err := row.Scan(&id, &name, &metaJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrFrameNotFound, ref)
		}
		return nil, fmt.Errorf("failed to load frame: %w", err)
	}

	var meta map[string]any
	if err := json.Unmarshal([]byte(metaJSON), &meta); err != nil {
		return nil, fmt.Errorf("failed to decode frame metadata: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT name, unit, is_dimension, values_json FROM frame_columns
		 WHERE frame_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load frame columns: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var cols []frame.Column
	var dims []string
	units := map[string]string{}
	for rows.Next() {
		var colName, unit, valuesJSON string
		var dim bool
		if err := rows.Scan(&colName, &unit, &dim, &valuesJSON); err != nil {
			return nil, fmt.Errorf("failed to scan frame column: %w", err)
		}
		var values []any
		if err := json.Unmarshal([]byte(valuesJSON), &values); err != nil {
			return nil, fmt.Errorf("failed to decode column %q: %w", colName, err)
		}
		cols = append(cols, frame.Column{Name: colName, Values: values})
		if dim {
			dims = append(dims, colName)
		}
		if unit != "" {
			units[colName] = unit
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read frame columns: %w", err)
	}

	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("stored frame has invalid id %q: %w", id, err)
	}

	opts := []frame.Option{
		frame.WithName(name),
		frame.WithUID(uid),
		frame.WithMeta(meta),
		frame.WithDimensions(dims...),
	}
	if len(units) > 0 {
		opts = append(opts, frame.WithUnits(units))
	}
	return frame.New(cols, opts...)
}

// ListFrames returns summaries of all stored frames, most recent first.
func (s *Store) ListFrames(ctx context.Context) ([]FrameInfo, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT f.id, f.name, f.rows, f.created_at,
		        (SELECT COUNT(*) FROM frame_columns c WHERE c.frame_id = f.id)
		 FROM frames f ORDER BY f.created_at DESC, f.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list frames: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var infos []FrameInfo
	for rows.Next() {
		var info FrameInfo
		var created string
		if err := rows.Scan(&info.ID, &info.Name, &info.NumRows, &created, &info.NumCols); err != nil {
			return nil, fmt.Errorf("failed to scan frame summary: %w", err)
		}
		info.CreatedAt, _ = time.Parse(time.RFC3339, created)
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read frame summaries: %w", err)
	}
	return infos, nil
}

// DeleteFrame removes a frame by id or name.
func (s *Store) DeleteFrame(ctx context.Context, ref string) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM frames WHERE id = ? OR name = ?`, ref, ref)
	if err != nil {
		return fmt.Errorf("failed to delete frame: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete frame: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrFrameNotFound, ref)
	}
	s.logger.Debug("deleted frame", "ref", ref)
	return nil
}
