package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"waste_tracker/internal/common"
	"waste_tracker/internal/domain/model"
)

type WasteRepository interface {
	ResolveCategory(ctx context.Context, tx *sql.Tx, name string) (int64, error)
	ResolveLocation(ctx context.Context, tx *sql.Tx, name string) (int64, error)
	InsertRecord(ctx context.Context, tx *sql.Tx, record *model.WasteRecord) (int64, error)
	DeleteRecord(ctx context.Context, id int64) error

	ListRecords(ctx context.Context) ([]model.WasteRecordView, error)
	ListCategories(ctx context.Context) ([]model.WasteCategory, error)
	ListLocations(ctx context.Context) ([]model.Location, error)
}

type pgWasteRepository struct {
	db *sql.DB
}

func NewPgWasteRepository(db *sql.DB) WasteRepository {
	return &pgWasteRepository{db: db}
}

func (r *pgWasteRepository) ResolveCategory(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	query := `SELECT id_tipo_residuo FROM cat_tipo_residuo WHERE nombre = $1`
	return r.resolveID(ctx, tx, query, name, "ResolveCategory")
}

func (r *pgWasteRepository) ResolveLocation(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	query := `SELECT id_ubicacion FROM cat_ubicacion WHERE nombre = $1`
	return r.resolveID(ctx, tx, query, name, "ResolveLocation")
}

func (r *pgWasteRepository) resolveID(ctx context.Context, tx *sql.Tx, query, name, op string) (int64, error) {
	var id int64
	var err error
	if tx != nil {
		err = tx.QueryRowContext(ctx, query, name).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, name).Scan(&id)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrNotFound
		}
		return 0, fmt.Errorf("pgWasteRepository.%s: %w", op, err)
	}
	return id, nil
}

// InsertRecord persists one row. A zero RecordedAt defers the timestamp to
// the store's NOW().
func (r *pgWasteRepository) InsertRecord(ctx context.Context, tx *sql.Tx, record *model.WasteRecord) (int64, error) {
	query := `INSERT INTO registro_residuo (id_tipo_residuo_fk, id_ubicacion_fk, peso_kg, fecha_ingreso, notas)
	          VALUES ($1, $2, $3, COALESCE($4, NOW()), NULLIF($5, ''))
	          RETURNING id_registro`

	recordedAt := sql.NullTime{Time: record.RecordedAt, Valid: !record.RecordedAt.IsZero()}

	var id int64
	var err error
	if tx != nil {
		err = tx.QueryRowContext(ctx, query, record.CategoryID, record.LocationID, record.WeightKg, recordedAt, record.Notes).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, record.CategoryID, record.LocationID, record.WeightKg, recordedAt, record.Notes).Scan(&id)
	}
	if err != nil {
		return 0, fmt.Errorf("pgWasteRepository.InsertRecord: %w", err)
	}
	return id, nil
}

func (r *pgWasteRepository) DeleteRecord(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM registro_residuo WHERE id_registro = $1`, id)
	if err != nil {
		return fmt.Errorf("pgWasteRepository.DeleteRecord: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

// ListRecords returns every record joined with its category and location
// names, newest first. Weight is cast to float8 in SQL so the driver never
// hands back the numeric as a string.
func (r *pgWasteRepository) ListRecords(ctx context.Context) ([]model.WasteRecordView, error) {
	query := `
        SELECT r.id_registro,
               tr.nombre,
               u.nombre,
               r.peso_kg::float8,
               to_char(r.fecha_ingreso, 'YYYY-MM-DD'),
               to_char(r.fecha_ingreso, 'HH24:MI'),
               COALESCE(r.notas, '')
        FROM registro_residuo r
        JOIN cat_tipo_residuo tr ON r.id_tipo_residuo_fk = tr.id_tipo_residuo
        JOIN cat_ubicacion u ON r.id_ubicacion_fk = u.id_ubicacion
        ORDER BY r.fecha_ingreso DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgWasteRepository.ListRecords: %w", err)
	}
	defer rows.Close()

	records := []model.WasteRecordView{}
	for rows.Next() {
		var v model.WasteRecordView
		if err := rows.Scan(&v.ID, &v.Type, &v.Location, &v.Weight, &v.Date, &v.Time, &v.Notes); err != nil {
			return nil, fmt.Errorf("pgWasteRepository.ListRecords: scan: %w", err)
		}
		records = append(records, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgWasteRepository.ListRecords: rows: %w", err)
	}
	return records, nil
}

func (r *pgWasteRepository) ListCategories(ctx context.Context) ([]model.WasteCategory, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id_tipo_residuo, nombre FROM cat_tipo_residuo ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("pgWasteRepository.ListCategories: %w", err)
	}
	defer rows.Close()

	categories := []model.WasteCategory{}
	for rows.Next() {
		var c model.WasteCategory
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("pgWasteRepository.ListCategories: scan: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *pgWasteRepository) ListLocations(ctx context.Context) ([]model.Location, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id_ubicacion, nombre FROM cat_ubicacion ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("pgWasteRepository.ListLocations: %w", err)
	}
	defer rows.Close()

	locations := []model.Location{}
	for rows.Next() {
		var l model.Location
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, fmt.Errorf("pgWasteRepository.ListLocations: scan: %w", err)
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}
