package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"visitas-api/internal/domain/visits"
)

type VisitsRepo struct {
	db *sql.DB
}

func NewVisitsRepo(db *sql.DB) *VisitsRepo {
	return &VisitsRepo{db: db}
}

func (r *VisitsRepo) Create(ctx context.Context, v visits.Visit) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO visits (
			id, title, description, date,
			cep, address, city, uf, lat, lon,
			responsible, status, checklist,
			distance_km, distance_checked_at,
			created_at, updated_at
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
	`,
		v.ID,
		v.Title,
		v.Description,
		toNullTime(v.Date),
		v.CEP,
		v.Address,
		v.City,
		v.UF,
		toNullFloat(v.Lat),
		toNullFloat(v.Lon),
		v.Responsible,
		string(v.Status),
		marshalChecklist(v.Checklist),
		toNullFloat(v.DistanceKM),
		toNullTime(v.DistanceCheckedAt),
		v.CreatedAt,
		v.UpdatedAt,
	)
	return err
}

func (r *VisitsRepo) GetByID(ctx context.Context, id string) (visits.Visit, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return visits.Visit{}, visits.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, selectColumns+` FROM visits WHERE id = ?`, id)

	v, err := scanVisit(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return visits.Visit{}, visits.ErrNotFound
		}
		return visits.Visit{}, err
	}
	return v, nil
}

func (r *VisitsRepo) Update(ctx context.Context, v visits.Visit) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE visits
		SET
			title = ?,
			description = ?,
			date = ?,
			cep = ?,
			address = ?,
			city = ?,
			uf = ?,
			lat = ?,
			lon = ?,
			responsible = ?,
			status = ?,
			checklist = ?,
			distance_km = ?,
			distance_checked_at = ?,
			updated_at = ?
		WHERE id = ?
	`,
		v.Title,
		v.Description,
		toNullTime(v.Date),
		v.CEP,
		v.Address,
		v.City,
		v.UF,
		toNullFloat(v.Lat),
		toNullFloat(v.Lon),
		v.Responsible,
		string(v.Status),
		marshalChecklist(v.Checklist),
		toNullFloat(v.DistanceKM),
		toNullTime(v.DistanceCheckedAt),
		v.UpdatedAt,
		v.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return visits.ErrNotFound
	}
	return nil
}

func (r *VisitsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM visits WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return visits.ErrNotFound
	}
	return nil
}

func (r *VisitsRepo) List(ctx context.Context, f visits.ListFilter) ([]visits.Visit, error) {
	offset := (f.Page - 1) * f.Size

	var (
		rows *sql.Rows
		err  error
	)
	if f.Status != "" {
		rows, err = r.db.QueryContext(ctx, selectColumns+`
			FROM visits
			WHERE status = ?
			ORDER BY COALESCE(date, created_at) DESC
			LIMIT ? OFFSET ?
		`, string(f.Status), f.Size, offset)
	} else {
		rows, err = r.db.QueryContext(ctx, selectColumns+`
			FROM visits
			ORDER BY COALESCE(date, created_at) DESC
			LIMIT ? OFFSET ?
		`, f.Size, offset)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]visits.Visit, 0)
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

const selectColumns = `
	SELECT
		id, title, description, date,
		cep, address, city, uf, lat, lon,
		responsible, status, checklist,
		distance_km, distance_checked_at,
		created_at, updated_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVisit(row rowScanner) (visits.Visit, error) {
	var (
		v         visits.Visit
		status    string
		checklist string
		date      sql.NullTime
		lat       sql.NullFloat64
		lon       sql.NullFloat64
		distKM    sql.NullFloat64
		distAt    sql.NullTime
	)

	if err := row.Scan(
		&v.ID,
		&v.Title,
		&v.Description,
		&date,
		&v.CEP,
		&v.Address,
		&v.City,
		&v.UF,
		&lat,
		&lon,
		&v.Responsible,
		&status,
		&checklist,
		&distKM,
		&distAt,
		&v.CreatedAt,
		&v.UpdatedAt,
	); err != nil {
		return visits.Visit{}, err
	}

	v.Status = visits.Status(status)
	v.Checklist = unmarshalChecklist(checklist)
	if date.Valid {
		t := date.Time
		v.Date = &t
	}
	if lat.Valid {
		f := lat.Float64
		v.Lat = &f
	}
	if lon.Valid {
		f := lon.Float64
		v.Lon = &f
	}
	if distKM.Valid {
		f := distKM.Float64
		v.DistanceKM = &f
	}
	if distAt.Valid {
		t := distAt.Time
		v.DistanceCheckedAt = &t
	}

	return v, nil
}

// checklist se guarda como JSON en una columna TEXT; la visita no tiene
// entidades en cascada y no hace falta consultar por ítem.
func marshalChecklist(items []visits.ChecklistItem) string {
	if len(items) == 0 {
		return "[]"
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func unmarshalChecklist(raw string) []visits.ChecklistItem {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "[]" {
		return nil
	}
	var items []visits.ChecklistItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	return items
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func toNullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
