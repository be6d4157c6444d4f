package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Open abre (o crea) la base sqlite en path y deja el esquema listo.
// El esquema se auto-inicializa en el arranque, igual que hacía la
// versión original del servicio.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// sqlite admite un solo escritor; con una conexión evitamos SQLITE_BUSY
	// y hace que ":memory:" comparta la misma base en todo el pool.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping %q: %w", path, err)
	}

	if err := InitSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS visits (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			date TIMESTAMP,
			cep TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			uf TEXT NOT NULL DEFAULT '',
			lat REAL,
			lon REAL,
			responsible TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			checklist TEXT NOT NULL DEFAULT '[]',
			distance_km REAL,
			distance_checked_at TIMESTAMP,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("sqlite: init schema: %w", err)
	}
	return nil
}
