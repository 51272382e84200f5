package materials

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore is a material store backed by a SQLite database. It holds
// the same record shape as the in-memory registry and satisfies the same
// Store interface, so callers can swap one for the other.
type SQLiteStore struct {
	db  *sql.DB
	log zerolog.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS materials (
	name          TEXT PRIMARY KEY,
	description   TEXT NOT NULL DEFAULT '',
	kappa_bulk    REAL NOT NULL DEFAULT 0,
	phonon_mfp    REAL NOT NULL DEFAULT 0,
	bandgap_ev    REAL NOT NULL DEFAULT 0,
	electron_mass REAL NOT NULL DEFAULT 0,
	hole_mass     REAL NOT NULL DEFAULT 0,
	dielectric    REAL NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS optical_points (
	material   TEXT NOT NULL REFERENCES materials(name) ON DELETE CASCADE,
	wavelength REAL NOT NULL,
	n          REAL NOT NULL,
	k          REAL NOT NULL,
	PRIMARY KEY (material, wavelength)
);
`

// OpenSQLite opens (and if needed initializes) a SQLite material store at
// the given path. Use ":memory:" for an ephemeral store.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening material store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing material store schema: %w", err)
	}
	return &SQLiteStore{db: db, log: zerolog.Nop()}, nil
}

// WithLogger sets the store's logger.
func (s *SQLiteStore) WithLogger(log zerolog.Logger) *SQLiteStore {
	s.log = log
	return s
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save inserts or replaces a record and its optical table.
func (s *SQLiteStore) Save(rec *Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("saving material %q: %w", rec.Name, err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT OR REPLACE INTO materials
		(name, description, kappa_bulk, phonon_mfp, bandgap_ev, electron_mass, hole_mass, dielectric)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Name, rec.Description, rec.KappaBulk, rec.PhononMFP,
		rec.BandgapEV, rec.ElectronMass, rec.HoleMass, rec.Dielectric)
	if err != nil {
		return fmt.Errorf("saving material %q: %w", rec.Name, err)
	}
	if _, err := tx.Exec(`DELETE FROM optical_points WHERE material = ?`, rec.Name); err != nil {
		return fmt.Errorf("saving material %q: %w", rec.Name, err)
	}
	for _, p := range rec.Optical {
		_, err := tx.Exec(`INSERT INTO optical_points (material, wavelength, n, k) VALUES (?, ?, ?, ?)`,
			rec.Name, p.Wavelength, p.N, p.K)
		if err != nil {
			return fmt.Errorf("saving material %q optical point %g: %w", rec.Name, p.Wavelength, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("saving material %q: %w", rec.Name, err)
	}
	s.log.Debug().Str("material", rec.Name).Int("opticalPoints", len(rec.Optical)).Msg("material saved")
	return nil
}

// SaveAll saves every record from a registry.
func (s *SQLiteStore) SaveAll(reg *Registry) error {
	for _, name := range reg.Names() {
		rec, _ := reg.Lookup(name)
		if err := s.Save(rec); err != nil {
			return err
		}
	}
	return nil
}

// Lookup implements Store. Database errors are logged and reported as a
// missing material.
func (s *SQLiteStore) Lookup(name string) (*Record, bool) {
	rec := &Record{}
	err := s.db.QueryRow(`SELECT name, description, kappa_bulk, phonon_mfp,
		bandgap_ev, electron_mass, hole_mass, dielectric
		FROM materials WHERE name = ?`, name).
		Scan(&rec.Name, &rec.Description, &rec.KappaBulk, &rec.PhononMFP,
			&rec.BandgapEV, &rec.ElectronMass, &rec.HoleMass, &rec.Dielectric)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if err != nil {
		s.log.Error().Err(err).Str("material", name).Msg("material lookup failed")
		return nil, false
	}

	rows, err := s.db.Query(`SELECT wavelength, n, k FROM optical_points
		WHERE material = ? ORDER BY wavelength`, name)
	if err != nil {
		s.log.Error().Err(err).Str("material", name).Msg("optical table lookup failed")
		return nil, false
	}
	defer rows.Close()
	for rows.Next() {
		var p OpticalPoint
		if err := rows.Scan(&p.Wavelength, &p.N, &p.K); err != nil {
			s.log.Error().Err(err).Str("material", name).Msg("optical point scan failed")
			return nil, false
		}
		rec.Optical = append(rec.Optical, p)
	}
	if err := rows.Err(); err != nil {
		s.log.Error().Err(err).Str("material", name).Msg("optical table iteration failed")
		return nil, false
	}
	return rec, true
}

// Names returns the stored material names, sorted.
func (s *SQLiteStore) Names() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM materials ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing materials: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("listing materials: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
