package ingest

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// ErrCacheMiss means no catalog is cached for the requested product and
// version.
var ErrCacheMiss = errors.New("catalog not in cache")

// Cache stores fetched catalogs in a local SQLite file so repeat sessions
// against the same product and version skip the capabilities fetch.
type Cache struct {
	db *sql.DB
}

// OpenCache opens (creating if needed) a catalog cache database.
func OpenCache(dbPath string) (*Cache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open catalog cache %s: %w", dbPath, err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS catalogs (
		product TEXT NOT NULL,
		version TEXT NOT NULL,
		ord INTEGER NOT NULL,
		path TEXT NOT NULL,
		PRIMARY KEY (product, version, ord)
	) WITHOUT ROWID;
	`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Save replaces the cached catalog for (product, version) with paths,
// preserving order via the ord column. Runs in a single transaction.
func (c *Cache) Save(product, version string, paths []string) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("begin cache save: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // no-op once committed

	if _, err := tx.Exec(
		"DELETE FROM catalogs WHERE product = ? AND version = ?",
		product, version,
	); err != nil {
		return fmt.Errorf("clear cached catalog: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO catalogs (product, version, ord, path) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("prepare cache insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, p := range paths {
		if _, err := stmt.Exec(product, version, i, p); err != nil {
			return fmt.Errorf("insert cached path %s: %w", p, err)
		}
	}
	return tx.Commit()
}

// Load returns the cached catalog for (product, version) in original order,
// or ErrCacheMiss when none is stored.
func (c *Cache) Load(product, version string) ([]string, error) {
	rows, err := c.db.Query(
		"SELECT path FROM catalogs WHERE product = ? AND version = ? ORDER BY ord",
		product, version,
	)
	if err != nil {
		return nil, fmt.Errorf("query cached catalog: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan cached path: %w", err)
		}
		paths = append(paths, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s v%s", ErrCacheMiss, product, version)
	}
	return paths, nil
}

// Products lists the (product, version) pairs currently cached.
func (c *Cache) Products() ([][2]string, error) {
	rows, err := c.db.Query(
		"SELECT DISTINCT product, version FROM catalogs ORDER BY product, version",
	)
	if err != nil {
		return nil, fmt.Errorf("query cached products: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out [][2]string
	for rows.Next() {
		var p, v string
		if err := rows.Scan(&p, &v); err != nil {
			return nil, err
		}
		out = append(out, [2]string{p, v})
	}
	return out, rows.Err()
}

// Close closes the underlying database.
func (c *Cache) Close() error { return c.db.Close() }
