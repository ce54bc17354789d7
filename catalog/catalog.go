/*
Package catalog uses SQLite to keep a record of decoded Nintendo DS headers
so a collection of images can be searched by game code without rereading
every image.
*/
package catalog

import (
	"database/sql"
	"fmt"

	"github.com/bodgit/nds/nds"
	"github.com/pkg/errors"

	// Database driver
	_ "github.com/mattn/go-sqlite3"
)

// Catalog holds the SQLite database handle
type Catalog struct {
	db *sql.DB
}

// Entry is a single catalogued header
type Entry struct {
	ID        int64
	Code      string
	Version   uint8
	Title     string
	Maker     string
	Unit      uint8
	Region    uint8
	Capacity  uint8
	TotalSize uint32
	HeaderCRC uint16
}

// NewCatalog opens an existing catalog or returns a new empty one
func NewCatalog(file string) (*Catalog, error) {
	if file == "" {
		return nil, errors.New("catalog: no file")
	}

	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS game (id INTEGER PRIMARY KEY NOT NULL, code TEXT NOT NULL, version INTEGER NOT NULL, title TEXT NOT NULL, maker TEXT NOT NULL, unit INTEGER NOT NULL, region INTEGER NOT NULL, capacity INTEGER NOT NULL, total_size INTEGER NOT NULL, header_crc INTEGER NOT NULL, UNIQUE(code, version))"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "catalog: creating schema")
	}

	return &Catalog{
		db: db,
	}, nil
}

// Close closes the catalog rendering it unusable
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Add records the header, replacing any existing entry with the same game
// code and version, and returns the entry ID
func (c *Catalog) Add(h *nds.Header) (int64, error) {
	var id int64
	switch err := c.db.QueryRow("SELECT id FROM game WHERE code = ? AND version = ?", h.Code(), h.Version).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := c.db.Exec("INSERT INTO game (code, version, title, maker, unit, region, capacity, total_size, header_crc) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)", h.Code(), h.Version, h.Title(), h.Maker(), h.UnitCode, h.RegionCode, h.DeviceCapacity, h.TotalSize, h.HeaderCRC)
		if err != nil {
			return 0, errors.Wrapf(err, "catalog: adding %s", h.Code())
		}
		return result.LastInsertId()
	case nil:
		if _, err := c.db.Exec("UPDATE game SET title = ?, maker = ?, unit = ?, region = ?, capacity = ?, total_size = ?, header_crc = ? WHERE id = ?", h.Title(), h.Maker(), h.UnitCode, h.RegionCode, h.DeviceCapacity, h.TotalSize, h.HeaderCRC, id); err != nil {
			return 0, errors.Wrapf(err, "catalog: updating %s", h.Code())
		}
		return id, nil
	default:
		return 0, err
	}
}

const selectEntry = "SELECT id, code, version, title, maker, unit, region, capacity, total_size, header_crc FROM game"

func (c *Catalog) query(where string, args ...interface{}) ([]Entry, error) {
	rows, err := c.db.Query(fmt.Sprintf("%s %s ORDER BY code, version", selectEntry, where), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Code, &e.Version, &e.Title, &e.Maker, &e.Unit, &e.Region, &e.Capacity, &e.TotalSize, &e.HeaderCRC); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// FindByCode returns every version of the game with the given code
func (c *Catalog) FindByCode(code string) ([]Entry, error) {
	return c.query("WHERE code = ?", code)
}

// List returns every entry in the catalog
func (c *Catalog) List() ([]Entry, error) {
	return c.query("")
}
