package tim2

import (
	"database/sql"
	"fmt"

	"github.com/icey9527/tim2/texture"
	_ "github.com/mattn/go-sqlite3"
)

// TextureDB is a catalog of converted containers keyed by content CRC, so
// repeat batch runs can skip work already done and the decoded inventory
// stays queryable afterwards.
type TextureDB struct {
	db *sql.DB
}

func NewTextureDB(file string) (*TextureDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS file (id INTEGER PRIMARY KEY NOT NULL, crc TEXT NOT NULL UNIQUE, path TEXT NOT NULL, pictures INTEGER NOT NULL, decoded INTEGER NOT NULL)"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS picture (file_id INTEGER NOT NULL, idx INTEGER NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL, format INTEGER NOT NULL, colors INTEGER NOT NULL, FOREIGN KEY(file_id) REFERENCES file(id))"); err != nil {
		return nil, err
	}

	return &TextureDB{
		db: db,
	}, nil
}

func (db *TextureDB) Close() error {
	return db.db.Close()
}

// FindFileByCRC returns the recorded source path for a container CRC, or
// the empty string when the container has not been seen before.
func (db *TextureDB) FindFileByCRC(crc string) (string, error) {
	var path string
	switch err := db.db.QueryRow("SELECT path FROM file WHERE crc = ?", crc).Scan(&path); err {
	case sql.ErrNoRows:
		return "", nil
	case nil:
		return path, nil
	default:
		return "", err
	}
}

// AddFile records a converted container and returns its row id for
// AddPicture. Adding a CRC that is already cataloged returns the existing
// row.
func (db *TextureDB) AddFile(crc, path string, pictures, decoded int) (int64, error) {
	var id int64
	switch err := db.db.QueryRow("SELECT id FROM file WHERE crc = ?", crc).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := db.db.Exec("INSERT INTO file (crc, path, pictures, decoded) VALUES (?, ?, ?, ?)", crc, path, pictures, decoded)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		return id, nil
	default:
		return 0, err
	}
}

// AddPicture records one decoded picture of a cataloged container.
func (db *TextureDB) AddPicture(file int64, idx int, p texture.Picture) error {
	if _, err := db.db.Exec("INSERT INTO picture (file_id, idx, width, height, format, colors) VALUES (?, ?, ?, ?, ?, ?)", file, idx, p.Width, p.Height, p.Format, p.ColorCount); err != nil {
		return err
	}
	return nil
}
