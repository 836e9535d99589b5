package store

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// Config selects the relational store. File opens an embedded sqlite
// database, URL (libsql://, http:// or https://) a remote libsql one.
type Config struct {
	File      string `json:"file"`
	URL       string `json:"url"`
	AuthToken string `json:"auth_token"`
}

func (config Config) String() string {
	if config.URL != "" {
		return config.URL
	}
	return config.File
}

func (config Config) Open() (*sql.DB, error) {
	if config.URL != "" {
		return config.openRemote()
	}
	if config.File == "" {
		return nil, fmt.Errorf("a path was not specified")
	}

	if config.File != ":memory:" {
		_, statErr := os.Stat(config.File)
		if os.IsNotExist(statErr) {
			f, err := os.Create(config.File)
			if err != nil {
				return nil, err
			}
			f.Close()
		}
	}

	db, err := sql.Open("sqlite", config.File)
	if err != nil {
		return nil, err
	}
	// see https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance,
	// ":memory:" databases also only live as long as their one connection.
	db.SetMaxOpenConns(1)
	if config.File != ":memory:" {
		_, err = db.Exec("PRAGMA journal_mode=WAL")
		if err != nil {
			db.Close()
			return nil, err
		}
	}

	return db, nil
}

func (config Config) openRemote() (*sql.DB, error) {
	link, err := url.Parse(config.URL)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(link.Scheme) {
	case "libsql", "http", "https", "ws", "wss":
	default:
		return nil, fmt.Errorf("unsupported store url scheme %q", link.Scheme)
	}
	if config.AuthToken != "" {
		query := link.Query()
		query.Set("authToken", config.AuthToken)
		link.RawQuery = query.Encode()
	}

	db, err := sql.Open("libsql", link.String())
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
