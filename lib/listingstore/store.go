// Package listingstore archives scraped listings in a local sqlite
// database so past searches stay queryable after their CSVs are
// overwritten.
package listingstore

import (
	"context"
	"database/sql"
	"time"

	"carhunt/lib/listing"

	_ "embed"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var Schema string

func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(Schema)
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) Store {
	return Store{db: db}
}

// Search is one archived search with the number of listings it returned.
type Search struct {
	Id        int64
	Maker     string
	Model     string
	Zip       int
	Radius    int
	Condition string
	Time      time.Time
	Listings  int
}

func (s Store) Push(ctx context.Context, q listing.Query, at time.Time, listings []listing.Listing) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(
		ctx,
		`INSERT INTO search (maker, model, zip, radius, condition, time)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		q.Maker, q.Model, q.Zip, q.Radius, q.Condition, at.Unix(),
	)
	if err != nil {
		return err
	}
	searchId, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for _, l := range listings {
		_, err = tx.ExecContext(
			ctx,
			`INSERT INTO listing (search_id, title, price, mileage, dealer, url)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			searchId, l.Title, l.Price, l.Mileage, l.Dealer, l.Url,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s Store) Recent(ctx context.Context, limit int) ([]Search, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT s.id, s.maker, s.model, s.zip, s.radius, s.condition, s.time,
		        (SELECT count(*) FROM listing l WHERE l.search_id = s.id)
		 FROM search s
		 ORDER BY s.time DESC, s.id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var searches []Search
	for rows.Next() {
		var out Search
		var unix int64
		err = rows.Scan(
			&out.Id, &out.Maker, &out.Model, &out.Zip, &out.Radius,
			&out.Condition, &unix, &out.Listings,
		)
		if err != nil {
			return nil, err
		}
		out.Time = time.Unix(unix, 0)
		searches = append(searches, out)
	}
	return searches, rows.Err()
}

func (s Store) ListingsFor(ctx context.Context, searchId int64) ([]listing.Listing, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT title, price, mileage, dealer, url FROM listing
		 WHERE search_id = ? ORDER BY id`,
		searchId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []listing.Listing
	for rows.Next() {
		var out listing.Listing
		err = rows.Scan(&out.Title, &out.Price, &out.Mileage, &out.Dealer, &out.Url)
		if err != nil {
			return nil, err
		}
		listings = append(listings, out)
	}
	return listings, rows.Err()
}
