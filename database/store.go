package database

import (
	"context"
	"errors"

	"github.com/expki/go-dataminer/config"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// ErrPageNotFound is returned by GetPage when the url was never stored.
var ErrPageNotFound = errors.New("page not found")

// GetPage returns the stored body of url.
func (d *Database) GetPage(ctx context.Context, url string) (body []byte, err error) {
	var page Page
	err = d.WithContext(ctx).Clauses(dbresolver.Read).
		Where("url = ?", url).
		Take(&page).
		Error
	if err == nil {
		return []byte(page.Body), nil
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPageNotFound
	} else if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}
	return nil, errors.Join(errors.New("failed to read page"), err)
}

// PutPage stores or replaces the body of url.
func (d *Database) PutPage(ctx context.Context, url string, body []byte) error {
	page := Page{URL: url, Body: PageBody(body)}
	err := d.WithContext(ctx).Clauses(dbresolver.Write).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "url"}},
			DoUpdates: clause.AssignmentColumns([]string{"body", "fetched_at"}),
		}).
		Create(&page).
		Error
	if err != nil {
		return errors.Join(errors.New("failed to store page"), err)
	}
	return nil
}

// SaveProducts upserts products keyed by url. When a url repeats, the last entry wins.
func (d *Database) SaveProducts(ctx context.Context, products []Product) error {
	products = lastByURL(products)
	if len(products) == 0 {
		return nil
	}
	err := d.WithContext(ctx).Clauses(dbresolver.Write).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "url"}},
			DoUpdates: clause.AssignmentColumns([]string{"category", "type", "freq", "size", "price", "updated_at"}),
		}).
		CreateInBatches(&products, config.BATCH_SIZE_DATABASE).
		Error
	if err != nil {
		return errors.Join(errors.New("failed to save products"), err)
	}
	return nil
}

// Products returns the stored products of category ordered by url.
func (d *Database) Products(ctx context.Context, category string) (products []Product, err error) {
	err = d.WithContext(ctx).Clauses(dbresolver.Read).
		Where("category = ?", category).
		Order("url").
		Find(&products).
		Error
	if err != nil {
		return nil, errors.Join(errors.New("failed to read products"), err)
	}
	return products, nil
}

// lastByURL drops all but the last product of every url. Postgres rejects an upsert batch
// that touches the same row twice.
func lastByURL(products []Product) []Product {
	index := make(map[string]int, len(products))
	unique := make([]Product, 0, len(products))
	for _, product := range products {
		if i, ok := index[product.URL]; ok {
			unique[i] = product
			continue
		}
		index[product.URL] = len(unique)
		unique = append(unique, product)
	}
	return unique
}
