package database

import (
	"time"

	_ "github.com/expki/go-dataminer/env"
	"gorm.io/gorm"
)

// Page is a fetched catalog page, kept so reruns do not hit the site again.
type Page struct {
	ID        uint64    `gorm:"primarykey"`
	URL       string    `gorm:"uniqueIndex;not null"`
	Body      PageBody  `gorm:"not null"`
	FetchedAt time.Time `gorm:"index;not null"`
}

func (m *Page) BeforeSave(tx *gorm.DB) error {
	m.FetchedAt = time.Now().UTC()
	return nil
}

// Product is one memory module row of the catalog export.
type Product struct {
	ID        uint64    `gorm:"primarykey"`
	URL       string    `gorm:"uniqueIndex;not null"`
	Category  string    `gorm:"index;not null"`
	Type      string    `gorm:"not null"`
	Freq      int       `gorm:"not null"`
	Size      int       `gorm:"not null"`
	Price     int       `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;index;not null"`
}
