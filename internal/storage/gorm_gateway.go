package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// collectionDoc is one persisted collection: the full JSON payload under
// its collection name. Replacing a collection is a single upsert.
type collectionDoc struct {
	Name      string `gorm:"primaryKey;size:64"`
	Payload   []byte
	UpdatedAt time.Time
}

func (collectionDoc) TableName() string { return "collections" }

// GormGateway stores each collection as a JSON document in a single
// table, over SQLite or MySQL.
type GormGateway struct {
	db *gorm.DB
}

// Open connects with a short retry loop so the server survives a slow
// database start, then migrates the collections table.
func Open(driver, dsn string) (*GormGateway, error) {
	var (
		db  *gorm.DB
		err error
	)
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	for attempt := 0; attempt < 5; attempt++ {
		switch driver {
		case "mysql":
			db, err = gorm.Open(mysql.Open(dsn), cfg)
		case "sqlite", "":
			db, err = gorm.Open(sqlite.Open(dsn), cfg)
		default:
			return nil, fmt.Errorf("unsupported database driver %q", driver)
		}
		if err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	if err := db.AutoMigrate(&collectionDoc{}); err != nil {
		return nil, fmt.Errorf("migrate collections table: %w", err)
	}
	return &GormGateway{db: db}, nil
}

func (g *GormGateway) SaveCollection(name string, items any) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", name, err)
	}
	doc := collectionDoc{Name: name, Payload: payload, UpdatedAt: time.Now()}
	err = g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("save collection %q: %w", name, err)
	}
	return nil
}

func (g *GormGateway) LoadCollection(name string, out any) error {
	var doc collectionDoc
	err := g.db.First(&doc, "name = ?", name).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load collection %q: %w", name, err)
	}
	if err := json.Unmarshal(doc.Payload, out); err != nil {
		return fmt.Errorf("decode collection %q: %w", name, err)
	}
	return nil
}
