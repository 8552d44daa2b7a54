package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVItem is the row a collection is persisted in.
type KVItem struct {
	Key       string         `gorm:"primaryKey;size:191" json:"key"`
	Value     datatypes.JSON `json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (KVItem) TableName() string { return "kv_items" }

type GormBackend struct {
	DB *gorm.DB
}

func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{DB: db}
}

func (g *GormBackend) GetItem(ctx context.Context, key string) ([]byte, bool, error) {
	var item KVItem
	err := g.DB.WithContext(ctx).Where("`key` = ?", key).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(item.Value), true, nil
}

func (g *GormBackend) SetItem(ctx context.Context, key string, value []byte) error {
	item := KVItem{Key: key, Value: datatypes.JSON(value), UpdatedAt: time.Now()}
	return g.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&item).Error
}

func (g *GormBackend) RemoveItem(ctx context.Context, key string) error {
	return g.DB.WithContext(ctx).Where("`key` = ?", key).Delete(&KVItem{}).Error
}
