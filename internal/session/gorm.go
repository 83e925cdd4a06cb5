package session

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"commuta_admin/internal/models"
)

// GormStore keeps tokens in the admin_sessions table. Rows not written for
// ttl count as missing and are deleted on the next Put.
type GormStore struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

func NewGormStore(db *gorm.DB, ttl time.Duration) *GormStore {
	return &GormStore{db: db, ttl: ttl, now: time.Now}
}

func (g *GormStore) live(db *gorm.DB) *gorm.DB {
	if g.ttl <= 0 {
		return db
	}
	return db.Where("updated_at > ?", g.now().Add(-g.ttl))
}

func (g *GormStore) Get(ctx context.Context, id string) (string, error) {
	var row models.AdminSession
	if err := g.live(g.db.WithContext(ctx)).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return row.Token, nil
}

// Put inserts the token, replacing it when the session already has one.
func (g *GormStore) Put(ctx context.Context, id, token string) error {
	db := g.db.WithContext(ctx)
	err := db.Create(&models.AdminSession{ID: id, Token: token}).Error
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		err = db.Model(&models.AdminSession{}).Where("id = ?", id).Update("token", token).Error
	}
	if err != nil {
		return err
	}
	return g.purge(db)
}

// purge deletes expired rows.
func (g *GormStore) purge(db *gorm.DB) error {
	if g.ttl <= 0 {
		return nil
	}
	return db.Where("updated_at <= ?", g.now().Add(-g.ttl)).Delete(&models.AdminSession{}).Error
}

func (g *GormStore) Delete(ctx context.Context, id string) error {
	res := g.db.WithContext(ctx).Where("id = ?", id).Delete(&models.AdminSession{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
