package wishlist

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Item struct {
	ID            string    `gorm:"type:char(36);primaryKey"`
	UserID        string    `gorm:"type:char(36);not null;uniqueIndex:ux_wishlists_user_product,priority:1"`
	ProductID     string    `gorm:"type:varchar(128);not null;uniqueIndex:ux_wishlists_user_product,priority:2"`
	ProductHandle string    `gorm:"type:varchar(255);not null"`
	CreatedAt     time.Time `gorm:"type:datetime(3);not null"`
}

func (Item) TableName() string { return "wishlists" }

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) List(ctx context.Context, userID string) ([]Item, error) {
	var out []Item
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// Toggle adds the product when absent and removes it when present, matching
// the storefront's heart-button semantics. Returns true when the product is
// on the list afterwards.
func (r *Repo) Toggle(ctx context.Context, userID, productID, productHandle string) (bool, error) {
	item := Item{
		ID:            uuid.NewString(),
		UserID:        userID,
		ProductID:     productID,
		ProductHandle: productHandle,
		CreatedAt:     time.Now(),
	}
	err := r.db.WithContext(ctx).Create(&item).Error
	if err == nil {
		return true, nil
	}
	if !isDup(err) {
		return false, err
	}
	// Already present: the toggle removes it.
	if err := r.Remove(ctx, userID, productID); err != nil {
		return true, err
	}
	return false, nil
}

func (r *Repo) Remove(ctx context.Context, userID, productID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&Item{}).Error
}

func (r *Repo) Contains(ctx context.Context, userID, productID string) (bool, error) {
	var item Item
	err := r.db.WithContext(ctx).
		Select("id").
		First(&item, "user_id = ? AND product_id = ?", userID, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func isDup(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
