package addresses

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Address struct {
	ID        string    `gorm:"type:char(36);primaryKey"`
	UserID    string    `gorm:"type:char(36);not null;index"`
	Label     *string   `gorm:"type:varchar(64)"`
	FullName  string    `gorm:"type:varchar(255);not null"`
	Address1  string    `gorm:"type:varchar(255);not null"`
	Address2  *string   `gorm:"type:varchar(255)"`
	City      string    `gorm:"type:varchar(128);not null"`
	Province  string    `gorm:"type:varchar(128)"`
	Zip       string    `gorm:"type:varchar(32)"`
	Country   string    `gorm:"type:varchar(128);not null"`
	Phone     *string   `gorm:"type:varchar(32)"`
	IsDefault bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Address) TableName() string { return "addresses" }

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) List(ctx context.Context, userID string) ([]Address, error) {
	var out []Address
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *Repo) Create(ctx context.Context, a Address) (Address, error) {
	a.ID = uuid.NewString()
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if a.IsDefault {
			if err := clearDefault(tx, a.UserID); err != nil {
				return err
			}
		}
		return tx.Create(&a).Error
	})
	if err != nil {
		return Address{}, err
	}
	return a, nil
}

func (r *Repo) Update(ctx context.Context, a Address) (Address, error) {
	a.UpdatedAt = time.Now()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if a.IsDefault {
			if err := clearDefault(tx, a.UserID); err != nil {
				return err
			}
		}
		return tx.Model(&Address{}).
			Where("id = ? AND user_id = ?", a.ID, a.UserID).
			Updates(map[string]any{
				"label":      a.Label,
				"full_name":  a.FullName,
				"address1":   a.Address1,
				"address2":   a.Address2,
				"city":       a.City,
				"province":   a.Province,
				"zip":        a.Zip,
				"country":    a.Country,
				"phone":      a.Phone,
				"is_default": a.IsDefault,
				"updated_at": a.UpdatedAt,
			}).Error
	})
	if err != nil {
		return Address{}, err
	}

	var out Address
	if err := r.db.WithContext(ctx).First(&out, "id = ?", a.ID).Error; err != nil {
		return Address{}, err
	}
	return out, nil
}

func (r *Repo) Delete(ctx context.Context, id, userID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&Address{}).Error
}

// Only one default address per user.
func clearDefault(tx *gorm.DB, userID string) error {
	return tx.Model(&Address{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
}
