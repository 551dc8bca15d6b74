package reviews

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID            string    `gorm:"type:char(36);primaryKey"`
	UserID        string    `gorm:"type:char(36);not null;index"`
	ProductID     string    `gorm:"type:varchar(128);not null;index"`
	ProductHandle string    `gorm:"type:varchar(255);not null;index"`
	Rating        int       `gorm:"not null"`
	Title         *string   `gorm:"type:varchar(255)"`
	Content       *string   `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt     time.Time `gorm:"type:datetime(3);not null"`
}

func (Review) TableName() string { return "reviews" }

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) ListByProductHandle(ctx context.Context, handle string) ([]Review, error) {
	var out []Review
	err := r.db.WithContext(ctx).
		Where("product_handle = ?", handle).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

type CreateParams struct {
	UserID        string
	ProductID     string
	ProductHandle string
	Rating        int
	Title         *string
	Content       *string
}

func (r *Repo) Create(ctx context.Context, in CreateParams) (Review, error) {
	now := time.Now()
	rev := Review{
		ID:            uuid.NewString(),
		UserID:        in.UserID,
		ProductID:     in.ProductID,
		ProductHandle: in.ProductHandle,
		Rating:        in.Rating,
		Title:         in.Title,
		Content:       in.Content,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := r.db.WithContext(ctx).Create(&rev).Error; err != nil {
		return Review{}, err
	}
	return rev, nil
}

// Delete removes the user's own review; other users' rows are untouched.
func (r *Repo) Delete(ctx context.Context, id, userID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&Review{}).Error
}
