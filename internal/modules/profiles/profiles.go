package profiles

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Profile mirrors the managed-backend user profile the storefront binds to.
// Authentication itself lives outside this codebase.
type Profile struct {
	ID        string    `gorm:"type:char(36);primaryKey"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:ux_profiles_email"`
	FullName  *string   `gorm:"type:varchar(255)"`
	Phone     *string   `gorm:"type:varchar(32)"`
	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Profile) TableName() string { return "profiles" }

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Get(ctx context.Context, id string) (Profile, error) {
	var p Profile
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return p, err
}

// FindIDByEmail returns ("", nil) when no profile matches; guest orders are
// stored without a user association.
func (r *Repo) FindIDByEmail(ctx context.Context, email string) (string, error) {
	var p Profile
	err := r.db.WithContext(ctx).Select("id").First(&p, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

type UpdateParams struct {
	FullName *string
	Phone    *string
}

func (r *Repo) Update(ctx context.Context, id string, in UpdateParams) (Profile, error) {
	updates := map[string]any{"updated_at": time.Now()}
	if in.FullName != nil {
		updates["full_name"] = *in.FullName
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if err := r.db.WithContext(ctx).Model(&Profile{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return Profile{}, err
	}
	return r.Get(ctx, id)
}
