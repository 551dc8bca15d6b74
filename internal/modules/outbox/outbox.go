package outbox

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EmailTask is one pending notification. Rows are written in the same
// transaction as the order they announce, so "order recorded" never depends
// on the dispatcher being reachable.
type EmailTask struct {
	ID          string         `gorm:"type:char(36);primaryKey"`
	Payload     datatypes.JSON `gorm:"type:json;not null"`
	Attempts    int            `gorm:"not null;default:0"`
	LastError   *string        `gorm:"type:varchar(255)"`
	ProcessedAt *time.Time     `gorm:"type:datetime(3)"`
	CreatedAt   time.Time      `gorm:"type:datetime(3);not null"`
	UpdatedAt   time.Time      `gorm:"type:datetime(3);not null"`
}

func (EmailTask) TableName() string { return "email_outbox" }

// Enqueue inserts a task using the caller's transaction handle.
func Enqueue(tx *gorm.DB, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	now := time.Now()
	task := EmailTask{
		ID:        uuid.NewString(),
		Payload:   datatypes.JSON(raw),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return tx.Create(&task).Error
}
