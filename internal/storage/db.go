package storage

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/addresses"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/orders"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/outbox"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/profiles"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/reviews"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/wishlist"
)

// Open connects to MySQL with pool settings sized for a small service
// instance.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// Migrate creates or updates every table the services write to. The catalog
// itself lives upstream and has no local tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&profiles.Profile{},
		&orders.Order{},
		&orders.OrderItem{},
		&reviews.Review{},
		&wishlist.Item{},
		&addresses.Address{},
		&outbox.EmailTask{},
	)
}
