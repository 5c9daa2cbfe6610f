package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/pharmahub/pharma-backend/pkg/db"
	"github.com/pharmahub/pharma-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Persistent is the durable Directory variant, backed by the relational store.
// Uniqueness is guaranteed by the unique index on lower(email); the in-tx
// existence check only exists to classify the common case without relying on
// constraint error text.
type Persistent struct {
	conn *gorm.DB
}

// NewPersistent binds a directory to the provided GORM connection.
func NewPersistent(conn *gorm.DB) *Persistent {
	return &Persistent{conn: conn}
}

func (p *Persistent) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := p.conn.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (p *Persistent) Insert(ctx context.Context, user *models.User) error {
	return p.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("LOWER(email) = LOWER(?)", user.Email).First(&existing).Error
		if err == nil {
			return ErrConflict
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check existing email: %w", err)
		}

		if err := tx.Create(user).Error; err != nil {
			// Concurrent insert between the check and the create lands here.
			if db.IsUniqueViolation(err) {
				return ErrConflict
			}
			return fmt.Errorf("insert user: %w", err)
		}
		return nil
	})
}
