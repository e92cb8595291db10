package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/*
 * 'SharedResult' is a generation result saved so it can be opened from a
 * share link. Teams and matches are stored as JSON documents.
 */
type SharedResult struct {
	ID        string         `gorm:"primaryKey;type:uuid"`
	Game      string         `gorm:"size:100;not null"`
	Mode      string         `gorm:"size:50"`
	Teams     datatypes.JSON `gorm:"not null"`
	Matches   datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"not null;index:idx_shared_results_expires"`
}

// Assign a random id unless the caller already set one
func (s *SharedResult) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
