// Package share stores generation results and hands out signed tokens that
// resolve back to them.
package share

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/yashwanthkasi9182/PlayMate/models"
	"github.com/yashwanthkasi9182/PlayMate/models/postgres"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const tokenIssuer = "playmate"

// DefaultTTL is how long a share link stays valid
const DefaultTTL = 7 * 24 * time.Hour

var (
	// ErrNotFound is returned for unknown or expired shares
	ErrNotFound = errors.New("share not found")

	// ErrInvalidToken is returned for tokens that fail verification
	ErrInvalidToken = errors.New("invalid share token")

	// ErrNoTeams rejects snapshots without teams
	ErrNoTeams = errors.New("teams are required")
)

// Service persists shared results in PostgreSQL.
type Service struct {
	db     *gorm.DB
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	log    *zap.Logger
}

// NewService creates a share service
func NewService(db *gorm.DB, secret []byte, ttl time.Duration, log *zap.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		db:     db,
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
		log:    log,
	}
}

// Create stores data and returns its token and expiry
func (s *Service) Create(ctx context.Context, data models.ShareData) (string, time.Time, error) {
	if len(data.Teams) == 0 {
		return "", time.Time{}, ErrNoTeams
	}

	teams, err := json.Marshal(data.Teams)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to encode teams: %w", err)
	}
	matches := data.Matches
	if matches == nil {
		matches = []models.Match{}
	}
	matchesJSON, err := json.Marshal(matches)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to encode matches: %w", err)
	}

	expiresAt := s.now().Add(s.ttl).UTC().Truncate(time.Second)
	row := postgres.SharedResult{
		Game:      data.Game,
		Mode:      data.Mode,
		Teams:     datatypes.JSON(teams),
		Matches:   datatypes.JSON(matchesJSON),
		ExpiresAt: expiresAt,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", time.Time{}, fmt.Errorf("failed to store shared result: %w", err)
	}

	token, err := s.signToken(row.ID, expiresAt)
	if err != nil {
		return "", time.Time{}, err
	}
	s.log.Info("shared result stored", zap.String("id", row.ID), zap.String("game", row.Game))
	return token, expiresAt, nil
}

// Resolve returns the snapshot behind a token
func (s *Service) Resolve(ctx context.Context, token string) (models.ShareData, error) {
	id, err := s.parseToken(token)
	if err != nil {
		return models.ShareData{}, err
	}

	var rows []postgres.SharedResult
	err = s.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, s.now()).
		Find(&rows).Error
	if err != nil {
		return models.ShareData{}, fmt.Errorf("failed to load shared result: %w", err)
	}
	if len(rows) == 0 {
		return models.ShareData{}, ErrNotFound
	}
	row := rows[0]

	data := models.ShareData{Game: row.Game, Mode: row.Mode}
	if err := json.Unmarshal(row.Teams, &data.Teams); err != nil {
		return models.ShareData{}, fmt.Errorf("failed to decode teams: %w", err)
	}
	if err := json.Unmarshal(row.Matches, &data.Matches); err != nil {
		return models.ShareData{}, fmt.Errorf("failed to decode matches: %w", err)
	}
	return data, nil
}

// PruneExpired deletes expired rows and returns how many were removed
func (s *Service) PruneExpired(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("expires_at <= ?", s.now()).
		Delete(&postgres.SharedResult{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to prune shared results: %w", result.Error)
	}
	return result.RowsAffected, nil
}
