package postgres_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yashwanthkasi9182/PlayMate/config"
	"github.com/yashwanthkasi9182/PlayMate/models/postgres"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Runs against a live database when POSTGRES_HOST is set
func connect(t *testing.T) *gorm.DB {
	t.Helper()
	pg := config.PostgresConfig{
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		Database: os.Getenv("POSTGRES_DATABASE"),
	}
	if !pg.Enabled() {
		t.Skip("POSTGRES_HOST not set")
	}
	db, err := config.ConnectGORM(pg)
	require.NoError(t, err)
	require.NoError(t, config.MigrateDatabase(db))
	return db
}

func TestSharedResultRoundTrip(t *testing.T) {
	db := connect(t)

	row := postgres.SharedResult{
		Game:      "Football",
		Mode:      "casual",
		Teams:     datatypes.JSON(`[{"name":"Red","players":["Ana"]}]`),
		Matches:   datatypes.JSON(`[]`),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, db.Create(&row).Error)
	t.Cleanup(func() { db.Delete(&postgres.SharedResult{}, "id = ?", row.ID) })
	assert.NotEmpty(t, row.ID)

	var got postgres.SharedResult
	require.NoError(t, db.First(&got, "id = ?", row.ID).Error)
	assert.Equal(t, "Football", got.Game)
	assert.JSONEq(t, string(row.Teams), string(got.Teams))
}
