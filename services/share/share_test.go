package share

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yashwanthkasi9182/PlayMate/models"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var sampleShare = models.ShareData{
	Teams: []models.Team{
		{Name: "Team A", Players: []string{"Ana", "Ben"}},
		{Name: "Team B", Players: []string{"Cleo", "Dev"}},
	},
	Matches: []models.Match{{Match: 1, Team1: "Team A", Team2: "Team B", Time: "Match 1"}},
	Game:    "Football",
	Mode:    "casual",
}

func newMockService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewService(db, []byte("test-secret"), time.Hour, nil), mock
}

func TestCreateAndResolve(t *testing.T) {
	svc, mock := newMockService(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "shared_results"`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	token, expiresAt, err := svc.Create(ctx, sampleShare)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 2*time.Second)

	id, err := svc.parseToken(token)
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"id", "game", "mode", "teams", "matches", "created_at", "expires_at"}).
		AddRow(id, "Football", "casual",
			[]byte(`[{"name":"Team A","players":["Ana","Ben"]},{"name":"Team B","players":["Cleo","Dev"]}]`),
			[]byte(`[{"match":1,"team1":"Team A","team2":"Team B","time":"Match 1"}]`),
			time.Now(), expiresAt)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "shared_results" WHERE id = $1 AND expires_at > $2`)).
		WithArgs(id, sqlmock.AnyArg()).
		WillReturnRows(rows)

	got, err := svc.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, sampleShare, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRequiresTeams(t *testing.T) {
	svc, mock := newMockService(t)

	_, _, err := svc.Create(context.Background(), models.ShareData{Game: "Football"})

	assert.ErrorIs(t, err, ErrNoTeams)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveUnknownShare(t *testing.T) {
	svc, mock := newMockService(t)
	token, err := svc.signToken("2b0e4c4e-8a3c-4e53-9c1f-2a8a7bfe3a10", time.Now().Add(time.Hour))
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "shared_results"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = svc.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveRejectsBadTokens(t *testing.T) {
	svc, mock := newMockService(t)
	other := NewService(nil, []byte("another-secret"), time.Hour, nil)
	forged, err := other.signToken("some-id", time.Now().Add(time.Hour))
	require.NoError(t, err)

	for _, token := range []string{"", "not-a-token", forged} {
		_, err := svc.Resolve(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken, token)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveExpiredToken(t *testing.T) {
	svc, mock := newMockService(t)
	token, err := svc.signToken("some-id", time.Now().Add(time.Minute))
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(time.Hour) }

	_, err = svc.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPruneExpired(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "shared_results" WHERE expires_at <= $1`)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := svc.PruneExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
