package repositories

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	dbm "routeplanner/internal/models/db_models"
)

// sqlRecorder is a gorm logger that keeps every statement it is asked to trace.
type sqlRecorder struct {
	mu   sync.Mutex
	stmt []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface       { return r }
func (r *sqlRecorder) Info(context.Context, string, ...interface{})  {}
func (r *sqlRecorder) Warn(context.Context, string, ...interface{})  {}
func (r *sqlRecorder) Error(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.mu.Lock()
	r.stmt = append(r.stmt, sql)
	r.mu.Unlock()
}

func (r *sqlRecorder) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.stmt) == 0 {
		return ""
	}
	return r.stmt[len(r.stmt)-1]
}

// newDryRunDB builds SQL against the postgres dialect without opening a connection.
func newDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()
	rec := &sqlRecorder{}
	db, err := gorm.Open(postgres.Open("host=127.0.0.1 user=test dbname=test sslmode=disable"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               rec,
	})
	require.NoError(t, err)
	return db, rec
}

func TestAddReactionIgnoresDuplicates(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewContentReactionRepository(db)

	err := repo.Add(context.Background(), &dbm.ContentReaction{
		UserID:     uuid.New(),
		Kind:       dbm.ReactionLike,
		TargetType: dbm.TargetRoute,
		TargetID:   uuid.New(),
	})
	require.NoError(t, err)

	sql := rec.last()
	assert.Contains(t, sql, `INSERT INTO "content_reactions"`)
	assert.Contains(t, sql, "ON CONFLICT DO NOTHING")
}

func TestOrderActivitiesPutsUnscheduledLast(t *testing.T) {
	db, _ := newDryRunDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var acts []dbm.TripActivity
		return orderActivities(tx.Model(&dbm.TripActivity{})).Find(&acts)
	})

	assert.Contains(t, sql, "ORDER BY NULLIF(start_time, '') ASC NULLS LAST,position ASC")
}
