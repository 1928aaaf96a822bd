package database

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// mockMetricsRecorder is a mock implementation of MetricsRecorder for testing
type mockMetricsRecorder struct {
	mu      sync.Mutex
	queries []queryRecord
}

type queryRecord struct {
	operation string
	table     string
	duration  time.Duration
	err       error
}

func (m *mockMetricsRecorder) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, queryRecord{
		operation: operation,
		table:     table,
		duration:  duration,
		err:       err,
	})
}

func (m *mockMetricsRecorder) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = nil
}

type testModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(255);uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (testModel) TableName() string {
	return "test_models"
}

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := New(Config{Driver: DriverSQLite, DSN: ":memory:?_foreign_keys=1"})
	require.NoError(t, err, "Failed to open test database")
	t.Cleanup(func() { _ = Close(db) })

	err = db.AutoMigrate(&testModel{})
	require.NoError(t, err, "Failed to migrate test model")

	return db
}

func TestRegisterMetricsCallbacks_Operations(t *testing.T) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{}
	require.NoError(t, RegisterMetricsCallbacks(db, recorder))

	data := testModel{Name: "first"}
	require.NoError(t, db.Create(&data).Error)

	var result testModel
	require.NoError(t, db.First(&result, data.ID).Error)
	require.NoError(t, db.Model(&data).Update("Name", "updated").Error)
	require.NoError(t, db.Delete(&data).Error)

	require.Len(t, recorder.queries, 4, "Expected four queries to be recorded")

	operations := []string{"insert", "select", "update", "delete"}
	for i, expectedOp := range operations {
		assert.Equal(t, expectedOp, recorder.queries[i].operation, "operation %d", i)
		assert.Equal(t, "test_models", recorder.queries[i].table, "table for operation %d", i)
		assert.Greater(t, recorder.queries[i].duration, time.Duration(0), "duration for operation %d", i)
		assert.NoError(t, recorder.queries[i].err, "error for operation %d", i)
	}
}

// Classification happens in the recorder, the callback forwards db.Error as is
func TestRegisterMetricsCallbacks_NotFoundForwarded(t *testing.T) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{}
	require.NoError(t, RegisterMetricsCallbacks(db, recorder))

	var result testModel
	err := db.First(&result, 9999).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.Len(t, recorder.queries, 1)
	assert.Equal(t, "select", recorder.queries[0].operation)
	assert.ErrorIs(t, recorder.queries[0].err, gorm.ErrRecordNotFound)
}

func TestRegisterMetricsCallbacks_CreateError(t *testing.T) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{}
	require.NoError(t, RegisterMetricsCallbacks(db, recorder))

	require.NoError(t, db.Create(&testModel{Name: "dup"}).Error)
	recorder.reset()

	err := db.Create(&testModel{Name: "dup"}).Error
	require.Error(t, err, "Expected create to fail with duplicate name")
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	require.Len(t, recorder.queries, 1)
	assert.Equal(t, "insert", recorder.queries[0].operation)
	assert.ErrorIs(t, recorder.queries[0].err, gorm.ErrDuplicatedKey)
}

func TestRegisterMetricsCallbacks_Transaction(t *testing.T) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{}
	require.NoError(t, RegisterMetricsCallbacks(db, recorder))

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&testModel{Name: "tx1"}).Error; err != nil {
			return err
		}
		return tx.Create(&testModel{Name: "tx2"}).Error
	})
	require.NoError(t, err)

	require.Len(t, recorder.queries, 2)
	for _, q := range recorder.queries {
		assert.Equal(t, "insert", q.operation)
	}
}

func TestRegisterMetricsCallbacks_RowQuery(t *testing.T) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{}
	require.NoError(t, RegisterMetricsCallbacks(db, recorder))

	var count int64
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM test_models").Row().Scan(&count))

	require.Len(t, recorder.queries, 1)
	assert.Equal(t, "row", recorder.queries[0].operation)
	assert.Empty(t, recorder.queries[0].table)
}
