package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"flowstate/internal/config"
	"flowstate/internal/domain"
	"flowstate/internal/logging"
	"flowstate/internal/ports"
)

const maxRetries = 3

// SQLiteStore implements ports.CategoryStore using GORM
type SQLiteStore struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.CategoryStore = (*SQLiteStore)(nil)

// gormLogger routes GORM output into the flowstate logger
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Logger.Error("gorm query error", "error", err, "duration", elapsed, "sql", sql, "rows", rows)
	case elapsed > 200*time.Millisecond:
		logging.Logger.Warn("slow query", "duration", elapsed, "sql", sql, "rows", rows)
	default:
		logging.Logger.Debug("gorm query", "duration", elapsed, "sql", sql, "rows", rows)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("FLOWSTATE_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteStore opens (creating if needed) the category database at dbPath
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dbPath = config.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Pragmas go in the DSN so every pooled connection gets them
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&CategoryModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate categories schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("category store opened", "path", dbPath)
	return &SQLiteStore{db: db}, nil
}

// NewSQLiteStoreForHome opens the store inside a FLOWSTATE_HOME directory
func NewSQLiteStoreForHome(home string) (*SQLiteStore, error) {
	return NewSQLiteStore(filepath.Join(home, "flowstate.db"))
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get implements CategoryReader.Get
func (s *SQLiteStore) Get(ctx context.Context, category domain.Category) ([]byte, error) {
	var row CategoryModel
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Where("category = ?", string(category)).First(&row).Error
	}, maxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, category)
		}
		return nil, fmt.Errorf("failed to read %s: %w", category, err)
	}
	return []byte(row.Value), nil
}

// Keys implements CategoryReader.Keys
func (s *SQLiteStore) Keys(ctx context.Context) ([]domain.Category, error) {
	var keys []string
	err := withRetry(func() error {
		keys = keys[:0]
		return s.db.WithContext(ctx).Model(&CategoryModel{}).Order("category").Pluck("category", &keys).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	result := make([]domain.Category, 0, len(keys))
	for _, k := range keys {
		result = append(result, domain.Category(k))
	}
	return result, nil
}

// Put implements CategoryWriter.Put
func (s *SQLiteStore) Put(ctx context.Context, category domain.Category, value []byte) error {
	return withRetry(func() error {
		return upsert(s.db.WithContext(ctx), category, value)
	}, maxRetries)
}

// PutMany implements CategoryWriter.PutMany
func (s *SQLiteStore) PutMany(ctx context.Context, values map[domain.Category][]byte) error {
	if len(values) == 0 {
		return nil
	}
	return withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for category, value := range values {
				if err := upsert(tx, category, value); err != nil {
					return err
				}
			}
			return nil
		})
	}, maxRetries)
}

// Clear implements CategoryWriter.Clear
func (s *SQLiteStore) Clear(ctx context.Context) error {
	return withRetry(func() error {
		return s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&CategoryModel{}).Error
	}, maxRetries)
}

func upsert(tx *gorm.DB, category domain.Category, value []byte) error {
	row := CategoryModel{Key: string(category), Value: string(value)}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", category, err)
	}
	return nil
}

// withRetry retries fn when SQLite reports the database as busy or locked
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			logging.Logger.Debug("sqlite busy, retrying", "attempt", i+1)
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
