package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"inkwell/internal/middleware"

	"gorm.io/gorm"
)

// AppliedMigration is one row of the schema ledger: a migration version that
// has been run against this database, and when.
type AppliedMigration struct {
	Version   int       `gorm:"primaryKey;autoIncrement:false"`
	Name      string    `gorm:"size:255"`
	AppliedAt time.Time `gorm:"autoCreateTime"`
}

func (AppliedMigration) TableName() string {
	return "schema_migrations"
}

// migrationLedger wraps the schema_migrations table. The table itself is
// bootstrapped with raw SQL so the ledger works on a completely empty
// database.
type migrationLedger struct {
	db *gorm.DB
}

const bootstrapLedgerSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version BIGINT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_schema_migrations_applied_at ON schema_migrations (applied_at);`

func openLedger(ctx context.Context, db *gorm.DB) (*migrationLedger, error) {
	if err := db.WithContext(ctx).Exec(bootstrapLedgerSQL).Error; err != nil {
		return nil, fmt.Errorf("bootstrap schema_migrations table: %w", err)
	}
	return &migrationLedger{db: db}, nil
}

func (l *migrationLedger) appliedVersions(ctx context.Context) ([]int, error) {
	var versions []int
	err := l.db.WithContext(ctx).Model(&AppliedMigration{}).Order("version ASC").Pluck("version", &versions).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []int{}, nil
		}
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	return versions, nil
}

// apply runs the migration SQL and records the version in the ledger.
func (l *migrationLedger) apply(ctx context.Context, m Migration) error {
	if err := l.db.WithContext(ctx).Exec(m.UpScript).Error; err != nil {
		return fmt.Errorf("migration %06d_%s failed: %w", m.Version, m.Name, err)
	}
	row := AppliedMigration{Version: m.Version, Name: m.Name}
	if err := l.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("record migration %06d in ledger: %w", m.Version, err)
	}
	middleware.Logger.Info("Migration applied", slog.Int("version", m.Version), slog.String("name", m.Name))
	return nil
}

// revert runs the down script and drops the version from the ledger.
func (l *migrationLedger) revert(ctx context.Context, m Migration) error {
	if err := l.db.WithContext(ctx).Exec(m.DownScript).Error; err != nil {
		return fmt.Errorf("rollback of %06d_%s failed: %w", m.Version, m.Name, err)
	}
	if err := l.db.WithContext(ctx).Where("version = ?", m.Version).Delete(&AppliedMigration{}).Error; err != nil {
		return fmt.Errorf("remove migration %06d from ledger: %w", m.Version, err)
	}
	middleware.Logger.Info("Migration rolled back", slog.Int("version", m.Version), slog.String("name", m.Name))
	return nil
}

// RunMigrations applies every registered migration the ledger has not seen
// yet, in version order.
func RunMigrations(ctx context.Context, db *gorm.DB) error {
	ledger, err := openLedger(ctx, db)
	if err != nil {
		return err
	}
	applied, err := ledger.appliedVersions(ctx)
	if err != nil {
		return err
	}
	if err := validateAppliedVersions(applied, migrations); err != nil {
		return err
	}

	seen := make(map[int]bool, len(applied))
	for _, v := range applied {
		seen[v] = true
	}

	ran := 0
	for _, m := range migrations {
		if seen[m.Version] {
			continue
		}
		middleware.Logger.Info("Applying migration", slog.Int("version", m.Version), slog.String("name", m.Name))
		if err := ledger.apply(ctx, m); err != nil {
			return err
		}
		ran++
	}

	if ran == 0 {
		middleware.Logger.Debug("Schema up to date", slog.Int("applied", len(applied)))
	} else {
		middleware.Logger.Info("Schema migrations complete", slog.Int("ran", ran))
	}
	return nil
}

// validateAppliedVersions refuses to run against a ledger that mentions
// versions this binary does not know about. That usually means the database
// belongs to a newer build, and running older migrations on top of it would
// corrupt the schema.
func validateAppliedVersions(applied []int, registered []Migration) error {
	if len(applied) == 0 {
		return nil
	}
	known := make(map[int]struct{}, len(registered))
	for _, m := range registered {
		known[m.Version] = struct{}{}
	}

	var unknown []int
	for _, version := range applied {
		if _, ok := known[version]; !ok {
			unknown = append(unknown, version)
		}
	}
	if len(unknown) == 0 {
		return nil
	}

	sort.Ints(unknown)
	parts := make([]string, 0, len(unknown))
	for _, version := range unknown {
		parts = append(parts, fmt.Sprintf("%06d", version))
	}
	return fmt.Errorf(
		"schema ledger contains unknown versions not present in code: %s (reset the development database to rebuild)",
		strings.Join(parts, ", "),
	)
}

// RollbackMigration reverts a single applied migration by version.
func RollbackMigration(ctx context.Context, db *gorm.DB, version int) error {
	m := GetMigrationByVersion(version)
	if m == nil {
		return fmt.Errorf("migration version %d not found", version)
	}

	ledger, err := openLedger(ctx, db)
	if err != nil {
		return err
	}
	applied, err := ledger.appliedVersions(ctx)
	if err != nil {
		return err
	}

	for _, v := range applied {
		if v == version {
			return ledger.revert(ctx, *m)
		}
	}
	return fmt.Errorf("migration %d has not been applied", version)
}
