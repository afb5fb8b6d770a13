package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"atrika/internal/config"

	"github.com/rs/zerolog"
)

const (
	snapshotPrefix = "session_"
	snapshotSuffix = ".db"
	snapshotLayout = "20060102_150405"
)

// BackupService writes periodic snapshots of the sqlite session database
// and prunes the ones past retention.
type BackupService struct {
	store  *SQLiteStore
	cfg    config.BackupConfig
	logger *zerolog.Logger
	now    func() time.Time
}

func NewBackupService(store *SQLiteStore, cfg config.BackupConfig, logger *zerolog.Logger) *BackupService {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &BackupService{
		store:  store,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Run snapshots once, then on every interval tick until ctx is done.
func (s *BackupService) Run(ctx context.Context) {
	if !s.cfg.Enabled {
		s.logger.Info().Msg("session backups disabled")
		return
	}

	interval := s.cfg.Interval
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	s.logger.Info().Dur("interval", interval).Str("dir", s.cfg.StoragePath).Msg("session backups started")

	s.tick(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *BackupService) tick(ctx context.Context) {
	if _, err := s.Snapshot(ctx); err != nil {
		s.logger.Error().Err(err).Msg("session snapshot failed")
	}
	if removed, err := s.Prune(); err != nil {
		s.logger.Error().Err(err).Msg("prune session snapshots")
	} else if removed > 0 {
		s.logger.Info().Int("removed", removed).Msg("old session snapshots pruned")
	}
}

// Snapshot writes a consistent copy of the session database and returns its
// path. The copy is built under a temporary name and renamed into place, so
// a listed snapshot is always complete.
func (s *BackupService) Snapshot(ctx context.Context) (string, error) {
	if err := os.MkdirAll(s.cfg.StoragePath, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	final := filepath.Join(s.cfg.StoragePath, snapshotName(s.now()))
	partial := final + ".partial"
	_ = os.Remove(partial)

	quoted := strings.ReplaceAll(partial, "'", "''")
	if _, err := s.store.db.ExecContext(ctx, fmt.Sprintf("VACUUM INTO '%s'", quoted)); err != nil {
		s.logger.Warn().Err(err).Msg("VACUUM INTO failed, copying rows instead")
		_ = os.Remove(partial)
		if err := s.copyRows(ctx, partial); err != nil {
			_ = os.Remove(partial)
			return "", fmt.Errorf("copy session rows: %w", err)
		}
	}

	if err := os.Rename(partial, final); err != nil {
		_ = os.Remove(partial)
		return "", fmt.Errorf("publish snapshot: %w", err)
	}
	s.logger.Info().Str("path", final).Msg("session snapshot written")
	return final, nil
}

// copyRows rebuilds the session table in a fresh database at dest. It also
// works for ":memory:" stores, which have no file to copy.
func (s *BackupService) copyRows(ctx context.Context, dest string) error {
	target, err := sql.Open("sqlite3", dest)
	if err != nil {
		return err
	}
	defer target.Close()

	if err := createTables(target); err != nil {
		return err
	}

	rows, err := s.store.db.QueryContext(ctx, `SELECT key, value, updated_at FROM session_values`)
	if err != nil {
		return err
	}
	defer rows.Close()

	tx, err := target.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for rows.Next() {
		var (
			key     string
			value   []byte
			updated time.Time
		)
		if err := rows.Scan(&key, &value, &updated); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO session_values (key, value, updated_at) VALUES (?, ?, ?)`,
			key, value, updated); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return tx.Commit()
}

// Prune deletes snapshots whose name dates them before the retention window
// and reports how many went. Files it did not write are left alone. Zero
// retention keeps everything.
func (s *BackupService) Prune() (int, error) {
	if s.cfg.RetentionDays <= 0 {
		return 0, nil
	}

	entries, err := os.ReadDir(s.cfg.StoragePath)
	if err != nil {
		return 0, fmt.Errorf("read backup dir: %w", err)
	}

	cutoff := s.now().UTC().AddDate(0, 0, -s.cfg.RetentionDays)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		taken, ok := snapshotTime(entry.Name())
		if !ok || !taken.Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.cfg.StoragePath, entry.Name())); err != nil {
			s.logger.Warn().Err(err).Str("file", entry.Name()).Msg("remove old snapshot")
			continue
		}
		removed++
	}
	return removed, nil
}

func snapshotName(t time.Time) string {
	return snapshotPrefix + t.UTC().Format(snapshotLayout) + snapshotSuffix
}

func snapshotTime(name string) (time.Time, bool) {
	stamp, ok := strings.CutPrefix(name, snapshotPrefix)
	if !ok {
		return time.Time{}, false
	}
	stamp, ok = strings.CutSuffix(stamp, snapshotSuffix)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(snapshotLayout, stamp)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
