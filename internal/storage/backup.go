package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

const (
	// BackupSuffix is the file extension for backup files
	BackupSuffix = ".bak"
	// DefaultBackupCount is the number of rotating backups kept unless configured otherwise
	DefaultBackupCount = 3
)

// ErrBackupNotFound is returned when restoring a backup that does not exist
var ErrBackupNotFound = errors.New("backup does not exist")

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Number  int    // The backup number (1 is the most recent)
	Path    string // The full path to the backup file
	Entries int    // Number of entries the backup holds
}

// BackupPath returns the path of backup n: journal.json.bak.N.
// Lower numbers are more recent (.bak.1 is the newest).
func (s *Store) BackupPath(n int) string {
	return fmt.Sprintf("%s%s.%d", s.path, BackupSuffix, n)
}

// BackupCount returns how many rotating backups the store keeps.
func (s *Store) BackupCount() int {
	return s.backups
}

// rotateBackups shifts .bak.1 -> .bak.2 ... and drops the oldest to make room
// for a new .bak.1. Missing files are skipped.
func (s *Store) rotateBackups() error {
	if err := os.Remove(s.BackupPath(s.backups)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	for i := s.backups - 1; i >= 1; i-- {
		if err := os.Rename(s.BackupPath(i), s.BackupPath(i+1)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// CreateBackup copies the current journal file to .bak.1 after rotating the
// older backups. A missing journal or disabled backups is not an error.
func (s *Store) CreateBackup() error {
	if s.backups <= 0 {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	if err := s.rotateBackups(); err != nil {
		return err
	}

	if err := os.WriteFile(s.BackupPath(1), data, 0644); err != nil {
		return err
	}

	s.logger.Debug("created backup", zap.String("backup", s.BackupPath(1)))
	return nil
}

// ListBackups returns the existing backups, most recent first.
func (s *Store) ListBackups() []BackupInfo {
	var backups []BackupInfo
	for i := 1; i <= s.backups; i++ {
		path := s.BackupPath(i)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Number:  i,
			Path:    path,
			Entries: len(NewStore(path).Load()),
		})
	}
	return backups
}

// RestoreBackup replaces the journal with backup n.
// The current journal is rotated into .bak.1 first, so a restore can be undone.
func (s *Store) RestoreBackup(n int) error {
	if n < 1 || n > s.backups {
		return fmt.Errorf("invalid backup number %d, must be between 1 and %d", n, s.backups)
	}

	data, err := os.ReadFile(s.BackupPath(n))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %d", ErrBackupNotFound, n)
		}
		return err
	}

	if err := s.CreateBackup(); err != nil {
		return err
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		return err
	}

	s.logger.Info("restored backup", zap.Int("backup", n))
	return nil
}
