package service

import (
	"github.com/xolan/devjournal/internal/storage"
)

// StorageService exposes journal file maintenance: health checks and backups
type StorageService struct {
	store *storage.Store
}

// NewStorageService creates a new StorageService
func NewStorageService(store *storage.Store) *StorageService {
	return &StorageService{store: store}
}

// Path returns the journal file path
func (s *StorageService) Path() string {
	return s.store.Path()
}

// Validate reports the health of the journal file
func (s *StorageService) Validate() (storage.Health, error) {
	return s.store.Validate()
}

// Backups lists available backups, most recent first
func (s *StorageService) Backups() []storage.BackupInfo {
	return s.store.ListBackups()
}

// BackupCount returns the number of backups the store rotates through
func (s *StorageService) BackupCount() int {
	return s.store.BackupCount()
}

// Restore replaces the journal with backup n
func (s *StorageService) Restore(n int) error {
	return s.store.RestoreBackup(n)
}
