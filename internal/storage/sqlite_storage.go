package storage

import (
	"mintgate/internal/logger"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SqliteStorage struct {
	db *gorm.DB
}

func NewSqliteStorage(path string) (*SqliteStorage, error) {

	logger.Debug("initializing database...", zap.String("path", path))
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&MintAttempt{},
		&SupplySnapshot{},
	)

	if err != nil {
		return nil, err
	}

	return &SqliteStorage{
		db: db,
	}, nil
}

func (s *SqliteStorage) RecordMintAttempt(attempt *MintAttempt) error {
	logger.Debug("recording mint attempt...",
		zap.String("address", attempt.Address),
		zap.Uint64("item id", attempt.ItemID),
	)

	err := s.db.Create(attempt).Error
	if err != nil {
		return err
	}

	logger.Debug("recording mint attempt... done", zap.Int64("id", attempt.ID))
	return nil
}

func (s *SqliteStorage) UpdateMintAttempt(attempt *MintAttempt) error {
	logger.Debug("updating mint attempt...", zap.Int64("id", attempt.ID), zap.String("status", attempt.Status))

	err := s.db.Model(&MintAttempt{}).
		Where("id = ?", attempt.ID).
		Updates(map[string]any{
			"tx_hash":       attempt.TxHash,
			"status":        attempt.Status,
			"error_message": attempt.ErrorMessage,
		}).Error

	if err != nil {
		return err
	}

	logger.Debug("updating mint attempt... done")
	return nil
}

func (s *SqliteStorage) GetMintAttempts(address string) ([]*MintAttempt, error) {

	var attempts []*MintAttempt
	err := s.db.Where("address = ?", address).Order("unix_time").Find(&attempts).Error

	if err != nil {
		return nil, err
	}

	return attempts, nil
}

func (s *SqliteStorage) GetPendingMintAttempts() ([]*MintAttempt, error) {

	var attempts []*MintAttempt
	err := s.db.
		Where("status in ?", []AttemptStatus{AttemptSubmitting, AttemptPendingConfirmation}).
		Order("unix_time").
		Find(&attempts).Error

	if err != nil {
		return nil, err
	}

	return attempts, nil
}

func (s *SqliteStorage) SaveSupplySnapshots(snapshots []*SupplySnapshot) error {
	logger.Debug("saving supply snapshots...")

	if len(snapshots) == 0 {
		logger.Debug("no supply snapshots to persist")
		return nil
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"current_supply", "max_supply", "active", "taken_unix_time"}),
	}).CreateInBatches(snapshots, 100).Error

	if err != nil {
		return err
	}

	logger.Debug("saving supply snapshots... done")
	return nil
}

func (s *SqliteStorage) LatestSupplySnapshots() ([]*SupplySnapshot, error) {

	var snapshots []*SupplySnapshot
	err := s.db.Order("item_id").Find(&snapshots).Error
	if err != nil {
		return nil, err
	}

	return snapshots, nil
}
