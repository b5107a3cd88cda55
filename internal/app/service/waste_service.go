package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"
	"waste_tracker/internal/common"
	"waste_tracker/internal/domain/model"
	"waste_tracker/internal/domain/repository"

	"go.uber.org/zap"
)

// WasteService owns the record ingestion and query paths. Ingestion resolves
// the category and location names and inserts the row inside one transaction,
// so a record never cites a reference that was deleted mid-request.
type WasteService struct {
	wasteRepo repository.WasteRepository
	db        *sql.DB
	logger    *zap.Logger
}

func NewWasteService(wasteRepo repository.WasteRepository, db *sql.DB, logger *zap.Logger) *WasteService {
	return &WasteService{wasteRepo: wasteRepo, db: db, logger: logger}
}

type CreateRecordRequest struct {
	Type     string  `json:"type"`
	Location string  `json:"location"`
	Weight   float64 `json:"weight"`
	Notes    string  `json:"notes,omitempty"`
	Date     string  `json:"date,omitempty"` // YYYY-MM-DD
	Time     string  `json:"time,omitempty"` // HH:MM, only meaningful with Date
}

func (s *WasteService) CreateRecord(ctx context.Context, req CreateRecordRequest) (int64, error) {
	if req.Type == "" {
		return 0, fmt.Errorf("type is required: %w", common.ErrValidation)
	}
	if req.Location == "" {
		return 0, fmt.Errorf("location is required: %w", common.ErrValidation)
	}
	if req.Weight <= 0 || math.IsNaN(req.Weight) || math.IsInf(req.Weight, 0) {
		return 0, fmt.Errorf("weight must be a positive number: %w", common.ErrValidation)
	}

	recordedAt, err := parseRecordedAt(req.Date, req.Time)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	categoryID, err := s.wasteRepo.ResolveCategory(ctx, tx, req.Type)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 0, fmt.Errorf("unknown waste type %q: %w", req.Type, common.ErrUnknownReference)
		}
		return 0, err
	}

	locationID, err := s.wasteRepo.ResolveLocation(ctx, tx, req.Location)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 0, fmt.Errorf("unknown location %q: %w", req.Location, common.ErrUnknownReference)
		}
		return 0, err
	}

	record := &model.WasteRecord{
		CategoryID: categoryID,
		LocationID: locationID,
		WeightKg:   req.Weight,
		RecordedAt: recordedAt,
		Notes:      req.Notes,
	}
	id, err := s.wasteRepo.InsertRecord(ctx, tx, record)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit record: %w", err)
	}

	s.logger.Info("waste record ingested",
		zap.Int64("id", id),
		zap.String("type", req.Type),
		zap.String("location", req.Location),
		zap.Float64("weight_kg", req.Weight))
	return id, nil
}

// parseRecordedAt turns the optional date/time fields into an explicit
// timestamp. A zero return defers the timestamp to the store.
func parseRecordedAt(date, clock string) (time.Time, error) {
	if date == "" {
		if clock != "" {
			return time.Time{}, fmt.Errorf("time requires a date: %w", common.ErrValidation)
		}
		return time.Time{}, nil
	}
	if clock == "" {
		clock = "00:00"
	}
	ts, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time: %w", common.ErrValidation)
	}
	return ts, nil
}

func (s *WasteService) ListRecords(ctx context.Context) ([]model.WasteRecordView, error) {
	return s.wasteRepo.ListRecords(ctx)
}

func (s *WasteService) DeleteRecord(ctx context.Context, id int64) error {
	if err := s.wasteRepo.DeleteRecord(ctx, id); err != nil {
		return err
	}
	s.logger.Info("waste record deleted", zap.Int64("id", id))
	return nil
}

func (s *WasteService) ListCategories(ctx context.Context) ([]model.WasteCategory, error) {
	return s.wasteRepo.ListCategories(ctx)
}

func (s *WasteService) ListLocations(ctx context.Context) ([]model.Location, error) {
	return s.wasteRepo.ListLocations(ctx)
}
