package service

import (
	"context"
	"regexp"
	"testing"
	"time"
	"waste_tracker/internal/common"
	"waste_tracker/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupWasteService(t *testing.T) (*WasteService, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	svc := NewWasteService(repository.NewPgWasteRepository(db), db, zap.NewNop())
	cleanup := func() { db.Close() }
	return svc, mock, cleanup
}

func TestCreateRecord_Success(t *testing.T) {
	svc, mock, cleanup := setupWasteService(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id_tipo_residuo FROM cat_tipo_residuo WHERE nombre = $1`)).
		WithArgs("Vidrio").
		WillReturnRows(sqlmock.NewRows([]string{"id_tipo_residuo"}).AddRow(int64(8)))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id_ubicacion FROM cat_ubicacion WHERE nombre = $1`)).
		WithArgs("Spa").
		WillReturnRows(sqlmock.NewRows([]string{"id_ubicacion"}).AddRow(int64(44)))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO registro_residuo`)).
		WithArgs(int64(8), int64(44), 12.5, nil, "").
		WillReturnRows(sqlmock.NewRows([]string{"id_registro"}).AddRow(int64(101)))
	mock.ExpectCommit()

	id, err := svc.CreateRecord(context.Background(), CreateRecordRequest{
		Type:     "Vidrio",
		Location: "Spa",
		Weight:   12.5,
	})
	require.NoError(t, err)
	require.Equal(t, int64(101), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRecord_ExplicitDateTime(t *testing.T) {
	svc, mock, cleanup := setupWasteService(t)
	defer cleanup()

	recordedAt := time.Date(2026, 8, 30, 14, 45, 0, 0, time.Local)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id_tipo_residuo FROM cat_tipo_residuo WHERE nombre = $1`)).
		WithArgs("Cartón").
		WillReturnRows(sqlmock.NewRows([]string{"id_tipo_residuo"}).AddRow(int64(10)))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id_ubicacion FROM cat_ubicacion WHERE nombre = $1`)).
		WithArgs("Almacén").
		WillReturnRows(sqlmock.NewRows([]string{"id_ubicacion"}).AddRow(int64(4)))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO registro_residuo`)).
		WithArgs(int64(10), int64(4), 4.2, recordedAt, "compactado").
		WillReturnRows(sqlmock.NewRows([]string{"id_registro"}).AddRow(int64(102)))
	mock.ExpectCommit()

	id, err := svc.CreateRecord(context.Background(), CreateRecordRequest{
		Type:     "Cartón",
		Location: "Almacén",
		Weight:   4.2,
		Notes:    "compactado",
		Date:     "2026-08-30",
		Time:     "14:45",
	})
	require.NoError(t, err)
	require.Equal(t, int64(102), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRecord_UnknownCategory(t *testing.T) {
	svc, mock, cleanup := setupWasteService(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id_tipo_residuo FROM cat_tipo_residuo WHERE nombre = $1`)).
		WithArgs("Uranio").
		WillReturnRows(sqlmock.NewRows([]string{"id_tipo_residuo"}))
	mock.ExpectRollback()

	_, err := svc.CreateRecord(context.Background(), CreateRecordRequest{
		Type:     "Uranio",
		Location: "Spa",
		Weight:   1.0,
	})
	require.ErrorIs(t, err, common.ErrUnknownReference)
	require.Contains(t, err.Error(), "Uranio")
	// No insert was attempted; the transaction rolled back.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRecord_UnknownLocation(t *testing.T) {
	svc, mock, cleanup := setupWasteService(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id_tipo_residuo FROM cat_tipo_residuo WHERE nombre = $1`)).
		WithArgs("Vidrio").
		WillReturnRows(sqlmock.NewRows([]string{"id_tipo_residuo"}).AddRow(int64(8)))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id_ubicacion FROM cat_ubicacion WHERE nombre = $1`)).
		WithArgs("Atlántida").
		WillReturnRows(sqlmock.NewRows([]string{"id_ubicacion"}))
	mock.ExpectRollback()

	_, err := svc.CreateRecord(context.Background(), CreateRecordRequest{
		Type:     "Vidrio",
		Location: "Atlántida",
		Weight:   1.0,
	})
	require.ErrorIs(t, err, common.ErrUnknownReference)
	require.Contains(t, err.Error(), "Atlántida")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRecord_InvalidWeight(t *testing.T) {
	svc, _, cleanup := setupWasteService(t)
	defer cleanup()

	for _, weight := range []float64{0, -3.5} {
		_, err := svc.CreateRecord(context.Background(), CreateRecordRequest{
			Type:     "Vidrio",
			Location: "Spa",
			Weight:   weight,
		})
		require.ErrorIs(t, err, common.ErrValidation, "weight %v must be rejected", weight)
	}
}

func TestCreateRecord_MissingFields(t *testing.T) {
	svc, _, cleanup := setupWasteService(t)
	defer cleanup()

	_, err := svc.CreateRecord(context.Background(), CreateRecordRequest{Location: "Spa", Weight: 1})
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.CreateRecord(context.Background(), CreateRecordRequest{Type: "Vidrio", Weight: 1})
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestCreateRecord_BadDate(t *testing.T) {
	svc, _, cleanup := setupWasteService(t)
	defer cleanup()

	_, err := svc.CreateRecord(context.Background(), CreateRecordRequest{
		Type: "Vidrio", Location: "Spa", Weight: 1, Date: "31/08/2026",
	})
	require.ErrorIs(t, err, common.ErrValidation)

	// A time without a date has nothing to anchor to.
	_, err = svc.CreateRecord(context.Background(), CreateRecordRequest{
		Type: "Vidrio", Location: "Spa", Weight: 1, Time: "14:45",
	})
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestListRecords_Passthrough(t *testing.T) {
	svc, mock, cleanup := setupWasteService(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id_registro", "nombre", "nombre", "peso_kg", "date", "time", "notas"}).
		AddRow(int64(2), "Vidrio", "Spa", 12.5, "2026-08-31", "10:30", "").
		AddRow(int64(1), "Cartón", "Almacén", 4.2, "2026-08-30", "18:05", "")
	mock.ExpectQuery(`SELECT r\.id_registro`).WillReturnRows(rows)

	records, err := svc.ListRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.GreaterOrEqual(t, records[0].Date+" "+records[0].Time, records[1].Date+" "+records[1].Time)
}
