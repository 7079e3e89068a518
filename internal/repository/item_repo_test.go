package repository

import (
	"context"
	"testing"

	"lostlinked/internal/model"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemRepository_Create_Lost(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewItemRepository(mock)

	item := &model.Item{
		ItemName:        "wallet",
		Description:     "black leather wallet",
		Category:        "accessories",
		EventDate:       "2026-08-30",
		Location:        "central station",
		ReporterName:    "Jordan Lee",
		ReporterContact: "jordan@example.com",
		Status:          model.StatusActive,
	}

	mock.ExpectQuery(`INSERT INTO lost_items`).
		WithArgs("wallet", "black leather wallet", "accessories", "2026-08-30",
			"central station", "Jordan Lee", "jordan@example.com", "active").
		WillReturnRows(pgxmock.NewRows([]string{"lost_id"}).AddRow(int64(42)))

	err = repo.Create(context.Background(), model.KindLost, item)
	require.NoError(t, err)
	assert.Equal(t, int64(42), item.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_Create_Found(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewItemRepository(mock)

	item := &model.Item{
		ItemName:        "umbrella",
		Description:     "red umbrella",
		Category:        "misc",
		EventDate:       "2026-08-31",
		Location:        "park entrance",
		ReporterName:    "Sam Ortiz",
		ReporterContact: "sam@example.com",
		Status:          model.StatusActive,
	}

	mock.ExpectQuery(`INSERT INTO found_items`).
		WithArgs("umbrella", "red umbrella", "misc", "2026-08-31",
			"park entrance", "Sam Ortiz", "sam@example.com", "active").
		WillReturnRows(pgxmock.NewRows([]string{"found_id"}).AddRow(int64(7)))

	err = repo.Create(context.Background(), model.KindFound, item)
	require.NoError(t, err)
	assert.Equal(t, int64(7), item.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_FindAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewItemRepository(mock)

	rows := pgxmock.NewRows([]string{
		"lost_id", "item_name", "description", "category",
		"lost_date", "location", "owner_name", "owner_contact", "status",
	}).
		AddRow(int64(2), "umbrella", "red umbrella", "misc",
			"2026-08-31", "park entrance", "Sam Ortiz", "sam@example.com", "active").
		AddRow(int64(1), "wallet", "black leather wallet", "accessories",
			"2026-08-30", "central station", "Jordan Lee", "jordan@example.com", "active")

	mock.ExpectQuery(`SELECT lost_id, item_name, description, category, lost_date, location, owner_name, owner_contact, status`).
		WillReturnRows(rows)

	items, err := repo.FindAll(context.Background(), model.KindLost)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].ID)
	assert.Equal(t, "umbrella", items[0].ItemName)
	assert.Equal(t, int64(1), items[1].ID)
	assert.Equal(t, "wallet", items[1].ItemName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_FindAll_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewItemRepository(mock)

	mock.ExpectQuery(`SELECT found_id, item_name`).
		WillReturnRows(pgxmock.NewRows([]string{
			"found_id", "item_name", "description", "category",
			"found_date", "location", "finder_name", "finder_contact", "status",
		}))

	items, err := repo.FindAll(context.Background(), model.KindFound)
	assert.NoError(t, err)
	assert.Empty(t, items)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewItemRepository(mock)

	mock.ExpectExec(`DELETE FROM lost_items`).
		WithArgs(int64(42)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	deleted, err := repo.Delete(context.Background(), model.KindLost, 42)
	assert.NoError(t, err)
	assert.True(t, deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_Delete_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewItemRepository(mock)

	mock.ExpectExec(`DELETE FROM found_items`).
		WithArgs(int64(999)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err := repo.Delete(context.Background(), model.KindFound, 999)
	assert.NoError(t, err)
	assert.False(t, deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_UnsupportedKind(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewItemRepository(mock)

	err = repo.Create(context.Background(), model.Kind("stolen"), &model.Item{})
	assert.Error(t, err)

	_, err = repo.FindAll(context.Background(), model.Kind("stolen"))
	assert.Error(t, err)

	_, err = repo.Delete(context.Background(), model.Kind("stolen"), 1)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
