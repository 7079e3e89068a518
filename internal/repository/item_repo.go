package repository

import (
	"context"
	"fmt"

	"lostlinked/internal/model"
)

// tableSpec pins the table and column names for one item kind. All names
// are compile-time constants keyed by the closed Kind enum; nothing
// request-derived is ever interpolated into SQL text.
type tableSpec struct {
	table      string
	idCol      string
	dateCol    string
	nameCol    string
	contactCol string
}

var itemTables = map[model.Kind]tableSpec{
	model.KindLost: {
		table:      "lost_items",
		idCol:      "lost_id",
		dateCol:    "lost_date",
		nameCol:    "owner_name",
		contactCol: "owner_contact",
	},
	model.KindFound: {
		table:      "found_items",
		idCol:      "found_id",
		dateCol:    "found_date",
		nameCol:    "finder_name",
		contactCol: "finder_contact",
	},
}

func specFor(kind model.Kind) (tableSpec, error) {
	t, ok := itemTables[kind]
	if !ok {
		return tableSpec{}, fmt.Errorf("unsupported item kind %q", kind)
	}
	return t, nil
}

// ItemRepository defines operations for lost and found item data
type ItemRepository interface {
	Create(ctx context.Context, kind model.Kind, item *model.Item) error
	FindAll(ctx context.Context, kind model.Kind) ([]model.Item, error)
	Delete(ctx context.Context, kind model.Kind, id int64) (bool, error)
}

type itemRepository struct {
	db DB
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db DB) ItemRepository {
	return &itemRepository{db: db}
}

// Create inserts a new item and fills in its assigned id
func (r *itemRepository) Create(ctx context.Context, kind model.Kind, item *model.Item) error {
	t, err := specFor(kind)
	if err != nil {
		return err
	}
	sql := fmt.Sprintf(`INSERT INTO %s (item_name, description, category, %s, location, %s, %s, status)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING %s`,
		t.table, t.dateCol, t.nameCol, t.contactCol, t.idCol)
	err = r.db.QueryRow(ctx, sql,
		item.ItemName, item.Description, item.Category, item.EventDate,
		item.Location, item.ReporterName, item.ReporterContact, item.Status,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to create %s item: %w", kind, err)
	}
	return nil
}

// FindAll retrieves all items of the given kind, newest id first
func (r *itemRepository) FindAll(ctx context.Context, kind model.Kind) ([]model.Item, error) {
	t, err := specFor(kind)
	if err != nil {
		return nil, err
	}
	sql := fmt.Sprintf(`SELECT %s, item_name, description, category, %s, location, %s, %s, status
            FROM %s ORDER BY %s DESC`,
		t.idCol, t.dateCol, t.nameCol, t.contactCol, t.table, t.idCol)

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s items: %w", kind, err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(
			&it.ID, &it.ItemName, &it.Description, &it.Category,
			&it.EventDate, &it.Location, &it.ReporterName, &it.ReporterContact, &it.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan %s item row: %w", kind, err)
		}
		items = append(items, it)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s item rows: %w", kind, err)
	}
	return items, nil
}

// Delete removes the item with the given id. The second return value
// reports whether a row was actually deleted.
func (r *itemRepository) Delete(ctx context.Context, kind model.Kind, id int64) (bool, error) {
	t, err := specFor(kind)
	if err != nil {
		return false, err
	}
	sql := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.table, t.idCol)
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete %s item: %w", kind, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
