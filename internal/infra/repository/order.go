package repository

import (
	"context"

	"equipment-rental/internal/domain/basket"
	"equipment-rental/internal/domain/order"
	"equipment-rental/internal/infra/repository/converter"
	"equipment-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertOrderSQL     = `INSERT INTO orders (id, created_at) VALUES ($1, $2)`
	insertOrderLineSQL = `
INSERT INTO order_lines (order_id, position, reservation_id, name, days, class, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	getOrderSQL    = `SELECT created_at FROM orders WHERE id = $1`
	listOrdersSQL  = `SELECT id, created_at FROM orders ORDER BY seq`
	countOrdersSQL = `SELECT count(*) FROM orders`
	orderLinesSQL  = `
SELECT order_id, reservation_id, name, days, class, created_at
FROM order_lines
ORDER BY order_id, position`
	orderLinesByIDSQL = `
SELECT reservation_id, name, days, class, created_at
FROM order_lines
WHERE order_id = $1
ORDER BY position`
)

type OrderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	orderID := pgconv.UUIDToPgtype(o.ID())
	if _, err := r.db.Exec(ctx, insertOrderSQL, orderID, pgconv.TimeToPgtype(o.CreatedAt())); err != nil {
		return wrapPgErr("failed to insert order", err)
	}

	entries := o.Entries()
	if len(entries) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i, e := range entries {
		row := converter.EntryToRow(e)
		batch.Queue(insertOrderLineSQL, orderID, i, row.ID, row.Name, row.Days, row.Class, row.CreatedAt)
	}
	if err := r.sendBatch(ctx, batch); err != nil {
		return wrapPgErr("failed to insert order lines", err)
	}
	return nil
}

func (r *OrderRepository) Get(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var createdAt pgtype.Timestamptz
	if err := r.db.QueryRow(ctx, getOrderSQL, pgconv.UUIDToPgtype(id)).Scan(&createdAt); err != nil {
		return nil, wrapPgErr("failed to get order", err)
	}

	rows, err := r.db.Query(ctx, orderLinesByIDSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, wrapPgErr("failed to get order lines", err)
	}
	defer rows.Close()

	var entries []basket.Entry
	for rows.Next() {
		var row converter.EntryRow
		if err := rows.Scan(row.ScanTargets()...); err != nil {
			return nil, wrapPgErr("failed to scan order line", err)
		}
		entries = append(entries, converter.EntryFromRow(row))
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to get order lines", err)
	}

	return order.NewOrder(id, entries, pgconv.TimeFromPgtype(createdAt)), nil
}

// List loads headers and lines with two queries and stitches them in memory.
func (r *OrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	type header struct {
		id        uuid.UUID
		createdAt pgtype.Timestamptz
	}

	rows, err := r.db.Query(ctx, listOrdersSQL)
	if err != nil {
		return nil, wrapPgErr("failed to list orders", err)
	}
	var headers []header
	for rows.Next() {
		var (
			id pgtype.UUID
			h  header
		)
		if err := rows.Scan(&id, &h.createdAt); err != nil {
			rows.Close()
			return nil, wrapPgErr("failed to scan order", err)
		}
		h.id, _ = pgconv.UUIDFromPgtype(id)
		headers = append(headers, h)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to list orders", err)
	}

	lineRows, err := r.db.Query(ctx, orderLinesSQL)
	if err != nil {
		return nil, wrapPgErr("failed to list order lines", err)
	}
	defer lineRows.Close()

	lines := map[uuid.UUID][]basket.Entry{}
	for lineRows.Next() {
		var (
			orderID pgtype.UUID
			row     converter.EntryRow
		)
		if err := lineRows.Scan(append([]any{&orderID}, row.ScanTargets()...)...); err != nil {
			return nil, wrapPgErr("failed to scan order line", err)
		}
		oid, _ := pgconv.UUIDFromPgtype(orderID)
		lines[oid] = append(lines[oid], converter.EntryFromRow(row))
	}
	if err := lineRows.Err(); err != nil {
		return nil, wrapPgErr("failed to list order lines", err)
	}

	out := make([]*order.Order, 0, len(headers))
	for _, h := range headers {
		out = append(out, order.NewOrder(h.id, lines[h.id], pgconv.TimeFromPgtype(h.createdAt)))
	}
	return out, nil
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var n int64
	if err := r.db.QueryRow(ctx, countOrdersSQL).Scan(&n); err != nil {
		return 0, wrapPgErr("failed to count orders", err)
	}
	return int(n), nil
}

type batchSender interface {
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

func (r *OrderRepository) sendBatch(ctx context.Context, batch *pgx.Batch) error {
	sender, ok := r.db.(batchSender)
	if !ok {
		for _, q := range batch.QueuedQueries {
			if _, err := r.db.Exec(ctx, q.SQL, q.Arguments...); err != nil {
				return err
			}
		}
		return nil
	}

	results := sender.SendBatch(ctx, batch)
	for range batch.QueuedQueries {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return err
		}
	}
	return results.Close()
}
