package converter

import (
	"fmt"
	"math"

	"equipment-rental/internal/domain/basket"
	"equipment-rental/internal/domain/equipment"
	"equipment-rental/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// EntryRow mirrors the columns shared by basket_entries and order_lines.
type EntryRow struct {
	ID        pgtype.UUID
	Name      string
	Days      int32
	Class     string
	CreatedAt pgtype.Timestamptz
}

func EntryToRow(e basket.Entry) EntryRow {
	if e.Days > math.MaxInt32 || e.Days < math.MinInt32 {
		panic(fmt.Sprintf("rental days out of int32 range: %d", e.Days))
	}
	return EntryRow{
		ID:        pgconv.UUIDToPgtype(e.ID),
		Name:      e.Name,
		Days:      int32(e.Days),
		Class:     e.Class.String(),
		CreatedAt: pgconv.TimeToPgtype(e.CreatedAt),
	}
}

func EntryFromRow(row EntryRow) basket.Entry {
	id, _ := pgconv.UUIDFromPgtype(row.ID)
	return basket.Entry{
		ID:        id,
		Name:      row.Name,
		Days:      int(row.Days),
		Class:     equipment.Class(row.Class),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

// ScanTargets lets pgx scan a row straight into the struct.
func (r *EntryRow) ScanTargets() []any {
	return []any{&r.ID, &r.Name, &r.Days, &r.Class, &r.CreatedAt}
}
