package queries

//go:generate mockgen -source=invoice.go -destination=../../../tests/mock/queries/invoice_mock.go -package=mock_queries

import (
	"context"
	"log/slog"
	"sort"

	"equipment-rental/internal/domain/order"
	"equipment-rental/internal/domain/pricing"
	"equipment-rental/internal/infra"
	"equipment-rental/internal/pkg/errs"
	"equipment-rental/internal/pkg/tracing"
	"equipment-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// OrderIDPeeker is satisfied by the order sequencer.
type OrderIDPeeker interface {
	PeekOrderID(ctx context.Context) (uuid.UUID, error)
}

type InvoiceQueries interface {
	GetInvoice(ctx context.Context, orderID uuid.UUID) (*InvoiceView, error)
	// GetAllInvoices skips orders without lines and sorts by title.
	GetAllInvoices(ctx context.Context) ([]InvoiceView, error)
	// GetLastInvoice returns zero or one invoice for the most recent order.
	GetLastInvoice(ctx context.Context) ([]InvoiceView, error)
}

type invoiceQueriesImpl struct {
	uow    shared.UnitOfWork
	calc   pricing.PriceCalculator
	peeker OrderIDPeeker
	logger *slog.Logger
}

func NewInvoiceQueries(uow shared.UnitOfWork, calc pricing.PriceCalculator, peeker OrderIDPeeker, logger *slog.Logger) InvoiceQueries {
	return &invoiceQueriesImpl{uow: uow, calc: calc, peeker: peeker, logger: logger}
}

func (q *invoiceQueriesImpl) GetInvoice(ctx context.Context, orderID uuid.UUID) (*InvoiceView, error) {
	var view *InvoiceView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().Get(ctx, orderID)
		if err != nil {
			return err
		}
		view = q.toView(o)
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound(errs.ErrOrderNotFound)
		}
		return nil, shared.StoreErr(err)
	}
	return view, nil
}

func (q *invoiceQueriesImpl) GetAllInvoices(ctx context.Context) ([]InvoiceView, error) {
	views := []InvoiceView{}
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		orders, err := tx.Orders().List(ctx)
		if err != nil {
			return err
		}
		for _, o := range orders {
			if o.Len() == 0 {
				continue
			}
			views = append(views, *q.toView(o))
		}
		return nil
	})
	if err != nil {
		return nil, shared.StoreErr(err)
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Invoice.Title < views[j].Invoice.Title
	})
	return views, nil
}

func (q *invoiceQueriesImpl) GetLastInvoice(ctx context.Context) (views []InvoiceView, err error) {
	ctx, span := tracing.Start(ctx, "Invoices.GetLastInvoice")
	defer func() { tracing.End(span, err) }()

	views = []InvoiceView{}

	var count int
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		count, derr = tx.Orders().Count(ctx)
		return derr
	})
	if err != nil {
		return nil, shared.StoreErr(err)
	}
	if count == 0 {
		return views, nil
	}

	orderID, err := q.peeker.PeekOrderID(ctx)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("order.id", orderID.String()))

	view, err := q.GetInvoice(ctx, orderID)
	if err != nil {
		if errs.Is(err, errs.ErrOrderNotFound) {
			q.logger.ErrorContext(ctx, "last order pointer refers to a missing order",
				slog.String("order_id", orderID.String()))
			return views, nil
		}
		return nil, err
	}
	return append(views, *view), nil
}

func (q *invoiceQueriesImpl) toView(o *order.Order) *InvoiceView {
	return &InvoiceView{
		OrderID: o.ID(),
		Invoice: pricing.BuildInvoice(q.calc, o.Entries()),
	}
}
