package commands

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/commands/catalog_mock.go -package=mock_commands

import (
	"bufio"
	"context"
	"io"
	"log/slog"

	"equipment-rental/internal/domain/equipment"
	"equipment-rental/internal/pkg/errs"
	"equipment-rental/internal/pkg/metrics"
	"equipment-rental/internal/pkg/tracing"
	"equipment-rental/internal/usecase/shared"

	"go.opentelemetry.io/otel/attribute"
)

var ErrCatalogRead = errs.New("failed to read catalog")

type LoadCatalogResult struct {
	Loaded  int
	Skipped int
}

type CatalogCommands interface {
	// LoadCatalogLine applies one "name, class, count" line. Malformed lines
	// are skipped and reported as false with a nil error.
	LoadCatalogLine(ctx context.Context, raw string) (bool, error)
	// LoadCatalog applies every valid line of r in a single transaction.
	LoadCatalog(ctx context.Context, r io.Reader) (*LoadCatalogResult, error)
}

type catalogUseCaseImpl struct {
	uow     shared.UnitOfWork
	metrics *metrics.Recorder
	logger  *slog.Logger
}

func NewCatalogUseCase(uow shared.UnitOfWork, m *metrics.Recorder, logger *slog.Logger) CatalogCommands {
	return &catalogUseCaseImpl{uow: uow, metrics: m, logger: logger}
}

func (uc *catalogUseCaseImpl) LoadCatalogLine(ctx context.Context, raw string) (bool, error) {
	item, err := equipment.ParseCatalogLine(raw)
	if err != nil {
		uc.logger.WarnContext(ctx, "catalog line skipped", slog.String("line", raw), slog.String("reason", err.Error()))
		uc.metrics.CatalogLines(0, 1)
		return false, nil
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Catalog().Put(ctx, item)
	})
	if err != nil {
		return false, shared.StoreErr(err)
	}
	uc.metrics.CatalogLines(1, 0)
	return true, nil
}

func (uc *catalogUseCaseImpl) LoadCatalog(ctx context.Context, r io.Reader) (result *LoadCatalogResult, err error) {
	ctx, span := tracing.Start(ctx, "Catalog.LoadCatalog")
	defer func() { tracing.End(span, err) }()

	result = &LoadCatalogResult{}
	var items []*equipment.Item

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		item, perr := equipment.ParseCatalogLine(scanner.Text())
		if perr != nil {
			uc.logger.WarnContext(ctx, "catalog line skipped",
				slog.Int("line_no", lineNo),
				slog.String("reason", perr.Error()))
			result.Skipped++
			continue
		}
		items = append(items, item)
	}
	if err = scanner.Err(); err != nil {
		return nil, errs.Mark(err, ErrCatalogRead)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, item := range items {
			if derr := tx.Catalog().Put(ctx, item); derr != nil {
				return derr
			}
		}
		return nil
	})
	if err != nil {
		return nil, shared.StoreErr(err)
	}

	result.Loaded = len(items)
	uc.metrics.CatalogLines(result.Loaded, result.Skipped)
	span.SetAttributes(attribute.Int("catalog.loaded", result.Loaded), attribute.Int("catalog.skipped", result.Skipped))
	uc.logger.InfoContext(ctx, "catalog loaded",
		slog.Int("loaded", result.Loaded),
		slog.Int("skipped", result.Skipped))
	return result, nil
}
