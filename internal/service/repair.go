package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/catalog"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/model"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/metrics"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/pricing"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/repository"
)

// defaultRepairBatchSize bounds one repair pass over the collection.
const defaultRepairBatchSize = 100

// RepairReport summarizes one snapshot repair run.
type RepairReport struct {
	// Scanned is how many snapshot-less orders the run examined.
	Scanned int `json:"scanned"`
	// Repaired is how many orders received a backfilled snapshot.
	Repaired int `json:"repaired"`
	// Skipped counts orders another writer repaired between read and write.
	Skipped int `json:"skipped"`
	// Failed counts orders whose write errored; they stay eligible for the
	// next run.
	Failed int `json:"failed"`
	// PinnedVersion is the catalog version of the table prices came from.
	PinnedVersion string `json:"pinned_version"`
}

// SnapshotRepairService backfills pricing snapshots onto legacy orders
// created before snapshotting existed. Prices come from a pinned historical
// table, never the live catalog: the goal is to freeze what the customer was
// actually charged back then.
type SnapshotRepairService interface {
	// Repair runs one pass over orders lacking a snapshot. Safe to re-run;
	// a second pass finds nothing left to touch.
	Repair(ctx context.Context, batchSize int) (RepairReport, error)
}

// SnapshotRepairServiceImpl implements SnapshotRepairService.
type SnapshotRepairServiceImpl struct {
	repo  repository.OrdersRepositoryInterface
	table model.PriceSnapshot
	audit AuditService
}

// NewSnapshotRepairService creates a repair service using the given pinned
// price table.
func NewSnapshotRepairService(repo repository.OrdersRepositoryInterface, table model.PriceSnapshot, audit AuditService) *SnapshotRepairServiceImpl {
	return &SnapshotRepairServiceImpl{
		repo:  repo,
		table: table,
		audit: audit,
	}
}

// Repair runs one pass over orders lacking a snapshot.
//
// Each order is read, priced field by field against the pinned table, and
// written back with a conditional update that only matches while the
// snapshot is still absent. A concurrent repair of the same order loses the
// race harmlessly and is counted as skipped.
func (s *SnapshotRepairServiceImpl) Repair(ctx context.Context, batchSize int) (RepairReport, error) {
	if batchSize <= 0 {
		batchSize = defaultRepairBatchSize
	}

	report := RepairReport{PinnedVersion: s.table.CatalogVersion}
	filter := repository.OrderFilter{MissingSnapshot: true}

	for {
		orders, err := s.repo.Find(ctx, filter, batchSize, 0)
		if err != nil {
			return report, fmt.Errorf("failed to find orders needing repair: %w", err)
		}
		if len(orders) == 0 {
			break
		}

		progressed := false
		for i := range orders {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			o := &orders[i]
			report.Scanned++

			repaired, err := s.repairOne(ctx, o)
			switch {
			case err != nil:
				report.Failed++
				log.Error().Err(err).Str("order_id", o.ID.Hex()).
					Msg("Snapshot repair failed for order")
			case repaired:
				report.Repaired++
				progressed = true
			default:
				report.Skipped++
				progressed = true
			}
		}

		// Orders that keep failing would match the filter forever; stop
		// rather than loop on them.
		if !progressed {
			break
		}
		if len(orders) < batchSize {
			break
		}
	}

	metrics.RecordSnapshotRepair(report.Repaired, report.Failed)
	s.recordRun(ctx, report)
	return report, nil
}

// repairOne backfills one order from the pinned table.
func (s *SnapshotRepairServiceImpl) repairOne(ctx context.Context, o *model.Order) (bool, error) {
	itemPrices := make(map[string]model.Money)
	for key, value := range o.Selections {
		if !catalog.IsSelected(value) {
			continue
		}
		price := pricing.PriceFromTable(s.table.Prices, key, value)
		if price == 0 {
			// Zero-priced or unknown under the pinned table; only record
			// keys the table actually prices.
			continue
		}
		itemPrices[key] = price
	}

	return s.repo.SetSnapshot(ctx, o.ID, itemPrices, s.table)
}

func (s *SnapshotRepairServiceImpl) recordRun(ctx context.Context, report RepairReport) {
	if s.audit == nil {
		return
	}
	entry := &model.AuditEntry{
		Level:      "info",
		Message:    model.ActionSnapshotRepair,
		ActionType: model.ActionSnapshotRepair,
		Fields: map[string]interface{}{
			"scanned":        report.Scanned,
			"repaired":       report.Repaired,
			"skipped":        report.Skipped,
			"failed":         report.Failed,
			"pinned_version": report.PinnedVersion,
		},
	}
	if err := s.audit.RecordEntry(ctx, entry); err != nil {
		log.Warn().Err(err).Msg("Failed to write snapshot repair audit entry")
	}
}
