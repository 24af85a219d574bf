package ports

import (
	"context"

	"github.com/salonvale/salon-system/internal/core/domain"
	"github.com/salonvale/salon-system/internal/refcache"
)

// ReporteService derives the daily report for a date ("2006-01-02") from the
// stored collections. The returned cache indexes the full collections (not
// just the day's rows) so foreign keys in the filtered views resolve to
// labels, matching how the dashboard rendered them.
type ReporteService interface {
	Diario(ctx context.Context, fecha string) (*domain.ReporteDiario, *refcache.Cache, error)
}
