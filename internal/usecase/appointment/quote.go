package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/estetica-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/estetica-scheduler/internal/dto"
	"github.com/BruksfildServices01/estetica-scheduler/internal/models"
)

type Quote struct {
	repo domain.Repository
}

func NewQuote(repo domain.Repository) *Quote {
	return &Quote{repo: repo}
}

// Execute sums duration and price of the chosen zones. Unknown combinations
// quote as zero rather than failing.
func (uc *Quote) Execute(
	ctx context.Context,
	serviceType string,
	zones []string,
) (dto.QuoteDTO, error) {

	items, err := uc.repo.ListServices(ctx)
	if err != nil {
		return dto.QuoteDTO{}, err
	}

	zones = catalog.NormalizeZones(zones)
	minutes, price := catalog.ComputeDurationAndPrice(ToEntries(items), serviceType, zones)

	return dto.QuoteDTO{
		ServiceType:     serviceType,
		Zones:           zones,
		DurationMinutes: minutes,
		Price:           price,
		PriceLabel:      catalog.FormatARS(price),
	}, nil
}

func ToEntries(items []models.ServiceItem) []catalog.Entry {
	out := make([]catalog.Entry, 0, len(items))
	for _, it := range items {
		out = append(out, catalog.Entry{
			ServiceType:     it.Type,
			Zone:            it.Zone,
			DurationMinutes: it.DurationMin,
			Price:           it.Price,
		})
	}
	return out
}
