package analytics

import (
	"slices"
	"strings"

	"conversation-funnel-service/internal/funnel/core/domain"
)

// Deliveries counts outbound tagged messages per period and funnel category,
// plus lead-created closings. Every outbound tagged message opens its period
// row, even when its tag belongs to no funnel category. Periods without such
// messages are absent.
func Deliveries(events []domain.Event, k PeriodKeyer) []domain.DeliveryRow {
	rows := make(map[string]*domain.DeliveryRow)

	for _, e := range events {
		if !e.IsOutbound() || e.Tag == "" {
			continue
		}
		key, ok := k.KeyOf(e.Timestamp)
		if !ok {
			continue
		}

		row, ok := rows[key]
		if !ok {
			row = &domain.DeliveryRow{Period: key}
			rows[key] = row
		}

		switch domain.CategoryOf(e.Tag) {
		case domain.CategoryStart:
			row.StartCount++
		case domain.CategorySecond:
			row.SecondCount++
		case domain.CategoryFinal:
			row.FinalCount++
		}
		if e.Tag == domain.TagLeadCreated {
			row.LeadsCount++
		}
	}

	out := make([]domain.DeliveryRow, 0, len(rows))
	for _, row := range rows {
		row.Label = k.Label(row.Period)
		out = append(out, *row)
	}
	slices.SortFunc(out, func(a, b domain.DeliveryRow) int {
		return strings.Compare(a.Period, b.Period)
	})
	return out
}
