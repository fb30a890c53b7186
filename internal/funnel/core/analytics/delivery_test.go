package analytics_test

import (
	"testing"
	"time"

	"conversation-funnel-service/internal/funnel/core/analytics"
	"conversation-funnel-service/internal/funnel/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func dayKeyer() analytics.PeriodKeyer {
	return analytics.NewPeriodKeyer(domain.PeriodDay, time.UTC, language.Spanish)
}

func TestDeliveries_CountsPerCategory(t *testing.T) {
	events := []domain.Event{
		out("a", day, domain.TagSecondA),
		out("a", 0, domain.TagStartA),
		out("b", 0, domain.TagStartB),
		out("b", 1*mins, domain.TagSecondFollowUp),
		out("b", 2*mins, domain.TagFinalC),
		out("b", 3*mins, domain.TagLeadCreated),
		out("c", 0, domain.TagNotInterested),
		in("a", 5*mins),
		out("a", 6*mins, ""),
		{UserID: "", Timestamp: at(7 * mins), Direction: domain.DirectionOutbound, Tag: domain.TagStartC},
	}

	rows := analytics.Deliveries(events, dayKeyer())

	require.Len(t, rows, 2)
	assert.Equal(t, domain.DeliveryRow{
		Period:      "2025-01-06",
		Label:       "06 ene",
		StartCount:  3,
		SecondCount: 1,
		FinalCount:  1,
		LeadsCount:  1,
	}, rows[0])
	assert.Equal(t, domain.DeliveryRow{
		Period:      "2025-01-07",
		Label:       "07 ene",
		SecondCount: 1,
	}, rows[1])
}

func TestDeliveries_UncategorisedTagStillOpensPeriod(t *testing.T) {
	rows := analytics.Deliveries([]domain.Event{out("a", 0, domain.TagPhoneFollowUp)}, dayKeyer())

	require.Len(t, rows, 1)
	assert.Equal(t, "2025-01-06", rows[0].Period)
	assert.Zero(t, rows[0].StartCount+rows[0].SecondCount+rows[0].FinalCount+rows[0].LeadsCount)
}

func TestDeliveries_PeriodWithoutOutboundTaggedIsAbsent(t *testing.T) {
	events := []domain.Event{
		out("a", 0, domain.TagStartA),
		in("a", day),
		out("a", day+time.Hour, ""),
		out("a", 2*day, domain.TagSecondA),
	}

	rows := analytics.Deliveries(events, dayKeyer())

	require.Len(t, rows, 2)
	assert.Equal(t, "2025-01-06", rows[0].Period)
	assert.Equal(t, "2025-01-08", rows[1].Period)
}

func TestDeliveries_SkipsMalformedTimestamps(t *testing.T) {
	events := []domain.Event{
		{UserID: "a", Timestamp: "31/12/2024", Direction: domain.DirectionOutbound, Tag: domain.TagStartA},
		out("a", 0, domain.TagStartA),
	}

	rows := analytics.Deliveries(events, dayKeyer())

	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].StartCount)
}

func TestDeliveries_WeekAndMonth(t *testing.T) {
	events := []domain.Event{
		out("a", 0, domain.TagStartA),      // Mon 6 Jan
		out("a", 6*day, domain.TagStartB),  // Sun 12 Jan
		out("a", 7*day, domain.TagStartC),  // Mon 13 Jan
		out("a", 30*day, domain.TagFinalA), // Wed 5 Feb
	}

	weeks := analytics.Deliveries(events, analytics.NewPeriodKeyer(domain.PeriodWeek, time.UTC, language.English))
	require.Len(t, weeks, 3)
	assert.Equal(t, "2025-01-06", weeks[0].Period)
	assert.Equal(t, 2, weeks[0].StartCount)
	assert.Equal(t, "Wk 06 Jan", weeks[0].Label)
	assert.Equal(t, "2025-01-13", weeks[1].Period)
	assert.Equal(t, "2025-02-03", weeks[2].Period)

	months := analytics.Deliveries(events, analytics.NewPeriodKeyer(domain.PeriodMonth, time.UTC, language.Spanish))
	require.Len(t, months, 2)
	assert.Equal(t, "2025-01", months[0].Period)
	assert.Equal(t, 3, months[0].StartCount)
	assert.Equal(t, "ene 2025", months[0].Label)
	assert.Equal(t, 1, months[1].FinalCount)
}

func TestDeliveries_Empty(t *testing.T) {
	rows := analytics.Deliveries(nil, dayKeyer())
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
