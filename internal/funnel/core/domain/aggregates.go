package domain

import (
	"bytes"
	"encoding/json"
)

// Aggregates is the full result of one computation pass.
type Aggregates struct {
	TotalRecords int              `json:"totalRecords"`
	PeriodMode   PeriodMode       `json:"periodMode"`
	Deliveries   []DeliveryRow    `json:"deliveries"`
	Latency      LatencyReport    `json:"latency"`
	Conversion   ConversionReport `json:"conversion"`
}

// DeliveryRow counts outbound tagged messages of one period.
type DeliveryRow struct {
	Period      string `json:"period"`
	Label       string `json:"label"`
	StartCount  int    `json:"startCount"`
	SecondCount int    `json:"secondCount"`
	FinalCount  int    `json:"finalCount"`
	LeadsCount  int    `json:"leadsCount"`
}

type LatencyStats struct {
	SampleCount     int    `json:"sampleCount"`
	MeanMinutes     int    `json:"meanMinutes"`
	MedianMinutes   int    `json:"medianMinutes"`
	MeanFormatted   string `json:"meanFormatted"`
	MedianFormatted string `json:"medianFormatted"`
}

// LatencyReport is keyed by transition name. A nil entry means no samples.
type LatencyReport map[string]*LatencyStats

// TagConversion is the send/reply tally of one tag or of a whole category.
// Rate is a percentage with one decimal, nil when nothing was sent.
type TagConversion struct {
	Sent      int      `json:"sent"`
	Converted int      `json:"converted"`
	Rate      *float64 `json:"rate"`
}

type ConversionReport struct {
	Category      Category                 `json:"category"`
	Tags          []string                 `json:"tags"`
	SeriesTags    []string                 `json:"seriesTags"`
	ByTag         map[string]TagConversion `json:"byTag"`
	CategoryTotal TagConversion            `json:"categoryTotal"`
	Series        []ConversionRow          `json:"series"`
}

// ConversionRow holds the integer percentage of every series tag in one
// period. A nil rate means the tag was not sent in that period.
type ConversionRow struct {
	Period string
	Label  string
	Tags   []string
	Rates  map[string]*int
}

// Rate returns the cell for tag, nil when absent.
func (r ConversionRow) Rate(tag string) *int {
	return r.Rates[tag]
}

// MarshalJSON flattens the row into {"period", "label", "<tag>": percent|null, ...}
// with tags in series order.
func (r ConversionRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"period":`)
	if err := writeJSON(&buf, r.Period); err != nil {
		return nil, err
	}
	buf.WriteString(`,"label":`)
	if err := writeJSON(&buf, r.Label); err != nil {
		return nil, err
	}
	for _, tag := range r.Tags {
		if tag == "period" || tag == "label" {
			continue
		}
		buf.WriteByte(',')
		if err := writeJSON(&buf, tag); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSON(&buf, r.Rates[tag]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
