package fiber

import "conversation-funnel-service/internal/funnel/core/domain"

type DeliveryRowResponse struct {
	Period      string `json:"period" example:"2025-01-06"`
	Label       string `json:"label" example:"06 ene"`
	StartCount  int    `json:"startCount"`
	SecondCount int    `json:"secondCount"`
	FinalCount  int    `json:"finalCount"`
	LeadsCount  int    `json:"leadsCount"`
}

type LatencyStatsResponse struct {
	SampleCount     int    `json:"sampleCount"`
	MeanMinutes     int    `json:"meanMinutes"`
	MedianMinutes   int    `json:"medianMinutes"`
	MeanFormatted   string `json:"meanFormatted" example:"1h 5m"`
	MedianFormatted string `json:"medianFormatted" example:"48m"`
}

type TagConversionResponse struct {
	Sent      int      `json:"sent"`
	Converted int      `json:"converted"`
	Rate      *float64 `json:"rate" example:"33.3"`
}

// ConversionResponse series rows are flattened: {"period", "label", "<tag>": percent|null}.
type ConversionResponse struct {
	Category      string                           `json:"category" example:"start"`
	Tags          []string                         `json:"tags"`
	SeriesTags    []string                         `json:"seriesTags"`
	ByTag         map[string]TagConversionResponse `json:"byTag"`
	CategoryTotal TagConversionResponse            `json:"categoryTotal"`
	Series        []domain.ConversionRow           `json:"series" swaggertype:"array,object"`
}

type DeliveriesResponse struct {
	GroupBy    string                `json:"groupBy"`
	Deliveries []DeliveryRowResponse `json:"deliveries"`
}

type LatencyResponse struct {
	Latency map[string]*LatencyStatsResponse `json:"latency"`
}

type AggregatesResponse struct {
	TotalRecords int                              `json:"totalRecords"`
	GroupBy      string                           `json:"groupBy"`
	Deliveries   []DeliveryRowResponse            `json:"deliveries"`
	Latency      map[string]*LatencyStatsResponse `json:"latency"`
	Conversion   ConversionResponse               `json:"conversion"`
}

type TagResponse struct {
	Tag        string `json:"tag" example:"startMessage_A"`
	Label      string `json:"label" example:"Start A"`
	Category   string `json:"category" example:"start"`
	Conversion bool   `json:"conversion"`
}

type TagsResponse struct {
	Categories map[string]string `json:"categories"`
	Tags       []TagResponse     `json:"tags"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid date range"`
}

func toDeliveries(rows []domain.DeliveryRow) []DeliveryRowResponse {
	out := make([]DeliveryRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, DeliveryRowResponse{
			Period:      r.Period,
			Label:       r.Label,
			StartCount:  r.StartCount,
			SecondCount: r.SecondCount,
			FinalCount:  r.FinalCount,
			LeadsCount:  r.LeadsCount,
		})
	}
	return out
}

func toLatency(report domain.LatencyReport) map[string]*LatencyStatsResponse {
	out := make(map[string]*LatencyStatsResponse, len(report))
	for name, s := range report {
		if s == nil {
			out[name] = nil
			continue
		}
		out[name] = &LatencyStatsResponse{
			SampleCount:     s.SampleCount,
			MeanMinutes:     s.MeanMinutes,
			MedianMinutes:   s.MedianMinutes,
			MeanFormatted:   s.MeanFormatted,
			MedianFormatted: s.MedianFormatted,
		}
	}
	return out
}

func toTagConversion(c domain.TagConversion) TagConversionResponse {
	return TagConversionResponse{Sent: c.Sent, Converted: c.Converted, Rate: c.Rate}
}

func toConversion(r domain.ConversionReport) ConversionResponse {
	byTag := make(map[string]TagConversionResponse, len(r.ByTag))
	for tag, c := range r.ByTag {
		byTag[tag] = toTagConversion(c)
	}

	series := r.Series
	if series == nil {
		series = []domain.ConversionRow{}
	}

	return ConversionResponse{
		Category:      string(r.Category),
		Tags:          r.Tags,
		SeriesTags:    r.SeriesTags,
		ByTag:         byTag,
		CategoryTotal: toTagConversion(r.CategoryTotal),
		Series:        series,
	}
}

func toTags() TagsResponse {
	resp := TagsResponse{Categories: map[string]string{}}

	conversion := map[string]bool{}
	for _, cat := range domain.FunnelCategories {
		resp.Categories[string(cat)] = domain.CategoryLabel(cat)
		for _, tag := range domain.ConversionTags(cat) {
			conversion[tag] = true
		}
	}

	for _, tag := range domain.AllTags() {
		resp.Tags = append(resp.Tags, TagResponse{
			Tag:        tag,
			Label:      domain.TagLabel(tag),
			Category:   string(domain.CategoryOf(tag)),
			Conversion: conversion[tag],
		})
	}
	return resp
}
