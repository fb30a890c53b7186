package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"conversation-funnel-service/internal/funnel/core/analytics"
	"conversation-funnel-service/internal/funnel/core/domain"

	"github.com/spf13/cobra"
)

type reportOptions struct {
	file       string
	groupBy    string
	category   string
	tags       []string
	seriesTags []string
	locale     string
	timezone   string
}

var reportOpts reportOptions

func init() {
	rootCmd.AddCommand(reportCmd)

	f := reportCmd.Flags()
	f.StringVarP(&reportOpts.file, "file", "f", "-", "JSON array of events, - reads stdin")
	f.StringVar(&reportOpts.groupBy, "group-by", "day", "period: day, week or month")
	f.StringVar(&reportOpts.category, "category", "start", "conversion category: start, second or final")
	f.StringSliceVar(&reportOpts.tags, "tags", nil, "tracked tags (default: the category's conversion tags)")
	f.StringSliceVar(&reportOpts.seriesTags, "series-tags", nil, "tags charted per period (default: first two tracked)")
	f.StringVar(&reportOpts.locale, "locale", "es", "label locale")
	f.StringVar(&reportOpts.timezone, "tz", "UTC", "zone periods are cut in")
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compute deliveries, latency and conversion from an events file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if reportOpts.file != "-" {
			f, err := os.Open(reportOpts.file)
			if err != nil {
				return fmt.Errorf("open events: %w", err)
			}
			defer f.Close()
			in = f
		}
		return runReport(in, cmd.OutOrStdout(), reportOpts)
	},
}

func runReport(r io.Reader, w io.Writer, opts reportOptions) error {
	params, err := opts.params()
	if err != nil {
		return err
	}

	events, err := decodeEvents(r)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(analytics.Compute(events, params))
}

func (o reportOptions) params() (analytics.Params, error) {
	loc, err := time.LoadLocation(o.timezone)
	if err != nil {
		return analytics.Params{}, fmt.Errorf("unknown timezone %q: %w", o.timezone, err)
	}

	cat, ok := domain.ParseCategory(o.category)
	if !ok {
		return analytics.Params{}, fmt.Errorf("unknown category %q", o.category)
	}

	for _, tag := range append(append([]string(nil), o.tags...), o.seriesTags...) {
		if !domain.IsKnownTag(tag) {
			return analytics.Params{}, fmt.Errorf("unknown tag %q", tag)
		}
	}

	return analytics.Params{
		PeriodMode: domain.ParsePeriodMode(strings.ToLower(o.groupBy)),
		Location:   loc,
		Locale:     domain.MatchLocale(o.locale),
		Conversion: analytics.ConversionParams{
			Category: cat,
			Tracked:  o.tags,
			Series:   o.seriesTags,
		},
	}, nil
}

// decodeEvents requires a top-level JSON array.
func decodeEvents(r io.Reader) ([]domain.Event, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, errors.New("read events: expected a JSON array")
	}

	var events []domain.Event
	for dec.More() {
		var e domain.Event
		if err := dec.Decode(&e); err != nil {
			return nil, fmt.Errorf("decode event %d: %w", len(events), err)
		}
		events = append(events, e)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}
	return events, nil
}
