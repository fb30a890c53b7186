// Package analytics turns a snapshot of conversation messages into funnel
// statistics: delivery counts per period, response latencies between funnel
// stages and per-tag reply rates.
//
// Every function here is pure. Callers own fetching, caching and rendering;
// a computation over one snapshot shares no state with any other, so passes
// over different snapshots may run concurrently.
package analytics
