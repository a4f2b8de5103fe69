package finder

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/farely/farely/pkg/megabus"
	"github.com/farely/farely/pkg/ticket"
)

// inputDateFormat accepts dates with or without zero padding, eg "3/9/2016".
const inputDateFormat = "1/2/2006"

// Fetcher retrieves the raw markup for one journey search URL.
type Fetcher interface {
	FetchPage(ctx context.Context, url string) (string, error)
}

// DiscoveryError is returned when any single fetch of a discovery run
// fails. The whole run is abandoned; no partial results are returned.
type DiscoveryError struct {
	Err error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("ticket discovery failed: %s", e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// TicketFinder discovers tickets for every route over an inclusive date
// range. It is stateless after construction; every discovery call
// recomputes from scratch.
type TicketFinder struct {
	StartDate string
	EndDate   string
	Routes    []ticket.Route

	// Fetcher retrieves journey results pages. Nil means a plain
	// megabus.PageFetcher on the default HTTP client.
	Fetcher Fetcher

	// MaxConcurrency caps the number of in-flight fetches. Zero means no
	// cap, one request per (date, route) pair all at once.
	MaxConcurrency int
}

type task struct {
	date  string
	route ticket.Route
}

// DiscoverAllTickets fetches and parses the journey results page for every
// (date, route) pair in the range and returns all discovered tickets, in
// date-major route-minor order. If any single fetch fails the whole call
// fails with a DiscoveryError wrapping the first failure, and any still
// pending fetches are cancelled best effort.
func (f *TicketFinder) DiscoverAllTickets(ctx context.Context) ([]ticket.Ticket, error) {
	dates, err := f.expandDates()
	if err != nil {
		return nil, err
	}

	var tasks []task
	for _, date := range dates {
		for _, route := range f.Routes {
			tasks = append(tasks, task{date: date, route: route})
		}
	}

	log.Debug().
		Int("dates", len(dates)).
		Int("routes", len(f.Routes)).
		Int("requests", len(tasks)).
		Msg("Starting ticket discovery")

	fetcher := f.Fetcher
	if fetcher == nil {
		fetcher = &megabus.PageFetcher{}
	}

	results := make([][]ticket.Ticket, len(tasks))

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	if f.MaxConcurrency > 0 {
		p = p.WithMaxGoroutines(f.MaxConcurrency)
	}

	for i, t := range tasks {
		i, t := i, t
		p.Go(func(ctx context.Context) error {
			url := megabus.BuildSearchURL(t.date, t.route.OriginCode, t.route.DestinationCode)

			markup, err := fetcher.FetchPage(ctx, url)
			if err != nil {
				return err
			}

			results[i] = megabus.ParseTickets(markup, t.date, t.route)
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, &DiscoveryError{Err: err}
	}

	var tickets []ticket.Ticket
	for _, found := range results {
		tickets = append(tickets, found...)
	}

	log.Debug().Int("tickets", len(tickets)).Msg("Ticket discovery complete")

	return tickets, nil
}

// DiscoverTicketsInPriceRange discovers all tickets and keeps those whose
// price was extracted and lies within [min, max]. Tickets whose price could
// not be extracted are never returned by a ranged query.
func (f *TicketFinder) DiscoverTicketsInPriceRange(ctx context.Context, min float64, max float64) ([]ticket.Ticket, error) {
	tickets, err := f.DiscoverAllTickets(ctx)
	if err != nil {
		return nil, err
	}

	var matched []ticket.Ticket
	for _, t := range tickets {
		if t.Price != nil && min <= *t.Price && *t.Price <= max {
			matched = append(matched, t)
		}
	}

	return matched, nil
}

// expandDates returns every calendar date from StartDate to EndDate
// inclusive, formatted the way the journey results endpoint expects. An end
// date before the start date yields no dates at all.
func (f *TicketFinder) expandDates() ([]string, error) {
	startDate, err := time.Parse(inputDateFormat, f.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(inputDateFormat, f.EndDate)
	if err != nil {
		return nil, err
	}

	var dates []string
	for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		dates = append(dates, date.Format(megabus.DateFormat))
	}

	return dates, nil
}
