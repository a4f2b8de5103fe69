package ticket

import "fmt"

// Ticket is one journey listing discovered for a specific date and route.
// Departure, Arrival and Price are nil when the listing markup did not
// contain the expected text pattern; a partially extracted ticket is still
// a valid record, not an error.
type Ticket struct {
	Origin      string
	Destination string
	Date        string
	Departure   *string
	Arrival     *string
	Price       *float64
}

// DisplayString renders a one line human readable summary of the ticket,
// substituting "?" for any field that could not be extracted.
func (t Ticket) DisplayString() string {
	price := "?"
	if t.Price != nil {
		price = fmt.Sprintf("%g", *t.Price)
	}

	departure := "?"
	if t.Departure != nil {
		departure = *t.Departure
	}

	arrival := "?"
	if t.Arrival != nil {
		arrival = *t.Arrival
	}

	return fmt.Sprintf("{$%s} %s -> %s (%s %s - %s)", price, t.Origin, t.Destination, t.Date, departure, arrival)
}
