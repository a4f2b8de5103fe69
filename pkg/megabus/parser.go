package megabus

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/farely/farely/pkg/ticket"
)

var (
	departsPattern = regexp.MustCompile(`Departs\s+(.*)\s+`)
	arrivesPattern = regexp.MustCompile(`Arrives\s+(.*)\s+`)
	pricePattern   = regexp.MustCompile(`\$([\d.]+)`)
)

// ParseTickets extracts journey listings from a journey results page. Each
// listing in the outbound list (excluding the column heading entry) becomes
// one Ticket tagged with the given date and route, in document order. A
// listing whose departure, arrival or price text does not match the
// expected pattern still produces a Ticket, with the unmatched field nil.
func ParseTickets(markup string, date string, route ticket.Route) []ticket.Ticket {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil
	}

	var tickets []ticket.Ticket

	doc.Find("#JourneyResylts_OutboundList_main_div > ul").Not(".heading").Each(func(_ int, entry *goquery.Selection) {
		found := ticket.Ticket{
			Origin:      route.Origin,
			Destination: route.Destination,
			Date:        date,
		}

		if match := departsPattern.FindStringSubmatch(entry.Find(".two > p:nth-child(1)").Text()); match != nil {
			found.Departure = &match[1]
		}
		if match := arrivesPattern.FindStringSubmatch(entry.Find(".two > p:nth-child(2)").Text()); match != nil {
			found.Arrival = &match[1]
		}
		if match := pricePattern.FindStringSubmatch(entry.Find(".five > p").Text()); match != nil {
			price, err := strconv.ParseFloat(match[1], 64)
			if err == nil {
				found.Price = &price
			}
		}

		tickets = append(tickets, found)
	})

	return tickets
}
