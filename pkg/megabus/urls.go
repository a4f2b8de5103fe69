package megabus

import (
	"fmt"
	"net/url"

	"github.com/farely/farely/pkg/registry"
)

const journeyResultsEndpoint = "http://us.megabus.com/JourneyResults.aspx"

// DateFormat is the date layout the journey results endpoint expects.
const DateFormat = "01/02/2006"

// BuildSearchURL serialises a one-way single-passenger journey search for
// the given date and location codes. date must already be in DateFormat.
func BuildSearchURL(date string, originCode registry.LocationCode, destinationCode registry.LocationCode) string {
	query := url.Values{}
	query.Set("originCode", fmt.Sprint(int(originCode)))
	query.Set("destinationCode", fmt.Sprint(int(destinationCode)))
	query.Set("outboundDepartureDate", date)
	query.Set("inboundDepartureDate", "")
	query.Set("passengerCount", "1")
	query.Set("transportType", "0")
	query.Set("concessionCount", "0")
	query.Set("nusCount", "0")
	query.Set("outboundWheelchairSeated", "0")
	query.Set("outboundOtherDisabilityCount", "0")
	query.Set("inboundWheelchairSeated", "0")
	query.Set("inboundOtherDisabilityCount", "0")
	query.Set("outboundPcaCount", "0")
	query.Set("inboundPcaCount", "0")
	query.Set("promotionCode", "")
	query.Set("withReturn", "0")

	return fmt.Sprintf("%s?%s", journeyResultsEndpoint, query.Encode())
}
