package ticket

import (
	"fmt"

	"github.com/farely/farely/pkg/registry"
)

// Route is a validated origin/destination pair with both names resolved to
// megabus.com location codes. Immutable once constructed.
type Route struct {
	Origin          string
	OriginCode      registry.LocationCode
	Destination     string
	DestinationCode registry.LocationCode
}

// UnknownLocationError is returned by NewRoute when a place name is not
// present in the registry. Side identifies which end of the route failed.
type UnknownLocationError struct {
	Side string
	Name string
}

func (e *UnknownLocationError) Error() string {
	return fmt.Sprintf("unknown %s: %s", e.Side, e.Name)
}

// NewRoute resolves both place names against the given registry.
func NewRoute(locations registry.Registry, origin string, destination string) (Route, error) {
	originCode, found := locations.Lookup(origin)
	if !found {
		return Route{}, &UnknownLocationError{Side: "origin", Name: origin}
	}

	destinationCode, found := locations.Lookup(destination)
	if !found {
		return Route{}, &UnknownLocationError{Side: "destination", Name: destination}
	}

	return Route{
		Origin:          origin,
		OriginCode:      originCode,
		Destination:     destination,
		DestinationCode: destinationCode,
	}, nil
}
