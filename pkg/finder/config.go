package finder

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/farely/farely/pkg/registry"
	"github.com/farely/farely/pkg/ticket"
)

// SearchConfig describes one discovery run: the date window, the routes to
// query, an optional price band and optional extra location codes overlaid
// on the built in registry.
type SearchConfig struct {
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`

	MinPrice *float64 `yaml:"min_price"`
	MaxPrice *float64 `yaml:"max_price"`

	MaxConcurrency int `yaml:"max_concurrency"`

	Locations map[string]registry.LocationCode `yaml:"locations"`

	Routes []RouteConfig `yaml:"routes"`
}

type RouteConfig struct {
	Origin      string `yaml:"origin"`
	Destination string `yaml:"destination"`
}

// LoadSearchConfig reads a SearchConfig from a YAML file.
func LoadSearchConfig(path string) (*SearchConfig, error) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config SearchConfig
	err = yaml.Unmarshal(fileBytes, &config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// BuildFinder validates the configured routes against the registry and
// returns a TicketFinder ready for a discovery run.
func (c *SearchConfig) BuildFinder() (*TicketFinder, error) {
	locations := registry.Default().Merge(registry.Registry(c.Locations))

	var routes []ticket.Route
	for _, routeConfig := range c.Routes {
		route, err := ticket.NewRoute(locations, routeConfig.Origin, routeConfig.Destination)
		if err != nil {
			return nil, err
		}

		routes = append(routes, route)
	}

	return &TicketFinder{
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		Routes:         routes,
		MaxConcurrency: c.MaxConcurrency,
	}, nil
}
