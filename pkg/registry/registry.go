package registry

import (
	"os"

	"gopkg.in/yaml.v3"
)

// LocationCode is the numeric identifier megabus.com uses for a city in its
// journey search endpoint.
type LocationCode int

// Registry maps human readable place names to megabus.com location codes.
// A Registry is treated as read-only once routes are being constructed from
// it; derive an extended copy with Merge instead of mutating a shared one.
type Registry map[string]LocationCode

// Default returns the known megabus.com city codes.
func Default() Registry {
	return Registry{
		"Boston":    94,
		"Chicago":   100,
		"Toronto":   145,
		"New Haven": 122,
		"New York":  123,
	}
}

// Lookup resolves a place name to its location code.
func (r Registry) Lookup(name string) (LocationCode, bool) {
	code, ok := r[name]
	return code, ok
}

// Merge returns a new Registry containing the entries of r overlaid with
// extra. Neither input is modified.
func (r Registry) Merge(extra Registry) Registry {
	merged := Registry{}
	for name, code := range r {
		merged[name] = code
	}
	for name, code := range extra {
		merged[name] = code
	}
	return merged
}

// LoadFile reads additional place name to location code entries from a YAML
// file of the form "Place Name: 123".
func LoadFile(path string) (Registry, error) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	locations := Registry{}
	err = yaml.Unmarshal(fileBytes, &locations)
	if err != nil {
		return nil, err
	}

	return locations, nil
}
