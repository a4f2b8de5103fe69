package finder

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/farely/farely/pkg/ticket"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Discover bus tickets for a set of routes over a date range",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Usage:    "Path to the search configuration file",
				Required: true,
			},
			&cli.Float64Flag{
				Name:  "min-price",
				Usage: "Only keep tickets costing at least this, overrides the config file",
			},
			&cli.Float64Flag{
				Name:  "max-price",
				Usage: "Only keep tickets costing at most this, overrides the config file",
			},
		},
		Action: func(c *cli.Context) error {
			config, err := LoadSearchConfig(c.String("config"))
			if err != nil {
				return err
			}

			if c.IsSet("min-price") {
				minPrice := c.Float64("min-price")
				config.MinPrice = &minPrice
			}
			if c.IsSet("max-price") {
				maxPrice := c.Float64("max-price")
				config.MaxPrice = &maxPrice
			}

			ticketFinder, err := config.BuildFinder()
			if err != nil {
				return err
			}

			log.Info().
				Str("startdate", config.StartDate).
				Str("enddate", config.EndDate).
				Int("routes", len(ticketFinder.Routes)).
				Msg("Searching for tickets")

			ctx := context.Background()

			var tickets []ticket.Ticket
			if config.MinPrice != nil || config.MaxPrice != nil {
				minPrice := 0.0
				if config.MinPrice != nil {
					minPrice = *config.MinPrice
				}

				maxPrice := math.MaxFloat64
				if config.MaxPrice != nil {
					maxPrice = *config.MaxPrice
				}

				tickets, err = ticketFinder.DiscoverTicketsInPriceRange(ctx, minPrice, maxPrice)
			} else {
				tickets, err = ticketFinder.DiscoverAllTickets(ctx)
			}
			if err != nil {
				return err
			}

			for index, found := range tickets {
				fmt.Printf("[%d] %s\n", index+1, found.DisplayString())
			}
			fmt.Printf("*** %d tickets found ***\n", len(tickets))

			return nil
		},
	}
}
