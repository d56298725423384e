package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/Rakhulsr/go-logistics/app/db/seeders"
	"github.com/Rakhulsr/go-logistics/app/models/migrations"
	"github.com/Rakhulsr/go-logistics/app/routes"
	"github.com/Rakhulsr/go-logistics/app/services/exchange"
	"github.com/Rakhulsr/go-logistics/app/services/rating"
	"github.com/Rakhulsr/go-logistics/app/utils/format"
	"github.com/Rakhulsr/go-logistics/app/utils/renderer"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func RunCli() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewCommand(os.Stdout).Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

// NewCommand builds the command tree. Without a subcommand it serves HTTP.
func NewCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "logistics",
		Usage:  "Shipping quotes and trade-in valuations",
		Action: withApp(serve),
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: withApp(func(ctx context.Context, c *cli.Command, a *app) error {
					db, err := a.openDB()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					fmt.Fprintln(out, "Migration complete")
					return nil
				}),
			},
			{
				Name:  "seed",
				Usage: "Migrate and load the demo carrier network",
				Action: withApp(func(ctx context.Context, c *cli.Command, a *app) error {
					db, err := a.openDB()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					if err := seeders.DBSeed(ctx, db); err != nil {
						return err
					}
					fmt.Fprintln(out, "Seed complete")
					return nil
				}),
			},
			{
				Name:  "quote",
				Usage: "Rank carrier quotes for a shipment",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "from", Usage: "origin postal code", Required: true},
					&cli.StringFlag{Name: "to", Usage: "destination postal code", Required: true},
					&cli.StringFlag{Name: "weight", Usage: "actual weight in kg", Required: true},
					&cli.StringFlag{Name: "length", Usage: "length in cm"},
					&cli.StringFlag{Name: "width", Usage: "width in cm"},
					&cli.StringFlag{Name: "height", Usage: "height in cm"},
					&cli.StringFlag{Name: "payment", Usage: "PREPAID or COD", Value: string(rating.PaymentPrepaid)},
					&cli.StringFlag{Name: "declared", Usage: "declared value", Value: "0"},
					&cli.BoolFlag{Name: "fragile", Usage: "handle as fragile"},
					&cli.IntFlag{Name: "packages", Usage: "number of packages", Value: 1},
					&cli.StringFlag{Name: "channel", Usage: "sales channel, informational"},
					&cli.StringFlag{Name: "strategy", Usage: "BALANCED, CHEAPEST_FIRST, FASTEST_FIRST or BEST_SLA", Value: string(rating.StrategyBalanced)},
					&cli.BoolFlag{Name: "json", Usage: "print the raw result as JSON"},
				},
				Action: withApp(func(ctx context.Context, c *cli.Command, a *app) error {
					req, err := quoteRequestFromFlags(c)
					if err != nil {
						return err
					}
					engine, err := a.ratingEngine(ctx)
					if err != nil {
						return err
					}
					res, err := engine.Quote(ctx, req)
					if err != nil {
						return err
					}
					if c.Bool("json") {
						return writeJSON(out, res)
					}
					return printQuotes(out, res)
				}),
			},
			{
				Name:  "valuate",
				Usage: "Estimate a water purifier trade-in value",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "brand", Usage: "aquaguard, kent, pureit, livpure, ao_smith, blue_star or other", Required: true},
					&cli.StringFlag{Name: "age", Usage: "age in years", Required: true},
					&cli.StringFlag{Name: "condition", Usage: "EXCELLENT, GOOD, FAIR or POOR", Required: true},
					&cli.StringFlag{Name: "type", Usage: "purifier type, informational"},
					&cli.BoolFlag{Name: "offline", Usage: "skip the pricing service"},
					&cli.BoolFlag{Name: "json", Usage: "print the raw result as JSON"},
				},
				Action: withApp(func(ctx context.Context, c *cli.Command, a *app) error {
					age, err := decimal.NewFromString(c.String("age"))
					if err != nil {
						return fmt.Errorf("invalid --age: %w", err)
					}
					valuator, err := a.valuator(c.Bool("offline"))
					if err != nil {
						return err
					}
					res, err := valuator.Estimate(ctx, exchange.ValuationRequest{
						Brand:        exchange.Brand(c.String("brand")),
						AgeYears:     age,
						Condition:    exchange.Condition(c.String("condition")),
						PurifierType: c.String("type"),
					})
					if err != nil {
						return err
					}
					if c.Bool("json") {
						return writeJSON(out, res)
					}
					fmt.Fprintf(out, "Estimated trade-in value: %s\n", format.Rupee(res.EstimatedValue))
					return nil
				}),
			},
			{
				Name:   "serve",
				Usage:  "Start the HTTP API",
				Action: withApp(serve),
			},
		},
	}
}

func withApp(fn func(ctx context.Context, c *cli.Command, a *app) error) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		defer a.close()
		return fn(ctx, c, a)
	}
}

func serve(ctx context.Context, _ *cli.Command, a *app) error {
	engine, err := a.ratingEngine(ctx)
	if err != nil {
		return err
	}
	valuator, err := a.valuator(false)
	if err != nil {
		return err
	}

	router := routes.NewRouter(engine, valuator, renderer.New(!a.env.IsProduction()), a.logger)
	server := &http.Server{
		Addr:              ":" + a.env.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server starting", zap.String("addr", server.Addr), zap.Int("carriers", len(engine.Carriers())))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		a.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

func quoteRequestFromFlags(c *cli.Command) (rating.QuoteRequest, error) {
	parse := func(name string) (decimal.Decimal, error) {
		v, err := decimal.NewFromString(c.String(name))
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid --%s: %w", name, err)
		}
		return v, nil
	}

	weight, err := parse("weight")
	if err != nil {
		return rating.QuoteRequest{}, err
	}
	declared, err := parse("declared")
	if err != nil {
		return rating.QuoteRequest{}, err
	}

	req := rating.QuoteRequest{
		OriginCode:      c.String("from"),
		DestinationCode: c.String("to"),
		WeightKg:        weight,
		PaymentMode:     rating.PaymentMode(c.String("payment")),
		DeclaredValue:   declared,
		PackageCount:    int(c.Int("packages")),
		IsFragile:       c.Bool("fragile"),
		Channel:         c.String("channel"),
		Strategy:        rating.Strategy(c.String("strategy")),
	}

	if c.IsSet("length") || c.IsSet("width") || c.IsSet("height") {
		var dims rating.Dimensions
		if dims.LengthCm, err = parse("length"); err != nil {
			return rating.QuoteRequest{}, err
		}
		if dims.WidthCm, err = parse("width"); err != nil {
			return rating.QuoteRequest{}, err
		}
		if dims.HeightCm, err = parse("height"); err != nil {
			return rating.QuoteRequest{}, err
		}
		req.Dimensions = &dims
	}
	return req, nil
}

func printQuotes(out io.Writer, res *rating.QuoteResult) error {
	fmt.Fprintf(out, "Segment %s, zone %s, chargeable weight %s kg, strategy %s\n",
		res.Segment, res.Zone, res.ChargeableWeightKg, res.Strategy)

	if res.NoServiceableOptions() {
		fmt.Fprintln(out, res.Message)
	} else {
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tCARRIER\tSERVICE\tRATE CARD\tDAYS\tTOTAL\tSCORE")
		for i, q := range res.Quotes {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d-%d\t%s\t%.4f\n",
				i+1, q.CarrierName, q.ServiceType, q.RateCardID,
				q.EstimatedDelivery.MinDays, q.EstimatedDelivery.MaxDays,
				format.Rupee(q.TotalCost), q.AllocationScore)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	for _, ex := range res.Exclusions {
		fmt.Fprintf(out, "excluded %s: %s\n", ex.CarrierName, ex.Reason)
	}
	return nil
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
