package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"storefront/pkg/store/catalog"
	"storefront/pkg/store/domain/model"
	"storefront/pkg/store/domain/service"
	"storefront/pkg/store/infrastructure/event"
	"storefront/pkg/store/infrastructure/kv"
	"storefront/pkg/store/localization"
	"storefront/transport"
)

const appID = "storefront"

type config struct {
	ServeAddress   string `envconfig:"serve_address" default:":8080"`
	CatalogFile    string `envconfig:"catalog_file"`
	CompareLimit   int    `envconfig:"compare_limit" default:"3"`
	RatingsBackend string `envconfig:"ratings_backend" default:"file"`
	RatingsFile    string `envconfig:"ratings_file" default:"ratings.json"`
	DatabaseDSN    string `envconfig:"database_dsn"`
}

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	app := &cli.App{
		Name:  appID,
		Usage: "EasyHub storefront API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "serve-address", Usage: "listen address, overrides the environment"},
			&cli.StringFlag{Name: "catalog-file", Usage: "path to a JSON catalog override"},
		},
		Action: runService,
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("service failed")
	}
}

func runService(ctx *cli.Context) error {
	c, err := parseConfig(ctx)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(c)
	if err != nil {
		return err
	}

	store, err := newKeyValueStore(c)
	if err != nil {
		return err
	}

	dispatcher := event.NewLogDispatcher()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	router := transport.Router(
		cat,
		service.NewCartService(dispatcher),
		service.NewWishlistService(dispatcher),
		service.NewRatingService(cat.All(), store, rng, dispatcher),
		service.NewSessionService(dispatcher),
		service.NewCompareService(c.CompareLimit, dispatcher),
		service.NewBundleService(dispatcher),
		service.NewCheckoutService(dispatcher),
		localization.New(),
	)

	return serve(c.ServeAddress, router)
}

func parseConfig(ctx *cli.Context) (*config, error) {
	c := new(config)
	if err := envconfig.Process(appID, c); err != nil {
		return nil, err
	}

	if addr := ctx.String("serve-address"); addr != "" {
		c.ServeAddress = addr
	}
	if path := ctx.String("catalog-file"); path != "" {
		c.CatalogFile = path
	}
	return c, nil
}

func loadCatalog(c *config) (*catalog.Catalog, error) {
	if c.CatalogFile == "" {
		return catalog.Default(), nil
	}

	cat, err := catalog.Load(c.CatalogFile)
	if err != nil {
		return nil, err
	}
	log.WithField("file", c.CatalogFile).Info("loaded catalog override")
	return cat, nil
}

func newKeyValueStore(c *config) (model.KeyValueStore, error) {
	switch c.RatingsBackend {
	case "memory":
		return kv.NewMemory(), nil
	case "file":
		return kv.NewFile(c.RatingsFile), nil
	case "mysql":
		return kv.NewMySQL(c.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unknown ratings backend %q", c.RatingsBackend)
	}
}

func serve(addr string, handler http.Handler) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{Addr: addr, Handler: handler}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("url", addr).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
