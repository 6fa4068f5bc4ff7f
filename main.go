package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/ReganLema/M-CONNECT-sub001/internal/api"
	"github.com/ReganLema/M-CONNECT-sub001/internal/core"
	"github.com/ReganLema/M-CONNECT-sub001/internal/credentials"
	"github.com/ReganLema/M-CONNECT-sub001/internal/farmers"
	"github.com/ReganLema/M-CONNECT-sub001/internal/images"
	"github.com/ReganLema/M-CONNECT-sub001/internal/orders"
	logx "github.com/ReganLema/M-CONNECT-sub001/pkg/logger"
	pkgredis "github.com/ReganLema/M-CONNECT-sub001/pkg/redis"
)

// AppConfig defines all configurable parameters of the data-access layer,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`

	// Infrastructure
	Redis pkgredis.Config

	// Backend API
	API api.Config

	// Development-only fixed token; leave empty in production builds.
	DevToken string `envconfig:"DEV_ACCESS_TOKEN"`

	// Imagery
	ImageSearch images.HTTPProviderConfig
	ImageEngine images.EngineConfig
}

func main() {
	ctx := context.Background()

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(cfg.Environment)})

	rdb, err := cfg.Redis.New(ctx)
	if err != nil {
		log.Fatalf("Failed to initialise Redis client: %v", err)
	}
	defer rdb.Close()

	// Credential chain: current key first, legacy keys after, and a fixed
	// development token as the final strategy when one is configured.
	sources := credentials.KeySources(credentials.NewRedisStore(rdb), credentials.DefaultKeys...)
	if cfg.DevToken != "" {
		sources = append(sources, credentials.NewStaticSource(cfg.DevToken))
	}
	resolver := credentials.NewResolver(sources...)

	client := api.New(cfg.API, resolver)
	farmerSvc := farmers.NewService(client)
	orderSvc := orders.NewService(client)

	var provider images.SearchProvider
	if cfg.ImageSearch.Enabled() {
		provider = images.NewHTTPProvider(cfg.ImageSearch)
	}
	engine := images.NewEngine(cfg.ImageEngine, provider, nil)

	for cat, imageURL := range engine.CategoryImages(ctx) {
		fmt.Printf("category %-10s -> %s\n", cat, imageURL)
	}

	for _, f := range farmerSvc.List(ctx) {
		fmt.Printf("farmer #%d %s (%s) phone=%v\n", f.ID, f.Name, f.Location, f.HasPhone)
		for _, p := range farmerSvc.Products(ctx, f.ID) {
			image := p.Image
			if image == "" {
				image = engine.FallbackImageForCategory(p.Category)
			}
			fmt.Printf("  product %s %.2f [%s] image=%s\n", p.Name, p.Price, p.Category, image)
		}
	}

	for _, o := range orderSvc.List(ctx) {
		fmt.Printf("order #%d total=%.2f status=%s payment=%s items=%d\n",
			o.ID, o.TotalAmount, o.Status, o.PaymentStatus, o.ItemsCount)
	}
}
