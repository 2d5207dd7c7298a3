package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zain0812/portfolio/internal/config"
	"github.com/zain0812/portfolio/internal/content"
	"github.com/zain0812/portfolio/internal/deploy"
	"github.com/zain0812/portfolio/internal/sitegen"
	"github.com/zain0812/portfolio/internal/views"
)

func build(cfg config.Config, outputDir string) error {
	if cfg.FormEndpoint == "" {
		log.Warn().Str("endpoint", views.PlaceholderFormEndpoint).
			Msg("PORTFOLIO_FORM_ENDPOINT not set, contact form posts to the placeholder relay")
	}
	return sitegen.Generate(outputDir, views.PageProps{
		Profile:      content.Owner(),
		Projects:     content.Projects(),
		FormEndpoint: cfg.FormEndpoint,
		Year:         time.Now().Year(),
		AssetPrefix:  "static",
	})
}

func deploySite(ctx context.Context, cfg config.Config, bucket, outputDir string) error {
	priceClass, err := deploy.ParsePriceClass(cfg.CDNPriceClass)
	if err != nil {
		return err
	}
	d, err := deploy.New(ctx, deploy.WithPriceClass(priceClass))
	if err != nil {
		return err
	}
	if _, err := d.UploadSite(ctx, bucket, outputDir); err != nil {
		return err
	}
	id, err := d.EnsureDistribution(ctx, bucket)
	if err != nil {
		return err
	}
	log.Info().Str("distribution", id).Msg("site is live behind CloudFront")
	return nil
}
