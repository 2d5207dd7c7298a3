package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"

	"github.com/zain0812/portfolio/internal/config"
	"github.com/zain0812/portfolio/internal/logging"
	"github.com/zain0812/portfolio/internal/server"
	"github.com/zain0812/portfolio/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, cfg.LogPretty)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd, args := "serve", []string(nil)
	if len(os.Args) > 1 {
		cmd, args = os.Args[1], os.Args[2:]
	}

	switch cmd {
	case "serve":
		err = runServe(ctx, cfg)
	case "build":
		err = runBuild(cfg, args)
	case "deploy":
		err = runDeploy(ctx, cfg, args)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", cmd).Msg("command failed")
	}
}

func usage() {
	fmt.Println("Usage: portfolio [command]")
	fmt.Println("Commands:")
	fmt.Println("  serve  - Serves the page over HTTP (default)")
	fmt.Println("  build  - Generates the static site")
	fmt.Println("           Usage: portfolio build [-out <dir>]")
	fmt.Println("  deploy - Builds and uploads the site to an S3 bucket behind CloudFront")
	fmt.Println("           Usage: portfolio deploy -bucket <bucket-name> [-out <dir>]")
}

func runServe(ctx context.Context, cfg config.Config) error {
	shutdown, err := telemetry.Setup(ctx, "portfolio", cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Warn().Err(err).Msg("telemetry shutdown")
		}
	}()

	srv, err := server.New(cfg)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}

func runBuild(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	out := fs.String("out", cfg.OutputDir, "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return build(cfg, *out)
}

func runDeploy(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("deploy", flag.ExitOnError)
	bucket := fs.String("bucket", cfg.S3Bucket, "S3 bucket name to deploy to")
	out := fs.String("out", cfg.OutputDir, "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *bucket == "" {
		return fmt.Errorf("S3 bucket name is required: use -bucket <bucket-name> or PORTFOLIO_S3_BUCKET")
	}
	if err := build(cfg, *out); err != nil {
		return err
	}
	return deploySite(ctx, cfg, *bucket, *out)
}
