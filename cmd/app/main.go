package main

import (
	"context"
	"flag"
	"os"

	"station/cmd"
	"station/internal/pkg/logging"

	"github.com/labstack/gommon/log"
	"gocloud.dev/blob/fileblob"
)

func main() {
	configPath := flag.String("config", "station.yaml", "path to the YAML config file")
	envPath := flag.String("env", ".env", "path to the dotenv file")
	flag.Parse()

	os.Exit(run(*configPath, *envPath))
}

func run(configPath, envPath string) int {
	config, err := cmd.LoadConfig(configPath, envPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger, err := logging.New(os.Stderr, config.Log.Level, config.Log.Pretty)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}

	bucket, err := fileblob.OpenBucket(config.DataDir, &fileblob.Options{CreateDir: true})
	if err != nil {
		log.Fatalf("Error opening data directory %s: %v", config.DataDir, err)
	}
	defer func() {
		_ = bucket.Close()
	}()

	ctx := context.Background()

	app, err := cmd.NewCompositionRoot(config, bucket, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}
	if err = app.Load(ctx); err != nil {
		log.Fatalf("Error loading records: %v", err)
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Error scheduling jobs: %v", err)
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	return app.CreateApp(os.Stdin, os.Stdout).Run(ctx)
}
