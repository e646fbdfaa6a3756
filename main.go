package main

import (
	"os"

	"github.com/Lkoenig2121/ebay/api"
	"github.com/Lkoenig2121/ebay/internal/auctionwatch"
	db "github.com/Lkoenig2121/ebay/internal/db/memory"
	"github.com/Lkoenig2121/ebay/internal/event"
	"github.com/Lkoenig2121/ebay/internal/util"
	"github.com/rs/zerolog"

	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configurations
	config, err := util.LoadConfig("./app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config file 😣")
	}

	log.Info().Msg("configurations loaded successfully ✅")

	// All state lives in process memory; nothing survives a restart.
	store := db.NewStore()

	eventSender := event.NewSSEServer()
	go eventSender.Run()

	if config.SeedOnStartup {
		if err = api.SeedDemoData(store); err != nil {
			log.Fatal().Err(err).Msg("failed to seed demo data 😣")
		}
	}

	watcher, err := auctionwatch.NewWatcher(store, eventSender, config.AuctionCloseInterval)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create auction watcher 😣")
	}
	if err = watcher.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start auction watcher 😣")
	}
	defer func() {
		if err := watcher.Stop(); err != nil {
			log.Err(err).Msg("failed to stop auction watcher")
		}
	}()
	log.Info().Msg("auction watcher started ✅")

	runHTTPServer(&config, store, eventSender)
}

func runHTTPServer(config *util.Config, store db.Store, eventSender event.EventSender) {
	server, err := api.NewServer(store, config, eventSender)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create HTTP server 😣")
	}

	err = server.Start(config.HTTPServerAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start HTTP server 😣")
	}
}
