package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/AFTLlimited25/Task-AI/internal/server"
	"github.com/AFTLlimited25/Task-AI/pkg/config"
)

func main() {
	listenAddr := flag.String("listen", "", "Listen address (overrides config)")
	dbPath := flag.String("db", "", "SQLite database path (overrides config)")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	if *listenAddr != "" {
		cfg.ListenAddr = *listenAddr
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	st, err := server.OpenStorage(cfg.DBPath)
	if err != nil {
		log.WithError(err).Fatal("failed to open storage")
	}
	defer st.Close()

	srv := server.New(st, log)
	log.WithField("listen_addr", cfg.ListenAddr).Info("taskme-server starting")
	if err := srv.Router().Run(cfg.ListenAddr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
