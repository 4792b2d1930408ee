package main

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/tillpoint/catalog"
	"github.com/ray-remotestate/tillpoint/config"
	"github.com/ray-remotestate/tillpoint/database"
	"github.com/ray-remotestate/tillpoint/database/dbhelper"
	"github.com/ray-remotestate/tillpoint/handlers"
	"github.com/ray-remotestate/tillpoint/ledger"
	"github.com/ray-remotestate/tillpoint/server"
	"github.com/ray-remotestate/tillpoint/terminal"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cat, err := loadCatalog(cfg)
	if err != nil {
		logrus.Panicf("failed to load catalog, error: %v", err)
	}
	logrus.Infof("catalog ready with %d items", cat.Len())

	if cfg.RunMode == "terminal" {
		terminal.New(cat, os.Stdin, os.Stdout).Run()
		return
	}

	led := ledger.New(cat, &handlers.LogSink{Log: logrus.StandardLogger()})
	svr := server.SetupRoutes(&handlers.API{Catalog: cat, Ledger: led})

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logrus.Infof("listening on %s", cfg.ServerPort)
		if err := svr.Run(cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Panicf("failed to run server, error: %v", err)
		}
	}()

	<-done

	logrus.Info("shutting down...")
	if err := svr.Shutdown(shutdownTimeout); err != nil {
		logrus.WithError(err).Error("failed to shut down server")
	}
	if err := database.ShutdownDatabase(); err != nil {
		logrus.WithError(err).Error("failed to close database connection!")
	}
	logrus.Info("system is shut ..zzz")
}

// loadCatalog prefers the configured catalog database, seeding it with
// the built-in menu on first run; without one, the built-in menu is
// used directly.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if !cfg.DB.Configured() {
		return catalog.Builtin(), nil
	}

	if err := database.ConnectAndMigrate(cfg.DB.URL()); err != nil {
		return nil, err
	}
	logrus.Println("migration is successful")

	count, err := dbhelper.CountCatalogItems()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		if err := dbhelper.SeedCatalogItems(catalog.BuiltinItems()); err != nil {
			return nil, err
		}
	}

	items, err := dbhelper.ListCatalogItems()
	if err != nil {
		return nil, err
	}
	return catalog.New(items)
}
