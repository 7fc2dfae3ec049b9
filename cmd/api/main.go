package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Esraa00Tarek/SuperStore-sub000/internal/config"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/domain/auth"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/domain/catalog"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/domain/contact"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/domain/profile"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/domain/settings"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/domain/stats"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/firebase"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/handlers"
	apihttp "github.com/Esraa00Tarek/SuperStore-sub000/internal/http"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	logrus.SetLevel(cfg.LogLevel)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log := logrus.WithField("context", "main")

	clients, err := firebase.NewClients(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("firebase init failed")
	}
	defer clients.Close()

	// Identity Toolkit handles password sign-in; optional locally, where
	// admin endpoints can still be exercised with a service-account token.
	var authSvc *auth.Service
	profileSvc := profile.NewService(clients.Firestore)
	if cfg.WebAPIKey != "" {
		idp, err := firebase.NewIdentityClient(ctx, cfg.WebAPIKey)
		if err != nil {
			log.WithError(err).Fatal("identity toolkit init failed")
		}
		authSvc = auth.NewService(idp, profileSvc, clients.Auth)
	} else {
		log.Warn("FIREBASE_WEB_API_KEY not set, password login disabled")
		authSvc = auth.NewService(nil, profileSvc, clients.Auth)
	}

	catalogSvc := catalog.NewService(catalog.NewRepo(clients.Firestore))
	settingsRepo := settings.NewRepo(clients.Firestore)
	settingsSvc := settings.NewService(settingsRepo)
	contactSvc := contact.NewService(clients.Firestore)
	statsSvc := stats.NewService(clients.Firestore)

	hub := settings.NewHub(settingsRepo)
	hub.Start(ctx)
	defer hub.Stop()

	router := apihttp.NewRouter(apihttp.RouterDeps{
		Cfg:         cfg,
		AuthClient:  clients.Auth,
		CatalogSvc:  catalogSvc,
		SettingsSvc: settingsSvc,
		SettingsHub: hub,
		ContactSvc:  contactSvc,
		ProfileSvc:  profileSvc,
		AuthSvc:     authSvc,
		StatsSvc:    statsSvc,
		Uploads:     handlers.NewUploads(cfg, clients),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	go func() {
		log.WithFields(logrus.Fields{"port": cfg.Port, "project": cfg.ProjectID}).Info("API listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("listen failed")
		}
	}()

	stop := make(chan os.Signal, 2)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("shutting down...")
	_ = srv.Shutdown(ctxShutdown)
}
