package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"

	"floorcalchub.com/floorcalc-web/internal/config"
	"floorcalchub.com/floorcalc-web/internal/content"
	"floorcalchub.com/floorcalc-web/internal/faq"
	"floorcalchub.com/floorcalc-web/internal/i18n"
	mw "floorcalchub.com/floorcalc-web/internal/middleware"
)

var (
	cfg          config.Config
	i18nBundle   *i18n.Bundle
	faqStore     *faq.Store
	contentStore *content.Store
)

func main() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	if cfg.IsProd() {
		log.SetFormatter(&log.JSONFormatter{})
	}

	if !cfg.Dev {
		// Parse templates once in production
		tc, err := parseTemplates()
		if err != nil {
			log.WithError(err).Fatal("parse templates")
		}
		tmplCache = tc
	}

	i18nBundle, err = i18n.Load(localeFS(), "en", []string{"en", "es"})
	if err != nil {
		log.WithError(err).Fatal("load locales")
	}

	faqStore = faq.NewStore()
	if err := faqStore.LoadDir(cfg.FAQDir); err != nil {
		log.WithError(err).Fatal("load faq sets")
	}
	contentStore = content.NewStore(cfg.ContentDir)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.WithFields(log.Fields{"addr": cfg.Addr(), "dev": cfg.Dev}).Info("web listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("listen")
	}
}

func newRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// Behind a trusted reverse proxy RealIP resolves the client address from
	// X-Forwarded-For. Ensure only trusted proxies can set these headers.
	r.Use(middleware.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Session)
	r.Use(mw.Locale(i18nBundle))
	r.Use(mw.CSRF)
	r.Use(mw.VaryLocale)
	r.Use(mw.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	assets := mw.AssetsWithCache(cfg.PublicDir+"/assets", "/assets")
	r.Handle("/assets/*", http.StripPrefix("/assets", assets))

	r.Get("/robots.txt", RobotsHandler)
	r.Get("/sitemap.xml", SitemapHandler)

	r.Get("/", HomeHandler)
	r.Get("/calculators", CalculatorsIndexHandler)
	r.Get("/calculators/{slug}", CalculatorHandler)
	r.Get("/guides", GuidesHandler)
	r.Get("/guides/{slug}", GuidePageHandler)
	r.Get("/about", AboutHandler)

	r.Get("/fragments/faq", FAQFrag)
	r.Get("/fragments/nav", MobileNavFrag)
	r.Post("/fragments/estimate", EstimateFrag)

	return r
}
