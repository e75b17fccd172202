package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dshu-atelier/storefront/internal/catalog"
	"github.com/dshu-atelier/storefront/internal/config"
	"github.com/dshu-atelier/storefront/internal/events"
	"github.com/dshu-atelier/storefront/internal/gateway"
	"github.com/dshu-atelier/storefront/internal/handlers"
	"github.com/dshu-atelier/storefront/internal/hash"
	"github.com/dshu-atelier/storefront/internal/kvstore"
	"github.com/dshu-atelier/storefront/internal/logging"
	loggingmw "github.com/dshu-atelier/storefront/internal/middleware/logging"
	"github.com/dshu-atelier/storefront/internal/service/auth"
	"github.com/dshu-atelier/storefront/internal/service/cart"
	"github.com/dshu-atelier/storefront/internal/service/checkout"
	httpserver "github.com/dshu-atelier/storefront/internal/transport/http"
	"github.com/dshu-atelier/storefront/internal/ui"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	config.MustNonEmpty(configuration.JWT_SECRET, "JWT_SECRET")

	logger := logging.New(configuration.LOG_LEVEL)

	store, err := kvstore.OpenSQLite(configuration.STORE_PATH)
	if err != nil {
		log.Fatalf("Ошибка инициализации хранилища: %v", err)
	}

	var prod *events.Producer
	if configuration.KAFKA_ADDRESS != "" {
		prod = events.NewProducer([]string{configuration.KAFKA_ADDRESS})
	}

	pwHash, err := hash.Password(configuration.DEMO_PASSWORD)
	if err != nil {
		log.Fatal(err)
	}

	cat := catalog.Default()
	gw := gateway.Network{}

	authSvc := auth.NewService(store, gw, []byte(configuration.JWT_SECRET), auth.Credentials{
		Email:        configuration.DEMO_EMAIL,
		Name:         configuration.DEMO_NAME,
		PasswordHash: pwHash,
	})
	cartSvc := cart.NewService(store)
	checkoutSvc := checkout.NewService(cartSvc, gw)
	modal := ui.NewModalState()

	// restore persisted state before serving
	startCtx := logging.IntoContext(context.Background(), logger)
	authSvc.Initialize(startCtx)
	cartSvc.Load(startCtx)

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		AuthHandler:     &handlers.AuthHandler{Auth: authSvc, Cart: cartSvc, Producer: prod},
		CartHandler:     &handlers.CartHandler{Cart: cartSvc, Catalog: cat, Producer: prod},
		CatalogHandler:  &handlers.CatalogHandler{Catalog: cat},
		CheckoutHandler: &handlers.CheckoutHandler{Checkout: checkoutSvc, Producer: prod},
		ModalHandler:    &handlers.ModalHandler{Modal: modal, Catalog: cat},
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.HTTP_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if err := store.Close(); err != nil {
		log.Printf("store close error: %v", err)
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
