package routing

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"cardoctor/internal/metrics"
	"cardoctor/pkg/booking"
	"cardoctor/pkg/carservice"
	"cardoctor/pkg/handlers"
	"cardoctor/pkg/middleware"
	"cardoctor/pkg/session"
	"cardoctor/pkg/user"
)

const (
	identityParam   = "email"
	shutdownTimeout = 10 * time.Second
	rootMessage     = "Car Doctor Server is running"
)

type Deps struct {
	Issuer         session.Issuer
	Verifier       session.Verifier
	Credentials    user.Verifier
	Services       carservice.Repository
	Bookings       booking.ServiceBooking
	Metrics        *metrics.Metrics
	Logger         *slog.Logger
	AllowedOrigins []string
}

func NewRouter(d Deps) http.Handler {
	authHandler := handlers.NewAuthHandler(d.Issuer, d.Credentials, d.Logger)
	serviceHandler := handlers.NewServiceHandler(d.Services, d.Logger)
	bookingHandler := handlers.NewBookingHandler(d.Bookings, d.Logger)

	gate := middleware.CheckJWT(d.Verifier, d.Logger, d.Metrics)
	authorize := middleware.Authorize(identityParam, d.Logger, d.Metrics)

	r := mux.NewRouter()
	r.Use(middleware.Logger(d.Logger, d.Metrics))
	r.Use(middleware.Panic(d.Logger))

	/* auth routers */
	r.HandleFunc("/jwt", authHandler.Login).Methods(http.MethodPost).Name("login")
	r.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost).Name("logout")

	/* services routers */
	r.HandleFunc("/services", serviceHandler.GetAllServices).Methods(http.MethodGet)
	r.HandleFunc("/services/{id}", serviceHandler.GetServiceByID).Methods(http.MethodGet)

	/* bookings routers */
	r.Handle("/bookings", gate(authorize(http.HandlerFunc(bookingHandler.GetBookings)))).Methods(http.MethodGet)
	r.HandleFunc("/bookings", bookingHandler.CreateBooking).Methods(http.MethodPost)
	r.HandleFunc("/bookings/{id}", bookingHandler.UpdateBooking).Methods(http.MethodPatch)
	r.HandleFunc("/bookings/{id}", bookingHandler.DeleteBooking).Methods(http.MethodDelete)

	if d.Metrics != nil {
		r.Handle("/metrics", d.Metrics.Handler()).Methods(http.MethodGet)
	}
	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(rootMessage)); err != nil {
			d.Logger.Error("failed to write root response", slog.Any("error", err))
		}
	}).Methods(http.MethodGet)

	cors := ghandlers.CORS(
		ghandlers.AllowedOrigins(d.AllowedOrigins),
		ghandlers.AllowCredentials(),
		ghandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete}),
		ghandlers.AllowedHeaders([]string{"Content-Type"}),
	)

	return cors(r)
}

// StartServer serves until ctx is canceled, then drains in-flight requests.
func StartServer(ctx context.Context, addr string, h http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Car doctor server is running", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("shutting down server")
	return srv.Shutdown(shutdownCtx)
}
