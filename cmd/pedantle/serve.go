package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mariaschitik/ru-pedantle/api"
	"github.com/mariaschitik/ru-pedantle/internal/engine"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(opts *rootOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the game over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s := opts.settings
			if port != "" {
				s.Server.Port = port
			}

			corpus, err := loadCorpus(ctx, s)
			if err != nil {
				return err
			}
			matcher, err := buildMatcher(s)
			if err != nil {
				return err
			}

			games := engine.NewEngine(corpus, matcher, s.MaskRune(), s.Server.GameTTL)
			games.Start(ctx)
			defer games.Stop()

			if s.Log.Level != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}
			router := gin.New()
			router.Use(
				gin.Recovery(),
				api.RequestIDMiddleware(),
				api.AccessLogMiddleware(),
				api.CORSMiddleware(),
				api.RequestSizeLimitMiddleware(s.Server.MaxBodyBytes),
			)
			api.SetupRoutes(router, games)

			return runServer(ctx, &http.Server{
				Addr:              ":" + s.Server.Port,
				Handler:           router,
				ReadHeaderTimeout: 5 * time.Second,
			})
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "port to listen on (overrides server.port)")
	return cmd
}

// runServer serves until ctx is cancelled, then shuts down gracefully.
func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
