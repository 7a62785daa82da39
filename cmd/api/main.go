package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/hassankhsalar/boichai-api/internal/api/router"
	"github.com/hassankhsalar/boichai-api/internal/auth"
	"github.com/hassankhsalar/boichai-api/internal/config"
	"github.com/hassankhsalar/boichai-api/internal/lending"
	"github.com/hassankhsalar/boichai-api/internal/repository/sqlconnect"
	jwtutil "github.com/hassankhsalar/boichai-api/internal/security/jwt"
	"github.com/hassankhsalar/boichai-api/internal/storage/s3"

	mw "github.com/hassankhsalar/boichai-api/internal/api/middlewares"
)

func main() {
	root := &cobra.Command{
		Use:           "boichai-api",
		Short:         "Book-lending backend API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(), migrateCmd())

	if err := root.Execute(); err != nil {
		log.Fatalln(err)
	}
}

func loadConfig() (config.Config, error) {
	_ = godotenv.Load()
	return config.Load()
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := sqlconnect.ConnectDB(cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("database connection failed: %w", err)
			}
			defer db.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			if err := sqlconnect.Migrate(ctx, db); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Println("schema applied")
			return nil
		},
	}
}

func serve(cfg config.Config) error {
	db, err := sqlconnect.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer db.Close()
	log.Println("connected to Postgres")

	jwtParams := jwtutil.Params{
		Secret:    cfg.JWTSecret,
		TTL:       cfg.SessionTTL,
		ClockSkew: cfg.ClockSkew,
	}

	var covers *s3.Client
	if cfg.S3Bucket != "" {
		covers, err = s3.New(context.Background(), s3.Options{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		if err != nil {
			return fmt.Errorf("cover storage init failed: %w", err)
		}
		log.Println("cover uploads enabled, bucket:", cfg.S3Bucket)
	}

	handler := router.Router(router.Deps{
		DB:      db,
		Lending: lending.NewService(lending.NewSQLStore(db)),
		Auth:    auth.New(jwtParams, cfg.Production()),
		JWT:     jwtParams,
		Covers:  covers,
	})

	chain := []mw.Middleware{
		mw.Cors(cfg.CORSOrigins),
		mw.RequestID,
		mw.ResponseTime,
		mw.Recovery,
		mw.BodySizeLimit(cfg.MaxBodyBytes),
		mw.SecurityHeaders,
	}

	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		rdb := redis.NewClient(opt)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return fmt.Errorf("redis connection failed: %w", err)
		}
		log.Println("rate limiting enabled via Redis")
		// Token bucket absorbs bursts; the sliding window caps
		// sustained per-IP volume.
		tb := mw.NewTokenBucket(rdb, 5, 20, mw.PerIPKey("tb"))
		sw := mw.NewSlidingWindow(rdb, 300, time.Minute, mw.PerIPKey("sw"))
		chain = append(chain, tb.Middleware, sw.Middleware)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mw.Apply(handler, chain...),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Println("server is running on port:", cfg.Port)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Println("shutting down:", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
