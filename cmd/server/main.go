package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/The0nly0ne1/MemeVotingApp/internal/application/auth"
	"github.com/The0nly0ne1/MemeVotingApp/internal/application/memes"
	"github.com/The0nly0ne1/MemeVotingApp/internal/application/social"
	"github.com/The0nly0ne1/MemeVotingApp/internal/config"
	infraauth "github.com/The0nly0ne1/MemeVotingApp/internal/infrastructure/auth"
	httprouter "github.com/The0nly0ne1/MemeVotingApp/internal/infrastructure/http"
	"github.com/The0nly0ne1/MemeVotingApp/internal/infrastructure/http/handlers"
	"github.com/The0nly0ne1/MemeVotingApp/internal/infrastructure/http/middleware"
	"github.com/The0nly0ne1/MemeVotingApp/internal/infrastructure/persistence/postgres"
	"github.com/The0nly0ne1/MemeVotingApp/internal/infrastructure/security"
	"github.com/The0nly0ne1/MemeVotingApp/internal/infrastructure/storage"
)

func main() {
	_ = godotenv.Load()
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	if err := postgres.RunMigrations(ctx, cfg.Database.URL); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}

	fileStore, err := storage.NewDiskStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("create upload directory")
	}

	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	followRepo := postgres.NewFollowRepository(pool)
	memeRepo := postgres.NewMemeRepository(pool)
	commentRepo := postgres.NewCommentRepository(pool)
	replyRepo := postgres.NewReplyRepository(pool)
	sessionStore := postgres.NewSessionStore(pool)

	hasher := security.NewHasher(cfg.Argon2.Memory, cfg.Argon2.Iterations, cfg.Argon2.Parallelism)
	issuer := infraauth.NewTokenIssuer(
		[]byte(cfg.JWT.AccessSecret),
		[]byte(cfg.JWT.RefreshSecret),
		cfg.JWT.Issuer,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	registerUC := auth.NewRegister(userRepo, profileRepo, hasher)
	loginUC := auth.NewLogin(userRepo, hasher, issuer, sessionStore, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)
	refreshUC := auth.NewRefresh(issuer, sessionStore, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)
	logoutUC := auth.NewLogout(sessionStore)
	profilesUC := social.NewProfiles(userRepo, profileRepo, followRepo, memeRepo)
	followUC := social.NewFollow(userRepo, followRepo)
	addMemeUC := memes.NewAddMeme(memeRepo, fileStore)
	memesUC := memes.NewMemes(memeRepo, fileStore)
	commentsUC := memes.NewComments(memeRepo, commentRepo)
	repliesUC := memes.NewReplies(commentRepo, replyRepo)

	ipLimit, err := middleware.NewIPRateLimiter(cfg.Server.RatePerIP)
	if err != nil {
		log.Fatal().Err(err).Msg("create IP rate limiter")
	}
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.Secure.IsDevelopment))
	requireJWT := middleware.NewAuthValidator(issuer).Handler

	router := httprouter.NewRouter(httprouter.RouterConfig{
		AuthHandler:    handlers.NewAuthHandler(registerUC, loginUC, refreshUC, logoutUC, cfg.JWT.RefreshExpiry, log),
		ProfileHandler: handlers.NewProfileHandler(profilesUC, followUC, fileStore, cfg.Upload.MaxBytes, log),
		MemeHandler:    handlers.NewMemeHandler(addMemeUC, memesUC, cfg.Upload.MaxBytes, log),
		CommentHandler: handlers.NewCommentHandler(commentsUC, repliesUC, log),
		HealthHandler:  handlers.NewHealthHandler(pool),
		RequireJWT:     requireJWT,
		Secure:         secureMiddleware,
		IPRateLimit:    ipLimit,
		CORS:           middleware.CORS(cfg.Server.AllowedOrigins),
		Log:            log,
		Metrics:        true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
