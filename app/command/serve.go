package command

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"library/app/echoServer"
	authctrl "library/app/echoServer/controller/auth"
	bookctrl "library/app/echoServer/controller/book"
	categoryctrl "library/app/echoServer/controller/category"
	loanctrl "library/app/echoServer/controller/loan"
	reviewctrl "library/app/echoServer/controller/review"
	userctrl "library/app/echoServer/controller/user"
	"library/app/echoServer/validation"
	"library/config"
	bookrepo "library/repository/book"
	categoryrepo "library/repository/category"
	loanrepo "library/repository/loan"
	reviewrepo "library/repository/review"
	"library/repository/store"
	userrepo "library/repository/user"
	authsvc "library/service/auth"
	booksvc "library/service/book"
	categorysvc "library/service/category"
	loansvc "library/service/loan"
	reviewsvc "library/service/review"
	usersvc "library/service/user"
	"library/util/database"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply migrations before serving")
	return cmd
}

func serve(ctx context.Context, cfg config.App, migrate bool) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := newLogger(cfg)

	db, err := database.New(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		log.Error("db connect failed", "err", err)
		return err
	}
	defer db.Close()

	if migrate {
		if err := database.Migrate(ctx, db.SQL); err != nil {
			return err
		}
		log.Info("migrations applied")
	}

	e := echoServer.New(log, controllers(db, cfg, log))

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "port", cfg.Port, "env", cfg.Env)
		errCh <- e.Start(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("shutting down")
	return e.Shutdown(shutdownCtx)
}

func controllers(db *database.DB, cfg config.App, log *slog.Logger) echoServer.C {
	// repos
	ur := userrepo.New(db.SQL)
	br := bookrepo.New(db.SQL)
	lr := loanrepo.New(db.SQL)
	cr := categoryrepo.New(db.SQL)
	rr := reviewrepo.New(db.SQL)

	// services
	tx := store.NewTxRunner(db.SQL, nil)
	as := authsvc.New(ur, cfg.JWTSecret)
	us := usersvc.New(ur)
	bs := booksvc.New(tx, br)
	ls := loansvc.New(lr)
	cs := categorysvc.New(cr)
	rs := reviewsvc.New(rr)

	// controllers
	v := validation.NewValidate()
	return echoServer.C{
		Auth:      &authctrl.Controller{Svc: as, V: v, Log: log},
		User:      &userctrl.Controller{Svc: us, V: v, Log: log},
		Book:      &bookctrl.Controller{Svc: bs, V: v, Log: log},
		Loan:      &loanctrl.Controller{Svc: ls, V: v, Log: log},
		Category:  &categoryctrl.Controller{Svc: cs, V: v, Log: log},
		Review:    &reviewctrl.Controller{Svc: rs, V: v, Log: log},
		JWTSecret: cfg.JWTSecret,
	}
}
