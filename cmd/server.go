package cmd

import (
	"contactbook/internal/config"
	"contactbook/internal/core"
	"contactbook/internal/db"
	"contactbook/internal/http/handler"
	"contactbook/internal/http/handler/middleware"
	"contactbook/internal/http/payload"
	"contactbook/internal/http/server"
	"contactbook/internal/repository"
	"contactbook/pkg/hash"
	"contactbook/pkg/jwt"
	"contactbook/pkg/log"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("contactbook", zapcore.InfoLevel)

	config, err := config.NewAppConfig()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionString)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// password hasher
	hasher := hash.NewBcryptHasher(hash.DefaultCost)

	// repositories
	users := repository.NewUserRepository(dbConn)
	contacts := repository.NewContactRepository(dbConn)

	if err := users.Migrate(); err != nil {
		logger.Errorw("failed to migrate users table", "error", err)
		return err
	}
	if err := contacts.Migrate(); err != nil {
		logger.Errorw("failed to migrate contacts table", "error", err)
		return err
	}

	// core services
	authService := core.NewAuth(logger, users, jwtService, hasher)
	contactService := core.NewContacts(logger, contacts)

	// handlers
	userHlr := handler.NewUserHandler(logger, payload.DecodeValidator{}, authService)
	contactHlr := handler.NewContactHandler(logger, payload.DecodeValidator{}, contactService)

	// middleware
	authGate := middleware.NewAuthMiddleware(logger, jwtService)

	mux := http.NewServeMux()

	// register routes
	mux.HandleFunc(handler.RegisterUser, userHlr.HandleRegister)
	mux.HandleFunc(handler.LoginUser, userHlr.HandleLogin)
	mux.HandleFunc(handler.GetUsers, userHlr.HandleGetUsers)
	mux.HandleFunc(handler.GetUserByID, userHlr.HandleGetUser)

	mux.Handle(handler.AddContact, authGate.RequireAuth(http.HandlerFunc(contactHlr.HandleAddContact)))
	mux.Handle(handler.GetContacts, authGate.RequireAuth(http.HandlerFunc(contactHlr.HandleGetContacts)))
	mux.Handle(handler.GetContactByID, authGate.RequireAuth(http.HandlerFunc(contactHlr.HandleGetContact)))
	mux.Handle(handler.UpdateContact, authGate.RequireAuth(http.HandlerFunc(contactHlr.HandleUpdateContact)))
	mux.Handle(handler.DeleteContact, authGate.RequireAuth(http.HandlerFunc(contactHlr.HandleDeleteContact)))

	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
