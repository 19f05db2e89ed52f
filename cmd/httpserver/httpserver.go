// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/client-bank/internal/accountdelivery"
	"github.com/go-petr/client-bank/internal/accountrepo"
	"github.com/go-petr/client-bank/internal/accountservice"
	"github.com/go-petr/client-bank/internal/clientdelivery"
	"github.com/go-petr/client-bank/internal/clientrepo"
	"github.com/go-petr/client-bank/internal/clientservice"
	"github.com/go-petr/client-bank/internal/domain"
	"github.com/go-petr/client-bank/internal/middleware"
	"github.com/go-petr/client-bank/internal/ownershiprepo"
	"github.com/go-petr/client-bank/internal/store"
	"github.com/go-petr/client-bank/pkg/configpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	if conn == nil {
		return nil, errors.New("cannot create server without database connection")
	}

	accountRepo := accountrepo.NewRepoPGS(conn)
	clientRepo := clientrepo.NewRepoPGS(conn)
	ownershipRepo := ownershiprepo.NewRepoPGS(conn)
	txStore := store.New(conn)

	accountService := accountservice.New(accountRepo, ownershipRepo, txStore)
	clientService := clientservice.New(clientRepo, ownershipRepo, accountRepo, txStore)

	accountHandler := accountdelivery.NewHandler(accountService)
	clientHandler := clientdelivery.NewHandler(clientService)

	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/clients/personal", clientHandler.CreatePersonal)
	engine.POST("/clients/business", clientHandler.CreateBusiness)
	engine.GET("/clients", clientHandler.List)
	engine.GET("/clients/:id", clientHandler.Get)
	engine.PUT("/clients/personal/:id", clientHandler.UpdatePersonal)
	engine.PUT("/clients/business/:id", clientHandler.UpdateBusiness)
	engine.DELETE("/clients/:id", clientHandler.Delete)
	engine.GET("/clients/:id/accounts", accountHandler.ListByClient)

	engine.POST("/accounts", accountHandler.Create)
	engine.GET("/accounts", accountHandler.List)
	engine.GET("/accounts/:id", accountHandler.Get)
	engine.PUT("/accounts/:id", accountHandler.Update)
	engine.DELETE("/accounts/:id", accountHandler.Delete)

	engine.POST("/accounts/:id/deposit", accountHandler.Deposit)
	engine.POST("/accounts/:id/withdraw", accountHandler.Withdraw)
	engine.POST("/accounts/:id/charge", accountHandler.Charge)
	engine.POST("/accounts/:id/payment", accountHandler.Payment)
	engine.POST("/accounts/:id/interest", accountHandler.Interest)
	engine.POST("/accounts/:id/credit-limit", accountHandler.IncreaseCreditLimit)
	engine.POST("/accounts/:id/reset-withdrawals", accountHandler.ResetWithdrawals)
	engine.GET("/accounts/:id/minimum-payment", accountHandler.MinimumPayment)

	engine.GET("/accounts/:id/owners", accountHandler.Owners)
	engine.POST("/accounts/:id/owners", accountHandler.AddOwner)
	engine.DELETE("/accounts/:id/owners/:client_id", accountHandler.RemoveOwner)
	engine.GET("/joint-accounts", accountHandler.JointAccounts)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		domain.RegisterValidations(v)
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
