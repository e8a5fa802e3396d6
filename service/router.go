// SPDX-License-Identifier: MIT
//
// File: router.go
// Role: gin engine assembly and HTTP server lifecycle for mazed.

package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Controller registers a group of routes.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
}

// Router owns the gin engine and the controllers mounted on it.
type Router struct {
	addr        string
	baseURL     string
	controllers []Controller
	log         *logrus.Logger
}

// RouterConfig holds the settings for NewRouter.
type RouterConfig struct {
	Addr        string // address to listen on
	BaseURL     string // prefix of every route, e.g. "/api"
	Controllers []Controller
	Logger      *logrus.Logger
}

// NewRouter creates a Router. A nil Logger falls back to logrus's standard
// logger.
func NewRouter(config RouterConfig) *Router {
	log := config.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		log:         log,
	}
}

// Handler builds the gin engine: request IDs and access logging first, then
// every controller under <baseURL>/v1.
func (r *Router) Handler() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog(r.log))

	api := router.Group(r.baseURL)
	{
		v1 := api.Group("/v1")
		for _, c := range r.controllers {
			c.RegisterPublic(v1)
		}
	}

	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (r *Router) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              r.addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.log.WithField("addr", r.addr).Info("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	r.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
