/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package diagnostics

import (
	"fmt"
	"io"
	"net/http"

	"github.com/alexliesenfeld/health"
	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/dresume/credit/internal/logfields"
	"github.com/dresume/credit/pkg/observability/health/healthutil"
)

var logger = log.New("diagnostics")

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type Config struct {
	Checker       health.Checker
	ResponseTimes *healthutil.ResponseTimes
	Version       string
}

// Controller serves service health, the client version and runtime log levels.
type Controller struct {
	healthHandler http.Handler
	version       string
}

type versionResponse struct {
	Version string `json:"version"`
}

func NewController(router router, config *Config) *Controller {
	c := &Controller{
		healthHandler: health.NewHandler(config.Checker,
			health.WithResultWriter(healthutil.NewJSONResultWriter(config.ResponseTimes))),
		version: config.Version,
	}

	router.GET("/healthcheck", c.GetHealthcheck)
	router.GET("/version", c.GetVersion)
	router.POST("/loglevels", c.PostLogLevels)

	return c
}

// GetHealthcheck reports the reachability of each service.
// GET /healthcheck.
func (c *Controller) GetHealthcheck(ctx echo.Context) error {
	c.healthHandler.ServeHTTP(ctx.Response(), ctx.Request())

	return nil
}

// GET /version.
func (c *Controller) GetVersion(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, versionResponse{Version: c.version})
}

// PostLogLevels updates log levels from a spec such as "credential-service=DEBUG:INFO".
// POST /loglevels.
func (c *Controller) PostLogLevels(ctx echo.Context) error {
	b, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}

	spec := string(b)

	if err = log.SetSpec(spec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("failed to set log spec: %s", err))
	}

	logger.Info("Log levels modified", logfields.WithUserLogLevel(spec))

	return ctx.NoContent(http.StatusOK)
}
