package controllers

import (
	"context"
	"net/http"

	"github.com/parthkumar123/backend/internal/app"
	"github.com/parthkumar123/backend/internal/utils"
)

type HealthController struct {
	app *app.App
}

func NewHealthController(app *app.App) *HealthController {
	return &HealthController{
		app: app,
	}
}

type healthCheckResponse struct {
	Status string `json:"status"`
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.app.DB.Ping(context.Background()); err != nil {
		utils.Logger.WithError(err).Error("Database unreachable")
		utils.RespondError(
			w, http.StatusServiceUnavailable, "Database unreachable", false, err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, healthCheckResponse{Status: "OK"})
}
