package utils

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

const (
	StatusSuccess = "success"
	StatusOk      = "ok"
	StatusError   = "error"
)

// ErrorResponse is the uniform error body. The Error field carries
// diagnostic detail and is only populated outside production.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// RespondError builds a JSON error response. The optional devErr is
// logged always, but echoed to the client only when showDiagnostics
// is set (non-production environments).
func RespondError(
	w http.ResponseWriter,
	status int,
	publicMessage string,
	showDiagnostics bool,
	devErrs ...error,
) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errBody := ErrorResponse{
		Status:  StatusError,
		Message: publicMessage,
	}
	if showDiagnostics && len(devErrs) > 0 && devErrs[0] != nil {
		errBody.Error = devErrs[0].Error()
	}
	_ = json.NewEncoder(w).Encode(errBody)

	if len(devErrs) > 0 && devErrs[0] != nil {
		Logger.WithFields(logrus.Fields{
			"status": status,
			"error":  devErrs[0].Error(),
		}).Error(publicMessage)
	} else {
		Logger.WithFields(logrus.Fields{
			"status": status,
		}).Error(publicMessage)
	}
}

// RespondWithJSON for successful cases.
func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
