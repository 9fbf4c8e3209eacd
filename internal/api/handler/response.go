package handler

import (
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-commission-api/internal/domain"
	"github.com/vfg2006/sales-commission-api/pkg/apiErrors"
	"github.com/vfg2006/sales-commission-api/pkg/log"
	"github.com/vfg2006/sales-commission-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxJSONBody = 1 << 20

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
		return false
	}
	return true
}

// writeServiceError registra o erro do caso de uso e responde com o código que ele carrega
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var coded apiErrors.CodedError
	if errors.As(err, &coded) && apiErrors.StatusFor(coded.APICode()) < http.StatusInternalServerError {
		logger.Warn(action)
	} else {
		logger.Error(action)
	}

	apiErrors.WriteFromError(w, err)
}

func writeFile(w http.ResponseWriter, file *domain.ExportFile) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Content); err != nil {
		logrus.WithError(err).WithField("filename", file.Filename).Error("Erro ao enviar arquivo")
	}
}

func claimsFrom(r *http.Request) *domain.Claims {
	claims, _ := middleware.ClaimsFromContext(r.Context())
	return claims
}

func parseUint(value string, fallback uint64) (uint64, error) {
	if value == "" {
		return fallback, nil
	}
	return strconv.ParseUint(value, 10, 64)
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
