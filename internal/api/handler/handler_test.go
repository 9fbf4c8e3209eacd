package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-commission-api/internal/api/handler/router"
	"github.com/vfg2006/sales-commission-api/internal/domain"
	"github.com/vfg2006/sales-commission-api/pkg/apiErrors"
	"github.com/vfg2006/sales-commission-api/pkg/middleware"
)

func claims(subject string, role int) *domain.Claims {
	return &domain.Claims{RoleID: role, RegisteredClaims: jwt.RegisteredClaims{Subject: subject}}
}

var (
	admin   = claims("admin-1", domain.RoleAdmin)
	manager = claims("manager-1", domain.RoleManager)
	seller  = claims("seller-1", domain.RoleSeller)
)

// serve executa a requisição pelas rotas informadas, já autenticada com as claims
func serve(routes []router.Route, req *http.Request, user *domain.Claims) *httptest.ResponseRecorder {
	if user != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, user))
	}

	rec := httptest.NewRecorder()
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func apiErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[apiErrors.APIError](t, rec).Code
}

func multipartRequest(t *testing.T, path, filename string, content []byte, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}
