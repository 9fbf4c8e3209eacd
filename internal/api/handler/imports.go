package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-commission-api/internal/domain"
	"github.com/vfg2006/sales-commission-api/internal/usecases/importing"
	"github.com/vfg2006/sales-commission-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-commission-api/pkg/apiErrors"
	"github.com/vfg2006/sales-commission-api/pkg/log"
)

const (
	defaultMaxUploadMB = 10
	defaultLogsLimit   = 50
	multipartOverhead  = 1 << 20
)

type upload struct {
	filename string
	data     []byte
}

// readUpload lê o campo "file" do formulário multipart respeitando o limite de upload
func readUpload(w http.ResponseWriter, r *http.Request, maxUploadMB int) (*upload, bool) {
	if maxUploadMB <= 0 {
		maxUploadMB = defaultMaxUploadMB
	}
	limit := int64(maxUploadMB) << 20

	r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)
	if err := r.ParseMultipartForm(limit); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, fmt.Sprintf("Arquivo excede o limite de %d MB", maxUploadMB), nil)
			return nil, false
		}
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formulário de upload inválido", nil)
		return nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Envie o arquivo no campo file", nil)
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Não foi possível ler o arquivo enviado", nil)
		return nil, false
	}

	return &upload{filename: header.Filename, data: data}, true
}

func PreviewImport(service importing.ImportingService, maxUploadMB int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, ok := readUpload(w, r, maxUploadMB)
		if !ok {
			return
		}

		preview, err := service.Preview(r.Context(), file.filename, file.data)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao pré-visualizar importação")
			return
		}

		writeJSON(w, http.StatusOK, preview)
	})
}

// RunImport recebe o arquivo e as escolhas da tela (campo "request", JSON) e concilia as vendas
func RunImport(service importing.ImportingService, maxUploadMB int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, ok := readUpload(w, r, maxUploadMB)
		if !ok {
			return
		}

		var request domain.ImportRequest
		if raw := r.FormValue("request"); raw != "" {
			if err := json.UnmarshalFromString(raw, &request); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Campo request inválido: "+err.Error(), nil)
				return
			}
		}
		if claims := claimsFrom(r); claims != nil {
			request.ImportedBy = optionalString(claims.UserID())
		}

		result, err := service.Import(r.Context(), file.filename, file.data, &request)
		if err != nil {
			// falha ao gravar o log depois de conciliar: o resultado vai junto com o erro
			var coded apiErrors.CodedError
			if result != nil && errors.As(err, &coded) {
				log.ForContext(r.Context()).WithError(err).Error("Importação concluída sem registro de log")
				apiErrors.WriteError(w, coded.APICode(), coded.APIMessage(), result)
				return
			}
			writeServiceError(w, r, err, "Erro ao importar arquivo")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"import_log_id": result.LogID,
			"import_file":   file.filename,
			"processed":     result.Processed,
			"created":       result.Created,
			"updated":       result.Updated,
			"failed":        result.Failed,
		}).Info("Importação concluída")

		writeJSON(w, http.StatusOK, result)
	})
}

func ListImports(service importing.ImportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseUint(r.URL.Query().Get("limit"), defaultLogsLimit)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
			return
		}

		logs, err := service.ListLogs(r.Context(), limit)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar importações")
			return
		}
		if logs == nil {
			logs = []*domain.CsvImportLog{}
		}

		writeJSON(w, http.StatusOK, logs)
	})
}

func DownloadImportErrors(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da importação é obrigatório", nil)
			return
		}

		file, err := service.ImportErrors(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao exportar erros da importação")
			return
		}

		writeFile(w, file)
	})
}
