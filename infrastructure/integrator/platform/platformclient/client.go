package platformclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	platformdomain "github.com/vfg2006/sales-commission-api/infrastructure/integrator/platform/domain"
	"github.com/vfg2006/sales-commission-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultTimeout = 30 * time.Second

type Client interface {
	LookupTransaction(ctx context.Context, platform string, request platformdomain.LookupRequest) (*platformdomain.LookupResponse, error)
	Sync(ctx context.Context, platform string, request platformdomain.SyncRequest) (*platformdomain.SyncResponse, error)
}

type PlatformClient struct {
	httpClient *http.Client
	config     config.PlatformFunctions
}

// NewClient cria o cliente das funções remotas de consulta e sincronização
func NewClient(cfg config.PlatformFunctions) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &PlatformClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
