package platformclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	platformdomain "github.com/vfg2006/sales-commission-api/infrastructure/integrator/platform/domain"
)

// ErrUnexpectedResponse indica um corpo 2xx que não é o objeto JSON esperado
var ErrUnexpectedResponse = errors.New("resposta em formato inesperado")

func (c *PlatformClient) LookupTransaction(ctx context.Context, platform string, request platformdomain.LookupRequest) (*platformdomain.LookupResponse, error) {
	var response platformdomain.LookupResponse
	if err := c.call(ctx, platform+"-transaction-lookup", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *PlatformClient) Sync(ctx context.Context, platform string, request platformdomain.SyncRequest) (*platformdomain.SyncResponse, error) {
	var response platformdomain.SyncResponse
	if err := c.call(ctx, platform+"-sync", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *PlatformClient) call(ctx context.Context, function string, body interface{}, out interface{}) error {
	endpoint, err := url.Parse(c.config.URL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, function)

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("erro ao serializar a requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("requisição %s falhou com status: %s", function, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}

	return nil
}
