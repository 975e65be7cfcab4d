package adlibraryclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	adlibdomain "github.com/vfg2006/competitor-ads-api/infrastructure/integrator/adlibrary/domain"
	"github.com/vfg2006/competitor-ads-api/internal/config"
	"github.com/vfg2006/competitor-ads-api/internal/domain"
)

// FetchFilters define a janela de busca na fonte: datas explícitas ou uma
// contagem dos N anúncios mais recentes.
type FetchFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Count     *int
}

type Client interface {
	FetchAds(ctx context.Context, libraryURL string, filters *FetchFilters) (*adlibdomain.FetchResponse, error)
}

type AdLibraryClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &AdLibraryClient{
		Cfg: cfg,
		httpClient: &http.Client{
			// A fonte está fora do nosso controle: timeout explícito sempre
			Timeout: time.Duration(cfg.AdLibrary.RequestTimeoutSeconds) * time.Second,
		},
	}
}

// FetchAds busca anúncios na fonte para uma URL de biblioteca, com tentativas
// limitadas em falhas de rede e respostas 5xx. Payload indecifrável não é
// retentado: a fonte respondeu, o conteúdo é que está quebrado.
func (c *AdLibraryClient) FetchAds(ctx context.Context, libraryURL string, filters *FetchFilters) (*adlibdomain.FetchResponse, error) {
	requestURL, err := c.buildRequestURL(libraryURL, filters)
	if err != nil {
		return nil, err
	}

	maxRetries := c.Cfg.AdLibrary.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		response, retryable, err := c.doRequest(ctx, requestURL)
		if err == nil {
			return response, nil
		}

		lastErr = err
		if !retryable {
			return nil, err
		}

		logrus.WithFields(logrus.Fields{
			"attempt":     attempt,
			"max_retries": maxRetries,
			"error":       err.Error(),
		}).Warn("adlibrary: tentativa de busca falhou")

		if attempt < maxRetries {
			select {
			case <-ctx.Done():
				return nil, errors.Wrap(domain.ErrSourceUnavailable, ctx.Err().Error())
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}
	}

	return nil, lastErr
}

func (c *AdLibraryClient) buildRequestURL(libraryURL string, filters *FetchFilters) (string, error) {
	if libraryURL == "" {
		return "", errors.Wrap(domain.ErrConfiguration, "ads_library_url vazia")
	}

	params := url.Values{}
	params.Add("library_url", libraryURL)
	params.Add("access_token", c.Cfg.AdLibrary.AccessToken)

	if filters != nil {
		if filters.StartDate != nil && filters.EndDate != nil {
			params.Add("start_date", filters.StartDate.Format(time.DateOnly))
			params.Add("end_date", filters.EndDate.Format(time.DateOnly))
		} else if filters.Count != nil {
			params.Add("count", fmt.Sprintf("%d", *filters.Count))
		}
	}

	return fmt.Sprintf("%s/ads?%s", c.Cfg.AdLibrary.BaseURL, params.Encode()), nil
}

// doRequest executa uma única tentativa. O segundo retorno indica se o erro
// justifica nova tentativa.
func (c *AdLibraryClient) doRequest(ctx context.Context, requestURL string) (*adlibdomain.FetchResponse, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, false, errors.Wrap(domain.ErrSourceUnavailable, err.Error())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, errors.Wrap(domain.ErrSourceUnavailable, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, errors.Wrap(domain.ErrSourceUnavailable, err.Error())
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, true, errors.Wrapf(domain.ErrSourceUnavailable, "fonte respondeu %d", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, false, errors.Wrapf(domain.ErrSourceUnavailable, "fonte respondeu %d: %s", resp.StatusCode, string(body))
	}

	response := &adlibdomain.FetchResponse{}
	if err := json.Unmarshal(body, response); err != nil {
		return nil, false, errors.Wrap(domain.ErrMalformedSourceData, err.Error())
	}

	return response, false, nil
}
