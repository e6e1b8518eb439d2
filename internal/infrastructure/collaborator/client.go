// Package collaborator implementa los contratos de internal/domain/remote
// contra el colaborador central de procedimientos: un cliente HTTP tipado con
// caché de lectura para las consultas e invalidación declarativa tras las
// mutaciones. El cliente nunca toca la base de datos del colaborador.
package collaborator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/avicampo/avicola-api/internal/domain"
	"github.com/avicampo/avicola-api/internal/domain/remote"
	"github.com/avicampo/avicola-api/pkg/config"
	"github.com/avicampo/avicola-api/pkg/logger"
)

// Namespaces de alcance del colaborador. Cada consulta viaja bajo el namespace
// de su modo; el colaborador impone ahí el alcance de datos (un oficial jamás
// puede pedir datos con forma gerencial).
const (
	NamespaceOfficer    = "officer"
	NamespaceManagement = "management"
)

// errorBody envelope de error del colaborador.
type errorBody struct {
	Message string `json:"message"`
}

// Client cliente base del colaborador: transporte resty + caché de queries.
type Client struct {
	http  *resty.Client
	cache remote.QueryCache
	cfg   config.RemoteConfig
	log   *logger.Logger
}

// NewClient construye el cliente del colaborador.
func NewClient(cfg config.RemoteConfig, cache remote.QueryCache, log *logger.Logger) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Api-Key", cfg.APIKey).
		SetTimeout(cfg.Timeout)

	return &Client{http: rc, cache: cache, cfg: cfg, log: log.Component("collaborator")}
}

// query ejecuta una consulta GET /rpc/<operation> con caché de lectura: si la
// clave está vigente se responde desde el caché sin tocar la red. El payload
// cacheado es el JSON crudo de la respuesta.
func (c *Client) query(ctx context.Context, operation, cacheKey string, params map[string]string, out any) error {
	if payload, ok, err := c.cache.Get(ctx, cacheKey); err != nil {
		c.log.Warn().Err(err).Str("key", cacheKey).Msg("Caché de queries no disponible, consultando directo")
	} else if ok {
		return json.Unmarshal(payload, out)
	}

	errBody := new(errorBody)
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetError(errBody).
		Get("/rpc/" + operation)
	if err != nil {
		return fmt.Errorf("consultando %s: %w", operation, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return c.mapError(resp.StatusCode(), errBody.Message)
	}

	raw := resp.Body()
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decodificando respuesta de %s: %w", operation, err)
	}
	if err := c.cache.Set(ctx, cacheKey, raw, c.cfg.CacheTTL); err != nil {
		c.log.Warn().Err(err).Str("key", cacheKey).Msg("No se pudo cachear la respuesta")
	}
	return nil
}

// mutate ejecuta una mutación POST /rpc/<operation>. Las mutaciones nunca pasan
// por el caché; la invalidación posterior la decide la capa de aplicación.
func (c *Client) mutate(ctx context.Context, operation string, body, out any) error {
	errBody := new(errorBody)
	req := c.http.R().SetContext(ctx).SetError(errBody)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Post("/rpc/" + operation)
	if err != nil {
		return fmt.Errorf("mutación %s: %w", operation, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return c.mapError(resp.StatusCode(), errBody.Message)
	}
	return nil
}

// mapError traduce el HTTP del colaborador a errores de dominio donde existe un
// centinela; el resto se conserva como remote.Error con el mensaje legible, que
// la UI muestra tal cual.
func (c *Client) mapError(status int, message string) error {
	switch status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusConflict:
		if message != "" {
			return fmt.Errorf("%w: %s", domain.ErrConflict, message)
		}
		return domain.ErrConflict
	default:
		return &remote.Error{StatusCode: status, Message: message}
	}
}

// filterParams serializa el ListFilter como query params. OfficerID nil no viaja
// (ausente ≠ vacío).
func filterParams(f remote.ListFilter) map[string]string {
	params := map[string]string{"orgId": f.OrgID}
	if f.Search != "" {
		params["search"] = f.Search
	}
	if f.FarmerID != "" {
		params["farmerId"] = f.FarmerID
	}
	if f.PageSize > 0 {
		params["pageSize"] = fmt.Sprintf("%d", f.PageSize)
	}
	if f.Cursor != "" {
		params["cursor"] = f.Cursor
	}
	if f.OfficerID != nil {
		params["officerId"] = *f.OfficerID
	}
	return params
}

// listEnvelope envelope genérico de los listados paginados del colaborador.
type listEnvelope[T any] struct {
	Data       []T    `json:"data"`
	NextCursor string `json:"nextCursor,omitempty"`
}

// itemEnvelope envelope de las consultas de un solo recurso.
type itemEnvelope[T any] struct {
	Data T `json:"data"`
}
