// Package portalapi is the one HTTP client of the portal backend. Every call
// goes through Client.do, which validates payloads, attaches the bearer token
// of the request session and normalizes failures into *upstream.APIError.
package portalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/pkg/requestid"
	"portal_expositor/pkg/schema"
	"portal_expositor/pkg/upstream"
	"reflect"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	DefaultTimeout = 20 * time.Second
	maxBodyBytes   = 4 << 20
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type call struct {
	method string
	path   string
	query  url.Values
	body   any
	out    any
}

func (c *Client) do(ctx context.Context, in call) error {
	var reader io.Reader
	if in.body != nil {
		if err := validatePayload(in.body); err != nil {
			log.Warn().Str("method", in.method).Str("path", in.path).Err(err).Msg("[portalapi][client] request payload rejected")
			return &upstream.APIError{
				Status:  http.StatusBadRequest,
				Message: schema.FirstMessage(err),
				Kind:    upstream.KindValidation,
				Err:     err,
			}
		}
		raw, err := json.Marshal(in.body)
		if err != nil {
			return &upstream.APIError{Status: http.StatusBadRequest, Message: err.Error(), Kind: upstream.KindValidation, Err: err}
		}
		reader = bytes.NewReader(raw)
	}

	endpoint := c.baseURL + "/" + strings.TrimLeft(in.path, "/")
	if len(in.query) > 0 {
		endpoint += "?" + in.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, in.method, endpoint, reader)
	if err != nil {
		return &upstream.APIError{Message: upstream.MsgNetwork, Kind: upstream.KindNetwork, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s, ok := entities.SessionFromContext(ctx); ok && s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn().Str("method", in.method).Str("path", in.path).Err(err).Msg("[portalapi][client] network failure")
		return &upstream.APIError{Message: upstream.MsgNetwork, Kind: upstream.KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &upstream.APIError{Status: resp.StatusCode, Message: upstream.MsgNetwork, Kind: upstream.KindNetwork, Err: err}
	}

	log.Debug().
		Str("method", in.method).
		Str("path", in.path).
		Int("status_code", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("[portalapi][client] response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return httpError(resp.StatusCode, raw)
	}

	if in.out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.Unmarshal(raw, in.out); err != nil {
		return badResponse(err, raw)
	}
	if err := validatePayload(in.out); err != nil {
		log.Warn().Str("path", in.path).Err(err).Msg("[portalapi][client] response payload rejected")
		return badResponse(err, raw)
	}
	return nil
}

func badResponse(err error, raw []byte) error {
	return &upstream.APIError{
		Status:  http.StatusBadGateway,
		Message: upstream.MsgBadResponse,
		Body:    raw,
		Kind:    upstream.KindValidation,
		Err:     err,
	}
}

// httpError reads the backend's {message} which may be a string or a list.
func httpError(status int, raw []byte) error {
	apiErr := &upstream.APIError{Status: status, Body: raw, Kind: upstream.KindHTTP}

	var body struct {
		Message json.RawMessage `json:"message"`
	}
	if json.Unmarshal(raw, &body) == nil && len(body.Message) > 0 {
		var single string
		var many []string
		switch {
		case json.Unmarshal(body.Message, &single) == nil && single != "":
			apiErr.Message = single
			apiErr.Messages = []string{single}
		case json.Unmarshal(body.Message, &many) == nil && len(many) > 0:
			apiErr.Message = many[0]
			apiErr.Messages = many
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = upstream.DefaultMessage(status)
	}
	return apiErr
}

func validatePayload(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	return schema.Validate(v)
}
