package portalapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/pkg/requestid"
	"portal_expositor/pkg/upstream"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", time.Second)
}

func withSession(token string) context.Context {
	return entities.ContextWithSession(context.Background(), entities.Session{Token: token, OwnerID: "owner-1"})
}

func validUpsert() entities.UpsertStall {
	return entities.UpsertStall{
		PdvName:     "Pastel do Zé",
		MachinesQty: 1,
		StallType:   entities.StallTypeOpen,
		StallSize:   entities.StallSize3x3,
		TeamQty:     2,
		Categories: []entities.UpsertMenuCategory{
			{Name: "Pastéis", Order: 0, Products: []entities.UpsertMenuProduct{{Name: "Carne", PriceCents: 1250, Order: 0}}},
		},
		Equipments: []entities.UpsertEquipment{},
	}
}

func TestClient_SendsBearerAndDecodes(t *testing.T) {
	var gotAuth, gotPath, gotQuery, gotRequestID string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotRequestID = r.Header.Get(requestid.Header)
		_, _ = io.WriteString(w, `{"items":[],"meta":{"page":2,"pageSize":10,"totalItems":0,"totalPages":1}}`)
	})

	ctx := requestid.NewContext(withSession("tok-123"), "req-1")
	page, err := NewStallGateway(client).List(ctx, 2, 10)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "/stalls", gotPath)
	assert.Equal(t, "page=2&pageSize=10", gotQuery)
	assert.Equal(t, "req-1", gotRequestID)
	assert.Equal(t, 2, page.Meta.Page)
}

func TestClient_NoSessionNoAuthorization(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = io.WriteString(w, `{"accessToken":"jwt","owner":{"id":"o1","personType":"PF","document":"12345678901"}}`)
	})

	res, err := NewAuthGateway(client).Login(context.Background(), entities.LoginPayload{Email: "a@b.com", Password: "12345678"})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.Equal(t, "a@b.com", gotBody["email"])
	assert.Equal(t, "jwt", res.AccessToken)
}

func TestClient_ErrorNormalization(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		body     string
		message  string
		messages []string
	}{
		{"string message", 400, `{"message":"Documento já cadastrado"}`, "Documento já cadastrado", []string{"Documento já cadastrado"}},
		{"array message", 422, `{"message":["pdvName too short","teamQty max"]}`, "pdvName too short", []string{"pdvName too short", "teamQty max"}},
		{"401 without message", 401, `{}`, upstream.MsgUnauthorized, nil},
		{"403 without body", 403, ``, upstream.MsgForbidden, nil},
		{"500 html", 500, `<html>oops</html>`, upstream.MsgRequest, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			})

			_, err := NewOwnerGateway(client).GetMe(withSession("t"))
			apiErr, ok := upstream.As(err)
			require.True(t, ok, "expected APIError, got %v", err)
			assert.Equal(t, upstream.KindHTTP, apiErr.Kind)
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, tc.message, apiErr.Message)
			assert.Equal(t, tc.messages, apiErr.Messages)
			assert.Equal(t, tc.body, string(apiErr.Body))
		})
	}

	t.Run("401 is unauthorized", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		err := NewFairGateway(client).UnlinkStall(withSession("t"), "f1", "s1")
		assert.True(t, upstream.IsUnauthorized(err))
	})
}

func TestClient_RequestSchemaFailureNeverSends(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	payload := validUpsert()
	payload.TeamQty = 40
	_, err := NewStallGateway(client).Create(withSession("t"), payload)

	apiErr, ok := upstream.As(err)
	require.True(t, ok)
	assert.False(t, called)
	assert.Equal(t, upstream.KindValidation, apiErr.Kind)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "teamQty: valor máximo 15.", apiErr.Message)
}

func TestClient_ResponseSchemaFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"stallId":""}`)
	})

	_, err := NewStallGateway(client).Create(withSession("t"), validUpsert())
	apiErr, ok := upstream.As(err)
	require.True(t, ok)
	assert.Equal(t, upstream.KindValidation, apiErr.Kind)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, upstream.MsgBadResponse, apiErr.Message)
}

func TestClient_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewFairGateway(NewClient(url, time.Second)).List(withSession("t"))
	apiErr, ok := upstream.As(err)
	require.True(t, ok)
	assert.Equal(t, upstream.KindNetwork, apiErr.Kind)
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, upstream.MsgNetwork, apiErr.Message)
}

func TestFairGateway_LinkQuery(t *testing.T) {
	var gotMethod, gotPath, gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath, gotQuery = r.Method, r.URL.Path, r.URL.RawQuery
		_, _ = io.WriteString(w, `{"ok":true}`)
	})
	gw := NewFairGateway(client)

	require.NoError(t, gw.LinkStall(withSession("t"), "fair-1", "stall-1", "p-9"))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/exhibitor/fairs/fair-1/stalls/stall-1", gotPath)
	assert.Equal(t, "purchaseId=p-9", gotQuery)

	require.NoError(t, gw.LinkStall(withSession("t"), "fair-1", "stall-1", ""))
	assert.Empty(t, gotQuery)
}

func TestInterestGateway_JoinsMessages(t *testing.T) {
	t.Run("joined backend messages", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"message":["email inválido","telefone inválido"]}`)
		})
		_, err := NewInterestGateway(client).Upsert(context.Background(), validInterest())
		apiErr, ok := upstream.As(err)
		require.True(t, ok)
		assert.Equal(t, "email inválido telefone inválido", apiErr.Message)
	})

	t.Run("fallback message", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		_, err := NewInterestGateway(client).Upsert(context.Background(), validInterest())
		apiErr, ok := upstream.As(err)
		require.True(t, ok)
		assert.Equal(t, msgInterestFallback, apiErr.Message)
	})
}

func validInterest() entities.PublicInterest {
	return entities.PublicInterest{
		PersonType: entities.PersonTypePF,
		Document:   "12345678901",
		FullName:   "Maria Silva",
		Email:      "maria@example.com",
		Phone:      "11988887777",
	}
}
