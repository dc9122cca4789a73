package pluralkit

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const systemJSON = `{
	"id": "exmpl",
	"uuid": "00000000-0000-0000-0000-000000000002",
	"name": "Example System",
	"tag": "| Ex",
	"created": "2019-01-01T00:00:00Z",
	"description": "a test system"
}`

func newTestClient(t *testing.T, token string, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(token, zerolog.Nop(),
		WithBaseURL(server.URL),
		WithRateLimit(1000, 1000), // keep timing out of functional tests
	)
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client
}

func TestGetSystem(t *testing.T) {
	client := newTestClient(t, "test-token", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/systems/exmpl", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "test-token", r.Header.Get("Authorization"))
		io.WriteString(w, systemJSON)
	}))

	system, err := client.GetSystem(context.Background(), "exmpl")
	require.NoError(t, err)
	require.NotNil(t, system)
	assert.Equal(t, "exmpl", system.ID)
	assert.Equal(t, "Example System", system.Name)
	require.NotNil(t, system.Description)
	assert.Equal(t, "a test system", *system.Description)
	assert.Nil(t, system.Privacy)
}

func TestGetSystemNotFound(t *testing.T) {
	client := newTestClient(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"code": 20001, "message": "System not found."}`)
	}))

	system, err := client.GetSystem(context.Background(), "nope!")
	require.NoError(t, err)
	assert.Nil(t, system)
}

func TestErrorCarriesTransportStatus(t *testing.T) {
	// the body has no http_code of its own; the transport status must
	// be injected into the decoded error
	client := newTestClient(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"code": 20001, "message": "System not found."}`)
	}))

	_, err := client.GetSystemSettings(context.Background(), "nope!")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, 20001, apiErr.Code)
	assert.Equal(t, "System not found.", apiErr.Message)
	assert.True(t, apiErr.IsNotFound())
	assert.False(t, apiErr.IsUnauthorized())
}

func TestErrorSubErrors(t *testing.T) {
	client := newTestClient(t, "token", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{
			"code": 40001,
			"message": "Validation failed.",
			"errors": [
				{"message": "Description too long.", "max_length": 1000, "actual_length": 1024},
				{"message": "Invalid color."}
			]
		}`)
	}))

	_, err := client.UpdateSystem(context.Background(), SelfRef, SystemPatch{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)

	require.Len(t, apiErr.Errors, 2)
	assert.Equal(t, "Description too long.", apiErr.Errors[0].Message)
	require.NotNil(t, apiErr.Errors[0].MaxLength)
	assert.Equal(t, 1000, *apiErr.Errors[0].MaxLength)
	assert.Equal(t, 1024, *apiErr.Errors[0].ActualLength)
	assert.Nil(t, apiErr.Errors[1].MaxLength)
}

func TestEmptyErrorBody(t *testing.T) {
	client := newTestClient(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.GetSystemSettings(context.Background(), "exmpl")
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
}

func TestUnparsableErrorBody(t *testing.T) {
	client := newTestClient(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		io.WriteString(w, "<html>rate limited by nginx</html>")
	}))

	_, err := client.GetSystemSettings(context.Background(), "exmpl")
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.StatusCode)
}

func TestAuthRequiredFailsBeforeNetwork(t *testing.T) {
	var calls atomic.Int64
	client := newTestClient(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		io.WriteString(w, systemJSON)
	}))

	_, err := client.UpdateSystem(context.Background(), SelfRef, SystemPatch{Name: Set("New Name")})
	assert.ErrorIs(t, err, ErrNotAuthorized)

	_, err = client.CreateMember(context.Background(), MemberPatch{Name: Set("Alice")})
	assert.ErrorIs(t, err, ErrNotAuthorized)

	err = client.DeleteSwitch(context.Background(), "some-switch")
	assert.ErrorIs(t, err, ErrNotAuthorized)

	assert.Equal(t, int64(0), calls.Load(), "no network call may be made without a token")
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	client := newTestClient(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		io.WriteString(w, systemJSON)
	}))

	_, err := client.GetSystem(context.Background(), "exmpl")
	require.NoError(t, err)
}

func TestPatchPayloadTriState(t *testing.T) {
	var body map[string]json.RawMessage
	client := newTestClient(t, "token", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		io.WriteString(w, systemJSON)
	}))

	patch := SystemPatch{
		Name:        Set("New Name"),
		Description: SetNull[string](),
		Privacy: Set(SystemPrivacy{
			DescriptionPrivacy: PrivacyPrivate,
		}),
	}
	_, err := client.UpdateSystem(context.Background(), SelfRef, patch)
	require.NoError(t, err)

	// set fields are present
	assert.Equal(t, `"New Name"`, string(body["name"]))
	// explicit null is sent as null
	assert.Equal(t, "null", string(body["description"]))
	// absent fields do not appear at all
	_, hasTag := body["tag"]
	assert.False(t, hasTag)

	// enums appear as wire strings, untouched levels are omitted
	var privacy map[string]string
	require.NoError(t, json.Unmarshal(body["privacy"], &privacy))
	assert.Equal(t, map[string]string{"description_privacy": "private"}, privacy)
}

func TestGuildIDBackfill(t *testing.T) {
	client := newTestClient(t, "token", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/systems/@me/guilds/1234", r.URL.Path)
		io.WriteString(w, `{"proxying_enabled": true, "tag_enabled": false}`)
	}))

	settings, err := client.GetSystemGuildSettings(context.Background(), 1234)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), settings.GuildID)
	assert.True(t, settings.ProxyingEnabled)
}

func TestCallAfterClose(t *testing.T) {
	client := newTestClient(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, systemJSON)
	}))
	client.Close()

	_, err := client.GetSystem(context.Background(), "exmpl")
	assert.ErrorIs(t, err, ErrClientClosed)
}

func TestGetFrontersNoContent(t *testing.T) {
	client := newTestClient(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	fronters, err := client.GetFronters(context.Background(), "exmpl")
	require.NoError(t, err)
	assert.Nil(t, fronters)
}

func TestGetSwitchesPagination(t *testing.T) {
	client := newTestClient(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2021-06-01T00:00:00Z", r.URL.Query().Get("before"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		io.WriteString(w, `[
			{"id": "swtch", "timestamp": "2021-05-30T00:00:00Z", "members": ["alcde"]},
			{"id": "swtcg", "timestamp": "2021-05-29T00:00:00Z", "members": []}
		]`)
	}))

	before, err := time.Parse(time.RFC3339, "2021-06-01T00:00:00Z")
	require.NoError(t, err)

	switches, err := client.GetSwitches(context.Background(), "exmpl", before, 2)
	require.NoError(t, err)
	require.Len(t, switches, 2)
	assert.Equal(t, []string{"alcde"}, switches[0].Members)
}

func TestExportSystem(t *testing.T) {
	client := newTestClient(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/systems/exmpl":
			io.WriteString(w, systemJSON)
		case "/systems/exmpl/members":
			io.WriteString(w, `[{"id": "alcde", "uuid": "u", "name": "Alice",
				"created": "2020-05-01T12:30:00Z", "proxy_tags": [], "keep_proxy": false}]`)
		case "/systems/exmpl/groups":
			assert.Equal(t, "true", r.URL.Query().Get("with_members"))
			io.WriteString(w, `[]`)
		case "/systems/exmpl/fronters":
			w.WriteHeader(http.StatusForbidden)
			io.WriteString(w, `{"code": 30008, "message": "Front history is private."}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	export, err := client.ExportSystem(context.Background(), "exmpl")
	require.NoError(t, err)
	require.NotNil(t, export)
	assert.Equal(t, "exmpl", export.System.ID)
	require.Len(t, export.Members, 1)
	assert.Empty(t, export.Groups)
	// private front history is tolerated, not an export failure
	assert.Nil(t, export.Fronters)
}
