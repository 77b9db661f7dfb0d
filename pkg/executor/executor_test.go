package executor

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func baseTemplate(url string) *Template {
	return &Template{
		ID:              1,
		Method:          "get",
		URL:             url,
		QueryParams:     map[string]any{},
		Headers:         map[string]any{},
		Cookies:         map[string]any{},
		BodyType:        BodyTypeNone,
		BodyData:        map[string]any{},
		TimeoutMs:       5000,
		FollowRedirects: true,
		VerifySSL:       true,
	}
}

func TestExecuteRendersURLAndQuery(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("u")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	tpl := baseTemplate(srv.URL + "/echo")
	tpl.QueryParams = map[string]any{"u": "{{uid}}"}
	ds := &Dataset{ID: 9, Variables: map[string]any{"uid": "u1"}}

	result, err := New(testLogger()).Execute(context.Background(), tpl, ds, nil, nil)
	require.NoError(t, err)

	require.NotNil(t, result.StatusCode)
	assert.Equal(t, 200, *result.StatusCode)
	assert.True(t, result.IsSuccess)
	assert.Nil(t, result.ErrorMessage)
	assert.Equal(t, "/echo", gotPath)
	assert.Equal(t, "u1", gotQuery)
	assert.Equal(t, `{"ok":true}`, result.Body)
	assert.Equal(t, "GET", result.RequestSnapshot["method"])
	assert.Equal(t, map[string]any{"u": "u1"}, result.RequestSnapshot["query_params"])
}

func TestExecuteDatasetOverridesBaseQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tpl := baseTemplate(srv.URL)
	tpl.QueryParams = map[string]any{"from": "base", "uid": "{{uid}}"}
	ds := &Dataset{
		ID:          3,
		QueryParams: map[string]any{"from": "dataset", "tag": "{{tag}}"},
		Variables:   map[string]any{"uid": "u100", "tag": "ok"},
	}

	result, err := New(testLogger()).Execute(context.Background(), tpl, ds, nil, nil)
	require.NoError(t, err)

	expected := map[string]any{"from": "dataset", "uid": "u100", "tag": "ok"}
	assert.Equal(t, expected, result.RequestSnapshot["query_params"])
}

func TestExecuteVariablePrecedence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tpl := baseTemplate(srv.URL + "/{{who}}")
	env := &Environment{ID: 1, Variables: map[string]any{"who": "env", "host": "h"}}
	ds := &Dataset{ID: 2, Variables: map[string]any{"who": "dataset"}}
	runtime := map[string]any{"who": "runtime"}

	result, err := New(testLogger()).Execute(context.Background(), tpl, ds, env, runtime)
	require.NoError(t, err)

	assert.Equal(t, srv.URL+"/runtime", result.RequestSnapshot["url"])
	variables := result.RequestSnapshot["variables"].(map[string]any)
	assert.Equal(t, "runtime", variables["who"])
	assert.Equal(t, "h", variables["host"])
}

func TestExecuteJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	tpl := baseTemplate(srv.URL)
	tpl.Method = "POST"
	tpl.BodyType = BodyTypeJSON
	tpl.BodyData = map[string]any{"uid": "{{uid}}", "count": "{{count}}"}
	runtime := map[string]any{"uid": "u1", "count": float64(3)}

	result, err := New(testLogger()).Execute(context.Background(), tpl, nil, nil, runtime)
	require.NoError(t, err)

	assert.True(t, result.IsSuccess)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, map[string]any{"uid": "u1", "count": float64(3)}, gotBody)
}

func TestExecuteFormBody(t *testing.T) {
	var gotForm string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotForm = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tpl := baseTemplate(srv.URL)
	tpl.Method = "POST"
	tpl.BodyType = BodyTypeForm
	tpl.BodyData = map[string]any{"a": "1", "b": float64(2)}

	result, err := New(testLogger()).Execute(context.Background(), tpl, nil, nil, nil)
	require.NoError(t, err)

	assert.True(t, result.IsSuccess)
	assert.Equal(t, "a=1&b=2", gotForm)
}

func TestExecuteRawBodyFallsBackToBodyData(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tpl := baseTemplate(srv.URL)
	tpl.Method = "POST"
	tpl.BodyType = BodyTypeRaw
	tpl.BodyData = map[string]any{"k": "v"}

	result, err := New(testLogger()).Execute(context.Background(), tpl, nil, nil, nil)
	require.NoError(t, err)

	assert.True(t, result.IsSuccess)
	assert.JSONEq(t, `{"k":"v"}`, gotBody)
}

func TestExecuteHeadersAndCookies(t *testing.T) {
	var gotAuth, gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if c, err := r.Cookie("session_id"); err == nil {
			gotCookie = c.Value
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tpl := baseTemplate(srv.URL)
	tpl.Headers = map[string]any{"Authorization": "Bearer {{token}}"}
	tpl.Cookies = map[string]any{"session_id": "{{sid}}"}
	runtime := map[string]any{"token": "tk", "sid": "s1"}

	result, err := New(testLogger()).Execute(context.Background(), tpl, nil, nil, runtime)
	require.NoError(t, err)

	assert.True(t, result.IsSuccess)
	assert.Equal(t, "Bearer tk", gotAuth)
	assert.Equal(t, "s1", gotCookie)
}

func TestExecuteNon2xxIsFailureWithoutError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	result, err := New(testLogger()).Execute(context.Background(), baseTemplate(srv.URL), nil, nil, nil)
	require.NoError(t, err)

	require.NotNil(t, result.StatusCode)
	assert.Equal(t, 500, *result.StatusCode)
	assert.False(t, result.IsSuccess)
	assert.Nil(t, result.ErrorMessage)
	assert.Contains(t, result.Body, "boom")
}

func TestExecuteTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	result, err := New(testLogger()).Execute(context.Background(), baseTemplate(srv.URL), nil, nil, nil)
	require.NoError(t, err)

	assert.False(t, result.IsSuccess)
	assert.Nil(t, result.StatusCode)
	require.NotNil(t, result.ErrorMessage)
	assert.NotEmpty(t, *result.ErrorMessage)
	assert.Empty(t, result.Headers)
}

func TestExecuteNoRedirectFollow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/start" {
			http.Redirect(w, r, "/end", http.StatusFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tpl := baseTemplate(srv.URL + "/start")
	tpl.FollowRedirects = false

	result, err := New(testLogger()).Execute(context.Background(), tpl, nil, nil, nil)
	require.NoError(t, err)

	require.NotNil(t, result.StatusCode)
	assert.Equal(t, http.StatusFound, *result.StatusCode)
	assert.False(t, result.IsSuccess)
}

func TestExecuteCapturesSetCookieList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Set-Cookie", "session_id=s1; Path=/")
		w.Header().Add("Set-Cookie", "other=o2; Path=/")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	result, err := New(testLogger()).Execute(context.Background(), baseTemplate(srv.URL), nil, nil, nil)
	require.NoError(t, err)

	assert.Len(t, result.HeaderValues("set-cookie"), 2)
}

func TestTruncateUTF8(t *testing.T) {
	body, truncated := truncateUTF8("abcdef", 4)
	assert.True(t, truncated)
	assert.Equal(t, "abcd", body)

	// Multi-byte rune straddling the limit is dropped whole.
	body, truncated = truncateUTF8("ab中", 3)
	assert.True(t, truncated)
	assert.Equal(t, "ab", body)

	body, truncated = truncateUTF8("short", 100)
	assert.False(t, truncated)
	assert.Equal(t, "short", body)
}

func TestBuildBodyRejectsUnknownType(t *testing.T) {
	_, _, err := buildBody(map[string]any{"body_type": "yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported body_type")
}

func TestExecuteUnsupportedBodyTypeIsCapturedFailure(t *testing.T) {
	tpl := baseTemplate("http://127.0.0.1:1/unused")
	tpl.BodyType = "yaml"

	result, err := New(testLogger()).Execute(context.Background(), tpl, nil, nil, nil)
	require.NoError(t, err)

	assert.False(t, result.IsSuccess)
	require.NotNil(t, result.ErrorMessage)
	assert.Contains(t, *result.ErrorMessage, "unsupported body_type")
}

func TestResultHeaderLookupIsCaseInsensitive(t *testing.T) {
	r := &Result{Headers: map[string][]string{"X-Token": {"t1", "t2"}}}

	v, ok := r.Header("x-token")
	assert.True(t, ok)
	assert.Equal(t, "t1", v)

	_, ok = r.Header("missing")
	assert.False(t, ok)
	assert.True(t, strings.HasPrefix(v, "t"))
}
