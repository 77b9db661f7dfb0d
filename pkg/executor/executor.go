package executor

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ExileLine/exile-ai-test-platform-server/pkg/vars"
)

// MaxBodyBytes bounds the stored response body. Longer bodies are cut on a
// rune boundary and flagged as truncated.
const MaxBodyBytes = 200000

// Body content types.
const (
	BodyTypeNone    = "none"
	BodyTypeJSON    = "json"
	BodyTypeForm    = "form-urlencoded"
	BodyTypeMulti   = "form-data"
	BodyTypeRaw     = "raw"
	BodyTypeBinary  = "binary"
	defaultMethod   = "GET"
	defaultTimeout  = 30000
	minRequestDelay = time.Millisecond
)

// Executor issues HTTP requests built from template, dataset, environment
// and runtime variable layers.
type Executor struct {
	logger *slog.Logger
}

// New creates an Executor.
func New(logger *slog.Logger) *Executor {
	return &Executor{logger: logger.With("component", "executor")}
}

// Execute merges the layers, renders the request, performs the HTTP call
// and captures the outcome. Transport failures are reported inside the
// Result, never as an error; the returned error is reserved for invalid
// inputs discovered before the call is attempted.
func (e *Executor) Execute(ctx context.Context, tpl *Template, ds *Dataset, env *Environment, runtime map[string]any) (*Result, error) {
	if tpl == nil {
		return nil, fmt.Errorf("template is required")
	}

	variables := mergeVariables(tpl, ds, env, runtime)
	snapshot := buildSnapshot(tpl, ds, env, variables)

	result := &Result{
		DatasetSnapshot: datasetSnapshot(ds),
		RequestSnapshot: snapshot,
		Headers:         map[string][]string{},
	}

	req, client, err := e.buildRequest(ctx, snapshot)
	if err != nil {
		msg := err.Error()
		result.ErrorMessage = &msg
		return result, nil
	}

	e.logger.Debug("executing request",
		"request_id", tpl.ID,
		"method", snapshot["method"],
		"url", snapshot["url"])

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		result.ElapsedMs = time.Since(start).Milliseconds()
		msg := err.Error()
		result.ErrorMessage = &msg
		return result, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	result.ElapsedMs = time.Since(start).Milliseconds()
	if err != nil {
		msg := fmt.Sprintf("read response body: %v", err)
		result.ErrorMessage = &msg
		return result, nil
	}

	status := resp.StatusCode
	result.StatusCode = &status
	result.Headers = map[string][]string(resp.Header)
	result.Body, result.BodyTruncated = truncateUTF8(string(body), MaxBodyBytes)
	result.IsSuccess = status >= 200 && status < 300
	return result, nil
}

// mergeVariables layers Env, Dataset and runtime variables, later layers
// overriding earlier ones.
func mergeVariables(tpl *Template, ds *Dataset, env *Environment, runtime map[string]any) map[string]any {
	layers := make([]map[string]any, 0, 3)
	if env != nil {
		layers = append(layers, env.Variables)
	}
	if ds != nil {
		layers = append(layers, ds.Variables)
	}
	layers = append(layers, runtime)
	return vars.MergeAll(layers...)
}

// buildSnapshot merges the field layers and renders every value-bearing
// field through the variable mapping. The snapshot is what gets persisted
// on the RequestRun and what the HTTP request is built from.
func buildSnapshot(tpl *Template, ds *Dataset, env *Environment, variables map[string]any) map[string]any {
	queryParams := tpl.QueryParams
	headers := tpl.Headers
	cookies := tpl.Cookies
	bodyData := tpl.BodyData
	bodyType := tpl.BodyType
	bodyRaw := tpl.BodyRaw

	if ds != nil {
		queryParams = vars.Merge(queryParams, ds.QueryParams)
		headers = vars.Merge(headers, ds.Headers)
		cookies = vars.Merge(cookies, ds.Cookies)
		bodyData = vars.Merge(bodyData, ds.BodyData)
		if ds.BodyType != nil && *ds.BodyType != "" {
			bodyType = *ds.BodyType
		}
		if ds.BodyRaw != nil {
			bodyRaw = ds.BodyRaw
		}
	} else {
		queryParams = vars.Merge(queryParams, nil)
		headers = vars.Merge(headers, nil)
		cookies = vars.Merge(cookies, nil)
		bodyData = vars.Merge(bodyData, nil)
	}
	if bodyType == "" {
		bodyType = BodyTypeNone
	}

	method := strings.ToUpper(strings.TrimSpace(tpl.Method))
	if method == "" {
		method = defaultMethod
	}
	timeoutMs := tpl.TimeoutMs
	if timeoutMs <= 0 {
		timeoutMs = defaultTimeout
	}

	snapshot := map[string]any{
		"request_id":       tpl.ID,
		"method":           method,
		"url":              vars.RenderString(tpl.URL, variables),
		"query_params":     vars.RenderMap(queryParams, variables),
		"headers":          vars.RenderMap(headers, variables),
		"cookies":          vars.RenderMap(cookies, variables),
		"body_type":        bodyType,
		"body_data":        vars.RenderMap(bodyData, variables),
		"body_raw":         nil,
		"timeout_ms":       timeoutMs,
		"follow_redirects": tpl.FollowRedirects,
		"verify_ssl":       tpl.VerifySSL,
		"proxy_url":        nil,
		"env_id":           nil,
		"dataset_id":       nil,
		"variables":        variables,
	}
	if bodyRaw != nil {
		snapshot["body_raw"] = vars.RenderString(*bodyRaw, variables)
	}
	if tpl.ProxyURL != nil && *tpl.ProxyURL != "" {
		snapshot["proxy_url"] = vars.RenderString(*tpl.ProxyURL, variables)
	}
	if tpl.EnvID != nil {
		snapshot["env_id"] = *tpl.EnvID
	}
	if env != nil {
		snapshot["env_id"] = env.ID
	}
	if ds != nil {
		snapshot["dataset_id"] = ds.ID
	}
	return snapshot
}

func datasetSnapshot(ds *Dataset) map[string]any {
	if ds == nil {
		return nil
	}
	return map[string]any{
		"dataset_id": ds.ID,
		"name":       ds.Name,
		"variables":  vars.DeepCopy(ds.Variables),
	}
}

// buildRequest turns a rendered snapshot into an http.Request plus a
// one-shot client honoring timeout, redirects, TLS verification and proxy.
func (e *Executor) buildRequest(ctx context.Context, snapshot map[string]any) (*http.Request, *http.Client, error) {
	rawURL := vars.ToString(snapshot["url"])
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse url %q: %w", rawURL, err)
	}

	query := parsed.Query()
	for _, k := range sortedKeys(asMap(snapshot["query_params"])) {
		v := asMap(snapshot["query_params"])[k]
		if list, ok := v.([]any); ok {
			for _, item := range list {
				query.Add(k, vars.ToString(item))
			}
			continue
		}
		query.Add(k, vars.ToString(v))
	}
	parsed.RawQuery = query.Encode()

	body, contentType, err := buildBody(snapshot)
	if err != nil {
		return nil, nil, err
	}

	method := vars.ToString(snapshot["method"])
	req, err := http.NewRequestWithContext(ctx, method, parsed.String(), body)
	if err != nil {
		return nil, nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, k := range sortedKeys(asMap(snapshot["headers"])) {
		req.Header.Set(k, vars.ToString(asMap(snapshot["headers"])[k]))
	}
	for _, k := range sortedKeys(asMap(snapshot["cookies"])) {
		req.AddCookie(&http.Cookie{Name: k, Value: vars.ToString(asMap(snapshot["cookies"])[k])})
	}

	verifySSL, _ := snapshot["verify_ssl"].(bool)
	followRedirects, _ := snapshot["follow_redirects"].(bool)
	timeoutMs, _ := snapshot["timeout_ms"].(int)

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: !verifySSL},
	}
	if proxy, ok := snapshot["proxy_url"].(string); ok && proxy != "" {
		proxyURL, err := url.Parse(proxy)
		if err != nil {
			return nil, nil, fmt.Errorf("parse proxy url %q: %w", proxy, err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	timeout := time.Duration(timeoutMs) * time.Millisecond
	if timeout < minRequestDelay {
		timeout = minRequestDelay
	}
	client := &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
	if !followRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}
	return req, client, nil
}

// buildBody encodes the request body per body_type and reports the implied
// Content-Type, empty when the type carries none.
func buildBody(snapshot map[string]any) (io.Reader, string, error) {
	bodyType := vars.ToString(snapshot["body_type"])
	bodyData := asMap(snapshot["body_data"])
	bodyRaw, hasRaw := snapshot["body_raw"].(string)

	switch bodyType {
	case BodyTypeNone, "":
		return nil, "", nil

	case BodyTypeJSON:
		encoded, err := json.Marshal(bodyData)
		if err != nil {
			return nil, "", fmt.Errorf("encode json body: %w", err)
		}
		return bytes.NewReader(encoded), "application/json", nil

	case BodyTypeForm:
		form := url.Values{}
		for _, k := range sortedKeys(bodyData) {
			form.Set(k, vars.ToString(bodyData[k]))
		}
		return strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", nil

	case BodyTypeMulti:
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		for _, k := range sortedKeys(bodyData) {
			if err := w.WriteField(k, vars.ToString(bodyData[k])); err != nil {
				return nil, "", fmt.Errorf("encode form-data field %q: %w", k, err)
			}
		}
		if err := w.Close(); err != nil {
			return nil, "", fmt.Errorf("finalize form-data body: %w", err)
		}
		return &buf, w.FormDataContentType(), nil

	case BodyTypeRaw:
		if hasRaw {
			return strings.NewReader(bodyRaw), "", nil
		}
		if len(bodyData) > 0 {
			encoded, err := json.Marshal(bodyData)
			if err != nil {
				return nil, "", fmt.Errorf("encode raw body fallback: %w", err)
			}
			return bytes.NewReader(encoded), "", nil
		}
		return nil, "", nil

	case BodyTypeBinary:
		if hasRaw {
			return bytes.NewReader([]byte(bodyRaw)), "application/octet-stream", nil
		}
		return bytes.NewReader(nil), "application/octet-stream", nil

	default:
		return nil, "", fmt.Errorf("unsupported body_type %q", bodyType)
	}
}

// truncateUTF8 cuts s to at most limit bytes without splitting a rune.
func truncateUTF8(s string, limit int) (string, bool) {
	if len(s) <= limit {
		return s, false
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut], true
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
