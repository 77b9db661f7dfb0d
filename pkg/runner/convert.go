package runner

import (
	"github.com/ExileLine/exile-ai-test-platform-server/ent"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/assertion"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/executor"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/extract"
)

// toTemplate converts a stored request into the executor's input form.
func toTemplate(req *ent.ApiRequest) *executor.Template {
	return &executor.Template{
		ID:              req.ID,
		EnvID:           req.EnvID,
		Name:            req.Name,
		Method:          req.Method,
		URL:             req.URL,
		QueryParams:     req.BaseQueryParams,
		Headers:         req.BaseHeaders,
		Cookies:         req.BaseCookies,
		BodyType:        req.BodyType,
		BodyData:        req.BaseBodyData,
		BodyRaw:         req.BaseBodyRaw,
		TimeoutMs:       req.TimeoutMs,
		FollowRedirects: req.FollowRedirects,
		VerifySSL:       req.VerifySsl,
		ProxyURL:        req.ProxyURL,
	}
}

// toDataset converts a stored dataset overlay. A nil input stays nil so the
// executor runs the template with base fields only.
func toDataset(ds *ent.Dataset) *executor.Dataset {
	if ds == nil {
		return nil
	}
	return &executor.Dataset{
		ID:          ds.ID,
		Name:        ds.Name,
		Variables:   ds.Variables,
		QueryParams: ds.QueryParams,
		Headers:     ds.Headers,
		Cookies:     ds.Cookies,
		BodyType:    ds.BodyType,
		BodyData:    ds.BodyData,
		BodyRaw:     ds.BodyRaw,
	}
}

func toEnvironment(env *ent.Environment) *executor.Environment {
	if env == nil {
		return nil
	}
	return &executor.Environment{
		ID:        env.ID,
		Name:      env.Name,
		Variables: env.Variables,
	}
}

func toExtractRules(rules []*ent.ExtractRule) []extract.Rule {
	out := make([]extract.Rule, 0, len(rules))
	for _, r := range rules {
		out = append(out, extract.Rule{
			ID:           r.ID,
			VarName:      r.VarName,
			SourceType:   string(r.SourceType),
			SourceExpr:   r.SourceExpr,
			DefaultValue: r.DefaultValue,
			Required:     r.Required,
			Scope:        string(r.Scope),
			IsSecret:     r.IsSecret,
		})
	}
	return out
}

func toAssertRules(rules []*ent.AssertRule) []assertion.Rule {
	out := make([]assertion.Rule, 0, len(rules))
	for _, r := range rules {
		out = append(out, assertion.Rule{
			ID:         r.ID,
			AssertType: string(r.AssertType),
			SourceExpr: r.SourceExpr,
			Comparator: string(r.Comparator),
			Expected:   r.ExpectedValue,
			Message:    r.Message,
		})
	}
	return out
}
