// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ExileLine/exile-ai-test-platform-server/ent/apirequest"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/assertrule"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/dataset"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/environment"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/extractrule"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/requestrun"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/runvariable"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenario"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenariocase"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenariorun"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apirequestMixin := schema.ApiRequest{}.Mixin()
	apirequestMixinFields0 := apirequestMixin[0].Fields()
	_ = apirequestMixinFields0
	apirequestFields := schema.ApiRequest{}.Fields()
	_ = apirequestFields
	// apirequestDescCreateTime is the schema descriptor for create_time field.
	apirequestDescCreateTime := apirequestMixinFields0[1].Descriptor()
	// apirequest.DefaultCreateTime holds the default value on creation for the create_time field.
	apirequest.DefaultCreateTime = apirequestDescCreateTime.Default.(func() time.Time)
	// apirequestDescUpdateTime is the schema descriptor for update_time field.
	apirequestDescUpdateTime := apirequestMixinFields0[2].Descriptor()
	// apirequest.DefaultUpdateTime holds the default value on creation for the update_time field.
	apirequest.DefaultUpdateTime = apirequestDescUpdateTime.Default.(func() time.Time)
	// apirequest.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	apirequest.UpdateDefaultUpdateTime = apirequestDescUpdateTime.UpdateDefault.(func() time.Time)
	// apirequestDescIsDeleted is the schema descriptor for is_deleted field.
	apirequestDescIsDeleted := apirequestMixinFields0[3].Descriptor()
	// apirequest.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	apirequest.DefaultIsDeleted = apirequestDescIsDeleted.Default.(int64)
	// apirequestDescStatus is the schema descriptor for status field.
	apirequestDescStatus := apirequestMixinFields0[4].Descriptor()
	// apirequest.DefaultStatus holds the default value on creation for the status field.
	apirequest.DefaultStatus = apirequestDescStatus.Default.(int)
	// apirequestDescName is the schema descriptor for name field.
	apirequestDescName := apirequestFields[1].Descriptor()
	// apirequest.NameValidator is a validator for the "name" field. It is called by the builders before save.
	apirequest.NameValidator = apirequestDescName.Validators[0].(func(string) error)
	// apirequestDescMethod is the schema descriptor for method field.
	apirequestDescMethod := apirequestFields[2].Descriptor()
	// apirequest.DefaultMethod holds the default value on creation for the method field.
	apirequest.DefaultMethod = apirequestDescMethod.Default.(string)
	// apirequest.MethodValidator is a validator for the "method" field. It is called by the builders before save.
	apirequest.MethodValidator = apirequestDescMethod.Validators[0].(func(string) error)
	// apirequestDescURL is the schema descriptor for url field.
	apirequestDescURL := apirequestFields[3].Descriptor()
	// apirequest.URLValidator is a validator for the "url" field. It is called by the builders before save.
	apirequest.URLValidator = apirequestDescURL.Validators[0].(func(string) error)
	// apirequestDescRemark is the schema descriptor for remark field.
	apirequestDescRemark := apirequestFields[4].Descriptor()
	// apirequest.RemarkValidator is a validator for the "remark" field. It is called by the builders before save.
	apirequest.RemarkValidator = apirequestDescRemark.Validators[0].(func(string) error)
	// apirequestDescBaseQueryParams is the schema descriptor for base_query_params field.
	apirequestDescBaseQueryParams := apirequestFields[5].Descriptor()
	// apirequest.DefaultBaseQueryParams holds the default value on creation for the base_query_params field.
	apirequest.DefaultBaseQueryParams = apirequestDescBaseQueryParams.Default.(map[string]interface{})
	// apirequestDescBaseHeaders is the schema descriptor for base_headers field.
	apirequestDescBaseHeaders := apirequestFields[6].Descriptor()
	// apirequest.DefaultBaseHeaders holds the default value on creation for the base_headers field.
	apirequest.DefaultBaseHeaders = apirequestDescBaseHeaders.Default.(map[string]interface{})
	// apirequestDescBaseCookies is the schema descriptor for base_cookies field.
	apirequestDescBaseCookies := apirequestFields[7].Descriptor()
	// apirequest.DefaultBaseCookies holds the default value on creation for the base_cookies field.
	apirequest.DefaultBaseCookies = apirequestDescBaseCookies.Default.(map[string]interface{})
	// apirequestDescBodyType is the schema descriptor for body_type field.
	apirequestDescBodyType := apirequestFields[8].Descriptor()
	// apirequest.DefaultBodyType holds the default value on creation for the body_type field.
	apirequest.DefaultBodyType = apirequestDescBodyType.Default.(string)
	// apirequest.BodyTypeValidator is a validator for the "body_type" field. It is called by the builders before save.
	apirequest.BodyTypeValidator = apirequestDescBodyType.Validators[0].(func(string) error)
	// apirequestDescBaseBodyData is the schema descriptor for base_body_data field.
	apirequestDescBaseBodyData := apirequestFields[9].Descriptor()
	// apirequest.DefaultBaseBodyData holds the default value on creation for the base_body_data field.
	apirequest.DefaultBaseBodyData = apirequestDescBaseBodyData.Default.(map[string]interface{})
	// apirequestDescTimeoutMs is the schema descriptor for timeout_ms field.
	apirequestDescTimeoutMs := apirequestFields[11].Descriptor()
	// apirequest.DefaultTimeoutMs holds the default value on creation for the timeout_ms field.
	apirequest.DefaultTimeoutMs = apirequestDescTimeoutMs.Default.(int)
	// apirequestDescFollowRedirects is the schema descriptor for follow_redirects field.
	apirequestDescFollowRedirects := apirequestFields[12].Descriptor()
	// apirequest.DefaultFollowRedirects holds the default value on creation for the follow_redirects field.
	apirequest.DefaultFollowRedirects = apirequestDescFollowRedirects.Default.(bool)
	// apirequestDescVerifySsl is the schema descriptor for verify_ssl field.
	apirequestDescVerifySsl := apirequestFields[13].Descriptor()
	// apirequest.DefaultVerifySsl holds the default value on creation for the verify_ssl field.
	apirequest.DefaultVerifySsl = apirequestDescVerifySsl.Default.(bool)
	// apirequestDescProxyURL is the schema descriptor for proxy_url field.
	apirequestDescProxyURL := apirequestFields[14].Descriptor()
	// apirequest.ProxyURLValidator is a validator for the "proxy_url" field. It is called by the builders before save.
	apirequest.ProxyURLValidator = apirequestDescProxyURL.Validators[0].(func(string) error)
	// apirequestDescSort is the schema descriptor for sort field.
	apirequestDescSort := apirequestFields[15].Descriptor()
	// apirequest.DefaultSort holds the default value on creation for the sort field.
	apirequest.DefaultSort = apirequestDescSort.Default.(int)
	// apirequestDescExecuteCount is the schema descriptor for execute_count field.
	apirequestDescExecuteCount := apirequestFields[16].Descriptor()
	// apirequest.DefaultExecuteCount holds the default value on creation for the execute_count field.
	apirequest.DefaultExecuteCount = apirequestDescExecuteCount.Default.(int)
	assertruleMixin := schema.AssertRule{}.Mixin()
	assertruleMixinFields0 := assertruleMixin[0].Fields()
	_ = assertruleMixinFields0
	assertruleFields := schema.AssertRule{}.Fields()
	_ = assertruleFields
	// assertruleDescCreateTime is the schema descriptor for create_time field.
	assertruleDescCreateTime := assertruleMixinFields0[1].Descriptor()
	// assertrule.DefaultCreateTime holds the default value on creation for the create_time field.
	assertrule.DefaultCreateTime = assertruleDescCreateTime.Default.(func() time.Time)
	// assertruleDescUpdateTime is the schema descriptor for update_time field.
	assertruleDescUpdateTime := assertruleMixinFields0[2].Descriptor()
	// assertrule.DefaultUpdateTime holds the default value on creation for the update_time field.
	assertrule.DefaultUpdateTime = assertruleDescUpdateTime.Default.(func() time.Time)
	// assertrule.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	assertrule.UpdateDefaultUpdateTime = assertruleDescUpdateTime.UpdateDefault.(func() time.Time)
	// assertruleDescIsDeleted is the schema descriptor for is_deleted field.
	assertruleDescIsDeleted := assertruleMixinFields0[3].Descriptor()
	// assertrule.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	assertrule.DefaultIsDeleted = assertruleDescIsDeleted.Default.(int64)
	// assertruleDescStatus is the schema descriptor for status field.
	assertruleDescStatus := assertruleMixinFields0[4].Descriptor()
	// assertrule.DefaultStatus holds the default value on creation for the status field.
	assertrule.DefaultStatus = assertruleDescStatus.Default.(int)
	// assertruleDescSourceExpr is the schema descriptor for source_expr field.
	assertruleDescSourceExpr := assertruleFields[3].Descriptor()
	// assertrule.SourceExprValidator is a validator for the "source_expr" field. It is called by the builders before save.
	assertrule.SourceExprValidator = assertruleDescSourceExpr.Validators[0].(func(string) error)
	// assertruleDescMessage is the schema descriptor for message field.
	assertruleDescMessage := assertruleFields[6].Descriptor()
	// assertrule.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	assertrule.MessageValidator = assertruleDescMessage.Validators[0].(func(string) error)
	// assertruleDescIsEnabled is the schema descriptor for is_enabled field.
	assertruleDescIsEnabled := assertruleFields[7].Descriptor()
	// assertrule.DefaultIsEnabled holds the default value on creation for the is_enabled field.
	assertrule.DefaultIsEnabled = assertruleDescIsEnabled.Default.(bool)
	// assertruleDescSort is the schema descriptor for sort field.
	assertruleDescSort := assertruleFields[8].Descriptor()
	// assertrule.DefaultSort holds the default value on creation for the sort field.
	assertrule.DefaultSort = assertruleDescSort.Default.(int)
	datasetMixin := schema.Dataset{}.Mixin()
	datasetMixinFields0 := datasetMixin[0].Fields()
	_ = datasetMixinFields0
	datasetFields := schema.Dataset{}.Fields()
	_ = datasetFields
	// datasetDescCreateTime is the schema descriptor for create_time field.
	datasetDescCreateTime := datasetMixinFields0[1].Descriptor()
	// dataset.DefaultCreateTime holds the default value on creation for the create_time field.
	dataset.DefaultCreateTime = datasetDescCreateTime.Default.(func() time.Time)
	// datasetDescUpdateTime is the schema descriptor for update_time field.
	datasetDescUpdateTime := datasetMixinFields0[2].Descriptor()
	// dataset.DefaultUpdateTime holds the default value on creation for the update_time field.
	dataset.DefaultUpdateTime = datasetDescUpdateTime.Default.(func() time.Time)
	// dataset.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	dataset.UpdateDefaultUpdateTime = datasetDescUpdateTime.UpdateDefault.(func() time.Time)
	// datasetDescIsDeleted is the schema descriptor for is_deleted field.
	datasetDescIsDeleted := datasetMixinFields0[3].Descriptor()
	// dataset.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	dataset.DefaultIsDeleted = datasetDescIsDeleted.Default.(int64)
	// datasetDescStatus is the schema descriptor for status field.
	datasetDescStatus := datasetMixinFields0[4].Descriptor()
	// dataset.DefaultStatus holds the default value on creation for the status field.
	dataset.DefaultStatus = datasetDescStatus.Default.(int)
	// datasetDescName is the schema descriptor for name field.
	datasetDescName := datasetFields[1].Descriptor()
	// dataset.NameValidator is a validator for the "name" field. It is called by the builders before save.
	dataset.NameValidator = datasetDescName.Validators[0].(func(string) error)
	// datasetDescRemark is the schema descriptor for remark field.
	datasetDescRemark := datasetFields[2].Descriptor()
	// dataset.RemarkValidator is a validator for the "remark" field. It is called by the builders before save.
	dataset.RemarkValidator = datasetDescRemark.Validators[0].(func(string) error)
	// datasetDescVariables is the schema descriptor for variables field.
	datasetDescVariables := datasetFields[3].Descriptor()
	// dataset.DefaultVariables holds the default value on creation for the variables field.
	dataset.DefaultVariables = datasetDescVariables.Default.(map[string]interface{})
	// datasetDescQueryParams is the schema descriptor for query_params field.
	datasetDescQueryParams := datasetFields[4].Descriptor()
	// dataset.DefaultQueryParams holds the default value on creation for the query_params field.
	dataset.DefaultQueryParams = datasetDescQueryParams.Default.(map[string]interface{})
	// datasetDescHeaders is the schema descriptor for headers field.
	datasetDescHeaders := datasetFields[5].Descriptor()
	// dataset.DefaultHeaders holds the default value on creation for the headers field.
	dataset.DefaultHeaders = datasetDescHeaders.Default.(map[string]interface{})
	// datasetDescCookies is the schema descriptor for cookies field.
	datasetDescCookies := datasetFields[6].Descriptor()
	// dataset.DefaultCookies holds the default value on creation for the cookies field.
	dataset.DefaultCookies = datasetDescCookies.Default.(map[string]interface{})
	// datasetDescBodyType is the schema descriptor for body_type field.
	datasetDescBodyType := datasetFields[7].Descriptor()
	// dataset.BodyTypeValidator is a validator for the "body_type" field. It is called by the builders before save.
	dataset.BodyTypeValidator = datasetDescBodyType.Validators[0].(func(string) error)
	// datasetDescBodyData is the schema descriptor for body_data field.
	datasetDescBodyData := datasetFields[8].Descriptor()
	// dataset.DefaultBodyData holds the default value on creation for the body_data field.
	dataset.DefaultBodyData = datasetDescBodyData.Default.(map[string]interface{})
	// datasetDescIsDefault is the schema descriptor for is_default field.
	datasetDescIsDefault := datasetFields[10].Descriptor()
	// dataset.DefaultIsDefault holds the default value on creation for the is_default field.
	dataset.DefaultIsDefault = datasetDescIsDefault.Default.(bool)
	// datasetDescIsEnabled is the schema descriptor for is_enabled field.
	datasetDescIsEnabled := datasetFields[11].Descriptor()
	// dataset.DefaultIsEnabled holds the default value on creation for the is_enabled field.
	dataset.DefaultIsEnabled = datasetDescIsEnabled.Default.(bool)
	// datasetDescSort is the schema descriptor for sort field.
	datasetDescSort := datasetFields[12].Descriptor()
	// dataset.DefaultSort holds the default value on creation for the sort field.
	dataset.DefaultSort = datasetDescSort.Default.(int)
	environmentMixin := schema.Environment{}.Mixin()
	environmentMixinFields0 := environmentMixin[0].Fields()
	_ = environmentMixinFields0
	environmentFields := schema.Environment{}.Fields()
	_ = environmentFields
	// environmentDescCreateTime is the schema descriptor for create_time field.
	environmentDescCreateTime := environmentMixinFields0[1].Descriptor()
	// environment.DefaultCreateTime holds the default value on creation for the create_time field.
	environment.DefaultCreateTime = environmentDescCreateTime.Default.(func() time.Time)
	// environmentDescUpdateTime is the schema descriptor for update_time field.
	environmentDescUpdateTime := environmentMixinFields0[2].Descriptor()
	// environment.DefaultUpdateTime holds the default value on creation for the update_time field.
	environment.DefaultUpdateTime = environmentDescUpdateTime.Default.(func() time.Time)
	// environment.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	environment.UpdateDefaultUpdateTime = environmentDescUpdateTime.UpdateDefault.(func() time.Time)
	// environmentDescIsDeleted is the schema descriptor for is_deleted field.
	environmentDescIsDeleted := environmentMixinFields0[3].Descriptor()
	// environment.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	environment.DefaultIsDeleted = environmentDescIsDeleted.Default.(int64)
	// environmentDescStatus is the schema descriptor for status field.
	environmentDescStatus := environmentMixinFields0[4].Descriptor()
	// environment.DefaultStatus holds the default value on creation for the status field.
	environment.DefaultStatus = environmentDescStatus.Default.(int)
	// environmentDescName is the schema descriptor for name field.
	environmentDescName := environmentFields[0].Descriptor()
	// environment.NameValidator is a validator for the "name" field. It is called by the builders before save.
	environment.NameValidator = environmentDescName.Validators[0].(func(string) error)
	// environmentDescVariables is the schema descriptor for variables field.
	environmentDescVariables := environmentFields[1].Descriptor()
	// environment.DefaultVariables holds the default value on creation for the variables field.
	environment.DefaultVariables = environmentDescVariables.Default.(map[string]interface{})
	// environmentDescIsDefault is the schema descriptor for is_default field.
	environmentDescIsDefault := environmentFields[2].Descriptor()
	// environment.DefaultIsDefault holds the default value on creation for the is_default field.
	environment.DefaultIsDefault = environmentDescIsDefault.Default.(bool)
	extractruleMixin := schema.ExtractRule{}.Mixin()
	extractruleMixinFields0 := extractruleMixin[0].Fields()
	_ = extractruleMixinFields0
	extractruleFields := schema.ExtractRule{}.Fields()
	_ = extractruleFields
	// extractruleDescCreateTime is the schema descriptor for create_time field.
	extractruleDescCreateTime := extractruleMixinFields0[1].Descriptor()
	// extractrule.DefaultCreateTime holds the default value on creation for the create_time field.
	extractrule.DefaultCreateTime = extractruleDescCreateTime.Default.(func() time.Time)
	// extractruleDescUpdateTime is the schema descriptor for update_time field.
	extractruleDescUpdateTime := extractruleMixinFields0[2].Descriptor()
	// extractrule.DefaultUpdateTime holds the default value on creation for the update_time field.
	extractrule.DefaultUpdateTime = extractruleDescUpdateTime.Default.(func() time.Time)
	// extractrule.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	extractrule.UpdateDefaultUpdateTime = extractruleDescUpdateTime.UpdateDefault.(func() time.Time)
	// extractruleDescIsDeleted is the schema descriptor for is_deleted field.
	extractruleDescIsDeleted := extractruleMixinFields0[3].Descriptor()
	// extractrule.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	extractrule.DefaultIsDeleted = extractruleDescIsDeleted.Default.(int64)
	// extractruleDescStatus is the schema descriptor for status field.
	extractruleDescStatus := extractruleMixinFields0[4].Descriptor()
	// extractrule.DefaultStatus holds the default value on creation for the status field.
	extractrule.DefaultStatus = extractruleDescStatus.Default.(int)
	// extractruleDescVarName is the schema descriptor for var_name field.
	extractruleDescVarName := extractruleFields[2].Descriptor()
	// extractrule.VarNameValidator is a validator for the "var_name" field. It is called by the builders before save.
	extractrule.VarNameValidator = extractruleDescVarName.Validators[0].(func(string) error)
	// extractruleDescSourceExpr is the schema descriptor for source_expr field.
	extractruleDescSourceExpr := extractruleFields[4].Descriptor()
	// extractrule.SourceExprValidator is a validator for the "source_expr" field. It is called by the builders before save.
	extractrule.SourceExprValidator = extractruleDescSourceExpr.Validators[0].(func(string) error)
	// extractruleDescRequired is the schema descriptor for required field.
	extractruleDescRequired := extractruleFields[6].Descriptor()
	// extractrule.DefaultRequired holds the default value on creation for the required field.
	extractrule.DefaultRequired = extractruleDescRequired.Default.(bool)
	// extractruleDescIsSecret is the schema descriptor for is_secret field.
	extractruleDescIsSecret := extractruleFields[8].Descriptor()
	// extractrule.DefaultIsSecret holds the default value on creation for the is_secret field.
	extractrule.DefaultIsSecret = extractruleDescIsSecret.Default.(bool)
	// extractruleDescIsEnabled is the schema descriptor for is_enabled field.
	extractruleDescIsEnabled := extractruleFields[9].Descriptor()
	// extractrule.DefaultIsEnabled holds the default value on creation for the is_enabled field.
	extractrule.DefaultIsEnabled = extractruleDescIsEnabled.Default.(bool)
	// extractruleDescSort is the schema descriptor for sort field.
	extractruleDescSort := extractruleFields[10].Descriptor()
	// extractrule.DefaultSort holds the default value on creation for the sort field.
	extractrule.DefaultSort = extractruleDescSort.Default.(int)
	requestrunMixin := schema.RequestRun{}.Mixin()
	requestrunMixinFields0 := requestrunMixin[0].Fields()
	_ = requestrunMixinFields0
	requestrunFields := schema.RequestRun{}.Fields()
	_ = requestrunFields
	// requestrunDescCreateTime is the schema descriptor for create_time field.
	requestrunDescCreateTime := requestrunMixinFields0[1].Descriptor()
	// requestrun.DefaultCreateTime holds the default value on creation for the create_time field.
	requestrun.DefaultCreateTime = requestrunDescCreateTime.Default.(func() time.Time)
	// requestrunDescUpdateTime is the schema descriptor for update_time field.
	requestrunDescUpdateTime := requestrunMixinFields0[2].Descriptor()
	// requestrun.DefaultUpdateTime holds the default value on creation for the update_time field.
	requestrun.DefaultUpdateTime = requestrunDescUpdateTime.Default.(func() time.Time)
	// requestrun.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	requestrun.UpdateDefaultUpdateTime = requestrunDescUpdateTime.UpdateDefault.(func() time.Time)
	// requestrunDescIsDeleted is the schema descriptor for is_deleted field.
	requestrunDescIsDeleted := requestrunMixinFields0[3].Descriptor()
	// requestrun.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	requestrun.DefaultIsDeleted = requestrunDescIsDeleted.Default.(int64)
	// requestrunDescStatus is the schema descriptor for status field.
	requestrunDescStatus := requestrunMixinFields0[4].Descriptor()
	// requestrun.DefaultStatus holds the default value on creation for the status field.
	requestrun.DefaultStatus = requestrunDescStatus.Default.(int)
	// requestrunDescRequestSnapshot is the schema descriptor for request_snapshot field.
	requestrunDescRequestSnapshot := requestrunFields[5].Descriptor()
	// requestrun.DefaultRequestSnapshot holds the default value on creation for the request_snapshot field.
	requestrun.DefaultRequestSnapshot = requestrunDescRequestSnapshot.Default.(map[string]interface{})
	// requestrunDescIsSuccess is the schema descriptor for is_success field.
	requestrunDescIsSuccess := requestrunFields[6].Descriptor()
	// requestrun.DefaultIsSuccess holds the default value on creation for the is_success field.
	requestrun.DefaultIsSuccess = requestrunDescIsSuccess.Default.(bool)
	// requestrunDescResponseTimeMs is the schema descriptor for response_time_ms field.
	requestrunDescResponseTimeMs := requestrunFields[10].Descriptor()
	// requestrun.DefaultResponseTimeMs holds the default value on creation for the response_time_ms field.
	requestrun.DefaultResponseTimeMs = requestrunDescResponseTimeMs.Default.(int64)
	runvariableMixin := schema.RunVariable{}.Mixin()
	runvariableMixinFields0 := runvariableMixin[0].Fields()
	_ = runvariableMixinFields0
	runvariableFields := schema.RunVariable{}.Fields()
	_ = runvariableFields
	// runvariableDescCreateTime is the schema descriptor for create_time field.
	runvariableDescCreateTime := runvariableMixinFields0[1].Descriptor()
	// runvariable.DefaultCreateTime holds the default value on creation for the create_time field.
	runvariable.DefaultCreateTime = runvariableDescCreateTime.Default.(func() time.Time)
	// runvariableDescUpdateTime is the schema descriptor for update_time field.
	runvariableDescUpdateTime := runvariableMixinFields0[2].Descriptor()
	// runvariable.DefaultUpdateTime holds the default value on creation for the update_time field.
	runvariable.DefaultUpdateTime = runvariableDescUpdateTime.Default.(func() time.Time)
	// runvariable.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	runvariable.UpdateDefaultUpdateTime = runvariableDescUpdateTime.UpdateDefault.(func() time.Time)
	// runvariableDescIsDeleted is the schema descriptor for is_deleted field.
	runvariableDescIsDeleted := runvariableMixinFields0[3].Descriptor()
	// runvariable.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	runvariable.DefaultIsDeleted = runvariableDescIsDeleted.Default.(int64)
	// runvariableDescStatus is the schema descriptor for status field.
	runvariableDescStatus := runvariableMixinFields0[4].Descriptor()
	// runvariable.DefaultStatus holds the default value on creation for the status field.
	runvariable.DefaultStatus = runvariableDescStatus.Default.(int)
	// runvariableDescVarName is the schema descriptor for var_name field.
	runvariableDescVarName := runvariableFields[5].Descriptor()
	// runvariable.VarNameValidator is a validator for the "var_name" field. It is called by the builders before save.
	runvariable.VarNameValidator = runvariableDescVarName.Validators[0].(func(string) error)
	// runvariableDescValueType is the schema descriptor for value_type field.
	runvariableDescValueType := runvariableFields[7].Descriptor()
	// runvariable.DefaultValueType holds the default value on creation for the value_type field.
	runvariable.DefaultValueType = runvariableDescValueType.Default.(string)
	// runvariable.ValueTypeValidator is a validator for the "value_type" field. It is called by the builders before save.
	runvariable.ValueTypeValidator = runvariableDescValueType.Validators[0].(func(string) error)
	// runvariableDescSourceExpr is the schema descriptor for source_expr field.
	runvariableDescSourceExpr := runvariableFields[9].Descriptor()
	// runvariable.SourceExprValidator is a validator for the "source_expr" field. It is called by the builders before save.
	runvariable.SourceExprValidator = runvariableDescSourceExpr.Validators[0].(func(string) error)
	// runvariableDescIsSecret is the schema descriptor for is_secret field.
	runvariableDescIsSecret := runvariableFields[11].Descriptor()
	// runvariable.DefaultIsSecret holds the default value on creation for the is_secret field.
	runvariable.DefaultIsSecret = runvariableDescIsSecret.Default.(bool)
	scenarioMixin := schema.Scenario{}.Mixin()
	scenarioMixinFields0 := scenarioMixin[0].Fields()
	_ = scenarioMixinFields0
	scenarioFields := schema.Scenario{}.Fields()
	_ = scenarioFields
	// scenarioDescCreateTime is the schema descriptor for create_time field.
	scenarioDescCreateTime := scenarioMixinFields0[1].Descriptor()
	// scenario.DefaultCreateTime holds the default value on creation for the create_time field.
	scenario.DefaultCreateTime = scenarioDescCreateTime.Default.(func() time.Time)
	// scenarioDescUpdateTime is the schema descriptor for update_time field.
	scenarioDescUpdateTime := scenarioMixinFields0[2].Descriptor()
	// scenario.DefaultUpdateTime holds the default value on creation for the update_time field.
	scenario.DefaultUpdateTime = scenarioDescUpdateTime.Default.(func() time.Time)
	// scenario.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	scenario.UpdateDefaultUpdateTime = scenarioDescUpdateTime.UpdateDefault.(func() time.Time)
	// scenarioDescIsDeleted is the schema descriptor for is_deleted field.
	scenarioDescIsDeleted := scenarioMixinFields0[3].Descriptor()
	// scenario.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	scenario.DefaultIsDeleted = scenarioDescIsDeleted.Default.(int64)
	// scenarioDescStatus is the schema descriptor for status field.
	scenarioDescStatus := scenarioMixinFields0[4].Descriptor()
	// scenario.DefaultStatus holds the default value on creation for the status field.
	scenario.DefaultStatus = scenarioDescStatus.Default.(int)
	// scenarioDescName is the schema descriptor for name field.
	scenarioDescName := scenarioFields[1].Descriptor()
	// scenario.NameValidator is a validator for the "name" field. It is called by the builders before save.
	scenario.NameValidator = scenarioDescName.Validators[0].(func(string) error)
	// scenarioDescStopOnFail is the schema descriptor for stop_on_fail field.
	scenarioDescStopOnFail := scenarioFields[4].Descriptor()
	// scenario.DefaultStopOnFail holds the default value on creation for the stop_on_fail field.
	scenario.DefaultStopOnFail = scenarioDescStopOnFail.Default.(bool)
	// scenarioDescSort is the schema descriptor for sort field.
	scenarioDescSort := scenarioFields[5].Descriptor()
	// scenario.DefaultSort holds the default value on creation for the sort field.
	scenario.DefaultSort = scenarioDescSort.Default.(int)
	scenariocaseMixin := schema.ScenarioCase{}.Mixin()
	scenariocaseMixinFields0 := scenariocaseMixin[0].Fields()
	_ = scenariocaseMixinFields0
	scenariocaseFields := schema.ScenarioCase{}.Fields()
	_ = scenariocaseFields
	// scenariocaseDescCreateTime is the schema descriptor for create_time field.
	scenariocaseDescCreateTime := scenariocaseMixinFields0[1].Descriptor()
	// scenariocase.DefaultCreateTime holds the default value on creation for the create_time field.
	scenariocase.DefaultCreateTime = scenariocaseDescCreateTime.Default.(func() time.Time)
	// scenariocaseDescUpdateTime is the schema descriptor for update_time field.
	scenariocaseDescUpdateTime := scenariocaseMixinFields0[2].Descriptor()
	// scenariocase.DefaultUpdateTime holds the default value on creation for the update_time field.
	scenariocase.DefaultUpdateTime = scenariocaseDescUpdateTime.Default.(func() time.Time)
	// scenariocase.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	scenariocase.UpdateDefaultUpdateTime = scenariocaseDescUpdateTime.UpdateDefault.(func() time.Time)
	// scenariocaseDescIsDeleted is the schema descriptor for is_deleted field.
	scenariocaseDescIsDeleted := scenariocaseMixinFields0[3].Descriptor()
	// scenariocase.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	scenariocase.DefaultIsDeleted = scenariocaseDescIsDeleted.Default.(int64)
	// scenariocaseDescStatus is the schema descriptor for status field.
	scenariocaseDescStatus := scenariocaseMixinFields0[4].Descriptor()
	// scenariocase.DefaultStatus holds the default value on creation for the status field.
	scenariocase.DefaultStatus = scenariocaseDescStatus.Default.(int)
	// scenariocaseDescStepNo is the schema descriptor for step_no field.
	scenariocaseDescStepNo := scenariocaseFields[2].Descriptor()
	// scenariocase.DefaultStepNo holds the default value on creation for the step_no field.
	scenariocase.DefaultStepNo = scenariocaseDescStepNo.Default.(int)
	// scenariocaseDescIsEnabled is the schema descriptor for is_enabled field.
	scenariocaseDescIsEnabled := scenariocaseFields[5].Descriptor()
	// scenariocase.DefaultIsEnabled holds the default value on creation for the is_enabled field.
	scenariocase.DefaultIsEnabled = scenariocaseDescIsEnabled.Default.(bool)
	// scenariocaseDescStopOnFail is the schema descriptor for stop_on_fail field.
	scenariocaseDescStopOnFail := scenariocaseFields[6].Descriptor()
	// scenariocase.DefaultStopOnFail holds the default value on creation for the stop_on_fail field.
	scenariocase.DefaultStopOnFail = scenariocaseDescStopOnFail.Default.(bool)
	scenariorunMixin := schema.ScenarioRun{}.Mixin()
	scenariorunMixinFields0 := scenariorunMixin[0].Fields()
	_ = scenariorunMixinFields0
	scenariorunFields := schema.ScenarioRun{}.Fields()
	_ = scenariorunFields
	// scenariorunDescCreateTime is the schema descriptor for create_time field.
	scenariorunDescCreateTime := scenariorunMixinFields0[1].Descriptor()
	// scenariorun.DefaultCreateTime holds the default value on creation for the create_time field.
	scenariorun.DefaultCreateTime = scenariorunDescCreateTime.Default.(func() time.Time)
	// scenariorunDescUpdateTime is the schema descriptor for update_time field.
	scenariorunDescUpdateTime := scenariorunMixinFields0[2].Descriptor()
	// scenariorun.DefaultUpdateTime holds the default value on creation for the update_time field.
	scenariorun.DefaultUpdateTime = scenariorunDescUpdateTime.Default.(func() time.Time)
	// scenariorun.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	scenariorun.UpdateDefaultUpdateTime = scenariorunDescUpdateTime.UpdateDefault.(func() time.Time)
	// scenariorunDescIsDeleted is the schema descriptor for is_deleted field.
	scenariorunDescIsDeleted := scenariorunMixinFields0[3].Descriptor()
	// scenariorun.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	scenariorun.DefaultIsDeleted = scenariorunDescIsDeleted.Default.(int64)
	// scenariorunDescStatus is the schema descriptor for status field.
	scenariorunDescStatus := scenariorunMixinFields0[4].Descriptor()
	// scenariorun.DefaultStatus holds the default value on creation for the status field.
	scenariorun.DefaultStatus = scenariorunDescStatus.Default.(int)
	// scenariorunDescCancelRequested is the schema descriptor for cancel_requested field.
	scenariorunDescCancelRequested := scenariorunFields[4].Descriptor()
	// scenariorun.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	scenariorun.DefaultCancelRequested = scenariorunDescCancelRequested.Default.(bool)
	// scenariorunDescTotalRequestRuns is the schema descriptor for total_request_runs field.
	scenariorunDescTotalRequestRuns := scenariorunFields[7].Descriptor()
	// scenariorun.DefaultTotalRequestRuns holds the default value on creation for the total_request_runs field.
	scenariorun.DefaultTotalRequestRuns = scenariorunDescTotalRequestRuns.Default.(int)
	// scenariorunDescSuccessRequestRuns is the schema descriptor for success_request_runs field.
	scenariorunDescSuccessRequestRuns := scenariorunFields[8].Descriptor()
	// scenariorun.DefaultSuccessRequestRuns holds the default value on creation for the success_request_runs field.
	scenariorun.DefaultSuccessRequestRuns = scenariorunDescSuccessRequestRuns.Default.(int)
	// scenariorunDescFailedRequestRuns is the schema descriptor for failed_request_runs field.
	scenariorunDescFailedRequestRuns := scenariorunFields[9].Descriptor()
	// scenariorun.DefaultFailedRequestRuns holds the default value on creation for the failed_request_runs field.
	scenariorun.DefaultFailedRequestRuns = scenariorunDescFailedRequestRuns.Default.(int)
	// scenariorunDescIsSuccess is the schema descriptor for is_success field.
	scenariorunDescIsSuccess := scenariorunFields[10].Descriptor()
	// scenariorun.DefaultIsSuccess holds the default value on creation for the is_success field.
	scenariorun.DefaultIsSuccess = scenariorunDescIsSuccess.Default.(bool)
	// scenariorunDescRuntimeVariables is the schema descriptor for runtime_variables field.
	scenariorunDescRuntimeVariables := scenariorunFields[12].Descriptor()
	// scenariorun.DefaultRuntimeVariables holds the default value on creation for the runtime_variables field.
	scenariorun.DefaultRuntimeVariables = scenariorunDescRuntimeVariables.Default.(map[string]interface{})
}
