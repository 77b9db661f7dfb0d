// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExileAPIRequestsColumns holds the columns for the "exile_api_requests" table.
	ExileAPIRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "is_deleted", Type: field.TypeInt64, Default: 0},
		{Name: "status", Type: field.TypeInt, Default: 1},
		{Name: "env_id", Type: field.TypeInt64, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 128},
		{Name: "method", Type: field.TypeString, Size: 16, Default: "GET"},
		{Name: "url", Type: field.TypeString, Size: 2048},
		{Name: "remark", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "base_query_params", Type: field.TypeJSON},
		{Name: "base_headers", Type: field.TypeJSON},
		{Name: "base_cookies", Type: field.TypeJSON},
		{Name: "body_type", Type: field.TypeString, Size: 32, Default: "none"},
		{Name: "base_body_data", Type: field.TypeJSON},
		{Name: "base_body_raw", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "timeout_ms", Type: field.TypeInt, Default: 30000},
		{Name: "follow_redirects", Type: field.TypeBool, Default: true},
		{Name: "verify_ssl", Type: field.TypeBool, Default: true},
		{Name: "proxy_url", Type: field.TypeString, Nullable: true, Size: 1024},
		{Name: "sort", Type: field.TypeInt, Default: 0},
		{Name: "execute_count", Type: field.TypeInt, Default: 0},
		{Name: "dataset_run_mode", Type: field.TypeEnum, Enums: []string{"single", "all"}, Default: "all"},
		{Name: "default_dataset_id", Type: field.TypeInt64, Nullable: true},
	}
	// ExileAPIRequestsTable holds the schema information for the "exile_api_requests" table.
	ExileAPIRequestsTable = &schema.Table{
		Name:       "exile_api_requests",
		Columns:    ExileAPIRequestsColumns,
		PrimaryKey: []*schema.Column{ExileAPIRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "apirequest_env_id",
				Unique:  false,
				Columns: []*schema.Column{ExileAPIRequestsColumns[5]},
			},
			{
				Name:    "apirequest_is_deleted",
				Unique:  false,
				Columns: []*schema.Column{ExileAPIRequestsColumns[3]},
			},
		},
	}
	// ExileAPIAssertRulesColumns holds the columns for the "exile_api_assert_rules" table.
	ExileAPIAssertRulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "is_deleted", Type: field.TypeInt64, Default: 0},
		{Name: "status", Type: field.TypeInt, Default: 1},
		{Name: "request_id", Type: field.TypeInt64},
		{Name: "dataset_id", Type: field.TypeInt64, Nullable: true},
		{Name: "assert_type", Type: field.TypeEnum, Enums: []string{"status_code", "json_path", "text_contains"}},
		{Name: "source_expr", Type: field.TypeString, Nullable: true, Size: 1024},
		{Name: "comparator", Type: field.TypeEnum, Enums: []string{"eq", "ne", "contains", "not_contains"}, Default: "eq"},
		{Name: "expected_value", Type: field.TypeJSON, Nullable: true},
		{Name: "message", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "is_enabled", Type: field.TypeBool, Default: true},
		{Name: "sort", Type: field.TypeInt, Default: 0},
	}
	// ExileAPIAssertRulesTable holds the schema information for the "exile_api_assert_rules" table.
	ExileAPIAssertRulesTable = &schema.Table{
		Name:       "exile_api_assert_rules",
		Columns:    ExileAPIAssertRulesColumns,
		PrimaryKey: []*schema.Column{ExileAPIAssertRulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assertrule_request_id",
				Unique:  false,
				Columns: []*schema.Column{ExileAPIAssertRulesColumns[5]},
			},
			{
				Name:    "assertrule_request_id_is_enabled",
				Unique:  false,
				Columns: []*schema.Column{ExileAPIAssertRulesColumns[5], ExileAPIAssertRulesColumns[12]},
			},
		},
	}
	// ExileAPIRequestDatasetsColumns holds the columns for the "exile_api_request_datasets" table.
	ExileAPIRequestDatasetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "is_deleted", Type: field.TypeInt64, Default: 0},
		{Name: "status", Type: field.TypeInt, Default: 1},
		{Name: "request_id", Type: field.TypeInt64},
		{Name: "name", Type: field.TypeString, Size: 128},
		{Name: "remark", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "variables", Type: field.TypeJSON},
		{Name: "query_params", Type: field.TypeJSON},
		{Name: "headers", Type: field.TypeJSON},
		{Name: "cookies", Type: field.TypeJSON},
		{Name: "body_type", Type: field.TypeString, Nullable: true, Size: 32},
		{Name: "body_data", Type: field.TypeJSON},
		{Name: "body_raw", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_default", Type: field.TypeBool, Default: false},
		{Name: "is_enabled", Type: field.TypeBool, Default: true},
		{Name: "sort", Type: field.TypeInt, Default: 0},
	}
	// ExileAPIRequestDatasetsTable holds the schema information for the "exile_api_request_datasets" table.
	ExileAPIRequestDatasetsTable = &schema.Table{
		Name:       "exile_api_request_datasets",
		Columns:    ExileAPIRequestDatasetsColumns,
		PrimaryKey: []*schema.Column{ExileAPIRequestDatasetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dataset_request_id",
				Unique:  false,
				Columns: []*schema.Column{ExileAPIRequestDatasetsColumns[5]},
			},
			{
				Name:    "dataset_request_id_is_enabled",
				Unique:  false,
				Columns: []*schema.Column{ExileAPIRequestDatasetsColumns[5], ExileAPIRequestDatasetsColumns[16]},
			},
		},
	}
	// ExileAPIEnvironmentsColumns holds the columns for the "exile_api_environments" table.
	ExileAPIEnvironmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "is_deleted", Type: field.TypeInt64, Default: 0},
		{Name: "status", Type: field.TypeInt, Default: 1},
		{Name: "name", Type: field.TypeString, Size: 128},
		{Name: "variables", Type: field.TypeJSON},
		{Name: "is_default", Type: field.TypeBool, Default: false},
	}
	// ExileAPIEnvironmentsTable holds the schema information for the "exile_api_environments" table.
	ExileAPIEnvironmentsTable = &schema.Table{
		Name:       "exile_api_environments",
		Columns:    ExileAPIEnvironmentsColumns,
		PrimaryKey: []*schema.Column{ExileAPIEnvironmentsColumns[0]},
	}
	// ExileAPIExtractRulesColumns holds the columns for the "exile_api_extract_rules" table.
	ExileAPIExtractRulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "is_deleted", Type: field.TypeInt64, Default: 0},
		{Name: "status", Type: field.TypeInt, Default: 1},
		{Name: "request_id", Type: field.TypeInt64},
		{Name: "dataset_id", Type: field.TypeInt64, Nullable: true},
		{Name: "var_name", Type: field.TypeString, Size: 128},
		{Name: "source_type", Type: field.TypeEnum, Enums: []string{"response_header", "response_json", "response_cookie", "response_text_regex", "response_status", "session"}},
		{Name: "source_expr", Type: field.TypeString, Nullable: true, Size: 1024},
		{Name: "default_value", Type: field.TypeJSON, Nullable: true},
		{Name: "required", Type: field.TypeBool, Default: false},
		{Name: "scope", Type: field.TypeEnum, Enums: []string{"step", "scenario", "global"}, Default: "scenario"},
		{Name: "is_secret", Type: field.TypeBool, Default: false},
		{Name: "is_enabled", Type: field.TypeBool, Default: true},
		{Name: "sort", Type: field.TypeInt, Default: 0},
	}
	// ExileAPIExtractRulesTable holds the schema information for the "exile_api_extract_rules" table.
	ExileAPIExtractRulesTable = &schema.Table{
		Name:       "exile_api_extract_rules",
		Columns:    ExileAPIExtractRulesColumns,
		PrimaryKey: []*schema.Column{ExileAPIExtractRulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "extractrule_request_id",
				Unique:  false,
				Columns: []*schema.Column{ExileAPIExtractRulesColumns[5]},
			},
			{
				Name:    "extractrule_request_id_is_enabled",
				Unique:  false,
				Columns: []*schema.Column{ExileAPIExtractRulesColumns[5], ExileAPIExtractRulesColumns[14]},
			},
		},
	}
	// ExileAPIRequestRunsColumns holds the columns for the "exile_api_request_runs" table.
	ExileAPIRequestRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "is_deleted", Type: field.TypeInt64, Default: 0},
		{Name: "status", Type: field.TypeInt, Default: 1},
		{Name: "request_id", Type: field.TypeInt64},
		{Name: "scenario_run_id", Type: field.TypeInt64, Nullable: true},
		{Name: "scenario_case_id", Type: field.TypeInt64, Nullable: true},
		{Name: "dataset_id", Type: field.TypeInt64, Nullable: true},
		{Name: "dataset_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "request_snapshot", Type: field.TypeJSON},
		{Name: "is_success", Type: field.TypeBool, Default: false},
		{Name: "response_status_code", Type: field.TypeInt, Nullable: true},
		{Name: "response_headers", Type: field.TypeJSON, Nullable: true},
		{Name: "response_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response_time_ms", Type: field.TypeInt64, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "assertion_results", Type: field.TypeJSON, Nullable: true},
	}
	// ExileAPIRequestRunsTable holds the schema information for the "exile_api_request_runs" table.
	ExileAPIRequestRunsTable = &schema.Table{
		Name:       "exile_api_request_runs",
		Columns:    ExileAPIRequestRunsColumns,
		PrimaryKey: []*schema.Column{ExileAPIRequestRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "requestrun_request_id",
				Unique:  false,
				Columns: []*schema.Column{ExileAPIRequestRunsColumns[5]},
			},
			{
				Name:    "requestrun_scenario_run_id",
				Unique:  false,
				Columns: []*schema.Column{ExileAPIRequestRunsColumns[6]},
			},
		},
	}
	// ExileAPIRunVariablesColumns holds the columns for the "exile_api_run_variables" table.
	ExileAPIRunVariablesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "is_deleted", Type: field.TypeInt64, Default: 0},
		{Name: "status", Type: field.TypeInt, Default: 1},
		{Name: "scenario_run_id", Type: field.TypeInt64, Nullable: true},
		{Name: "request_run_id", Type: field.TypeInt64},
		{Name: "scenario_case_id", Type: field.TypeInt64, Nullable: true},
		{Name: "request_id", Type: field.TypeInt64},
		{Name: "dataset_id", Type: field.TypeInt64, Nullable: true},
		{Name: "var_name", Type: field.TypeString, Size: 128},
		{Name: "var_value", Type: field.TypeJSON, Nullable: true},
		{Name: "value_type", Type: field.TypeString, Size: 32, Default: "null"},
		{Name: "source_type", Type: field.TypeEnum, Enums: []string{"response_header", "response_json", "response_cookie", "response_text_regex", "response_status", "session"}},
		{Name: "source_expr", Type: field.TypeString, Nullable: true, Size: 1024},
		{Name: "scope", Type: field.TypeEnum, Enums: []string{"step", "scenario", "global"}, Default: "scenario"},
		{Name: "is_secret", Type: field.TypeBool, Default: false},
	}
	// ExileAPIRunVariablesTable holds the schema information for the "exile_api_run_variables" table.
	ExileAPIRunVariablesTable = &schema.Table{
		Name:       "exile_api_run_variables",
		Columns:    ExileAPIRunVariablesColumns,
		PrimaryKey: []*schema.Column{ExileAPIRunVariablesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "runvariable_scenario_run_id",
				Unique:  false,
				Columns: []*schema.Column{ExileAPIRunVariablesColumns[5]},
			},
			{
				Name:    "runvariable_request_run_id",
				Unique:  false,
				Columns: []*schema.Column{ExileAPIRunVariablesColumns[6]},
			},
		},
	}
	// ExileTestScenariosColumns holds the columns for the "exile_test_scenarios" table.
	ExileTestScenariosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "is_deleted", Type: field.TypeInt64, Default: 0},
		{Name: "status", Type: field.TypeInt, Default: 1},
		{Name: "env_id", Type: field.TypeInt64, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 128},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "run_mode", Type: field.TypeEnum, Enums: []string{"sequence", "parallel"}, Default: "sequence"},
		{Name: "stop_on_fail", Type: field.TypeBool, Default: true},
		{Name: "sort", Type: field.TypeInt, Default: 0},
	}
	// ExileTestScenariosTable holds the schema information for the "exile_test_scenarios" table.
	ExileTestScenariosTable = &schema.Table{
		Name:       "exile_test_scenarios",
		Columns:    ExileTestScenariosColumns,
		PrimaryKey: []*schema.Column{ExileTestScenariosColumns[0]},
	}
	// ExileTestScenarioCasesColumns holds the columns for the "exile_test_scenario_cases" table.
	ExileTestScenarioCasesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "is_deleted", Type: field.TypeInt64, Default: 0},
		{Name: "status", Type: field.TypeInt, Default: 1},
		{Name: "scenario_id", Type: field.TypeInt64},
		{Name: "request_id", Type: field.TypeInt64},
		{Name: "step_no", Type: field.TypeInt, Default: 1},
		{Name: "dataset_id", Type: field.TypeInt64, Nullable: true},
		{Name: "dataset_run_mode", Type: field.TypeEnum, Enums: []string{"request_default", "single", "all"}, Default: "request_default"},
		{Name: "is_enabled", Type: field.TypeBool, Default: true},
		{Name: "stop_on_fail", Type: field.TypeBool, Default: true},
	}
	// ExileTestScenarioCasesTable holds the schema information for the "exile_test_scenario_cases" table.
	ExileTestScenarioCasesTable = &schema.Table{
		Name:       "exile_test_scenario_cases",
		Columns:    ExileTestScenarioCasesColumns,
		PrimaryKey: []*schema.Column{ExileTestScenarioCasesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scenariocase_scenario_id",
				Unique:  false,
				Columns: []*schema.Column{ExileTestScenarioCasesColumns[5]},
			},
			{
				Name:    "scenariocase_scenario_id_step_no",
				Unique:  false,
				Columns: []*schema.Column{ExileTestScenarioCasesColumns[5], ExileTestScenarioCasesColumns[7]},
			},
		},
	}
	// ExileTestScenarioRunsColumns holds the columns for the "exile_test_scenario_runs" table.
	ExileTestScenarioRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "is_deleted", Type: field.TypeInt64, Default: 0},
		{Name: "status", Type: field.TypeInt, Default: 1},
		{Name: "scenario_id", Type: field.TypeInt64},
		{Name: "env_id", Type: field.TypeInt64, Nullable: true},
		{Name: "run_status", Type: field.TypeEnum, Enums: []string{"queued", "running", "success", "failed", "canceled"}, Default: "queued"},
		{Name: "trigger_type", Type: field.TypeEnum, Enums: []string{"manual", "schedule"}, Default: "manual"},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "total_request_runs", Type: field.TypeInt, Default: 0},
		{Name: "success_request_runs", Type: field.TypeInt, Default: 0},
		{Name: "failed_request_runs", Type: field.TypeInt, Default: 0},
		{Name: "is_success", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "runtime_variables", Type: field.TypeJSON},
	}
	// ExileTestScenarioRunsTable holds the schema information for the "exile_test_scenario_runs" table.
	ExileTestScenarioRunsTable = &schema.Table{
		Name:       "exile_test_scenario_runs",
		Columns:    ExileTestScenarioRunsColumns,
		PrimaryKey: []*schema.Column{ExileTestScenarioRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scenariorun_scenario_id",
				Unique:  false,
				Columns: []*schema.Column{ExileTestScenarioRunsColumns[5]},
			},
			{
				Name:    "scenariorun_run_status",
				Unique:  false,
				Columns: []*schema.Column{ExileTestScenarioRunsColumns[7]},
			},
			{
				Name:    "scenariorun_run_status_create_time",
				Unique:  false,
				Columns: []*schema.Column{ExileTestScenarioRunsColumns[7], ExileTestScenarioRunsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExileAPIRequestsTable,
		ExileAPIAssertRulesTable,
		ExileAPIRequestDatasetsTable,
		ExileAPIEnvironmentsTable,
		ExileAPIExtractRulesTable,
		ExileAPIRequestRunsTable,
		ExileAPIRunVariablesTable,
		ExileTestScenariosTable,
		ExileTestScenarioCasesTable,
		ExileTestScenarioRunsTable,
	}
)

func init() {
	ExileAPIRequestsTable.Annotation = &entsql.Annotation{
		Table: "exile_api_requests",
	}
	ExileAPIAssertRulesTable.Annotation = &entsql.Annotation{
		Table: "exile_api_assert_rules",
	}
	ExileAPIRequestDatasetsTable.Annotation = &entsql.Annotation{
		Table: "exile_api_request_datasets",
	}
	ExileAPIEnvironmentsTable.Annotation = &entsql.Annotation{
		Table: "exile_api_environments",
	}
	ExileAPIExtractRulesTable.Annotation = &entsql.Annotation{
		Table: "exile_api_extract_rules",
	}
	ExileAPIRequestRunsTable.Annotation = &entsql.Annotation{
		Table: "exile_api_request_runs",
	}
	ExileAPIRunVariablesTable.Annotation = &entsql.Annotation{
		Table: "exile_api_run_variables",
	}
	ExileTestScenariosTable.Annotation = &entsql.Annotation{
		Table: "exile_test_scenarios",
	}
	ExileTestScenarioCasesTable.Annotation = &entsql.Annotation{
		Table: "exile_test_scenario_cases",
	}
	ExileTestScenarioRunsTable.Annotation = &entsql.Annotation{
		Table: "exile_test_scenario_runs",
	}
}
