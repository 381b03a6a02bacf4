// Package tools implements the AppVector tool gateway: the catalog of
// schema-described tools, argument normalization, and the dispatcher that
// turns tool calls into authenticated AppVector API requests.
package tools

// Definition describes the metadata the MCP server exposes for a tool.
type Definition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// ContentPart represents a piece of data returned from a tool invocation.
type ContentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Handler executes a tool using the provided arguments and returns content
// for the caller. Handlers report failures as errors; only the Dispatcher
// converts them into response content.
type Handler func(map[string]any) ([]ContentPart, error)

// Canonical tool names. The first ten form the core catalog; the rest cover
// the account-level reporting endpoints.
const (
	AppleMetadataName           = "appvector_apple_metadata"
	AppleRankName               = "appvector_apple_rank"
	AndroidMetadataName         = "appvector_android_metadata"
	AndroidRankName             = "appvector_android_rank"
	KeywordResearchName         = "appvector_keyword_research"
	AppleReviewsName            = "appvector_apple_reviews"
	AndroidReviewsName          = "appvector_android_reviews"
	AppleKeywordRankName        = "appvector_apple_keyword_rank"
	AndroidKeywordRankName      = "appvector_android_keyword_rank"
	UserJobsName                = "appvector_user_jobs"
	CustomStoreListingsName     = "appvector_custom_store_listings"
	CSLBaseReportsName          = "appvector_csl_base_reports"
	CSLSearchTermsName          = "appvector_csl_search_terms"
	LocalizationPerformanceName = "appvector_localization_performance"
	KeywordVolumeName           = "appvector_keyword_volume"
	KeywordRanksName            = "appvector_keyword_ranks"
	ImageDifferenceName         = "appvector_image_difference"
	KeywordOpportunityName      = "appvector_keyword_opportunity"
	SearchAppsAndroidName       = "appvector_search_apps_android"
	SearchAppsAppleName         = "appvector_search_apps_apple"
)
