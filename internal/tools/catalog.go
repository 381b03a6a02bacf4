package tools

import "net/http"

// paramKind selects how an argument is extracted and rendered outbound.
type paramKind int

const (
	kindString paramKind = iota
	kindStringList
	kindInt
	kindBool
)

// param is one entry of a tool's argument contract.
type param struct {
	name     string
	desc     string
	kind     paramKind
	required bool
	def      string   // default for optional string params
	enum     []string // allowed values, checked before any upstream call
	out      string   // outbound parameter name when it differs from name
	trim     bool     // trim surrounding whitespace before use
	pathOnly bool     // substituted into the path, never sent as a parameter
	query    bool     // POST tools: sent as a query parameter, not in the body
}

// dateMode selects the shared date-window behavior of a tool.
type dateMode int

const (
	datesNone dateMode = iota
	// datesDefaultRange fills start_date/end_date with the trailing 30-day
	// window when the caller omits them.
	datesDefaultRange
	// datesRangeOrDate additionally accepts a single date which, when
	// present, replaces the range entirely.
	datesRangeOrDate
)

// toolSpec is the per-tool variant record; every handler is built from one
// of these plus the shared normalize/invoke path.
type toolSpec struct {
	name        string
	description string
	method      string
	path        string // placeholders like {app} are filled from params
	dates       dateMode
	params      []param
}

var (
	appParam = param{name: "app", desc: "Apple app ID (e.g. 284882215)", kind: kindString, required: true}
	pkgParam = param{name: "app", desc: "Android package name (e.g. com.spotify.music)", kind: kindString, required: true}

	countryParam  = param{name: "country", desc: "Country code", kind: kindString, def: "in"}
	languageParam = param{name: "language", desc: "Language code", kind: kindString, def: "en"}

	pageParam     = param{name: "page", desc: "Page number for pagination", kind: kindInt}
	pageSizeParam = param{name: "page_size", desc: "Number of results per page", kind: kindInt}

	dateFromParam = param{name: "date_from", desc: "Start date in YYYY-MM-DD format", kind: kindString, required: true}
	dateToParam   = param{name: "date_to", desc: "End date in YYYY-MM-DD format", kind: kindString, required: true}
)

// catalog is the closed tool catalog, in presentation order: the core store
// analytics tools first, account-level reporting tools after.
var catalog = []toolSpec{
	{
		name:        AppleMetadataName,
		description: "Get Apple App Store metadata history (title, description, media, genre, developer, ratings, price, version)",
		method:      http.MethodGet,
		path:        "/metadata/apple/",
		dates:       datesDefaultRange,
		params: []param{
			appParam,
			{name: "data", desc: "Type of metadata", kind: kindString, def: "title"},
			countryParam,
			languageParam,
		},
	},
	{
		name:        AppleRankName,
		description: "Get Apple App Store category rank history",
		method:      http.MethodGet,
		path:        "/category/rank/apple/",
		dates:       datesDefaultRange,
		params:      []param{appParam, countryParam},
	},
	{
		name:        AndroidMetadataName,
		description: "Get Google Play Store metadata history (title, description, media, install, ratings, genre, developer, price, events, version)",
		method:      http.MethodGet,
		path:        "/metadata/android/",
		dates:       datesDefaultRange,
		params: []param{
			pkgParam,
			{name: "data", desc: "Type of metadata", kind: kindString, def: "title"},
			countryParam,
			languageParam,
		},
	},
	{
		name:        AndroidRankName,
		description: "Get Google Play Store category rank history",
		method:      http.MethodGet,
		path:        "/category/rank/android/",
		dates:       datesDefaultRange,
		params:      []param{pkgParam, countryParam},
	},
	{
		name:        KeywordResearchName,
		description: "Generate keyword suggestions for a list of base keywords",
		method:      http.MethodPost,
		path:        "/keyword-research/{platform}/",
		params: []param{
			{name: "keywords", desc: "List of base keywords", kind: kindStringList, required: true},
			countryParam,
			languageParam,
			{name: "platform", desc: "Platform (android or ios)", kind: kindString, def: "android", enum: []string{"android", "ios"}},
		},
	},
	{
		name:        AppleReviewsName,
		description: "Get Apple app user reviews history",
		method:      http.MethodGet,
		path:        "/reviews/apple/",
		dates:       datesDefaultRange,
		params:      []param{appParam, countryParam},
	},
	{
		name:        AndroidReviewsName,
		description: "Get Android app user reviews history",
		method:      http.MethodGet,
		path:        "/reviews/android/",
		dates:       datesDefaultRange,
		params:      []param{pkgParam, languageParam},
	},
	{
		name:        AppleKeywordRankName,
		description: "Get Apple app keyword ranking history",
		method:      http.MethodGet,
		path:        "/ranks/apple/",
		dates:       datesRangeOrDate,
		params: []param{
			{name: "app", desc: "Apple app ID (e.g. 284882215)", kind: kindString, required: true, out: "app_id"},
			{name: "keywords", desc: "Comma-separated keywords to track rankings for", kind: kindString, required: true, trim: true},
			countryParam,
			languageParam,
		},
	},
	{
		name:        AndroidKeywordRankName,
		description: "Get Android app keyword ranking history",
		method:      http.MethodGet,
		path:        "/ranks/android/",
		dates:       datesRangeOrDate,
		params: []param{
			{name: "app", desc: "Android package name (e.g. com.spotify.music)", kind: kindString, required: true, out: "app_id"},
			{name: "keywords", desc: "Comma-separated keywords to track rankings for", kind: kindString, required: true, trim: true},
			countryParam,
			languageParam,
		},
	},
	{
		name:        UserJobsName,
		description: "Retrieve all jobs created by the authenticated user, grouped into Android and iOS platforms with applied feature limits",
		method:      http.MethodGet,
		path:        "/userjobs/",
	},
	{
		name:        CustomStoreListingsName,
		description: "Get custom store listings performance data for an Android app",
		method:      http.MethodGet,
		path:        "/user/apps/{app}/custom-store-listings/",
		params: []param{
			{name: "app", desc: "Android package name", kind: kindString, required: true, pathOnly: true},
			dateFromParam,
			dateToParam,
			pageParam,
			pageSizeParam,
		},
	},
	{
		name:        CSLBaseReportsName,
		description: "Get custom store listing base reports with search term performance data",
		method:      http.MethodGet,
		path:        "/user/apps/{app}/csl-base-reports/",
		params: []param{
			{name: "app", desc: "Android package name", kind: kindString, required: true, pathOnly: true},
			dateFromParam,
			dateToParam,
			{name: "search_term", desc: "Search terms to analyze", kind: kindStringList, required: true},
		},
	},
	{
		name:        CSLSearchTermsName,
		description: "Get CSL search terms performance data for an Android app",
		method:      http.MethodGet,
		path:        "/user/apps/{app}/csl-search-terms/",
		params: []param{
			{name: "app", desc: "Android package name", kind: kindString, required: true, pathOnly: true},
			dateFromParam,
			dateToParam,
			{name: "csl_id", desc: "CSL IDs to report on", kind: kindStringList, required: true},
		},
	},
	{
		name:        LocalizationPerformanceName,
		description: "Get localization performance data for an Android app",
		method:      http.MethodGet,
		path:        "/user/apps/{app}/localization/",
		params: []param{
			{name: "app", desc: "Android package name", kind: kindString, required: true, pathOnly: true},
			dateFromParam,
			dateToParam,
			pageParam,
			pageSizeParam,
		},
	},
	{
		name:        KeywordVolumeName,
		description: "Get keyword volume and optionally ranking odds for a list of keywords",
		method:      http.MethodPost,
		path:        "/keywords/volume/",
		params: []param{
			{name: "country", desc: "Country code (e.g. us, in, de)", kind: kindString, required: true},
			{name: "language", desc: "Language code (e.g. en, hi, de)", kind: kindString, required: true},
			{name: "keywords", desc: "Keywords to evaluate", kind: kindStringList, required: true},
			{name: "app_id", desc: "App ID used for ranking odds calculation", kind: kindString},
			{name: "ranking_odds", desc: "Calculate ranking odds in addition to volume", kind: kindBool, query: true},
		},
	},
	{
		name:        KeywordRanksName,
		description: "Get keyword ranks for a specific job with optional ranking odds calculation",
		method:      http.MethodPost,
		path:        "/keywords/ranks/",
		params: []param{
			{name: "job_id", desc: "Job ID associated with the keywords", kind: kindInt, required: true},
			{name: "country", desc: "Country code (e.g. us, in, de)", kind: kindString, required: true},
			{name: "language", desc: "Language code (e.g. en, hi, de)", kind: kindString, required: true},
			{name: "keywords", desc: "Keywords to evaluate", kind: kindStringList, required: true},
			{name: "ranking_odds", desc: "Calculate ranking odds in addition to ranks", kind: kindBool, query: true},
		},
	},
	{
		name:        ImageDifferenceName,
		description: "Compare visual assets (screenshots or icons) between your app and competitor apps",
		method:      http.MethodGet,
		path:        "/image-difference/",
		params: []param{
			{name: "app_id", desc: "Your app ID (package name or Apple app ID)", kind: kindString, required: true},
			{name: "competitor_app_id", desc: "Comma-separated competitor app IDs", kind: kindString, required: true},
			{name: "country", desc: "Two-letter country code", kind: kindString, required: true},
			{name: "platform", desc: "Platform (android or ios)", kind: kindString, required: true, enum: []string{"android", "ios"}},
			{name: "comparison_type", desc: "Type of comparison (screenshots or icon)", kind: kindString, required: true, enum: []string{"screenshots", "icon"}},
		},
	},
	{
		name:        KeywordOpportunityName,
		description: "Find keyword opportunities for your app by analyzing top-ranking keywords",
		method:      http.MethodGet,
		path:        "/keyword-opportunity/",
		params: []param{
			{name: "app", desc: "Package name or Apple app ID", kind: kindString, required: true},
			{name: "start_date", desc: "Start date in YYYY-MM-DD format", kind: kindString, required: true},
			{name: "end_date", desc: "End date in YYYY-MM-DD format", kind: kindString, required: true},
			countryParam,
			languageParam,
			{name: "top", desc: "Number of top keywords to return", kind: kindInt},
		},
	},
	{
		name:        SearchAppsAndroidName,
		description: "Search for Android apps by keyword, package ID, or Play Store URL",
		method:      http.MethodPost,
		path:        "/search-apps/android/",
		params: []param{
			{name: "keyword", desc: "Search term, package ID, or store URL", kind: kindString, required: true},
			countryParam,
			languageParam,
		},
	},
	{
		name:        SearchAppsAppleName,
		description: "Search for iOS apps by keyword, app ID, or App Store URL",
		method:      http.MethodPost,
		path:        "/search-apps/apple/",
		params: []param{
			{name: "keyword", desc: "Search term, app ID, or store URL", kind: kindString, required: true},
			countryParam,
			languageParam,
		},
	},
}

// Catalog returns the ordered tool descriptors. The order is fixed at
// process start and identical on every call.
func Catalog() []Definition {
	defs := make([]Definition, 0, len(catalog))
	for _, s := range catalog {
		defs = append(defs, s.definition())
	}
	return defs
}

// definition renders the spec into the descriptor exposed over tools/list.
func (s toolSpec) definition() Definition {
	props := map[string]any{}
	var required []string
	for _, p := range s.params {
		props[p.name] = p.property()
		if p.required {
			required = append(required, p.name)
		}
	}
	switch s.dates {
	case datesDefaultRange:
		props["start_date"] = dateProperty("Start date in YYYY-MM-DD format (defaults to 30 days ago)")
		props["end_date"] = dateProperty("End date in YYYY-MM-DD format (defaults to today)")
	case datesRangeOrDate:
		props["date"] = dateProperty("Specific date in YYYY-MM-DD format (alternative to start_date/end_date)")
		props["start_date"] = dateProperty("Start date in YYYY-MM-DD format (defaults to 30 days ago)")
		props["end_date"] = dateProperty("End date in YYYY-MM-DD format (defaults to today)")
	}
	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return Definition{Name: s.name, Description: s.description, InputSchema: schema}
}

func (p param) property() map[string]any {
	prop := map[string]any{}
	switch p.kind {
	case kindString:
		prop["type"] = "string"
	case kindStringList:
		prop["type"] = "array"
		prop["items"] = map[string]any{"type": "string"}
		if p.required {
			prop["minItems"] = 1
		}
	case kindInt:
		prop["type"] = "integer"
	case kindBool:
		prop["type"] = "boolean"
	}
	if p.desc != "" {
		prop["description"] = p.desc
	}
	if len(p.enum) > 0 {
		prop["enum"] = p.enum
	}
	if p.def != "" {
		prop["default"] = p.def
	}
	return prop
}

func dateProperty(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}
