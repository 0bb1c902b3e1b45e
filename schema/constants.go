package schema

// Custom string types for type safety.
type (
	// Source identifies the bibliometric data source an indicator came from.
	Source string

	// ValueKind represents the payload type of an indicator value.
	ValueKind string

	// CategoryCode is the published rulebook tier label for a venue or document.
	CategoryCode string

	// Tier is the engine-internal symbolic rule outcome, decoupled from the
	// published coding scheme via the code catalog.
	Tier string

	// ResearchArea represents the research-area group of a document.
	ResearchArea string

	// RulebookVariant selects between research-area variants of the quartile rules.
	RulebookVariant string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for persistence.
	DatabaseBackend string
)

// All bibliometric sources supported.
const (
	WOSSource      Source = "wos"
	ScimagoSource  Source = "scimago"
	ERIHPlusSource Source = "erihplus"
	RegionalSource Source = "regional"
)

// All indicator value kinds supported.
const (
	NumericKind ValueKind = "numeric"
	BooleanKind ValueKind = "boolean"
	TextKind    ValueKind = "text"
)

// Symbolic tiers, ordered from most to least prestigious.
const (
	TopPlusTier  Tier = "top-plus"
	TopTier      Tier = "top"
	UpperTier    Tier = "upper"
	MidTier      Tier = "mid"
	LowerTier    Tier = "lower"
	RegionalTier Tier = "regional"
)

// All research-area groups supported.
const (
	NaturalArea    ResearchArea = "natural"
	TechnicalArea  ResearchArea = "technical"
	SocialArea     ResearchArea = "social"
	HumanitiesArea ResearchArea = "humanities"
	OtherArea      ResearchArea = "other"
)

// All quartile rulebook variants supported.
const (
	DefaultVariant RulebookVariant = "default" // default
	SocialVariant  RulebookVariant = "social"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Quartile labels used by the Scimago rules.
const (
	QuartileQ1 = "Q1"
	QuartileQ2 = "Q2"
	QuartileQ3 = "Q3"
	QuartileQ4 = "Q4"
)

// NotRankedMarker prefixes a rank value for venues the source saw but did not
// rank. Such a value never matches any rank tier.
const NotRankedMarker = "NR"

// Indicator codes consumed by the classification and scaling rules. Harvest
// jobs write these codes; the core only reads them.
const (
	IndicatorRank2          = "jifRank2"           // Two-year "rank/total" text value
	IndicatorRank5          = "jifRank5"           // Five-year "rank/total" text value
	IndicatorPercentile     = "jciPercentile"      // Numeric percentile, 0-100
	IndicatorTopJournal     = "topJournal"         // Boolean, grants the plus tier
	IndicatorQuartile       = "sjrQuartile"        // Text, Q1..Q4
	IndicatorERIHIndexed    = "erihIndexed"        // Boolean membership flag
	IndicatorRegionalRank   = "regionalRank"       // Text, regional list category label
	IndicatorRevisedAuthors = "revisedAuthorCount" // Numeric, overrides the declared author count
	IndicatorExperimental   = "isExperimental"     // Boolean work-type flag
	IndicatorSimulation     = "isSimulation"       // Boolean work-type flag
	IndicatorTheoretical    = "isTheoretical"      // Boolean work-type flag
)

// RegionalFirstCategory is the distinguished regional list label that grants
// the regional tier.
const RegionalFirstCategory = "first category"

// AllSources returns a list of all supported sources.
var AllSources = []Source{WOSSource, ScimagoSource, ERIHPlusSource, RegionalSource}

// ValidSources lists all valid sources.
var ValidSources = map[Source]struct{}{
	WOSSource:      {},
	ScimagoSource:  {},
	ERIHPlusSource: {},
	RegionalSource: {},
}

// ValidResearchAreas lists all valid research-area groups.
var ValidResearchAreas = map[ResearchArea]struct{}{
	NaturalArea:    {},
	TechnicalArea:  {},
	SocialArea:     {},
	HumanitiesArea: {},
	OtherArea:      {},
}

// ValidVariants lists all valid rulebook variants.
var ValidVariants = map[RulebookVariant]struct{}{
	DefaultVariant: {},
	SocialVariant:  {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid database backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
