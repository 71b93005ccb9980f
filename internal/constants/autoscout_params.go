package constants

// Upstream endpoints and scan parameters for the AutoScout24 dealer page.
const (
	BaseURL   = "https://www.autoscout24.be"
	DealerURL = "https://www.autoscout24.be/nl/verkopers/steven-car-company-bv"

	// ListingPathMarker starts every listing detail URL, absolute or
	// site-relative.
	ListingPathMarker = "/nl/aanbod/"

	// URLStopChars terminate the forward scan when collecting listing URLs
	// out of raw markup.
	URLStopChars = " \t\n\"'>)"

	// LdJSONMarker identifies embedded structured-data script blocks.
	LdJSONMarker = "type=\"application/ld+json\""

	// FragmentWrapperClass marks the card <article> blocks on index pages.
	FragmentWrapperClass = "dp-listing-item__wrapper"

	DefaultMaxPages  = 50
	DefaultBatchSize = 5

	// BigImageSize is the gallery variant every thumbnail URL is rewritten to.
	BigImageSize = "1920x1080.webp"

	// Fixed desktop-browser headers; AutoScout24 serves bot traffic a
	// stripped page without them.
	UserAgent    = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0 Safari/537.36"
	AcceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"

	// WorldClockURL backs the showroom clock widget.
	WorldClockURL = "https://www.timeanddate.com/worldclock/belgium/leuven"
)

// LdJSONPlausibilityMarkers: a candidate ld+json block is only accepted when
// it contains one of these, so breadcrumb/organization blocks earlier in the
// page are skipped.
var LdJSONPlausibilityMarkers = []string{
	`"Product"`,
	`"vehicleConfiguration"`,
	`"offers"`,
}

// CommonBrands are slug prefixes to skip when deriving a model name from the
// listing URL.
var CommonBrands = []string{
	"bmw", "mercedes", "audi", "volkswagen", "vw", "peugeot",
	"renault", "citroen", "ford", "opel",
}

// ModelBoundaryKeywords end the model portion of a URL slug; everything from
// the first match (or an 8-hex-digit UUID prefix) onward is feature noise.
var ModelBoundaryKeywords = []string{
	"full", "led", "navi", "camera", "pdc", "benzine", "diesel",
	"wit", "grijs", "zwart", "zilver", "btw", "incl", "pack", "m", "l2",
}

// SlugFeatureKeywords are equipment names recognized in the URL slug when
// building the published car view.
var SlugFeatureKeywords = []string{
	"FULL LED", "LED", "NAVI", "NAVIGATIE", "CAMERA", "PDC", "PARK ASSIST",
	"CARPLAY", "ANDROID AUTO", "BLUETOOTH", "A/C", "AIRCO", "CLIMATE",
	"CRUISE CONTROL", "CRUISE", "LEDER", "LEATHER", "M PACK", "SPORT",
	"GARANTIE", "CAR-PASS", "KEURING", "XENON", "BI-XENON", "HUD",
	"PANORAMA", "SUNROOF", "KEYLESS", "START/STOP", "STOP/START",
	"DUAL AIRCO", "BLACK EDITION", "BOSE", "BTW INCL", "PACK", "SW",
	"PARELMOER", "L2",
}

// DescriptionFeatureKeywords are the keywords worth surfacing from the free
// text description.
var DescriptionFeatureKeywords = []string{
	"GARANTIE", "CAR-PASS", "KEURING",
}

// MaxCarFeatures caps the feature list on a published car.
const MaxCarFeatures = 8

// KeepSections are the h2 section headings retained in the sanitized detail
// page content.
var KeepSections = []string{
	"Basisgegevens",
	"Voertuiggeschiedenis",
	"Technische Gegevens",
	"Energieverbruik",
	"Uitrusting",
	"Kleur en Bekleding",
	"Beschrijving",
}

// StopSections truncate a kept section: nothing at or after these headings
// makes it into the output.
var StopSections = []string{
	"Financiering",
	"Leasing",
	"Verzekering",
	"Populariteit",
	"Verkoper",
	"Prijsevaluatie",
}

// KeySpecLabels is the allow-list for the overview spec table.
var KeySpecLabels = []string{
	"Kilometerstand",
	"Transmissie",
	"Bouwjaar",
	"Brandstof",
	"Vermogen",
	"Verkoper",
}
