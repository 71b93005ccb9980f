package autoscout_adapter

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/hendrikderyck/steven-car-company/internal/constants"
	"github.com/hendrikderyck/steven-car-company/internal/core/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	// Titles sometimes carry the asking price inline ("BMW 118 van € 16.990").
	titlePricePattern = regexp.MustCompile(`(?i)\s*(van\s*)?€\s*[\d.,]+`)

	isoDatePrefixPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-\d{2}`)

	hexPrefixPattern    = regexp.MustCompile(`^[a-f0-9]{8}$`)
	letterDigitsPattern = regexp.MustCompile(`^[a-z]\d+$`)
)

// dutchPrinter formats decimals with a comma, matching how the site renders
// consumption figures.
var dutchPrinter = message.NewPrinter(language.Dutch)

// mapLdJSONToRecord turns one raw ld+json payload into a ListingRecord.
// Every field is optional; a record with only a URL is a valid outcome.
func mapLdJSONToRecord(rawJSON string, listingURL string) (*domain.ListingRecord, error) {
	var root interface{}
	if err := json.Unmarshal([]byte(rawJSON), &root); err != nil {
		return nil, fmt.Errorf("structured data is not valid JSON: %w", err)
	}

	product := resolveProduct(root)
	if product == nil {
		return nil, fmt.Errorf("structured data contains no product")
	}

	offer := resolveOffer(product)
	item := resolveItem(product, offer)

	record := &domain.ListingRecord{URL: listingURL}

	record.Title = normalizeTitle(firstNonNil(
		getStringPtr(item, "name"),
		getStringPtr(product, "name"),
	))
	record.Description = firstNonNil(
		getStringPtr(item, "description"),
		getStringPtr(product, "description"),
	)
	record.Brand = firstNonNil(
		resolveNamed(item["brand"]),
		resolveNamed(product["brand"]),
		resolveNamed(item["manufacturer"]),
	)
	record.Model = getStringPtr(item, "model")
	if record.Model == nil {
		record.Model = modelFromSlug(domain.ExtractListingSlug(listingURL))
	}
	record.BodyType = firstNonNil(
		getStringPtr(item, "bodyType"),
		getStringPtr(item, "vehicleConfiguration"),
	)
	record.FuelType = normalizeFuelType(firstNonNil(
		engineFuelType(item),
		getStringPtr(item, "fuelType"),
	))
	record.Transmission = normalizeTransmission(getStringPtr(item, "vehicleTransmission"))
	if record.Transmission == nil {
		record.Transmission = strPtr("Manueel")
	}
	record.MileageKm = resolveMileage(item)
	record.FirstRegistration = normalizeRegistrationDate(firstNonNil(
		getStringPtr(item, "productionDate"),
		getStringPtr(item, "dateVehicleFirstRegistered"),
	))
	if offer != nil {
		record.Price = getFloat64Ptr(offer, "price")
		record.Currency = getStringPtr(offer, "priceCurrency")
	}
	record.Power = resolvePower(item)
	record.Images = resolveImages(item)
	if len(record.Images) == 0 {
		record.Images = resolveImages(product)
	}
	record.PreviousOwners = getIntPtr(item, "numberOfPreviousOwners")
	record.FuelConsumption = resolveFuelConsumption(item)
	record.CO2Emissions = resolveCO2(item)
	record.InteriorType = getStringPtr(item, "vehicleInteriorType")
	record.InteriorColor = getStringPtr(item, "vehicleInteriorColor")
	record.NumberOfDoors = getIntPtr(item, "numberOfDoors")
	record.SeatingCapacity = firstNonNilInt(
		getIntPtr(item, "seatingCapacity"),
		getIntPtr(item, "vehicleSeatingCapacity"),
	)
	var offerCondition *string
	if offer != nil {
		offerCondition = getStringPtr(offer, "itemCondition")
	}
	record.Condition = normalizeCondition(firstNonNil(
		offerCondition,
		getStringPtr(item, "itemCondition"),
	))

	return record, nil
}

// resolveProduct digs the Product node out of the payload. The block is
// sometimes a single object, sometimes a @graph-style array; in the array
// case the Product-typed element wins, falling back to the first element.
func resolveProduct(root interface{}) map[string]interface{} {
	if m, ok := asMap(root); ok {
		return m
	}
	arr, ok := asSlice(root)
	if !ok || len(arr) == 0 {
		return nil
	}
	for _, el := range arr {
		if m, ok := asMap(el); ok {
			if t, _ := m["@type"].(string); t == "Product" {
				return m
			}
		}
	}
	if m, ok := asMap(arr[0]); ok {
		return m
	}
	return nil
}

// resolveOffer returns the offer object, unwrapping a one-element array.
func resolveOffer(product map[string]interface{}) map[string]interface{} {
	offers, ok := product["offers"]
	if !ok {
		return nil
	}
	if m, ok := asMap(offers); ok {
		return m
	}
	if arr, ok := asSlice(offers); ok && len(arr) > 0 {
		if m, ok := asMap(arr[0]); ok {
			return m
		}
	}
	return nil
}

// resolveItem picks the node carrying the vehicle fields. Preference order:
// the offer's itemOffered, the product's itemOffered, the product itself.
func resolveItem(product, offer map[string]interface{}) map[string]interface{} {
	if offer != nil {
		if m, ok := asMap(offer["itemOffered"]); ok {
			return m
		}
	}
	if m, ok := asMap(product["itemOffered"]); ok {
		return m
	}
	return product
}

// resolveNamed handles fields that are either a plain string or an object
// with a name property (brand, manufacturer).
func resolveNamed(v interface{}) *string {
	switch t := v.(type) {
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return &s
		}
	case map[string]interface{}:
		return getStringPtr(t, "name")
	}
	return nil
}

func normalizeTitle(title *string) *string {
	if title == nil {
		return nil
	}
	cleaned := strings.TrimSpace(titlePricePattern.ReplaceAllString(*title, ""))
	if cleaned == "" {
		return nil
	}
	return &cleaned
}

// normalizeFuelType maps upstream fuel names onto the Dutch labels used
// across the site. Unknown values pass through untouched.
func normalizeFuelType(fuel *string) *string {
	if fuel == nil {
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(*fuel)) {
	case "super 95", "petrol", "gasoline", "benzine":
		return strPtr("Benzine")
	case "diesel":
		return strPtr("Diesel")
	case "electric", "elektrisch":
		return strPtr("Elektrisch")
	case "hybrid", "hybride":
		return strPtr("Hybride")
	}
	return fuel
}

func normalizeTransmission(transmission *string) *string {
	if transmission == nil {
		return nil
	}
	lower := strings.ToLower(*transmission)
	switch {
	case strings.Contains(lower, "manual"):
		return strPtr("Manueel")
	case strings.Contains(lower, "automatic"):
		return strPtr("Automaat")
	}
	return transmission
}

func normalizeCondition(condition *string) *string {
	if condition == nil {
		return nil
	}
	switch {
	case strings.Contains(*condition, "UsedCondition"):
		return strPtr("Tweedehands")
	case strings.Contains(*condition, "NewCondition"):
		return strPtr("Nieuw")
	}
	return condition
}

// normalizeRegistrationDate turns an ISO date ("2019-02-01") into the MM/YYYY
// form shown on the site. Anything else passes through.
func normalizeRegistrationDate(date *string) *string {
	if date == nil {
		return nil
	}
	m := isoDatePrefixPattern.FindStringSubmatch(*date)
	if m == nil {
		return date
	}
	return strPtr(m[2] + "/" + m[1])
}

// engineFuelType reads the fuel name off the first engine entry, where most
// pages put it.
func engineFuelType(item map[string]interface{}) *string {
	engines, ok := asSlice(item["vehicleEngine"])
	if !ok || len(engines) == 0 {
		return nil
	}
	engine, ok := asMap(engines[0])
	if !ok {
		return nil
	}
	return getStringPtr(engine, "fuelType")
}

func resolveMileage(item map[string]interface{}) *int {
	odo, ok := asMap(item["mileageFromOdometer"])
	if !ok {
		return getIntPtr(item, "mileageFromOdometer")
	}
	return getIntPtr(odo, "value")
}

// resolvePower renders engine power the way the site does. Both units known
// gives "136 PK (100 kW)", PK alone gives "136 PK", and a kW-only payload is
// converted (1 kW = 1.36 PK).
func resolvePower(item map[string]interface{}) *string {
	engines, ok := asSlice(item["vehicleEngine"])
	if !ok || len(engines) == 0 {
		return nil
	}
	engine, ok := asMap(engines[0])
	if !ok {
		return nil
	}
	powers, ok := asSlice(engine["enginePower"])
	if !ok {
		if single, ok := asMap(engine["enginePower"]); ok {
			powers = []interface{}{single}
		} else {
			return nil
		}
	}

	var pk, kw *float64
	for _, p := range powers {
		entry, ok := asMap(p)
		if !ok {
			continue
		}
		value := getFloat64Ptr(entry, "value")
		if value == nil {
			continue
		}
		switch unit, _ := entry["unitCode"].(string); unit {
		case "BHP":
			pk = value
		case "KWT":
			kw = value
		}
	}

	switch {
	case pk != nil && kw != nil:
		return strPtr(fmt.Sprintf("%d PK (%d kW)", int(math.Round(*pk)), int(math.Round(*kw))))
	case pk != nil:
		return strPtr(fmt.Sprintf("%d PK", int(math.Round(*pk))))
	case kw != nil:
		pkDerived := math.Round(*kw * 1.36)
		return strPtr(fmt.Sprintf("%d PK (%d kW)", int(pkDerived), int(math.Round(*kw))))
	}
	return nil
}

func resolveImages(item map[string]interface{}) []string {
	switch t := item["image"].(type) {
	case string:
		if t != "" {
			return []string{t}
		}
	case []interface{}:
		var images []string
		for _, el := range t {
			switch img := el.(type) {
			case string:
				if img != "" {
					images = append(images, img)
				}
			case map[string]interface{}:
				if u := getStringPtr(img, "url"); u != nil {
					images = append(images, *u)
				}
			}
		}
		return images
	}
	return nil
}

// resolveFuelConsumption renders consumption with one decimal and a Dutch
// decimal comma, e.g. "5,0 l/100 km (comb.)". Accepts a bare number or a
// {value, unitText|unit} object; the unit defaults to "l/100 km".
func resolveFuelConsumption(item map[string]interface{}) *string {
	raw, ok := item["fuelConsumption"]
	if !ok || raw == nil {
		return nil
	}

	unit := "l/100 km"
	var value *float64
	if fc, isMap := asMap(raw); isMap {
		value = getFloat64Ptr(fc, "value")
		if u := firstNonNil(getStringPtr(fc, "unitText"), getStringPtr(fc, "unit")); u != nil {
			unit = *u
		}
	} else {
		value = getFloat64Ptr(item, "fuelConsumption")
	}
	if value == nil {
		return nil
	}

	formatted := dutchPrinter.Sprintf("%.1f", *value) + " " + unit
	if strings.Contains(strings.ToLower(unit), "l/100") {
		formatted += " (comb.)"
	}
	return &formatted
}

func resolveCO2(item map[string]interface{}) *int {
	if co2, ok := asMap(item["emissionsCO2"]); ok {
		return getIntPtr(co2, "value")
	}
	return getIntPtr(item, "emissionsCO2")
}

// modelFromSlug derives a model name from the URL slug when the structured
// data omits one. Leading brand tokens are skipped, the first remaining token
// always belongs to the model, and the scan stops at the next feature keyword
// or at the UUID tail. Models like "M" in bmw-m-sport survive this way even
// though "m" is itself a feature keyword.
func modelFromSlug(slug string) *string {
	tokens := strings.Split(strings.ToLower(slug), "-")

	start := 0
	for start < len(tokens) && isCommonBrand(tokens[start]) {
		start++
	}

	var modelTokens []string
	for _, token := range tokens[start:] {
		if token == "" {
			continue
		}
		if len(modelTokens) > 0 && (hexPrefixPattern.MatchString(token) || isModelBoundary(token)) {
			break
		}
		modelTokens = append(modelTokens, casedModelToken(token))
	}

	if len(modelTokens) == 0 {
		return nil
	}
	return strPtr(strings.Join(modelTokens, " "))
}

func isCommonBrand(token string) bool {
	for _, brand := range constants.CommonBrands {
		if token == brand {
			return true
		}
	}
	return false
}

func isModelBoundary(token string) bool {
	for _, keyword := range constants.ModelBoundaryKeywords {
		if token == keyword {
			return true
		}
	}
	return false
}

// casedModelToken restores display casing: "x1" -> "X1", "aircross" ->
// "Aircross", bare numbers stay as-is.
func casedModelToken(token string) string {
	if letterDigitsPattern.MatchString(token) {
		return strings.ToUpper(token)
	}
	return strings.ToUpper(token[:1]) + token[1:]
}

func firstNonNil(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func firstNonNilInt(values ...*int) *int {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
