package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validate(t *testing.T, engine *Engine, slug string, input map[string]interface{}) *Result {
	t.Helper()
	result, err := engine.Validate(slug, input)
	require.NoError(t, err)
	return result
}

func rentalApartment() map[string]interface{} {
	return map[string]interface{}{
		"property_type": "apartment",
		"listing_type":  "rent",
		"area_sqm":      float64(85),
		"postcode":      "1000",
		"municipality":  "Brussels",
		"rent_monthly":  float64(950),
	}
}

func TestPropertyRentRequiresMonthlyRent(t *testing.T) {
	engine := newTestEngine(t)

	input := rentalApartment()
	delete(input, "rent_monthly")
	result := validate(t, engine, "real-estate-apartments", input)
	require.False(t, result.Ok())
	ferr := errorFor(t, result, "rent_monthly")
	require.NotNil(t, ferr)
	assert.Equal(t, CodeRequired, ferr.ErrorCode)

	result = validate(t, engine, "real-estate-apartments", rentalApartment())
	assert.True(t, result.Ok(), "errors: %v", result.Errors)
}

func TestPropertySaleForbidsRentFields(t *testing.T) {
	engine := newTestEngine(t)

	input := rentalApartment()
	input["listing_type"] = "sale"
	input["deposit_months"] = float64(2)
	result := validate(t, engine, "real-estate-houses", input)
	require.False(t, result.Ok())

	ferr := errorFor(t, result, "rent_monthly")
	require.NotNil(t, ferr)
	assert.Equal(t, CodeForbidden, ferr.ErrorCode)

	ferr = errorFor(t, result, "deposit_months")
	require.NotNil(t, ferr)
	assert.Equal(t, CodeForbidden, ferr.ErrorCode)
}

func TestPropertyBedroomsBoundedByRooms(t *testing.T) {
	engine := newTestEngine(t)

	input := rentalApartment()
	input["rooms"] = float64(3)
	input["bedrooms"] = float64(5)
	result := validate(t, engine, "real-estate-apartments", input)
	require.False(t, result.Ok())
	require.NotNil(t, errorFor(t, result, "bedrooms"))
	assert.Equal(t, CodeInvariant, errorFor(t, result, "bedrooms").ErrorCode)
}

func TestPropertyRenovationAfterConstruction(t *testing.T) {
	engine := newTestEngine(t)

	input := rentalApartment()
	input["year_built"] = float64(1995)
	input["renovation_year"] = float64(1980)
	result := validate(t, engine, "real-estate-apartments", input)
	require.False(t, result.Ok())
	assert.NotNil(t, errorFor(t, result, "renovation_year"))
}

func TestPropertyPostcodePattern(t *testing.T) {
	engine := newTestEngine(t)

	input := rentalApartment()
	input["postcode"] = "0123"
	result := validate(t, engine, "real-estate-apartments", input)
	require.False(t, result.Ok())
	ferr := errorFor(t, result, "postcode")
	require.NotNil(t, ferr)
	assert.Equal(t, CodePatternMismatch, ferr.ErrorCode)
}

func TestPropertyEPCRatingNeedsCertificate(t *testing.T) {
	engine := newTestEngine(t)

	input := rentalApartment()
	input["epc_rating"] = "B"
	result := validate(t, engine, "real-estate-apartments", input)
	require.False(t, result.Ok())
	ferr := errorFor(t, result, "epc_cert_number")
	require.NotNil(t, ferr)
	assert.Equal(t, CodeRequired, ferr.ErrorCode)

	input["epc_cert_number"] = "20250101-0012345-01"
	result = validate(t, engine, "real-estate-apartments", input)
	assert.True(t, result.Ok(), "errors: %v", result.Errors)
}

func TestJobHoursMatchEmploymentType(t *testing.T) {
	engine := newTestEngine(t)

	base := map[string]interface{}{
		"job_category":    "logistics",
		"contract_type":   "permanent",
		"employment_type": "full_time",
		"contact_email":   "jobs@example.be",
	}

	base["hours_per_week"] = float64(20)
	result := validate(t, engine, "jobs-vacancies", base)
	require.False(t, result.Ok())
	assert.NotNil(t, errorFor(t, result, "hours_per_week"))

	base["employment_type"] = "part_time"
	result = validate(t, engine, "jobs-vacancies", base)
	assert.True(t, result.Ok(), "errors: %v", result.Errors)

	base["hours_per_week"] = float64(38)
	result = validate(t, engine, "jobs-vacancies", base)
	require.False(t, result.Ok())
	assert.NotNil(t, errorFor(t, result, "hours_per_week"))
}

func TestJobSalaryRangeOrdered(t *testing.T) {
	engine := newTestEngine(t)

	result := validate(t, engine, "jobs-vacancies", map[string]interface{}{
		"job_category": "it", "contract_type": "permanent",
		"employment_type": "full_time", "contact_email": "hr@example.be",
		"salary_min": float64(4000), "salary_max": float64(3000),
	})
	require.False(t, result.Ok())
	assert.NotNil(t, errorFor(t, result, "salary_max"))
}

func TestJobRequiresSomeContactChannel(t *testing.T) {
	engine := newTestEngine(t)

	result := validate(t, engine, "jobs-vacancies", map[string]interface{}{
		"job_category": "retail", "contract_type": "interim",
		"employment_type": "part_time",
	})
	require.False(t, result.Ok())
	ferr := errorFor(t, result, "contact_email")
	require.NotNil(t, ferr)
	assert.Equal(t, CodeRequired, ferr.ErrorCode)

	result = validate(t, engine, "jobs-vacancies", map[string]interface{}{
		"job_category": "retail", "contract_type": "interim",
		"employment_type": "part_time", "contact_phone": "+32 2 123 45 67",
	})
	assert.True(t, result.Ok(), "errors: %v", result.Errors)
}

func TestJobLicenseTypesWhenLicenseRequired(t *testing.T) {
	engine := newTestEngine(t)

	result := validate(t, engine, "jobs-vacancies", map[string]interface{}{
		"job_category": "transport", "contract_type": "permanent",
		"employment_type": "full_time", "contact_email": "jobs@example.be",
		"driving_license_required": true,
	})
	require.False(t, result.Ok())
	assert.NotNil(t, errorFor(t, result, "license_types"))

	result = validate(t, engine, "jobs-vacancies", map[string]interface{}{
		"job_category": "transport", "contract_type": "permanent",
		"employment_type": "full_time", "contact_email": "jobs@example.be",
		"driving_license_required": true,
		"license_types":            []interface{}{"C", "CE"},
	})
	assert.True(t, result.Ok(), "errors: %v", result.Errors)
}

func TestElectronicsBatteryDisclosure(t *testing.T) {
	engine := newTestEngine(t)

	phone := map[string]interface{}{
		"device_type": "phone", "brand": "Samsung",
		"model": "Galaxy S22", "condition": "good",
	}
	result := validate(t, engine, "electronics-phones-tablets", phone)
	require.False(t, result.Ok())
	ferr := errorFor(t, result, "battery_condition")
	require.NotNil(t, ferr)
	assert.Equal(t, CodeRequired, ferr.ErrorCode)

	// for_parts devices are exempt
	phone["condition"] = "for_parts"
	result = validate(t, engine, "electronics-phones-tablets", phone)
	assert.True(t, result.Ok(), "errors: %v", result.Errors)

	// non-battery devices are exempt
	result = validate(t, engine, "electronics-tv-audio", map[string]interface{}{
		"device_type": "tv", "brand": "LG", "model": "OLED55", "condition": "good",
	})
	assert.True(t, result.Ok(), "errors: %v", result.Errors)
}

func TestElectronicsIMEIOnlyOnPhonesAndTablets(t *testing.T) {
	engine := newTestEngine(t)

	result := validate(t, engine, "electronics-computers", map[string]interface{}{
		"device_type": "laptop", "brand": "Lenovo", "model": "ThinkPad X1",
		"condition": "good", "battery_condition": "good",
		"imei": "490154203237518",
	})
	require.False(t, result.Ok())
	ferr := errorFor(t, result, "imei")
	require.NotNil(t, ferr)
	assert.Equal(t, CodeForbidden, ferr.ErrorCode)
}

func TestElectronicsIMEIPattern(t *testing.T) {
	engine := newTestEngine(t)

	result := validate(t, engine, "electronics-phones-tablets", map[string]interface{}{
		"device_type": "phone", "brand": "Apple", "model": "iPhone 13",
		"condition": "good", "battery_condition": "excellent",
		"imei": "not-an-imei",
	})
	require.False(t, result.Ok())
	ferr := errorFor(t, result, "imei")
	require.NotNil(t, ferr)
	assert.Equal(t, CodePatternMismatch, ferr.ErrorCode)
}

func TestFashionNeedsAtLeastOneSize(t *testing.T) {
	engine := newTestEngine(t)

	dress := map[string]interface{}{
		"clothing_type": "dress", "color": "red", "condition": "like_new",
	}
	result := validate(t, engine, "fashion-women", dress)
	require.False(t, result.Ok())
	ferr := errorFor(t, result, "size_label")
	require.NotNil(t, ferr)
	assert.Equal(t, CodeRequired, ferr.ErrorCode)

	dress["waist_cm"] = float64(70)
	result = validate(t, engine, "fashion-women", dress)
	assert.True(t, result.Ok(), "errors: %v", result.Errors)
}

func TestFashionVintageNeedsDecade(t *testing.T) {
	engine := newTestEngine(t)

	result := validate(t, engine, "fashion-men", map[string]interface{}{
		"clothing_type": "jacket", "color": "brown", "condition": "good",
		"size_label": "L", "vintage": true,
	})
	require.False(t, result.Ok())
	assert.NotNil(t, errorFor(t, result, "vintage_decade"))
}

func TestPetsMicrochipRequiredForDogSale(t *testing.T) {
	engine := newTestEngine(t)

	// Submitted through the posting form's bare keys.
	input := map[string]interface{}{
		"category":     "dog",
		"listing_type": "sale",
		"breed":        "Malinois",
	}
	result := validate(t, engine, "pets-dogs", input)
	require.False(t, result.Ok())
	ferr := errorFor(t, result, "microchipped")
	require.NotNil(t, ferr)
	assert.Equal(t, CodeInvariant, ferr.ErrorCode)

	input["microchipped"] = true
	input["microchip_number"] = "981020012345678"
	result = validate(t, engine, "pets-dogs", input)
	require.True(t, result.Ok(), "errors: %v", result.Errors)
	assert.Equal(t, "dog", result.Specifics["pet_category"])
	assert.Equal(t, "sale", result.Specifics["pet_listing_type"])
	assert.NotContains(t, result.Specifics, "category")
}

func TestPetsMicrochipNotRequiredForBirds(t *testing.T) {
	engine := newTestEngine(t)

	result := validate(t, engine, "pets-accessories", map[string]interface{}{
		"category": "bird", "listing_type": "sale",
	})
	assert.True(t, result.Ok(), "errors: %v", result.Errors)
}

func TestPetsLostReportNeedsLastSeenDetails(t *testing.T) {
	engine := newTestEngine(t)

	result := validate(t, engine, "pets-cats", map[string]interface{}{
		"category": "cat", "listing_type": "lost",
	})
	require.False(t, result.Ok())
	assert.NotNil(t, errorFor(t, result, "last_seen_date"))
	assert.NotNil(t, errorFor(t, result, "last_seen_location"))

	result = validate(t, engine, "pets-cats", map[string]interface{}{
		"category": "cat", "listing_type": "lost",
		"last_seen_date":     "2026-08-20",
		"last_seen_location": "Parc de Woluwe, Brussels",
	})
	assert.True(t, result.Ok(), "errors: %v", result.Errors)
}

func TestPetsAdoptionNeedsTemperamentAndAllowsFee(t *testing.T) {
	engine := newTestEngine(t)

	result := validate(t, engine, "pets-dogs", map[string]interface{}{
		"category": "dog", "listing_type": "adoption",
		"microchipped": true, "microchip_number": "981020098765432",
	})
	require.False(t, result.Ok())
	assert.NotNil(t, errorFor(t, result, "temperament"))

	result = validate(t, engine, "pets-dogs", map[string]interface{}{
		"category": "dog", "listing_type": "sale",
		"microchipped": true, "microchip_number": "981020098765432",
		"adoption_fee": float64(50),
	})
	require.False(t, result.Ok())
	ferr := errorFor(t, result, "adoption_fee")
	require.NotNil(t, ferr)
	assert.Equal(t, CodeForbidden, ferr.ErrorCode)
}

func TestServicesNeedPricingMode(t *testing.T) {
	engine := newTestEngine(t)

	result := validate(t, engine, "services-home", map[string]interface{}{
		"service_category": "home_services", "service_type": "plumbing",
	})
	require.False(t, result.Ok())
	assert.NotNil(t, errorFor(t, result, "price_per_hour"))

	result = validate(t, engine, "services-home", map[string]interface{}{
		"service_category": "home_services", "service_type": "plumbing",
		"price_negotiable": true,
	})
	assert.True(t, result.Ok(), "errors: %v", result.Errors)
}

func TestServicesVATNumberWhenRegistered(t *testing.T) {
	engine := newTestEngine(t)

	input := map[string]interface{}{
		"service_category": "it_tech", "service_type": "web development",
		"price_per_hour": float64(65), "vat_registered": true,
	}
	result := validate(t, engine, "services-tutoring", input)
	require.False(t, result.Ok())
	assert.NotNil(t, errorFor(t, result, "vat_number"))

	input["vat_number"] = "BE0123456789"
	result = validate(t, engine, "services-tutoring", input)
	assert.True(t, result.Ok(), "errors: %v", result.Errors)
}

func TestServicesProfessionalNeedsInsurance(t *testing.T) {
	engine := newTestEngine(t)

	result := validate(t, engine, "services-home", map[string]interface{}{
		"service_category": "professional", "service_type": "accounting",
		"price_per_hour": float64(90),
	})
	require.False(t, result.Ok())
	assert.NotNil(t, errorFor(t, result, "insurance"))
}

func TestBabyKidsSafetyStandardsForCriticalItems(t *testing.T) {
	engine := newTestEngine(t)

	seat := map[string]interface{}{
		"item_type": "car_seat", "condition": "good", "recall_status": "safe",
	}
	result := validate(t, engine, "baby-kids-gear", seat)
	require.False(t, result.Ok())
	ferr := errorFor(t, result, "safety_standards")
	require.NotNil(t, ferr)
	assert.Equal(t, CodeRequired, ferr.ErrorCode)

	seat["safety_standards"] = []interface{}{"ECE_R129"}
	result = validate(t, engine, "baby-kids-gear", seat)
	assert.True(t, result.Ok(), "errors: %v", result.Errors)

	// A plain toy needs no certification.
	result = validate(t, engine, "baby-kids-toys", map[string]interface{}{
		"item_type": "toy", "condition": "good", "recall_status": "safe",
	})
	assert.True(t, result.Ok(), "errors: %v", result.Errors)
}

func TestBabyKidsRecalledItemsRejected(t *testing.T) {
	engine := newTestEngine(t)

	result := validate(t, engine, "baby-kids-gear", map[string]interface{}{
		"item_type": "crib", "condition": "good", "recall_status": "recalled",
		"safety_standards": []interface{}{"EN716"},
	})
	require.False(t, result.Ok())
	ferr := errorFor(t, result, "recall_status")
	require.NotNil(t, ferr)
	assert.Equal(t, CodeForbidden, ferr.ErrorCode)
}

func TestSportsBikeFieldsOnlyForCycling(t *testing.T) {
	engine := newTestEngine(t)

	result := validate(t, engine, "sports-fitness", map[string]interface{}{
		"sport_type": "fitness", "sport_item_type": "dumbbells",
		"condition": "good", "gears": float64(21),
	})
	require.False(t, result.Ok())
	ferr := errorFor(t, result, "frame_size_cm")
	require.NotNil(t, ferr)
	assert.Equal(t, CodeForbidden, ferr.ErrorCode)

	result = validate(t, engine, "sports-cycling", map[string]interface{}{
		"sport_type": "cycling", "sport_item_type": "road bike",
		"condition": "good", "frame_size_cm": float64(56),
		"wheel_size_inch": float64(28), "gears": float64(22),
	})
	assert.True(t, result.Ok(), "errors: %v", result.Errors)
}

func TestSportsBicycleRequiresFrameSize(t *testing.T) {
	engine := newTestEngine(t)

	result := validate(t, engine, "sports-cycling", map[string]interface{}{
		"sport_type": "cycling", "sport_item_type": "bicycle", "condition": "good",
	})
	require.False(t, result.Ok())
	ferr := errorFor(t, result, "frame_size_cm")
	require.NotNil(t, ferr)
	assert.Equal(t, CodeRequired, ferr.ErrorCode)

	result = validate(t, engine, "sports-cycling", map[string]interface{}{
		"sport_type": "cycling", "sport_item_type": "bicycle", "condition": "good",
		"frame_size_cm": float64(54),
	})
	assert.True(t, result.Ok(), "errors: %v", result.Errors)

	// Other cycling gear has no frame.
	result = validate(t, engine, "sports-cycling", map[string]interface{}{
		"sport_type": "cycling", "sport_item_type": "helmet", "condition": "good",
	})
	assert.True(t, result.Ok(), "errors: %v", result.Errors)
}

func TestHomeFurnitureAcceptsDimensions(t *testing.T) {
	engine := newTestEngine(t)

	result := validate(t, engine, "home-furniture", map[string]interface{}{
		"furniture_type": "sofa", "condition": "good",
		"width_cm": float64(220), "depth_cm": float64(95),
		"material": "fabric", "assembly_required": false,
	})
	require.True(t, result.Ok(), "errors: %v", result.Errors)
	assert.Equal(t, false, result.Specifics["assembly_required"])
}

func TestHomeFurnitureRequiresADimension(t *testing.T) {
	engine := newTestEngine(t)

	result := validate(t, engine, "home-furniture", map[string]interface{}{
		"furniture_type": "sofa", "condition": "good",
	})
	require.False(t, result.Ok())
	ferr := errorFor(t, result, "width_cm")
	require.NotNil(t, ferr)
	assert.Equal(t, CodeRequired, ferr.ErrorCode)

	// Any single dimension satisfies the rule.
	result = validate(t, engine, "home-furniture", map[string]interface{}{
		"furniture_type": "bed", "condition": "good", "height_cm": float64(45),
	})
	assert.True(t, result.Ok(), "errors: %v", result.Errors)

	// Decorative items are exempt.
	result = validate(t, engine, "home-decoration", map[string]interface{}{
		"furniture_type": "lighting", "condition": "like_new",
	})
	assert.True(t, result.Ok(), "errors: %v", result.Errors)
}
