package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/okazmarkt/core/internal/catalog/registry"
	"github.com/okazmarkt/core/internal/catalog/schema"
	"github.com/okazmarkt/core/internal/models"
)

// Codec turns validated specifics into their storage form and back. Routing
// follows the classifier: property, job and vehicle land in specialized
// tables, every other specialized type in the listing's JSON attribute bag.
type Codec struct {
	reg *registry.Registry
}

func New(reg *registry.Registry) *Codec {
	return &Codec{reg: reg}
}

// Encode produces the canonical storage payload: any key the registry does
// not define for the category's domain is stripped. Values are expected to be
// validator output and are passed through unchanged.
func (c *Codec) Encode(ctype schema.CategoryType, validated map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(validated))
	for key, value := range validated {
		if c.reg.InDomain(key, ctype.Domain()) {
			out[key] = value
		}
	}
	return out
}

// Decode maps a stored payload back to form values for edit-mode
// pre-population. Stored payloads already use canonical field keys, so this
// is a defensive copy plus the same domain filter as Encode.
func (c *Codec) Decode(ctype schema.CategoryType, stored map[string]interface{}) map[string]interface{} {
	return c.Encode(ctype, stored)
}

// Persist writes the canonical specifics for a listing inside the given
// transaction. Empty specifics, or a category change away from a specialized
// type, removes every stored shape.
func (c *Codec) Persist(tx *gorm.DB, listing *models.ListingModel, ctype schema.CategoryType, specifics map[string]interface{}) error {
	if len(specifics) == 0 {
		return c.remove(tx, listing)
	}

	switch ctype {
	case schema.TypeProperty:
		if err := c.upsertProperty(tx, listing.ID, specifics); err != nil {
			return err
		}
	case schema.TypeJob:
		if err := c.upsertJob(tx, listing.ID, specifics); err != nil {
			return err
		}
	case schema.TypeVehicle:
		if err := c.upsertVehicle(tx, listing.ID, specifics); err != nil {
			return err
		}
	default:
		raw, err := json.Marshal(specifics)
		if err != nil {
			return fmt.Errorf("marshal specifics: %w", err)
		}
		if err := c.deleteSpecializedRows(tx, listing.ID, ctype); err != nil {
			return err
		}
		return tx.Model(listing).Update("specifics", datatypes.JSON(raw)).Error
	}

	// A specialized-table write clears the bag and any stale rows of the
	// other specialized shapes.
	if err := c.deleteSpecializedRows(tx, listing.ID, ctype); err != nil {
		return err
	}
	return tx.Model(listing).Update("specifics", nil).Error
}

// remove drops every stored specifics shape for the listing.
func (c *Codec) remove(tx *gorm.DB, listing *models.ListingModel) error {
	if err := c.deleteSpecializedRows(tx, listing.ID, ""); err != nil {
		return err
	}
	return tx.Model(listing).Update("specifics", nil).Error
}

// deleteSpecializedRows removes specialized rows except the one matching
// keep. An empty keep removes all three.
func (c *Codec) deleteSpecializedRows(tx *gorm.DB, listingID string, keep schema.CategoryType) error {
	if keep != schema.TypeProperty {
		if err := tx.Where("listing_id = ?", listingID).Delete(&models.PropertySpecificsModel{}).Error; err != nil {
			return err
		}
	}
	if keep != schema.TypeJob {
		if err := tx.Where("listing_id = ?", listingID).Delete(&models.JobSpecificsModel{}).Error; err != nil {
			return err
		}
	}
	if keep != schema.TypeVehicle {
		if err := tx.Where("listing_id = ?", listingID).Delete(&models.VehicleSpecificsModel{}).Error; err != nil {
			return err
		}
	}
	return nil
}

func (c *Codec) upsertProperty(tx *gorm.DB, listingID string, specifics map[string]interface{}) error {
	row := models.PropertySpecificsModel{
		ListingID:    listingID,
		PropertyType: str(specifics, "property_type"),
		ListingType:  str(specifics, "listing_type"),
		AreaSqm:      num(specifics, "area_sqm"),
		Rooms:        intPtr(specifics, "rooms"),
		Bedrooms:     intPtr(specifics, "bedrooms"),
		Postcode:     str(specifics, "postcode"),
		Municipality: str(specifics, "municipality"),
		RentMonthly:  numPtr(specifics, "rent_monthly"),
		EPCRating:    str(specifics, "epc_rating"),
	}
	attrs, err := remainderJSON(specifics,
		"property_type", "listing_type", "area_sqm", "rooms", "bedrooms",
		"postcode", "municipality", "rent_monthly", "epc_rating")
	if err != nil {
		return err
	}
	row.Attributes = attrs
	return upsert(tx, &row)
}

func (c *Codec) upsertJob(tx *gorm.DB, listingID string, specifics map[string]interface{}) error {
	row := models.JobSpecificsModel{
		ListingID:      listingID,
		JobCategory:    str(specifics, "job_category"),
		ContractType:   str(specifics, "contract_type"),
		EmploymentType: str(specifics, "employment_type"),
		SalaryMin:      numPtr(specifics, "salary_min"),
		SalaryMax:      numPtr(specifics, "salary_max"),
		HoursPerWeek:   numPtr(specifics, "hours_per_week"),
	}
	attrs, err := remainderJSON(specifics,
		"job_category", "contract_type", "employment_type",
		"salary_min", "salary_max", "hours_per_week")
	if err != nil {
		return err
	}
	row.Attributes = attrs
	return upsert(tx, &row)
}

func (c *Codec) upsertVehicle(tx *gorm.DB, listingID string, specifics map[string]interface{}) error {
	year, _ := intVal(specifics, "vehicle_year")
	row := models.VehicleSpecificsModel{
		ListingID: listingID,
		Make:      str(specifics, "vehicle_make"),
		Model:     str(specifics, "vehicle_model"),
		Year:      year,
		MileageKm: num(specifics, "vehicle_mileage_km"),
		Condition: str(specifics, "vehicle_condition"),
		BodyType:  str(specifics, "vehicle_body_type"),
		Country:   str(specifics, "vehicle_country"),
	}
	attrs, err := remainderJSON(specifics,
		"vehicle_make", "vehicle_model", "vehicle_year", "vehicle_mileage_km",
		"vehicle_condition", "vehicle_body_type", "vehicle_country")
	if err != nil {
		return err
	}
	row.Attributes = attrs
	return upsert(tx, &row)
}

// upsert inserts or replaces the one specifics row per listing id.
func upsert(tx *gorm.DB, row interface{}) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "listing_id"}},
		UpdateAll: true,
	}).Create(row).Error
}

// Hydrate loads the stored specifics for a listing back into a values map.
func (c *Codec) Hydrate(tx *gorm.DB, listing *models.ListingModel, ctype schema.CategoryType) (map[string]interface{}, error) {
	switch ctype {
	case schema.TypeProperty:
		var row models.PropertySpecificsModel
		if err := firstRow(tx, listing.ID, &row); err != nil {
			return nil, err
		}
		if row.ID == "" {
			return nil, nil
		}
		out := mergeAttrs(row.Attributes, map[string]interface{}{
			"property_type": row.PropertyType,
			"listing_type":  row.ListingType,
			"area_sqm":      row.AreaSqm,
			"postcode":      row.Postcode,
			"municipality":  row.Municipality,
		})
		putIntPtr(out, "rooms", row.Rooms)
		putIntPtr(out, "bedrooms", row.Bedrooms)
		putNumPtr(out, "rent_monthly", row.RentMonthly)
		putStr(out, "epc_rating", row.EPCRating)
		return out, nil

	case schema.TypeJob:
		var row models.JobSpecificsModel
		if err := firstRow(tx, listing.ID, &row); err != nil {
			return nil, err
		}
		if row.ID == "" {
			return nil, nil
		}
		out := mergeAttrs(row.Attributes, map[string]interface{}{
			"job_category":    row.JobCategory,
			"contract_type":   row.ContractType,
			"employment_type": row.EmploymentType,
		})
		putNumPtr(out, "salary_min", row.SalaryMin)
		putNumPtr(out, "salary_max", row.SalaryMax)
		putNumPtr(out, "hours_per_week", row.HoursPerWeek)
		return out, nil

	case schema.TypeVehicle:
		var row models.VehicleSpecificsModel
		if err := firstRow(tx, listing.ID, &row); err != nil {
			return nil, err
		}
		if row.ID == "" {
			return nil, nil
		}
		out := mergeAttrs(row.Attributes, map[string]interface{}{
			"vehicle_make":       row.Make,
			"vehicle_model":      row.Model,
			"vehicle_year":       float64(row.Year),
			"vehicle_mileage_km": row.MileageKm,
			"vehicle_condition":  row.Condition,
		})
		putStr(out, "vehicle_body_type", row.BodyType)
		putStr(out, "vehicle_country", row.Country)
		return out, nil

	default:
		if len(listing.Specifics) == 0 {
			return nil, nil
		}
		var out map[string]interface{}
		if err := json.Unmarshal(listing.Specifics, &out); err != nil {
			return nil, fmt.Errorf("unmarshal specifics: %w", err)
		}
		return out, nil
	}
}

func firstRow(tx *gorm.DB, listingID string, dest interface{}) error {
	err := tx.Where("listing_id = ?", listingID).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
