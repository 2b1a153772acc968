package models

import "gorm.io/datatypes"

// Specialized specifics tables: one row per listing, upserted wholesale on
// every validated edit. Hot columns are the ones search and list views filter
// on; the long tail of validated attributes stays in Attributes.

type PropertySpecificsModel struct {
	Base
	ListingID    string  `json:"listing_id"    gorm:"type:char(36);uniqueIndex;not null"`
	PropertyType string  `json:"property_type" gorm:"type:varchar(50);index"`
	ListingType  string  `json:"listing_type"  gorm:"type:varchar(10);index"`
	AreaSqm      float64 `json:"area_sqm"`
	Rooms        *int    `json:"rooms,omitempty"`
	Bedrooms     *int    `json:"bedrooms,omitempty"`
	Postcode     string  `json:"postcode"      gorm:"type:char(4);index"`
	Municipality string  `json:"municipality"`
	RentMonthly  *float64 `json:"rent_monthly,omitempty"`
	EPCRating    string  `json:"epc_rating,omitempty" gorm:"type:varchar(4)"`

	Attributes datatypes.JSON `json:"attributes,omitempty"`
}

func (PropertySpecificsModel) TableName() string { return "listing_property_specifics" }

type JobSpecificsModel struct {
	Base
	ListingID      string   `json:"listing_id"      gorm:"type:char(36);uniqueIndex;not null"`
	JobCategory    string   `json:"job_category"    gorm:"type:varchar(100);index"`
	ContractType   string   `json:"contract_type"   gorm:"type:varchar(100)"`
	EmploymentType string   `json:"employment_type" gorm:"type:varchar(20);index"`
	SalaryMin      *float64 `json:"salary_min,omitempty"`
	SalaryMax      *float64 `json:"salary_max,omitempty"`
	HoursPerWeek   *float64 `json:"hours_per_week,omitempty"`

	Attributes datatypes.JSON `json:"attributes,omitempty"`
}

func (JobSpecificsModel) TableName() string { return "listing_job_specifics" }

type VehicleSpecificsModel struct {
	Base
	ListingID string  `json:"listing_id" gorm:"type:char(36);uniqueIndex;not null"`
	Make      string  `json:"make"       gorm:"type:varchar(100);index"`
	Model     string  `json:"model"      gorm:"type:varchar(200);index"`
	Year      int     `json:"year"       gorm:"index"`
	MileageKm float64 `json:"mileage_km"`
	Condition string  `json:"condition"  gorm:"type:varchar(20)"`

	// Denormalized from the vehicle reference catalog at validation time.
	BodyType string `json:"body_type,omitempty" gorm:"type:varchar(50)"`
	Country  string `json:"country,omitempty"   gorm:"type:char(2)"`

	Attributes datatypes.JSON `json:"attributes,omitempty"`
}

func (VehicleSpecificsModel) TableName() string { return "listing_vehicle_specifics" }
