package models

import "gorm.io/datatypes"

// Listing statuses. Blocked is administrative and terminal; user updates can
// never transition into it.
const (
	StatusDraft    = "draft"
	StatusActive   = "active"
	StatusArchived = "archived"
	StatusBlocked  = "blocked"
)

// ListingModel is the generic listing row shared by every vertical. Category
// specifics live either in Specifics (attribute bag) or in a specialized
// table keyed by ListingID, never both.
type ListingModel struct {
	Base
	UserID     string  `json:"user_id"     gorm:"type:char(36);index;not null"`
	CategoryID string  `json:"category_id" gorm:"type:char(36);index;not null"`
	Title      string  `json:"title"       gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	Price      float64 `json:"price"`
	Currency   string  `json:"currency"    gorm:"type:char(3);default:EUR"`
	Status     string  `json:"status"      gorm:"type:varchar(16);index;default:draft"`
	City       string  `json:"city"`
	Postcode   string  `json:"postcode"    gorm:"type:char(4)"`

	// SpecificsVersion increments on every specifics write and backs the
	// optimistic concurrency check for concurrent edit submissions.
	SpecificsVersion int            `json:"specifics_version" gorm:"default:0"`
	Specifics        datatypes.JSON `json:"specifics,omitempty"`

	Category MarketCategoryModel `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Media    []MediaModel        `json:"media,omitempty"    gorm:"foreignKey:ListingID"`
}

func (ListingModel) TableName() string { return "listings" }

// MarketCategoryModel is one node of the category taxonomy tree. Slug is the
// classifier input; everything type-specific dispatches through it.
type MarketCategoryModel struct {
	Base
	Slug     string  `json:"slug"      gorm:"uniqueIndex;not null"`
	NameKey  string  `json:"name_i18n_key" gorm:"not null"`
	ParentID *string `json:"parent_id,omitempty" gorm:"type:char(36);index"`
	Sort     int     `json:"sort"      gorm:"default:0"`
	Active   bool    `json:"active"    gorm:"default:true"`

	Children []MarketCategoryModel `json:"children,omitempty" gorm:"foreignKey:ParentID"`
}

func (MarketCategoryModel) TableName() string { return "market_categories" }
