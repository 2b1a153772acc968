package models

// MediaModel is one media asset attached to a listing. Upload and signed-URL
// issuance live in the media service; this row only records existence and
// ordering, which is what the publish gate needs.
type MediaModel struct {
	Base
	ListingID   string `json:"listing_id"   gorm:"type:char(36);index;not null"`
	URL         string `json:"url"          gorm:"not null"`
	ContentType string `json:"content_type" gorm:"type:varchar(100)"`
	Sort        int    `json:"sort"         gorm:"default:0"`
	IsCover     bool   `json:"is_cover"     gorm:"default:false"`
}

func (MediaModel) TableName() string { return "listing_media" }
