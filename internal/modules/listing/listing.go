package listing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/okazmarkt/core/internal/catalog/codec"
	"github.com/okazmarkt/core/internal/catalog/schema"
	"github.com/okazmarkt/core/internal/catalog/validator"
	"github.com/okazmarkt/core/internal/models"
	"github.com/okazmarkt/core/internal/modules/media"
	"github.com/okazmarkt/core/internal/pkg/pagination"
	"github.com/okazmarkt/core/internal/pkg/response"
)

type CreateListingDTO struct {
	Title        string                 `json:"title"         binding:"required,max=200"`
	Description  string                 `json:"description"   binding:"max=10000"`
	Price        float64                `json:"price"         binding:"min=0"`
	Currency     string                 `json:"currency"`
	CategorySlug string                 `json:"category_slug" binding:"required"`
	City         string                 `json:"city"`
	Postcode     string                 `json:"postcode"`
	Specifics    map[string]interface{} `json:"specifics"`
}

type UpdateListingDTO struct {
	Title       *string  `json:"title"       binding:"omitempty,max=200"`
	Description *string  `json:"description" binding:"omitempty,max=10000"`
	Price       *float64 `json:"price"       binding:"omitempty,min=0"`
	City        *string  `json:"city"`
	Postcode    *string  `json:"postcode"`
	Status      *string  `json:"status"`

	// Specifics replaces the stored payload wholesale; nil leaves it
	// untouched, an empty map clears it.
	Specifics map[string]interface{} `json:"specifics"`

	// SpecificsVersion, when set, must match the stored version or the write
	// is refused. Protects against two tabs editing the same listing.
	SpecificsVersion *int `json:"specifics_version"`
}

type listingResponse struct {
	models.ListingModel
	CategorySlug string                 `json:"category_slug,omitempty"`
	CategoryType schema.CategoryType    `json:"category_type"`
	SpecificsMap map[string]interface{} `json:"specifics_values,omitempty"`
}

// Typed failures the handler maps to distinct wire shapes.
var (
	ErrNotOwner        = errors.New("listing belongs to another user")
	ErrUnknownCategory = errors.New("unknown category")
	ErrVersionConflict = errors.New("the listing was modified by another session")
)

// SpecificsInvalidError carries the full ordered field error list.
type SpecificsInvalidError struct {
	Errors []validator.FieldError
}

func (e *SpecificsInvalidError) Error() string {
	return fmt.Sprintf("specifics validation failed with %d errors", len(e.Errors))
}

type Service struct {
	db     *gorm.DB
	engine *validator.Engine
	codec  *codec.Codec
	media  media.Counter
	logger *zap.Logger
}

func NewService(db *gorm.DB, engine *validator.Engine, cdc *codec.Codec, counter media.Counter, logger *zap.Logger) *Service {
	return &Service{db: db, engine: engine, codec: cdc, media: counter, logger: logger}
}

func (s *Service) categoryBySlug(slug string) (*models.MarketCategoryModel, error) {
	var cat models.MarketCategoryModel
	if err := s.db.First(&cat, "slug = ? AND active = ?", slug, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownCategory
		}
		return nil, err
	}
	return &cat, nil
}

func (s *Service) GetByID(id string) (*models.ListingModel, error) {
	var l models.ListingModel
	err := s.db.Preload("Category").Preload("Media").First(&l, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

// Hydrated returns the listing plus its decoded specifics values for edit
// pre-population.
func (s *Service) Hydrated(l *models.ListingModel) (*listingResponse, error) {
	ctype := schema.GetCategoryType(l.Category.Slug)
	out := &listingResponse{
		ListingModel: *l,
		CategorySlug: l.Category.Slug,
		CategoryType: ctype,
	}
	stored, err := s.codec.Hydrate(s.db, l, ctype)
	if err != nil {
		return nil, err
	}
	if len(stored) > 0 {
		out.SpecificsMap = s.codec.Decode(ctype, stored)
	}
	return out, nil
}

func (s *Service) ListOwn(userID string, q pagination.Query) ([]models.ListingModel, response.Pagination, error) {
	tx := s.db.Model(&models.ListingModel{}).
		Where("user_id = ?", userID).
		Preload("Category").
		Order("created_at DESC")
	var items []models.ListingModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

func (s *Service) ListPublic(categorySlug string, q pagination.Query) ([]models.ListingModel, response.Pagination, error) {
	tx := s.db.Model(&models.ListingModel{}).
		Where("status = ?", models.StatusActive).
		Preload("Category").
		Order("created_at DESC")
	if categorySlug != "" {
		cat, err := s.categoryBySlug(categorySlug)
		if err != nil {
			return nil, response.Pagination{}, err
		}
		tx = tx.Where("category_id = ?", cat.ID)
	}
	var items []models.ListingModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

func (s *Service) Create(ctx context.Context, userID string, dto *CreateListingDTO) (*models.ListingModel, error) {
	cat, err := s.categoryBySlug(dto.CategorySlug)
	if err != nil {
		return nil, err
	}

	var specifics map[string]interface{}
	ctype := schema.GetCategoryType(cat.Slug)
	if len(dto.Specifics) > 0 {
		result, err := s.engine.Validate(cat.Slug, dto.Specifics)
		if err != nil {
			return nil, err
		}
		if !result.Ok() {
			return nil, &SpecificsInvalidError{Errors: result.Errors}
		}
		specifics = s.codec.Encode(ctype, result.Specifics)
	}

	currency := dto.Currency
	if currency == "" {
		currency = "EUR"
	}
	l := models.ListingModel{
		UserID:      userID,
		CategoryID:  cat.ID,
		Title:       dto.Title,
		Description: dto.Description,
		Price:       dto.Price,
		Currency:    currency,
		Status:      models.StatusDraft,
		City:        dto.City,
		Postcode:    dto.Postcode,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&l).Error; err != nil {
			return err
		}
		if len(specifics) > 0 {
			if err := s.codec.Persist(tx, &l, ctype, specifics); err != nil {
				return err
			}
			if err := tx.Model(&l).Update("specifics_version", 1).Error; err != nil {
				return err
			}
		}
		return s.audit(tx, userID, models.AuditListingCreated, l.ID, map[string]interface{}{
			"category_slug": cat.Slug,
		})
	})
	if err != nil {
		return nil, err
	}
	l.Category = *cat
	return &l, nil
}

func (s *Service) Update(ctx context.Context, userID, id string, dto *UpdateListingDTO) (*models.ListingModel, error) {
	l, err := s.GetByID(id)
	if err != nil || l == nil {
		return l, err
	}
	if l.UserID != userID {
		return nil, ErrNotOwner
	}

	ctype := schema.GetCategoryType(l.Category.Slug)

	// Validate specifics before touching anything; invalid payloads never
	// reach the persistence boundary.
	var specifics map[string]interface{}
	specificsChanged := dto.Specifics != nil
	if specificsChanged && len(dto.Specifics) > 0 {
		result, err := s.engine.Validate(l.Category.Slug, dto.Specifics)
		if err != nil {
			return nil, err
		}
		if !result.Ok() {
			return nil, &SpecificsInvalidError{Errors: result.Errors}
		}
		specifics = s.codec.Encode(ctype, result.Specifics)
	}

	statusChanged := dto.Status != nil && *dto.Status != l.Status
	if dto.Status != nil {
		if terr := CheckTransition(l.Status, *dto.Status); terr != nil {
			return nil, terr
		}
		if statusChanged && RequiresMedia(l.Status, *dto.Status) {
			n, err := s.media.Count(ctx, l.ID)
			if err != nil {
				return nil, fmt.Errorf("media check: %w", err)
			}
			if n < 1 {
				return nil, &TransitionError{
					Code:    TransitionMediaRequired,
					Message: "add at least one photo before publishing",
				}
			}
		}
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Price != nil {
		updates["price"] = *dto.Price
	}
	if dto.City != nil {
		updates["city"] = *dto.City
	}
	if dto.Postcode != nil {
		updates["postcode"] = *dto.Postcode
	}
	if statusChanged {
		updates["status"] = *dto.Status
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if specificsChanged {
			// Optimistic check: the version must not have moved since the
			// client loaded the form.
			expected := l.SpecificsVersion
			if dto.SpecificsVersion != nil {
				expected = *dto.SpecificsVersion
			}
			res := tx.Model(&models.ListingModel{}).
				Where("id = ? AND specifics_version = ?", l.ID, expected).
				Update("specifics_version", expected+1)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrVersionConflict
			}
			if err := s.codec.Persist(tx, l, ctype, specifics); err != nil {
				return err
			}
			if err := s.audit(tx, userID, models.AuditSpecificsWritten, l.ID, map[string]interface{}{
				"category_type": string(ctype),
				"version":       expected + 1,
				"fields":        len(specifics),
			}); err != nil {
				return err
			}
		}
		if len(updates) > 0 {
			if err := tx.Model(l).Updates(updates).Error; err != nil {
				return err
			}
		}
		if statusChanged {
			if err := s.audit(tx, userID, models.AuditStatusChanged, l.ID, map[string]interface{}{
				"from": l.Status,
				"to":   *dto.Status,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("listing updated",
		zap.String("listing_id", l.ID),
		zap.Bool("specifics_changed", specificsChanged),
		zap.Bool("status_changed", statusChanged),
	)
	return s.GetByID(id)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	l, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if l == nil {
		return nil
	}
	if l.UserID != userID {
		return ErrNotOwner
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.codec.Persist(tx, l, schema.TypeGeneric, nil); err != nil {
			return err
		}
		if err := tx.Delete(l).Error; err != nil {
			return err
		}
		return s.audit(tx, userID, models.AuditListingDeleted, l.ID, nil)
	})
}

func (s *Service) audit(tx *gorm.DB, userID, action, targetID string, payload map[string]interface{}) error {
	entry := models.AuditLogModel{
		UserID:     userID,
		Action:     action,
		TargetType: "listing",
		TargetID:   targetID,
	}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		entry.Payload = raw
	}
	return tx.Create(&entry).Error
}
