package media

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"gorm.io/gorm"

	"github.com/okazmarkt/core/internal/middleware"
	"github.com/okazmarkt/core/internal/models"
	"github.com/okazmarkt/core/internal/pkg/response"
)

// Counter answers how many media assets a listing currently has. The publish
// gate calls it immediately before committing an activation and never caches
// the answer.
type Counter interface {
	Count(ctx context.Context, listingID string) (int64, error)
}

// DBCounter counts media rows in the local database.
type DBCounter struct{ db *gorm.DB }

func NewDBCounter(db *gorm.DB) *DBCounter { return &DBCounter{db: db} }

func (c *DBCounter) Count(ctx context.Context, listingID string) (int64, error) {
	var n int64
	err := c.db.WithContext(ctx).Model(&models.MediaModel{}).
		Where("listing_id = ?", listingID).Count(&n).Error
	return n, err
}

// RemoteCounter asks the media service, for deployments where uploads never
// touch this database.
type RemoteCounter struct {
	client *resty.Client
}

func NewRemoteCounter(baseURL string) *RemoteCounter {
	return &RemoteCounter{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(5 * time.Second).
			SetRetryCount(2),
	}
}

func (c *RemoteCounter) Count(ctx context.Context, listingID string) (int64, error) {
	var body struct {
		Count int64 `json:"count"`
	}
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("listingID", listingID).
		SetResult(&body).
		Get("/v1/listings/{listingID}/media/count")
	if err != nil {
		return 0, fmt.Errorf("media service: %w", err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("media service: status %d", resp.StatusCode())
	}
	return body.Count, nil
}

type AttachMediaDTO struct {
	URL         string `json:"url"          binding:"required,url"`
	ContentType string `json:"content_type"`
	Sort        int    `json:"sort"`
	IsCover     bool   `json:"is_cover"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) ListForListing(listingID string) ([]models.MediaModel, error) {
	var items []models.MediaModel
	err := s.db.Where("listing_id = ?", listingID).
		Order("sort ASC, created_at ASC").Find(&items).Error
	return items, err
}

func (s *Service) Attach(listingID string, dto *AttachMediaDTO) (*models.MediaModel, error) {
	m := models.MediaModel{
		ListingID:   listingID,
		URL:         dto.URL,
		ContentType: dto.ContentType,
		Sort:        dto.Sort,
		IsCover:     dto.IsCover,
	}
	return &m, s.db.Create(&m).Error
}

func (s *Service) Detach(listingID, mediaID string) error {
	return s.db.Where("listing_id = ? AND id = ?", listingID, mediaID).
		Delete(&models.MediaModel{}).Error
}

// ownerOf returns the owning user of a listing, or "" if it does not exist.
func (s *Service) ownerOf(listingID string) (string, error) {
	var l models.ListingModel
	if err := s.db.Select("user_id").First(&l, "id = ?", listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return l.UserID, nil
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/listings/:id/media")
	g.GET("", h.list)

	a := g.Group("", authMW)
	a.POST("", h.attach)
	a.DELETE("/:mediaID", h.detach)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.ListForListing(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

func (h *Handler) attach(c *gin.Context) {
	var dto AttachMediaDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	listingID := c.Param("id")
	if !h.authorize(c, listingID) {
		return
	}
	m, err := h.svc.Attach(listingID, &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, m)
}

func (h *Handler) detach(c *gin.Context) {
	listingID := c.Param("id")
	if !h.authorize(c, listingID) {
		return
	}
	if err := h.svc.Detach(listingID, c.Param("mediaID")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) authorize(c *gin.Context, listingID string) bool {
	owner, err := h.svc.ownerOf(listingID)
	if err != nil {
		response.InternalError(c, err)
		return false
	}
	if owner == "" {
		response.NotFound(c)
		return false
	}
	if owner != middleware.CurrentUserID(c) {
		response.Forbidden(c)
		return false
	}
	return true
}
