package catalog

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/okazmarkt/core/internal/catalog/registry"
	"github.com/okazmarkt/core/internal/catalog/renderer"
	"github.com/okazmarkt/core/internal/catalog/schema"
	"github.com/okazmarkt/core/internal/models"
	"github.com/okazmarkt/core/internal/pkg/response"
)

// RenderFormDTO carries the form's current values so conditional fields
// resolve server-side exactly as they will at validation time.
type RenderFormDTO struct {
	Values map[string]interface{} `json:"values"`
	Locale string                 `json:"locale"`
}

type schemaResponse struct {
	CategorySlug string                 `json:"category_slug"`
	CategoryType schema.CategoryType    `json:"category_type"`
	Specialized  bool                   `json:"specialized"`
	Schema       *schema.CategorySchema `json:"schema,omitempty"`
}

type Service struct {
	db    *gorm.DB
	store *schema.Store
	reg   *registry.Registry
}

func NewService(db *gorm.DB, store *schema.Store, reg *registry.Registry) *Service {
	return &Service{db: db, store: store, reg: reg}
}

// Tree returns the active category taxonomy, roots first with children
// preloaded one level deep.
func (s *Service) Tree() ([]models.MarketCategoryModel, error) {
	var roots []models.MarketCategoryModel
	err := s.db.Where("parent_id IS NULL AND active = ?", true).
		Preload("Children", "active = ?", true).
		Order("sort ASC").Find(&roots).Error
	return roots, err
}

func (s *Service) SchemaFor(slug string) *schemaResponse {
	cs, ctype, ok := s.store.ForCategory(slug)
	out := &schemaResponse{
		CategorySlug: slug,
		CategoryType: ctype,
		Specialized:  ctype.Specialized(),
	}
	if ok {
		out.Schema = cs
	}
	return out
}

func (s *Service) RenderForm(slug string, values map[string]interface{}, locale string) *renderer.Form {
	cs, _, ok := s.store.ForCategory(slug)
	if !ok {
		return renderer.Render(nil, s.reg, values, locale)
	}
	return renderer.Render(cs, s.reg, values, locale)
}

func (s *Service) FieldsForDomain(domain string) []*registry.FieldDefinition {
	return s.reg.ForDomain(domain)
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/catalog")
	g.GET("/categories", h.tree)
	g.GET("/categories/:slug/schema", h.schema)
	g.POST("/categories/:slug/form", h.renderForm)
	g.GET("/fields", h.fields)
}

func (h *Handler) tree(c *gin.Context) {
	roots, err := h.svc.Tree()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, roots)
}

func (h *Handler) schema(c *gin.Context) {
	response.OK(c, h.svc.SchemaFor(c.Param("slug")))
}

func (h *Handler) renderForm(c *gin.Context) {
	var dto RenderFormDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	locale := dto.Locale
	if locale == "" {
		locale = "nl-BE"
	}
	response.OK(c, h.svc.RenderForm(c.Param("slug"), dto.Values, locale))
}

func (h *Handler) fields(c *gin.Context) {
	domain := c.Query("domain")
	response.OK(c, h.svc.FieldsForDomain(domain))
}
