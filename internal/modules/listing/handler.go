package listing

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/okazmarkt/core/internal/middleware"
	"github.com/okazmarkt/core/internal/pkg/pagination"
	"github.com/okazmarkt/core/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/listings")
	g.GET("", h.listPublic)
	g.GET("/:id", h.get)

	a := g.Group("", authMW)
	a.GET("/mine", h.listOwn)
	a.POST("", h.create)
	a.PATCH("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

func (h *Handler) listPublic(c *gin.Context) {
	q := pagination.FromContext(c)
	items, pag, err := h.svc.ListPublic(c.Query("category"), q)
	if err != nil {
		if errors.Is(err, ErrUnknownCategory) {
			response.BadRequest(c, "unknown category")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Paged(c, items, pag)
}

func (h *Handler) listOwn(c *gin.Context) {
	q := pagination.FromContext(c)
	items, pag, err := h.svc.ListOwn(middleware.CurrentUserID(c), q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, items, pag)
}

func (h *Handler) get(c *gin.Context) {
	l, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if l == nil {
		response.NotFound(c)
		return
	}
	out, err := h.svc.Hydrated(l)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, out)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateListingDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	l, err := h.svc.Create(c.Request.Context(), middleware.CurrentUserID(c), &dto)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Created(c, l)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateListingDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	l, err := h.svc.Update(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"), &dto)
	if err != nil {
		h.fail(c, err)
		return
	}
	if l == nil {
		response.NotFound(c)
		return
	}
	out, err := h.svc.Hydrated(l)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, out)
}

func (h *Handler) delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.NoContent(c)
}

// fail maps service failures onto their wire shapes: field errors as 422,
// policy refusals as 409 with a machine code, the rest per kind.
func (h *Handler) fail(c *gin.Context, err error) {
	var invalid *SpecificsInvalidError
	if errors.As(err, &invalid) {
		response.ValidationFailed(c, invalid.Errors)
		return
	}
	var terr *TransitionError
	if errors.As(err, &terr) {
		response.PolicyRejected(c, terr.Code, terr.Message)
		return
	}
	switch {
	case errors.Is(err, ErrNotOwner):
		response.Forbidden(c)
	case errors.Is(err, ErrUnknownCategory):
		response.BadRequest(c, "unknown category")
	case errors.Is(err, ErrVersionConflict):
		response.Conflict(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
