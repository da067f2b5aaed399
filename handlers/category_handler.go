package handlers

import (
	"errors"
	"strconv"

	"biblioteca-backend/helper"
	"biblioteca-backend/logger"
	"biblioteca-backend/models"
	"biblioteca-backend/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	catalogService services.CatalogService
	Helper         *helper.HTTPHelper
}

func NewCategoryHandler(catalogService services.CatalogService) *CategoryHandler {
	return &CategoryHandler{
		catalogService: catalogService,
		Helper:         &helper.HTTPHelper{},
	}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		log := logger.Get()
		log.Error().Err(err).Msg("list categories failed")
		h.Helper.SendStorageError(c)
		return
	}

	h.Helper.SendSuccess(c, categories)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid category id")
		return
	}

	category, err := h.catalogService.GetCategory(uint(id))
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			h.Helper.SendNotFound(c, err.Error())
			return
		}
		log := logger.Get()
		log.Error().Err(err).Uint64("categoria_id", id).Msg("get category failed")
		h.Helper.SendStorageError(c)
		return
	}

	h.Helper.SendSuccess(c, category)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendValidationError(c, err)
		return
	}

	category, err := h.catalogService.CreateCategory(req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateCategory) {
			h.Helper.SendConflict(c, err.Error())
			return
		}
		log := logger.Get()
		log.Error().Err(err).Str("nombre_categoria", req.Name).Msg("create category failed")
		h.Helper.SendStorageError(c)
		return
	}

	h.Helper.SendCreated(c, gin.H{"message": "category created", "categoria_id": category.ID})
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid category id")
		return
	}

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendValidationError(c, err)
		return
	}

	if err := h.catalogService.UpdateCategory(uint(id), req); err != nil {
		switch {
		case errors.Is(err, models.ErrCategoryNotFound):
			h.Helper.SendNotFound(c, err.Error())
		case errors.Is(err, models.ErrDuplicateCategory):
			h.Helper.SendConflict(c, err.Error())
		default:
			log := logger.Get()
			log.Error().Err(err).Uint64("categoria_id", id).Msg("update category failed")
			h.Helper.SendStorageError(c)
		}
		return
	}

	h.Helper.SendConfirmation(c, "category updated")
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid category id")
		return
	}

	if err := h.catalogService.DeleteCategory(uint(id)); err != nil {
		switch {
		case errors.Is(err, models.ErrCategoryNotFound):
			h.Helper.SendNotFound(c, err.Error())
		case errors.Is(err, models.ErrCategoryInUse):
			h.Helper.SendConflict(c, err.Error())
		default:
			log := logger.Get()
			log.Error().Err(err).Uint64("categoria_id", id).Msg("delete category failed")
			h.Helper.SendStorageError(c)
		}
		return
	}

	h.Helper.SendConfirmation(c, "category deleted")
}
