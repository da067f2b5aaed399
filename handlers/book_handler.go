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

type BookHandler struct {
	catalogService services.CatalogService
	Helper         *helper.HTTPHelper
}

func NewBookHandler(catalogService services.CatalogService) *BookHandler {
	return &BookHandler{
		catalogService: catalogService,
		Helper:         &helper.HTTPHelper{},
	}
}

func (h *BookHandler) List(c *gin.Context) {
	books, err := h.catalogService.ListBooks()
	if err != nil {
		log := logger.Get()
		log.Error().Err(err).Msg("list books failed")
		h.Helper.SendStorageError(c)
		return
	}

	h.Helper.SendSuccess(c, books)
}

func (h *BookHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid book id")
		return
	}

	book, err := h.catalogService.GetBook(uint(id))
	if err != nil {
		if errors.Is(err, models.ErrBookNotFound) {
			h.Helper.SendNotFound(c, err.Error())
			return
		}
		log := logger.Get()
		log.Error().Err(err).Uint64("libro_id", id).Msg("get book failed")
		h.Helper.SendStorageError(c)
		return
	}

	h.Helper.SendSuccess(c, book)
}

func (h *BookHandler) Create(c *gin.Context) {
	var req models.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendValidationError(c, err)
		return
	}

	book, err := h.catalogService.CreateBook(req)
	if err != nil {
		// A missing category is a referential failure; the client
		// sees a generic storage error, the detail stays in logs.
		log := logger.Get()
		log.Error().Err(err).Uint("categoria_id", req.CategoryID).Msg("create book failed")
		h.Helper.SendStorageError(c)
		return
	}

	h.Helper.SendCreated(c, gin.H{"message": "book created", "libro_id": book.ID})
}

func (h *BookHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid book id")
		return
	}

	var req models.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendValidationError(c, err)
		return
	}

	if err := h.catalogService.UpdateBook(uint(id), req); err != nil {
		if errors.Is(err, models.ErrBookNotFound) {
			h.Helper.SendNotFound(c, err.Error())
			return
		}
		log := logger.Get()
		log.Error().Err(err).Uint64("libro_id", id).Msg("update book failed")
		h.Helper.SendStorageError(c)
		return
	}

	h.Helper.SendConfirmation(c, "book updated")
}

func (h *BookHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid book id")
		return
	}

	if err := h.catalogService.DeleteBook(uint(id)); err != nil {
		if errors.Is(err, models.ErrBookNotFound) {
			h.Helper.SendNotFound(c, err.Error())
			return
		}
		log := logger.Get()
		log.Error().Err(err).Uint64("libro_id", id).Msg("delete book failed")
		h.Helper.SendStorageError(c)
		return
	}

	h.Helper.SendConfirmation(c, "book deleted")
}
