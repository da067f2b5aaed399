package handlers

import (
	"errors"
	"strconv"

	"biblioteca-backend/helper"
	"biblioteca-backend/logger"
	"biblioteca-backend/metrics"
	"biblioteca-backend/models"
	"biblioteca-backend/services"

	"github.com/gin-gonic/gin"
)

type LoanHandler struct {
	loanService services.LoanService
	Helper      *helper.HTTPHelper
}

func NewLoanHandler(loanService services.LoanService) *LoanHandler {
	return &LoanHandler{
		loanService: loanService,
		Helper:      &helper.HTTPHelper{},
	}
}

func caller(c *gin.Context) (uint, models.UserRole) {
	userID, _ := c.Get("user_id")
	role, _ := c.Get("role")
	id, _ := userID.(uint)
	r, _ := role.(string)
	return id, models.UserRole(r)
}

func (h *LoanHandler) Create(c *gin.Context) {
	var req models.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendValidationError(c, err)
		return
	}

	callerID, callerRole := caller(c)

	loan, err := h.loanService.Create(req, callerID, callerRole)
	if err != nil {
		if errors.Is(err, models.ErrLoanForbidden) {
			h.Helper.SendUnauthorized(c, "cannot create a loan for another user")
			return
		}
		log := logger.Get()
		log.Error().Err(err).
			Uint("usuario_id", req.UserID).
			Uint("libro_id", req.BookID).
			Msg("create loan failed")
		h.Helper.SendStorageError(c)
		return
	}

	metrics.LoansCreatedTotal.Inc()
	h.Helper.SendCreated(c, gin.H{"message": "loan created", "prestamo_id": loan.ID})
}

func (h *LoanHandler) ListAll(c *gin.Context) {
	loans, err := h.loanService.ListAll()
	if err != nil {
		log := logger.Get()
		log.Error().Err(err).Msg("list loans failed")
		h.Helper.SendStorageError(c)
		return
	}

	h.Helper.SendSuccess(c, loans)
}

func (h *LoanHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("usuario_id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid user id")
		return
	}

	callerID, callerRole := caller(c)
	if uint(userID) != callerID && callerRole != models.RoleAdministrator {
		h.Helper.SendUnauthorized(c, "cannot view another user's loans")
		return
	}

	loans, err := h.loanService.ListByUser(uint(userID))
	if err != nil {
		log := logger.Get()
		log.Error().Err(err).Uint64("usuario_id", userID).Msg("list user loans failed")
		h.Helper.SendStorageError(c)
		return
	}

	h.Helper.SendSuccess(c, loans)
}

func (h *LoanHandler) Return(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid loan id")
		return
	}

	var req models.ReturnLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendValidationError(c, err)
		return
	}

	callerID, callerRole := caller(c)

	if _, err := h.loanService.MarkReturned(uint(id), req.ReturnDate, callerID, callerRole); err != nil {
		switch {
		case errors.Is(err, models.ErrLoanNotFound):
			h.Helper.SendNotFound(c, err.Error())
		case errors.Is(err, models.ErrLoanForbidden):
			h.Helper.SendUnauthorized(c, "cannot return another user's loan")
		case errors.Is(err, models.ErrLoanAlreadyReturned):
			h.Helper.SendConflict(c, err.Error())
		default:
			log := logger.Get()
			log.Error().Err(err).Uint64("prestamo_id", id).Msg("return loan failed")
			h.Helper.SendStorageError(c)
		}
		return
	}

	metrics.LoansReturnedTotal.Inc()
	h.Helper.SendConfirmation(c, "loan returned")
}

func (h *LoanHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid loan id")
		return
	}

	if err := h.loanService.Delete(uint(id)); err != nil {
		if errors.Is(err, models.ErrLoanNotFound) {
			h.Helper.SendNotFound(c, err.Error())
			return
		}
		log := logger.Get()
		log.Error().Err(err).Uint64("prestamo_id", id).Msg("delete loan failed")
		h.Helper.SendStorageError(c)
		return
	}

	h.Helper.SendConfirmation(c, "loan deleted")
}
