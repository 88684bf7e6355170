package handlers

import (
	"errors"
	"net/http"

	request "xtagy_banho/internal/adapter/http/dto/request"
	response "xtagy_banho/internal/adapter/http/dto/response"
	"xtagy_banho/internal/usecase"
	"xtagy_banho/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPiecePayload = pkg.NewDomainErrorSimple("INVALID_PIECE_INPUT", "Invalid piece payload", http.StatusBadRequest)
)

// PieceHandler handles piece requests. publicBaseURL is the front-end origin
// used to build the QR link on responses.

type PieceHandler struct {
	usecase       usecase.IPieceUseCase
	publicBaseURL string
}

func NewPieceHandler(uc usecase.IPieceUseCase, publicBaseURL string) *PieceHandler {
	return &PieceHandler{usecase: uc, publicBaseURL: publicBaseURL}
}

func (h *PieceHandler) Create(c *gin.Context) {
	var payload request.CreatePieceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPiecePayload.HTTPStatus, errInvalidPiecePayload.ToHTTPError())
		return
	}

	piece, err := h.usecase.CreatePiece(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapPieceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPiece(piece, h.publicBaseURL))
}

func (h *PieceHandler) ListByOrder(c *gin.Context) {
	pieces, err := h.usecase.ListByOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPieceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPieces(pieces, h.publicBaseURL))
}

func (h *PieceHandler) GetByID(c *gin.Context) {
	piece, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPieceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPiece(piece, h.publicBaseURL))
}

// UpdateLabel attaches the print-time snapshot to the piece.
func (h *PieceHandler) UpdateLabel(c *gin.Context) {
	var payload request.UpdateLabelRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPiecePayload.HTTPStatus, errInvalidPiecePayload.ToHTTPError())
		return
	}

	piece, err := h.usecase.UpdateLabel(c.Request.Context(), c.Param("id"), payload.ToSnapshot())
	if err != nil {
		appErr := mapPieceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPiece(piece, h.publicBaseURL))
}

func mapPieceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPieceID), errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPieceNotFound):
		return pkg.NewDomainErrorSimple("PIECE_NOT_FOUND", "Piece not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
