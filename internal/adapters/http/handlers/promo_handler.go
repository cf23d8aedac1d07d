package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Maxxvall/BarskieHoromi/internal/adapters/http/common"
	"github.com/Maxxvall/BarskieHoromi/internal/adapters/http/middleware"
)

// ============================================
// Use Case Interfaces
// ============================================

// GetPromoCodeUseCase - чтение действующего промокода.
type GetPromoCodeUseCase interface {
	Execute(ctx context.Context) (string, error)
}

// RegeneratePromoCodeUseCase - админская замена промокода.
type RegeneratePromoCodeUseCase interface {
	Execute(ctx context.Context, userID int64) (string, error)
}

// GetVisibilityUseCase - чтение флага видимости секретного раздела.
type GetVisibilityUseCase interface {
	Execute(ctx context.Context) (bool, error)
}

// ToggleVisibilityUseCase - админское переключение флага.
type ToggleVisibilityUseCase interface {
	Execute(ctx context.Context, userID int64) (bool, error)
}

// ============================================
// Promo Handler
// ============================================

// PromoHandler обрабатывает промокод и видимость секретного раздела.
type PromoHandler struct {
	getCode        GetPromoCodeUseCase
	regenerateCode RegeneratePromoCodeUseCase
	getVisibility  GetVisibilityUseCase
	toggle         ToggleVisibilityUseCase
}

// NewPromoHandler создаёт новый PromoHandler.
func NewPromoHandler(
	getCode GetPromoCodeUseCase,
	regenerateCode RegeneratePromoCodeUseCase,
	getVisibility GetVisibilityUseCase,
	toggle ToggleVisibilityUseCase,
) *PromoHandler {
	return &PromoHandler{
		getCode:        getCode,
		regenerateCode: regenerateCode,
		getVisibility:  getVisibility,
		toggle:         toggle,
	}
}

// AdminActionRequest - тело админских POST запросов.
// Авторизация - совпадение userId с настроенным администратором,
// проверяется в use case.
type AdminActionRequest struct {
	UserID int64 `json:"userId"`
}

// GetPromoCode обрабатывает GET /api/promo-code.
func (h *PromoHandler) GetPromoCode(c *gin.Context) {
	code, err := h.getCode.Execute(c.Request.Context())
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.OK(c, gin.H{"promoCode": code})
}

// RegeneratePromoCode обрабатывает POST /api/promo-code.
func (h *PromoHandler) RegeneratePromoCode(c *gin.Context) {
	var req AdminActionRequest
	if !BindJSON(c, &req) {
		return
	}

	code, err := h.regenerateCode.Execute(c.Request.Context(), req.UserID)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	middleware.PromoRegenerationsTotal.Inc()

	common.OK(c, gin.H{
		"success":   true,
		"promoCode": code,
		"message":   "Новый промокод сгенерирован",
	})
}

// GetVisibility обрабатывает GET /api/secret-section-visibility.
func (h *PromoHandler) GetVisibility(c *gin.Context) {
	visible, err := h.getVisibility.Execute(c.Request.Context())
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.OK(c, gin.H{"isVisible": visible})
}

// ToggleVisibility обрабатывает POST /api/secret-section-visibility.
func (h *PromoHandler) ToggleVisibility(c *gin.Context) {
	var req AdminActionRequest
	if !BindJSON(c, &req) {
		return
	}

	visible, err := h.toggle.Execute(c.Request.Context(), req.UserID)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	message := "Секретный раздел скрыт"
	if visible {
		message = "Секретный раздел показан"
	}

	common.OK(c, gin.H{
		"success":   true,
		"isVisible": visible,
		"message":   message,
	})
}
