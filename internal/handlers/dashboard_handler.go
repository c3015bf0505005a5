package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yusaku0324/kakeru-sub008/internal/dto"
	"github.com/yusaku0324/kakeru-sub008/internal/httperr"
	"github.com/yusaku0324/kakeru-sub008/internal/httpresp"
	"github.com/yusaku0324/kakeru-sub008/internal/middleware"
	"github.com/yusaku0324/kakeru-sub008/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type DashboardReservationsUC interface {
	Execute(ctx context.Context, shopID uint, userID uint, mode string) (*dto.DashboardReservationsDTO, error)
}

type DashboardHandler struct {
	reservations DashboardReservationsUC
	db           *gorm.DB
}

func NewDashboardHandler(reservations DashboardReservationsUC, db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{
		reservations: reservations,
		db:           db,
	}
}

// ======================================================
// RESERVATIONS (mode=today|tomorrow)
// ======================================================

func (h *DashboardHandler) Reservations(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	// Staff may only see their own shop.
	pathID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || uint(pathID) != shopID {
		httperr.Unauthorized(c, "shop_mismatch", "この店舗の予約は閲覧できません。")
		return
	}

	mode := c.DefaultQuery("mode", "today")

	result, err := h.reservations.Execute(c.Request.Context(), shopID, userID, mode)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_mode"):
			httperr.BadRequest(c, "invalid_mode", "modeはtodayまたはtomorrowを指定してください。")
		case httperr.IsBusiness(err, "shop_not_found"):
			httperr.NotFound(c, "shop_not_found", "店舗が見つかりません。")
		default:
			httperr.BadGateway(c, "reservations_unavailable", "予約一覧を取得できませんでした。")
		}
		return
	}

	httpresp.OK(c, result)
}

// ======================================================
// AUDIT LOGS
// ======================================================

func (h *DashboardHandler) AuditLogs(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	action := c.Query("action")
	entity := c.Query("entity")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "50")

	page, _ := strconv.Atoi(pageStr)
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	// --------------------------------------------------
	// Base query (always scoped to the caller's shop)
	// --------------------------------------------------

	q := h.db.
		Model(&models.AuditLog{}).
		Where("shop_id = ?", shopID)

	// --------------------------------------------------
	// Optional filters
	// --------------------------------------------------

	if action != "" {
		q = q.Where("action = ?", action)
	}

	if entity != "" {
		q = q.Where("entity = ?", entity)
	}

	if fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("created_at < ?", to.AddDate(0, 0, 1))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_count_audit_logs", "監査ログの取得に失敗しました。")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "failed_to_list_audit_logs", "監査ログの取得に失敗しました。")
		return
	}

	httpresp.OK(c, gin.H{
		"data":  logs,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}
