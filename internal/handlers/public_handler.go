package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yusaku0324/kakeru-sub008/internal/backend"
	domain "github.com/yusaku0324/kakeru-sub008/internal/domain/directory"
	"github.com/yusaku0324/kakeru-sub008/internal/dto"
	"github.com/yusaku0324/kakeru-sub008/internal/httperr"
	"github.com/yusaku0324/kakeru-sub008/internal/httpresp"
)

////////////////////////////////////////////////////////
// USE CASE PORTS
////////////////////////////////////////////////////////

type ShopSearchUC interface {
	Execute(ctx context.Context, in domain.SearchInput) ([]dto.ShopCardDTO, error)
}

type ShopPageUC interface {
	Execute(ctx context.Context, slug string) (*dto.ShopPageDTO, error)
}

type DaySummaryUC interface {
	Execute(ctx context.Context, slug string) (*dto.DaySummaryDTO, error)
}

type TherapistSlotsUC interface {
	Execute(ctx context.Context, slug string, therapistID uint, date string) (*dto.TherapistSlotsDTO, error)
}

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	search ShopSearchUC
	shop   ShopPageUC
	days   DaySummaryUC
	slots  TherapistSlotsUC
}

func NewPublicHandler(
	search ShopSearchUC,
	shop ShopPageUC,
	days DaySummaryUC,
	slots TherapistSlotsUC,
) *PublicHandler {
	return &PublicHandler{
		search: search,
		shop:   shop,
		days:   days,
		slots:  slots,
	}
}

////////////////////////////////////////////////////////
// SEARCH
////////////////////////////////////////////////////////

func (h *PublicHandler) SearchShops(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, _ = strconv.Atoi(limitStr)
	}

	cards, err := h.search.Execute(c.Request.Context(), domain.SearchInput{
		Area:  c.Query("area"),
		Genre: c.Query("genre"),
		Query: c.Query("query"),
		Limit: limit,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_search_shops", "店舗の検索に失敗しました。")
		return
	}

	httpresp.List(c, cards)
}

////////////////////////////////////////////////////////
// SHOP PAGE
////////////////////////////////////////////////////////

func (h *PublicHandler) GetShop(c *gin.Context) {
	slug := c.Param("slug")

	page, err := h.shop.Execute(c.Request.Context(), slug)
	if err != nil {
		if httperr.IsBusiness(err, "shop_not_found") {
			httperr.NotFound(c, "shop_not_found", "店舗が見つかりません。")
			return
		}
		httperr.Internal(c, "failed_to_get_shop", "店舗情報の取得に失敗しました。")
		return
	}

	httpresp.OK(c, page)
}

////////////////////////////////////////////////////////
// DAY SUMMARY (7-day window)
////////////////////////////////////////////////////////

func (h *PublicHandler) DaySummary(c *gin.Context) {
	slug := c.Param("slug")

	summary, err := h.days.Execute(c.Request.Context(), slug)
	if err != nil {
		if httperr.IsBusiness(err, "shop_not_found") {
			httperr.NotFound(c, "shop_not_found", "店舗が見つかりません。")
			return
		}
		if backend.IsContract(err) {
			httperr.BadGateway(c, "backend_contract_violation", "空き状況を取得できませんでした。")
			return
		}
		httperr.BadGateway(c, "availability_unavailable", "空き状況を取得できませんでした。")
		return
	}

	httpresp.OK(c, summary)
}

////////////////////////////////////////////////////////
// THERAPIST SLOTS
////////////////////////////////////////////////////////

func (h *PublicHandler) TherapistAvailability(c *gin.Context) {
	slug := c.Param("slug")

	therapistID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_therapist_id", "セラピストの指定が不正です。")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "日付を指定してください。")
		return
	}
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		httperr.BadRequest(c, "invalid_date", "日付の形式が不正です。")
		return
	}

	slots, err := h.slots.Execute(c.Request.Context(), slug, uint(therapistID), dateStr)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "shop_not_found"):
			httperr.NotFound(c, "shop_not_found", "店舗が見つかりません。")
		case httperr.IsBusiness(err, "therapist_not_found"):
			httperr.NotFound(c, "therapist_not_found", "セラピストが見つかりません。")
		default:
			httperr.BadGateway(c, "availability_unavailable", "空き状況を取得できませんでした。")
		}
		return
	}

	httpresp.OK(c, slots)
}
