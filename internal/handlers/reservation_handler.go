package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/yusaku0324/kakeru-sub008/internal/cache"
	"github.com/yusaku0324/kakeru-sub008/internal/dto"
	"github.com/yusaku0324/kakeru-sub008/internal/httperr"
	"github.com/yusaku0324/kakeru-sub008/internal/httpresp"
	"github.com/yusaku0324/kakeru-sub008/internal/usecase/portal"
)

// GuestTokenHeader carries the returning guest's browser token.
const GuestTokenHeader = "X-Guest-Token"

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type SubmitReservationUC interface {
	Execute(ctx context.Context, in portal.SubmitReservationInput) (*dto.SubmitReservationResultDTO, error)
}

type ReservationHandler struct {
	submit SubmitReservationUC
	cache  *cache.Store
}

func NewReservationHandler(submit SubmitReservationUC, store *cache.Store) *ReservationHandler {
	return &ReservationHandler{
		submit: submit,
		cache:  store,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type SubmitReservationRequest struct {
	TherapistID uint   `json:"therapist_id" binding:"required"`
	StartAt     string `json:"start_at" binding:"required"` // ISO 8601
	CourseID    string `json:"course_id"`
	GuestName   string `json:"guest_name" binding:"required"`
	GuestPhone  string `json:"guest_phone" binding:"required"`
	GuestEmail  string `json:"guest_email"`
	Note        string `json:"note"`
}

////////////////////////////////////////////////////////
// SUBMIT
////////////////////////////////////////////////////////

func (h *ReservationHandler) Submit(c *gin.Context) {
	slug := c.Param("slug")

	var req SubmitReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "入力内容に誤りがあります。")
		return
	}

	result, err := h.submit.Execute(c.Request.Context(), portal.SubmitReservationInput{
		Slug:        slug,
		TherapistID: req.TherapistID,
		StartAt:     req.StartAt,
		CourseID:    req.CourseID,
		GuestName:   req.GuestName,
		GuestPhone:  req.GuestPhone,
		GuestEmail:  req.GuestEmail,
		Note:        req.Note,
		GuestToken:  c.GetHeader(GuestTokenHeader),
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "shop_not_found"):
			httperr.NotFound(c, "shop_not_found", "店舗が見つかりません。")
		case httperr.IsBusiness(err, "therapist_not_found"):
			httperr.NotFound(c, "therapist_not_found", "セラピストが見つかりません。")
		case httperr.IsBusiness(err, "invalid_start_at"):
			httperr.BadRequest(c, "invalid_start_at", "開始時刻の形式が不正です。")
		case httperr.IsBusiness(err, "start_at_in_past"):
			httperr.BadRequest(c, "start_at_in_past", "過去の時刻は指定できません。")
		case httperr.IsBusiness(err, "invalid_email_domain"):
			httperr.BadRequest(c, "invalid_email_domain", "メールアドレスのドメインが確認できません。")
		case httperr.IsBusiness(err, "slot_conflict"):
			httperr.Conflict(c, "slot_conflict", "この時間帯は埋まってしまいました。別の時間をお選びください。")
		default:
			httperr.BadGateway(c, "reservation_failed", "予約を受け付けられませんでした。")
		}
		return
	}

	httpresp.Created(c, result)
}

////////////////////////////////////////////////////////
// LAST SUBMITTED (display continuity only)
////////////////////////////////////////////////////////

func (h *ReservationHandler) Last(c *gin.Context) {
	token := c.GetHeader(GuestTokenHeader)
	if token == "" {
		token = c.Query("token")
	}
	if token == "" {
		httperr.BadRequest(c, "missing_guest_token", "ゲストトークンが必要です。")
		return
	}

	last, err := h.cache.GetLastReservation(c.Request.Context(), token)
	if err != nil {
		// Expired or unknown token; nothing to restore.
		httperr.NotFound(c, "no_recent_reservation", "直近の予約情報はありません。")
		return
	}

	httpresp.OK(c, last)
}
