package portal

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yusaku0324/kakeru-sub008/internal/audit"
	"github.com/yusaku0324/kakeru-sub008/internal/backend"
	"github.com/yusaku0324/kakeru-sub008/internal/cache"
	domain "github.com/yusaku0324/kakeru-sub008/internal/domain/directory"
	"github.com/yusaku0324/kakeru-sub008/internal/dto"
	"github.com/yusaku0324/kakeru-sub008/internal/httperr"
	"github.com/yusaku0324/kakeru-sub008/internal/timezone"
	"github.com/yusaku0324/kakeru-sub008/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type SubmitReservationInput struct {
	Slug        string
	TherapistID uint

	StartAt  string // ISO 8601
	CourseID string

	GuestName  string
	GuestPhone string
	GuestEmail string
	Note       string

	// GuestToken identifies a returning guest's browser. Empty for a first
	// reservation; a fresh token is minted and returned.
	GuestToken string
}

// ======================================================
// USE CASE
// ======================================================

type SubmitReservation struct {
	repo  domain.Repository
	slots SlotSource
	cache *cache.Store
	audit *audit.Dispatcher
	clock timezone.Clock
}

func NewSubmitReservation(
	repo domain.Repository,
	slots SlotSource,
	store *cache.Store,
	dispatcher *audit.Dispatcher,
	clock timezone.Clock,
) *SubmitReservation {
	return &SubmitReservation{
		repo:  repo,
		slots: slots,
		cache: store,
		audit: dispatcher,
		clock: clock,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SubmitReservation) Execute(
	ctx context.Context,
	in SubmitReservationInput,
) (*dto.SubmitReservationResultDTO, error) {

	// --------------------------------------------------
	// 1. Shop and therapist
	// --------------------------------------------------
	shop, err := uc.repo.GetShopBySlug(ctx, in.Slug)
	if err != nil {
		return nil, httperr.ErrBusiness("shop_not_found")
	}

	therapist, err := uc.repo.GetTherapist(ctx, shop.ID, in.TherapistID)
	if err != nil {
		return nil, httperr.ErrBusiness("therapist_not_found")
	}

	// --------------------------------------------------
	// 2. Requested start must be a parseable future instant.
	//    Whether the slot is actually free is the backend's call, at
	//    write time, not ours.
	// --------------------------------------------------
	start, err := time.Parse(time.RFC3339, in.StartAt)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_start_at")
	}
	if !start.After(uc.clock.Now()) {
		return nil, httperr.ErrBusiness("start_at_in_past")
	}

	// --------------------------------------------------
	// 3. Guest contact
	// --------------------------------------------------
	if in.GuestEmail != "" && !validators.IsEmailDomainValid(in.GuestEmail) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	guestToken := in.GuestToken
	if guestToken == "" {
		guestToken = uuid.NewString()
	}

	// --------------------------------------------------
	// 4. Forward to the reservation backend
	// --------------------------------------------------
	created, err := uc.slots.SubmitReservation(ctx, backend.SubmitReservationRequest{
		ProfileID:   shop.BackendProfileID,
		TherapistID: therapist.BackendTherapistID,
		StartAt:     in.StartAt,
		CourseID:    in.CourseID,
		GuestName:   in.GuestName,
		GuestPhone:  in.GuestPhone,
		GuestEmail:  in.GuestEmail,
		Note:        in.Note,
	})

	if err != nil {
		if backend.IsConflict(err) {
			uc.audit.Dispatch(audit.Event{
				ShopID: shop.ID,
				Action: audit.ActionReservationConflict,
				Entity: "reservation",
				Metadata: map[string]any{
					"therapist_id": therapist.ID,
					"start_at":     in.StartAt,
				},
			})
			return nil, httperr.ErrBusiness("slot_conflict")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 5. Audit + display-continuity cache
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ShopID:   shop.ID,
		Action:   audit.ActionReservationSubmitted,
		Entity:   "reservation",
		EntityID: &created.ID,
	})

	submittedAt := uc.clock.Now()
	uc.cache.SetLastReservation(ctx, guestToken, cache.LastReservation{
		ReservationID: created.ID,
		Status:        created.Status,
		SubmittedAt:   submittedAt,
	})

	return &dto.SubmitReservationResultDTO{
		GuestToken:    guestToken,
		ReservationID: created.ID,
		Status:        created.Status,
		SubmittedAt:   submittedAt,
	}, nil
}
