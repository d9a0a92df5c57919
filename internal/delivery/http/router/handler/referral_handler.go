package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"referral/internal/delivery/http/middleware"
	"referral/internal/delivery/http/response"
	"referral/internal/domain/entity"
	domainerrors "referral/internal/domain/errors"
	"referral/internal/domain/service"
	"referral/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// referralCodeResponse is the public shape of a referral code.
type referralCodeResponse struct {
	Code           string    `json:"code"`
	ExpirationTime time.Time `json:"expiration_time"`
	OwnerUUID      uuid.UUID `json:"owner_uuid"`
	CreatedAt      time.Time `json:"created_at"`
}

func toReferralCodeResponse(code *entity.ReferralCode) referralCodeResponse {
	return referralCodeResponse{
		Code:           code.Code,
		ExpirationTime: code.ExpirationTime,
		OwnerUUID:      code.OwnerUUID,
		CreatedAt:      code.CreatedAt,
	}
}

// getCodeRequest is the query for GET /referral_codes/.
type getCodeRequest struct {
	Email string `query:"email" validate:"required,email"`
}

// ReferralHandler holds dependencies for referral-code handlers. Mutations
// are validated synchronously and then dispatched to the background runner,
// so the response only acknowledges acceptance.
type ReferralHandler struct {
	uc     usecase.ReferralUsecase
	runner service.BackgroundRunner
	logger *slog.Logger
}

// NewReferralHandler is the constructor for ReferralHandler, injected by Fx.
func NewReferralHandler(uc usecase.ReferralUsecase, runner service.BackgroundRunner, logger *slog.Logger) *ReferralHandler {
	return &ReferralHandler{uc: uc, runner: runner, logger: logger}
}

// Create dispatches generation of a fresh referral code for the caller,
// replacing any previous one.
func (h *ReferralHandler) Create(c echo.Context) error {
	user, err := middleware.AuthenticatedUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	ownerUUID := user.UUID
	if err := h.runner.Enqueue("referral_code.generate", func(ctx context.Context) error {
		_, genErr := h.uc.Generate(ctx, ownerUUID)

		return genErr
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Referral code generation dispatched")
}

// Get returns the active referral code of the user with the given email.
func (h *ReferralHandler) Get(c echo.Context) error {
	var req getCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email query")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	code, err := h.uc.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReferralCodeResponse(code), "")
}

// Delete dispatches revocation of the caller's referral code. Only the owner
// may revoke a code.
func (h *ReferralHandler) Delete(c echo.Context) error {
	user, err := middleware.AuthenticatedUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	codeValue := c.Param("code")
	code, err := h.uc.FindCode(c.Request().Context(), codeValue)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := service.VerifyOwnership(code, user.UUID); err != nil {
		return errors.WithStack(err)
	}

	if err := h.runner.Enqueue("referral_code.revoke", func(ctx context.Context) error {
		return h.uc.Revoke(ctx, codeValue)
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Referral code deletion dispatched")
}

// BecomeReferral dispatches redemption of a referral code for the caller. The
// business rules are checked here for a fast rejection and re-checked inside
// the deferred execution.
func (h *ReferralHandler) BecomeReferral(c echo.Context) error {
	user, err := middleware.AuthenticatedUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	codeValue := c.QueryParam("ref_code")
	if codeValue == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "ref_code query parameter is required")
	}

	code, err := h.uc.FindCode(c.Request().Context(), codeValue)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ValidateRedemption(code, user.UUID); err != nil {
		return errors.WithStack(err)
	}

	userUUID := user.UUID
	if err := h.runner.Enqueue("referral_code.redeem", func(ctx context.Context) error {
		return h.uc.Redeem(ctx, codeValue, userUUID)
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Referral redemption dispatched")
}

// AllReferrals lists the users referred by the given user.
func (h *ReferralHandler) AllReferrals(c echo.Context) error {
	userUUID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "invalid user uuid")
	}

	referrals, err := h.uc.ReferralsOf(c.Request().Context(), userUUID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]userResponse, 0, len(referrals))
	for _, referral := range referrals {
		out = append(out, toUserResponse(referral))
	}

	return response.Success(c, http.StatusOK, out, "")
}
