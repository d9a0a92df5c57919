package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"referral/internal/domain/entity"
	domainerrors "referral/internal/domain/errors"
	"referral/internal/domain/service"
	mockSvc "referral/internal/mocks/service"
	mockUC "referral/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// inlineRunner executes enqueued tasks immediately so handler tests observe
// the deferred mutation synchronously.
func inlineRunner(t *testing.T) *mockSvc.MockBackgroundRunner {
	runner := mockSvc.NewMockBackgroundRunner(t)
	runner.EXPECT().
		Enqueue(mock.AnythingOfType("string"), mock.AnythingOfType("service.Task")).
		RunAndReturn(func(_ string, task service.Task) error {
			return task(context.Background())
		}).
		Maybe()

	return runner
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, user *entity.User) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user", user)

	return c
}

func testUser() *entity.User {
	return &entity.User{UUID: uuid.New(), Email: "owner@example.com"}
}

func testCode(owner uuid.UUID) *entity.ReferralCode {
	return &entity.ReferralCode{
		UUID:           uuid.New(),
		Code:           "c0ffee00c0ffee00c0ffee00c0ffee00",
		ExpirationTime: time.Now().Add(24 * time.Hour),
		OwnerUUID:      owner,
		CreatedAt:      time.Now(),
	}
}

func TestReferralHandler_Create_DispatchesGeneration(t *testing.T) {
	uc := mockUC.NewMockReferralUsecase(t)
	runner := inlineRunner(t)
	h := NewReferralHandler(uc, runner, discardLogger())

	user := testUser()
	uc.EXPECT().Generate(mock.Anything, user.UUID).Return(testCode(user.UUID), nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/referral_codes/", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReferralHandler_Create_QueueFull(t *testing.T) {
	uc := mockUC.NewMockReferralUsecase(t)
	runner := mockSvc.NewMockBackgroundRunner(t)
	runner.EXPECT().
		Enqueue(mock.AnythingOfType("string"), mock.AnythingOfType("service.Task")).
		Return(domainerrors.ErrTaskQueueFull.WrapMessage("queue full"))
	h := NewReferralHandler(uc, runner, discardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/referral_codes/", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, testUser())

	err := h.Create(c)
	assert.True(t, errors.Is(err, domainerrors.ErrTaskQueueFull))
}

func TestReferralHandler_Get_ByEmail(t *testing.T) {
	uc := mockUC.NewMockReferralUsecase(t)
	h := NewReferralHandler(uc, inlineRunner(t), discardLogger())

	user := testUser()
	code := testCode(user.UUID)
	uc.EXPECT().GetByEmail(mock.Anything, user.Email).Return(code, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/referral_codes/?email=owner%40example.com", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), code.Code)
}

func TestReferralHandler_Get_InvalidEmail(t *testing.T) {
	uc := mockUC.NewMockReferralUsecase(t)
	h := NewReferralHandler(uc, inlineRunner(t), discardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/referral_codes/?email=not-an-email", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, testUser())

	err := h.Get(c)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestReferralHandler_Delete_OwnerOnly(t *testing.T) {
	uc := mockUC.NewMockReferralUsecase(t)
	h := NewReferralHandler(uc, inlineRunner(t), discardLogger())

	user := testUser()
	code := testCode(uuid.New()) // someone else's code
	uc.EXPECT().FindCode(mock.Anything, code.Code).Return(code, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/referral_codes/"+code.Code, nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)
	c.SetParamNames("code")
	c.SetParamValues(code.Code)

	err := h.Delete(c)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestReferralHandler_Delete_DispatchesRevocation(t *testing.T) {
	uc := mockUC.NewMockReferralUsecase(t)
	h := NewReferralHandler(uc, inlineRunner(t), discardLogger())

	user := testUser()
	code := testCode(user.UUID)
	uc.EXPECT().FindCode(mock.Anything, code.Code).Return(code, nil)
	uc.EXPECT().Revoke(mock.Anything, code.Code).Return(nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/referral_codes/"+code.Code, nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)
	c.SetParamNames("code")
	c.SetParamValues(code.Code)

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReferralHandler_Delete_UnknownCode(t *testing.T) {
	uc := mockUC.NewMockReferralUsecase(t)
	h := NewReferralHandler(uc, inlineRunner(t), discardLogger())

	uc.EXPECT().
		FindCode(mock.Anything, "missing").
		Return(nil, domainerrors.ErrCodeNotFound.WrapMessage("missing"))

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/referral_codes/missing", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, testUser())
	c.SetParamNames("code")
	c.SetParamValues("missing")

	err := h.Delete(c)
	assert.True(t, errors.Is(err, domainerrors.ErrCodeNotFound))
}

func TestReferralHandler_BecomeReferral_DispatchesRedemption(t *testing.T) {
	uc := mockUC.NewMockReferralUsecase(t)
	h := NewReferralHandler(uc, inlineRunner(t), discardLogger())

	user := testUser()
	code := testCode(uuid.New())
	uc.EXPECT().FindCode(mock.Anything, code.Code).Return(code, nil)
	uc.EXPECT().ValidateRedemption(code, user.UUID).Return(nil)
	uc.EXPECT().Redeem(mock.Anything, code.Code, user.UUID).Return(nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/referral_codes/become_referral?ref_code="+code.Code, nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)

	require.NoError(t, h.BecomeReferral(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReferralHandler_BecomeReferral_MissingParam(t *testing.T) {
	uc := mockUC.NewMockReferralUsecase(t)
	h := NewReferralHandler(uc, inlineRunner(t), discardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/referral_codes/become_referral", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, testUser())

	err := h.BecomeReferral(c)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestReferralHandler_BecomeReferral_SelfReferral(t *testing.T) {
	uc := mockUC.NewMockReferralUsecase(t)
	h := NewReferralHandler(uc, inlineRunner(t), discardLogger())

	user := testUser()
	code := testCode(user.UUID)
	uc.EXPECT().FindCode(mock.Anything, code.Code).Return(code, nil)
	uc.EXPECT().
		ValidateRedemption(code, user.UUID).
		Return(domainerrors.ErrSelfReferral.WrapMessage("own referral code"))

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/referral_codes/become_referral?ref_code="+code.Code, nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)

	err := h.BecomeReferral(c)
	assert.True(t, errors.Is(err, domainerrors.ErrSelfReferral))
}

func TestReferralHandler_AllReferrals(t *testing.T) {
	uc := mockUC.NewMockReferralUsecase(t)
	h := NewReferralHandler(uc, inlineRunner(t), discardLogger())

	user := testUser()
	referrals := []*entity.User{
		{UUID: uuid.New(), Email: "first@example.com"},
		{UUID: uuid.New(), Email: "second@example.com"},
	}
	uc.EXPECT().ReferralsOf(mock.Anything, user.UUID).Return(referrals, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/referral_codes/all_referrals/"+user.UUID.String(), nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)
	c.SetParamNames("uuid")
	c.SetParamValues(user.UUID.String())

	require.NoError(t, h.AllReferrals(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "first@example.com")
	assert.Contains(t, rec.Body.String(), "second@example.com")
}

func TestReferralHandler_AllReferrals_BadUUID(t *testing.T) {
	uc := mockUC.NewMockReferralUsecase(t)
	h := NewReferralHandler(uc, inlineRunner(t), discardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/referral_codes/all_referrals/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, testUser())
	c.SetParamNames("uuid")
	c.SetParamValues("not-a-uuid")

	err := h.AllReferrals(c)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
