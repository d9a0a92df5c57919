package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"referral/internal/delivery/http/validator"
	"referral/internal/domain/entity"
	domainerrors "referral/internal/domain/errors"
	mockUC "referral/internal/mocks/usecase"
	"referral/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUserHandler_Signup_Success(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, discardLogger())

	user := &entity.User{UUID: uuid.New(), Email: "alice@example.com"}
	uc.EXPECT().
		Signup(mock.Anything, &usecase.SignupInput{Email: "alice@example.com", Password: "superSecret1"}).
		Return(&usecase.SignupOutput{User: user, AccessToken: "signed.token"}, nil)

	e := newTestEcho()
	body := `{"email":"alice@example.com","password":"superSecret1"}`
	req := httptest.NewRequest(http.MethodPost, "/users/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed.token")
	assert.Contains(t, rec.Body.String(), "alice@example.com")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_Signup_ValidationFailures(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, discardLogger())
	e := newTestEcho()

	testCases := []struct {
		name string
		body string
	}{
		{"malformed email", `{"email":"not-an-email","password":"superSecret1"}`},
		{"short password", `{"email":"alice@example.com","password":"short"}`},
		{"missing fields", `{}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/users/signup", strings.NewReader(tc.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := h.Signup(c)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestUserHandler_Signup_DuplicateEmail(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, discardLogger())

	uc.EXPECT().
		Signup(mock.Anything, mock.AnythingOfType("*usecase.SignupInput")).
		Return(nil, domainerrors.ErrEmailAlreadyExists.WrapMessage("email already exists"))

	e := newTestEcho()
	body := `{"email":"taken@example.com","password":"superSecret1"}`
	req := httptest.NewRequest(http.MethodPost, "/users/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Signup(c)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
}

func TestUserHandler_Login_Success(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, discardLogger())

	uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "alice@example.com", Password: "superSecret1"}).
		Return(&usecase.LoginOutput{AccessToken: "signed.token"}, nil)

	e := newTestEcho()
	form := url.Values{}
	form.Set("username", "alice@example.com")
	form.Set("password", "superSecret1")
	req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed.token")
	assert.Contains(t, rec.Body.String(), "bearer")
}

func TestUserHandler_Login_BadCredentials(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, discardLogger())

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed"))

	e := newTestEcho()
	form := url.Values{}
	form.Set("username", "alice@example.com")
	form.Set("password", "wrong")
	req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
