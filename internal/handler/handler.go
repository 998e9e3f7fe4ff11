package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/internal/errs"
	"github.com/Astemirdum/lending-service/internal/model"
	md "github.com/Astemirdum/lending-service/pkg/middleware"
	"github.com/Astemirdum/lending-service/pkg/validate"
)

type Handler struct {
	lendingSvc LendingService
	log        *zap.Logger
}

func New(lendingSvc LendingService, log *zap.Logger) *Handler {
	return &Handler{
		lendingSvc: lendingSvc,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.POST("/manage/sweep", h.RunSweep)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/loans", h.OpenLoan)
	api.POST("/loans/:loanUid/extend", h.ExtendLoan)
	api.GET("/loans/overdue", h.GetOverdueLoans)

	api.POST("/items", h.CreateItem)
	api.GET("/items", h.GetItems)
	api.GET("/items/:itemId", h.GetItem)
	api.PATCH("/items/:itemId", h.UpdateItem)
	api.DELETE("/items/:itemId", h.DeleteItem)
	api.POST("/items/:itemId/return", h.CloseLoan)
	api.GET("/items/:itemId/loan", h.GetCurrentLoan)
	api.GET("/items/:itemId/loans", h.GetItemLoanHistory)

	api.POST("/borrowers", h.CreateBorrower)
	api.GET("/borrowers", h.GetBorrowers)
	api.GET("/borrowers/:borrowerId", h.GetBorrower)
	api.PATCH("/borrowers/:borrowerId", h.UpdateBorrower)
	api.DELETE("/borrowers/:borrowerId", h.DeleteBorrower)
	api.GET("/borrowers/:borrowerId/loans", h.GetBorrowerLoans)
	api.GET("/borrowers/:borrowerId/stats", h.GetBorrowerStats)

	api.GET("/stats/daily", h.GetDailyStats)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps the service error taxonomy onto status codes:
// not-found 404, precondition violations 409, invalid transitions 400.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrItemNotFound),
		errors.Is(err, errs.ErrBorrowerNotFound),
		errors.Is(err, errs.ErrLoanNotFound),
		errors.Is(err, errs.ErrNoActiveLoan):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrItemUnavailable),
		errors.Is(err, errs.ErrBorrowerNotEligible),
		errors.Is(err, errs.ErrBorrowerOverdue),
		errors.Is(err, errs.ErrLoanMismatch),
		errors.Is(err, errs.ErrItemHasOpenLoan),
		errors.Is(err, errs.ErrBorrowerHasOpenLoans),
		errors.Is(err, errs.ErrEmailTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrInvalidOperation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func paramID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("%s is invalid", name)
	}
	return id, nil
}

func (h *Handler) OpenLoan(c echo.Context) error {
	var req model.OpenLoanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	loan, err := h.lendingSvc.OpenLoan(c.Request().Context(), req.ItemID, req.BorrowerID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, loan)
}

func (h *Handler) CloseLoan(c echo.Context) error {
	itemID, err := paramID(c, "itemId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.CloseLoanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	loan, err := h.lendingSvc.CloseLoan(c.Request().Context(), itemID, req.BorrowerID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) ExtendLoan(c echo.Context) error {
	loanUid := c.Param("loanUid")
	if loanUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "loanUid is empty")
	}
	var req model.ExtendLoanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	loan, err := h.lendingSvc.ExtendLoan(c.Request().Context(), loanUid, req.Days)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) RunSweep(c echo.Context) error {
	count, err := h.lendingSvc.RunOverdueSweep(c.Request().Context(), time.Now())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"transitioned": count})
}

func (h *Handler) GetCurrentLoan(c echo.Context) error {
	itemID, err := paramID(c, "itemId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	loan, err := h.lendingSvc.CurrentLoanForItem(c.Request().Context(), itemID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) GetItemLoanHistory(c echo.Context) error {
	itemID, err := paramID(c, "itemId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	loans, err := h.lendingSvc.LoanHistoryForItem(c.Request().Context(), itemID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) GetBorrowerLoans(c echo.Context) error {
	borrowerID, err := paramID(c, "borrowerId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	if history, _ := strconv.ParseBool(c.QueryParam("history")); history {
		loans, err := h.lendingSvc.LoanHistoryForBorrower(ctx, borrowerID)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, loans)
	}
	loans, err := h.lendingSvc.OpenLoansForBorrower(ctx, borrowerID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) GetOverdueLoans(c echo.Context) error {
	loans, err := h.lendingSvc.OverdueLoans(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) GetBorrowerStats(c echo.Context) error {
	borrowerID, err := paramID(c, "borrowerId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	stats, err := h.lendingSvc.BorrowerStats(c.Request().Context(), borrowerID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) GetDailyStats(c echo.Context) error {
	stats, err := h.lendingSvc.DailyStats(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
