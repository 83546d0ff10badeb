package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"aegis/internal/delivery/http/response"
	"aegis/internal/domain/entity"
	"aegis/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for privileged account management handlers.
type AdminHandler struct {
	uc      usecase.AdminUsecase
	auditUC usecase.AuditUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, auditUC usecase.AuditUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:      uc,
		auditUC: auditUC,
		logger:  logger,
	}
}

type createAdminRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateAdmin creates a new ADMIN account. SUPER_ADMIN only.
func (h *AdminHandler) CreateAdmin(c echo.Context) error {
	actorID, err := requireActorID(c)
	if err != nil {
		return err
	}

	var req createAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid create admin input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	account, err := h.uc.CreateAdmin(c.Request().Context(), usecase.CreateAdminInput{
		ActorID:  actorID,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccountView(account), "Admin created")
}

type updateStatusRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// UpdateAdminStatus blocks or unblocks an admin account. SUPER_ADMIN only.
func (h *AdminHandler) UpdateAdminStatus(c echo.Context) error {
	actorID, err := requireActorID(c)
	if err != nil {
		return err
	}

	targetID, err := parseTargetID(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	account, err := h.uc.UpdateAdminStatus(c.Request().Context(), usecase.UpdateAdminStatusInput{
		ActorID:  actorID,
		TargetID: targetID,
		Active:   *req.Active,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountView(account), "Admin status updated")
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=ADMIN SUPER_ADMIN"`
}

// UpdateAdminRole moves an admin between ADMIN and SUPER_ADMIN. SUPER_ADMIN only.
func (h *AdminHandler) UpdateAdminRole(c echo.Context) error {
	actorID, err := requireActorID(c)
	if err != nil {
		return err
	}

	targetID, err := parseTargetID(c)
	if err != nil {
		return err
	}

	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	account, err := h.uc.UpdateAdminRole(c.Request().Context(), usecase.UpdateAdminRoleInput{
		ActorID:  actorID,
		TargetID: targetID,
		NewRole:  entity.Role(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountView(account), "Admin role updated")
}

type forceResetPasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required"`
}

// ForceResetAdminPassword overrides another admin's password. SUPER_ADMIN only.
func (h *AdminHandler) ForceResetAdminPassword(c echo.Context) error {
	actorID, err := requireActorID(c)
	if err != nil {
		return err
	}

	targetID, err := parseTargetID(c)
	if err != nil {
		return err
	}

	var req forceResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	err = h.uc.ForceResetAdminPassword(c.Request().Context(), usecase.ForceResetAdminPasswordInput{
		ActorID:     actorID,
		TargetID:    targetID,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Admin password reset")
}

// ListAdmins returns a page of administrative accounts. SUPER_ADMIN only.
func (h *AdminHandler) ListAdmins(c echo.Context) error {
	actorID, err := requireActorID(c)
	if err != nil {
		return err
	}

	page, size := parsePaging(c)

	input := usecase.ListAdminsInput{
		ActorID:   actorID,
		Active:    parseOptionalBool(c.QueryParam("active")),
		Page:      page,
		Size:      size,
		SortField: c.QueryParam("sort"),
		SortDesc:  c.QueryParam("order") == "desc",
	}

	result, err := h.uc.ListAdmins(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountPageView(result), "Admins retrieved")
}

// GetAdmin returns a single administrative account. SUPER_ADMIN only.
func (h *AdminHandler) GetAdmin(c echo.Context) error {
	actorID, err := requireActorID(c)
	if err != nil {
		return err
	}

	targetID, err := parseTargetID(c)
	if err != nil {
		return err
	}

	account, err := h.uc.GetAdminByID(c.Request().Context(), actorID, targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountView(account), "Admin retrieved")
}

// UpdateUserStatus blocks or unblocks an end-user account. ADMIN or SUPER_ADMIN.
func (h *AdminHandler) UpdateUserStatus(c echo.Context) error {
	actorID, err := requireActorID(c)
	if err != nil {
		return err
	}

	targetID, err := parseTargetID(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	account, err := h.uc.UpdateUserStatus(c.Request().Context(), usecase.UpdateUserStatusInput{
		ActorID:  actorID,
		TargetID: targetID,
		Active:   *req.Active,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountView(account), "User status updated")
}

// SearchUsers returns a page of end-user accounts. ADMIN or SUPER_ADMIN.
func (h *AdminHandler) SearchUsers(c echo.Context) error {
	actorID, err := requireActorID(c)
	if err != nil {
		return err
	}

	page, size := parsePaging(c)

	result, err := h.uc.SearchUsers(c.Request().Context(), usecase.SearchUsersInput{
		ActorID: actorID,
		Email:   c.QueryParam("email"),
		Name:    c.QueryParam("name"),
		Active:  parseOptionalBool(c.QueryParam("active")),
		Page:    page,
		Size:    size,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountPageView(result), "Users retrieved")
}

// GetDashboardStats returns the account aggregates. ADMIN or SUPER_ADMIN.
func (h *AdminHandler) GetDashboardStats(c echo.Context) error {
	actorID, err := requireActorID(c)
	if err != nil {
		return err
	}

	stats, err := h.uc.GetDashboardStats(c.Request().Context(), actorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Dashboard stats retrieved")
}

// GetAuditLogs returns a page of the audit trail, newest first. SUPER_ADMIN only.
func (h *AdminHandler) GetAuditLogs(c echo.Context) error {
	actorID, err := requireActorID(c)
	if err != nil {
		return err
	}

	page, size := parsePaging(c)

	result, err := h.auditUC.GetAuditLogs(c.Request().Context(), usecase.GetAuditLogsInput{
		ActorID:    actorID,
		Action:     c.QueryParam("action"),
		AdminEmail: c.QueryParam("adminEmail"),
		Page:       page,
		Size:       size,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuditPageView(result), "Audit logs retrieved")
}

// parseTargetID reads the ":id" path parameter as a UUID.
func parseTargetID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid account ID")
	}

	return id, nil
}

// parsePaging reads the "page" and "size" query parameters. Out-of-range
// values fall back to usecase defaults.
func parsePaging(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))

	return page, size
}

// parseOptionalBool maps "" to nil and anything else to a parsed bool.
func parseOptionalBool(raw string) *bool {
	if raw == "" {
		return nil
	}

	value := raw == "true"

	return &value
}
