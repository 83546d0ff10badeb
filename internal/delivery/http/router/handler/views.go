package handler

import (
	"time"

	"aegis/internal/domain/entity"
	"aegis/internal/domain/repository"
)

// accountView is the public projection of an account. Credential state such
// as the password hash and the lockout counters never leaves the service.
type accountView struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	Active        bool      `json:"active"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toAccountView(account *entity.Account) accountView {
	return accountView{
		ID:            account.ID.String(),
		Email:         account.Email,
		Name:          account.Name,
		Role:          account.Role.String(),
		Active:        account.Active,
		EmailVerified: account.EmailVerified,
		CreatedAt:     account.CreatedAt,
		UpdatedAt:     account.UpdatedAt,
	}
}

// identityView is the minimal projection returned after login.
type identityView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// accountPageView is one page of accounts plus paging metadata.
type accountPageView struct {
	Items      []accountView `json:"items"`
	Page       int           `json:"page"`
	Size       int           `json:"size"`
	TotalItems int64         `json:"totalItems"`
	TotalPages int64         `json:"totalPages"`
}

func totalPages(total int64, size int) int64 {
	if size <= 0 {
		return 0
	}

	return (total + int64(size) - 1) / int64(size)
}

func toAccountPageView(page *repository.AccountPage) accountPageView {
	items := make([]accountView, 0, len(page.Accounts))
	for _, account := range page.Accounts {
		items = append(items, toAccountView(account))
	}

	return accountPageView{
		Items:      items,
		Page:       page.Page,
		Size:       page.Size,
		TotalItems: page.Total,
		TotalPages: totalPages(page.Total, page.Size),
	}
}

type auditEntryView struct {
	ID         string    `json:"id"`
	ActorEmail string    `json:"actorEmail"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	CreatedAt  time.Time `json:"createdAt"`
}

type auditPageView struct {
	Items      []auditEntryView `json:"items"`
	Page       int              `json:"page"`
	Size       int              `json:"size"`
	TotalItems int64            `json:"totalItems"`
	TotalPages int64            `json:"totalPages"`
}

func toAuditPageView(page *repository.AuditLogPage) auditPageView {
	items := make([]auditEntryView, 0, len(page.Entries))
	for _, entry := range page.Entries {
		items = append(items, auditEntryView{
			ID:         entry.ID.String(),
			ActorEmail: entry.ActorEmail,
			Action:     entry.Action.String(),
			EntityType: entry.EntityType,
			EntityID:   entry.EntityID.String(),
			CreatedAt:  entry.CreatedAt,
		})
	}

	return auditPageView{
		Items:      items,
		Page:       page.Page,
		Size:       page.Size,
		TotalItems: page.Total,
		TotalPages: totalPages(page.Total, page.Size),
	}
}

type activityEntryView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Action    string    `json:"action"`
	IPAddress string    `json:"ipAddress"`
	CreatedAt time.Time `json:"createdAt"`
}

func toActivityViews(entries []*entity.ActivityEntry) []activityEntryView {
	views := make([]activityEntryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, activityEntryView{
			ID:        entry.ID.String(),
			Email:     entry.Email,
			Action:    entry.Action.String(),
			IPAddress: entry.IPAddress,
			CreatedAt: entry.CreatedAt,
		})
	}

	return views
}
