package postgres

import (
	"context"

	"aegis/internal/domain/entity"
	domainerrors "aegis/internal/domain/errors"
	"aegis/internal/domain/repository"
	"aegis/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sortColumns whitelists the account listing sort fields. Anything else
// falls back to creation time.
var sortColumns = map[string]string{
	"email":     "email",
	"name":      "name",
	"role":      "role",
	"createdAt": "created_at",
}

// accountRepository implements the domain.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves a single account by its email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel

	err := repo.db.WithContext(ctx).
		Where("lower(email) = lower(?)", email).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAccountDomain(&accountM), nil
}

// ExistsByEmail reports whether any account owns the email address.
func (repo *accountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("lower(email) = lower(?)", email).
		Count(&count).Error
	if err != nil {
		return false, errors.WithStack(err)
	}

	return count > 0, nil
}

// Create persists a new account entity to the storage.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Update the entity with generated values
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update modifies an existing account entity in the storage.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	// Save writes every column, including zero-valued flags and cleared
	// lockout fields.
	if err := repo.db.WithContext(ctx).Save(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Delete removes an account permanently.
func (repo *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AccountModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	// If no rows were affected, the account was not found.
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// Search returns one page of accounts matching the filter.
func (repo *accountRepository) Search(ctx context.Context, filter repository.AccountFilter, page repository.Pagination, sort repository.SortOrder) (*repository.AccountPage, error) {
	query := repo.db.WithContext(ctx).Model(&model.AccountModel{})
	query = applyAccountFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	column, ok := sortColumns[sort.Field]
	if !ok {
		column = "created_at"
	}
	order := column + " asc"
	if sort.Desc {
		order = column + " desc"
	}

	var accountModels []*model.AccountModel
	err := query.
		Order(order).
		Offset(page.Page * page.Size).
		Limit(page.Size).
		Find(&accountModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return &repository.AccountPage{
		Accounts: accounts,
		Total:    total,
		Page:     page.Page,
		Size:     page.Size,
	}, nil
}

// Counts returns the dashboard aggregates over all accounts.
func (repo *accountRepository) Counts(ctx context.Context) (*repository.AccountCounts, error) {
	counts := &repository.AccountCounts{}

	base := func() *gorm.DB {
		return repo.db.WithContext(ctx).Model(&model.AccountModel{})
	}

	if err := base().Count(&counts.Total).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	if err := base().Where("active").Count(&counts.Active).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	if err := base().Where("role IN ?", []string{
		entity.RoleAdmin.String(),
		entity.RoleSuperAdmin.String(),
	}).Count(&counts.Admins).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	if err := base().Where("email_verified").Count(&counts.Verified).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	counts.Inactive = counts.Total - counts.Active
	counts.Unverified = counts.Total - counts.Verified

	return counts, nil
}

// AcquireUpdateLock takes a FOR UPDATE row lock on the account.
func (repo *accountRepository) AcquireUpdateLock(ctx context.Context, id uuid.UUID) error {
	var accountM model.AccountModel

	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrAccountNotFound
		}

		return errors.WithStack(err)
	}

	return nil
}

func applyAccountFilter(query *gorm.DB, filter repository.AccountFilter) *gorm.DB {
	if filter.Email != "" {
		query = query.Where("email ILIKE ?", "%"+filter.Email+"%")
	}
	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if len(filter.Roles) > 0 {
		roles := make([]string, 0, len(filter.Roles))
		for _, role := range filter.Roles {
			roles = append(roles, role.String())
		}
		query = query.Where("role IN ?", roles)
	}

	return query
}

// --- Mapper Functions ---

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:                  data.ID,
		Email:               data.Email,
		Name:                data.Name,
		PasswordHash:        data.PasswordHash,
		Role:                entity.Role(data.Role),
		Active:              data.Active,
		EmailVerified:       data.EmailVerified,
		FailedLoginAttempts: data.FailedLoginAttempts,
		LockedUntil:         data.LockedUntil,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:                  data.ID,
		Email:               data.Email,
		Name:                data.Name,
		PasswordHash:        data.PasswordHash,
		Role:                data.Role.String(),
		Active:              data.Active,
		EmailVerified:       data.EmailVerified,
		FailedLoginAttempts: data.FailedLoginAttempts,
		LockedUntil:         data.LockedUntil,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
