package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"xtagy_banho/internal/domain/entities"
	"xtagy_banho/internal/usecase/interfaces"

	"github.com/aws/smithy-go"
)

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidUserID   = errors.New("invalid user id")
)

const (
	trialPeriod = 30 * 24 * time.Hour

	profileLoadRetries = 3
	profileLoadBackoff = 800 * time.Millisecond
)

// ICompanyUseCase exposes company registration and profile loading.
//
// Registration creates the Company plus its 1:1 admin User in one flow.
// A banho company is born with a payment_pending subscription; a cliente
// company never carries one.

type ICompanyUseCase interface {
	Register(ctx context.Context, userID string, in RegisterCompanyInput) (entities.User, error)
	GetProfile(ctx context.Context, userID string) (Profile, error)
	GetByID(ctx context.Context, id string) (entities.Company, error)
}

type RegisterCompanyInput struct {
	Name        string
	TradingName string
	Role        entities.CompanyRole
	Email       string
	TaxID       string
	Phone       string
	Address     string
}

// Profile is the authenticated actor plus its company, loaded together.
type Profile struct {
	User    entities.User
	Company entities.Company
}

type CompanyUseCase struct {
	repo     interfaces.ICompanyRepository
	userRepo interfaces.IUserRepository
	eventLog interfaces.IEventLogRepository

	// sleep is swapped out in tests to avoid real backoff delays.
	sleep func(ctx context.Context, d time.Duration) error
}

var _ ICompanyUseCase = (*CompanyUseCase)(nil)

func NewCompanyUseCase(repo interfaces.ICompanyRepository, userRepo interfaces.IUserRepository, eventLog interfaces.IEventLogRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, userRepo: userRepo, eventLog: eventLog, sleep: sleepCtx}
}

func (u *CompanyUseCase) Register(ctx context.Context, userID string, in RegisterCompanyInput) (entities.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.User{}, ErrInvalidUserID
	}

	role := in.Role
	if role == "" {
		role = entities.CompanyRoleCliente
	}
	switch role {
	case entities.CompanyRoleBanho, entities.CompanyRoleCliente:
	default:
		return entities.User{}, ErrInvalidCompanyRole
	}

	company := entities.Company{
		ID:          newID(),
		Name:        in.Name,
		TradingName: in.TradingName,
		Role:        role,
		Email:       in.Email,
		TaxID:       in.TaxID,
		Phone:       in.Phone,
		Address:     in.Address,
	}

	if role == entities.CompanyRoleBanho {
		now := time.Now().UTC()
		company.Subscription = &entities.SubscriptionInfo{
			Status:         entities.SubscriptionStatusPaymentPending,
			Plan:           entities.SubscriptionPlanBanhoMensal,
			TrialStartedAt: now,
			TrialEndsAt:    now.Add(trialPeriod),
		}
	}

	name := in.TradingName
	if strings.TrimSpace(name) == "" {
		name = in.Name
	}
	user := entities.User{
		ID:          userID,
		Email:       in.Email,
		Name:        name,
		CompanyID:   company.ID,
		Role:        entities.UserRoleAdmin,
		CompanyRole: role,
	}

	if _, err := u.repo.Create(ctx, company); err != nil {
		return entities.User{}, err
	}
	if _, err := u.userRepo.Create(ctx, user); err != nil {
		return entities.User{}, err
	}

	u.logEvent(ctx, entities.EventCompanyCreated, company.ID, role, company.ID, map[string]any{
		"name": company.Name,
	})
	return user, nil
}

// GetProfile loads the user and its company. A permission-denied storage
// error right after sign-in usually means access rules have not propagated
// yet, so the load retries a fixed number of times with a fixed delay before
// surfacing a terminal error.
func (u *CompanyUseCase) GetProfile(ctx context.Context, userID string) (Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Profile{}, ErrInvalidUserID
	}

	var lastErr error
	for attempt := 0; attempt <= profileLoadRetries; attempt++ {
		if attempt > 0 {
			log.Printf("[company][usecase] profile load permission denied, retrying user_id=%s attempt=%d", userID, attempt)
			if err := u.sleep(ctx, profileLoadBackoff); err != nil {
				return Profile{}, err
			}
		}

		profile, err := u.loadProfile(ctx, userID)
		if err == nil {
			return profile, nil
		}
		lastErr = err
		if !isPermissionDenied(err) {
			return Profile{}, err
		}
	}
	return Profile{}, lastErr
}

func (u *CompanyUseCase) loadProfile(ctx context.Context, userID string) (Profile, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	if user.ID == "" {
		return Profile{}, ErrUserNotFound
	}

	company, err := u.repo.GetByID(ctx, user.CompanyID)
	if err != nil {
		return Profile{}, err
	}
	if company.ID == "" {
		return Profile{}, ErrCompanyNotFound
	}
	return Profile{User: user, Company: company}, nil
}

func (u *CompanyUseCase) GetByID(ctx context.Context, id string) (entities.Company, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Company{}, ErrInvalidCompanyID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Company{}, err
	}
	if c.ID == "" {
		return entities.Company{}, ErrCompanyNotFound
	}
	return c, nil
}

func (u *CompanyUseCase) logEvent(ctx context.Context, typ entities.EventType, companyID string, role entities.CompanyRole, relatedID string, metadata map[string]any) {
	if u.eventLog == nil {
		return
	}
	ev := entities.AnalyticsEvent{
		ID:              newID(),
		Type:            typ,
		Timestamp:       time.Now().UTC(),
		CompanyID:       companyID,
		CompanyRole:     role,
		RelatedEntityID: relatedID,
		Metadata:        metadata,
	}
	if err := u.eventLog.Append(ctx, ev); err != nil {
		log.Printf("[company][usecase] event log append failed type=%s company_id=%s err=%v", typ, companyID, err)
	}
}

// isPermissionDenied reports whether the storage layer rejected the call for
// lack of access (DynamoDB AccessDeniedException).
func isPermissionDenied(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "AccessDeniedException"
	}
	return false
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
