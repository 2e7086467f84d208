package account

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/cmd/config"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/constant"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/model"
	accountrepo "github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/account"
	agentrepo "github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/agent"
	redisrepo "github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/redis"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/sqlerr"
	txrepo "github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/tx"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/confirmation"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/errors"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/logger"
	validatorx "github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/validator"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Notifier hands a confirmation code to the delivery channel.
type Notifier interface {
	SendConfirmation(ctx context.Context, n model.ConfirmationNotification) error
}

type AccountApp interface {
	RegisterCustomer(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	RegisterAgent(ctx context.Context, req *model.RegisterAgentRequest) (*model.RegisterResponse, error)
	ResendConfirmation(ctx context.Context, req *model.ResendConfirmationRequest) error
	ConfirmAccount(ctx context.Context, req *model.ConfirmAccountRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*model.Principal, error)
	Profile(ctx context.Context, accountID uint64) (*model.ProfileResponse, error)
}

type accountAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	accountRepo accountrepo.AccountRepository
	agentRepo   agentrepo.AgentRepository
	redisRepo   redisrepo.Repository
	notifier    Notifier
	codes       confirmation.Generator
}

func NewAccountApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	accountRepo accountrepo.AccountRepository,
	agentRepo agentrepo.AgentRepository,
	redisRepo redisrepo.Repository,
	notifier Notifier,
	codes confirmation.Generator,
) AccountApp {
	return &accountAppImpl{
		config:      config,
		txRepo:      txRepo,
		accountRepo: accountRepo,
		agentRepo:   agentRepo,
		redisRepo:   redisRepo,
		notifier:    notifier,
		codes:       codes,
	}
}

// roleClaims is the JWT payload. The session in Redis stays authoritative
// for the role; the claim lets clients read it without a round trip.
type roleClaims struct {
	Role constant.Role `json:"role"`
	jwt.RegisteredClaims
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterCustomer creates an unconfirmed customer account and sends its
// confirmation code. A failed send still returns the created account,
// together with ErrNotificationFailed.
func (s *accountAppImpl) RegisterCustomer(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if err := s.ensureEmailFree(ctx, "RegisterCustomer", req.Email); err != nil {
		return nil, err
	}

	entity, err := s.newAccount(req, constant.RoleCustomer)
	if err != nil {
		logger.Error("[RegisterCustomer] err newAccount", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	entity, err = s.accountRepo.Create(ctx, entity)
	if err != nil {
		if cerr := conflictError(err); cerr != nil {
			return nil, cerr
		}
		logger.Error("[RegisterCustomer] err accountRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return s.notifyRegistered(ctx, "RegisterCustomer", entity)
}

// RegisterAgent creates the account and its agent profile in one
// transaction, then sends the confirmation code.
func (s *accountAppImpl) RegisterAgent(ctx context.Context, req *model.RegisterAgentRequest) (*model.RegisterResponse, error) {
	req.Email = normalizeEmail(req.Email)
	req.DisplayName = strings.TrimSpace(req.DisplayName)
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if err := s.ensureEmailFree(ctx, "RegisterAgent", req.Email); err != nil {
		return nil, err
	}

	existingAgent, err := s.agentRepo.Get(ctx, &model.AgentFilter{DisplayName: req.DisplayName})
	if err != nil {
		logger.Error("[RegisterAgent] err agentRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingAgent != nil {
		return nil, errors.SetCustomError(constant.ErrDisplayNameTaken)
	}

	entity, err := s.newAccount(&req.RegisterRequest, constant.RoleAgent)
	if err != nil {
		logger.Error("[RegisterAgent] err newAccount", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[RegisterAgent] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err = s.accountRepo.CreateTx(ctx, tx, entity)
	if err != nil {
		if cerr := conflictError(err); cerr != nil {
			return nil, cerr
		}
		logger.Error("[RegisterAgent] err accountRepo.CreateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	err = s.agentRepo.CreateTx(ctx, tx, &model.AgentEntity{
		AccountID:   entity.ID,
		PhoneNumber: req.PhoneNumber,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		if cerr := conflictError(err); cerr != nil {
			return nil, cerr
		}
		logger.Error("[RegisterAgent] err agentRepo.CreateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[RegisterAgent] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return s.notifyRegistered(ctx, "RegisterAgent", entity)
}

// ResendConfirmation sends the account's current code again.
func (s *accountAppImpl) ResendConfirmation(ctx context.Context, req *model.ResendConfirmationRequest) error {
	req.Email = normalizeEmail(req.Email)
	if err := validatorx.ValidateStruct(req); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	account, err := s.accountRepo.Get(ctx, &model.AccountFilter{Email: req.Email})
	if err != nil {
		logger.Error("[ResendConfirmation] err accountRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if !canTransition(account.State(), constant.AccountStateConfirmed) {
		return errors.SetCustomError(constant.ErrAlreadyConfirmed)
	}

	if err := s.notifier.SendConfirmation(ctx, confirmationFor(account)); err != nil {
		logger.Error("[ResendConfirmation] err notifier.SendConfirmation",
			zap.Uint64("account_id", account.ID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrNotificationFailed)
	}
	return nil
}

// ConfirmAccount confirms the account holding the code. When two requests
// race on the same account, the guarded update lets only one of them win.
func (s *accountAppImpl) ConfirmAccount(ctx context.Context, req *model.ConfirmAccountRequest) (*model.RegisterResponse, error) {
	err := validatorx.ValidateVar(req.ConfirmationCode,
		fmt.Sprintf("min=%d,max=%d", constant.ConfirmationCodeMin, constant.ConfirmationCodeMax))
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	account, err := s.accountRepo.Get(ctx, &model.AccountFilter{ConfirmationCode: req.ConfirmationCode})
	if err != nil {
		logger.Error("[ConfirmAccount] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !canTransition(account.State(), constant.AccountStateConfirmed) {
		return nil, errors.SetCustomError(constant.ErrAlreadyConfirmed)
	}

	updated, err := s.accountRepo.MarkConfirmed(ctx, account.ID)
	if err != nil {
		logger.Error("[ConfirmAccount] err accountRepo.MarkConfirmed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !updated {
		return nil, errors.SetCustomError(constant.ErrAlreadyConfirmed)
	}

	account.IsConfirmed = true
	return registerResponse(account), nil
}

func (s *accountAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	account, err := s.accountRepo.Get(ctx, &model.AccountFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	// Verify password
	err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	if account.State() != constant.AccountStateConfirmed {
		return nil, errors.SetCustomError(constant.ErrAccountNotConfirmed)
	}

	token, jti, err := s.generateJWT(account.ID, account.Role)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	principal := model.Principal{AccountID: account.ID, Role: account.Role}
	if err := s.redisRepo.SetSession(ctx, jti, principal, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Email: account.Email,
		Role:  account.Role,
		Token: token,
	}, nil
}

func (s *accountAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &roleClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*roleClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}

	accountID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid account id in token")
	}

	if claims.ID == "" {
		return nil, fmt.Errorf("token missing jti")
	}

	session, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired session")
	}

	if session.AccountID != accountID {
		return nil, fmt.Errorf("token does not match account session")
	}

	return session, nil
}

func (s *accountAppImpl) Profile(ctx context.Context, accountID uint64) (*model.ProfileResponse, error) {
	account, err := s.accountRepo.Get(ctx, &model.AccountFilter{ID: accountID})
	if err != nil {
		logger.Error("[Profile] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	res := &model.ProfileResponse{AccountResponse: model.NewAccountResponse(account)}
	if account.Role != constant.RoleAgent {
		return res, nil
	}

	agent, err := s.agentRepo.Get(ctx, &model.AgentFilter{AccountID: accountID})
	if err != nil {
		logger.Error("[Profile] err agentRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	res.Agent = agent
	return res, nil
}

func (s *accountAppImpl) ensureEmailFree(ctx context.Context, op, email string) error {
	existing, err := s.accountRepo.Get(ctx, &model.AccountFilter{Email: email})
	if err != nil {
		logger.Error("["+op+"] err accountRepo.Get email", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return errors.SetCustomError(constant.ErrEmailRegistered)
	}
	return nil
}

func (s *accountAppImpl) newAccount(req *model.RegisterRequest, role constant.Role) (*model.AccountEntity, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &model.AccountEntity{
		Email:            req.Email,
		PasswordHash:     string(hashedPassword),
		FirstName:        strings.TrimSpace(req.FirstName),
		LastName:         strings.TrimSpace(req.LastName),
		Role:             role,
		IsConfirmed:      false,
		ConfirmationCode: s.codes.Generate(),
	}, nil
}

// notifyRegistered runs after the account is durable, so a failure here
// never undoes the registration.
func (s *accountAppImpl) notifyRegistered(ctx context.Context, op string, entity *model.AccountEntity) (*model.RegisterResponse, error) {
	res := registerResponse(entity)
	if err := s.notifier.SendConfirmation(ctx, confirmationFor(entity)); err != nil {
		logger.Error("["+op+"] err notifier.SendConfirmation",
			zap.Uint64("account_id", entity.ID), zap.String("error", err.Error()))
		return res, errors.SetCustomError(constant.ErrNotificationFailed)
	}
	return res, nil
}

// conflictError maps a unique-index violation, i.e. a registration that
// lost a race past the pre-checks, to its conflict error, or returns nil
// for any other error.
func conflictError(err error) error {
	if !stderrors.Is(err, sqlerr.ErrDuplicate) {
		return nil
	}
	switch sqlerr.DuplicateKey(err) {
	case "uq_agent_display_name":
		return errors.SetCustomError(constant.ErrDisplayNameExists)
	default:
		return errors.SetCustomError(constant.ErrEmailExists)
	}
}

func confirmationFor(a *model.AccountEntity) model.ConfirmationNotification {
	return model.ConfirmationNotification{
		Email:     a.Email,
		FirstName: a.FirstName,
		Code:      a.ConfirmationCode,
	}
}

func registerResponse(a *model.AccountEntity) *model.RegisterResponse {
	return &model.RegisterResponse{
		ID:          a.ID,
		Email:       a.Email,
		Role:        a.Role,
		IsConfirmed: a.IsConfirmed,
	}
}

// generateJWT creates a JWT for the account and returns it with its jti.
func (s *accountAppImpl) generateJWT(accountID uint64, role constant.Role) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := roleClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(accountID, 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        newUUID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}
