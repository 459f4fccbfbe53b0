package auth

import (
	"context"
	"crypto/subtle"
	"os"
	"strconv"
	"time"

	autherrors "go-timeclock/internal/auth/errors"
	"go-timeclock/internal/employee"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleWorker = "WORKER"
	RoleAdmin  = "ADMIN"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	WorkerLogin(ctx context.Context, req WorkerLoginRequest) (AuthResponse, error)
	AdminLogin(ctx context.Context, req AdminLoginRequest) (AuthResponse, error)
}

type service struct {
	employees employee.Repository
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{employees: employees, logger: l, now: time.Now}
}

// WorkerLogin trades a known employee ID for a worker token. The kiosk flow
// has no password; possession of the six-digit ID is the credential, which
// is why login is rate limited per IP.
func (s *service) WorkerLogin(ctx context.Context, req WorkerLoginRequest) (AuthResponse, error) {
	e, err := s.employees.FindByID(ctx, req.EmployeeID)
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}
	if !e.Active() {
		return AuthResponse{}, autherrors.ErrEmployeeNotActive
	}

	name := e.FirstName + " " + e.LastName
	token, expiresIn, err := s.generateToken(e.EmployeeID, name, RoleWorker)
	if err != nil {
		s.logger.Error("worker token sign failed", zap.String("employee_id", e.EmployeeID), zap.Error(err))
		return AuthResponse{}, err
	}

	s.logger.Info("worker login", zap.String("employee_id", e.EmployeeID))

	return AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		EmployeeID:  e.EmployeeID,
		Name:        name,
		Role:        RoleWorker,
	}, nil
}

func (s *service) AdminLogin(ctx context.Context, req AdminLoginRequest) (AuthResponse, error) {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminEmail == "" || adminHash == "" {
		s.logger.Error("admin login attempted without admin credentials configured")
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if subtle.ConstantTimeCompare([]byte(req.Email), []byte(adminEmail)) != 1 {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(adminHash), []byte(req.Password)); err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.generateToken("admin", "Administrator", RoleAdmin)
	if err != nil {
		s.logger.Error("admin token sign failed", zap.Error(err))
		return AuthResponse{}, err
	}

	s.logger.Info("admin login", zap.String("email", req.Email))

	return AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		EmployeeID:  "admin",
		Name:        "Administrator",
		Role:        RoleAdmin,
	}, nil
}

func (s *service) generateToken(employeeID, name, role string) (string, int64, error) {
	ttl := 12 * time.Hour
	if raw := os.Getenv("JWT_TTL_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			ttl = time.Duration(hours) * time.Hour
		}
	}

	now := s.now()
	claims := jwt.MapClaims{
		"employee_id": employeeID,
		"name":        name,
		"role":        role,
		"iat":         now.Unix(),
		"exp":         now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return "", 0, err
	}
	return signed, int64(ttl.Seconds()), nil
}
