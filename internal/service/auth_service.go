package service

import (
	"chemiflex-backend/internal/model"
	"chemiflex-backend/internal/repository"
	"chemiflex-backend/pkg/apperr"
	"chemiflex-backend/pkg/jwt"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"required"`
	RoleName string `json:"roleName"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

// AuthService is the stateless auth gate: the signed token is the sole source
// of truth, there is no server-side session.
type AuthService interface {
	Register(req *RegisterRequest) (*model.UserResponse, error)
	Login(req *LoginRequest) (*LoginResponse, error)
	Authenticate(token string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	signer   *jwt.Signer
}

func NewAuthService(userRepo repository.UserRepository, roleRepo repository.RoleRepository, signer *jwt.Signer) AuthService {
	return &authService{userRepo: userRepo, roleRepo: roleRepo, signer: signer}
}

func (s *authService) Register(req *RegisterRequest) (*model.UserResponse, error) {
	roleCode := req.RoleName
	if roleCode == "" {
		roleCode = model.RoleStaff
	}
	if !model.ValidRoleCode(roleCode) {
		return nil, apperr.Validation("roleName must be one of ADMIN, STAFF, VIEWER")
	}

	role, err := s.roleRepo.FindOrCreateByCode(roleCode)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &model.User{
		Email:    req.Email,
		FullName: req.FullName,
		RoleID:   &role.ID,
		Role:     role,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, apperr.Internal(err)
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, apperr.FromDB(err, "Role not found", "Email already registered")
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *authService) Login(req *LoginRequest) (*LoginResponse, error) {
	// Same message for unknown email and wrong password
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}
	if !user.CheckPassword(req.Password) {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	token, err := s.signer.Generate(user.ID, user.Email, user.RoleCode())
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &LoginResponse{Token: token, User: user.ToResponse()}, nil
}

// Authenticate verifies a bearer token and resolves it to a live user.
// Malformed, unsigned and expired tokens are rejected, as are tokens whose
// user no longer exists.
func (s *authService) Authenticate(token string) (*model.User, error) {
	claims, err := s.signer.Validate(token)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, apperr.Unauthorized("Unauthorized")
	}
	return user, nil
}
