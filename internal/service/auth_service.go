package service

import (
	"context"
	"time"

	"github.com/larturi/crm-graphql-go/internal/apperror"
	"github.com/larturi/crm-graphql-go/internal/config"
	"github.com/larturi/crm-graphql-go/internal/dto"
	"github.com/larturi/crm-graphql-go/internal/model"
	"github.com/larturi/crm-graphql-go/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	CrearUsuario(ctx context.Context, input dto.UsuarioInput) (*dto.UsuarioResponse, error)
	Autenticar(ctx context.Context, input dto.AutenticarInput) (*dto.TokenResponse, error)
	// ObtenerUsuario resolves the authenticated vendedor from the caller id
	// carried in the token claims.
	ObtenerUsuario(ctx context.Context, callerID string) (*dto.UsuarioResponse, error)
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) CrearUsuario(ctx context.Context, input dto.UsuarioInput) (*dto.UsuarioResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperror.AlreadyExists("El usuario ya esta registrado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), 12)
	if err != nil {
		return nil, err
	}

	usuario := &model.Usuario{
		Nombre:       input.Nombre,
		Apellido:     input.Apellido,
		Email:        input.Email,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, usuario); err != nil {
		return nil, err
	}
	return usuarioToResponse(usuario), nil
}

func (s *authService) Autenticar(ctx context.Context, input dto.AutenticarInput) (*dto.TokenResponse, error) {
	usuario, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperror.InvalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperror.InvalidCredentials()
	}

	token, err := s.generateToken(usuario, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token}, nil
}

func (s *authService) ObtenerUsuario(ctx context.Context, callerID string) (*dto.UsuarioResponse, error) {
	uid, err := primitive.ObjectIDFromHex(callerID)
	if err != nil {
		return nil, apperror.InvalidToken()
	}
	usuario, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return usuarioToResponse(usuario), nil
}

func (s *authService) generateToken(u *model.Usuario, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  u.ID.Hex(),
		"nombre":   u.Nombre,
		"apellido": u.Apellido,
		"email":    u.Email,
		"exp":      time.Now().Add(duration).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
