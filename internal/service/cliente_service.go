package service

import (
	"context"

	"github.com/larturi/crm-graphql-go/internal/apperror"
	"github.com/larturi/crm-graphql-go/internal/dto"
	"github.com/larturi/crm-graphql-go/internal/model"
	"github.com/larturi/crm-graphql-go/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClienteService interface {
	// Crear stamps the vendedor from the authenticated caller — there is no
	// ownership check on creation because no prior entity exists to own.
	Crear(ctx context.Context, callerID string, input dto.ClienteInput) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	ListarPorVendedor(ctx context.Context, callerID string, eliminado bool) ([]dto.ClienteResponse, error)
	ObtenerPorID(ctx context.Context, callerID, id string) (*dto.ClienteResponse, error)
	Actualizar(ctx context.Context, callerID, id string, input dto.ClienteInput) (*dto.ClienteResponse, error)
	// Eliminar soft-deletes and returns a confirmation message.
	Eliminar(ctx context.Context, callerID, id string) (string, error)
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Crear(ctx context.Context, callerID string, input dto.ClienteInput) (*dto.ClienteResponse, error) {
	vendedor, err := primitive.ObjectIDFromHex(callerID)
	if err != nil {
		return nil, apperror.InvalidToken()
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperror.AlreadyExists("El cliente ya esta registrado")
	}

	cliente := &model.Cliente{
		Nombre:   input.Nombre,
		Apellido: input.Apellido,
		Empresa:  input.Empresa,
		Email:    input.Email,
		Telefono: input.Telefono,
		Vendedor: vendedor,
	}
	if err := s.repo.Create(ctx, cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return clientesToResponse(clientes), nil
}

func (s *clienteService) ListarPorVendedor(ctx context.Context, callerID string, eliminado bool) ([]dto.ClienteResponse, error) {
	vendedor, err := primitive.ObjectIDFromHex(callerID)
	if err != nil {
		return nil, apperror.InvalidToken()
	}
	clientes, err := s.repo.ListByVendedor(ctx, vendedor, eliminado)
	if err != nil {
		return nil, err
	}
	return clientesToResponse(clientes), nil
}

func (s *clienteService) ObtenerPorID(ctx context.Context, callerID, id string) (*dto.ClienteResponse, error) {
	cliente, err := s.findOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Actualizar(ctx context.Context, callerID, id string, input dto.ClienteInput) (*dto.ClienteResponse, error) {
	cliente, err := s.findOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	cliente.Nombre = input.Nombre
	cliente.Apellido = input.Apellido
	cliente.Empresa = input.Empresa
	cliente.Email = input.Email
	cliente.Telefono = input.Telefono
	if input.Eliminado != nil {
		cliente.Eliminado = *input.Eliminado
	}

	if err := s.repo.Update(ctx, cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Eliminar(ctx context.Context, callerID, id string) (string, error) {
	cliente, err := s.findOwned(ctx, callerID, id)
	if err != nil {
		return "", err
	}
	if err := s.repo.SoftDelete(ctx, cliente.ID); err != nil {
		return "", err
	}
	return "Cliente Eliminado", nil
}

// findOwned loads a cliente by id and gates it behind the ownership check.
func (s *clienteService) findOwned(ctx context.Context, callerID, id string) (*model.Cliente, error) {
	cid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.Invalid("ID invalido")
	}
	cliente, err := s.repo.FindByID(ctx, cid)
	if err != nil {
		return nil, err
	}
	if err := VerificarPropietario(cliente.Vendedor.Hex(), callerID); err != nil {
		return nil, err
	}
	return cliente, nil
}

func clientesToResponse(clientes []model.Cliente) []dto.ClienteResponse {
	resp := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		resp = append(resp, *clienteToResponse(&clientes[i]))
	}
	return resp
}
