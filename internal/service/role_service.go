package service

import (
	"context"
	"errors"
	"fmt"

	"secure_solicitudes/internal/model"
	"secure_solicitudes/internal/repository"
)

// RoleService defines CRUD operations on roles
type RoleService interface {
	ListRoles(ctx context.Context) ([]model.Role, error)
	GetRole(ctx context.Context, id int) (*model.Role, error)
	CreateRole(ctx context.Context, req model.RoleRequest) (*model.Role, error)
	UpdateRole(ctx context.Context, id int, req model.RoleRequest) (*model.Role, error)
	DeleteRole(ctx context.Context, id int) error
}

type roleService struct {
	repo repository.RoleRepository
}

// NewRoleService creates a new RoleService
func NewRoleService(repo repository.RoleRepository) RoleService {
	return &roleService{repo: repo}
}

func (s *roleService) ListRoles(ctx context.Context) ([]model.Role, error) {
	roles, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return roles, nil
}

func (s *roleService) GetRole(ctx context.Context, id int) (*model.Role, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find role: %w", err)
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}
	return role, nil
}

func (s *roleService) CreateRole(ctx context.Context, req model.RoleRequest) (*model.Role, error) {
	if req.Name == nil {
		return nil, fmt.Errorf("%w: missing name", ErrValidation)
	}
	role := &model.Role{Name: *req.Name}
	if err := s.repo.Create(ctx, role); err != nil {
		return nil, fmt.Errorf("failed to create role in repository: %w", err)
	}
	return role, nil
}

func (s *roleService) UpdateRole(ctx context.Context, id int, req model.RoleRequest) (*model.Role, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find role for update: %w", err)
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}
	if req.Name == nil {
		return nil, fmt.Errorf("%w: missing name", ErrValidation)
	}

	role.Name = *req.Name
	if err := s.repo.Update(ctx, role); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to update role in repository: %w", err)
	}
	return role, nil
}

// DeleteRole does not check for users still referencing the role
func (s *roleService) DeleteRole(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRoleNotFound
		}
		return fmt.Errorf("failed to delete role in repository: %w", err)
	}
	return nil
}
