package service

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"secure_solicitudes/internal/model"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRoleRepository is a mock implementation of RoleRepository.
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) Create(ctx context.Context, role *model.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) FindByID(ctx context.Context, id int) (*model.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *MockRoleRepository) FindAll(ctx context.Context) ([]model.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Role), args.Error(1)
}

func (m *MockRoleRepository) Update(ctx context.Context, role *model.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSolicitudRepository is a mock implementation of SolicitudRepository.
type MockSolicitudRepository struct {
	mock.Mock
}

func (m *MockSolicitudRepository) Create(ctx context.Context, s *model.Solicitud) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSolicitudRepository) FindByID(ctx context.Context, id int64) (*model.Solicitud, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Solicitud), args.Error(1)
}

func (m *MockSolicitudRepository) UpdateCertificado(ctx context.Context, id int64, cert *model.Certificate) error {
	args := m.Called(ctx, id, cert)
	return args.Error(0)
}

func (m *MockSolicitudRepository) UpdateEstado(ctx context.Context, id int64, estado string) error {
	args := m.Called(ctx, id, estado)
	return args.Error(0)
}

// sequenceLookup returns the configured results in order, repeating the last one.
type sequenceLookup struct {
	mu      sync.Mutex
	results []any
	calls   int
}

func (l *sequenceLookup) Lookup(_ context.Context, referenceID int64, displayName string) model.Certificate {
	l.mu.Lock()
	defer l.mu.Unlock()
	idx := l.calls
	if idx >= len(l.results) {
		idx = len(l.results) - 1
	}
	l.calls++
	return model.Certificate{
		CertificadoID: "CERT-" + strconv.FormatInt(referenceID, 10),
		Nombre:        displayName,
		FechaEmision:  "2026-10-16",
		Estado:        model.CertificateEstadoValido,
		Detalle:       model.CertificateDetalle,
		ResultadoSOAP: l.results[idx],
	}
}

