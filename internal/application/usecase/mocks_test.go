package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/joyeria-api/internal/application/dto"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	"github.com/jhoicas/joyeria-api/internal/domain/repository"
)

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) Create(it *entity.JewelryItem) error { return m.Called(it).Error(0) }
func (m *mockItemRepo) GetByID(id string) (*entity.JewelryItem, error) {
	args := m.Called(id)
	it, _ := args.Get(0).(*entity.JewelryItem)
	return it, args.Error(1)
}
func (m *mockItemRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.JewelryItem, error) {
	args := m.Called(companyID, sku)
	it, _ := args.Get(0).(*entity.JewelryItem)
	return it, args.Error(1)
}
func (m *mockItemRepo) Update(it *entity.JewelryItem) error { return m.Called(it).Error(0) }
func (m *mockItemRepo) List(companyID string, f repository.ItemFilter) ([]*entity.JewelryItem, error) {
	args := m.Called(companyID, f)
	list, _ := args.Get(0).([]*entity.JewelryItem)
	return list, args.Error(1)
}
func (m *mockItemRepo) Delete(id string) error { return m.Called(id).Error(0) }

type mockMaterialRepo struct{ mock.Mock }

func (m *mockMaterialRepo) Create(mat *entity.Material) error { return m.Called(mat).Error(0) }
func (m *mockMaterialRepo) GetByID(id string) (*entity.Material, error) {
	args := m.Called(id)
	mat, _ := args.Get(0).(*entity.Material)
	return mat, args.Error(1)
}
func (m *mockMaterialRepo) ListByCompany(companyID, kind string) ([]*entity.Material, error) {
	args := m.Called(companyID, kind)
	list, _ := args.Get(0).([]*entity.Material)
	return list, args.Error(1)
}
func (m *mockMaterialRepo) UpdateRate(id string, ratePaise int64) error {
	return m.Called(id, ratePaise).Error(0)
}

// fakePDF registra el desglose recibido y devuelve bytes fijos.
type fakePDF struct {
	got *dto.ItemBreakdownResponse
}

func (f *fakePDF) GenerateBreakdownPDF(_ context.Context, _ *entity.JewelryItem, b dto.ItemBreakdownResponse) ([]byte, error) {
	f.got = &b
	return []byte("%PDF-1.4"), nil
}
