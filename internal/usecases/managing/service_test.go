package managing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/castnavi-api/infrastructure/repository"
	"github.com/vfg2006/castnavi-api/infrastructure/repository/mocks"
	storagemocks "github.com/vfg2006/castnavi-api/infrastructure/storage/mocks"
	"github.com/vfg2006/castnavi-api/internal/config"
	"github.com/vfg2006/castnavi-api/internal/domain"
	"github.com/vfg2006/castnavi-api/internal/pricing"
	"github.com/vfg2006/castnavi-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type manageMocks struct {
	areaRepo   *mocks.MockAreaRepository
	shopRepo   *mocks.MockShopRepository
	castRepo   *mocks.MockCastRepository
	priceRepo  *mocks.MockPriceRepository
	imageStore *storagemocks.MockImageStore
}

func newTestService(t *testing.T) (ManageService, manageMocks) {
	ctrl := gomock.NewController(t)

	m := manageMocks{
		areaRepo:   mocks.NewMockAreaRepository(ctrl),
		shopRepo:   mocks.NewMockShopRepository(ctrl),
		castRepo:   mocks.NewMockCastRepository(ctrl),
		priceRepo:  mocks.NewMockPriceRepository(ctrl),
		imageStore: storagemocks.NewMockImageStore(ctrl),
	}

	service := NewService(m.areaRepo, m.shopRepo, m.castRepo, m.priceRepo, m.imageStore, config.Storage{MaxUploadBytes: 1024})

	return service, m
}

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}

func stringPtr(s string) *string {
	return &s
}

func assertManageError(t *testing.T, err error, expectedErr error, expectedCode string) {
	t.Helper()

	assert.ErrorIs(t, err, expectedErr)
	var manageErr *ManageError
	require.ErrorAs(t, err, &manageErr)
	assert.Equal(t, expectedCode, manageErr.Code)
}

func TestService_CreateTimePrice(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		req          *domain.SaveTimePriceRequest
		setup        func(m manageMocks)
		expectedErr  error
		expectedCode string
	}{
		{
			name: "Faixa válida com horário normalizado",
			req:  &domain.SaveTimePriceRequest{ShopID: "s1", StartTime: "9:00", EndTime: "01:30", Price: 3000},
			setup: func(m manageMocks) {
				m.priceRepo.EXPECT().
					CreateTimePrice(gomock.Any(), &domain.SaveTimePriceRequest{ShopID: "s1", StartTime: "09:00", EndTime: "01:30", Price: 3000}).
					Return(&domain.TimePrice{ID: "t1", ShopID: "s1", StartTime: "09:00", EndTime: "01:30", Price: 3000}, nil)
			},
		},
		{
			name:         "Horário inválido",
			req:          &domain.SaveTimePriceRequest{ShopID: "s1", StartTime: "25:00", EndTime: "01:00", Price: 3000},
			expectedErr:  ErrInvalidTime,
			expectedCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:         "Minutos inválidos no fim",
			req:          &domain.SaveTimePriceRequest{ShopID: "s1", StartTime: "20:00", EndTime: "21:75", Price: 3000},
			expectedErr:  ErrInvalidTime,
			expectedCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:         "Preço zero",
			req:          &domain.SaveTimePriceRequest{ShopID: "s1", StartTime: "20:00", EndTime: "21:00", Price: 0},
			expectedErr:  ErrInvalidPrice,
			expectedCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:         "Sem horário de início",
			req:          &domain.SaveTimePriceRequest{ShopID: "s1", EndTime: "21:00", Price: 3000},
			expectedErr:  ErrMissingRequiredData,
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name: "Loja inexistente",
			req:  &domain.SaveTimePriceRequest{ShopID: "s9", StartTime: "20:00", EndTime: "21:00", Price: 3000},
			setup: func(m manageMocks) {
				m.priceRepo.EXPECT().CreateTimePrice(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: shop_prices_time_shop_id_fkey", repository.ErrReferenceNotFound))
			},
			expectedErr:  ErrReferenceNotFound,
			expectedCode: apiErrors.ErrReferenceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			tp, err := service.CreateTimePrice(ctx, tt.req)
			if tt.expectedErr != nil {
				assertManageError(t, err, tt.expectedErr, tt.expectedCode)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "09:00", tp.StartTime)
		})
	}
}

func TestService_UpdateTimePrice_NotFound(t *testing.T) {
	service, m := newTestService(t)

	m.priceRepo.EXPECT().UpdateTimePrice(gomock.Any(), gomock.Any()).Return(nil, repository.ErrNotFound)

	_, err := service.UpdateTimePrice(context.Background(), &domain.SaveTimePriceRequest{
		ID: "t1", ShopID: "s1", StartTime: "20:00", EndTime: "21:00", Price: 1000,
	})
	assertManageError(t, err, ErrTimePriceNotFound, apiErrors.ErrResourceNotFound)
}

func TestService_GetShopPrices(t *testing.T) {
	ctx := context.Background()

	t.Run("Deve ordenar as faixas e calcular duração e prévia", func(t *testing.T) {
		service, m := newTestService(t)

		m.shopRepo.EXPECT().GetShopByID(gomock.Any(), "s1").Return(&domain.Shop{ID: "s1", Name: "Club A"}, nil)
		m.priceRepo.EXPECT().GetShopPricing(gomock.Any(), "s1").Return(&domain.ShopPricing{
			ShopID: "s1",
			TimePrices: []*domain.TimePrice{
				{ID: "t3", StartTime: "23:00", EndTime: "01:00", Price: 5000},
				{ID: "t1", StartTime: "20:00", EndTime: "21:00", Price: 1000},
				{ID: "t2", StartTime: "21:00", EndTime: "23:00", Price: 3000},
			},
			Nomination: &domain.NominationPrice{Price: 2000},
		}, nil)

		prices, err := service.GetShopPrices(ctx, "s1")
		require.NoError(t, err)

		require.Len(t, prices.TimePrices, 3)
		assert.Equal(t, "t1", prices.TimePrices[0].ID)
		assert.Equal(t, "t2", prices.TimePrices[1].ID)
		assert.Equal(t, "t3", prices.TimePrices[2].ID)
		assert.Equal(t, 1.0, prices.TimePrices[0].DurationHours)
		assert.Equal(t, 2.0, prices.TimePrices[1].DurationHours)
		assert.Equal(t, 2.0, prices.TimePrices[2].DurationHours)

		assert.Equal(t, pricing.DefaultTaxRate, prices.TaxRate)
		assert.Nil(t, prices.Tax)
		assert.Equal(t, pricing.PriceRange{Min: 4050, Max: 9450}, prices.CalculatedRange)
		assert.Equal(t, "4,050円 ～ 9,450円", prices.PriceRange)
	})

	t.Run("Taxa zero gravada é respeitada", func(t *testing.T) {
		service, m := newTestService(t)

		m.shopRepo.EXPECT().GetShopByID(gomock.Any(), "s1").Return(&domain.Shop{ID: "s1"}, nil)
		m.priceRepo.EXPECT().GetShopPricing(gomock.Any(), "s1").Return(&domain.ShopPricing{
			ShopID:     "s1",
			TimePrices: []*domain.TimePrice{{StartTime: "20:00", EndTime: "21:00", Price: 3000}},
			Tax:        &domain.ShopTax{Price: 0},
		}, nil)

		prices, err := service.GetShopPrices(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, 0.0, prices.TaxRate)
		assert.Equal(t, "3,000円", prices.PriceRange)
	})

	t.Run("Loja inexistente", func(t *testing.T) {
		service, m := newTestService(t)

		m.shopRepo.EXPECT().GetShopByID(gomock.Any(), "s9").Return(nil, nil)

		_, err := service.GetShopPrices(ctx, "s9")
		assertManageError(t, err, ErrShopNotFound, apiErrors.ErrResourceNotFound)
	})
}

func TestService_SaveNomination(t *testing.T) {
	ctx := context.Background()

	t.Run("Upsert da indicação", func(t *testing.T) {
		service, m := newTestService(t)
		m.priceRepo.EXPECT().UpsertNomination(gomock.Any(), "s1", 2000).
			Return(&domain.NominationPrice{ShopID: "s1", Price: 2000}, nil)

		nomination, err := service.SaveNomination(ctx, "s1", &domain.SaveNominationRequest{Price: intPtr(2000)})
		require.NoError(t, err)
		assert.Equal(t, 2000, nomination.Price)
	})

	t.Run("Indicação zero é permitida", func(t *testing.T) {
		service, m := newTestService(t)
		m.priceRepo.EXPECT().UpsertNomination(gomock.Any(), "s1", 0).
			Return(&domain.NominationPrice{ShopID: "s1"}, nil)

		_, err := service.SaveNomination(ctx, "s1", &domain.SaveNominationRequest{Price: intPtr(0)})
		require.NoError(t, err)
	})

	t.Run("Indicação negativa", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.SaveNomination(ctx, "s1", &domain.SaveNominationRequest{Price: intPtr(-1)})
		assertManageError(t, err, ErrInvalidPrice, apiErrors.ErrInvalidFormat)
	})

	t.Run("Sem preço", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.SaveNomination(ctx, "s1", &domain.SaveNominationRequest{})
		assertManageError(t, err, ErrMissingRequiredData, apiErrors.ErrMissingRequiredData)
	})
}

func TestService_SaveTax(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		rate        *float64
		valid       bool
		expectedErr error
	}{
		{name: "Taxa padrão", rate: floatPtr(0.35), valid: true},
		{name: "Taxa zero", rate: floatPtr(0), valid: true},
		{name: "Taxa 100%", rate: floatPtr(1), valid: true},
		{name: "Taxa informada em porcentagem", rate: floatPtr(35), expectedErr: ErrInvalidTaxRate},
		{name: "Taxa negativa", rate: floatPtr(-0.1), expectedErr: ErrInvalidTaxRate},
		{name: "Sem taxa", rate: nil, expectedErr: ErrMissingRequiredData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			if tt.valid {
				m.priceRepo.EXPECT().UpsertTax(gomock.Any(), "s1", *tt.rate).
					Return(&domain.ShopTax{ShopID: "s1", Price: *tt.rate}, nil)
			}

			tax, err := service.SaveTax(ctx, "s1", &domain.SaveTaxRequest{Price: tt.rate})
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, *tt.rate, tax.Price)
		})
	}
}

func TestService_CreateShop(t *testing.T) {
	ctx := context.Background()

	t.Run("Campos opcionais vazios viram nulos", func(t *testing.T) {
		service, m := newTestService(t)

		m.shopRepo.EXPECT().CreateShop(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *domain.SaveShopRequest) (*domain.Shop, error) {
				assert.Equal(t, "Club A", req.Name)
				assert.Nil(t, req.Address)
				assert.Nil(t, req.Phone)
				require.NotNil(t, req.Website)
				assert.Equal(t, "https://club-a.jp", *req.Website)
				return &domain.Shop{ID: "s1", Name: req.Name, AreaID: req.AreaID, Website: req.Website}, nil
			})

		shop, err := service.CreateShop(ctx, &domain.SaveShopRequest{
			Name:    " Club A ",
			AreaID:  "a1",
			Address: stringPtr(""),
			Phone:   stringPtr("  "),
			Website: stringPtr("https://club-a.jp"),
		})
		require.NoError(t, err)
		assert.Equal(t, "s1", shop.ID)
	})

	t.Run("Sem área", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreateShop(ctx, &domain.SaveShopRequest{Name: "Club A"})
		assertManageError(t, err, ErrMissingRequiredData, apiErrors.ErrMissingRequiredData)
	})
}

func TestService_AreaCRUD(t *testing.T) {
	ctx := context.Background()

	t.Run("Criar área sem cidade", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreateArea(ctx, &domain.SaveAreaRequest{Name: "歌舞伎町", Prefecture: "東京都"})
		assertManageError(t, err, ErrMissingRequiredData, apiErrors.ErrMissingRequiredData)
	})

	t.Run("Atualizar área inexistente", func(t *testing.T) {
		service, m := newTestService(t)
		m.areaRepo.EXPECT().UpdateArea(gomock.Any(), gomock.Any()).Return(nil, repository.ErrNotFound)

		_, err := service.UpdateArea(ctx, &domain.SaveAreaRequest{ID: "a9", Name: "n", Prefecture: "p", City: "c"})
		assertManageError(t, err, ErrAreaNotFound, apiErrors.ErrResourceNotFound)
	})

	t.Run("Remover área com ID inválido", func(t *testing.T) {
		service, m := newTestService(t)
		m.areaRepo.EXPECT().DeleteArea(gomock.Any(), "xyz").Return(repository.ErrInvalidInput)

		err := service.DeleteArea(ctx, "xyz")
		assertManageError(t, err, ErrInvalidID, apiErrors.ErrInvalidFormat)
	})

	t.Run("Falha inesperada do banco", func(t *testing.T) {
		service, m := newTestService(t)
		m.castRepo.EXPECT().DeleteCast(gomock.Any(), "c1").Return(errors.New("conexão perdida"))

		err := service.DeleteCast(ctx, "c1")
		assertManageError(t, err, ErrDatabaseOperation, apiErrors.ErrDatabaseOperation)
	})
}

func TestService_UploadCastImage(t *testing.T) {
	ctx := context.Background()

	t.Run("Imagem válida", func(t *testing.T) {
		service, m := newTestService(t)

		m.imageStore.EXPECT().
			Upload(gomock.Any(), gomock.Any(), "image/png", gomock.Any(), int64(4)).
			DoAndReturn(func(_ context.Context, key, _ string, _ any, _ int64) (string, error) {
				return "https://bucket/" + key, nil
			})

		uploaded, err := service.UploadCastImage(ctx, &UploadImageInput{
			CastID:      "c1",
			Filename:    "foto.PNG",
			ContentType: "image/png",
			Size:        4,
			Body:        bytes.NewReader([]byte("data")),
		})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(uploaded.Key, "casts/c1/"))
		assert.True(t, strings.HasSuffix(uploaded.Key, ".png"))
		assert.Equal(t, "https://bucket/"+uploaded.Key, uploaded.URL)
	})

	t.Run("Arquivo que não é imagem", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.UploadCastImage(ctx, &UploadImageInput{
			Filename: "doc.pdf", ContentType: "application/pdf", Size: 10, Body: bytes.NewReader(nil),
		})
		assertManageError(t, err, ErrInvalidImage, apiErrors.ErrInvalidFormat)
	})

	t.Run("Imagem maior que o limite", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.UploadCastImage(ctx, &UploadImageInput{
			Filename: "big.jpg", ContentType: "image/jpeg", Size: 2048, Body: bytes.NewReader(nil),
		})
		assertManageError(t, err, ErrImageTooLarge, apiErrors.ErrPayloadTooLarge)
	})

	t.Run("Falha no S3", func(t *testing.T) {
		service, m := newTestService(t)
		m.imageStore.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("access denied"))

		_, err := service.UploadCastImage(ctx, &UploadImageInput{
			Filename: "a.jpg", ContentType: "image/jpeg", Size: 10, Body: bytes.NewReader(nil),
		})
		assertManageError(t, err, ErrUploadImage, apiErrors.ErrExternalService)
	})
}
