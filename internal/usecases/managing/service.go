package managing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/castnavi-api/infrastructure/repository"
	"github.com/vfg2006/castnavi-api/infrastructure/storage"
	"github.com/vfg2006/castnavi-api/internal/config"
	"github.com/vfg2006/castnavi-api/internal/domain"
	"github.com/vfg2006/castnavi-api/internal/pricing"
	"github.com/vfg2006/castnavi-api/pkg/apiErrors"
)

const timeLayout = "15:04"

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type ManageService interface {
	ListAreas(ctx context.Context) ([]*domain.Area, error)
	CreateArea(ctx context.Context, req *domain.SaveAreaRequest) (*domain.Area, error)
	UpdateArea(ctx context.Context, req *domain.SaveAreaRequest) (*domain.Area, error)
	DeleteArea(ctx context.Context, id string) error

	ListShops(ctx context.Context, areaID string) ([]*domain.Shop, error)
	CreateShop(ctx context.Context, req *domain.SaveShopRequest) (*domain.Shop, error)
	UpdateShop(ctx context.Context, req *domain.SaveShopRequest) (*domain.Shop, error)
	DeleteShop(ctx context.Context, id string) error

	ListCasts(ctx context.Context) ([]*domain.Cast, error)
	CreateCast(ctx context.Context, req *domain.SaveCastRequest) (*domain.Cast, error)
	UpdateCast(ctx context.Context, req *domain.SaveCastRequest) (*domain.Cast, error)
	DeleteCast(ctx context.Context, id string) error

	GetShopPrices(ctx context.Context, shopID string) (*domain.ShopPrices, error)
	CreateTimePrice(ctx context.Context, req *domain.SaveTimePriceRequest) (*domain.TimePrice, error)
	UpdateTimePrice(ctx context.Context, req *domain.SaveTimePriceRequest) (*domain.TimePrice, error)
	DeleteTimePrice(ctx context.Context, shopID, id string) error
	SaveNomination(ctx context.Context, shopID string, req *domain.SaveNominationRequest) (*domain.NominationPrice, error)
	SaveTax(ctx context.Context, shopID string, req *domain.SaveTaxRequest) (*domain.ShopTax, error)

	UploadCastImage(ctx context.Context, input *UploadImageInput) (*domain.UploadedImage, error)
}

// UploadImageInput é o arquivo recebido no upload de imagem de cast
type UploadImageInput struct {
	CastID      string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type Service struct {
	areaRepo   repository.AreaRepository
	shopRepo   repository.ShopRepository
	castRepo   repository.CastRepository
	priceRepo  repository.PriceRepository
	imageStore storage.ImageStore
	cfg        config.Storage
}

func NewService(
	areaRepo repository.AreaRepository,
	shopRepo repository.ShopRepository,
	castRepo repository.CastRepository,
	priceRepo repository.PriceRepository,
	imageStore storage.ImageStore,
	cfg config.Storage,
) ManageService {
	return &Service{
		areaRepo:   areaRepo,
		shopRepo:   shopRepo,
		castRepo:   castRepo,
		priceRepo:  priceRepo,
		imageStore: imageStore,
		cfg:        cfg,
	}
}

// translateRepoError converte os erros do repositório nos erros do painel
func translateRepoError(err error, notFound error, action string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return NewManageError(notFound, apiErrors.ErrResourceNotFound, "")
	case errors.Is(err, repository.ErrInvalidInput):
		return NewManageError(ErrInvalidID, apiErrors.ErrInvalidFormat, "")
	case errors.Is(err, repository.ErrReferenceNotFound):
		return NewManageError(ErrReferenceNotFound, apiErrors.ErrReferenceNotFound, "")
	case errors.Is(err, repository.ErrDuplicate):
		return NewManageError(ErrDuplicated, apiErrors.ErrResourceConflict, "")
	}

	logrus.Errorf("Erro ao %s: %v", action, err)
	return NewManageError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, fmt.Sprintf("Falha ao %s", action))
}

func missing(fields ...string) error {
	return NewManageError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData,
		fmt.Sprintf("Campos obrigatórios: %s", strings.Join(fields, ", ")))
}

func optional(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

func (s *Service) ListAreas(ctx context.Context) ([]*domain.Area, error) {
	areas, err := s.areaRepo.ListAreas(ctx, domain.AreaFilter{})
	if err != nil {
		return nil, translateRepoError(err, ErrAreaNotFound, "listar áreas")
	}
	return areas, nil
}

func (s *Service) CreateArea(ctx context.Context, req *domain.SaveAreaRequest) (*domain.Area, error) {
	if err := normalizeArea(req); err != nil {
		return nil, err
	}

	area, err := s.areaRepo.CreateArea(ctx, req)
	if err != nil {
		return nil, translateRepoError(err, ErrAreaNotFound, "criar área")
	}

	return area, nil
}

func (s *Service) UpdateArea(ctx context.Context, req *domain.SaveAreaRequest) (*domain.Area, error) {
	if err := normalizeArea(req); err != nil {
		return nil, err
	}

	area, err := s.areaRepo.UpdateArea(ctx, req)
	if err != nil {
		return nil, translateRepoError(err, ErrAreaNotFound, "atualizar área")
	}

	return area, nil
}

func normalizeArea(req *domain.SaveAreaRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Prefecture = strings.TrimSpace(req.Prefecture)
	req.City = strings.TrimSpace(req.City)

	if req.Name == "" || req.Prefecture == "" || req.City == "" {
		return missing("name", "prefecture", "city")
	}

	return nil
}

func (s *Service) DeleteArea(ctx context.Context, id string) error {
	if err := s.areaRepo.DeleteArea(ctx, id); err != nil {
		return translateRepoError(err, ErrAreaNotFound, "remover área")
	}
	return nil
}

func (s *Service) ListShops(ctx context.Context, areaID string) ([]*domain.Shop, error) {
	shops, err := s.shopRepo.ListShops(ctx, areaID)
	if err != nil {
		return nil, translateRepoError(err, ErrShopNotFound, "listar lojas")
	}
	return shops, nil
}

func (s *Service) CreateShop(ctx context.Context, req *domain.SaveShopRequest) (*domain.Shop, error) {
	if err := normalizeShop(req); err != nil {
		return nil, err
	}

	shop, err := s.shopRepo.CreateShop(ctx, req)
	if err != nil {
		return nil, translateRepoError(err, ErrShopNotFound, "criar loja")
	}

	return shop, nil
}

func (s *Service) UpdateShop(ctx context.Context, req *domain.SaveShopRequest) (*domain.Shop, error) {
	if err := normalizeShop(req); err != nil {
		return nil, err
	}

	shop, err := s.shopRepo.UpdateShop(ctx, req)
	if err != nil {
		return nil, translateRepoError(err, ErrShopNotFound, "atualizar loja")
	}

	return shop, nil
}

func normalizeShop(req *domain.SaveShopRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.AreaID = strings.TrimSpace(req.AreaID)
	req.Address = optional(req.Address)
	req.Phone = optional(req.Phone)
	req.Website = optional(req.Website)

	if req.Name == "" || req.AreaID == "" {
		return missing("name", "area_id")
	}

	return nil
}

func (s *Service) DeleteShop(ctx context.Context, id string) error {
	if err := s.shopRepo.DeleteShop(ctx, id); err != nil {
		return translateRepoError(err, ErrShopNotFound, "remover loja")
	}
	return nil
}

func (s *Service) ListCasts(ctx context.Context) ([]*domain.Cast, error) {
	casts, err := s.castRepo.ListCasts(ctx)
	if err != nil {
		return nil, translateRepoError(err, ErrCastNotFound, "listar casts")
	}
	return casts, nil
}

func (s *Service) CreateCast(ctx context.Context, req *domain.SaveCastRequest) (*domain.Cast, error) {
	if err := normalizeCast(req); err != nil {
		return nil, err
	}

	cast, err := s.castRepo.CreateCast(ctx, req)
	if err != nil {
		return nil, translateRepoError(err, ErrCastNotFound, "criar cast")
	}

	return cast, nil
}

func (s *Service) UpdateCast(ctx context.Context, req *domain.SaveCastRequest) (*domain.Cast, error) {
	if err := normalizeCast(req); err != nil {
		return nil, err
	}

	cast, err := s.castRepo.UpdateCast(ctx, req)
	if err != nil {
		return nil, translateRepoError(err, ErrCastNotFound, "atualizar cast")
	}

	return cast, nil
}

func normalizeCast(req *domain.SaveCastRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.ShopID = strings.TrimSpace(req.ShopID)
	req.ImageURL = optional(req.ImageURL)
	req.InstagramURL = optional(req.InstagramURL)

	if req.Name == "" || req.ShopID == "" {
		return missing("name", "shop_id")
	}

	return nil
}

func (s *Service) DeleteCast(ctx context.Context, id string) error {
	if err := s.castRepo.DeleteCast(ctx, id); err != nil {
		return translateRepoError(err, ErrCastNotFound, "remover cast")
	}
	return nil
}

// GetShopPrices monta a tabela de preços da loja com a prévia da faixa calculada
func (s *Service) GetShopPrices(ctx context.Context, shopID string) (*domain.ShopPrices, error) {
	shop, err := s.shopRepo.GetShopByID(ctx, shopID)
	if err != nil && !errors.Is(err, repository.ErrInvalidInput) {
		return nil, translateRepoError(err, ErrShopNotFound, "buscar loja")
	}
	if shop == nil {
		return nil, NewManageError(ErrShopNotFound, apiErrors.ErrResourceNotFound, "")
	}

	shopPricing, err := s.priceRepo.GetShopPricing(ctx, shopID)
	if err != nil {
		return nil, translateRepoError(err, ErrShopNotFound, "buscar preços da loja")
	}

	sort.SliceStable(shopPricing.TimePrices, func(i, j int) bool {
		return pricing.ParseTimeToMinutes(shopPricing.TimePrices[i].StartTime) <
			pricing.ParseTimeToMinutes(shopPricing.TimePrices[j].StartTime)
	})

	views := make([]*domain.TimePriceView, 0, len(shopPricing.TimePrices))
	for _, tp := range shopPricing.TimePrices {
		views = append(views, &domain.TimePriceView{
			TimePrice:     tp,
			DurationHours: pricing.CalculateDurationInHours(tp.StartTime, tp.EndTime),
		})
	}

	priceRange := shopPricing.PriceRange()

	return &domain.ShopPrices{
		Shop:            shop,
		TimePrices:      views,
		Nomination:      shopPricing.Nomination,
		Tax:             shopPricing.Tax,
		TaxRate:         shopPricing.TaxRate(),
		CalculatedRange: priceRange,
		PriceRange:      priceRange.String(),
	}, nil
}

func (s *Service) CreateTimePrice(ctx context.Context, req *domain.SaveTimePriceRequest) (*domain.TimePrice, error) {
	if err := normalizeTimePrice(req); err != nil {
		return nil, err
	}

	tp, err := s.priceRepo.CreateTimePrice(ctx, req)
	if err != nil {
		return nil, translateRepoError(err, ErrShopNotFound, "criar faixa de horário")
	}

	return tp, nil
}

func (s *Service) UpdateTimePrice(ctx context.Context, req *domain.SaveTimePriceRequest) (*domain.TimePrice, error) {
	if err := normalizeTimePrice(req); err != nil {
		return nil, err
	}

	tp, err := s.priceRepo.UpdateTimePrice(ctx, req)
	if err != nil {
		return nil, translateRepoError(err, ErrTimePriceNotFound, "atualizar faixa de horário")
	}

	return tp, nil
}

func normalizeTimePrice(req *domain.SaveTimePriceRequest) error {
	if req.ShopID == "" || req.StartTime == "" || req.EndTime == "" {
		return missing("start_time", "end_time", "price")
	}

	start, err := normalizeTime(req.StartTime)
	if err != nil {
		return NewManageError(ErrInvalidTime, apiErrors.ErrInvalidFormat, fmt.Sprintf("start_time inválido: %s", req.StartTime))
	}

	end, err := normalizeTime(req.EndTime)
	if err != nil {
		return NewManageError(ErrInvalidTime, apiErrors.ErrInvalidFormat, fmt.Sprintf("end_time inválido: %s", req.EndTime))
	}

	if req.Price <= 0 {
		return NewManageError(ErrInvalidPrice, apiErrors.ErrInvalidFormat, "O preço deve ser maior que zero")
	}

	req.StartTime = start
	req.EndTime = end

	return nil
}

func normalizeTime(value string) (string, error) {
	t, err := time.Parse(timeLayout, strings.TrimSpace(value))
	if err != nil {
		return "", err
	}
	return t.Format(timeLayout), nil
}

func (s *Service) DeleteTimePrice(ctx context.Context, shopID, id string) error {
	if err := s.priceRepo.DeleteTimePrice(ctx, shopID, id); err != nil {
		return translateRepoError(err, ErrTimePriceNotFound, "remover faixa de horário")
	}
	return nil
}

func (s *Service) SaveNomination(ctx context.Context, shopID string, req *domain.SaveNominationRequest) (*domain.NominationPrice, error) {
	if req == nil || req.Price == nil {
		return nil, missing("price")
	}

	if *req.Price < 0 {
		return nil, NewManageError(ErrInvalidPrice, apiErrors.ErrInvalidFormat, "A taxa de indicação não pode ser negativa")
	}

	nomination, err := s.priceRepo.UpsertNomination(ctx, shopID, *req.Price)
	if err != nil {
		return nil, translateRepoError(err, ErrShopNotFound, "salvar taxa de indicação")
	}

	return nomination, nil
}

func (s *Service) SaveTax(ctx context.Context, shopID string, req *domain.SaveTaxRequest) (*domain.ShopTax, error) {
	if req == nil || req.Price == nil {
		return nil, missing("price")
	}

	if *req.Price < 0 || *req.Price > 1 {
		return nil, NewManageError(ErrInvalidTaxRate, apiErrors.ErrInvalidFormat, "Informe a taxa como fração decimal (0.35 = 35%)")
	}

	tax, err := s.priceRepo.UpsertTax(ctx, shopID, *req.Price)
	if err != nil {
		return nil, translateRepoError(err, ErrShopNotFound, "salvar taxa de serviço")
	}

	return tax, nil
}

// UploadCastImage envia a imagem para o bucket e retorna a URL a ser gravada na cast
func (s *Service) UploadCastImage(ctx context.Context, input *UploadImageInput) (*domain.UploadedImage, error) {
	if input == nil || input.Body == nil || input.Filename == "" {
		return nil, missing("file")
	}

	if !strings.HasPrefix(input.ContentType, "image/") {
		return nil, NewManageError(ErrInvalidImage, apiErrors.ErrInvalidFormat, fmt.Sprintf("Tipo de arquivo não suportado: %s", input.ContentType))
	}

	if input.Size <= 0 {
		return nil, missing("file")
	}

	if s.cfg.MaxUploadBytes > 0 && input.Size > s.cfg.MaxUploadBytes {
		return nil, NewManageError(ErrImageTooLarge, apiErrors.ErrPayloadTooLarge,
			fmt.Sprintf("O arquivo deve ter no máximo %d bytes", s.cfg.MaxUploadBytes))
	}

	key, err := storage.CastImageKey(input.CastID, input.Filename)
	if err != nil {
		return nil, NewManageError(ErrUploadImage, apiErrors.ErrInternalServer, err.Error())
	}

	url, err := s.imageStore.Upload(ctx, key, input.ContentType, input.Body, input.Size)
	if err != nil {
		logrus.Errorf("Erro ao enviar imagem %s: %v", key, err)
		return nil, NewManageError(ErrUploadImage, apiErrors.ErrExternalService, "Falha ao enviar imagem")
	}

	return &domain.UploadedImage{Key: key, URL: url}, nil
}
