package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/castnavi-api/infrastructure/repository"
	"github.com/vfg2006/castnavi-api/infrastructure/storage"
	"github.com/vfg2006/castnavi-api/internal/config"
	"github.com/vfg2006/castnavi-api/internal/domain"
	"github.com/vfg2006/castnavi-api/pkg/apiErrors"
	"github.com/vfg2006/castnavi-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

const (
	defaultCastListLimit = 10
	maxConcurrentLookups = 5
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type CatalogService interface {
	ListAreas(ctx context.Context, prefecture string) ([]*domain.Area, error)
	ListPrefectures(ctx context.Context) ([]string, error)
	GetArea(ctx context.Context, id string) (*domain.Area, error)
	ListCastsByArea(ctx context.Context, areaID string, limit int) ([]*domain.CastWithPrice, error)
	GetCastDetail(ctx context.Context, castID string) (*domain.CastDetail, error)
}

type Service struct {
	areaRepo   repository.AreaRepository
	castRepo   repository.CastRepository
	priceRepo  repository.PriceRepository
	reviewRepo repository.ReviewRepository
	imageStore storage.ImageStore
	cfg        config.Catalog
}

func NewService(
	areaRepo repository.AreaRepository,
	castRepo repository.CastRepository,
	priceRepo repository.PriceRepository,
	reviewRepo repository.ReviewRepository,
	imageStore storage.ImageStore,
	cfg config.Catalog,
) CatalogService {
	return &Service{
		areaRepo:   areaRepo,
		castRepo:   castRepo,
		priceRepo:  priceRepo,
		reviewRepo: reviewRepo,
		imageStore: imageStore,
		cfg:        cfg,
	}
}

func (s *Service) ListAreas(ctx context.Context, prefecture string) ([]*domain.Area, error) {
	areas, err := s.areaRepo.ListAreas(ctx, domain.AreaFilter{Prefecture: strings.TrimSpace(prefecture)})
	if err != nil {
		logrus.Errorf("Erro ao listar áreas: %v", err)
		return nil, NewCatalogError(ErrFetchAreas, apiErrors.ErrDatabaseOperation, "Falha ao listar áreas")
	}

	return areas, nil
}

func (s *Service) ListPrefectures(ctx context.Context) ([]string, error) {
	prefectures, err := s.areaRepo.ListPrefectures(ctx)
	if err != nil {
		logrus.Errorf("Erro ao listar prefeituras: %v", err)
		return nil, NewCatalogError(ErrFetchAreas, apiErrors.ErrDatabaseOperation, "Falha ao listar prefeituras")
	}

	return prefectures, nil
}

func (s *Service) GetArea(ctx context.Context, id string) (*domain.Area, error) {
	if id == "" {
		return nil, NewCatalogError(ErrAreaIDRequired, apiErrors.ErrMissingRequiredData, "ID da área é obrigatório")
	}

	area, err := s.areaRepo.GetAreaByID(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrInvalidInput) {
		logrus.Errorf("Erro ao buscar área %s: %v", id, err)
		return nil, NewCatalogError(ErrFetchAreas, apiErrors.ErrDatabaseOperation, "Falha ao buscar área")
	}

	if area == nil {
		return nil, NewCatalogError(ErrAreaNotFound, apiErrors.ErrResourceNotFound, "Área não encontrada")
	}

	return area, nil
}

// ListCastsByArea lista as casts da área com a faixa de preço de cada loja.
// A tabela de preços é lida uma única vez por loja.
func (s *Service) ListCastsByArea(ctx context.Context, areaID string, limit int) ([]*domain.CastWithPrice, error) {
	if areaID == "" {
		return nil, NewCatalogError(ErrAreaIDRequired, apiErrors.ErrMissingRequiredData, "areaId é obrigatório")
	}

	if limit <= 0 {
		limit = s.cfg.CastListLimit
	}
	if limit <= 0 {
		limit = defaultCastListLimit
	}

	casts, err := s.castRepo.ListCastsByArea(ctx, areaID, limit)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidInput) {
			return []*domain.CastWithPrice{}, nil
		}
		logrus.Errorf("Erro ao listar casts da área %s: %v", areaID, err)
		return nil, NewCatalogError(ErrFetchCasts, apiErrors.ErrDatabaseOperation, "Falha ao listar casts")
	}

	shopIDs := make([]string, 0)
	seen := make(map[string]struct{})
	for _, cast := range casts {
		if _, ok := seen[cast.ShopID]; ok {
			continue
		}
		seen[cast.ShopID] = struct{}{}
		shopIDs = append(shopIDs, cast.ShopID)
	}

	pricingByShop, err := s.fetchPricing(ctx, shopIDs)
	if err != nil {
		logrus.Errorf("Erro ao buscar preços das lojas da área %s: %v", areaID, err)
		return nil, NewCatalogError(ErrFetchPrices, apiErrors.ErrDatabaseOperation, "Falha ao buscar preços")
	}

	result := make([]*domain.CastWithPrice, 0, len(casts))
	for _, cast := range casts {
		s.resolveImage(ctx, cast)

		pricing, ok := pricingByShop[cast.ShopID]
		if !ok || pricing == nil {
			pricing = &domain.ShopPricing{ShopID: cast.ShopID}
		}

		result = append(result, &domain.CastWithPrice{
			Cast:         cast,
			PriceRange:   pricing.PriceRange().String(),
			PriceDetails: pricing.Details(),
		})
	}

	return result, nil
}

func (s *Service) fetchPricing(ctx context.Context, shopIDs []string) (map[string]*domain.ShopPricing, error) {
	var mu sync.Mutex
	pricingByShop := make(map[string]*domain.ShopPricing, len(shopIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	for _, shopID := range shopIDs {
		shopID := shopID
		g.Go(func() error {
			pricing, err := s.priceRepo.GetShopPricing(gctx, shopID)
			if err != nil {
				return err
			}

			mu.Lock()
			pricingByShop[shopID] = pricing
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return pricingByShop, nil
}

func (s *Service) GetCastDetail(ctx context.Context, castID string) (*domain.CastDetail, error) {
	if castID == "" {
		return nil, NewCatalogError(ErrCastIDRequired, apiErrors.ErrMissingRequiredData, "ID da cast é obrigatório")
	}

	cast, err := s.castRepo.GetCastByID(ctx, castID)
	if err != nil && !errors.Is(err, repository.ErrInvalidInput) {
		logrus.Errorf("Erro ao buscar cast %s: %v", castID, err)
		return nil, NewCatalogError(ErrFetchCasts, apiErrors.ErrDatabaseOperation, "Falha ao buscar cast")
	}

	if cast == nil {
		return nil, NewCatalogError(ErrCastNotFound, apiErrors.ErrResourceNotFound, "Cast não encontrada")
	}

	var (
		pricing *domain.ShopPricing
		reviews []*domain.Review
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pricing, err = s.priceRepo.GetShopPricing(gctx, cast.ShopID)
		if err != nil {
			return NewCatalogError(ErrFetchPrices, apiErrors.ErrDatabaseOperation, "Falha ao buscar preços")
		}
		return nil
	})
	g.Go(func() error {
		var err error
		reviews, err = s.reviewRepo.ListReviewsByCast(gctx, cast.ID)
		if err != nil {
			return NewCatalogError(ErrFetchReviews, apiErrors.ErrDatabaseOperation, "Falha ao buscar avaliações")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logrus.Errorf("Erro ao montar detalhes da cast %s: %v", castID, err)
		return nil, err
	}

	if pricing == nil {
		pricing = &domain.ShopPricing{ShopID: cast.ShopID}
	}

	s.resolveImage(ctx, cast)

	detail := &domain.CastDetail{
		Cast:          cast,
		PriceRange:    pricing.PriceRange().String(),
		PriceDetails:  pricing.Details(),
		Reviews:       reviews,
		ReviewSummary: SummarizeReviews(reviews),
	}

	if cast.Shop != nil {
		detail.Area = cast.Shop.Area
	}

	return detail, nil
}

// resolveImage troca a URL gravada pela URL entregue ao cliente
func (s *Service) resolveImage(ctx context.Context, cast *domain.Cast) {
	if cast.ImageURL == nil || *cast.ImageURL == "" || s.imageStore == nil {
		return
	}

	url, err := s.imageStore.ResolveURL(ctx, *cast.ImageURL)
	if err != nil {
		logrus.Warnf("Não foi possível resolver a imagem da cast %s: %v", cast.ID, err)
		return
	}

	cast.ImageURL = &url
}

// SummarizeReviews calcula as médias das notas com uma casa decimal
func SummarizeReviews(reviews []*domain.Review) domain.ReviewSummary {
	summary := domain.ReviewSummary{Count: len(reviews)}
	if len(reviews) == 0 {
		return summary
	}

	var cute, talk, price int
	for _, review := range reviews {
		cute += review.CuteScore
		talk += review.TalkScore
		price += review.PriceScore
	}

	total := float64(len(reviews))
	summary.AvgCuteScore = utils.RoundWithOneDecimalPlace(float64(cute) / total)
	summary.AvgTalkScore = utils.RoundWithOneDecimalPlace(float64(talk) / total)
	summary.AvgPriceScore = utils.RoundWithOneDecimalPlace(float64(price) / total)

	return summary
}
