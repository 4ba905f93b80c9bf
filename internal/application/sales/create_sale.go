package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// Config política de ventas.
type Config struct {
	AllowOversell bool
}

// SaleUseCase motor de ventas: creación transaccional y consultas.
type SaleUseCase struct {
	tx          TxRunner
	saleRepo    repository.SaleRepository
	paymentRepo repository.PaymentMethodRepository
	cfg         Config
	hooks       Hooks
	log         *logger.Logger
	now         func() time.Time
}

// NewSaleUseCase construye el motor de ventas.
func NewSaleUseCase(tx TxRunner, saleRepo repository.SaleRepository, paymentRepo repository.PaymentMethodRepository, cfg Config, hooks Hooks, log *logger.Logger) *SaleUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SaleUseCase{
		tx:          tx,
		saleRepo:    saleRepo,
		paymentRepo: paymentRepo,
		cfg:         cfg,
		hooks:       hooks,
		log:         log.Component("sales"),
		now:         time.Now,
	}
}

// Escalas de las columnas: qty NUMERIC(14,3), montos NUMERIC(14,2).
const (
	qtyScale   = 3
	moneyScale = 2
)

var (
	maxQty   = decimal.New(1, 14-qtyScale)   // 10^11
	maxMoney = decimal.New(1, 14-moneyScale) // 10^12
)

type cartLine struct {
	productID string
	qty       decimal.Decimal
	unitPrice decimal.Decimal
	lineTotal decimal.Decimal
}

// filterItems descarta en silencio las líneas sin product_id o con qty/unit_price ausentes
// o <= 0 una vez redondeados a la escala de la columna.
func filterItems(items []dto.SaleItemInput) []cartLine {
	lines := make([]cartLine, 0, len(items))
	for _, it := range items {
		id := strings.TrimSpace(it.ProductID)
		if id == "" || it.Qty == nil || it.UnitPrice == nil {
			continue
		}
		qty := it.Qty.Round(qtyScale)
		price := it.UnitPrice.Round(moneyScale)
		if !qty.IsPositive() || !price.IsPositive() {
			continue
		}
		lines = append(lines, cartLine{
			productID: id,
			qty:       qty,
			unitPrice: price,
			lineTotal: qty.Mul(price).Round(moneyScale),
		})
	}
	return lines
}

// checkRange rechaza cantidades o montos que no caben en la columna.
func checkRange(lines []cartLine, subtotal, discount decimal.Decimal) error {
	for _, l := range lines {
		if l.qty.GreaterThanOrEqual(maxQty) || l.unitPrice.GreaterThanOrEqual(maxMoney) || l.lineTotal.GreaterThanOrEqual(maxMoney) {
			return fmt.Errorf("%w: cantidad o precio fuera de rango", domain.ErrInvalidInput)
		}
	}
	if subtotal.GreaterThanOrEqual(maxMoney) || discount.GreaterThanOrEqual(maxMoney) {
		return fmt.Errorf("%w: monto fuera de rango", domain.ErrInvalidInput)
	}
	return nil
}

func distinctProductIDs(lines []cartLine) []string {
	seen := make(map[string]struct{}, len(lines))
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.productID]; ok {
			continue
		}
		seen[l.productID] = struct{}{}
		ids = append(ids, l.productID)
	}
	return ids
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// CreateSale valida el carrito, asigna el consecutivo y persiste venta, líneas y stock de forma atómica.
// El precio cobrado es el del carrito, no el del catálogo.
func (uc *SaleUseCase) CreateSale(ctx context.Context, tenantID string, in dto.CreateSaleRequest) (*dto.CreateSaleResponse, error) {
	if tenantID == "" {
		return nil, domain.ErrTenantRequired
	}

	currency := entity.Currency(in.Currency)
	if !currency.Valid() {
		return nil, fmt.Errorf("%w: moneda inválida", domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: datos de venta inválidos", domain.ErrInvalidInput)
	}
	lines := filterItems(in.Items)
	if len(lines) == 0 {
		return nil, domain.ErrInvalidItems
	}
	discount := decimal.Zero
	if in.Discount != nil {
		if in.Discount.IsNegative() {
			return nil, fmt.Errorf("%w: el descuento no puede ser negativo", domain.ErrInvalidInput)
		}
		discount = in.Discount.Round(moneyScale)
	}

	paymentMethodID := trimmedOrNil(in.PaymentMethodID)
	if paymentMethodID != nil {
		pm, err := uc.paymentRepo.GetByID(ctx, tenantID, *paymentMethodID)
		if err != nil {
			return nil, err
		}
		if pm == nil {
			return nil, fmt.Errorf("%w: medio de pago no existe", domain.ErrInvalidInput)
		}
	}

	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.lineTotal)
	}
	if err := checkRange(lines, subtotal, discount); err != nil {
		return nil, err
	}
	total := decimal.Max(decimal.Zero, subtotal.Sub(discount))

	ids := distinctProductIDs(lines)
	sale := &entity.Sale{
		ID:              uuid.New().String(),
		TenantID:        tenantID,
		Currency:        currency,
		PaymentMethodID: paymentMethodID,
		CustomerName:    trimmedOrNil(in.CustomerName),
		CustomerPhone:   trimmedOrNil(in.CustomerPhone),
		Subtotal:        subtotal,
		Discount:        discount,
		Total:           total,
	}

	err := uc.tx.RunSale(ctx, func(counterRepo repository.CounterRepository, saleRepo repository.SaleRepository, productRepo repository.ProductRepository) error {
		found, err := productRepo.GetByIDs(ctx, tenantID, ids)
		if err != nil {
			return err
		}
		if len(found) < len(ids) {
			return domain.ErrUnknownProduct
		}

		seq, err := nextReceiptSeq(ctx, counterRepo, tenantID)
		if err != nil {
			return err
		}
		sale.ReceiptNumber = entity.FormatReceiptNumber(seq)
		sale.CreatedAt = uc.now()

		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}
		for _, l := range lines {
			item := &entity.SaleItem{
				ID:        uuid.New().String(),
				SaleID:    sale.ID,
				ProductID: l.productID,
				Qty:       l.qty,
				UnitPrice: l.unitPrice,
				LineTotal: l.lineTotal,
			}
			if err := saleRepo.CreateItem(ctx, item); err != nil {
				return err
			}
			if err := productRepo.DecrementStock(ctx, tenantID, l.productID, l.qty, uc.cfg.AllowOversell); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("tenant_id", tenantID).
		Str("receipt_number", sale.ReceiptNumber).
		Str("currency", string(sale.Currency)).
		Str("total", sale.Total.String()).
		Msg("venta creada")
	uc.afterCommit(ctx, sale)

	return &dto.CreateSaleResponse{ID: sale.ID, ReceiptNumber: sale.ReceiptNumber}, nil
}

// nextReceiptSeq incrementa el contador; si la fila no existe la crea en 0 y reintenta una vez.
func nextReceiptSeq(ctx context.Context, counters repository.CounterRepository, tenantID string) (int64, error) {
	seq, found, err := counters.Increment(ctx, tenantID, entity.ReceiptCounterKey)
	if err != nil {
		return 0, err
	}
	if found {
		return seq, nil
	}
	if err := counters.EnsureExists(ctx, tenantID, entity.ReceiptCounterKey); err != nil {
		return 0, err
	}
	seq, found, err = counters.Increment(ctx, tenantID, entity.ReceiptCounterKey)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("contador %s no disponible para tenant %s", entity.ReceiptCounterKey, tenantID)
	}
	return seq, nil
}

func (uc *SaleUseCase) afterCommit(ctx context.Context, sale *entity.Sale) {
	if uc.hooks.Cache != nil {
		if err := uc.hooks.Cache.Invalidate(ctx, sale.TenantID); err != nil {
			uc.log.Warn().Err(err).Str("tenant_id", sale.TenantID).Msg("invalidar cache del dashboard")
		}
	}
	if uc.hooks.Events != nil {
		uc.hooks.Events.PublishSaleCreated(sale.TenantID, SaleCreatedEvent{
			ID:            sale.ID,
			ReceiptNumber: sale.ReceiptNumber,
			Currency:      string(sale.Currency),
			Total:         sale.Total,
		})
	}
	if uc.hooks.Metrics != nil {
		uc.hooks.Metrics.SaleCreated(string(sale.Currency))
	}
}
