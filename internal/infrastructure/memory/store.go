// Package memory implementa los puertos de persistencia en memoria.
// Se usa en tests y con STORE_DRIVER=memory; los datos se pierden al reiniciar.
package memory

import (
	"maps"
	"slices"
	"sync"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

type counterKey struct {
	tenantID string
	key      string
}

// state es el contenido completo del almacén. Las entidades se guardan por valor.
type state struct {
	tenants        map[string]entity.Tenant
	users          map[string]entity.User
	sessions       map[string]entity.Session // por token_hash
	products       map[string]entity.Product
	paymentMethods map[string]entity.PaymentMethod
	sales          map[string]entity.Sale
	saleItems      map[string][]entity.SaleItem // por sale_id
	counters       map[counterKey]int64
}

func newState() *state {
	return &state{
		tenants:        make(map[string]entity.Tenant),
		users:          make(map[string]entity.User),
		sessions:       make(map[string]entity.Session),
		products:       make(map[string]entity.Product),
		paymentMethods: make(map[string]entity.PaymentMethod),
		sales:          make(map[string]entity.Sale),
		saleItems:      make(map[string][]entity.SaleItem),
		counters:       make(map[counterKey]int64),
	}
}

func (s *state) clone() *state {
	items := make(map[string][]entity.SaleItem, len(s.saleItems))
	for k, v := range s.saleItems {
		items[k] = slices.Clone(v)
	}
	return &state{
		tenants:        maps.Clone(s.tenants),
		users:          maps.Clone(s.users),
		sessions:       maps.Clone(s.sessions),
		products:       maps.Clone(s.products),
		paymentMethods: maps.Clone(s.paymentMethods),
		sales:          maps.Clone(s.sales),
		saleItems:      items,
		counters:       maps.Clone(s.counters),
	}
}

// Store almacén en memoria. Las transacciones se serializan con mu y trabajan
// sobre una copia que reemplaza al estado solo si fn termina sin error.
type Store struct {
	mu sync.Mutex
	st *state
}

// New crea un almacén vacío.
func New() *Store {
	return &Store{st: newState()}
}

// view da acceso al estado: el de la transacción en curso o el compartido bajo lock.
type view struct {
	store *Store
	tx    *state
}

func (v view) with(fn func(st *state) error) error {
	if v.tx != nil {
		return fn(v.tx)
	}
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	return fn(v.store.st)
}

func (s *Store) shared() view { return view{store: s} }

// Repositorios fuera de transacción.

func (s *Store) Tenants() *TenantRepo               { return &TenantRepo{v: s.shared()} }
func (s *Store) Users() *UserRepo                   { return &UserRepo{v: s.shared()} }
func (s *Store) Sessions() *SessionRepo             { return &SessionRepo{v: s.shared()} }
func (s *Store) Products() *ProductRepo             { return &ProductRepo{v: s.shared()} }
func (s *Store) PaymentMethods() *PaymentMethodRepo { return &PaymentMethodRepo{v: s.shared()} }
func (s *Store) Sales() *SaleRepo                   { return &SaleRepo{v: s.shared()} }
func (s *Store) Counters() *CounterRepo             { return &CounterRepo{v: s.shared()} }
func (s *Store) Analytics() *AnalyticsRepo          { return &AnalyticsRepo{v: s.shared()} }

