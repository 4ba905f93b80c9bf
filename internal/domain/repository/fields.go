package repository

// ProductField columna editable de products. El valor es el nombre de la columna.
type ProductField string

const (
	ProductName              ProductField = "name"
	ProductCategory          ProductField = "category"
	ProductSKU               ProductField = "sku"
	ProductCostCOP           ProductField = "cost_cop"
	ProductCostUSD           ProductField = "cost_usd"
	ProductPriceCOP          ProductField = "price_cop"
	ProductPriceUSD          ProductField = "price_usd"
	ProductStock             ProductField = "stock"
	ProductLowStockThreshold ProductField = "low_stock_threshold"
	ProductIsActive          ProductField = "is_active"
)

// AllProductFields todas las columnas editables de products.
var AllProductFields = []ProductField{
	ProductName, ProductCategory, ProductSKU, ProductCostCOP, ProductCostUSD,
	ProductPriceCOP, ProductPriceUSD, ProductStock, ProductLowStockThreshold, ProductIsActive,
}

// PaymentMethodField columna editable de payment_methods.
type PaymentMethodField string

const (
	PaymentMethodLabel     PaymentMethodField = "label"
	PaymentMethodIsActive  PaymentMethodField = "is_active"
	PaymentMethodSortOrder PaymentMethodField = "sort_order"
)

// AllPaymentMethodFields todas las columnas editables de payment_methods.
var AllPaymentMethodFields = []PaymentMethodField{PaymentMethodLabel, PaymentMethodIsActive, PaymentMethodSortOrder}

// UserField campo editable de users. UserPassword cubre password_salt y password_hash.
type UserField string

const (
	UserRole     UserField = "role"
	UserIsActive UserField = "is_active"
	UserPassword UserField = "password"
)

// AllUserFields todos los campos editables de users.
var AllUserFields = []UserField{UserRole, UserIsActive, UserPassword}
