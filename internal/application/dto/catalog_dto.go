package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductColorDTO color ofrecido por un producto.
type ProductColorDTO struct {
	Color      string `json:"color" validate:"omitempty,max=20"`
	ColorTitle string `json:"color_title" validate:"required,max=50"`
}

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Code        string            `json:"code" validate:"required,max=50"`
	Name        string            `json:"name" validate:"required,max=200"`
	Description string            `json:"description"`
	UnitPrice   decimal.Decimal   `json:"unit_price"`
	Colors      []ProductColorDTO `json:"colors" validate:"dive"`
	Sizes       []string          `json:"sizes" validate:"dive,oneof=XS S M L XL XXL XXXL FREESIZE"`
}

// UpdateProductRequest entrada para actualizar un producto; los campos nil no se tocan.
type UpdateProductRequest struct {
	Code        *string           `json:"code" validate:"omitempty,min=1,max=50"`
	Name        *string           `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string           `json:"description"`
	UnitPrice   *decimal.Decimal  `json:"unit_price"`
	Colors      []ProductColorDTO `json:"colors" validate:"omitempty,dive"`
	Sizes       []string          `json:"sizes" validate:"omitempty,dive,oneof=XS S M L XL XXL XXXL FREESIZE"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string            `json:"id"`
	Code        string            `json:"code"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	UnitPrice   decimal.Decimal   `json:"unit_price"`
	Colors      []ProductColorDTO `json:"colors"`
	Sizes       []string          `json:"sizes"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CustomerRequest entrada para crear o actualizar un cliente.
type CustomerRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"omitempty,max=300"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerListResponse lista paginada de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// WarehouseRequest entrada para crear o actualizar una bodega.
type WarehouseRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Address string `json:"address" validate:"omitempty,max=300"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WarehouseListResponse lista paginada de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// EmployeeRequest entrada para crear o actualizar un empleado.
type EmployeeRequest struct {
	Name       string          `json:"name" validate:"required,max=200"`
	Department string          `json:"department" validate:"required,max=100"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	Status     string          `json:"status" validate:"omitempty,oneof=active inactive"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Department string          `json:"department"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// EmployeeListResponse lista paginada de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
