package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bakeapi/internal/model"
	"bakeapi/internal/repository"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrForbidden       = errors.New("forbidden: user does not have permission for this action")
)

// ProductService defines operations for products
type ProductService interface {
	CreateProduct(ctx context.Context, userID int, req model.CreateProductRequest) (*model.Product, error)
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	GetProductByID(ctx context.Context, productID int64) (*model.Product, error)
	GetUserProducts(ctx context.Context, userID int) ([]model.Product, error)
	UpdateProduct(ctx context.Context, productID int64, callerID int, req model.UpdateProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, productID int64, callerID int) error
}

type productService struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo repository.ProductRepository, userRepo repository.UserRepository) ProductService {
	return &productService{productRepo: productRepo, userRepo: userRepo}
}

func (s *productService) CreateProduct(ctx context.Context, userID int, req model.CreateProductRequest) (*model.Product, error) {
	status := req.Status
	if status == "" {
		status = model.ProductStatusForSale
	}

	product := &model.Product{
		UserID:    userID,
		Name:      req.Name,
		Price:     req.Price,
		Status:    status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product in repo: %w", err)
	}
	return product, nil
}

func (s *productService) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID int64) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *productService) GetUserProducts(ctx context.Context, userID int) ([]model.Product, error) {
	products, err := s.productRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user products from repo: %w", err)
	}
	return products, nil
}

// canMutate allows the owner, or an administrator per the caller's current
// persisted role. Token claims are never consulted for this decision.
func (s *productService) canMutate(ctx context.Context, product *model.Product, callerID int) (bool, error) {
	if product.UserID == callerID {
		return true, nil
	}
	caller, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		return false, fmt.Errorf("failed to find caller for permission check: %w", err)
	}
	return caller != nil && caller.Role == model.RoleAdmin, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID int64, callerID int, req model.UpdateProductRequest) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product for update: %w", err)
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}

	allowed, err := s.canMutate(ctx, existing, callerID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrForbidden
	}

	// Apply updates
	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Price != nil {
		existing.Price = *req.Price
	}
	if req.Status != nil {
		existing.Status = *req.Status
	}

	if err := s.productRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update product in repo: %w", err)
	}
	return existing, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID int64, callerID int) error {
	existing, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to find product for deletion: %w", err)
	}
	if existing == nil {
		return ErrProductNotFound
	}

	allowed, err := s.canMutate(ctx, existing, callerID)
	if err != nil {
		return err
	}
	if !allowed {
		return ErrForbidden
	}

	deleted, err := s.productRepo.Delete(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product in repo: %w", err)
	}
	if !deleted {
		return ErrProductNotFound
	}
	return nil
}
