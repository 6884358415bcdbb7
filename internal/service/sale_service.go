package service

import (
	"strings"
	"time"

	"chemiflex-backend/internal/model"
	"chemiflex-backend/internal/repository"
	"chemiflex-backend/pkg/apperr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleCreateRequest carries a new order. Items must be non-empty; a blank
// uuid gets a server-generated correlation code.
type SaleCreateRequest struct {
	Code       string          `json:"uuid"`
	Date       *time.Time      `json:"date"`
	CustomerID *uuid.UUID      `json:"customerId"`
	Address    *string         `json:"address"`
	Items      []SaleItemInput `json:"items"`
}

// SaleUpdateRequest applies partial field updates. Omitted fields stay
// untouched. Items semantics: absent (nil) means no change, present means
// full replacement and must be non-empty.
type SaleUpdateRequest struct {
	Code       *string         `json:"uuid"`
	Date       *time.Time      `json:"date"`
	CustomerID *uuid.UUID      `json:"customerId"`
	Address    *string         `json:"address"`
	Items      []SaleItemInput `json:"items"`
}

// SaleService is the aggregate over a sale and its line items: items are
// never partially replaced and TotalAmount always equals the sum of the
// current items' line totals.
type SaleService interface {
	Create(req *SaleCreateRequest) (*model.SaleResponse, error)
	Get(id uuid.UUID) (*model.SaleResponse, error)
	List(page, pageSize int) ([]model.SaleListItem, int64, error)
	Update(id uuid.UUID, req *SaleUpdateRequest) (*model.SaleResponse, error)
	Delete(id uuid.UUID) error
}

type saleService struct {
	saleRepo repository.SaleRepository
	db       *gorm.DB
	rules    ItemRules
}

func NewSaleService(saleRepo repository.SaleRepository, db *gorm.DB, rules ItemRules) SaleService {
	return &saleService{saleRepo: saleRepo, db: db, rules: rules}
}

func (s *saleService) Create(req *SaleCreateRequest) (*model.SaleResponse, error) {
	items, total, err := NormalizeItems(req.Items, s.rules)
	if err != nil {
		return nil, err
	}

	code := strings.TrimSpace(req.Code)
	if code == "" {
		code = uuid.New().String()
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	sale := model.Sale{
		Code:        code,
		Date:        date,
		CustomerID:  req.CustomerID,
		Address:     req.Address,
		TotalAmount: total,
		Items:       items,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.saleRepo.Create(tx, &sale)
	})
	if err != nil {
		return nil, apperr.FromDB(err, "Referenced entity not found", "Sale with this uuid already exists")
	}

	return s.Get(sale.ID)
}

func (s *saleService) Get(id uuid.UUID) (*model.SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		return nil, apperr.FromDB(err, "Sale not found", "")
	}
	return sale.ToResponse(), nil
}

func (s *saleService) List(page, pageSize int) ([]model.SaleListItem, int64, error) {
	items, total, err := s.saleRepo.List(page, pageSize)
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return items, total, nil
}

func (s *saleService) Update(id uuid.UUID, req *SaleUpdateRequest) (*model.SaleResponse, error) {
	// nil = field omitted = no change; a present items array must be non-empty
	if req.Items != nil && len(req.Items) == 0 {
		return nil, apperr.Validation("If provided, items must be a non-empty array")
	}

	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		return nil, apperr.FromDB(err, "Sale not found", "")
	}

	if req.Code != nil && strings.TrimSpace(*req.Code) != "" {
		sale.Code = strings.TrimSpace(*req.Code)
	}
	if req.Date != nil {
		sale.Date = *req.Date
	}
	if req.CustomerID != nil {
		sale.CustomerID = req.CustomerID
	}
	if req.Address != nil {
		sale.Address = req.Address
	}

	var newItems []model.SaleItem
	if req.Items != nil {
		var total decimal.Decimal
		newItems, total, err = NormalizeItems(req.Items, s.rules)
		if err != nil {
			return nil, err
		}
		sale.TotalAmount = total
	}

	// Delete-then-insert-then-update-parent as one transaction: no reader may
	// observe the sale between item sets or with a stale total.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if newItems != nil {
			if err := s.saleRepo.ReplaceItems(tx, sale.ID, newItems); err != nil {
				return err
			}
		}
		return s.saleRepo.Save(tx, sale)
	})
	if err != nil {
		return nil, apperr.FromDB(err, "Referenced entity not found", "Sale with this uuid already exists")
	}

	return s.Get(sale.ID)
}

func (s *saleService) Delete(id uuid.UUID) error {
	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		return apperr.FromDB(err, "Sale not found", "")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.saleRepo.Delete(tx, sale)
	})
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}
