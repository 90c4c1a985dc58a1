package services

import (
	"context"
	"log"
	"time"

	"restaurant-backend/models"
	"restaurant-backend/repositories"
)

type SalesService struct {
	salesRepo   *repositories.SalesRepository
	mailer      *models.EmailService
	reportEmail string
}

// NewSalesService accepts a nil mailer; the daily report is then skipped.
func NewSalesService(salesRepo *repositories.SalesRepository, mailer *models.EmailService, reportEmail string) *SalesService {
	return &SalesService{salesRepo: salesRepo, mailer: mailer, reportEmail: reportEmail}
}

func parseSalesDate(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, models.ValidationError{
			Field:   "sales_date",
			Message: "sales date must be in YYYY-MM-DD format",
		}
	}
	return date, nil
}

func (s *SalesService) Create(ctx context.Context, req models.CreateSaleRequest) (*models.Sale, error) {
	date, err := parseSalesDate(req.SalesDate)
	if err != nil {
		return nil, err
	}

	sale := &models.Sale{
		TotalSales:    req.TotalSales,
		CashSales:     req.CashSales,
		CardSales:     req.CardSales,
		TransferSales: req.TransferSales,
		SalesDate:     date,
	}

	if err := s.salesRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	// Best effort; a mail failure never fails the request.
	if s.mailer != nil && s.reportEmail != "" {
		if err := s.mailer.SendDailySalesReport(s.reportEmail, sale); err != nil {
			log.Println("Failed to send daily sales report:", err)
		}
	}

	return sale, nil
}

func (s *SalesService) List(ctx context.Context) ([]models.Sale, error) {
	return s.salesRepo.FindAll(ctx)
}

func (s *SalesService) Get(ctx context.Context, id int) (*models.Sale, error) {
	sale, err := s.salesRepo.FindByID(ctx, id)
	if err != nil {
		if err == models.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	return sale, nil
}

func (s *SalesService) Update(ctx context.Context, id int, req models.UpdateSaleRequest) (*models.Sale, error) {
	sale, err := s.salesRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TotalSales != nil {
		sale.TotalSales = *req.TotalSales
	}
	if req.CashSales != nil {
		sale.CashSales = *req.CashSales
	}
	if req.CardSales != nil {
		sale.CardSales = *req.CardSales
	}
	if req.TransferSales != nil {
		sale.TransferSales = *req.TransferSales
	}
	if req.SalesDate != nil {
		date, err := parseSalesDate(*req.SalesDate)
		if err != nil {
			return nil, err
		}
		sale.SalesDate = date
	}

	if err := s.salesRepo.Update(ctx, sale); err != nil {
		return nil, err
	}

	return sale, nil
}

func (s *SalesService) Delete(ctx context.Context, id int) error {
	if _, err := s.salesRepo.FindByID(ctx, id); err != nil {
		return err
	}

	return s.salesRepo.Delete(ctx, id)
}
