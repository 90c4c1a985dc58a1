package models

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

func (s *EmailService) SendDailySalesReport(toEmail string, sale *Sale) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Daily Sales Report - %s", sale.SalesDate.Format("2006-01-02")))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .report-box { background-color: #fff7ed; padding: 20px; margin: 20px 0; border-radius: 8px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <h2 style="color: #333;">Daily Sales Report</h2>
        <p>Sales summary for <strong>%s</strong>:</p>

        <div class="report-box">
            <p><strong>Total:</strong> %s</p>
            <p><strong>Cash:</strong> %s</p>
            <p><strong>Card:</strong> %s</p>
            <p><strong>Transfer:</strong> %s</p>
        </div>

        <div class="footer">
            <p>This is an automated email. Please do not reply.</p>
        </div>
    </div>
</body>
</html>
	`,
		sale.SalesDate.Format("2006-01-02"),
		sale.TotalSales.StringFixed(2),
		sale.CashSales.StringFixed(2),
		sale.CardSales.StringFixed(2),
		sale.TransferSales.StringFixed(2),
	)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
