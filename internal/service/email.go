package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host, port, username, password, from string) EmailService {
	p, _ := strconv.Atoi(port)
	return &emailService{
		host:     host,
		port:     p,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendReservationConfirmation(ctx context.Context, email, name, vehicleName string, start, end time.Time, price float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Reservation confirmed - %s", vehicleName))

	body := fmt.Sprintf("Hello %s,\n\nYour reservation for %s is confirmed.\n\nPickup: %s\nReturn: %s\nTotal price: %.2f\n\nBest regards,\nThe Car Rental Team",
		name, vehicleName, start.Format("2006-01-02 15:04"), end.Format("2006-01-02 15:04"), price)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send reservation confirmation: %w", err)
	}

	return nil
}

func (s *emailService) SendCancellationNotice(ctx context.Context, email, name, vehicleName, reason string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Reservation cancelled - %s", vehicleName))

	body := fmt.Sprintf("Hello %s,\n\nYour reservation for %s has been cancelled.", name, vehicleName)
	if reason != "" {
		body += fmt.Sprintf("\n\nReason: %s", reason)
	}
	body += "\n\nBest regards,\nThe Car Rental Team"

	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send cancellation notice: %w", err)
	}

	return nil
}

func (s *emailService) SendReturnReminder(ctx context.Context, email, name, vehicleName string, end time.Time) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Return reminder - %s", vehicleName))

	body := fmt.Sprintf("Hello %s,\n\nThis is a reminder that your rental of %s is due back on %s.\n\nBest regards,\nThe Car Rental Team",
		name, vehicleName, end.Format("2006-01-02 15:04"))
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send return reminder: %w", err)
	}

	return nil
}
