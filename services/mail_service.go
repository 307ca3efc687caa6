package services

import (
	"RealEstateAPI/config/environment"
	"RealEstateAPI/utils"
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

// MailService sends transactional email over SMTP (STARTTLS).
type MailService struct {
	Dialer *gomail.Dialer
	From   string
}

// NewMailService initializes the SMTP dialer from environment
func NewMailService() *MailService {
	port, err := strconv.Atoi(environment.GetSMTPPort())
	if err != nil {
		port = 587
	}
	user := environment.GetSMTPUser()
	return &MailService{
		Dialer: gomail.NewDialer(environment.GetSMTPHost(), port, user, environment.GetSMTPPassword()),
		From:   fmt.Sprintf("\"RealEstate\" <%s>", user),
	}
}

// SendWelcomeEmail delivers the registration greeting. Callers treat
// failures as non-fatal.
func (s *MailService) SendWelcomeEmail(to, userName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Welcome to Real Estate App!")
	m.SetBody("text/html", utils.WelcomeEmail(userName))

	return s.Dialer.DialAndSend(m)
}
