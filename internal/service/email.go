package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"ayudame3d-backend/internal/logger"
)

const logoURL = "https://ayudame3d.org/wp-content/uploads/2020/10/logobannerwhite_182x50.png"

type emailService struct {
	apiKey      string
	from        string
	fromName    string
	frontendURL string
}

func NewEmailService(apiKey, from, fromName, frontendURL string) EmailService {
	return &emailService{
		apiKey:      apiKey,
		from:        from,
		fromName:    fromName,
		frontendURL: frontendURL,
	}
}

// wrap puts the content block inside the fixed banner header and footer every
// lifecycle mail shares.
func (s *emailService) wrap(content string) string {
	banner := fmt.Sprintf(`<div style="background-color: #40519f; color: #ffffff; padding: 40px 10px; text-align: center; width: 100%%;"><img alt="Ayúdame3D" title="Ayúdame3D" src="%s" /></div>`, logoURL)
	return banner + fmt.Sprintf("<div>%s</div>", content) + banner
}

func (s *emailService) send(ctx context.Context, to, subject, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.from)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, "", htmlContent)

	logger.ExternalServiceCall("sendgrid", "Send", "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	logger.ExternalServiceResult("sendgrid", "Send", err, "subject", subject)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendNewOrder(ctx context.Context, helperEmail string, orderID int32) error {
	url := fmt.Sprintf("%s/orders/%d", s.frontendURL, orderID)
	return s.send(ctx, helperEmail,
		"New Ayúdame3D request",
		s.wrap(
			"<h1>Hello! You have a new Ayúdame3D request</h1>"+
				fmt.Sprintf(`<p>A new request has just arrived in your Helper account. See all the details here: <a href="%s">%s</a></p>`, url, url)+
				"Thank you!",
		),
	)
}

func (s *emailService) SendOrderAccepted(ctx context.Context, orderID int32) error {
	return s.send(ctx, s.from,
		fmt.Sprintf("Request %d has been accepted", orderID),
		s.wrap(
			"<h1>Congratulations!</h1>"+
				fmt.Sprintf("<p>Order %d has been accepted.</p>", orderID),
		),
	)
}

func (s *emailService) SendOrderRejected(ctx context.Context, orderID int32) error {
	return s.send(ctx, s.from,
		fmt.Sprintf("ATTENTION: order %d has been rejected", orderID),
		s.wrap(
			"<h1>Attention!</h1>"+
				fmt.Sprintf("<p>Order %d has been rejected.</p>", orderID),
		),
	)
}

func (s *emailService) SendOrderStatusChanged(ctx context.Context, orderID int32, statusName string) error {
	return s.send(ctx, s.from,
		fmt.Sprintf("Order %d has changed status", orderID),
		fmt.Sprintf("<h1>Order %d has changed status</h1><p>Order %d has moved to %s.</p>", orderID, orderID, statusName),
	)
}

func (s *emailService) SendOrderNewData(ctx context.Context, orderID int32, statusName string) error {
	return s.send(ctx, s.from,
		fmt.Sprintf("Order %d has been updated", orderID),
		s.wrap(
			fmt.Sprintf("<h1>Order %d has new data</h1><p>Order %d is currently in %s.</p>", orderID, orderID, statusName),
		),
	)
}

func (s *emailService) SendOrderCompleted(ctx context.Context, helperEmail string, orderID int32) error {
	videoURL := "https://youtu.be/fGFLQlRpeQI"
	formURL := "https://docs.google.com/forms/d/e/1FAIpQLSfaUth4_hhjTopk594-ia6RVkkq2Fq9mcRRhAq8ggW0SbBMgA/viewform?usp=sf_link"
	return s.send(ctx, helperEmail,
		fmt.Sprintf("Ayúdame3D has approved your submission for order %d", orderID),
		s.wrap(
			"<h1>All good!</h1>"+
				"<p>Thank you for all the attached information! We have checked that everything is correct, so we are moving on to preparing the package.</p>"+
				fmt.Sprintf(`<p>The following video shows <b>how to prepare the shipment</b>: <a href="%s">%s</a></p>`, videoURL, videoURL)+
				fmt.Sprintf(`<p>Finally, please fill in <b>this form to pick a pickup day, time and address</b>: <a href="%s">%s</a></p>`, formURL, formURL),
		),
	)
}

func (s *emailService) SendPasswordReset(ctx context.Context, email, token string) error {
	url := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, token)
	return s.send(ctx, email,
		"Reset your Ayúdame3D password",
		s.wrap(
			"<h1>You requested a password reset on Ayúdame3D</h1>"+
				fmt.Sprintf(`<p>To reset your password, follow this link: <a href="%s">%s</a></p>`, url, url)+
				"<p>If you did not request this, you can ignore this mail.</p>",
		),
	)
}
