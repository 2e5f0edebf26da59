package config

import (
	"github.com/kelseyhightower/envconfig"
)

// App holds every runtime setting the service reads from the environment.
type App struct {
	// HTTP
	Port string `envconfig:"PORT" default:"8080"`
	// Persistence: "memory" or "dynamodb". The DynamoDB table name comes
	// from REGISTRATIONS_TABLE, read by the repository itself.
	RegistrationStore string `envconfig:"REGISTRATION_STORE" default:"dynamodb"`
	// Razorpay
	RazorpayKeyID         string `envconfig:"RAZORPAY_KEY_ID"`
	RazorpayKeySecret     string `envconfig:"RAZORPAY_KEY_SECRET"`
	RazorpayWebhookSecret string `envconfig:"RAZORPAY_WEBHOOK_SECRET"`
	// Program fee charged per registration, in the currency's smallest unit.
	FeeAmount   int64  `envconfig:"PROGRAM_FEE_AMOUNT" default:"50000"`
	FeeCurrency string `envconfig:"PROGRAM_FEE_CURRENCY" default:"INR"`
	EventName   string `envconfig:"EVENT_NAME" default:"Registration"`
	// Admin API
	AdminJWTSecret string `envconfig:"ADMIN_JWT_SECRET"`
	// Mail
	SMTPHost      string `envconfig:"SMTP_HOST"`
	SMTPPort      int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername  string `envconfig:"SMTP_USERNAME"`
	SMTPPassword  string `envconfig:"SMTP_PASSWORD"`
	MailFrom      string `envconfig:"MAIL_FROM"`
	OperatorEmail string `envconfig:"OPERATOR_EMAIL"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
