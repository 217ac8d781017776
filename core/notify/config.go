package notify

// Config holds configuration for the messaging provider.
type Config struct {
	// Endpoint is the base URL of the provider API.
	Endpoint string `mapstructure:"endpoint" default:"https://api.twilio.com"`
	// AccountSID identifies the provider account.
	AccountSID string `mapstructure:"account_sid" default:""`
	// AuthToken is the provider API secret.
	AuthToken string `mapstructure:"auth_token" default:""`
	// FromNumber is the sending phone number in E.164 format.
	FromNumber string `mapstructure:"from_number" default:""`
	// CallbackURL is where the provider posts delivery-status updates.
	// Empty disables status callbacks.
	CallbackURL string `mapstructure:"callback_url" default:""`
	// Body is the text sent along with the daily image.
	Body string `mapstructure:"body" default:"Here is your daily image!"`
	// TimeoutSeconds is the request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
