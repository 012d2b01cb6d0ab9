package validation

// CredentialsValidator provides validation for login credentials
type CredentialsValidator struct {
	validator *Validator
}

// NewCredentialsValidator creates a new credentials validator
func NewCredentialsValidator() *CredentialsValidator {
	return &CredentialsValidator{
		validator: NewValidator(),
	}
}

// ValidateLogin validates the inputs for a login attempt
func (cv *CredentialsValidator) ValidateLogin(email, password string) error {
	validationError := NewValidationError()

	if !cv.validator.IsNonEmptyString(email) {
		validationError.AddRequiredError("email")
	} else if !cv.validator.IsValidEmail(email) {
		validationError.AddInvalidFormatError("email", email, "user@example.com")
	}

	if !cv.validator.IsNonEmptyString(password) {
		validationError.AddRequiredError("password")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateAPIKey validates that an API key is present
func (cv *CredentialsValidator) ValidateAPIKey(apiKey string) error {
	if !cv.validator.IsNonEmptyString(apiKey) {
		validationError := NewValidationError()
		validationError.AddRequiredError("api_key")
		return validationError
	}
	return nil
}
