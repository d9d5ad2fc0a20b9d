package i18n

// entry binds a message ID from the active.*.toml files to the upstream
// backend text it localizes.
type entry struct {
	id     string
	source string
}

// errorCatalog lists every known backend error message. The slice order is
// the partial-match priority: when several keys are contained in the same
// input, the first one listed here wins, so reordering entries changes
// behavior.
var errorCatalog = []entry{
	// Supabase auth
	{"InvalidLoginCredentials", "Invalid login credentials"},
	{"EmailNotConfirmed", "Email not confirmed"},
	{"UserAlreadyRegistered", "User already registered"},
	{"PasswordTooShort", "Password should be at least 6 characters"},
	{"EmailInvalidFormat", "Unable to validate email address: invalid format"},
	{"EmailRateLimitExceeded", "Email rate limit exceeded"},
	{"InvalidEmailOrPassword", "Invalid email or password"},
	{"EmailLinkInvalid", "Email link is invalid or has expired"},
	{"TokenExpired", "Token has expired or is invalid"},
	{"UserNotFound", "User not found"},
	{"NewPasswordSameAsOld", "New password should be different from the old password"},
	{"PasswordTooWeak", "Password is too weak"},
	{"SignupInvalidPassword", "Signup requires a valid password"},
	{"UserAlreadyExists", "User already exists"},
	{"EmailAddressInvalid", "Email address is invalid"},
	{"EmailOrPhoneOnly", "Only an email address or phone number should be provided"},

	// network
	{"FailedToFetch", "Failed to fetch"},
	{"NetworkRequestFailed", "Network request failed"},
	{"Timeout", "timeout"},

	// Postgres
	{"DuplicateKeyValue", "duplicate key value"},
	{"ForeignKeyViolation", "violates foreign key constraint"},
	{"NotNullViolation", "violates not-null constraint"},

	// generic
	{"GenericError", "An error occurred"},
	{"SomethingWentWrong", "Something went wrong"},
	{"InternalServerError", "Internal server error"},
	{"ServiceUnavailable", "Service unavailable"},
}

// successCatalog lists the known backend success messages. Lookup is exact
// only, so order carries no meaning here.
var successCatalog = []entry{
	{"CheckEmailConfirmation", "Check your email for the confirmation link"},
	{"PasswordUpdated", "Password updated successfully"},
	{"EmailUpdated", "Email updated successfully"},
	{"UserUpdated", "User updated successfully"},
}

// Message IDs of the hard-coded uniqueness-violation replies, evaluated
// before any table lookup.
const (
	msgDuplicateNumeroProcesso = "DuplicateNumeroProcesso"
	msgDuplicateValue          = "DuplicateValue"
)
