package constants

// Roles
const (
	ROLE_USER  = "user"
	ROLE_ADMIN = "admin"
)

var ROLE = []string{ROLE_USER, ROLE_ADMIN}

// Transaction statuses
const (
	STATUS_WAITING_PAYMENT      = "waiting-for-payment"
	STATUS_PENDING              = "pending"
	STATUS_WAITING_CONFIRMATION = "waiting-for-confirmation"
	STATUS_SUCCESS              = "success"
	STATUS_FAILED               = "failed"
	STATUS_CANCELED             = "canceled"
)

// Promo statuses
const (
	PROMO_ACTIVE  = "active"
	PROMO_EXPIRED = "expired"
)

// Response messages
const (
	ERROR_INPUT                           = "Invalid input"
	ERROR_INTERNAL_ERROR                  = "Internal server error"
	ERROR_CREATE                          = "Create failed"
	ERROR_EDIT                            = "Update failed"
	ERROR_DELETE                          = "Delete failed"
	ERROR_PARSE_DATA_TO_LOCALS            = "Cannot read parsed input"
	NOT_FOUND_RECORDS                     = "Record not found"
	NOT_ADMIN                             = "Admin permission required"
	NOT_LOGGED_IN                         = "Please log in"
	ACCOUNT_NOT_PERMISSION                = "Account has no permission"
	ACCOUNT_NOT_ACTIVE                    = "Account is not active"
	MISSING_LOGIN_INPUT                   = "Email and password are required"
	INVALID_EMAIL                         = "Email does not exist"
	INVALID_PASSWORD                      = "Wrong password"
	EMAIL_EXISTS                          = "Email already registered"
	CAN_NOT_HASH_PASSWORD                 = "Cannot hash password"
	NEW_PASSWORD_NOT_SAME_REPEAT_PASSWORD = "Password repeat does not match"
	ROLE_NOT_EXISTS                       = "Role does not exist"
	DATA_INPUT_IS_NOT_NUMBER              = "Input is not a number"
	TRANSACTION_STATUS_UNCHANGED          = "Status is unchanged, nothing to update"
	TRANSACTION_STATUS_NOT_ALLOWED        = "Status transition is not allowed"
	TRANSACTION_ALREADY_FINAL             = "Transaction is already in a final state"
	CART_EMPTY                            = "Cart is empty"
)
