package usecase

import (
	"errors"
	"fmt"
)

// HTTPError is an expected failure with the status and message the client sees.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// Client-facing messages.
const (
	MsgForbidden = "Forbidden."

	MsgDeliveryPersonRequired  = "Delivery person ID is required."
	MsgOrderNotFound           = "Order not found."
	MsgPaymentNotConfirmed     = "Payment must be confirmed before assigning delivery."
	MsgDeliveryAlreadyAssigned = "Delivery person already assigned."
	MsgDeliveryPersonNotFound  = "Delivery person not found."
	MsgPaymentAlreadyConfirmed = "Payment already confirmed."
	MsgOrderNotPending         = "Order is no longer pending."
	MsgOrderNotCancellable     = "Order can no longer be cancelled."
	MsgOrderAlreadyDelivered   = "Order already delivered."
	MsgOrderNotOutForDelivery  = "Order is not out for delivery."
	MsgInsufficientStock       = "Insufficient stock."

	MsgDeliveryProfileNotFound = "Delivery profile not found."
	MsgAvailabilityChanged     = "Availability was changed by another request."

	MsgProductNotFound       = "Product not found."
	MsgImageTooLarge         = "Image is too large."
	MsgImageUnsupported      = "Image must be JPEG, PNG, WebP or GIF."
	MsgSellerNotFound        = "Seller not found."
	MsgSellerProfileNotFound = "Seller profile not found."
	MsgSellerProfileExists   = "Seller profile already exists."
	MsgSubcityNotFound       = "Subcity not found."

	MsgAlreadyFavorite   = "Product already in favorites."
	MsgFavoriteNotFound  = "Favorite not found."
	MsgSearchQueryNeeded = "Search query is required."
	MsgSearchTypeInvalid = "Search type must be product or seller."

	MsgUserNotFound = "User not found."
)

// internal wraps unexpected failures; handlers log them and answer 500.
func internal(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
