package usecase

import (
	"strings"
	"unicode/utf8"

	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/internal/utils"
	"github.com/piresc/campusride/services/rides"
	"github.com/shopspring/decimal"
)

const (
	maxLabelLength        = 255
	maxRequirementsLength = 500
	maxMessageLength      = 200
	maxFeedbackLength     = 500
	maxDetailsLength      = 500
	minMaxWait            = 1
	maxMaxWait            = 60
	minETA                = 1
	maxETA                = 60
	maxSpeedKmh           = 200
	maxHeading            = 360
)

// maxFare is the largest amount a NUMERIC(10,2) fare column holds
var maxFare = decimal.New(9999999999, -2)

func validateFare(field string, amount *decimal.Decimal) error {
	if amount == nil {
		return nil
	}
	if amount.IsNegative() || amount.GreaterThan(maxFare) {
		return rides.NewValidationError("%s must be between 0 and %s", field, maxFare.StringFixed(2))
	}
	return nil
}

func validateCoordinates(field string, lat, lng float64) error {
	if !utils.ValidCoordinates(lat, lng) {
		return rides.NewValidationError("%s coordinates out of range", field)
	}
	return nil
}

func validateLabel(field, label string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(label))
	if n < 1 || n > maxLabelLength {
		return rides.NewValidationError("%s must be 1 to %d characters", field, maxLabelLength)
	}
	return nil
}

func validateOptionalText(field string, value *string, max int) error {
	if value != nil && utf8.RuneCountInString(*value) > max {
		return rides.NewValidationError("%s must be at most %d characters", field, max)
	}
	return nil
}

// validateCreateRequest checks a new request and returns the effective wait
func validateCreateRequest(in models.CreateRideRequest, defaultMaxWait int) (int, error) {
	if err := validateLabel("pickup_location", in.PickupLabel); err != nil {
		return 0, err
	}
	if err := validateLabel("drop_location", in.DropLabel); err != nil {
		return 0, err
	}
	if err := validateCoordinates("pickup", in.PickupLatitude, in.PickupLongitude); err != nil {
		return 0, err
	}
	if err := validateCoordinates("drop", in.DropLatitude, in.DropLongitude); err != nil {
		return 0, err
	}
	if strings.TrimSpace(in.PickupLabel) == strings.TrimSpace(in.DropLabel) {
		return 0, rides.NewValidationError("pickup and drop locations cannot be the same")
	}
	if in.PickupLatitude == in.DropLatitude && in.PickupLongitude == in.DropLongitude {
		return 0, rides.NewValidationError("pickup and drop coordinates cannot be the same")
	}

	maxWait := defaultMaxWait
	if maxWait < minMaxWait || maxWait > maxMaxWait {
		maxWait = 10
	}
	if in.MaxWaitMinutes != nil {
		maxWait = *in.MaxWaitMinutes
		if maxWait < minMaxWait || maxWait > maxMaxWait {
			return 0, rides.NewValidationError("max_wait_time must be between %d and %d minutes", minMaxWait, maxMaxWait)
		}
	}
	if err := validateOptionalText("special_requirements", in.SpecialRequirements, maxRequirementsLength); err != nil {
		return 0, err
	}
	return maxWait, nil
}

func validateOffer(in models.SubmitOfferRequest) error {
	if err := validateFare("offered_fare", in.OfferedFare); err != nil {
		return err
	}
	if in.ETAMinutes < minETA || in.ETAMinutes > maxETA {
		return rides.NewValidationError("estimated_arrival_time must be between %d and %d minutes", minETA, maxETA)
	}
	return validateOptionalText("message", in.Message, maxMessageLength)
}

func validateTransition(in models.TransitionRequest) error {
	if !in.Status.IsValid() {
		return rides.NewValidationError("unknown ride status %q", in.Status)
	}
	if (in.Latitude == nil) != (in.Longitude == nil) {
		return rides.NewValidationError("latitude and longitude must be given together")
	}
	if in.Latitude != nil {
		if err := validateCoordinates("status", *in.Latitude, *in.Longitude); err != nil {
			return err
		}
	}
	return validateFare("fare_amount", in.FareAmount)
}

func validateCancel(in models.CancelRideRequest) error {
	if !in.Reason.IsValid() {
		return rides.NewValidationError("unknown cancellation_reason %q", in.Reason)
	}
	return validateOptionalText("cancellation_details", in.Details, maxDetailsLength)
}

func validateRating(in models.RateRideRequest) error {
	if in.Rating < 1 || in.Rating > 5 {
		return rides.NewValidationError("rating must be between 1 and 5")
	}
	return validateOptionalText("feedback", in.Feedback, maxFeedbackLength)
}

func validateTracking(in models.TrackingPointRequest) error {
	if err := validateCoordinates("tracking", in.Latitude, in.Longitude); err != nil {
		return err
	}
	if in.SpeedKmh != nil && (*in.SpeedKmh < 0 || *in.SpeedKmh > maxSpeedKmh) {
		return rides.NewValidationError("speed_kmh must be between 0 and %d", maxSpeedKmh)
	}
	if in.Heading != nil && (*in.Heading < 0 || *in.Heading > maxHeading) {
		return rides.NewValidationError("heading must be between 0 and %d", maxHeading)
	}
	if in.AccuracyM != nil && *in.AccuracyM < 1 {
		return rides.NewValidationError("accuracy_meters must be at least 1")
	}
	return nil
}

// clampLimit returns def for zero and fails for values outside [1,max]
func clampLimit(limit, def, max int) (int, error) {
	if limit == 0 {
		return def, nil
	}
	if limit < 1 || limit > max {
		return 0, rides.NewValidationError("limit must be between 1 and %d", max)
	}
	return limit, nil
}
