package query

import (
	"strings"
	"time"
	"unicode/utf8"

	"weather-query-api/internal/domain/apperror"
	"weather-query-api/pkg/msg"
)

const (
	dateLayout        = "2006-01-02"
	minLocationLength = 2
)

// validateDateRange requires two calendar dates with start not after end
func validateDateRange(startDate, endDate string) error {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return apperror.Validation(msg.GetMessage("date.error.format"))
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return apperror.Validation(msg.GetMessage("date.error.format"))
	}
	if start.After(end) {
		return apperror.Validation(msg.GetMessage("date.error.order"))
	}
	return nil
}

func validateLocation(location string) error {
	if location == "" {
		return apperror.Validation(msg.GetMessage("location.error.required"))
	}
	if utf8.RuneCountInString(location) < minLocationLength {
		return apperror.Validation(msg.GetMessage("validation.min", "location", minLocationLength))
	}
	return nil
}

// mergeField keeps current when the field is omitted and rejects blank values
func mergeField(name string, supplied *string, current string) (string, error) {
	if supplied == nil {
		return current, nil
	}
	value := strings.TrimSpace(*supplied)
	if value == "" {
		return "", apperror.Validation(msg.GetMessage("query.error.empty-field", name))
	}
	return value, nil
}
