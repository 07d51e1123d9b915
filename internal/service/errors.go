// Package service implements the RPC services: authentication, master
// data, entry posting, and reports. Each service translates wire types
// to domain types, delegates to storage and the accounting core, and
// maps domain errors to connect codes.
package service

import (
	"errors"
	"time"

	"connectrpc.com/connect"

	"github.com/munimapp/munim/internal/apperr"
	"github.com/munimapp/munim/pkg/rpc"
)

// asConnectError maps a domain error to its connect code: not-found to
// CodeNotFound, validation and reference errors to CodeInvalidArgument,
// anything else (store infrastructure failures) to CodeInternal.
func asConnectError(err error) *connect.Error {
	var ce *connect.Error
	if errors.As(err, &ce) {
		return ce
	}
	switch {
	case apperr.IsNotFound(err):
		return connect.NewError(connect.CodeNotFound, err)
	case apperr.IsValidation(err):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// parseDate parses a required "2006-01-02" date field.
func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, connect.NewError(connect.CodeInvalidArgument,
			apperr.Validation("%s is required", field))
	}
	d, err := time.Parse(rpc.DateLayout, value)
	if err != nil {
		return time.Time{}, connect.NewError(connect.CodeInvalidArgument,
			apperr.Validation("%s: invalid date %q, want YYYY-MM-DD", field, value))
	}
	return d, nil
}

// parseOptionalDate parses a "2006-01-02" date field, allowing empty.
func parseOptionalDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return parseDate(field, value)
}

// parseDateRange parses a required start/end pair and rejects an
// inverted window.
func parseDateRange(startValue, endValue string) (time.Time, time.Time, error) {
	start, err := parseDate("start_date", startValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDate("end_date", endValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, connect.NewError(connect.CodeInvalidArgument,
			apperr.Validation("end_date %s is before start_date %s", endValue, startValue))
	}
	return start, end, nil
}
