package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConversion indicates that the unit registry refused a conversion
// (unknown unit or incompatible dimensions).
var ErrConversion = errors.New("conversion error")

// ErrUnsupportedPair indicates that a currency code is missing from the rate table.
var ErrUnsupportedPair = errors.New("unsupported currency pair")

// ErrRatesUnavailable covers every failure to obtain a usable rate table:
// network, upstream payload, cache file read or write.
var ErrRatesUnavailable = errors.New("exchange rates unavailable")
