package models

import "fmt"

// EnvMissingError indicates a required environment variable is unset or empty
type EnvMissingError struct {
	Name string
}

func (e *EnvMissingError) Error() string {
	return fmt.Sprintf("required environment variable %s not set, use 'export %s=YOURKEY' to set it", e.Name, e.Name)
}

// InvalidURLError indicates a provider URL could not be constructed
type InvalidURLError struct {
	Err error
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("URL is not valid: %v", e.Err)
}

func (e *InvalidURLError) Unwrap() error { return e.Err }

// TransportError wraps a failed HTTP request or body read
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("error sending request: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UnexpectedStatusError reports a non-2xx response whose body did not carry
// a decodable provider error payload
type UnexpectedStatusError struct {
	StatusCode int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
}

// DeserializationError reports a success body that did not match the
// provider's schema
type DeserializationError struct {
	Reason string
	Asset  string
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("failed to deserialize response: '%s' for asset %s", e.Reason, e.Asset)
}

// PolygonAPIError carries the message field of a Polygon error response
type PolygonAPIError struct {
	Message string
}

func (e *PolygonAPIError) Error() string {
	return fmt.Sprintf("polygon API error: %s", e.Message)
}

// CoinGeckoAPIError carries the raw body of an unusable CoinGecko response.
// CoinGecko has no fixed error schema, and answers 200 with an empty array
// for unknown coin ids.
type CoinGeckoAPIError struct {
	Body string
}

func (e *CoinGeckoAPIError) Error() string {
	return fmt.Sprintf("coingecko API did not return the expected payload, received %s (expected https://docs.coingecko.com/reference/coins-markets)", e.Body)
}

// UnknownAssetError indicates an identifier that matched no asset class
type UnknownAssetError struct {
	Asset string
}

func (e *UnknownAssetError) Error() string {
	return fmt.Sprintf("could not identify if %s is a crypto asset or a stock, use all caps for stock symbols and lower caps for crypto coingecko ids", e.Asset)
}
