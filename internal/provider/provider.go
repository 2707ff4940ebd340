// Package provider defines the data-provider abstraction: a Provider
// interface, a Fetcher interface per model type, and a registry that
// routes fetch requests to the right provider.
package provider

import (
	"context"
	"fmt"
	"time"
)

// Credential describes a credential a provider can use.
type Credential struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	EnvVar      string `json:"env_var"`
}

// Info holds metadata about a registered provider.
type Info struct {
	Name        string       `json:"name"`    // e.g., "coinpaprika"
	Description string       `json:"description"`
	Website     string       `json:"website"`
	Credentials []Credential `json:"credentials"`
	Models      []ModelType  `json:"models"`
}

// Provider is implemented by every data provider. A provider registers
// one Fetcher per model type it supports.
type Provider interface {
	// Info returns metadata about this provider.
	Info() Info

	// Init stores credentials and validates that required ones are set.
	Init(credentials map[string]string) error

	// Fetcher returns the fetcher for the model type, or nil.
	Fetcher(model ModelType) Fetcher

	// SupportedModels returns all model types this provider can fetch.
	SupportedModels() []ModelType

	// Ping verifies connectivity to the upstream service.
	Ping(ctx context.Context) error
}

// QueryParams carries the query parameters for a fetch. Each fetcher
// declares which keys it requires.
type QueryParams map[string]string

// Common query parameter keys.
const (
	ParamCoinID   = "coin_id"   // e.g., "btc-bitcoin"
	ParamCurrency = "currency"  // target currency code, e.g., "usd"
	ParamLimit    = "limit"     // max results
	ParamProvider = "provider"  // provider name override
)

// FetchResult wraps fetched data with metadata.
type FetchResult struct {
	Provider  string    `json:"provider"`
	Model     ModelType `json:"model"`
	Data      any       `json:"data"`
	FetchedAt time.Time `json:"fetched_at"`
	Cached    bool      `json:"cached"`
}

// Fetcher retrieves data for a single model type.
type Fetcher interface {
	// ModelType returns the model type this fetcher handles.
	ModelType() ModelType

	// Description returns a human-readable description.
	Description() string

	// RequiredParams returns the parameter keys this fetcher requires.
	RequiredParams() []string

	// Fetch retrieves data for the given query parameters. The dynamic
	// type of the result data is fixed per model type (see models.go).
	Fetch(ctx context.Context, params QueryParams) (*FetchResult, error)
}

// ErrProviderNotFound is returned when a requested provider is not registered.
type ErrProviderNotFound struct {
	Name string
}

func (e *ErrProviderNotFound) Error() string {
	return fmt.Sprintf("provider %q not found", e.Name)
}

// ErrModelNotSupported is returned when a provider has no fetcher for a model.
type ErrModelNotSupported struct {
	Provider string
	Model    ModelType
}

func (e *ErrModelNotSupported) Error() string {
	return fmt.Sprintf("provider %q does not support model %q", e.Provider, e.Model)
}

// ErrMissingParam is returned when a required query parameter is absent.
type ErrMissingParam struct {
	Param string
}

func (e *ErrMissingParam) Error() string {
	return fmt.Sprintf("missing required parameter %q", e.Param)
}

// ErrInvalidCredentials is returned when required provider credentials
// are missing or malformed.
type ErrInvalidCredentials struct {
	Provider string
	Detail   string
}

func (e *ErrInvalidCredentials) Error() string {
	return fmt.Sprintf("invalid credentials for provider %q: %s", e.Provider, e.Detail)
}

// DecodeError reports a response body whose shape does not match the
// expected record: malformed JSON, a missing required field, or a field
// of the wrong type. A single bad field fails the whole decode.
type DecodeError struct {
	Model  ModelType
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode %s: %v", e.Model, e.Err)
	}
	return fmt.Sprintf("decode %s: %s", e.Model, e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ValidateParams checks that all required parameters are present.
func ValidateParams(params QueryParams, required []string) error {
	for _, key := range required {
		if v, ok := params[key]; !ok || v == "" {
			return &ErrMissingParam{Param: key}
		}
	}
	return nil
}
