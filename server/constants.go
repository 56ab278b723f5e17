package server

import "time"

const (
	// --- Default server configuration values ---

	// DefaultListenAddress is the default address for the server's client-facing gRPC endpoint.
	DefaultListenAddress = "0.0.0.0:8080"

	// DefaultRequestTimeout is the default timeout for processing individual client requests.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultShutdownTimeout is the default timeout for graceful server shutdown.
	DefaultShutdownTimeout = 10 * time.Second

	// --- Rate limiting defaults ---

	// DefaultRateLimit is the default number of requests per second per client.
	DefaultRateLimit = 100

	// DefaultRateLimitBurst is the default burst size for rate limiting.
	DefaultRateLimitBurst = 200

	// DefaultRateLimitWindow is the default time window for rate limiting calculations.
	DefaultRateLimitWindow = time.Second

	// --- Client-Facing gRPC Server Configuration ---

	// DefaultGRPCMaxRecvMsgSize is the default maximum size for incoming gRPC messages from clients (4MB).
	DefaultGRPCMaxRecvMsgSize = 4 * 1024 * 1024

	// DefaultGRPCMaxSendMsgSize is the default maximum size for outgoing gRPC messages to clients (4MB).
	DefaultGRPCMaxSendMsgSize = 4 * 1024 * 1024

	// DefaultGRPCKeepaliveTime is the default interval for the server to send keepalive pings to idle client connections.
	DefaultGRPCKeepaliveTime = 30 * time.Second

	// DefaultGRPCKeepaliveTimeout is the default timeout for the server to wait for a keepalive acknowledgment from clients.
	DefaultGRPCKeepaliveTimeout = 5 * time.Second

	// --- Validation limits for client-provided data ---

	// MaxLockIDLength is the maximum allowed length for lock IDs.
	MaxLockIDLength = 256

	// MaxPartyIDLength is the maximum allowed length for caller, owner and recipient identifiers.
	MaxPartyIDLength = 256

	// MaxTokenIDLength is the maximum allowed length for token denominations.
	MaxTokenIDLength = 128

	// --- Error message templates for validation ---

	// ErrMsgInvalidLockID is the error message template for invalid lock IDs.
	ErrMsgInvalidLockID = "lock_id must be a non-empty string with length <= %d characters"
	// ErrMsgInvalidPartyID is the error message template for invalid party IDs.
	ErrMsgInvalidPartyID = "%s must be a non-empty string with length <= %d characters"
	// ErrMsgInvalidToken is the error message template for invalid token denominations.
	ErrMsgInvalidToken = "token must be a non-empty string with length <= %d characters"
)

// ServerOperationalState defines the possible operational states of the server.
type ServerOperationalState string

const (
	// ServerStateStarting indicates the server is in the process of starting up.
	ServerStateStarting ServerOperationalState = "starting"
	// ServerStateRunning indicates the server is running and accepting requests.
	ServerStateRunning ServerOperationalState = "running"
	// ServerStateStopping indicates the server is in the process of shutting down.
	ServerStateStopping ServerOperationalState = "stopping"
	// ServerStateStopped indicates the server has been stopped.
	ServerStateStopped ServerOperationalState = "stopped"
)

// gRPC method names for metrics collection and logging
const (
	MethodCreateLock           = "CreateLock"
	MethodRelease              = "Release"
	MethodCancel               = "Cancel"
	MethodGetLock              = "GetLock"
	MethodListLocksByOwner     = "ListLocksByOwner"
	MethodListLocksByRecipient = "ListLocksByRecipient"
)

// Error types for metrics and logging (used with ServerMetrics.IncrValidationError/IncrServerError)
const (
	ErrorTypeMissingField  = "missing_field"
	ErrorTypeInvalidFormat = "invalid_format"
	ErrorTypeOutOfRange    = "out_of_range"
	ErrorTypeTooLong       = "too_long"
	ErrorTypeInternalError = "internal_error"
	ErrorTypeRateLimit     = "rate_limit_exceeded"
)
