package server

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/giansalex/cw-lockbox/lockbox"
	"github.com/giansalex/cw-lockbox/logger"
	pb "github.com/giansalex/cw-lockbox/proto"
	"github.com/giansalex/cw-lockbox/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
)

// lockboxServer is the default LockboxServer implementation. It fronts the
// custody engine with a gRPC endpoint, request validation and rate limiting.
type lockboxServer struct {
	pb.UnimplementedLockboxServer

	config    LockboxServerConfig
	engine    lockbox.Engine
	validator RequestValidator
	limiter   RateLimiter
	logger    logger.Logger
	metrics   ServerMetrics

	mu         sync.Mutex
	state      ServerOperationalState
	grpcServer *grpc.Server
	listener   net.Listener
}

// NewLockboxServer creates a server around the given engine.
// The config is validated before any resource is allocated.
func NewLockboxServer(engine lockbox.Engine, config LockboxServerConfig) (LockboxServer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if engine == nil {
		return nil, NewLockboxServerConfigError("engine cannot be nil")
	}

	log := config.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	log = log.WithComponent("server")

	metrics := config.Metrics
	if metrics == nil {
		metrics = NewNoOpServerMetrics()
	}

	s := &lockboxServer{
		config:    config,
		engine:    engine,
		validator: NewRequestValidator(log),
		logger:    log,
		metrics:   metrics,
		state:     ServerStateStopped,
	}
	if config.EnableRateLimit {
		s.limiter = NewTokenBucketRateLimiter(
			config.RateLimit, config.RateLimitBurst, config.RateLimitWindow, log)
	}
	return s, nil
}

// Start binds the listen address and begins serving requests in the background.
func (s *lockboxServer) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == ServerStateRunning || s.state == ServerStateStarting {
		return ErrServerAlreadyStarted
	}
	s.state = ServerStateStarting

	listener, err := net.Listen("tcp", s.config.ListenAddress)
	if err != nil {
		s.state = ServerStateStopped
		return NewServerError("start", err, "failed to bind listen address")
	}

	grpcServer := grpc.NewServer(
		grpc.MaxRecvMsgSize(DefaultGRPCMaxRecvMsgSize),
		grpc.MaxSendMsgSize(DefaultGRPCMaxSendMsgSize),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    DefaultGRPCKeepaliveTime,
			Timeout: DefaultGRPCKeepaliveTimeout,
		}),
	)
	pb.RegisterLockboxServer(grpcServer, s)

	s.listener = listener
	s.grpcServer = grpcServer
	s.state = ServerStateRunning

	s.logger.Infow("Lockbox server started", "address", listener.Addr().String())

	go func() {
		if serveErr := grpcServer.Serve(listener); serveErr != nil {
			s.logger.Errorw("gRPC server terminated", "error", serveErr)
		}
	}()

	return nil
}

// Stop gracefully shuts down the server, falling back to a hard stop when the
// context deadline expires first.
func (s *lockboxServer) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.state != ServerStateRunning {
		s.mu.Unlock()
		return ErrServerNotStarted
	}
	s.state = ServerStateStopping
	grpcServer := s.grpcServer
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(done)
	}()

	var err error
	select {
	case <-done:
	case <-ctx.Done():
		grpcServer.Stop()
		err = ErrShutdownTimeout
	case <-time.After(s.config.ShutdownTimeout):
		grpcServer.Stop()
		err = ErrShutdownTimeout
	}

	s.mu.Lock()
	s.state = ServerStateStopped
	s.grpcServer = nil
	s.listener = nil
	s.mu.Unlock()

	s.logger.Infow("Lockbox server stopped")
	return err
}

// Metrics returns the server's metrics sink.
func (s *lockboxServer) Metrics() ServerMetrics {
	return s.metrics
}

// CreateLock handles the CreateLock RPC.
func (s *lockboxServer) CreateLock(ctx context.Context, req *pb.CreateLockRequest) (*pb.CreateLockResponse, error) {
	start := time.Now()
	defer s.observe(MethodCreateLock, start)

	if err := s.admit(MethodCreateLock); err != nil {
		return &pb.CreateLockResponse{Error: ErrorToProtoError(err)}, nil
	}
	if err := s.validator.ValidateCreateLockRequest(req); err != nil {
		s.metrics.IncrValidationError(MethodCreateLock, ErrorTypeInvalidFormat)
		s.metrics.IncrGRPCRequest(MethodCreateLock, false)
		return &pb.CreateLockResponse{Error: ErrorToProtoError(err)}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.RequestTimeout)
	defer cancel()

	record, err := s.engine.CreateLock(ctx, types.PartyID(req.Caller), lockbox.CreateLockRequest{
		Recipient: types.PartyID(req.Recipient),
		Token:     types.TokenID(req.Token),
		Amount:    types.Amount(req.Amount),
		Condition: domainCondition(req.Condition),
	})
	if err != nil {
		detail := ErrorToProtoError(err)
		s.metrics.IncrClientError(MethodCreateLock, detail.Code)
		s.metrics.IncrGRPCRequest(MethodCreateLock, false)
		return &pb.CreateLockResponse{Error: detail}, nil
	}

	s.metrics.IncrGRPCRequest(MethodCreateLock, true)
	return &pb.CreateLockResponse{
		LockId: string(record.ID),
		Lock:   protoLock(record),
	}, nil
}

// Release handles the Release RPC.
func (s *lockboxServer) Release(ctx context.Context, req *pb.ReleaseRequest) (*pb.ReleaseResponse, error) {
	start := time.Now()
	defer s.observe(MethodRelease, start)

	if err := s.admit(MethodRelease); err != nil {
		return &pb.ReleaseResponse{Error: ErrorToProtoError(err)}, nil
	}
	if err := s.validator.ValidateReleaseRequest(req); err != nil {
		s.metrics.IncrValidationError(MethodRelease, ErrorTypeInvalidFormat)
		s.metrics.IncrGRPCRequest(MethodRelease, false)
		return &pb.ReleaseResponse{Error: ErrorToProtoError(err)}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.RequestTimeout)
	defer cancel()

	record, transfer, err := s.engine.Release(ctx, types.PartyID(req.Caller), types.LockID(req.LockId))
	if err != nil {
		detail := ErrorToProtoError(err)
		s.metrics.IncrClientError(MethodRelease, detail.Code)
		s.metrics.IncrGRPCRequest(MethodRelease, false)
		return &pb.ReleaseResponse{Error: detail}, nil
	}

	s.metrics.IncrGRPCRequest(MethodRelease, true)
	return &pb.ReleaseResponse{
		Lock:     protoLock(record),
		Transfer: protoTransfer(transfer),
	}, nil
}

// Cancel handles the Cancel RPC.
func (s *lockboxServer) Cancel(ctx context.Context, req *pb.CancelRequest) (*pb.CancelResponse, error) {
	start := time.Now()
	defer s.observe(MethodCancel, start)

	if err := s.admit(MethodCancel); err != nil {
		return &pb.CancelResponse{Error: ErrorToProtoError(err)}, nil
	}
	if err := s.validator.ValidateCancelRequest(req); err != nil {
		s.metrics.IncrValidationError(MethodCancel, ErrorTypeInvalidFormat)
		s.metrics.IncrGRPCRequest(MethodCancel, false)
		return &pb.CancelResponse{Error: ErrorToProtoError(err)}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.RequestTimeout)
	defer cancel()

	record, transfer, err := s.engine.Cancel(ctx, types.PartyID(req.Caller), types.LockID(req.LockId))
	if err != nil {
		detail := ErrorToProtoError(err)
		s.metrics.IncrClientError(MethodCancel, detail.Code)
		s.metrics.IncrGRPCRequest(MethodCancel, false)
		return &pb.CancelResponse{Error: detail}, nil
	}

	s.metrics.IncrGRPCRequest(MethodCancel, true)
	return &pb.CancelResponse{
		Lock:     protoLock(record),
		Transfer: protoTransfer(transfer),
	}, nil
}

// GetLock handles the GetLock RPC.
func (s *lockboxServer) GetLock(ctx context.Context, req *pb.GetLockRequest) (*pb.GetLockResponse, error) {
	start := time.Now()
	defer s.observe(MethodGetLock, start)

	if err := s.admit(MethodGetLock); err != nil {
		return &pb.GetLockResponse{Error: ErrorToProtoError(err)}, nil
	}
	if err := s.validator.ValidateGetLockRequest(req); err != nil {
		s.metrics.IncrValidationError(MethodGetLock, ErrorTypeInvalidFormat)
		s.metrics.IncrGRPCRequest(MethodGetLock, false)
		return &pb.GetLockResponse{Error: ErrorToProtoError(err)}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.RequestTimeout)
	defer cancel()

	record, err := s.engine.GetLock(ctx, types.LockID(req.LockId))
	if err != nil {
		detail := ErrorToProtoError(err)
		s.metrics.IncrClientError(MethodGetLock, detail.Code)
		s.metrics.IncrGRPCRequest(MethodGetLock, false)
		return &pb.GetLockResponse{Error: detail}, nil
	}

	s.metrics.IncrGRPCRequest(MethodGetLock, true)
	return &pb.GetLockResponse{Lock: protoLock(record)}, nil
}

// ListLocksByOwner handles the ListLocksByOwner RPC.
func (s *lockboxServer) ListLocksByOwner(ctx context.Context, req *pb.ListLocksByOwnerRequest) (*pb.ListLocksResponse, error) {
	start := time.Now()
	defer s.observe(MethodListLocksByOwner, start)

	if err := s.admit(MethodListLocksByOwner); err != nil {
		return &pb.ListLocksResponse{Error: ErrorToProtoError(err)}, nil
	}
	if err := s.validator.ValidateListLocksByOwnerRequest(req); err != nil {
		s.metrics.IncrValidationError(MethodListLocksByOwner, ErrorTypeInvalidFormat)
		s.metrics.IncrGRPCRequest(MethodListLocksByOwner, false)
		return &pb.ListLocksResponse{Error: ErrorToProtoError(err)}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.RequestTimeout)
	defer cancel()

	records, err := s.engine.ListLocksByOwner(ctx, types.PartyID(req.Owner), statusFilter(req.StatusFilter))
	if err != nil {
		detail := ErrorToProtoError(err)
		s.metrics.IncrServerError(MethodListLocksByOwner, ErrorTypeInternalError)
		s.metrics.IncrGRPCRequest(MethodListLocksByOwner, false)
		return &pb.ListLocksResponse{Error: detail}, nil
	}

	s.metrics.IncrGRPCRequest(MethodListLocksByOwner, true)
	return &pb.ListLocksResponse{Locks: protoLocks(records)}, nil
}

// ListLocksByRecipient handles the ListLocksByRecipient RPC.
func (s *lockboxServer) ListLocksByRecipient(ctx context.Context, req *pb.ListLocksByRecipientRequest) (*pb.ListLocksResponse, error) {
	start := time.Now()
	defer s.observe(MethodListLocksByRecipient, start)

	if err := s.admit(MethodListLocksByRecipient); err != nil {
		return &pb.ListLocksResponse{Error: ErrorToProtoError(err)}, nil
	}
	if err := s.validator.ValidateListLocksByRecipientRequest(req); err != nil {
		s.metrics.IncrValidationError(MethodListLocksByRecipient, ErrorTypeInvalidFormat)
		s.metrics.IncrGRPCRequest(MethodListLocksByRecipient, false)
		return &pb.ListLocksResponse{Error: ErrorToProtoError(err)}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.RequestTimeout)
	defer cancel()

	records, err := s.engine.ListLocksByRecipient(ctx, types.PartyID(req.Recipient), statusFilter(req.StatusFilter))
	if err != nil {
		detail := ErrorToProtoError(err)
		s.metrics.IncrServerError(MethodListLocksByRecipient, ErrorTypeInternalError)
		s.metrics.IncrGRPCRequest(MethodListLocksByRecipient, false)
		return &pb.ListLocksResponse{Error: detail}, nil
	}

	s.metrics.IncrGRPCRequest(MethodListLocksByRecipient, true)
	return &pb.ListLocksResponse{Locks: protoLocks(records)}, nil
}

// admit rejects requests when the server is not running or the rate limiter
// denies admission.
func (s *lockboxServer) admit(method string) error {
	s.mu.Lock()
	state := s.state
	s.mu.Unlock()

	if state != ServerStateRunning {
		s.metrics.IncrGRPCRequest(method, false)
		return ErrServerNotStarted
	}
	if s.limiter != nil && !s.limiter.Allow(method) {
		s.metrics.IncrRateLimited(method)
		s.metrics.IncrGRPCRequest(method, false)
		return ErrRateLimited
	}
	return nil
}

func (s *lockboxServer) observe(method string, start time.Time) {
	s.metrics.ObserveRequestLatency(method, time.Since(start))
}

func protoLocks(records []*types.LockRecord) []*pb.Lock {
	if len(records) == 0 {
		return nil
	}
	locks := make([]*pb.Lock, 0, len(records))
	for _, record := range records {
		locks = append(locks, protoLock(record))
	}
	return locks
}

func statusFilter(filter pb.LockStatus) lockbox.LockFilter {
	status, ok := domainStatus(filter)
	if !ok {
		return lockbox.FilterAll
	}
	return lockbox.FilterByStatus(status)
}
