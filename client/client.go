package client

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	pb "github.com/giansalex/cw-lockbox/proto"
	"github.com/giansalex/cw-lockbox/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Operation names recorded in client metrics.
const (
	opCreateLock           = "create_lock"
	opRelease              = "release"
	opCancel               = "cancel"
	opGetLock              = "get_lock"
	opListLocksByOwner     = "list_locks_by_owner"
	opListLocksByRecipient = "list_locks_by_recipient"
)

// connector establishes gRPC connections. Useful for injecting mocks in tests.
type connector interface {
	connect(address string, opts ...grpc.DialOption) (*grpc.ClientConn, error)
}

// grpcConnector implements the default connector.
type grpcConnector struct{}

func (grpcConnector) connect(address string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	return grpc.NewClient(address, opts...)
}

// lockboxClient provides the default LockboxClient implementation over a
// single gRPC connection.
type lockboxClient struct {
	config  Config
	conn    *grpc.ClientConn
	grpc    pb.LockboxClient
	metrics Metrics
	closed  atomic.Bool
}

// NewLockboxClient creates a client connected to the server at config.Address.
// The connection is established lazily; the first RPC triggers the dial.
func NewLockboxClient(config Config) (LockboxClient, error) {
	return newLockboxClient(config, grpcConnector{})
}

func newLockboxClient(config Config, connector connector) (*lockboxClient, error) {
	if config.Address == "" {
		return nil, errors.New("client: server address must not be empty")
	}

	c := &lockboxClient{config: config}
	if config.EnableMetrics {
		c.metrics = newMetrics()
	} else {
		c.metrics = noOpMetrics{}
	}

	conn, err := connector.connect(config.Address, c.dialOptions()...)
	if err != nil {
		return nil, fmt.Errorf("client: failed to dial %s: %w", config.Address, err)
	}
	c.conn = conn
	c.grpc = pb.NewLockboxClient(conn)
	return c, nil
}

// dialOptions returns gRPC dial options based on the configuration.
func (c *lockboxClient) dialOptions() []grpc.DialOption {
	return []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                c.config.KeepAlive.Time,
			Timeout:             c.config.KeepAlive.Timeout,
			PermitWithoutStream: c.config.KeepAlive.PermitWithoutStream,
		}),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(c.config.MaxMessageSize),
			grpc.MaxCallSendMsgSize(c.config.MaxMessageSize),
		),
	}
}

// execute runs one RPC with the configured request timeout and records metrics.
func (c *lockboxClient) execute(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	if c.closed.Load() {
		return ErrClientClosed
	}

	start := time.Now()
	defer func() { c.metrics.ObserveLatency(operation, time.Since(start)) }()

	reqCtx, cancel := ctx, context.CancelFunc(func() {})
	if c.config.RequestTimeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, c.config.RequestTimeout)
	}
	defer cancel()

	if err := fn(reqCtx); err != nil {
		c.metrics.IncrFailure(operation)
		return err
	}
	c.metrics.IncrSuccess(operation)
	return nil
}

func (c *lockboxClient) CreateLock(ctx context.Context, req *CreateLockRequest) (*CreateLockResult, error) {
	if req == nil {
		return nil, NewClientError(opCreateLock, ErrInvalidArgument, pb.ErrorCode_INVALID_ARGUMENT, nil)
	}

	wireReq := &pb.CreateLockRequest{
		Caller:    string(req.Caller),
		Recipient: string(req.Recipient),
		Token:     string(req.Token),
		Amount:    uint64(req.Amount),
	}
	switch {
	case !req.ReleaseAt.IsZero():
		wireReq.Condition = &pb.ReleaseCondition{ReleaseTime: timestamppb.New(req.ReleaseAt)}
	case req.ReleaseHeight > 0:
		wireReq.Condition = &pb.ReleaseCondition{ReleaseHeight: uint64(req.ReleaseHeight)}
	}

	var result *CreateLockResult
	err := c.execute(ctx, opCreateLock, func(ctx context.Context) error {
		resp, err := c.grpc.CreateLock(ctx, wireReq)
		if err != nil {
			return err
		}
		if resp.Error != nil {
			return errorFromDetail(opCreateLock, resp.Error)
		}
		result = &CreateLockResult{
			LockID: types.LockID(resp.LockId),
			Lock:   domainLock(resp.Lock),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *lockboxClient) Release(ctx context.Context, req *ReleaseRequest) (*ReleaseResult, error) {
	if req == nil {
		return nil, NewClientError(opRelease, ErrInvalidArgument, pb.ErrorCode_INVALID_ARGUMENT, nil)
	}

	var result *ReleaseResult
	err := c.execute(ctx, opRelease, func(ctx context.Context) error {
		resp, err := c.grpc.Release(ctx, &pb.ReleaseRequest{
			Caller: string(req.Caller),
			LockId: string(req.LockID),
		})
		if err != nil {
			return err
		}
		if resp.Error != nil {
			return errorFromDetail(opRelease, resp.Error)
		}
		result = &ReleaseResult{
			Lock:     domainLock(resp.Lock),
			Transfer: domainTransfer(resp.Transfer),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *lockboxClient) Cancel(ctx context.Context, req *CancelRequest) (*CancelResult, error) {
	if req == nil {
		return nil, NewClientError(opCancel, ErrInvalidArgument, pb.ErrorCode_INVALID_ARGUMENT, nil)
	}

	var result *CancelResult
	err := c.execute(ctx, opCancel, func(ctx context.Context) error {
		resp, err := c.grpc.Cancel(ctx, &pb.CancelRequest{
			Caller: string(req.Caller),
			LockId: string(req.LockID),
		})
		if err != nil {
			return err
		}
		if resp.Error != nil {
			return errorFromDetail(opCancel, resp.Error)
		}
		result = &CancelResult{
			Lock:     domainLock(resp.Lock),
			Transfer: domainTransfer(resp.Transfer),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *lockboxClient) GetLock(ctx context.Context, id types.LockID) (*types.LockRecord, error) {
	var record *types.LockRecord
	err := c.execute(ctx, opGetLock, func(ctx context.Context) error {
		resp, err := c.grpc.GetLock(ctx, &pb.GetLockRequest{LockId: string(id)})
		if err != nil {
			return err
		}
		if resp.Error != nil {
			return errorFromDetail(opGetLock, resp.Error)
		}
		record = domainLock(resp.Lock)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (c *lockboxClient) ListLocksByOwner(ctx context.Context, req *ListLocksByOwnerRequest) (*ListLocksResult, error) {
	if req == nil {
		return nil, NewClientError(opListLocksByOwner, ErrInvalidArgument, pb.ErrorCode_INVALID_ARGUMENT, nil)
	}

	var result *ListLocksResult
	err := c.execute(ctx, opListLocksByOwner, func(ctx context.Context) error {
		resp, err := c.grpc.ListLocksByOwner(ctx, &pb.ListLocksByOwnerRequest{
			Owner:        string(req.Owner),
			StatusFilter: protoStatusFilter(req.Status),
		})
		if err != nil {
			return err
		}
		if resp.Error != nil {
			return errorFromDetail(opListLocksByOwner, resp.Error)
		}
		result = &ListLocksResult{Locks: domainLocks(resp.Locks)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *lockboxClient) ListLocksByRecipient(ctx context.Context, req *ListLocksByRecipientRequest) (*ListLocksResult, error) {
	if req == nil {
		return nil, NewClientError(opListLocksByRecipient, ErrInvalidArgument, pb.ErrorCode_INVALID_ARGUMENT, nil)
	}

	var result *ListLocksResult
	err := c.execute(ctx, opListLocksByRecipient, func(ctx context.Context) error {
		resp, err := c.grpc.ListLocksByRecipient(ctx, &pb.ListLocksByRecipientRequest{
			Recipient:    string(req.Recipient),
			StatusFilter: protoStatusFilter(req.Status),
		})
		if err != nil {
			return err
		}
		if resp.Error != nil {
			return errorFromDetail(opListLocksByRecipient, resp.Error)
		}
		result = &ListLocksResult{Locks: domainLocks(resp.Locks)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Metrics returns client-side metrics, or nil when collection is disabled.
func (c *lockboxClient) Metrics() ClientMetrics {
	if _, ok := c.metrics.(noOpMetrics); ok {
		return nil
	}
	return c.metrics
}

// Close shuts down the underlying connection and marks the client as closed.
func (c *lockboxClient) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClientClosed
	}
	if c.conn == nil {
		return nil
	}
	if err := c.conn.Close(); err != nil {
		return fmt.Errorf("client: failed to close connection: %w", err)
	}
	return nil
}

// domainLocks converts a slice of wire locks into domain records.
func domainLocks(locks []*pb.Lock) []*types.LockRecord {
	records := make([]*types.LockRecord, 0, len(locks))
	for _, lock := range locks {
		records = append(records, domainLock(lock))
	}
	return records
}
