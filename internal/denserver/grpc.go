package denserver

import (
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/cory-johannsen/goblinden/internal/denserver/denv1"
	"github.com/cory-johannsen/goblinden/internal/observability"
)

// NewGRPCServer returns a gRPC server with svc registered and every call
// logged.
//
// Precondition: svc and logger must be non-nil.
func NewGRPCServer(svc denv1.DenServiceServer, logger *zap.Logger, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(observability.UnaryLoggingInterceptor(logger)),
	}, opts...)
	s := grpc.NewServer(opts...)
	denv1.RegisterDenServiceServer(s, svc)
	return s
}
