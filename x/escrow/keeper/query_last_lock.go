package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bridgelabs/bridgechain/x/escrow/types"
)

func (q queryServer) LastLock(ctx context.Context, req *types.QueryLastLockRequest) (*types.QueryLastLockResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	exists, err := q.k.LastLock.Has(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !exists {
		return nil, status.Error(codes.NotFound, "no lock has been recorded")
	}

	lock, err := q.k.LastLock.Get(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryLastLockResponse{Lock: lock}, nil
}
