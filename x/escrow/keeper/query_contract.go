package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bridgelabs/bridgechain/x/escrow/types"
)

// Contract reports the governance state of the escrow contract in one shot.
// An uninitialized contract returns initialized=false with zero values.
func (q queryServer) Contract(ctx context.Context, req *types.QueryContractRequest) (*types.QueryContractResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	initialized, err := q.k.Initialized.Has(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !initialized {
		return &types.QueryContractResponse{}, nil
	}

	owner, err := q.k.Owner.Get(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	config, err := q.k.Config.Get(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	paused, err := q.k.Paused.Has(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryContractResponse{
		Initialized:   true,
		Owner:         owner,
		FeePercentage: config.FeePercentage,
		Paused:        paused,
	}, nil
}
