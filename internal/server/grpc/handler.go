package grpc

import (
	"context"
	"errors"
	"strconv"

	"github.com/dmitrijs2005/grievdesk/internal/common"
	pb "github.com/dmitrijs2005/grievdesk/internal/proto"
	"github.com/dmitrijs2005/grievdesk/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func (s *GRPCServer) Ping(ctx context.Context, req *emptypb.Empty) (*wrapperspb.StringValue, error) {

	return wrapperspb.String("OK"), nil

}

func (s *GRPCServer) Login(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {

	result, err := s.identity.Login(ctx, req.GetValue())

	if err != nil {
		if errors.Is(err, common.ErrAccessDenied) {
			return nil, status.Error(codes.Unauthenticated, common.ErrAccessDenied.Error())
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return pb.NewLoginResponse(result.AccessToken, result.ActorName), nil

}

func (s *GRPCServer) GetCatalog(ctx context.Context, req *emptypb.Empty) (*structpb.Struct, error) {

	c, err := s.catalogs.Load(ctx)
	if err != nil {
		s.logger.Warn(ctx, "serving degraded catalog", "error", err)
	}

	return pb.ListsToStruct(c.Lists()), nil

}

func (s *GRPCServer) SubmitGrievance(ctx context.Context, req *structpb.Struct) (*wrapperspb.BytesValue, error) {

	session := SessionFromContext(ctx)
	form := models.Form(pb.StructToForm(req))

	sub, err := s.grievances.Submit(ctx, session, form)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		case errors.Is(err, common.ErrValidation):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		default:
			return nil, status.Error(codes.Internal, common.ErrAssemblyFailure.Error())
		}
	}

	md := metadata.Pairs(pb.KeyFileName, sub.FileName, pb.KeyDegraded, strconv.FormatBool(sub.Degraded))
	if err := grpc.SetHeader(ctx, md); err != nil {
		s.logger.Debug(ctx, "response header not sent", "error", err)
	}

	return wrapperspb.Bytes(sub.Document), nil

}
