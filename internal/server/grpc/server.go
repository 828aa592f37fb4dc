package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/grievdesk/internal/catalog"
	"github.com/dmitrijs2005/grievdesk/internal/logging"
	pb "github.com/dmitrijs2005/grievdesk/internal/proto"
	"github.com/dmitrijs2005/grievdesk/internal/server/models"
	"github.com/dmitrijs2005/grievdesk/internal/server/services"
	"google.golang.org/grpc"
)

type identitySvc interface {
	Login(ctx context.Context, raw string) (*services.LoginResult, error)
	Session(token string) (models.Session, error)
}

type grievanceSvc interface {
	Submit(ctx context.Context, session models.Session, form models.Form) (*services.Submission, error)
}

type catalogSvc interface {
	Load(ctx context.Context) (*catalog.Catalog, error)
}

type GRPCServer struct {
	pb.UnimplementedGrievanceServiceServer
	address    string
	identity   identitySvc
	grievances grievanceSvc
	catalogs   catalogSvc
	logger     logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, identity identitySvc, grievances grievanceSvc, catalogs catalogSvc) *GRPCServer {
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		identity:   identity,
		grievances: grievances,
		catalogs:   catalogs,
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	// registers service
	pb.RegisterGrievanceServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
