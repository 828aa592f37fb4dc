package client

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/grievdesk/internal/common"
	pb "github.com/dmitrijs2005/grievdesk/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.GrievanceServiceClient

	mu          sync.Mutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(t string) {
	s.mu.Lock()
	s.accessToken = t
	s.mu.Unlock()
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if t := s.token(); t != "" {
		ctx = withAccessToken(ctx, t)
	}

	err := invoker(ctx, method, req, reply, cc, opts...)

	// an expired or rejected token is useless from now on
	if st, ok := status.FromError(err); ok && err != nil && st.Code() == codes.Unauthenticated && method != pb.LoginFullMethodName {
		s.setToken("")
	}

	return err
}

func NewGrievanceClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewGrievanceServiceClient(conn)
	return nil
}

// Login verifies identifier and keeps the session token. It returns the
// display name the server knows the user by.
func (s *GRPCClient) Login(ctx context.Context, identifier string) (string, error) {

	resp, err := s.client.Login(ctx, wrapperspb.String(identifier))

	if err != nil {
		return "", s.mapError(err)
	}

	token, actor := pb.ParseLoginResponse(resp)
	if token == "" {
		return "", fmt.Errorf("rpc error: empty token")
	}
	s.setToken(token)

	return actor, nil

}

func (s *GRPCClient) Logout() {
	s.setToken("")
}

func (s *GRPCClient) LoggedIn() bool {
	return s.token() != ""
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetValue() != "OK" {
		return ErrUnavailable
	}

	return nil

}

func (s *GRPCClient) Catalog(ctx context.Context) (map[string][]string, error) {

	resp, err := s.client.GetCatalog(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}

	return pb.StructToLists(resp), nil

}

func (s *GRPCClient) Submit(ctx context.Context, form map[string]string) (*Document, error) {

	var header metadata.MD
	resp, err := s.client.SubmitGrievance(ctx, pb.FormToStruct(form), grpc.Header(&header))
	if err != nil {
		return nil, s.mapError(err)
	}

	doc := &Document{Data: resp.GetValue(), FileName: "grievance.pdf"}
	if v := header.Get(pb.KeyFileName); len(v) > 0 && v[0] != "" {
		doc.FileName = v[0]
	}
	if v := header.Get(pb.KeyDegraded); len(v) > 0 {
		doc.Degraded, _ = strconv.ParseBool(v[0])
	}

	return doc, nil

}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		if st.Message() == common.ErrAccessDenied.Error() {
			return ErrAccessDenied
		}
		return ErrUnauthorized
	case codes.PermissionDenied:
		return ErrUnauthorized
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidForm, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
