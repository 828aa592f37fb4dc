package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/grievdesk/internal/common"
	pb "github.com/dmitrijs2005/grievdesk/internal/proto"
	"github.com/dmitrijs2005/grievdesk/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const sessionKey ctxKey = "session"

// protectedMethods need a valid access token.
var protectedMethods = map[string]bool{
	pb.SubmitGrievanceFullMethodName: true,
}

// SessionFromContext returns the session the interceptor attached, or an
// empty one.
func SessionFromContext(ctx context.Context) models.Session {
	s, _ := ctx.Value(sessionKey).(models.Session)
	return s
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if protectedMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		session, err := s.identity.Session(accessToken)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				return nil, status.Error(codes.Unauthenticated, "token expired")
			}
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, sessionKey, session)

	}

	return handler(ctx, req)
}
