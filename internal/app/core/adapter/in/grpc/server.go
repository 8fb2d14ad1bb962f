package grpc

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-atm-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-atm-ledger/internal/app/core/usecase"
	pb "github.com/JoeShih716/go-atm-ledger/proto/atm/v1"
)

// MessageTryAgain 儲存層故障時回給使用者的訊息，不包含原因
const MessageTryAgain = "service temporarily unavailable, please try again"

// Tokens 簽發與驗證 session token
type Tokens interface {
	Issue(sess domain.Session) (string, error)
	Parse(token string) (domain.Session, error)
}

type GrpcServer struct {
	pb.UnimplementedTellerServiceServer
	core   *usecase.CoreUseCase
	tokens Tokens
}

func NewGrpcServer(core *usecase.CoreUseCase, tokens Tokens) *GrpcServer {
	return &GrpcServer{
		core:   core,
		tokens: tokens,
	}
}

func (s *GrpcServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	sess, err := s.core.Login(ctx, req.GetAccountNumber(), req.GetPin())
	if err != nil {
		return nil, toStatus(err)
	}
	token, err := s.tokens.Issue(sess)
	if err != nil {
		slog.ErrorContext(ctx, "issue session token failed", "account", sess.AccountNumber, "error", err)
		return nil, status.Error(codes.Internal, MessageTryAgain)
	}
	resp := &pb.LoginResponse{Token: token}
	if !sess.ExpiresAt.IsZero() {
		resp.ExpiresAt = sess.ExpiresAt.Unix()
	}
	return resp, nil
}

func (s *GrpcServer) GetBalance(ctx context.Context, _ *pb.GetBalanceRequest) (*pb.BalanceResponse, error) {
	balance, err := s.core.GetBalance(ctx, sessionFromContext(ctx))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.BalanceResponse{Balance: balance.String()}, nil
}

func (s *GrpcServer) Deposit(ctx context.Context, req *pb.DepositRequest) (*pb.BalanceResponse, error) {
	amount, err := domain.ParseAmount(req.GetAmount())
	if err != nil {
		return nil, toStatus(err)
	}
	balance, err := s.core.Deposit(ctx, sessionFromContext(ctx), amount)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.BalanceResponse{Balance: balance.String()}, nil
}

// Withdraw 餘額不足回傳 Success=false (Soft Failure)，不是 gRPC 錯誤
func (s *GrpcServer) Withdraw(ctx context.Context, req *pb.WithdrawRequest) (*pb.WithdrawResponse, error) {
	amount, err := domain.ParseAmount(req.GetAmount())
	if err != nil {
		return nil, toStatus(err)
	}
	ok, balance, err := s.core.Withdraw(ctx, sessionFromContext(ctx), amount)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &pb.WithdrawResponse{
		Success: ok,
		Balance: balance.String(),
	}
	if !ok {
		resp.Message = "insufficient balance"
	}
	return resp, nil
}

func (s *GrpcServer) ChangePIN(ctx context.Context, req *pb.ChangePINRequest) (*pb.ChangePINResponse, error) {
	if err := domain.ValidatePINChange(req.GetNewPin(), req.GetConfirmPin()); err != nil {
		return nil, toStatus(err)
	}
	if err := s.core.ChangePIN(ctx, sessionFromContext(ctx), req.GetNewPin()); err != nil {
		return nil, toStatus(err)
	}
	return &pb.ChangePINResponse{}, nil
}

func (s *GrpcServer) GetHistory(ctx context.Context, req *pb.HistoryRequest) (*pb.HistoryResponse, error) {
	kind, err := domain.ParseEntryKind(req.GetKind())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	entries, err := s.core.GetHistory(ctx, sessionFromContext(ctx), domain.HistoryQuery{Kind: kind, Limit: int(req.GetLimit())})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.HistoryResponse{Entries: toPBEntries(entries)}, nil
}

type sessionKey struct{}

func sessionFromContext(ctx context.Context) domain.Session {
	sess, _ := ctx.Value(sessionKey{}).(domain.Session)
	return sess
}

// tellerPrefix TellerService 方法的 FullMethod 前綴
var tellerPrefix = "/" + pb.TellerService_ServiceDesc.ServiceName + "/"

// AuthInterceptor 從 metadata 的 authorization 取出 token
// TellerService 除了 Login 以外都需要；health 等其他服務不檢查
func AuthInterceptor(tokens Tokens) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !strings.HasPrefix(info.FullMethod, tellerPrefix) || info.FullMethod == pb.TellerService_Login_FullMethodName {
			return handler(ctx, req)
		}
		md, _ := metadata.FromIncomingContext(ctx)
		values := md.Get("authorization")
		if len(values) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing session token")
		}
		token, found := strings.CutPrefix(values[0], "Bearer ")
		if !found {
			return nil, status.Error(codes.Unauthenticated, "invalid authorization header")
		}
		sess, err := tokens.Parse(token)
		if err != nil {
			return nil, toStatus(err)
		}
		return handler(context.WithValue(ctx, sessionKey{}, sess), req)
	}
}

// LoggingInterceptor 每個呼叫記錄一筆 log
func LoggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logger.InfoContext(ctx, "grpc call",
			"method", info.FullMethod,
			"code", status.Code(err).String(),
			"duration", time.Since(start),
		)
		return resp, err
	}
}

// toStatus 將 domain 錯誤轉為 gRPC status
func toStatus(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidPIN),
		errors.Is(err, domain.ErrPINMismatch):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidSession):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, domain.ErrAccountLocked):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, domain.ErrAccountNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable), errors.Is(err, domain.ErrStore):
		return status.Error(codes.Unavailable, MessageTryAgain)
	default:
		return status.Error(codes.Internal, MessageTryAgain)
	}
}

var _ pb.TellerServiceServer = (*GrpcServer)(nil)
