package grpc

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-atm-ledger/internal/app/core/domain"
	pb "github.com/JoeShih716/go-atm-ledger/proto/atm/v1"
)

// TellerClient 包裝產生的 TellerServiceClient，Login 後自動帶上 token
// Login 會改寫 token，不可與其他呼叫並發；登入後其他方法可以並發呼叫
type TellerClient struct {
	client pb.TellerServiceClient
	token  string
}

func NewTellerClient(conn grpc.ClientConnInterface) *TellerClient {
	return &TellerClient{client: pb.NewTellerServiceClient(conn)}
}

func (c *TellerClient) withToken(ctx context.Context) context.Context {
	if c.token == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+c.token)
}

func (c *TellerClient) Login(ctx context.Context, accountNumber string, pin string) error {
	resp, err := c.client.Login(ctx, &pb.LoginRequest{AccountNumber: accountNumber, Pin: pin})
	if err != nil {
		return FromStatus(err)
	}
	c.token = resp.GetToken()
	return nil
}

func (c *TellerClient) GetBalance(ctx context.Context) (string, error) {
	resp, err := c.client.GetBalance(c.withToken(ctx), &pb.GetBalanceRequest{})
	if err != nil {
		return "", FromStatus(err)
	}
	return resp.GetBalance(), nil
}

func (c *TellerClient) Deposit(ctx context.Context, amount string) (string, error) {
	resp, err := c.client.Deposit(c.withToken(ctx), &pb.DepositRequest{Amount: amount})
	if err != nil {
		return "", FromStatus(err)
	}
	return resp.GetBalance(), nil
}

func (c *TellerClient) Withdraw(ctx context.Context, amount string) (*pb.WithdrawResponse, error) {
	resp, err := c.client.Withdraw(c.withToken(ctx), &pb.WithdrawRequest{Amount: amount})
	if err != nil {
		return nil, FromStatus(err)
	}
	return resp, nil
}

func (c *TellerClient) ChangePIN(ctx context.Context, newPIN string, confirm string) error {
	_, err := c.client.ChangePIN(c.withToken(ctx), &pb.ChangePINRequest{NewPin: newPIN, ConfirmPin: confirm})
	return FromStatus(err)
}

func (c *TellerClient) GetHistory(ctx context.Context, kind string, limit int) ([]*pb.Entry, error) {
	resp, err := c.client.GetHistory(c.withToken(ctx), &pb.HistoryRequest{Kind: kind, Limit: int32(limit)})
	if err != nil {
		return nil, FromStatus(err)
	}
	return resp.GetEntries(), nil
}

// ClientLoggingInterceptor 客戶端每個呼叫記錄一筆 debug log
func ClientLoggingInterceptor(logger *slog.Logger) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		logger.DebugContext(ctx, "grpc call",
			"method", method,
			"code", status.Code(err).String(),
			"duration", time.Since(start),
		)
		return err
	}
}

// FromStatus 把 gRPC status 轉回 domain 錯誤，讓呼叫端可以用 errors.Is 判斷
func FromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unavailable:
		return domain.ErrStoreUnavailable
	case codes.NotFound:
		return domain.ErrAccountNotFound
	case codes.PermissionDenied:
		return domain.ErrAccountLocked
	case codes.Unauthenticated:
		if st.Message() == domain.ErrInvalidCredentials.Error() {
			return domain.ErrInvalidCredentials
		}
		return domain.ErrInvalidSession
	case codes.InvalidArgument:
		switch st.Message() {
		case domain.ErrInvalidPIN.Error():
			return domain.ErrInvalidPIN
		case domain.ErrPINMismatch.Error():
			return domain.ErrPINMismatch
		case domain.ErrInvalidAmount.Error():
			return domain.ErrInvalidAmount
		}
	}
	return err
}
