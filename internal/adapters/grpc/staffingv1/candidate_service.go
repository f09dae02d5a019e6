package staffingv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CandidateServiceName は候補者管理サービスの完全修飾名です。
const CandidateServiceName = "staffing.v1.CandidateService"

const (
	CandidateService_RegisterCandidate_FullMethodName = "/staffing.v1.CandidateService/RegisterCandidate"
	CandidateService_GetCandidate_FullMethodName      = "/staffing.v1.CandidateService/GetCandidate"
	CandidateService_ListCandidates_FullMethodName    = "/staffing.v1.CandidateService/ListCandidates"
	CandidateService_UpdateProfile_FullMethodName     = "/staffing.v1.CandidateService/UpdateProfile"
)

type RegisterCandidateRequest struct {
	Profile CandidateProfile `json:"profile"`
}

type RegisterCandidateResponse struct {
	Candidate *Candidate `json:"candidate"`
}

type GetCandidateRequest struct {
	ID string `json:"id"`
}

type GetCandidateResponse struct {
	Candidate *Candidate `json:"candidate"`
}

type ListCandidatesRequest struct {
	PageSize  int32  `json:"page_size,omitempty"`
	PageToken string `json:"page_token,omitempty"`
	Status    string `json:"status,omitempty"`
	Search    string `json:"search,omitempty"`
}

type ListCandidatesResponse struct {
	Candidates    []*Candidate `json:"candidates"`
	NextPageToken string       `json:"next_page_token,omitempty"`
}

type UpdateProfileRequest struct {
	ID    string                `json:"id"`
	Patch CandidateProfilePatch `json:"patch"`
}

type UpdateProfileResponse struct {
	Candidate *Candidate `json:"candidate"`
}

// CandidateServiceClient は CandidateService のクライアントです。
type CandidateServiceClient interface {
	RegisterCandidate(ctx context.Context, in *RegisterCandidateRequest, opts ...grpc.CallOption) (*RegisterCandidateResponse, error)
	GetCandidate(ctx context.Context, in *GetCandidateRequest, opts ...grpc.CallOption) (*GetCandidateResponse, error)
	ListCandidates(ctx context.Context, in *ListCandidatesRequest, opts ...grpc.CallOption) (*ListCandidatesResponse, error)
	UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*UpdateProfileResponse, error)
}

type candidateServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCandidateServiceClient は CandidateServiceClient を生成します。
func NewCandidateServiceClient(cc grpc.ClientConnInterface) CandidateServiceClient {
	return &candidateServiceClient{cc: cc}
}

func (c *candidateServiceClient) RegisterCandidate(ctx context.Context, in *RegisterCandidateRequest, opts ...grpc.CallOption) (*RegisterCandidateResponse, error) {
	return invoke[RegisterCandidateResponse](ctx, c.cc, CandidateService_RegisterCandidate_FullMethodName, in, opts)
}

func (c *candidateServiceClient) GetCandidate(ctx context.Context, in *GetCandidateRequest, opts ...grpc.CallOption) (*GetCandidateResponse, error) {
	return invoke[GetCandidateResponse](ctx, c.cc, CandidateService_GetCandidate_FullMethodName, in, opts)
}

func (c *candidateServiceClient) ListCandidates(ctx context.Context, in *ListCandidatesRequest, opts ...grpc.CallOption) (*ListCandidatesResponse, error) {
	return invoke[ListCandidatesResponse](ctx, c.cc, CandidateService_ListCandidates_FullMethodName, in, opts)
}

func (c *candidateServiceClient) UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*UpdateProfileResponse, error) {
	return invoke[UpdateProfileResponse](ctx, c.cc, CandidateService_UpdateProfile_FullMethodName, in, opts)
}

// CandidateServiceServer は CandidateService のサーバー実装が満たすインターフェースです。
type CandidateServiceServer interface {
	// RegisterCandidate は候補者を registered 状態で登録します。
	RegisterCandidate(context.Context, *RegisterCandidateRequest) (*RegisterCandidateResponse, error)
	GetCandidate(context.Context, *GetCandidateRequest) (*GetCandidateResponse, error)
	ListCandidates(context.Context, *ListCandidatesRequest) (*ListCandidatesResponse, error)
	// UpdateProfile はプロフィールを部分更新します。状態は変更しません。
	UpdateProfile(context.Context, *UpdateProfileRequest) (*UpdateProfileResponse, error)
}

// UnimplementedCandidateServiceServer は未実装のメソッドに Unimplemented を返します。
type UnimplementedCandidateServiceServer struct{}

func (UnimplementedCandidateServiceServer) RegisterCandidate(context.Context, *RegisterCandidateRequest) (*RegisterCandidateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterCandidate not implemented")
}

func (UnimplementedCandidateServiceServer) GetCandidate(context.Context, *GetCandidateRequest) (*GetCandidateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCandidate not implemented")
}

func (UnimplementedCandidateServiceServer) ListCandidates(context.Context, *ListCandidatesRequest) (*ListCandidatesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCandidates not implemented")
}

func (UnimplementedCandidateServiceServer) UpdateProfile(context.Context, *UpdateProfileRequest) (*UpdateProfileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateProfile not implemented")
}

// RegisterCandidateServiceServer は srv を登録します。
func RegisterCandidateServiceServer(s grpc.ServiceRegistrar, srv CandidateServiceServer) {
	s.RegisterService(&CandidateService_ServiceDesc, srv)
}

// CandidateService_ServiceDesc は CandidateService の grpc.ServiceDesc です。
var CandidateService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CandidateServiceName,
	HandlerType: (*CandidateServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(CandidateServiceName, "RegisterCandidate", CandidateServiceServer.RegisterCandidate),
		unaryMethod(CandidateServiceName, "GetCandidate", CandidateServiceServer.GetCandidate),
		unaryMethod(CandidateServiceName, "ListCandidates", CandidateServiceServer.ListCandidates),
		unaryMethod(CandidateServiceName, "UpdateProfile", CandidateServiceServer.UpdateProfile),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "staffing/v1/CandidateService",
}
