package staffingv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PlacementServiceName は紹介から入社承認までのワークフローサービスの完全修飾名です。
const PlacementServiceName = "staffing.v1.PlacementService"

const (
	PlacementService_PresentCandidate_FullMethodName = "/staffing.v1.PlacementService/PresentCandidate"
	PlacementService_RecordResult_FullMethodName     = "/staffing.v1.PlacementService/RecordResult"
	PlacementService_GetApplication_FullMethodName   = "/staffing.v1.PlacementService/GetApplication"
	PlacementService_ListApplications_FullMethodName = "/staffing.v1.PlacementService/ListApplications"
	PlacementService_CreateNotice_FullMethodName     = "/staffing.v1.PlacementService/CreateNotice"
	PlacementService_UpdateNotice_FullMethodName     = "/staffing.v1.PlacementService/UpdateNotice"
	PlacementService_SubmitNotice_FullMethodName     = "/staffing.v1.PlacementService/SubmitNotice"
	PlacementService_ApproveNotice_FullMethodName    = "/staffing.v1.PlacementService/ApproveNotice"
	PlacementService_RejectNotice_FullMethodName     = "/staffing.v1.PlacementService/RejectNotice"
	PlacementService_GetNotice_FullMethodName        = "/staffing.v1.PlacementService/GetNotice"
	PlacementService_ListNotices_FullMethodName      = "/staffing.v1.PlacementService/ListNotices"
)

type PresentCandidateRequest struct {
	CandidateID string `json:"candidate_id"`
	CompanyID   string `json:"company_id,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
}

type PresentCandidateResponse struct {
	Application *Application `json:"application"`
	Candidate   *Candidate   `json:"candidate"`
}

type RecordResultRequest struct {
	ApplicationID string `json:"application_id"`
	Outcome       string `json:"outcome"`
	Notes         string `json:"notes,omitempty"`
}

type RecordResultResponse struct {
	Application *Application `json:"application"`
	Candidate   *Candidate   `json:"candidate"`
}

type GetApplicationRequest struct {
	ID string `json:"id"`
}

type GetApplicationResponse struct {
	Application *Application `json:"application"`
}

type ListApplicationsRequest struct {
	PageSize    int32  `json:"page_size,omitempty"`
	PageToken   string `json:"page_token,omitempty"`
	CandidateID string `json:"candidate_id,omitempty"`
	Status      string `json:"status,omitempty"`
}

type ListApplicationsResponse struct {
	Applications  []*Application `json:"applications"`
	NextPageToken string         `json:"next_page_token,omitempty"`
}

type CreateNoticeRequest struct {
	CandidateID    string       `json:"candidate_id"`
	ApplicationID  string       `json:"application_id,omitempty"`
	EmploymentType string       `json:"employment_type"`
	Fields         NoticeFields `json:"fields"`
}

type CreateNoticeResponse struct {
	Notice    *JoiningNotice `json:"notice"`
	Candidate *Candidate     `json:"candidate"`
}

type UpdateNoticeRequest struct {
	ID    string            `json:"id"`
	Patch NoticeFieldsPatch `json:"patch"`
}

type UpdateNoticeResponse struct {
	Notice *JoiningNotice `json:"notice"`
}

type SubmitNoticeRequest struct {
	ID string `json:"id"`
}

type SubmitNoticeResponse struct {
	Notice *JoiningNotice `json:"notice"`
}

type ApproveNoticeRequest struct {
	ID string `json:"id"`
}

type ApproveNoticeResponse struct {
	Notice     *JoiningNotice `json:"notice"`
	Candidate  *Candidate     `json:"candidate"`
	Employee   *Employee      `json:"employee"`
	Assignment *Assignment    `json:"assignment"`
}

type RejectNoticeRequest struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

type RejectNoticeResponse struct {
	Notice    *JoiningNotice `json:"notice"`
	Candidate *Candidate     `json:"candidate"`
}

type GetNoticeRequest struct {
	ID string `json:"id"`
}

type GetNoticeResponse struct {
	Notice *JoiningNotice `json:"notice"`
}

type ListNoticesRequest struct {
	PageSize    int32  `json:"page_size,omitempty"`
	PageToken   string `json:"page_token,omitempty"`
	CandidateID string `json:"candidate_id,omitempty"`
	Status      string `json:"status,omitempty"`
}

type ListNoticesResponse struct {
	Notices       []*JoiningNotice `json:"notices"`
	NextPageToken string           `json:"next_page_token,omitempty"`
}

// PlacementServiceClient は PlacementService のクライアントです。
type PlacementServiceClient interface {
	PresentCandidate(ctx context.Context, in *PresentCandidateRequest, opts ...grpc.CallOption) (*PresentCandidateResponse, error)
	RecordResult(ctx context.Context, in *RecordResultRequest, opts ...grpc.CallOption) (*RecordResultResponse, error)
	GetApplication(ctx context.Context, in *GetApplicationRequest, opts ...grpc.CallOption) (*GetApplicationResponse, error)
	ListApplications(ctx context.Context, in *ListApplicationsRequest, opts ...grpc.CallOption) (*ListApplicationsResponse, error)
	CreateNotice(ctx context.Context, in *CreateNoticeRequest, opts ...grpc.CallOption) (*CreateNoticeResponse, error)
	UpdateNotice(ctx context.Context, in *UpdateNoticeRequest, opts ...grpc.CallOption) (*UpdateNoticeResponse, error)
	SubmitNotice(ctx context.Context, in *SubmitNoticeRequest, opts ...grpc.CallOption) (*SubmitNoticeResponse, error)
	ApproveNotice(ctx context.Context, in *ApproveNoticeRequest, opts ...grpc.CallOption) (*ApproveNoticeResponse, error)
	RejectNotice(ctx context.Context, in *RejectNoticeRequest, opts ...grpc.CallOption) (*RejectNoticeResponse, error)
	GetNotice(ctx context.Context, in *GetNoticeRequest, opts ...grpc.CallOption) (*GetNoticeResponse, error)
	ListNotices(ctx context.Context, in *ListNoticesRequest, opts ...grpc.CallOption) (*ListNoticesResponse, error)
}

type placementServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPlacementServiceClient は PlacementServiceClient を生成します。
func NewPlacementServiceClient(cc grpc.ClientConnInterface) PlacementServiceClient {
	return &placementServiceClient{cc: cc}
}

func (c *placementServiceClient) PresentCandidate(ctx context.Context, in *PresentCandidateRequest, opts ...grpc.CallOption) (*PresentCandidateResponse, error) {
	return invoke[PresentCandidateResponse](ctx, c.cc, PlacementService_PresentCandidate_FullMethodName, in, opts)
}

func (c *placementServiceClient) RecordResult(ctx context.Context, in *RecordResultRequest, opts ...grpc.CallOption) (*RecordResultResponse, error) {
	return invoke[RecordResultResponse](ctx, c.cc, PlacementService_RecordResult_FullMethodName, in, opts)
}

func (c *placementServiceClient) GetApplication(ctx context.Context, in *GetApplicationRequest, opts ...grpc.CallOption) (*GetApplicationResponse, error) {
	return invoke[GetApplicationResponse](ctx, c.cc, PlacementService_GetApplication_FullMethodName, in, opts)
}

func (c *placementServiceClient) ListApplications(ctx context.Context, in *ListApplicationsRequest, opts ...grpc.CallOption) (*ListApplicationsResponse, error) {
	return invoke[ListApplicationsResponse](ctx, c.cc, PlacementService_ListApplications_FullMethodName, in, opts)
}

func (c *placementServiceClient) CreateNotice(ctx context.Context, in *CreateNoticeRequest, opts ...grpc.CallOption) (*CreateNoticeResponse, error) {
	return invoke[CreateNoticeResponse](ctx, c.cc, PlacementService_CreateNotice_FullMethodName, in, opts)
}

func (c *placementServiceClient) UpdateNotice(ctx context.Context, in *UpdateNoticeRequest, opts ...grpc.CallOption) (*UpdateNoticeResponse, error) {
	return invoke[UpdateNoticeResponse](ctx, c.cc, PlacementService_UpdateNotice_FullMethodName, in, opts)
}

func (c *placementServiceClient) SubmitNotice(ctx context.Context, in *SubmitNoticeRequest, opts ...grpc.CallOption) (*SubmitNoticeResponse, error) {
	return invoke[SubmitNoticeResponse](ctx, c.cc, PlacementService_SubmitNotice_FullMethodName, in, opts)
}

func (c *placementServiceClient) ApproveNotice(ctx context.Context, in *ApproveNoticeRequest, opts ...grpc.CallOption) (*ApproveNoticeResponse, error) {
	return invoke[ApproveNoticeResponse](ctx, c.cc, PlacementService_ApproveNotice_FullMethodName, in, opts)
}

func (c *placementServiceClient) RejectNotice(ctx context.Context, in *RejectNoticeRequest, opts ...grpc.CallOption) (*RejectNoticeResponse, error) {
	return invoke[RejectNoticeResponse](ctx, c.cc, PlacementService_RejectNotice_FullMethodName, in, opts)
}

func (c *placementServiceClient) GetNotice(ctx context.Context, in *GetNoticeRequest, opts ...grpc.CallOption) (*GetNoticeResponse, error) {
	return invoke[GetNoticeResponse](ctx, c.cc, PlacementService_GetNotice_FullMethodName, in, opts)
}

func (c *placementServiceClient) ListNotices(ctx context.Context, in *ListNoticesRequest, opts ...grpc.CallOption) (*ListNoticesResponse, error) {
	return invoke[ListNoticesResponse](ctx, c.cc, PlacementService_ListNotices_FullMethodName, in, opts)
}

// PlacementServiceServer は PlacementService のサーバー実装が満たすインターフェースです。
type PlacementServiceServer interface {
	// PresentCandidate は候補者を派遣先企業へ紹介します。
	PresentCandidate(context.Context, *PresentCandidateRequest) (*PresentCandidateResponse, error)
	// RecordResult は紹介結果 (accepted / rejected) を記録します。
	RecordResult(context.Context, *RecordResultRequest) (*RecordResultResponse, error)
	GetApplication(context.Context, *GetApplicationRequest) (*GetApplicationResponse, error)
	ListApplications(context.Context, *ListApplicationsRequest) (*ListApplicationsResponse, error)
	// CreateNotice は入社連絡票を draft で作成し、候補者を processing にします。
	CreateNotice(context.Context, *CreateNoticeRequest) (*CreateNoticeResponse, error)
	// UpdateNotice はdraft の入社連絡票を部分更新します。
	UpdateNotice(context.Context, *UpdateNoticeRequest) (*UpdateNoticeResponse, error)
	// SubmitNotice は入社連絡票を承認待ちにします。
	SubmitNotice(context.Context, *SubmitNoticeRequest) (*SubmitNoticeResponse, error)
	// ApproveNotice は入社連絡票を承認し、社員と配属を作成します。
	ApproveNotice(context.Context, *ApproveNoticeRequest) (*ApproveNoticeResponse, error)
	// RejectNotice は入社連絡票を差し戻します。
	RejectNotice(context.Context, *RejectNoticeRequest) (*RejectNoticeResponse, error)
	GetNotice(context.Context, *GetNoticeRequest) (*GetNoticeResponse, error)
	ListNotices(context.Context, *ListNoticesRequest) (*ListNoticesResponse, error)
}

// UnimplementedPlacementServiceServer は未実装のメソッドに Unimplemented を返します。
type UnimplementedPlacementServiceServer struct{}

func (UnimplementedPlacementServiceServer) PresentCandidate(context.Context, *PresentCandidateRequest) (*PresentCandidateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PresentCandidate not implemented")
}

func (UnimplementedPlacementServiceServer) RecordResult(context.Context, *RecordResultRequest) (*RecordResultResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RecordResult not implemented")
}

func (UnimplementedPlacementServiceServer) GetApplication(context.Context, *GetApplicationRequest) (*GetApplicationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetApplication not implemented")
}

func (UnimplementedPlacementServiceServer) ListApplications(context.Context, *ListApplicationsRequest) (*ListApplicationsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListApplications not implemented")
}

func (UnimplementedPlacementServiceServer) CreateNotice(context.Context, *CreateNoticeRequest) (*CreateNoticeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateNotice not implemented")
}

func (UnimplementedPlacementServiceServer) UpdateNotice(context.Context, *UpdateNoticeRequest) (*UpdateNoticeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateNotice not implemented")
}

func (UnimplementedPlacementServiceServer) SubmitNotice(context.Context, *SubmitNoticeRequest) (*SubmitNoticeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitNotice not implemented")
}

func (UnimplementedPlacementServiceServer) ApproveNotice(context.Context, *ApproveNoticeRequest) (*ApproveNoticeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ApproveNotice not implemented")
}

func (UnimplementedPlacementServiceServer) RejectNotice(context.Context, *RejectNoticeRequest) (*RejectNoticeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RejectNotice not implemented")
}

func (UnimplementedPlacementServiceServer) GetNotice(context.Context, *GetNoticeRequest) (*GetNoticeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetNotice not implemented")
}

func (UnimplementedPlacementServiceServer) ListNotices(context.Context, *ListNoticesRequest) (*ListNoticesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListNotices not implemented")
}

// RegisterPlacementServiceServer は srv を登録します。
func RegisterPlacementServiceServer(s grpc.ServiceRegistrar, srv PlacementServiceServer) {
	s.RegisterService(&PlacementService_ServiceDesc, srv)
}

// PlacementService_ServiceDesc は PlacementService の grpc.ServiceDesc です。
var PlacementService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: PlacementServiceName,
	HandlerType: (*PlacementServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(PlacementServiceName, "PresentCandidate", PlacementServiceServer.PresentCandidate),
		unaryMethod(PlacementServiceName, "RecordResult", PlacementServiceServer.RecordResult),
		unaryMethod(PlacementServiceName, "GetApplication", PlacementServiceServer.GetApplication),
		unaryMethod(PlacementServiceName, "ListApplications", PlacementServiceServer.ListApplications),
		unaryMethod(PlacementServiceName, "CreateNotice", PlacementServiceServer.CreateNotice),
		unaryMethod(PlacementServiceName, "UpdateNotice", PlacementServiceServer.UpdateNotice),
		unaryMethod(PlacementServiceName, "SubmitNotice", PlacementServiceServer.SubmitNotice),
		unaryMethod(PlacementServiceName, "ApproveNotice", PlacementServiceServer.ApproveNotice),
		unaryMethod(PlacementServiceName, "RejectNotice", PlacementServiceServer.RejectNotice),
		unaryMethod(PlacementServiceName, "GetNotice", PlacementServiceServer.GetNotice),
		unaryMethod(PlacementServiceName, "ListNotices", PlacementServiceServer.ListNotices),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "staffing/v1/PlacementService",
}
