package staffingv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CompanyServiceName は派遣先企業マスタサービスの完全修飾名です。
const CompanyServiceName = "staffing.v1.CompanyService"

const (
	CompanyService_CreateCompany_FullMethodName     = "/staffing.v1.CompanyService/CreateCompany"
	CompanyService_GetCompany_FullMethodName        = "/staffing.v1.CompanyService/GetCompany"
	CompanyService_ListCompanies_FullMethodName     = "/staffing.v1.CompanyService/ListCompanies"
	CompanyService_UpdateCompany_FullMethodName     = "/staffing.v1.CompanyService/UpdateCompany"
	CompanyService_DeactivateCompany_FullMethodName = "/staffing.v1.CompanyService/DeactivateCompany"
)

type CreateCompanyRequest struct {
	Name               string  `json:"name"`
	NameKana           string  `json:"name_kana,omitempty"`
	Code               string  `json:"code"`
	CompanyType        string  `json:"company_type,omitempty"`
	BillingRateDefault *int64  `json:"billing_rate_default,omitempty"`
	ContactName        string  `json:"contact_name,omitempty"`
	ContactPhone       string  `json:"contact_phone,omitempty"`
	Description        *string `json:"description,omitempty"`
}

type CreateCompanyResponse struct {
	Company *Company `json:"company"`
}

type GetCompanyRequest struct {
	ID string `json:"id"`
}

type GetCompanyResponse struct {
	Company *Company `json:"company"`
}

type ListCompaniesRequest struct {
	PageSize    int32  `json:"page_size,omitempty"`
	PageToken   string `json:"page_token,omitempty"`
	Status      string `json:"status,omitempty"`
	CompanyType string `json:"company_type,omitempty"`
}

type ListCompaniesResponse struct {
	Companies     []*Company `json:"companies"`
	NextPageToken string     `json:"next_page_token,omitempty"`
}

// UpdateCompanyRequest は会社の部分更新です。billing_rate_default は ClearFields で消去できます。
type UpdateCompanyRequest struct {
	ID                 string   `json:"id"`
	Name               *string  `json:"name,omitempty"`
	NameKana           *string  `json:"name_kana,omitempty"`
	Code               *string  `json:"code,omitempty"`
	CompanyType        *string  `json:"company_type,omitempty"`
	BillingRateDefault *int64   `json:"billing_rate_default,omitempty"`
	ContactName        *string  `json:"contact_name,omitempty"`
	ContactPhone       *string  `json:"contact_phone,omitempty"`
	Status             *string  `json:"status,omitempty"`
	Description        *string  `json:"description,omitempty"`
	ClearFields        []string `json:"clear_fields,omitempty"`
}

type UpdateCompanyResponse struct {
	Company *Company `json:"company"`
}

type DeactivateCompanyRequest struct {
	ID string `json:"id"`
}

type DeactivateCompanyResponse struct {
	Company *Company `json:"company"`
}

// CompanyServiceClient は CompanyService のクライアントです。
type CompanyServiceClient interface {
	CreateCompany(ctx context.Context, in *CreateCompanyRequest, opts ...grpc.CallOption) (*CreateCompanyResponse, error)
	GetCompany(ctx context.Context, in *GetCompanyRequest, opts ...grpc.CallOption) (*GetCompanyResponse, error)
	ListCompanies(ctx context.Context, in *ListCompaniesRequest, opts ...grpc.CallOption) (*ListCompaniesResponse, error)
	UpdateCompany(ctx context.Context, in *UpdateCompanyRequest, opts ...grpc.CallOption) (*UpdateCompanyResponse, error)
	DeactivateCompany(ctx context.Context, in *DeactivateCompanyRequest, opts ...grpc.CallOption) (*DeactivateCompanyResponse, error)
}

type companyServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCompanyServiceClient は CompanyServiceClient を生成します。
func NewCompanyServiceClient(cc grpc.ClientConnInterface) CompanyServiceClient {
	return &companyServiceClient{cc: cc}
}

func (c *companyServiceClient) CreateCompany(ctx context.Context, in *CreateCompanyRequest, opts ...grpc.CallOption) (*CreateCompanyResponse, error) {
	return invoke[CreateCompanyResponse](ctx, c.cc, CompanyService_CreateCompany_FullMethodName, in, opts)
}

func (c *companyServiceClient) GetCompany(ctx context.Context, in *GetCompanyRequest, opts ...grpc.CallOption) (*GetCompanyResponse, error) {
	return invoke[GetCompanyResponse](ctx, c.cc, CompanyService_GetCompany_FullMethodName, in, opts)
}

func (c *companyServiceClient) ListCompanies(ctx context.Context, in *ListCompaniesRequest, opts ...grpc.CallOption) (*ListCompaniesResponse, error) {
	return invoke[ListCompaniesResponse](ctx, c.cc, CompanyService_ListCompanies_FullMethodName, in, opts)
}

func (c *companyServiceClient) UpdateCompany(ctx context.Context, in *UpdateCompanyRequest, opts ...grpc.CallOption) (*UpdateCompanyResponse, error) {
	return invoke[UpdateCompanyResponse](ctx, c.cc, CompanyService_UpdateCompany_FullMethodName, in, opts)
}

func (c *companyServiceClient) DeactivateCompany(ctx context.Context, in *DeactivateCompanyRequest, opts ...grpc.CallOption) (*DeactivateCompanyResponse, error) {
	return invoke[DeactivateCompanyResponse](ctx, c.cc, CompanyService_DeactivateCompany_FullMethodName, in, opts)
}

// CompanyServiceServer は CompanyService のサーバー実装が満たすインターフェースです。
type CompanyServiceServer interface {
	CreateCompany(context.Context, *CreateCompanyRequest) (*CreateCompanyResponse, error)
	GetCompany(context.Context, *GetCompanyRequest) (*GetCompanyResponse, error)
	ListCompanies(context.Context, *ListCompaniesRequest) (*ListCompaniesResponse, error)
	UpdateCompany(context.Context, *UpdateCompanyRequest) (*UpdateCompanyResponse, error)
	// DeactivateCompany は会社を取引停止にします。停止中の会社には紹介できません。
	DeactivateCompany(context.Context, *DeactivateCompanyRequest) (*DeactivateCompanyResponse, error)
}

// UnimplementedCompanyServiceServer は未実装のメソッドに Unimplemented を返します。
type UnimplementedCompanyServiceServer struct{}

func (UnimplementedCompanyServiceServer) CreateCompany(context.Context, *CreateCompanyRequest) (*CreateCompanyResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateCompany not implemented")
}

func (UnimplementedCompanyServiceServer) GetCompany(context.Context, *GetCompanyRequest) (*GetCompanyResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCompany not implemented")
}

func (UnimplementedCompanyServiceServer) ListCompanies(context.Context, *ListCompaniesRequest) (*ListCompaniesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCompanies not implemented")
}

func (UnimplementedCompanyServiceServer) UpdateCompany(context.Context, *UpdateCompanyRequest) (*UpdateCompanyResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateCompany not implemented")
}

func (UnimplementedCompanyServiceServer) DeactivateCompany(context.Context, *DeactivateCompanyRequest) (*DeactivateCompanyResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeactivateCompany not implemented")
}

// RegisterCompanyServiceServer は srv を登録します。
func RegisterCompanyServiceServer(s grpc.ServiceRegistrar, srv CompanyServiceServer) {
	s.RegisterService(&CompanyService_ServiceDesc, srv)
}

// CompanyService_ServiceDesc は CompanyService の grpc.ServiceDesc です。
var CompanyService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CompanyServiceName,
	HandlerType: (*CompanyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(CompanyServiceName, "CreateCompany", CompanyServiceServer.CreateCompany),
		unaryMethod(CompanyServiceName, "GetCompany", CompanyServiceServer.GetCompany),
		unaryMethod(CompanyServiceName, "ListCompanies", CompanyServiceServer.ListCompanies),
		unaryMethod(CompanyServiceName, "UpdateCompany", CompanyServiceServer.UpdateCompany),
		unaryMethod(CompanyServiceName, "DeactivateCompany", CompanyServiceServer.DeactivateCompany),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "staffing/v1/CompanyService",
}
