package staffingv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ApartmentServiceName は社宅管理サービスの完全修飾名です。
const ApartmentServiceName = "staffing.v1.ApartmentService"

const (
	ApartmentService_CreateApartment_FullMethodName     = "/staffing.v1.ApartmentService/CreateApartment"
	ApartmentService_GetApartment_FullMethodName        = "/staffing.v1.ApartmentService/GetApartment"
	ApartmentService_ListApartments_FullMethodName      = "/staffing.v1.ApartmentService/ListApartments"
	ApartmentService_UpdateApartment_FullMethodName     = "/staffing.v1.ApartmentService/UpdateApartment"
	ApartmentService_DeactivateApartment_FullMethodName = "/staffing.v1.ApartmentService/DeactivateApartment"
	ApartmentService_ListOccupants_FullMethodName       = "/staffing.v1.ApartmentService/ListOccupants"
)

type CreateApartmentRequest struct {
	Name        string `json:"name"`
	PostalCode  string `json:"postal_code,omitempty"`
	Address     string `json:"address,omitempty"`
	RoomNumber  string `json:"room_number,omitempty"`
	Capacity    int32  `json:"capacity"`
	MonthlyRent *int64 `json:"monthly_rent,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type CreateApartmentResponse struct {
	Apartment *Apartment `json:"apartment"`
}

type GetApartmentRequest struct {
	ID string `json:"id"`
}

type GetApartmentResponse struct {
	Apartment *Apartment `json:"apartment"`
}

type ListApartmentsRequest struct {
	PageSize   int32  `json:"page_size,omitempty"`
	PageToken  string `json:"page_token,omitempty"`
	ActiveOnly bool   `json:"active_only,omitempty"`
	VacantOnly bool   `json:"vacant_only,omitempty"`
	Search     string `json:"search,omitempty"`
}

type ListApartmentsResponse struct {
	Apartments    []*Apartment `json:"apartments"`
	NextPageToken string       `json:"next_page_token,omitempty"`
}

// UpdateApartmentRequest は社宅の部分更新です。monthly_rent は ClearFields で消去できます。
type UpdateApartmentRequest struct {
	ID          string   `json:"id"`
	Name        *string  `json:"name,omitempty"`
	PostalCode  *string  `json:"postal_code,omitempty"`
	Address     *string  `json:"address,omitempty"`
	RoomNumber  *string  `json:"room_number,omitempty"`
	Capacity    *int32   `json:"capacity,omitempty"`
	MonthlyRent *int64   `json:"monthly_rent,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
	ClearFields []string `json:"clear_fields,omitempty"`
}

type UpdateApartmentResponse struct {
	Apartment *Apartment `json:"apartment"`
}

type DeactivateApartmentRequest struct {
	ID string `json:"id"`
}

type DeactivateApartmentResponse struct {
	Apartment *Apartment `json:"apartment"`
}

type ListOccupantsRequest struct {
	ApartmentID string `json:"apartment_id"`
}

type ListOccupantsResponse struct {
	Apartment *Apartment  `json:"apartment"`
	Occupants []*Occupant `json:"occupants"`
}

// ApartmentServiceClient は ApartmentService のクライアントです。
type ApartmentServiceClient interface {
	CreateApartment(ctx context.Context, in *CreateApartmentRequest, opts ...grpc.CallOption) (*CreateApartmentResponse, error)
	GetApartment(ctx context.Context, in *GetApartmentRequest, opts ...grpc.CallOption) (*GetApartmentResponse, error)
	ListApartments(ctx context.Context, in *ListApartmentsRequest, opts ...grpc.CallOption) (*ListApartmentsResponse, error)
	UpdateApartment(ctx context.Context, in *UpdateApartmentRequest, opts ...grpc.CallOption) (*UpdateApartmentResponse, error)
	DeactivateApartment(ctx context.Context, in *DeactivateApartmentRequest, opts ...grpc.CallOption) (*DeactivateApartmentResponse, error)
	ListOccupants(ctx context.Context, in *ListOccupantsRequest, opts ...grpc.CallOption) (*ListOccupantsResponse, error)
}

type apartmentServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewApartmentServiceClient は ApartmentServiceClient を生成します。
func NewApartmentServiceClient(cc grpc.ClientConnInterface) ApartmentServiceClient {
	return &apartmentServiceClient{cc: cc}
}

func (c *apartmentServiceClient) CreateApartment(ctx context.Context, in *CreateApartmentRequest, opts ...grpc.CallOption) (*CreateApartmentResponse, error) {
	return invoke[CreateApartmentResponse](ctx, c.cc, ApartmentService_CreateApartment_FullMethodName, in, opts)
}

func (c *apartmentServiceClient) GetApartment(ctx context.Context, in *GetApartmentRequest, opts ...grpc.CallOption) (*GetApartmentResponse, error) {
	return invoke[GetApartmentResponse](ctx, c.cc, ApartmentService_GetApartment_FullMethodName, in, opts)
}

func (c *apartmentServiceClient) ListApartments(ctx context.Context, in *ListApartmentsRequest, opts ...grpc.CallOption) (*ListApartmentsResponse, error) {
	return invoke[ListApartmentsResponse](ctx, c.cc, ApartmentService_ListApartments_FullMethodName, in, opts)
}

func (c *apartmentServiceClient) UpdateApartment(ctx context.Context, in *UpdateApartmentRequest, opts ...grpc.CallOption) (*UpdateApartmentResponse, error) {
	return invoke[UpdateApartmentResponse](ctx, c.cc, ApartmentService_UpdateApartment_FullMethodName, in, opts)
}

func (c *apartmentServiceClient) DeactivateApartment(ctx context.Context, in *DeactivateApartmentRequest, opts ...grpc.CallOption) (*DeactivateApartmentResponse, error) {
	return invoke[DeactivateApartmentResponse](ctx, c.cc, ApartmentService_DeactivateApartment_FullMethodName, in, opts)
}

func (c *apartmentServiceClient) ListOccupants(ctx context.Context, in *ListOccupantsRequest, opts ...grpc.CallOption) (*ListOccupantsResponse, error) {
	return invoke[ListOccupantsResponse](ctx, c.cc, ApartmentService_ListOccupants_FullMethodName, in, opts)
}

// ApartmentServiceServer は ApartmentService のサーバー実装が満たすインターフェースです。
type ApartmentServiceServer interface {
	CreateApartment(context.Context, *CreateApartmentRequest) (*CreateApartmentResponse, error)
	GetApartment(context.Context, *GetApartmentRequest) (*GetApartmentResponse, error)
	// ListApartments は社宅を取得します。vacant_only は有効かつ空きのある社宅に限定します。
	ListApartments(context.Context, *ListApartmentsRequest) (*ListApartmentsResponse, error)
	UpdateApartment(context.Context, *UpdateApartmentRequest) (*UpdateApartmentResponse, error)
	// DeactivateApartment は社宅を利用停止にします。入居者がいる場合は失敗します。
	DeactivateApartment(context.Context, *DeactivateApartmentRequest) (*DeactivateApartmentResponse, error)
	// ListOccupants は社宅に入居中の在籍社員を返します。
	ListOccupants(context.Context, *ListOccupantsRequest) (*ListOccupantsResponse, error)
}

// UnimplementedApartmentServiceServer は未実装のメソッドに Unimplemented を返します。
type UnimplementedApartmentServiceServer struct{}

func (UnimplementedApartmentServiceServer) CreateApartment(context.Context, *CreateApartmentRequest) (*CreateApartmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateApartment not implemented")
}

func (UnimplementedApartmentServiceServer) GetApartment(context.Context, *GetApartmentRequest) (*GetApartmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetApartment not implemented")
}

func (UnimplementedApartmentServiceServer) ListApartments(context.Context, *ListApartmentsRequest) (*ListApartmentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListApartments not implemented")
}

func (UnimplementedApartmentServiceServer) UpdateApartment(context.Context, *UpdateApartmentRequest) (*UpdateApartmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateApartment not implemented")
}

func (UnimplementedApartmentServiceServer) DeactivateApartment(context.Context, *DeactivateApartmentRequest) (*DeactivateApartmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeactivateApartment not implemented")
}

func (UnimplementedApartmentServiceServer) ListOccupants(context.Context, *ListOccupantsRequest) (*ListOccupantsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListOccupants not implemented")
}

// RegisterApartmentServiceServer は srv を登録します。
func RegisterApartmentServiceServer(s grpc.ServiceRegistrar, srv ApartmentServiceServer) {
	s.RegisterService(&ApartmentService_ServiceDesc, srv)
}

// ApartmentService_ServiceDesc は ApartmentService の grpc.ServiceDesc です。
var ApartmentService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ApartmentServiceName,
	HandlerType: (*ApartmentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(ApartmentServiceName, "CreateApartment", ApartmentServiceServer.CreateApartment),
		unaryMethod(ApartmentServiceName, "GetApartment", ApartmentServiceServer.GetApartment),
		unaryMethod(ApartmentServiceName, "ListApartments", ApartmentServiceServer.ListApartments),
		unaryMethod(ApartmentServiceName, "UpdateApartment", ApartmentServiceServer.UpdateApartment),
		unaryMethod(ApartmentServiceName, "DeactivateApartment", ApartmentServiceServer.DeactivateApartment),
		unaryMethod(ApartmentServiceName, "ListOccupants", ApartmentServiceServer.ListOccupants),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "staffing/v1/ApartmentService",
}
