package staffingv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// EmployeeServiceName は社員台帳サービスの完全修飾名です。
const EmployeeServiceName = "staffing.v1.EmployeeService"

const (
	EmployeeService_GetEmployee_FullMethodName       = "/staffing.v1.EmployeeService/GetEmployee"
	EmployeeService_ListEmployees_FullMethodName     = "/staffing.v1.EmployeeService/ListEmployees"
	EmployeeService_UpdateEmployee_FullMethodName    = "/staffing.v1.EmployeeService/UpdateEmployee"
	EmployeeService_TerminateEmployee_FullMethodName = "/staffing.v1.EmployeeService/TerminateEmployee"
)

type GetEmployeeRequest struct {
	ID string `json:"id"`
}

type GetEmployeeResponse struct {
	Employee   *Employee   `json:"employee"`
	Assignment *Assignment `json:"assignment"`
}

type ListEmployeesRequest struct {
	PageSize       int32  `json:"page_size,omitempty"`
	PageToken      string `json:"page_token,omitempty"`
	Status         string `json:"status,omitempty"`
	EmploymentType string `json:"employment_type,omitempty"`
	Search         string `json:"search,omitempty"`
}

type ListEmployeesResponse struct {
	Employees     []*Employee `json:"employees"`
	NextPageToken string      `json:"next_page_token,omitempty"`
}

// UpdateEmployeeRequest は社員情報の部分更新です。visa_expiry と hire_date は ClearFields で消去できます。
type UpdateEmployeeRequest struct {
	ID           string   `json:"id"`
	FullName     *string  `json:"full_name,omitempty"`
	NameKana     *string  `json:"name_kana,omitempty"`
	PostalCode   *string  `json:"postal_code,omitempty"`
	Address      *string  `json:"address,omitempty"`
	BuildingName *string  `json:"building_name,omitempty"`
	VisaType     *string  `json:"visa_type,omitempty"`
	VisaExpiry   *string  `json:"visa_expiry,omitempty"`
	Office       *string  `json:"office,omitempty"`
	Status       *string  `json:"status,omitempty"`
	HireDate     *string  `json:"hire_date,omitempty"`
	ClearFields  []string `json:"clear_fields,omitempty"`
}

type UpdateEmployeeResponse struct {
	Employee *Employee `json:"employee"`
}

type TerminateEmployeeRequest struct {
	ID              string `json:"id"`
	TerminationDate string `json:"termination_date,omitempty"`
}

type TerminateEmployeeResponse struct {
	Employee   *Employee   `json:"employee"`
	Assignment *Assignment `json:"assignment"`
}

// EmployeeServiceClient は EmployeeService のクライアントです。
type EmployeeServiceClient interface {
	GetEmployee(ctx context.Context, in *GetEmployeeRequest, opts ...grpc.CallOption) (*GetEmployeeResponse, error)
	ListEmployees(ctx context.Context, in *ListEmployeesRequest, opts ...grpc.CallOption) (*ListEmployeesResponse, error)
	UpdateEmployee(ctx context.Context, in *UpdateEmployeeRequest, opts ...grpc.CallOption) (*UpdateEmployeeResponse, error)
	TerminateEmployee(ctx context.Context, in *TerminateEmployeeRequest, opts ...grpc.CallOption) (*TerminateEmployeeResponse, error)
}

type employeeServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewEmployeeServiceClient は EmployeeServiceClient を生成します。
func NewEmployeeServiceClient(cc grpc.ClientConnInterface) EmployeeServiceClient {
	return &employeeServiceClient{cc: cc}
}

func (c *employeeServiceClient) GetEmployee(ctx context.Context, in *GetEmployeeRequest, opts ...grpc.CallOption) (*GetEmployeeResponse, error) {
	return invoke[GetEmployeeResponse](ctx, c.cc, EmployeeService_GetEmployee_FullMethodName, in, opts)
}

func (c *employeeServiceClient) ListEmployees(ctx context.Context, in *ListEmployeesRequest, opts ...grpc.CallOption) (*ListEmployeesResponse, error) {
	return invoke[ListEmployeesResponse](ctx, c.cc, EmployeeService_ListEmployees_FullMethodName, in, opts)
}

func (c *employeeServiceClient) UpdateEmployee(ctx context.Context, in *UpdateEmployeeRequest, opts ...grpc.CallOption) (*UpdateEmployeeResponse, error) {
	return invoke[UpdateEmployeeResponse](ctx, c.cc, EmployeeService_UpdateEmployee_FullMethodName, in, opts)
}

func (c *employeeServiceClient) TerminateEmployee(ctx context.Context, in *TerminateEmployeeRequest, opts ...grpc.CallOption) (*TerminateEmployeeResponse, error) {
	return invoke[TerminateEmployeeResponse](ctx, c.cc, EmployeeService_TerminateEmployee_FullMethodName, in, opts)
}

// EmployeeServiceServer は EmployeeService のサーバー実装が満たすインターフェースです。
type EmployeeServiceServer interface {
	// GetEmployee は社員と配属情報を取得します。
	GetEmployee(context.Context, *GetEmployeeRequest) (*GetEmployeeResponse, error)
	// ListEmployees は社員を社員番号順に取得します。
	ListEmployees(context.Context, *ListEmployeesRequest) (*ListEmployeesResponse, error)
	UpdateEmployee(context.Context, *UpdateEmployeeRequest) (*UpdateEmployeeResponse, error)
	// TerminateEmployee は社員を退社扱いにし、配属を終了し社宅を返却します。
	TerminateEmployee(context.Context, *TerminateEmployeeRequest) (*TerminateEmployeeResponse, error)
}

// UnimplementedEmployeeServiceServer は未実装のメソッドに Unimplemented を返します。
type UnimplementedEmployeeServiceServer struct{}

func (UnimplementedEmployeeServiceServer) GetEmployee(context.Context, *GetEmployeeRequest) (*GetEmployeeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetEmployee not implemented")
}

func (UnimplementedEmployeeServiceServer) ListEmployees(context.Context, *ListEmployeesRequest) (*ListEmployeesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEmployees not implemented")
}

func (UnimplementedEmployeeServiceServer) UpdateEmployee(context.Context, *UpdateEmployeeRequest) (*UpdateEmployeeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateEmployee not implemented")
}

func (UnimplementedEmployeeServiceServer) TerminateEmployee(context.Context, *TerminateEmployeeRequest) (*TerminateEmployeeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method TerminateEmployee not implemented")
}

// RegisterEmployeeServiceServer は srv を登録します。
func RegisterEmployeeServiceServer(s grpc.ServiceRegistrar, srv EmployeeServiceServer) {
	s.RegisterService(&EmployeeService_ServiceDesc, srv)
}

// EmployeeService_ServiceDesc は EmployeeService の grpc.ServiceDesc です。
var EmployeeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: EmployeeServiceName,
	HandlerType: (*EmployeeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(EmployeeServiceName, "GetEmployee", EmployeeServiceServer.GetEmployee),
		unaryMethod(EmployeeServiceName, "ListEmployees", EmployeeServiceServer.ListEmployees),
		unaryMethod(EmployeeServiceName, "UpdateEmployee", EmployeeServiceServer.UpdateEmployee),
		unaryMethod(EmployeeServiceName, "TerminateEmployee", EmployeeServiceServer.TerminateEmployee),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "staffing/v1/EmployeeService",
}
