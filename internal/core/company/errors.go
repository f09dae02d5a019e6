package company

import "errors"

var (
	// ErrCompanyNotFound は会社が存在しない場合に返却されます。
	ErrCompanyNotFound = errors.New("company: not found")
	// ErrCodeAlreadyExists はコード重複時に返却されます。
	ErrCodeAlreadyExists = errors.New("company: code already exists")
	// ErrInvalidName は会社名が不正な場合に返却されます。
	ErrInvalidName = errors.New("company: invalid name")
	// ErrInvalidCode は会社コードが不正な場合に返却されます。
	ErrInvalidCode = errors.New("company: invalid code")
	// ErrInvalidType は契約形態が不正な場合に返却されます。
	ErrInvalidType = errors.New("company: invalid company type")
	// ErrInvalidBillingRate は請求単価が負の場合に返却されます。
	ErrInvalidBillingRate = errors.New("company: invalid billing rate")
	// ErrInvalidStatus はステータスが不正な場合に返却されます。
	ErrInvalidStatus = errors.New("company: invalid status")
	// ErrInvalidID は ID が不正な場合に返却されます。
	ErrInvalidID = errors.New("company: invalid id")
	// ErrInvalidPageSize は一覧取得時のページサイズが不正な場合に返却されます。
	ErrInvalidPageSize = errors.New("company: invalid page size")
	// ErrInvalidPageToken は一覧取得時のページトークンが不正な場合に返却されます。
	ErrInvalidPageToken = errors.New("company: invalid page token")
)
