package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode             = 0
	ServiceErrCode          = 10001
	ParamErrCode            = 10002
	RecordNotFoundCode      = 10003
	AuthorizationFailedCode = 10004
	DuplicateRecordCode     = 10005
	SelfRelationCode        = 10006
	TargetNotFoundCode      = 10007
	ReferenceNotFoundCode   = 10008
	UploadFailedCode        = 10009
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success                = NewErrNo(SuccessCode, "Success")
	ServiceErr             = NewErrNo(ServiceErrCode, "Service is unable to start successfully")
	ParamErr               = NewErrNo(ParamErrCode, "Wrong Parameter has been given")
	RecordNotFoundErr      = NewErrNo(RecordNotFoundCode, "Record not found")
	AuthorizationFailedErr = NewErrNo(AuthorizationFailedCode, "Authorization failed")
	DuplicateRecordErr     = NewErrNo(DuplicateRecordCode, "Record already exists")
	SelfRelationErr        = NewErrNo(SelfRelationCode, "Cannot build relation with yourself")
	TargetNotFoundErr      = NewErrNo(TargetNotFoundCode, "Relation target not found")
	ReferenceNotFoundErr   = NewErrNo(ReferenceNotFoundCode, "Referenced record not found")
	UploadFailedErr        = NewErrNo(UploadFailedCode, "Failed to upload file to object storage")
)

// ConvertErr convert error to ErrNo
// 未知的错误统一转换为ServiceErr 并保留原始错误信息
func ConvertErr(err error) ErrNo {
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
