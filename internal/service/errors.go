package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrDateInvalid       = errors.New("日期格式错误")
	ErrDateRangeInvalid  = errors.New("日期区间无效")
	ErrEntryNotFound     = errors.New("记录不存在")
	ErrRankingInvalid    = errors.New("ranking 超出范围")
	ErrBiometricInvalid  = errors.New("未知的生理指标")
	ErrTagInvalid        = errors.New("标签无效")
	ErrReportNoData      = errors.New("所选时间段内没有可统计的记录")
	ErrPasswordRequired  = errors.New("需要设置密码")
	ErrPasswordIncorrect = errors.New("密码错误")
	ErrJournalBusy       = errors.New("日记正在被修改，请稍后重试")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrDateInvalid:       BadRequest,
	ErrDateRangeInvalid:  BadRequest,
	ErrEntryNotFound:     NotFound,
	ErrRankingInvalid:    BadRequest,
	ErrBiometricInvalid:  BadRequest,
	ErrTagInvalid:        BadRequest,
	ErrReportNoData:      NotFound,
	ErrPasswordRequired:  BadRequest,
	ErrPasswordIncorrect: Unauthorized,
	ErrJournalBusy:       Conflict,
	UnExpectedError:      InternalServerError,
}
