package service

import "errors"

// 业务哨兵错误，handler 层通过 errors.Is 映射为接口响应。
var (
	// ErrNotFound 实体不存在，或对当前访问者不可见/不归属
	// 可见性与存在性刻意不区分，避免暴露隐藏内容的存在。
	ErrNotFound = errors.New("not found")
	// ErrNotOwner 非作者对文章的改删请求，降级为查看而非报错
	ErrNotOwner = errors.New("viewer is not the author")

	ErrSlugExists         = errors.New("slug already exists")
	ErrInvalidUsername    = errors.New("invalid username")
	ErrUsernameExists     = errors.New("username already exists")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserDisabled       = errors.New("user disabled")
	ErrWeakPassword       = errors.New("password does not meet policy")

	ErrCaptchaRequired = errors.New("captcha required")
	ErrCaptchaInvalid  = errors.New("captcha invalid")

	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
)
