package dto

// CodeRequestReq represents the request body for /auth/otp/request.
type CodeRequestReq struct {
	Email string `json:"email" binding:"required,email"`
}

// CodeVerifyReq represents the request body for /auth/otp/verify.
// The code is exactly six digits; anything else is rejected before lookup.
type CodeVerifyReq struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6,numeric"`
}
