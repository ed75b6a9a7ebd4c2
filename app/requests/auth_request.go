package requests

// LoginRequest 登录表单。任何不匹配都统一提示用户名或密码错误，因此不做字段验证
type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
	Next     string `form:"next" json:"next"`
}

// SignRequest 签到表单，手机号允许为空，空值按不存在的手机号处理
type SignRequest struct {
	Phone string `form:"phone" json:"phone"`
}
