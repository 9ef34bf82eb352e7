package dto

// UpdateReq は/user/:idの部分更新リクエストボディを表します。
// すべてのフィールドが省略可能で、省略（または空文字列）のフィールドは
// 既存の値を維持します。
type UpdateReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// MessageResp is the generic JSON body used for errors and confirmations.
type MessageResp struct {
	Message string `json:"message"`
}
