// Package dto はusersフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// LoginReq は/user/loginエンドポイントのリクエストボディを表します。
// 両フィールドとも必須です。
type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResp はログイン成功時のレスポンスボディを表します。
type TokenResp struct {
	AccessToken string `json:"accessToken"`
}
