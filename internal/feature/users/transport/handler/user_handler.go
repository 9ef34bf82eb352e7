// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/transport/http/dto"
	"user_backend/internal/feature/users/usecase"
)

// UserUsecase はユーザー管理操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UserUsecase interface {
	// Register は新規ユーザーを登録し、作成されたユーザーを返します。
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
	// Login はユーザーを認証し、成功時にアクセストークンを返します。
	Login(ctx context.Context, email, password string) (string, error)
	// List は全ユーザーを取得します。
	List(ctx context.Context) ([]entity.User, error)
	// GetByID はIDでユーザーを取得します。
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	// Update は部分更新を行い、マージ後のユーザーを返します。
	Update(ctx context.Context, id uint, in usecase.UpdateInput) (*entity.User, error)
	// Delete は指定されたIDのユーザーを削除します。
	Delete(ctx context.Context, id uint) error
}

// UserHandler はユーザー管理操作のHTTPリクエストを処理します。
// UserUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からUserUsecaseを注入します。
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - 必須フィールド欠落時は400を返却
// - メールアドレス重複時は400を返却
// - 成功時は201でIDとメールアドレスのみを返却（ハッシュは返さない）
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageResp{Message: "All fields are mandatory!"})
		return
	}

	user, err := h.users.Register(c.Request.Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFields):
			c.JSON(http.StatusBadRequest, dto.MessageResp{Message: "All fields are mandatory!"})
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			slog.Warn("register rejected: duplicate email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.MessageResp{Message: "User already registered!"})
		default:
			slog.Error("register failed", "error", err, "email", req.Email)
			c.JSON(http.StatusInternalServerError, dto.MessageResp{Message: err.Error()})
		}
		return
	}

	slog.Info("user registered", "id", user.ID, "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.RegisterResp{ID: user.ID, Email: user.Email})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// 認証失敗時は「ユーザー不在」と「パスワード不一致」を区別しない401を返却します。
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageResp{Message: "All fields are mandatory!"})
		return
	}

	token, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFields):
			c.JSON(http.StatusBadRequest, dto.MessageResp{Message: "All fields are mandatory!"})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			// どちらのケースかを漏らさないため、実際のエラーを公開しない
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.MessageResp{Message: "email or password is not valid"})
		default:
			slog.Error("login failed", "error", err, "email", req.Email)
			c.JSON(http.StatusInternalServerError, dto.MessageResp{Message: err.Error()})
		}
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenResp{AccessToken: token})
}

// GetUsers は全ユーザー取得APIエンドポイントを処理します。
// レコードを全フィールド（ハッシュ含む）で返します。認証は不要です。
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		slog.Error("list users failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.MessageResp{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByID はID指定のユーザー取得APIエンドポイントを処理します。
// 数値でないIDは未知のレコードと同様に404を返します。
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResp{Message: "User not found"})
			return
		}
		slog.Error("get user failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, dto.MessageResp{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser は部分更新APIエンドポイントを処理します。
// 指定されたフィールドのみ上書きし、マージ後のユーザーを返します。
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageResp{Message: "invalid request"})
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, usecase.UpdateInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResp{Message: "User not found"})
			return
		}
		slog.Error("update user failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, dto.MessageResp{Message: err.Error()})
		return
	}

	slog.Info("user updated", "id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, user)
}

// DeleteUser は削除APIエンドポイントを処理します。物理削除です。
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResp{Message: "User not found"})
			return
		}
		slog.Error("delete user failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, dto.MessageResp{Message: err.Error()})
		return
	}

	slog.Info("user deleted", "id", id, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.MessageResp{Message: "User deleted successfully"})
}

// parseID は:idパスパラメータを解析します。
// 数値でない場合は404を書き込み、falseを返します。
func (h *UserHandler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.MessageResp{Message: "User not found"})
		return 0, false
	}
	return uint(id), true
}
