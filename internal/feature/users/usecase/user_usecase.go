// Package usecase はusersフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"user_backend/internal/feature/users/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindAll は全ユーザーを取得します。
	FindAll(ctx context.Context) ([]entity.User, error)

	// Update は既存ユーザーの全フィールドを保存します。
	Update(ctx context.Context, user *entity.User) error

	// Delete は指定されたIDのユーザーを物理削除します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	Delete(ctx context.Context, id uint) error
}

// TokenIssuer はアクセストークン発行のインターフェースを定義します。
// 実装はplatform/jwtにあり、コンシューマーであるusecaseが定義します。
type TokenIssuer interface {
	// GenerateToken は指定されたユーザーの署名済みトークンを生成します。
	GenerateToken(userID uint, name, email string) (string, error)
}

// RegisterInput は新規登録の入力値です。Roleのみ省略可能です。
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     string
}

// UpdateInput は部分更新の入力値です。
// 空文字列のフィールドは「未指定」を意味し、既存の値を維持します。
type UpdateInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     string
}

// userUsecase はユーザー管理のビジネスロジックを実装します。
type userUsecase struct {
	users  UserRepository
	tokens TokenIssuer
}

// NewUserUsecase はuserUsecaseの新しいインスタンスを生成します。
func NewUserUsecase(users UserRepository, tokens TokenIssuer) *userUsecase {
	return &userUsecase{
		users:  users,
		tokens: tokens,
	}
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録します。
// 必須フィールドが欠けている場合はErrMissingFields、
// メールアドレスが登録済みの場合はErrEmailAlreadyExistsを返します。
func (u *userUsecase) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Phone == "" {
		return nil, ErrMissingFields
	}

	// 登録済みチェック。一意性自体はストアのユニーク制約が保証する
	if _, err := u.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hashed),
		Phone:    in.Phone,
		Role:     in.Role,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login はユーザーを認証し、成功時にアクセストークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
// 「ユーザー不在」と「パスワード不一致」は意図的に同一のエラーに畳み込みます。
func (u *userUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrMissingFields
	}

	user, err := u.users.FindByEmail(ctx, email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.GenerateToken(user.ID, user.Name, user.Email)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, nil
}

// List は全ユーザーを取得します。ページネーションやフィルタリングは行いません。
func (u *userUsecase) List(ctx context.Context) ([]entity.User, error) {
	return u.users.FindAll(ctx)
}

// GetByID はIDでユーザーを取得します。
// ユーザーが存在しない場合、ErrUserNotFoundを返します。
func (u *userUsecase) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// Update は指定されたフィールドのみを上書きする部分更新を行います。
// 空文字列のフィールドは既存の値を維持し、パスワードは再ハッシュして保存します。
func (u *userUsecase) Update(ctx context.Context, id uint, in UpdateInput) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Phone != "" {
		user.Phone = in.Phone
	}
	if in.Role != "" {
		user.Role = in.Role
	}
	if in.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashed)
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete は指定されたIDのユーザーを物理削除します。
// ユーザーが存在しない場合、ErrUserNotFoundを返します。
func (u *userUsecase) Delete(ctx context.Context, id uint) error {
	return u.users.Delete(ctx, id)
}
