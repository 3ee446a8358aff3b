// Package user はユーザー管理のドメインロジックを提供する。
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alexv/vkminiapp/internal/model"
	"github.com/alexv/vkminiapp/internal/repository"
)

// MetricsRecorder はユーザー関連のビジネスメトリクス記録インターフェース。
type MetricsRecorder interface {
	RecordUserCreated()
	RecordUserLogin()
}

// Service はユーザー管理のサービス層。
// VK認証のupsert、VK IDによる参照、電話番号・メールアドレスの更新を提供する。
type Service struct {
	repo    repository.UserRepository
	metrics MetricsRecorder
}

// NewService はServiceの新しいインスタンスを生成する。metricsはnil可。
func NewService(repo repository.UserRepository, metrics MetricsRecorder) *Service {
	return &Service{
		repo:    repo,
		metrics: metrics,
	}
}

// Authenticate はVKプロフィールでユーザーを認証する。
// 未登録のVK IDならユーザー行を新規作成し、登録済みなら氏名・写真を
// 上書き更新する。いずれの場合も書き込み後のユーザー行を返す。
func (s *Service) Authenticate(ctx context.Context, profile *model.VKProfile) (*model.User, error) {
	user, created, err := s.repo.UpsertByVKID(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate vk user: %w", err)
	}

	if created {
		slog.Info("new user created",
			slog.Int64("user_id", user.ID),
			slog.Int64("vk_id", user.VKID),
		)
		if s.metrics != nil {
			s.metrics.RecordUserCreated()
		}
	} else {
		slog.Info("existing user logged in",
			slog.Int64("user_id", user.ID),
			slog.Int64("vk_id", user.VKID),
		)
		if s.metrics != nil {
			s.metrics.RecordUserLogin()
		}
	}

	return user, nil
}

// GetByVKID は指定VK IDのユーザーを返す。存在しない場合はUSER_NOT_FOUND。
func (s *Service) GetByVKID(ctx context.Context, vkID int64) (*model.User, error) {
	user, err := s.repo.FindByVKID(ctx, vkID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, model.NewUserNotFoundError()
	}

	return user, nil
}

// UpdatePhone は指定VK IDのユーザーの電話番号を更新する。
// nilはカラムをNULLにクリアする（フィールド省略と明示的なnullは区別しない）。
func (s *Service) UpdatePhone(ctx context.Context, vkID int64, phone *string) (*model.User, error) {
	user, err := s.repo.UpdatePhone(ctx, vkID, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to update phone: %w", err)
	}
	if user == nil {
		return nil, model.NewUserNotFoundError()
	}

	return user, nil
}

// UpdateEmail は指定VK IDのユーザーのメールアドレスを更新する。
// nilはカラムをNULLにクリアする（フィールド省略と明示的なnullは区別しない）。
func (s *Service) UpdateEmail(ctx context.Context, vkID int64, email *string) (*model.User, error) {
	user, err := s.repo.UpdateEmail(ctx, vkID, email)
	if err != nil {
		return nil, fmt.Errorf("failed to update email: %w", err)
	}
	if user == nil {
		return nil, model.NewUserNotFoundError()
	}

	return user, nil
}
