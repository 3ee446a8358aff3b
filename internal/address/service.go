// Package address は住所管理のドメインロジックを提供する。
package address

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alexv/vkminiapp/internal/model"
	"github.com/alexv/vkminiapp/internal/repository"
)

// MetricsRecorder は住所関連のビジネスメトリクス記録インターフェース。
type MetricsRecorder interface {
	RecordAddressCreated()
	RecordAddressDeleted()
}

// Service は住所管理のサービス層。
type Service struct {
	repo    repository.AddressRepository
	metrics MetricsRecorder
}

// NewService はServiceの新しいインスタンスを生成する。metricsはnil可。
func NewService(repo repository.AddressRepository, metrics MetricsRecorder) *Service {
	return &Service{
		repo:    repo,
		metrics: metrics,
	}
}

// List は指定ユーザーの住所一覧を新しい順で返す。
// 住所が1件もない場合やユーザーが存在しない場合も空リストを返す（エラーではない）。
func (s *Service) List(ctx context.Context, userID int64) ([]*model.Address, error) {
	addresses, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	return addresses, nil
}

// Create は住所を作成し、サーバー採番のIDと作成日時を含む行を返す。
// 所有者の存在確認は行わず、参照整合性はDBの外部キーに委ねる。
func (s *Service) Create(ctx context.Context, userID int64, title, addressText string) (*model.Address, error) {
	address, err := s.repo.Create(ctx, userID, title, addressText)
	if err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}

	slog.Info("address created",
		slog.Int64("address_id", address.ID),
		slog.Int64("user_id", address.UserID),
	)
	if s.metrics != nil {
		s.metrics.RecordAddressCreated()
	}

	return address, nil
}

// Delete は指定IDの住所を削除する。該当行がない場合はADDRESS_NOT_FOUND。
func (s *Service) Delete(ctx context.Context, addressID int64) error {
	deleted, err := s.repo.DeleteByID(ctx, addressID)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	if !deleted {
		return model.NewAddressNotFoundError(addressID)
	}

	slog.Info("address deleted", slog.Int64("address_id", addressID))
	if s.metrics != nil {
		s.metrics.RecordAddressDeleted()
	}

	return nil
}
