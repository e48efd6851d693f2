package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/uptrace/bun"
	"go.uber.org/mock/gomock"

	"github.com/wavegames/walletlink/database/models"
	"github.com/wavegames/walletlink/database/repositories"
	"github.com/wavegames/walletlink/database/repositories/mock"
)

const (
	testToken   = "tok-abc123"
	testDiscord = "111222333444555666"
	testAddress = "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd"
)

type linkMocks struct {
	tokens *mock.MockTokenRepository
	users  *mock.MockUserRepository
	tx     *mock.MockTransactionManager
}

func newLinkMocks(t *testing.T) *linkMocks {
	ctrl := gomock.NewController(t)
	return &linkMocks{
		tokens: mock.NewMockTokenRepository(ctrl),
		users:  mock.NewMockUserRepository(ctrl),
		tx:     mock.NewMockTransactionManager(ctrl),
	}
}

// expectTransaction makes the mocked manager run the transaction body with a
// zero bun.Tx, which is fine because every store call inside is mocked too.
func expectTransaction(m *linkMocks) {
	m.tx.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *repositories.TransactionOptions, fn func(context.Context, bun.Tx) error) error {
			return fn(ctx, bun.Tx{})
		})
}

func unusedToken() *models.LinkToken {
	return &models.LinkToken{Token: testToken, DiscordID: testDiscord, Used: false}
}

func Test_linkService_RedeemToken(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m *linkMocks)
		want    *LinkResult
		wantErr error
	}{
		{
			name: "unknown token pair",
			setup: func(m *linkMocks) {
				m.tokens.EXPECT().
					GetByTokenAndDiscordID(gomock.Any(), testToken, testDiscord).
					Return(nil, repositories.ErrNotFound)
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "token already used",
			setup: func(m *linkMocks) {
				m.tokens.EXPECT().
					GetByTokenAndDiscordID(gomock.Any(), testToken, testDiscord).
					Return(&models.LinkToken{Token: testToken, DiscordID: testDiscord, Used: true}, nil)
			},
			wantErr: ErrTokenAlreadyUsed,
		},
		{
			name: "token lookup store failure is not invalid token",
			setup: func(m *linkMocks) {
				m.tokens.EXPECT().
					GetByTokenAndDiscordID(gomock.Any(), testToken, testDiscord).
					Return(nil, errors.New("connection reset"))
			},
			wantErr: nil, // generic error, asserted separately below
		},
		{
			name: "address owned by a different discord account",
			setup: func(m *linkMocks) {
				m.tokens.EXPECT().
					GetByTokenAndDiscordID(gomock.Any(), testToken, testDiscord).
					Return(unusedToken(), nil)
				expectTransaction(m)
				m.users.EXPECT().
					GetAddressOwnerForUpdate(gomock.Any(), gomock.Any(), testAddress).
					Return(&models.User{ID: 7, Address: testAddress, DiscordID: "999888777"}, nil)
			},
			wantErr: ErrAddressConflict,
		},
		{
			name: "fresh address links via upsert",
			setup: func(m *linkMocks) {
				m.tokens.EXPECT().
					GetByTokenAndDiscordID(gomock.Any(), testToken, testDiscord).
					Return(unusedToken(), nil)
				expectTransaction(m)
				m.users.EXPECT().
					GetAddressOwnerForUpdate(gomock.Any(), gomock.Any(), testAddress).
					Return(nil, repositories.ErrNotFound)
				m.users.EXPECT().
					UpsertByDiscordID(gomock.Any(), gomock.Any(), testDiscord, testAddress).
					Return(nil)
				m.tokens.EXPECT().
					MarkUsed(gomock.Any(), gomock.Any(), testToken).
					Return(int64(1), nil)
			},
			want: &LinkResult{Address: testAddress, DiscordID: testDiscord},
		},
		{
			name: "unlinked profile row gets claimed",
			setup: func(m *linkMocks) {
				m.tokens.EXPECT().
					GetByTokenAndDiscordID(gomock.Any(), testToken, testDiscord).
					Return(unusedToken(), nil)
				expectTransaction(m)
				m.users.EXPECT().
					GetAddressOwnerForUpdate(gomock.Any(), gomock.Any(), testAddress).
					Return(&models.User{ID: 42, Address: testAddress}, nil)
				m.users.EXPECT().
					ClaimAddress(gomock.Any(), gomock.Any(), int64(42), testDiscord).
					Return(nil)
				m.tokens.EXPECT().
					MarkUsed(gomock.Any(), gomock.Any(), testToken).
					Return(int64(1), nil)
			},
			want: &LinkResult{Address: testAddress, DiscordID: testDiscord},
		},
		{
			name: "already linked to same account is idempotent",
			setup: func(m *linkMocks) {
				m.tokens.EXPECT().
					GetByTokenAndDiscordID(gomock.Any(), testToken, testDiscord).
					Return(unusedToken(), nil)
				expectTransaction(m)
				m.users.EXPECT().
					GetAddressOwnerForUpdate(gomock.Any(), gomock.Any(), testAddress).
					Return(&models.User{ID: 1, Address: testAddress, DiscordID: testDiscord}, nil)
				m.tokens.EXPECT().
					MarkUsed(gomock.Any(), gomock.Any(), testToken).
					Return(int64(1), nil)
			},
			want: &LinkResult{Address: testAddress, DiscordID: testDiscord},
		},
		{
			name: "upsert losing the address race maps to conflict",
			setup: func(m *linkMocks) {
				m.tokens.EXPECT().
					GetByTokenAndDiscordID(gomock.Any(), testToken, testDiscord).
					Return(unusedToken(), nil)
				expectTransaction(m)
				m.users.EXPECT().
					GetAddressOwnerForUpdate(gomock.Any(), gomock.Any(), testAddress).
					Return(nil, repositories.ErrNotFound)
				m.users.EXPECT().
					UpsertByDiscordID(gomock.Any(), gomock.Any(), testDiscord, testAddress).
					Return(repositories.ErrDuplicate)
			},
			wantErr: ErrAddressConflict,
		},
		{
			name: "losing the token race maps to already used",
			setup: func(m *linkMocks) {
				m.tokens.EXPECT().
					GetByTokenAndDiscordID(gomock.Any(), testToken, testDiscord).
					Return(unusedToken(), nil)
				expectTransaction(m)
				m.users.EXPECT().
					GetAddressOwnerForUpdate(gomock.Any(), gomock.Any(), testAddress).
					Return(nil, repositories.ErrNotFound)
				m.users.EXPECT().
					UpsertByDiscordID(gomock.Any(), gomock.Any(), testDiscord, testAddress).
					Return(nil)
				m.tokens.EXPECT().
					MarkUsed(gomock.Any(), gomock.Any(), testToken).
					Return(int64(0), nil)
			},
			wantErr: ErrTokenAlreadyUsed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newLinkMocks(t)
			tt.setup(m)

			s := NewLinkService(m.tokens, m.users, m.tx)
			got, err := s.RedeemToken(context.Background(), testToken, testDiscord, testAddress)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("RedeemToken() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if tt.want == nil {
				// Store-failure cases: any non-taxonomy error is expected
				if err == nil {
					t.Errorf("RedeemToken() expected an error, got result %v", got)
				}
				if errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrTokenAlreadyUsed) || errors.Is(err, ErrAddressConflict) {
					t.Errorf("RedeemToken() store failure leaked as %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("RedeemToken() unexpected error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("RedeemToken() got = %v, want %v", got, tt.want)
			}
		})
	}
}
