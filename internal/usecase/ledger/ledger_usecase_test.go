package ledger

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/monopay/monopay-api/internal/domain"
	"github.com/monopay/monopay-api/internal/domain/mocks"
	"github.com/monopay/monopay-api/internal/infrastructure/lock"
	"github.com/monopay/monopay-api/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
)

func newTestLedgerUseCase(t *testing.T) (*LedgerUseCase, *mocks.MockGameRepository, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockGameRepo := mocks.NewMockGameRepository(ctrl)

	uc := &LedgerUseCase{
		gameRepo: mockGameRepo,
		lockMgr:  lock.NewGameLockManager(),
		logger:   logger.NewLogger("test", "debug"),
	}

	return uc, mockGameRepo, ctrl
}

func createTestGame(status domain.GameStatus, players ...domain.Player) *domain.Game {
	return &domain.Game{
		ID:              42,
		Code:            "ABCDEF",
		Name:            "Friday Night",
		HostID:          1,
		MaxPlayers:      4,
		StartingBalance: 1500,
		GoSalary:        200,
		Status:          status,
		Players:         players,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
}

func testPlayer(userID, balance int64) domain.Player {
	return domain.Player{
		ID:       userID,
		GameID:   42,
		UserID:   userID,
		Balance:  balance,
		JoinedAt: time.Now(),
	}
}

// expectTransaction wires the transactional closure to run against the mock itself.
func expectTransaction(mockGameRepo *mocks.MockGameRepository) {
	mockGameRepo.EXPECT().Transaction(gomock.Any()).DoAndReturn(func(fn func(domain.GameRepository) error) error {
		return fn(mockGameRepo)
	})
}

func int64Ptr(v int64) *int64 { return &v }

func TestTransfer_NonPositiveAmount(t *testing.T) {
	uc, _, ctrl := newTestLedgerUseCase(t)
	defer ctrl.Finish()

	for _, amount := range []int64{0, -50} {
		_, _, err := uc.Transfer(1, 42, domain.TransferInput{
			ToPlayerID: int64Ptr(2),
			Amount:     amount,
			Category:   domain.CategoryTransfer,
		})

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeInvalidAmount, appErr.Code)
	}
}

func TestTransfer_UnknownCategory(t *testing.T) {
	uc, _, ctrl := newTestLedgerUseCase(t)
	defer ctrl.Finish()

	_, _, err := uc.Transfer(1, 42, domain.TransferInput{
		Amount:   100,
		Category: domain.TransactionCategory("lottery"),
	})

	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidCategory, appErr.Code)
}

func TestTransfer_GameNotInProgress(t *testing.T) {
	uc, mockGameRepo, ctrl := newTestLedgerUseCase(t)
	defer ctrl.Finish()

	game := createTestGame(domain.GameStatusWaiting, testPlayer(1, 1500), testPlayer(2, 1500))

	expectTransaction(mockGameRepo)
	mockGameRepo.EXPECT().GetByID(int64(42)).Return(game, nil)

	_, _, err := uc.Transfer(1, 42, domain.TransferInput{
		ToPlayerID: int64Ptr(2),
		Amount:     100,
		Category:   domain.CategoryTransfer,
	})

	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeNotInProgress, appErr.Code)
}

func TestTransfer_SenderNotInGame(t *testing.T) {
	uc, mockGameRepo, ctrl := newTestLedgerUseCase(t)
	defer ctrl.Finish()

	game := createTestGame(domain.GameStatusInProgress, testPlayer(1, 1500), testPlayer(2, 1500))

	expectTransaction(mockGameRepo)
	mockGameRepo.EXPECT().GetByID(int64(42)).Return(game, nil)

	_, _, err := uc.Transfer(9, 42, domain.TransferInput{
		ToPlayerID: int64Ptr(2),
		Amount:     100,
		Category:   domain.CategoryTransfer,
	})

	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeNotInGame, appErr.Code)
}

func TestTransfer_RecipientRules(t *testing.T) {
	tests := []struct {
		name     string
		to       *int64
		wantCode string
	}{
		{name: "MissingRecipient", to: nil, wantCode: domain.ErrCodeInvalidRecipient},
		{name: "RecipientNotInGame", to: int64Ptr(9), wantCode: domain.ErrCodeRecipientNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, mockGameRepo, ctrl := newTestLedgerUseCase(t)
			defer ctrl.Finish()

			game := createTestGame(domain.GameStatusInProgress, testPlayer(1, 1500), testPlayer(2, 1500))

			expectTransaction(mockGameRepo)
			mockGameRepo.EXPECT().GetByID(int64(42)).Return(game, nil)

			_, _, err := uc.Transfer(1, 42, domain.TransferInput{
				ToPlayerID: tt.to,
				Amount:     100,
				Category:   domain.CategoryTransfer,
			})

			appErr, ok := domain.IsAppError(err)
			assert.True(t, ok)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestTransfer_InsufficientBalance(t *testing.T) {
	uc, mockGameRepo, ctrl := newTestLedgerUseCase(t)
	defer ctrl.Finish()

	game := createTestGame(domain.GameStatusInProgress, testPlayer(1, 100), testPlayer(2, 1500))

	expectTransaction(mockGameRepo)
	mockGameRepo.EXPECT().GetByID(int64(42)).Return(game, nil)

	_, _, err := uc.Transfer(1, 42, domain.TransferInput{
		ToPlayerID: int64Ptr(2),
		Amount:     200,
		Category:   domain.CategoryTransfer,
	})

	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeInsufficientBalance, appErr.Code)

	// Balances untouched on rejection.
	assert.Equal(t, int64(100), game.Players[0].Balance)
	assert.Equal(t, int64(1500), game.Players[1].Balance)
}

func TestTransfer_PlayerToPlayer(t *testing.T) {
	uc, mockGameRepo, ctrl := newTestLedgerUseCase(t)
	defer ctrl.Finish()

	game := createTestGame(domain.GameStatusInProgress, testPlayer(1, 1500), testPlayer(2, 1500))

	expectTransaction(mockGameRepo)
	mockGameRepo.EXPECT().GetByID(int64(42)).Return(game, nil)
	mockGameRepo.EXPECT().UpdatePlayer(gomock.Any()).Return(nil).Times(2)
	mockGameRepo.EXPECT().AppendTransaction(gomock.Any()).DoAndReturn(func(tx *domain.GameTransaction) error {
		assert.Equal(t, int64(42), tx.GameID)
		assert.Equal(t, int64(1), *tx.FromUserID)
		assert.Equal(t, int64(2), *tx.ToUserID)
		assert.Equal(t, int64(200), tx.Amount)
		assert.Equal(t, domain.CategoryTransfer, tx.Category)
		assert.Equal(t, "rent for boardwalk", tx.Description)
		tx.ID = 7
		return nil
	})
	mockGameRepo.EXPECT().GetByID(int64(42)).Return(game, nil)

	updated, entry, err := uc.Transfer(1, 42, domain.TransferInput{
		ToPlayerID:  int64Ptr(2),
		Amount:      200,
		Category:    domain.CategoryTransfer,
		Description: "rent for boardwalk",
	})

	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.Equal(t, int64(7), entry.ID)
	assert.Equal(t, int64(1300), game.Players[0].Balance)
	assert.Equal(t, int64(1700), game.Players[1].Balance)
}

// Picking yourself as recipient records the entry with the debit and credit
// cancelling out.
func TestTransfer_SelfRecipientNetsZero(t *testing.T) {
	uc, mockGameRepo, ctrl := newTestLedgerUseCase(t)
	defer ctrl.Finish()

	game := createTestGame(domain.GameStatusInProgress, testPlayer(1, 1500), testPlayer(2, 1500))

	expectTransaction(mockGameRepo)
	mockGameRepo.EXPECT().GetByID(int64(42)).Return(game, nil)
	mockGameRepo.EXPECT().UpdatePlayer(gomock.Any()).Return(nil).Times(2)
	mockGameRepo.EXPECT().AppendTransaction(gomock.Any()).DoAndReturn(func(tx *domain.GameTransaction) error {
		assert.Equal(t, int64(1), *tx.FromUserID)
		assert.Equal(t, int64(1), *tx.ToUserID)
		assert.Equal(t, int64(300), tx.Amount)
		return nil
	})
	mockGameRepo.EXPECT().GetByID(int64(42)).Return(game, nil)

	_, _, err := uc.Transfer(1, 42, domain.TransferInput{
		ToPlayerID: int64Ptr(1),
		Amount:     300,
		Category:   domain.CategoryTransfer,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1500), game.Players[0].Balance)
	assert.Equal(t, int64(1500), game.Players[1].Balance)
}

func TestTransfer_DefaultDescriptions(t *testing.T) {
	tests := []struct {
		name     string
		to       *int64
		category domain.TransactionCategory
		want     string
	}{
		{name: "PeerTransfer", to: int64Ptr(2), category: domain.CategoryTransfer, want: "Transfer to scottie"},
		{name: "BankPay", category: domain.CategoryTax, want: "Paid to bank"},
		{name: "BankReceive", category: domain.CategoryGoSalary, want: "Received from bank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, mockGameRepo, ctrl := newTestLedgerUseCase(t)
			defer ctrl.Finish()

			game := createTestGame(domain.GameStatusInProgress, testPlayer(1, 1500), testPlayer(2, 1500))
			game.Players[1].User = domain.User{ID: 2, Username: "scottie"}

			expectTransaction(mockGameRepo)
			mockGameRepo.EXPECT().GetByID(int64(42)).Return(game, nil)
			mockGameRepo.EXPECT().UpdatePlayer(gomock.Any()).Return(nil).AnyTimes()
			mockGameRepo.EXPECT().AppendTransaction(gomock.Any()).DoAndReturn(func(tx *domain.GameTransaction) error {
				assert.Equal(t, tt.want, tx.Description)
				return nil
			})
			mockGameRepo.EXPECT().GetByID(int64(42)).Return(game, nil)

			_, _, err := uc.Transfer(1, 42, domain.TransferInput{
				ToPlayerID: tt.to,
				Amount:     100,
				Category:   tt.category,
			})

			assert.NoError(t, err)
		})
	}
}

// A caller-supplied description is stored untouched.
func TestTransfer_KeepsCallerDescription(t *testing.T) {
	uc, mockGameRepo, ctrl := newTestLedgerUseCase(t)
	defer ctrl.Finish()

	game := createTestGame(domain.GameStatusInProgress, testPlayer(1, 1500), testPlayer(2, 1500))

	expectTransaction(mockGameRepo)
	mockGameRepo.EXPECT().GetByID(int64(42)).Return(game, nil)
	mockGameRepo.EXPECT().UpdatePlayer(gomock.Any()).Return(nil)
	mockGameRepo.EXPECT().AppendTransaction(gomock.Any()).DoAndReturn(func(tx *domain.GameTransaction) error {
		assert.Equal(t, "luxury tax", tx.Description)
		return nil
	})
	mockGameRepo.EXPECT().GetByID(int64(42)).Return(game, nil)

	_, _, err := uc.Transfer(1, 42, domain.TransferInput{
		Amount:      75,
		Category:    domain.CategoryTax,
		Description: "luxury tax",
	})

	assert.NoError(t, err)
}

func TestTransfer_BankPayDebitsSenderOnly(t *testing.T) {
	uc, mockGameRepo, ctrl := newTestLedgerUseCase(t)
	defer ctrl.Finish()

	game := createTestGame(domain.GameStatusInProgress, testPlayer(1, 1500), testPlayer(2, 1500))

	expectTransaction(mockGameRepo)
	mockGameRepo.EXPECT().GetByID(int64(42)).Return(game, nil)
	mockGameRepo.EXPECT().UpdatePlayer(gomock.Any()).Return(nil)
	mockGameRepo.EXPECT().AppendTransaction(gomock.Any()).DoAndReturn(func(tx *domain.GameTransaction) error {
		assert.Nil(t, tx.ToUserID)
		assert.Equal(t, domain.CategoryTax, tx.Category)
		return nil
	})
	mockGameRepo.EXPECT().GetByID(int64(42)).Return(game, nil)

	_, _, err := uc.Transfer(1, 42, domain.TransferInput{
		Amount:   100,
		Category: domain.CategoryTax,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1400), game.Players[0].Balance)
	assert.Equal(t, int64(1500), game.Players[1].Balance)
}

func TestTransfer_BankReceiveCreditsSender(t *testing.T) {
	uc, mockGameRepo, ctrl := newTestLedgerUseCase(t)
	defer ctrl.Finish()

	game := createTestGame(domain.GameStatusInProgress, testPlayer(1, 1500), testPlayer(2, 1500))

	expectTransaction(mockGameRepo)
	mockGameRepo.EXPECT().GetByID(int64(42)).Return(game, nil)
	mockGameRepo.EXPECT().UpdatePlayer(gomock.Any()).Return(nil)
	mockGameRepo.EXPECT().AppendTransaction(gomock.Any()).DoAndReturn(func(tx *domain.GameTransaction) error {
		assert.Equal(t, int64(1), *tx.FromUserID)
		assert.Nil(t, tx.ToUserID)
		return nil
	})
	mockGameRepo.EXPECT().GetByID(int64(42)).Return(game, nil)

	_, _, err := uc.Transfer(1, 42, domain.TransferInput{
		Amount:   200,
		Category: domain.CategoryGoSalary,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1700), game.Players[0].Balance)
}

// go_salary ignores the sender's balance since it only credits.
func TestTransfer_CreditNeverChecksBalance(t *testing.T) {
	uc, mockGameRepo, ctrl := newTestLedgerUseCase(t)
	defer ctrl.Finish()

	game := createTestGame(domain.GameStatusInProgress, testPlayer(1, 0), testPlayer(2, 1500))

	expectTransaction(mockGameRepo)
	mockGameRepo.EXPECT().GetByID(int64(42)).Return(game, nil)
	mockGameRepo.EXPECT().UpdatePlayer(gomock.Any()).Return(nil)
	mockGameRepo.EXPECT().AppendTransaction(gomock.Any()).Return(nil)
	mockGameRepo.EXPECT().GetByID(int64(42)).Return(game, nil)

	_, _, err := uc.Transfer(1, 42, domain.TransferInput{
		Amount:   200,
		Category: domain.CategoryGoSalary,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(200), game.Players[0].Balance)
}
