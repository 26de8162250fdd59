package commands_test

import (
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()
	price, err := kernel.MoneyFromString("19.99")
	require.NoError(t, err)
	item, err := order.NewItem(11, nil, 3, price)
	require.NoError(t, err)
	discount, err := kernel.MoneyFromString("5.00")
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(buyerID, sellerID, 5, []order.Item{item}, discount)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should place pending order", func(t *testing.T) {
		ctx := t.Context()
		cmd := newCreateOrderCommand(t)
		seller := accountOf(t, sellerID, account.Seller, account.Approved)

		accRepo := new(MockAccountRepository)
		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		factory := new(MockOrderUoWFactory)

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("AccountRepository").Return(accRepo).Once(),
			accRepo.On("Get", ctx, sellerID).Return(seller, nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		o, err := commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Equal(t, "59.97", o.TotalAmount().String())
		assert.Equal(t, "54.97", o.FinalAmount().String())
		uow.AssertExpectations(t)
		orderRepo.AssertExpectations(t)
	})

	t.Run("should refuse unapproved seller", func(t *testing.T) {
		ctx := t.Context()
		cmd := newCreateOrderCommand(t)

		accRepo := new(MockAccountRepository)
		uow := new(MockUoW)
		factory := new(MockOrderUoWFactory)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("AccountRepository").Return(accRepo).Once()
		accRepo.On("Get", ctx, sellerID).Return(accountOf(t, sellerID, account.Seller, account.Pending), nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		_, err := commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrPendingApproval)
		uow.AssertNotCalled(t, "OrderRepository")
	})

	t.Run("should refuse non seller account", func(t *testing.T) {
		ctx := t.Context()
		cmd := newCreateOrderCommand(t)

		accRepo := new(MockAccountRepository)
		uow := new(MockUoW)
		factory := new(MockOrderUoWFactory)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("AccountRepository").Return(accRepo).Once()
		accRepo.On("Get", ctx, sellerID).Return(accountOf(t, sellerID, account.Buyer, account.Approved), nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		_, err := commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should not commit when add fails", func(t *testing.T) {
		ctx := t.Context()
		cmd := newCreateOrderCommand(t)
		addErr := errors.New("insert failed")

		accRepo := new(MockAccountRepository)
		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		factory := new(MockOrderUoWFactory)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("AccountRepository").Return(accRepo).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		accRepo.On("Get", ctx, sellerID).Return(accountOf(t, sellerID, account.Seller, account.Approved), nil).Once()
		orderRepo.On("Add", ctx, mock.Anything).Return(addErr).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		_, err := commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, addErr)
		uow.AssertNotCalled(t, "Commit", ctx)
	})
}

func transitionOrder(
	t *testing.T,
	o *order.Order,
	status order.Status,
	by commands.Actor,
	expectUpdate bool,
) (*order.Order, error) {
	t.Helper()
	ctx := t.Context()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	if expectUpdate {
		orderRepo.On("Update", ctx, o).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
	}
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewTransitionOrderCommand(o.ID(), status, by)
	require.NoError(t, err)

	result, err := commands.NewTransitionOrderCommandHandler(factory).Handle(ctx, cmd)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	return result, err
}

func TestTransitionOrderCommandHandler_Handle(t *testing.T) {
	t.Run("seller accepts pending order", func(t *testing.T) {
		o := orderIn(t, order.Pending)

		result, err := transitionOrder(t, o, order.Confirmed, actor(t, sellerID, account.Seller), true)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, result.Status())
	})

	t.Run("seller rejects pending order without reason", func(t *testing.T) {
		o := orderIn(t, order.Pending)

		result, err := transitionOrder(t, o, order.Cancelled, actor(t, sellerID, account.Seller), true)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, result.Status())
	})

	t.Run("buyer cancels confirmed order", func(t *testing.T) {
		o := orderIn(t, order.Confirmed)

		_, err := transitionOrder(t, o, order.Cancelled, actor(t, buyerID, account.Buyer), true)

		require.NoError(t, err)
	})

	t.Run("buyer cannot cancel processing order", func(t *testing.T) {
		o := orderIn(t, order.Processing)

		_, err := transitionOrder(t, o, order.Cancelled, actor(t, buyerID, account.Buyer), false)

		require.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Equal(t, order.Processing, o.Status())
	})

	t.Run("admin cancels processing order", func(t *testing.T) {
		o := orderIn(t, order.Processing)

		_, err := transitionOrder(t, o, order.Cancelled, actor(t, adminID, account.Admin), true)

		require.NoError(t, err)
	})

	t.Run("shipped order cannot be cancelled by anyone", func(t *testing.T) {
		o := orderIn(t, order.Shipped)

		_, err := transitionOrder(t, o, order.Cancelled, actor(t, adminID, account.Admin), false)

		require.ErrorIs(t, err, errs.ErrIllegalTransition)
	})

	t.Run("delivered order never moves backwards", func(t *testing.T) {
		o := orderIn(t, order.Delivered)

		_, err := transitionOrder(t, o, order.Confirmed, actor(t, adminID, account.Admin), false)

		require.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("buyer cannot confirm", func(t *testing.T) {
		o := orderIn(t, order.Pending)

		_, err := transitionOrder(t, o, order.Confirmed, actor(t, buyerID, account.Buyer), false)

		require.ErrorIs(t, err, errs.ErrRoleMismatch)
	})

	t.Run("delivery partner gets role mismatch", func(t *testing.T) {
		o := orderIn(t, order.Confirmed)

		_, err := transitionOrder(t, o, order.Processing, actor(t, partnerID, account.DeliveryPartner), false)

		require.ErrorIs(t, err, errs.ErrRoleMismatch)
	})

	t.Run("other seller sees not found", func(t *testing.T) {
		o := orderIn(t, order.Pending)

		_, err := transitionOrder(t, o, order.Confirmed, actor(t, kernel.AccountID(999), account.Seller), false)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("version conflict is surfaced and nothing commits", func(t *testing.T) {
		ctx := t.Context()
		o := orderIn(t, order.Pending)

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		factory := new(MockOrderUoWFactory)

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
			orderRepo.On("Update", ctx, o).Return(errs.NewVersionIsInvalidError("order")).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewTransitionOrderCommand(o.ID(), order.Confirmed, actor(t, sellerID, account.Seller))
		require.NoError(t, err)
		_, err = commands.NewTransitionOrderCommandHandler(factory).Handle(ctx, cmd)

		assert.Equal(t, errs.CodeConflict, errs.CodeOf(err))
		uow.AssertExpectations(t)
	})
}
