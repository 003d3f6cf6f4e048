package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	catalogmemory "github.com/Apurer/go-gin-pizza-api/internal/domains/catalog/adapters/memory"
	ordersmemory "github.com/Apurer/go-gin-pizza-api/internal/domains/orders/adapters/memory"
	"github.com/Apurer/go-gin-pizza-api/internal/domains/orders/application/types"
	"github.com/Apurer/go-gin-pizza-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-pizza-api/internal/domains/orders/ports"
)

var fixedNow = time.Date(2024, 5, 4, 19, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *ordersmemory.Repository) {
	t.Helper()
	var mu sync.Mutex
	seq := 0
	repo := ordersmemory.NewRepository().WithIDGenerator(func() string {
		mu.Lock()
		defer mu.Unlock()
		seq++
		return fmt.Sprintf("order-%d", seq)
	})
	svc := NewService(repo, catalogmemory.NewCatalog(), WithClock(func() time.Time { return fixedNow }))
	return svc, repo
}

func margheritaInput(customer string, qty int) types.CreateOrderInput {
	return types.CreateOrderInput{
		CustomerName: customer,
		LineItems:    []types.LineItemInput{{TypeID: "MARG", Quantity: qty}},
	}
}

func mustCreate(t *testing.T, svc *Service, customer string) string {
	t.Helper()
	id, err := svc.CreateOrder(context.Background(), margheritaInput(customer, 1))
	require.NoError(t, err)
	return id
}

func TestCreateOrder_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	id, err := svc.CreateOrder(ctx, types.CreateOrderInput{
		CustomerName: "mario",
		LineItems: []types.LineItemInput{
			{TypeID: "MARG", Quantity: 2},
			{TypeID: "DIAV", Quantity: 1, AdditionalIngredients: []string{"Olive"}},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "order-1", id)

	order, err := svc.GetDetails(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "mario", order.CustomerName)
	require.Equal(t, domain.StatusWaiting, order.Status)
	require.Equal(t, fixedNow, order.CreatedAt)
	require.Len(t, order.LineItems, 2)
	require.Equal(t, "MARG", order.LineItems[0].Entry.ID)
	require.Equal(t, 2, order.LineItems[0].Quantity)
	require.Equal(t, []string{"Pomodoro", "Mozzarella", "Basilico"}, order.LineItems[0].Entry.Ingredients)
	require.Equal(t, "DIAV", order.LineItems[1].Entry.ID)
	require.Equal(t, []string{"Olive"}, order.LineItems[1].AdditionalIngredients)

	status, err := svc.GetStatus(ctx, id)
	require.NoError(t, err)
	require.Equal(t, domain.StatusWaiting, status)
}

func TestCreateOrder_UnknownTypeInsertsNothing(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.CreateOrder(ctx, types.CreateOrderInput{
		CustomerName: "mario",
		LineItems: []types.LineItemInput{
			{TypeID: "MARG", Quantity: 1},
			{TypeID: "PINE", Quantity: 1},
		},
	})
	require.ErrorIs(t, err, ErrInvalidEntryType)
	require.ErrorContains(t, err, "PINE")

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestCreateOrder_InvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		input types.CreateOrderInput
		want  error
	}{
		{name: "blank customer", input: margheritaInput("  ", 1), want: domain.ErrEmptyCustomerName},
		{name: "no line items", input: types.CreateOrderInput{CustomerName: "mario"}, want: domain.ErrNoLineItems},
		{name: "zero quantity", input: margheritaInput("mario", 0), want: domain.ErrInvalidQuantity},
		{name: "negative quantity", input: margheritaInput("mario", -3), want: domain.ErrInvalidQuantity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestService(t)
			_, err := svc.CreateOrder(context.Background(), tc.input)
			require.ErrorIs(t, err, ErrInvalidInput)
			require.ErrorIs(t, err, tc.want)

			all, err := svc.ListAll(context.Background())
			require.NoError(t, err)
			require.Empty(t, all)
		})
	}
}

func TestGetStatusAndDetails_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.GetStatus(ctx, "missing")
	require.ErrorIs(t, err, ports.ErrNotFound)
	_, err = svc.GetDetails(ctx, "missing")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestLifecycle_Scenario(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	a := mustCreate(t, svc, "mario")
	b := mustCreate(t, svc, "luigi")

	require.NoError(t, svc.StartProcessing(ctx, a))

	current, err := svc.GetOrderInProgress(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	require.Equal(t, a, current.ID)
	require.Equal(t, domain.StatusInProgress, current.Status)

	require.ErrorIs(t, svc.StartProcessing(ctx, b), ErrOrderAlreadyInProgress)
	require.ErrorIs(t, svc.StartProcessing(ctx, "unknown"), ErrOrderAlreadyInProgress)

	require.NoError(t, svc.CompleteProcessing(ctx, a))

	current, err = svc.GetOrderInProgress(ctx)
	require.NoError(t, err)
	require.Nil(t, current)

	require.ErrorIs(t, svc.StartProcessing(ctx, a), ErrOrderAlreadyProcessed)

	status, err := svc.GetStatus(ctx, a)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, status)
}

func TestStartProcessing_SameOrderTwiceFails(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	a := mustCreate(t, svc, "mario")

	require.NoError(t, svc.StartProcessing(ctx, a))
	require.ErrorIs(t, svc.StartProcessing(ctx, a), ErrOrderAlreadyInProgress)

	status, err := svc.GetStatus(ctx, a)
	require.NoError(t, err)
	require.Equal(t, domain.StatusInProgress, status)
}

func TestStartProcessing_UnknownOrder(t *testing.T) {
	svc, _ := newTestService(t)
	require.ErrorIs(t, svc.StartProcessing(context.Background(), "missing"), ports.ErrNotFound)
}

func TestCompleteProcessing_NothingInProgress(t *testing.T) {
	svc, _ := newTestService(t)
	require.ErrorIs(t, svc.CompleteProcessing(context.Background(), "unknown-id"), ErrOrderNotInProgress)
}

func TestCompleteProcessing_WaitingOrderIsNotInProgress(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	a := mustCreate(t, svc, "mario")

	require.ErrorIs(t, svc.CompleteProcessing(ctx, a), ErrOrderNotInProgress)

	status, err := svc.GetStatus(ctx, a)
	require.NoError(t, err)
	require.Equal(t, domain.StatusWaiting, status)
}

func TestCompleteProcessing_WrongOrderLeavesCurrentUntouched(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	a := mustCreate(t, svc, "mario")
	b := mustCreate(t, svc, "luigi")

	require.NoError(t, svc.StartProcessing(ctx, a))
	require.ErrorIs(t, svc.CompleteProcessing(ctx, b), ErrOrderNotInProgress)

	status, err := svc.GetStatus(ctx, a)
	require.NoError(t, err)
	require.Equal(t, domain.StatusInProgress, status)
	status, err = svc.GetStatus(ctx, b)
	require.NoError(t, err)
	require.Equal(t, domain.StatusWaiting, status)
}

func TestCompleteProcessing_CompletedOrderIsNotInProgress(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	a := mustCreate(t, svc, "mario")

	require.NoError(t, svc.StartProcessing(ctx, a))
	require.NoError(t, svc.CompleteProcessing(ctx, a))
	require.ErrorIs(t, svc.CompleteProcessing(ctx, a), ErrOrderNotInProgress)
}

func TestListAll_KeepsCreationOrderAcrossTransitions(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	a := mustCreate(t, svc, "mario")
	b := mustCreate(t, svc, "luigi")
	c := mustCreate(t, svc, "peach")

	require.NoError(t, svc.StartProcessing(ctx, b))
	require.NoError(t, svc.CompleteProcessing(ctx, b))
	require.NoError(t, svc.StartProcessing(ctx, a))

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{a, b, c}, orderIDs(all))

	pending, err := svc.ListPending(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{c}, orderIDs(pending))
}

func TestSnapshotsAreDetached(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	a := mustCreate(t, svc, "mario")

	details, err := svc.GetDetails(ctx, a)
	require.NoError(t, err)
	details.Status = domain.StatusCompleted

	require.NoError(t, svc.StartProcessing(ctx, a))
}

func TestStartProcessing_ConcurrentCallsHaveSingleWinner(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	const n = 50
	ids := make([]string, n)
	for i := range ids {
		ids[i] = mustCreate(t, svc, fmt.Sprintf("customer-%d", i))
	}

	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		errs  = make([]error, n)
	)
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			<-start
			errs[i] = svc.StartProcessing(ctx, id)
		}(i, id)
	}
	close(start)
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
			continue
		}
		require.ErrorIs(t, err, ErrOrderAlreadyInProgress)
	}
	require.Equal(t, 1, winners)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	inProgress := 0
	for _, order := range all {
		if order.Status == domain.StatusInProgress {
			inProgress++
		}
	}
	require.Equal(t, 1, inProgress)
}

func TestLifecycle_ConcurrentStartCompleteKeepsSingleInProgress(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	const n = 20
	ids := make([]string, n)
	for i := range ids {
		ids[i] = mustCreate(t, svc, fmt.Sprintf("customer-%d", i))
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			for {
				err := svc.StartProcessing(ctx, id)
				if err == nil {
					break
				}
				if !errors.Is(err, ErrOrderAlreadyInProgress) {
					return
				}
			}
			_ = svc.CompleteProcessing(ctx, id)
		}(id)
	}

	done := make(chan struct{})
	violations := 0
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			all, _ := repo.List(ctx)
			count := 0
			for _, order := range all {
				if order.Status == domain.StatusInProgress {
					count++
				}
			}
			if count > 1 {
				violations++
			}
		}
	}()
	wg.Wait()
	<-done

	require.Zero(t, violations)
	pending, err := svc.ListPending(ctx)
	require.NoError(t, err)
	require.Empty(t, pending)
	current, err := svc.GetOrderInProgress(ctx)
	require.NoError(t, err)
	require.Nil(t, current)
}

// danglingSlotRepo reports an in-progress id that no longer resolves to an order.
type danglingSlotRepo struct {
	ports.Repository
}

func (danglingSlotRepo) Atomically(_ context.Context, fn func(tx ports.Tx) error) error {
	return fn(danglingTx{})
}

type danglingTx struct{}

func (danglingTx) CurrentInProgressID() (string, bool) { return "ghost", true }
func (danglingTx) Find(string) (*domain.Order, bool)   { return nil, false }
func (danglingTx) MarkInProgress(*domain.Order)        {}
func (danglingTx) MarkCompleted(*domain.Order)         {}

func TestInconsistentSlot(t *testing.T) {
	ctx := context.Background()
	svc := NewService(danglingSlotRepo{}, catalogmemory.NewCatalog())

	current, err := svc.GetOrderInProgress(ctx)
	require.NoError(t, err)
	require.Nil(t, current)

	require.ErrorIs(t, svc.CompleteProcessing(ctx, "ghost"), ports.ErrNotFound)
}

func orderIDs(orders []*domain.Order) []string {
	out := make([]string, 0, len(orders))
	for _, order := range orders {
		out = append(out, order.ID)
	}
	return out
}
