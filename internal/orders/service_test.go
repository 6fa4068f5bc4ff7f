package orders

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ReganLema/M-CONNECT-sub001/internal/api"
	errx "github.com/ReganLema/M-CONNECT-sub001/internal/core/error"
	"github.com/stretchr/testify/require"
)

type failingBackend struct {
	err error
}

func (f failingBackend) Get(ctx context.Context, path string) ([]byte, error) {
	return nil, f.err
}

func (f failingBackend) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return nil, f.err
}

func simulatedFailures() map[string]error {
	return map[string]error{
		"timeout":    errx.New(nil, errx.KindTimeout, errx.TimeoutErrorMessage),
		"client 4xx": errx.NewHTTP(http.StatusConflict, "order already cancelled"),
		"server 5xx": errx.NewHTTP(http.StatusServiceUnavailable, ""),
		"no network": errx.New(nil, errx.KindNetworkUnavailable, errx.NetworkErrorMessage),
	}
}

func serviceForHandler(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewService(api.New(api.Config{BaseURL: srv.URL, TimeoutSeconds: 1}, nil))
}

func TestList_NormalizesBackendRecords(t *testing.T) {
	svc := serviceForHandler(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders", r.URL.Path)
		w.Write([]byte(`{"success":true,"orders":[
			{"id":10,"total_amount":5600,"status":"cancelled","payment_status":"refunded",
			 "items_count":2,"created_at":"2026-08-20T09:30:00Z",
			 "items":[
				{"id":100,"product_name":"Tomatoes","price":1200,"quantity":2},
				{"id":101,"product_name":"Maize","price":800,"quantity":4}]}]}`))
	})

	orders := svc.List(context.Background())
	require.Len(t, orders, 1)

	o := orders[0]
	require.Equal(t, int64(10), o.ID)
	require.Equal(t, 5600.0, o.TotalAmount)
	// Status axes are independent and passed through untouched.
	require.Equal(t, "cancelled", o.Status)
	require.Equal(t, "refunded", o.PaymentStatus)
	require.Equal(t, 2, o.ItemsCount)
	require.Equal(t, time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC), o.CreatedAt)
	require.Len(t, o.Items, 2)
	require.Equal(t, "Tomatoes", o.Items[0].ProductName)
	require.Equal(t, 2, o.Items[0].Quantity)
}

func TestList_FailuresAbsorbToEmpty(t *testing.T) {
	for name, simErr := range simulatedFailures() {
		t.Run(name, func(t *testing.T) {
			orders := NewService(failingBackend{err: simErr}).List(context.Background())
			require.NotNil(t, orders)
			require.Empty(t, orders)
		})
	}
}

func TestPlace_Success(t *testing.T) {
	svc := serviceForHandler(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders/place", r.URL.Path)
		w.Write([]byte(`{"success":true,"message":"order placed","data":{
			"id":11,"total_amount":2400,"status":"pending","payment_status":"unpaid","items_count":1}}`))
	})

	receipt, err := svc.Place(context.Background())
	require.NoError(t, err)
	require.Equal(t, "order placed", receipt.Message)
	require.Equal(t, int64(11), receipt.Order.ID)
	require.Equal(t, "pending", receipt.Order.Status)
}

func TestPlace_FailuresPropagateWithMessage(t *testing.T) {
	for name, simErr := range simulatedFailures() {
		t.Run(name, func(t *testing.T) {
			receipt, err := NewService(failingBackend{err: simErr}).Place(context.Background())
			require.Error(t, err)
			require.Nil(t, receipt)
			require.NotEmpty(t, errx.MessageOf(err, ""))
		})
	}
}

func TestPlace_SuccessFalsePropagatesBackendMessage(t *testing.T) {
	svc := serviceForHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"cart is empty"}`))
	})

	_, err := svc.Place(context.Background())
	require.Error(t, err)
	require.Equal(t, "cart is empty", errx.MessageOf(err, ""))
}

func TestCancel_Success(t *testing.T) {
	svc := serviceForHandler(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders/10/cancel", r.URL.Path)
		w.Write([]byte(`{"success":true,"message":"order 10 cancelled"}`))
	})

	msg, err := svc.Cancel(context.Background(), 10)
	require.NoError(t, err)
	require.Equal(t, "order 10 cancelled", msg)
}

func TestCancel_FailuresPropagateWithMessage(t *testing.T) {
	for name, simErr := range simulatedFailures() {
		t.Run(name, func(t *testing.T) {
			_, err := NewService(failingBackend{err: simErr}).Cancel(context.Background(), 10)
			require.Error(t, err)
			require.NotEmpty(t, errx.MessageOf(err, ""))
		})
	}
}
