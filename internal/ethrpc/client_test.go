package ethrpc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_Call(t *testing.T) {
	var gotBody request

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}

		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}

		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"0x539"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 5*time.Second)

	var result string
	if err := c.Call(context.Background(), &result, "eth_chainId"); err != nil {
		t.Fatalf("call failed: %v", err)
	}

	if result != "0x539" {
		t.Errorf("unexpected result %q", result)
	}

	if gotBody.JSONRPC != "2.0" || gotBody.Method != "eth_chainId" {
		t.Errorf("unexpected request body: %+v", gotBody)
	}

	if len(gotBody.Params) != 0 {
		t.Errorf("expected empty params, got %v", gotBody.Params)
	}
}

func TestClient_Call_ProviderError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":3,"message":"execution reverted"}}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 5*time.Second)

	var result string

	err := c.Call(context.Background(), &result, "eth_estimateGas")
	if err == nil {
		t.Fatal("expected error")
	}

	if !IsProviderError(err) {
		t.Fatalf("expected provider error, got %v", err)
	}

	var rpcErr *Error
	if !errors.As(err, &rpcErr) {
		t.Fatalf("expected *Error, got %T", err)
	}

	if rpcErr.Code != 3 || rpcErr.Message != "execution reverted" {
		t.Errorf("unexpected error fields: %+v", rpcErr)
	}
}

func TestClient_Call_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	c := NewClient(ts.URL, time.Second)

	err := c.Call(context.Background(), nil, "eth_chainId")
	if err == nil {
		t.Fatal("expected error")
	}

	if IsProviderError(err) {
		t.Errorf("transport failure must not classify as provider error: %v", err)
	}
}

func TestClient_Call_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, time.Second)

	if err := c.Call(context.Background(), nil, "eth_chainId"); err == nil {
		t.Fatal("expected error")
	}
}

func TestClient_Call_NullResult(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":null}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, time.Second)

	var result string
	if err := c.Call(context.Background(), &result, "eth_accounts"); err == nil {
		t.Fatal("expected error for null result")
	}

	// Callers that ignore the payload accept a null result.
	if err := c.Call(context.Background(), nil, "eth_accounts"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Call_RequestIDsIncrement(t *testing.T) {
	var ids []uint64

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}

		ids = append(ids, req.ID)
		w.Write([]byte(`{"jsonrpc":"2.0","id":0,"result":"0x1"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, time.Second)

	var result string
	for i := 0; i < 2; i++ {
		if err := c.Call(context.Background(), &result, "eth_chainId"); err != nil {
			t.Fatalf("call failed: %v", err)
		}
	}

	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Errorf("unexpected request ids: %v", ids)
	}
}
