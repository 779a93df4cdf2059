package schemas_test

import (
	"encoding/json"
	"testing"
	"whale/src/schemas"
)

func TestTransactionRequestEmpty(t *testing.T) {
	t.Run("zero value is empty", func(t *testing.T) {
		var request schemas.TransactionRequest
		if !request.Empty() {
			t.Error("expected zero value to be empty")
		}
	})

	t.Run("null JSON leaves the request empty", func(t *testing.T) {
		var request schemas.TransactionRequest
		if err := json.Unmarshal([]byte("null"), &request); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !request.Empty() {
			t.Error("expected request decoded from null to be empty")
		}
	})

	t.Run("any populated field marks the request non-empty", func(t *testing.T) {
		request := schemas.TransactionRequest{Symbol: "BTC"}
		if request.Empty() {
			t.Error("expected request with a symbol to be non-empty")
		}
	})
}
