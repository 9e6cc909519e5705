package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCartLine_Total(t *testing.T) {
	line := CartLine{Product: Product{Price: dec("10.00")}, Quantity: 2}
	if got := line.Total(); !got.Equal(dec("20.00")) {
		t.Fatalf("total = %s, want 20.00", got)
	}
}

func TestCartSubtotal(t *testing.T) {
	lines := []CartLine{
		{Product: Product{Price: dec("8.50")}, Quantity: 2},
		{Product: Product{Price: dec("2.00")}, Quantity: 3},
	}
	if got := CartSubtotal(lines); !got.Equal(dec("23.00")) {
		t.Fatalf("subtotal = %s, want 23.00", got)
	}

	if got := CartSubtotal(nil); !got.Equal(decimal.Zero) {
		t.Fatalf("empty subtotal = %s, want 0", got)
	}
}

func TestCartSubtotal_NoFloatDrift(t *testing.T) {
	lines := make([]CartLine, 10)
	for i := range lines {
		lines[i] = CartLine{Product: Product{Price: dec("0.10")}, Quantity: 1}
	}
	if got := CartSubtotal(lines); !got.Equal(dec("1.00")) {
		t.Fatalf("subtotal = %s, want exactly 1.00", got)
	}
}

func TestUser_IsAdmin(t *testing.T) {
	if (&User{Role: RoleUser}).IsAdmin() {
		t.Fatalf("USER role counted as admin")
	}
	if !(&User{Role: RoleAdmin}).IsAdmin() {
		t.Fatalf("ADMIN role not counted as admin")
	}
	var nobody *User
	if nobody.IsAdmin() {
		t.Fatalf("nil user counted as admin")
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []OrderStatus{OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled} {
		if !ValidOrderStatus(s) {
			t.Fatalf("%s rejected", s)
		}
	}
	if ValidOrderStatus("EATEN") {
		t.Fatalf("unknown status accepted")
	}
}
