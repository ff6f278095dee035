package pricing

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEstimateFees_WorkedExample(t *testing.T) {
	// weight=10 lbs, declared value=200 → fee 34, tax 3.4, total 37.4
	q := EstimateFees(10, 200)

	if !almostEqual(q.ShippingFee, 34) {
		t.Errorf("shipping fee: want 34, got %v", q.ShippingFee)
	}
	if q.Discount != 0 {
		t.Errorf("auto mode discount must be 0, got %v", q.Discount)
	}
	if !almostEqual(q.TaxAmount, 3.4) {
		t.Errorf("tax: want 3.4, got %v", q.TaxAmount)
	}
	if !almostEqual(q.Total, 37.4) {
		t.Errorf("total: want 37.4, got %v", q.Total)
	}
}

func TestEstimateFees_Zero(t *testing.T) {
	q := EstimateFees(0, 0)
	if q.ShippingFee != 0 || q.TaxAmount != 0 || q.Total != 0 {
		t.Errorf("zero inputs must produce a zero quote, got %+v", q)
	}
}

func TestEstimateFees_Properties(t *testing.T) {
	cases := []struct {
		weight, declared float64
	}{
		{1, 0},
		{0, 50},
		{2.5, 99.99},
		{150, 1200},
		{0.1, 0.01},
	}

	for _, tc := range cases {
		q := EstimateFees(tc.weight, tc.declared)

		wantFee := tc.weight*3 + tc.declared*0.02
		if !almostEqual(q.ShippingFee, wantFee) {
			t.Errorf("weight=%v declared=%v: fee want %v, got %v", tc.weight, tc.declared, wantFee, q.ShippingFee)
		}
		if !almostEqual(q.TaxAmount, wantFee*0.10) {
			t.Errorf("weight=%v declared=%v: tax want %v, got %v", tc.weight, tc.declared, wantFee*0.10, q.TaxAmount)
		}
		if !almostEqual(q.Total, wantFee*1.10) {
			t.Errorf("weight=%v declared=%v: total want %v, got %v", tc.weight, tc.declared, wantFee*1.10, q.Total)
		}
	}
}

func TestManualFees_WorkedExample(t *testing.T) {
	// fee=50, discount=10, tax=5 → total 45
	q := ManualFees(50, 10, 5)
	if !almostEqual(q.Total, 45) {
		t.Errorf("total: want 45, got %v", q.Total)
	}
	if q.ShippingFee != 50 || q.Discount != 10 || q.TaxAmount != 5 {
		t.Errorf("manual quote must echo its inputs, got %+v", q)
	}
}

func TestManualFees_NegativeTotalNotClamped(t *testing.T) {
	// discount > fee+tax is accepted as entered.
	q := ManualFees(20, 50, 2)
	if !almostEqual(q.Total, -28) {
		t.Errorf("total: want -28, got %v", q.Total)
	}
}

func TestManualFees_Defaults(t *testing.T) {
	q := ManualFees(0, 0, 0)
	if q.Total != 0 {
		t.Errorf("blank manual inputs must total 0, got %v", q.Total)
	}
}
