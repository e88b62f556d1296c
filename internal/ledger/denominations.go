package ledger

import "github.com/shopspring/decimal"

// Denominations are counted bills and coins.
type Denominations struct {
	Bill1000 int `json:"bill1000"`
	Bill500  int `json:"bill500"`
	Bill200  int `json:"bill200"`
	Bill100  int `json:"bill100"`
	Bill50   int `json:"bill50"`
	Bill20   int `json:"bill20"`
	Coin20   int `json:"coin20"`
	Coin10   int `json:"coin10"`
	Coin5    int `json:"coin5"`
	Coin1    int `json:"coin1"`
	Cent25   int `json:"cent25"`
	Cent10   int `json:"cent10"`
	Cent5    int `json:"cent5"`
}

// Denomination pairs a face value with its count.
type Denomination struct {
	Label string
	Value decimal.Decimal
	Count int
}

// List returns the thirteen denominations, largest first.
func (d Denominations) List() []Denomination {
	return []Denomination{
		{"1000", decimal.NewFromInt(1000), d.Bill1000},
		{"500", decimal.NewFromInt(500), d.Bill500},
		{"200", decimal.NewFromInt(200), d.Bill200},
		{"100", decimal.NewFromInt(100), d.Bill100},
		{"50", decimal.NewFromInt(50), d.Bill50},
		{"20 (bill)", decimal.NewFromInt(20), d.Bill20},
		{"20 (coin)", decimal.NewFromInt(20), d.Coin20},
		{"10", decimal.NewFromInt(10), d.Coin10},
		{"5", decimal.NewFromInt(5), d.Coin5},
		{"1", decimal.NewFromInt(1), d.Coin1},
		{"0.25", decimal.New(25, -2), d.Cent25},
		{"0.10", decimal.New(10, -2), d.Cent10},
		{"0.05", decimal.New(5, -2), d.Cent5},
	}
}

// Total is the face value of every counted piece.
func (d Denominations) Total() decimal.Decimal {
	total := decimal.Zero
	for _, den := range d.List() {
		total = total.Add(den.Value.Mul(decimal.NewFromInt(int64(den.Count))))
	}

	return total
}

// Add returns the per-denomination sum of two counts.
func (d Denominations) Add(o Denominations) Denominations {
	return Denominations{
		Bill1000: d.Bill1000 + o.Bill1000,
		Bill500:  d.Bill500 + o.Bill500,
		Bill200:  d.Bill200 + o.Bill200,
		Bill100:  d.Bill100 + o.Bill100,
		Bill50:   d.Bill50 + o.Bill50,
		Bill20:   d.Bill20 + o.Bill20,
		Coin20:   d.Coin20 + o.Coin20,
		Coin10:   d.Coin10 + o.Coin10,
		Coin5:    d.Coin5 + o.Coin5,
		Coin1:    d.Coin1 + o.Coin1,
		Cent25:   d.Cent25 + o.Cent25,
		Cent10:   d.Cent10 + o.Cent10,
		Cent5:    d.Cent5 + o.Cent5,
	}
}

// Negative reports whether any count is below zero.
func (d Denominations) Negative() bool {
	for _, den := range d.List() {
		if den.Count < 0 {
			return true
		}
	}

	return false
}
