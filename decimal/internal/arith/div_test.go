package arith

import (
	"math/rand"
	"testing"

	"github.com/cockroachdb/apd/v3"
)

func TestQuo(t *testing.T) {
	for i, test := range []struct {
		x, y string
		prec int
		want string
	}{
		{"10", "3", 6, "3.333333"},
		{"2", "3", 6, "0.666667"},
		{"-2", "3", 6, "-0.666667"},
		{"1", "8", 2, "0.12"},
		{"3", "8", 2, "0.38"},
		{"1", "8", 1, "0.1"},
		{"1.5", "0.5", 6, "3"},
		{"7", "0.25", 6, "28"},
		{"-7", "-1", 6, "7"},
		{"0.001", "1000", 6, "0.000001"},
		{"0.001", "3000", 6, "0"},
		{"1", "7", 20, "0.14285714285714285714"},
		{"123456789012345678901234567890", "9", 0, "13717421001371742100137174210"},
	} {
		if got := Quo(num(test.x), num(test.y), test.prec).String(); got != test.want {
			t.Errorf("#%d: %s / %s: wanted %s, got %s", i, test.x, test.y, test.want, got)
		}
	}
}

func TestQuoRemInt(t *testing.T) {
	for i, test := range []struct {
		n, d, q, r string
	}{
		{"7", "3", "2", "1"},
		{"3", "7", "0", "3"},
		{"1000000000000000000000", "7", "142857142857142857142", "6"},
		{"100", "25", "4", "0"},
		{"1005", "5", "201", "0"},
	} {
		q, r := QuoRemInt(test.n, test.d)
		if q != test.q || r != test.r {
			t.Errorf("#%d: %s / %s: wanted %s r %s, got %s r %s", i, test.n, test.d, test.q, test.r, q, r)
		}
	}
}

func TestQuoRem(t *testing.T) {
	for i, test := range []struct {
		x, y, q, r string
	}{
		{"7", "3", "2", "1"},
		{"-7", "3", "-3", "2"},
		{"7", "-3", "-3", "-2"},
		{"-7", "-3", "2", "-1"},
		{"6", "-3", "-2", "0"},
		{"5.5", "2", "2", "1.5"},
		{"-5.5", "2", "-3", "0.5"},
		{"1", "0.3", "3", "0.1"},
	} {
		q, r := QuoRem(num(test.x), num(test.y))
		if q.String() != test.q || r.String() != test.r {
			t.Errorf("#%d: %s divmod %s: wanted %s r %s, got %s r %s", i, test.x, test.y, test.q, test.r, q, r)
		}
		// x == q*y + r
		back := Add(Mul(q, num(test.y), 100), r, 100)
		if Cmp(back, num(test.x)) != 0 {
			t.Errorf("#%d: %s*%s + %s = %s, wanted %s", i, q, test.y, r, back, test.x)
		}
	}
}

func TestGCD(t *testing.T) {
	for i, test := range []struct{ a, b, want string }{
		{"12", "18", "6"},
		{"5", "10", "5"},
		{"17", "5", "1"},
		{"125", "1000", "125"},
	} {
		if got := gcd(test.a, test.b); got != test.want {
			t.Errorf("#%d: gcd(%s, %s): wanted %s, got %s", i, test.a, test.b, test.want, got)
		}
	}
}

// TestQuoOracle compares Quo with apd, which carries far more digits
// than are kept before quantizing half to even.
func TestQuoOracle(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	ctx := apd.BaseContext.WithPrecision(500)
	ctx.Rounding = apd.RoundHalfEven
	for i := 0; i < 50; i++ {
		xs := digits(r, 1+r.Intn(30)) + "." + digits(r, 1+r.Intn(10))
		ys := digits(r, 1+r.Intn(10)) + "." + digits(r, 1+r.Intn(10))
		if i%2 == 0 {
			xs = "-" + xs
		}
		prec := r.Intn(30)

		x, _, err := apd.NewFromString(xs)
		if err != nil {
			t.Fatal(err)
		}
		y, _, err := apd.NewFromString(ys)
		if err != nil {
			t.Fatal(err)
		}
		var z apd.Decimal
		if _, err := ctx.Quo(&z, x, y); err != nil {
			t.Fatal(err)
		}
		if _, err := ctx.Quantize(&z, &z, -int32(prec)); err != nil {
			t.Fatal(err)
		}
		want := apdText(&z)
		if got := Quo(num(xs), num(ys), prec).String(); got != want {
			t.Errorf("%s / %s @%d: wanted %s, got %s", xs, ys, prec, want, got)
		}
	}
}
