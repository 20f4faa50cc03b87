package bezier_test

import (
	"fmt"

	"honnef.co/go/bezier"
)

func ExampleCurve_ValueAt() {
	c := bezier.NewCurve(nil, bezier.Pt(0, 0), bezier.Pt(1, 2), bezier.Pt(2, -2), bezier.Pt(3, 0))
	fmt.Println(c.ValueAt(0.5))
	fmt.Println(c.DerivativeAt(0.5))
	// Output:
	// (1.5, 0)
	// ⟨3, -3⟩
}

func ExampleCurve_Roots() {
	c := bezier.NewCurve(nil, bezier.Pt(0, 0), bezier.Pt(1, 2), bezier.Pt(2, -2), bezier.Pt(3, 0))
	fmt.Printf("%.4f\n", c.Roots())
	// Output:
	// [0.0000 0.5000 1.0000]
}

func ExampleCurve_Intersection() {
	a := bezier.NewCurve(nil, bezier.Pt(0, 0), bezier.Pt(1, 1))
	b := bezier.NewCurve(nil, bezier.Pt(0, 1), bezier.Pt(1, 0))
	for _, pt := range a.Intersection(b, false, bezier.DefaultEpsilon) {
		fmt.Printf("%.2f %.2f\n", pt.X, pt.Y)
	}
	// Output:
	// 0.50 0.50
}

func ExampleCurve_Length() {
	// y = x² for x in [-1, 1]
	c := bezier.NewCurve(nil, bezier.Pt(-1, 1), bezier.Pt(0, -1), bezier.Pt(1, 1))
	fmt.Printf("%.6f\n", c.Length())
	fmt.Printf("%.4f\n", c.IterateByLength(0, c.Length()/2, 1e-9))
	// Output:
	// 2.957886
	// 0.5000
}

func ExampleCurve_ApplyContinuity() {
	src := bezier.NewCurve(nil, bezier.Pt(0, 0), bezier.Pt(1, 2), bezier.Pt(2, -2), bezier.Pt(3, 0))
	next := bezier.NewCurve(nil, bezier.Pt(10, 10), bezier.Pt(11, 11), bezier.Pt(12, 10), bezier.Pt(13, 10))
	if err := next.ApplyContinuity(src, []float64{1}); err != nil {
		panic(err)
	}
	p1, _ := next.ControlPoint(1)
	fmt.Printf("%.2f\n", next.ValueAt(0).Distance(src.ValueAt(1)))
	fmt.Printf("%.2f\n", next.DerivativeAt(0).Sub(src.DerivativeAt(1)).Hypot())
	fmt.Printf("%.2f %.2f\n", p1.X, p1.Y)
	// Output:
	// 0.00
	// 0.00
	// 4.00 2.00
}
