package groupby

// Table is the capability every concrete hash-table kind in this package
// shares: how many groups it holds, how many slots it has, and how full it
// is. Tests use it to assert table-filling invariants generically across
// SwissHashTableSum, SwissHashTableMultiAgg, RobinHoodTableSum and
// RobinHoodTableMultiAgg without a type switch per table kind.
type Table interface {
	Len() int
	Cap() int
	LoadFactor() float64
}

var (
	_ Table = (*SwissHashTableSum)(nil)
	_ Table = (*SwissHashTableMultiAgg)(nil)
	_ Table = (*RobinHoodTableSum)(nil)
	_ Table = (*RobinHoodTableMultiAgg)(nil)
)
