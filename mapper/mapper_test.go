package mapper_test

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"object-mapper/mapper"
	"object-mapper/mapping"
	"object-mapper/store"
	"object-mapper/warehouse"
)

type alpha struct {
	Value string
}

type beta struct {
	Value  string
	Value2 string
}

type gamma struct {
	Value string
}

func runtimeOf(t *testing.T, tms ...*mapping.TypeMap) *mapper.Mapper {
	t.Helper()

	m, err := mapper.New(tms)
	require.NoError(t, err)

	return m
}

func betaMap(t *testing.T, cfg mapping.Config[alpha, beta]) *mapping.TypeMap {
	t.Helper()

	tm, err := cfg.TypeMap()
	require.NoError(t, err)

	return tm
}

func TestDirectCopy(t *testing.T) {
	tm := betaMap(t, mapping.NewConfig[alpha, beta]().
		Ignore("Value2").
		MapRemaining())

	out, err := mapper.Map[beta](runtimeOf(t, tm), alpha{Value: "optimism"})
	require.NoError(t, err)

	assert.Equal(t, "optimism", out.Value)
	assert.Zero(t, out.Value2)
}

func TestComputedMember(t *testing.T) {
	tm := betaMap(t, mapping.NewConfig[alpha, beta]().
		MapFrom("Value2", func(src *alpha) any { return src.Value }))

	out, err := mapper.Map[beta](runtimeOf(t, tm), alpha{Value: "X"})
	require.NoError(t, err)

	assert.Zero(t, out.Value)
	assert.Equal(t, "X", out.Value2)
}

// An inline compute and an equivalent resolver must produce identical output.
func TestResolverEquivalence(t *testing.T) {
	rule := func(v string) string { return strings.ToUpper(v) }

	inline := betaMap(t, mapping.NewConfig[alpha, beta]().
		MapFrom("Value2", func(src *alpha) any { return rule(src.Value) }))

	resolved := betaMap(t, mapping.NewConfig[alpha, beta]().
		Use("Value2", mapping.ResolverFor[string](func(args mapping.Args) (string, error) {
			return rule(args.Source.(*alpha).Value), nil
		})))

	in := alpha{Value: "quiet"}

	a, err := mapper.Map[beta](runtimeOf(t, inline), in)
	require.NoError(t, err)

	b, err := mapper.Map[beta](runtimeOf(t, resolved), in)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestNoMapFound(t *testing.T) {
	tm := betaMap(t, mapping.NewConfig[alpha, beta]().MapRemaining())
	m := runtimeOf(t, tm)

	_, err := mapper.Map[gamma](m, alpha{Value: "x"})
	require.ErrorIs(t, err, mapper.ErrNoMapFound)
	assert.Contains(t, err.Error(), "gamma")

	_, err = m.MapTo(nil, reflect.TypeFor[beta]())
	assert.ErrorIs(t, err, mapper.ErrNilSource)
}

func TestDuplicateTypeMap(t *testing.T) {
	first := betaMap(t, mapping.NewConfig[alpha, beta]().MapRemaining())
	second := betaMap(t, mapping.NewConfig[alpha, beta]().Ignore("Value2"))

	_, err := mapper.New([]*mapping.TypeMap{first, second})
	assert.ErrorIs(t, err, mapper.ErrDuplicateTypeMap)
}

func TestPointerAndValueSourcesShareOneMap(t *testing.T) {
	tm := betaMap(t, mapping.NewConfig[alpha, beta]().Ignore("Value2").MapRemaining())
	m := runtimeOf(t, tm)

	byValue, err := mapper.Map[beta](m, alpha{Value: "v"})
	require.NoError(t, err)

	byPointer, err := mapper.Map[beta](m, &alpha{Value: "v"})
	require.NoError(t, err)

	assert.Equal(t, byValue, byPointer)
}

// A doubly-indirected source must unwrap to the same result as a plain
// pointer, never to a silently zeroed destination.
func TestDoublePointerSource(t *testing.T) {
	tm := betaMap(t, mapping.NewConfig[alpha, beta]().Ignore("Value2").MapRemaining())
	m := runtimeOf(t, tm)

	p := &alpha{Value: "optimism"}
	out, err := mapper.Map[beta](m, &p)
	require.NoError(t, err)

	assert.Equal(t, "optimism", out.Value)
}

// Configs declared with pointer type parameters register under the base
// types, so the same map serves *alpha and alpha sources alike.
func TestPointerTypeParameterRegistration(t *testing.T) {
	tm, err := mapping.NewConfig[*alpha, beta]().
		Ignore("Value2").
		MapRemaining().
		TypeMap()
	require.NoError(t, err)

	m := runtimeOf(t, tm)

	out, err := mapper.Map[beta](m, alpha{Value: "w"})
	require.NoError(t, err)
	assert.Equal(t, "w", out.Value)

	out, err = mapper.Map[beta](m, &alpha{Value: "w"})
	require.NoError(t, err)
	assert.Equal(t, "w", out.Value)
}

type countingInstantiator struct {
	calls int
}

func (c *countingInstantiator) Create(rtype reflect.Type) (any, error) {
	c.calls++
	if rtype.Kind() == reflect.Ptr {
		return reflect.New(rtype.Elem()).Interface(), nil
	}

	return reflect.Zero(rtype).Interface(), nil
}

func TestInjectedInstantiator(t *testing.T) {
	tm := betaMap(t, mapping.NewConfig[alpha, beta]().MapRemaining())

	inst := &countingInstantiator{}
	m, err := mapper.New([]*mapping.TypeMap{tm}, mapper.WithInstantiator(inst))
	require.NoError(t, err)

	_, err = mapper.Map[beta](m, alpha{Value: "x"})
	require.NoError(t, err)
	assert.Equal(t, 1, inst.calls)
}

func customerConfig() mapping.Config[store.Customer, warehouse.Customer] {
	return mapping.NewConfig[store.Customer, warehouse.Customer]().
		MapFrom("DisplayName", func(src *store.Customer) any { return src.FullName }).
		MapFrom("FirstName", func(src *store.Customer) any {
			first, _, _ := strings.Cut(src.FullName, " ")
			return first
		}).
		MapFrom("LastName", func(src *store.Customer) any {
			_, last, _ := strings.Cut(src.FullName, " ")
			return last
		}).
		MapRemaining() // picks up Email
}

func TestDomainCustomerMapping(t *testing.T) {
	cfg, err := customerConfig().AssertAllMapped()
	require.NoError(t, err)

	tm, err := cfg.TypeMap()
	require.NoError(t, err)

	out, err := mapper.Map[warehouse.Customer](runtimeOf(t, tm), store.Customer{
		Email:    "ada@example.com",
		FullName: "Ada Lovelace",
	})
	require.NoError(t, err)
	t.Log(spew.Sdump(out))

	assert.Equal(t, "ada@example.com", out.Email)
	assert.Equal(t, "Ada", out.FirstName)
	assert.Equal(t, "Lovelace", out.LastName)
	assert.Equal(t, "Ada Lovelace", out.DisplayName)
}

func TestNestedMappingThroughContext(t *testing.T) {
	customers, err := customerConfig().TypeMap()
	require.NoError(t, err)

	orders, err := mapping.NewConfig[store.Order, warehouse.Order]().
		MapFrom("OrderNumber", func(src *store.Order) any { return "ORD-1" }).
		MapFrom("Status", func(src *store.Order) any { return strings.ToLower(string(src.Status)) }).
		MapFrom("TotalAmount", func(src *store.Order) any { return src.TotalCents }).
		MapFrom("Currency", func(src *store.Order) any { return "USD" }).
		MapFrom("PlacedAt", func(src *store.Order) any { return src.OrderedAt }).
		Map("Customer", func(src *store.Order, dst *warehouse.Order, ctx *mapping.Context) (any, error) {
			return ctx.Runtime().MapTo(src.Customer, reflect.TypeFor[warehouse.Customer]())
		}).
		TypeMap()
	require.NoError(t, err)

	m := runtimeOf(t, customers, orders)

	placed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	out, err := mapper.Map[warehouse.Order](m, store.Order{
		Customer:   store.Customer{Email: "ada@example.com", FullName: "Ada Lovelace"},
		Status:     store.StatusPaid,
		TotalCents: 12500,
		OrderedAt:  placed,
	})
	require.NoError(t, err)

	assert.Equal(t, "paid", out.Status)
	assert.Equal(t, int64(12500), out.TotalAmount)
	assert.Equal(t, placed, out.PlacedAt)
	require.NotNil(t, out.Customer)
	assert.Equal(t, "Ada", out.Customer.FirstName)
}

func TestDomainProductMapping(t *testing.T) {
	cfg := mapping.NewConfig[store.Product, warehouse.Product]().
		MapFrom("Price", func(src *store.Product) any { return src.PriceCents }).
		MapFrom("Stock", func(src *store.Product) any { return src.Inventory }).
		Map("IsActive", func(src *store.Product, dst *warehouse.Product, ctx *mapping.Context) (any, error) {
			return src.Inventory > 0, nil
		}).
		Ignore("Weight").
		MapRemaining() // SKU, Name, Description

	cfg, err := cfg.AssertAllMapped()
	require.NoError(t, err)

	tm, err := cfg.TypeMap()
	require.NoError(t, err)

	out, err := mapper.Map[warehouse.Product](runtimeOf(t, tm), store.Product{
		SKU:        "SKU-9",
		Name:       "Crate",
		PriceCents: 999,
		Inventory:  3,
	})
	require.NoError(t, err)

	assert.Equal(t, "SKU-9", out.SKU)
	assert.Equal(t, "Crate", out.Name)
	assert.Equal(t, int64(999), out.Price)
	assert.Equal(t, 3, out.Stock)
	assert.True(t, out.IsActive)
	assert.Zero(t, out.Weight)
}
