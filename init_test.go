package printutils

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_InfersCallerPackage(t *testing.T) {
	w, err := Init(Explicit())
	require.NoError(t, err)

	assert.Equal(t, "printutils", w.Name())
}

func TestInit_ExplicitNameWins(t *testing.T) {
	w, err := Init(WithName("billing"), Explicit())
	require.NoError(t, err)

	assert.Equal(t, "billing", w.Name())
}

func TestInit_DefaultsToNewConfig(t *testing.T) {
	w, err := Init(WithName("mod"))
	require.NoError(t, err)

	assert.Equal(t, NewConfig(), w.Config())
}

func TestInit_RebindsCallerPrint(t *testing.T) {
	rec := &recorder{}
	var print PrintFunc = rec.Print
	cfg := NewConfig()
	cfg.DecoratePurePrint = true

	w, err := Init(WithName("mod"), WithConfig(cfg), WithBinding(&print), WithClock(fixedClock))
	require.NoError(t, err)
	require.NotNil(t, w)

	_, err = print("hello")
	require.NoError(t, err)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, []any{"mod", "[14:03:09] :", "hello"}, rec.calls[0])
}

func TestInit_ExplicitLeavesBindingAlone(t *testing.T) {
	rec := &recorder{}
	var print PrintFunc = rec.Print
	before := reflect.ValueOf(print).Pointer()

	w, err := Init(WithName("mod"), WithBinding(&print), WithClock(fixedClock), Explicit())
	require.NoError(t, err)

	assert.Equal(t, before, reflect.ValueOf(print).Pointer())

	_, _ = print("plain")
	_, _ = w.Success("wrapped")

	require.Len(t, rec.calls, 2)
	assert.Equal(t, []any{"plain"}, rec.calls[0])
	assert.Equal(t, []any{"\x1b[32mmod [14:03:09] : [S] wrapped\x1b[0m"}, rec.calls[1])
}

func TestInit_BindingPrimitiveCapturedAtInit(t *testing.T) {
	first := &recorder{}
	second := &recorder{}
	var print PrintFunc = first.Print

	w, err := Init(WithName("mod"), WithBinding(&print), WithPrint(second.Print), Explicit())
	require.NoError(t, err)

	print = second.Print
	_, _ = w.Call("x")

	assert.Len(t, first.calls, 1)
	assert.Empty(t, second.calls)
}

func TestInit_IndependentWrappers(t *testing.T) {
	recA := &recorder{}
	recB := &recorder{}
	cfgB := NewConfig()
	cfgB.AllowPrint = false

	a, err := Init(WithName("a"), WithPrint(recA.Print), WithClock(fixedClock), Explicit())
	require.NoError(t, err)
	b, err := Init(WithName("b"), WithConfig(cfgB), WithPrint(recB.Print), Explicit())
	require.NoError(t, err)

	_, _ = a.Log("x")
	_, _ = b.Log("x")

	assert.Len(t, recA.calls, 1)
	assert.Empty(t, recB.calls)
}

func TestPackageName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"main.main", "main"},
		{"printutils.TestPackageName", "printutils"},
		{"printutils/internal/cli.newDemoCmd.func1", "cli"},
		{"github.com/acme/app/billing.(*Service).Run", "billing"},
		{"gopkg.in/yaml.v3.Marshal", "yaml"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, packageName(tt.input))
		})
	}
}

func TestInit_RebindThenExplicitWrapsRawPrimitive(t *testing.T) {
	rec := &recorder{}
	var print PrintFunc = rec.Print
	cfg := NewConfig()
	cfg.DecoratePurePrint = true
	cfg.Timestamp = false

	_, err := Init(WithName("mod"), WithConfig(cfg), WithBinding(&print))
	require.NoError(t, err)
	console, err := Init(WithName("mod"), WithConfig(cfg), WithBinding(&print), Explicit())
	require.NoError(t, err)

	_, err = console.Success("Explicit call", 42)
	require.NoError(t, err)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, []any{"\x1b[32mmod [S] Explicit call 42\x1b[0m"}, rec.calls[0])
}

func TestInit_RepeatedRebindDoesNotStack(t *testing.T) {
	rec := &recorder{}
	var print PrintFunc = rec.Print
	cfg := NewConfig()
	cfg.DecoratePurePrint = true
	cfg.Timestamp = false

	_, err := Init(WithName("first"), WithConfig(cfg), WithBinding(&print))
	require.NoError(t, err)
	_, err = Init(WithName("second"), WithConfig(cfg), WithBinding(&print))
	require.NoError(t, err)

	_, err = print("hi")
	require.NoError(t, err)

	assert.Equal(t, [][]any{{"second", "hi"}}, rec.calls)
}

func TestInit_ReassignedBindingTakenAsIs(t *testing.T) {
	first := &recorder{}
	second := &recorder{}
	var print PrintFunc = first.Print

	_, err := Init(WithName("mod"), WithBinding(&print))
	require.NoError(t, err)

	print = second.Print
	w, err := Init(WithName("mod"), WithBinding(&print), Explicit())
	require.NoError(t, err)

	_, _ = w.Call("x")

	assert.Empty(t, first.calls)
	assert.Equal(t, [][]any{{"x"}}, second.calls)
}
