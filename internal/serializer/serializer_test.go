package serializer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testChoice string

func (c testChoice) ChoiceValue() string { return string(c) }

type testPath string

func (p testPath) Slash() string { return string(p) }

func TestBoolFlag(t *testing.T) {
	t.Parallel()

	emit := BoolFlag("lto")

	frags, err := emit(true)
	require.NoError(t, err)
	assert.Equal(t, []string{"--lto"}, frags)

	frags, err = emit(false)
	require.NoError(t, err)
	assert.Empty(t, frags)

	frags, err = emit(nil)
	require.NoError(t, err)
	assert.Empty(t, frags)
}

func TestBoolFlag_RejectsNonBool(t *testing.T) {
	t.Parallel()

	_, err := BoolFlag("lto")([]string{"oops"})

	var invalidErr *InvalidValueError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "lto", invalidErr.Flag)
}

func TestEnumFlag(t *testing.T) {
	t.Parallel()

	frags, err := EnumFlag("windows-console-mode")(testChoice("disable"))
	require.NoError(t, err)
	assert.Equal(t, []string{"--windows-console-mode=disable"}, frags)

	frags, err = EnumFlag("lto")("yes")
	require.NoError(t, err)
	assert.Equal(t, []string{"--lto=yes"}, frags)

	_, err = EnumFlag("lto")(42)
	require.Error(t, err)
}

func TestIterable_PreservesOrder(t *testing.T) {
	t.Parallel()

	frags, err := Iterable("include-package", nil)([]string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, []string{"--include-package=x", "--include-package=y"}, frags)
}

func TestIterable_EmptyEmitsNothing(t *testing.T) {
	t.Parallel()

	frags, err := Iterable("include-package", nil)([]string{})
	require.NoError(t, err)
	assert.Empty(t, frags)

	frags, err = Iterable("include-package", nil)(nil)
	require.NoError(t, err)
	assert.Empty(t, frags)
}

func TestIterable_DefaultTransform(t *testing.T) {
	t.Parallel()

	frags, err := Iterable("user-plugin", nil)([]any{
		testPath("plugins/custom.py"),
		testChoice("all"),
		"literal",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"--user-plugin=plugins/custom.py",
		"--user-plugin=all",
		"--user-plugin=literal",
	}, frags)
}

func TestIterable_CustomTransform(t *testing.T) {
	t.Parallel()

	upper := func(e any) string { return "<" + Render(e) + ">" }
	frags, err := Iterable("flag", upper)([]string{"a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"--flag=<a>"}, frags)
}

func TestDirect(t *testing.T) {
	t.Parallel()

	frags, err := Direct()(testChoice("clang"))
	require.NoError(t, err)
	assert.Equal(t, []string{"--clang"}, frags)

	frags, err = Direct()("standalone")
	require.NoError(t, err)
	assert.Equal(t, []string{"--standalone"}, frags)

	frags, err = Direct()(nil)
	require.NoError(t, err)
	assert.Empty(t, frags)
}

func TestGeneric_Dispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{"nil", nil, nil},
		{"bool true", true, []string{"--flag"}},
		{"bool false", false, nil},
		{"choice", testChoice("yes"), []string{"--flag=yes"}},
		{"path", testPath("src/main.py"), []string{"--flag=src/main.py"}},
		{"string slice", []string{"a", "b"}, []string{"--flag=a", "--flag=b"}},
		{"string", "value", []string{"--flag=value"}},
		{"int", 4, []string{"--flag=4"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			frags, err := Generic("flag", tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, frags)
		})
	}
}

func TestGeneric_RejectsUnknownKind(t *testing.T) {
	t.Parallel()

	_, err := Generic("flag", struct{}{})

	var invalidErr *InvalidValueError
	require.ErrorAs(t, err, &invalidErr)
	assert.Contains(t, invalidErr.Error(), "flag")
}
