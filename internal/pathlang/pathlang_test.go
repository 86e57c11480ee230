package pathlang_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapestone/jqstream/internal/pathlang"
	"github.com/shapestone/jqstream/pkg/jqchain"
)

func TestCompile_SimpleKey(t *testing.T) {
	prog, err := pathlang.Compile(".items")
	require.NoError(t, err)

	out, err := prog.RenderString(jqchain.New(strings.NewReader(`{"items":[1,2]}`)))
	require.NoError(t, err)
	assert.Equal(t, "[1,2]\n", out)
}

func TestCompile_KeyThenValues(t *testing.T) {
	prog, err := pathlang.Compile(".items[]")
	require.NoError(t, err)

	out, err := prog.RenderString(jqchain.New(strings.NewReader(`{"items":[1,2,3]}`)))
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestCompile_NegativeIndex(t *testing.T) {
	prog, err := pathlang.Compile("[-1]")
	require.NoError(t, err)

	out, err := prog.RenderString(jqchain.New(strings.NewReader(`[10,20,30]`)))
	require.NoError(t, err)
	assert.Equal(t, "30\n", out)
}

func TestCompile_SuppressMarker(t *testing.T) {
	prog, err := pathlang.Compile(".missing?")
	require.NoError(t, err)

	out, err := prog.RenderString(jqchain.New(strings.NewReader(`1`)))
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestCompile_ToPrettyMarksProgramPretty(t *testing.T) {
	prog, err := pathlang.Compile(".a | topretty")
	require.NoError(t, err)
	assert.True(t, prog.Pretty())

	out, err := prog.RenderString(jqchain.New(strings.NewReader(`{"a":{"b":1}}`)))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"b\": 1\n}", out)
}

func TestCompile_ToStringIsNotPretty(t *testing.T) {
	prog, err := pathlang.Compile(".a | tostring")
	require.NoError(t, err)
	assert.False(t, prog.Pretty())
}

func TestCompile_Slurp(t *testing.T) {
	prog, err := pathlang.Compile(".xs[] | slurp")
	require.NoError(t, err)

	out, err := prog.RenderString(jqchain.New(strings.NewReader(`{"xs":[1,2,3]}`)))
	require.NoError(t, err)
	assert.Equal(t, "[1,2,3]\n", out)
}

func TestForceSuppress_OverridesStrictSteps(t *testing.T) {
	prog, err := pathlang.Compile(".missing")
	require.NoError(t, err)

	_, err = prog.RenderString(jqchain.New(strings.NewReader(`1`)))
	require.Error(t, err, "without ForceSuppress the strict step should fail on a scalar")

	prog2, err := pathlang.Compile(".missing")
	require.NoError(t, err)
	prog2.ForceSuppress()

	out, err := prog2.RenderString(jqchain.New(strings.NewReader(`1`)))
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestCompile_RejectsUnknownPipeStage(t *testing.T) {
	_, err := pathlang.Compile(".a | bogus")
	assert.Error(t, err)
}

func TestCompile_RejectsUnterminatedBracket(t *testing.T) {
	_, err := pathlang.Compile(".a[0")
	assert.Error(t, err)
}

func TestCompile_RejectsDanglingDot(t *testing.T) {
	_, err := pathlang.Compile(".")
	assert.Error(t, err)
}

func TestCompile_RejectsUnexpectedCharacter(t *testing.T) {
	_, err := pathlang.Compile("$weird")
	assert.Error(t, err)
}

func TestCompile_EmptyExpressionIsIdentity(t *testing.T) {
	prog, err := pathlang.Compile("")
	require.NoError(t, err)

	out, err := prog.RenderString(jqchain.New(strings.NewReader(`{"a":1}`)))
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`+"\n", out)
}
