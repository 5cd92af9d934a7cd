package kat_test

import (
	"testing"

	"github.com/katplus/kat"
	"github.com/stretchr/testify/require"
)

func TestRoles(t *testing.T) {
	require.Equal(t, kat.RoleChain, kat.New().Role())
	require.Equal(t, kat.RoleValue, kat.NewValue().Role())
	require.Equal(t, kat.RoleAlias, kat.NewAlias().Role())
}

func TestValue(t *testing.T) {
	v := kat.ValueOf("12345")
	require.Equal(t, int32(12345), v.Int32(0))
	require.Equal(t, "12345", v.String())
}

func TestAliasSeal(t *testing.T) {
	a := kat.AliasOf("name:")
	a.Seal()
	require.Equal(t, "name", a.String())

	// Idempotent when no terminator remains.
	a.Seal()
	require.Equal(t, "name", a.String())

	empty := kat.NewAlias()
	empty.Seal()
	require.True(t, empty.IsEmpty())
}

func TestTokensAreChains(t *testing.T) {
	a := kat.NewAlias()
	a.AppendString("song")
	require.True(t, a.Is("song"))
	require.Equal(t, kat.FromString("song").Hash(), a.Hash())
}
