package arw_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arw"
)

func TestJSON_RoundTrip(t *testing.T) {
	dist := clique2Dist(t)

	var buf bytes.Buffer
	require.NoError(t, dist.WriteJSON(&buf))

	back, err := arw.ReadJSON(&buf)
	require.NoError(t, err)

	// The reconstructed field is a fresh instance, so compare by structure
	// and rendering rather than Expr.Equal.
	require.Equal(t, dist.Field().Names(), back.Field().Names())
	require.Len(t, back.States, len(dist.States))
	for i := range dist.States {
		require.True(t, back.States[i].Equal(dist.States[i]))
		require.Equal(t, dist.Probs[i].String(), back.Probs[i].String())
	}
	require.True(t, back.Sum().IsOne())
}

func TestJSON_RoundTripIsStable(t *testing.T) {
	dist := clique2Dist(t)

	var first bytes.Buffer
	require.NoError(t, dist.WriteJSON(&first))
	back, err := arw.ReadJSON(bytes.NewReader(first.Bytes()))
	require.NoError(t, err)

	var second bytes.Buffer
	require.NoError(t, back.WriteJSON(&second))
	require.Equal(t, first.String(), second.String())
}

func TestReadJSON_Corrupt(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"not json", `{"params": [`},
		{"length mismatch", `{"params":["q_0"],"states":[["s"],["0"]],"probs":[]}`},
		{"bad occupancy", `{"params":["q_0"],"states":[["x"]],"probs":[{"num":[{"coef":"1","exps":[0]}]}]}`},
		{"bad coefficient", `{"params":["q_0"],"states":[["s"]],"probs":[{"num":[{"coef":"nope","exps":[0]}]}]}`},
		{"bad term arity", `{"params":["q_0"],"states":[["s"]],"probs":[{"num":[{"coef":"1","exps":[0,1]}]}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := arw.ReadJSON(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, arw.ErrCorruptDistribution)
		})
	}
}

func TestWriteStates(t *testing.T) {
	dist := clique2Dist(t)

	var buf bytes.Buffer
	require.NoError(t, dist.WriteStates(&buf))
	require.Equal(t, "[s]\n[0]\n", buf.String())
}

func TestWriteText(t *testing.T) {
	dist := clique2Dist(t)

	var buf bytes.Buffer
	require.NoError(t, dist.WriteText(&buf))
	out := buf.String()
	// Each probability renders as numerator, fraction bar, denominator.
	require.Equal(t, 2, strings.Count(out, "\n/\n"))
	require.Contains(t, out, "q_0\n/\n1\n")
	require.Contains(t, out, "-q_0 + 1\n/\n1\n")
}

func TestWriteLaTeX(t *testing.T) {
	dist := clique2Dist(t)

	var buf bytes.Buffer
	require.NoError(t, dist.WriteLaTeX(&buf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "q_0", lines[0])
	require.Equal(t, "-q_0 + 1", lines[1])
}
